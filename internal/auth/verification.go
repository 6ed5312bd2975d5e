package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// VerificationTokenTTL bounds how long an emailed verification link
// stays valid.
const VerificationTokenTTL = 10 * time.Minute

// NewVerificationToken generates a random email-verification token.
// The plaintext goes into the emailed link; only the sha256 digest is
// ever persisted.
func NewVerificationToken() (plaintext, hash string, expiresAt time.Time, err error) {
	buf := make([]byte, 20)
	if _, err = rand.Read(buf); err != nil {
		return "", "", time.Time{}, err
	}
	plaintext = hex.EncodeToString(buf)
	return plaintext, HashVerificationToken(plaintext), time.Now().Add(VerificationTokenTTL), nil
}

// HashVerificationToken maps a plaintext token to its stored form.
func HashVerificationToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
