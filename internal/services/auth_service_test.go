package services

import (
	"errors"
	"testing"
	"time"

	"ekrafmate_backend/internal/auth"
	"ekrafmate_backend/internal/models"
	"ekrafmate_backend/internal/repositories"
	"ekrafmate_backend/internal/services/dto"
	"ekrafmate_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeEmailProvider, *gorm.DB) {
	db := setupTestDB(t)
	mail := &fakeEmailProvider{}
	svc := NewAuthService(repositories.NewUserRepository(), mail, "http://localhost:3000")
	return svc, mail, db
}

func TestRegisterStoresHashedSecrets(t *testing.T) {
	svc, mail, db := newAuthFixture(t)

	err := svc.Register(db, &dto.RegisterRequest{
		Name:     "Jane",
		Username: "jane",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.UserRoleCreative,
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "jane").Error)

	assert.False(t, user.IsVerified)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("secret123", user.PasswordHash))

	// The emailed link carries the plaintext; the row carries its hash.
	plaintext := mail.lastToken(t)
	assert.NotEqual(t, plaintext, user.VerificationToken)
	assert.Equal(t, auth.HashVerificationToken(plaintext), user.VerificationToken)
	require.NotNil(t, user.VerificationTokenExp)
	assert.WithinDuration(t, time.Now().Add(auth.VerificationTokenTTL), *user.VerificationTokenExp, 5*time.Second)
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	svc, _, db := newAuthFixture(t)
	seedUser(t, db, "jane", models.UserRoleCreative, true)

	err := svc.Register(db, &dto.RegisterRequest{
		Name: "Other", Username: "jane", Email: "other@example.com",
		Password: "secret123", Role: models.UserRoleCreative,
	})
	appErr := requireAppError(t, err, 400)
	assert.Equal(t, "Username already in use", appErr.Message)

	err = svc.Register(db, &dto.RegisterRequest{
		Name: "Other", Username: "other", Email: "jane@example.com",
		Password: "secret123", Role: models.UserRoleCreative,
	})
	appErr = requireAppError(t, err, 400)
	assert.Equal(t, "Email already in use", appErr.Message)
}

func TestRegisterEmailFailureClearsToken(t *testing.T) {
	svc, mail, db := newAuthFixture(t)
	mail.err = errors.New("smtp down")

	err := svc.Register(db, &dto.RegisterRequest{
		Name: "Jane", Username: "jane", Email: "jane@example.com",
		Password: "secret123", Role: models.UserRoleCreative,
	})
	requireAppError(t, err, 500)

	// The account exists but carries no stale token hash.
	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "jane").Error)
	assert.Empty(t, user.VerificationToken)
	assert.Nil(t, user.VerificationTokenExp)
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	svc, _, db := newAuthFixture(t)
	seedUser(t, db, "jane", models.UserRoleClient, true)

	for _, identifier := range []string{"jane", "jane@example.com"} {
		resp, err := svc.Login(db, &dto.LoginRequest{Identifier: identifier, Password: "secret123"})
		require.NoError(t, err, "login with %q", identifier)
		assert.Equal(t, "jane", resp.Username)
		assert.NotEmpty(t, resp.Token)

		claims, err := auth.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, models.UserRoleClient, claims.Role)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, db := newAuthFixture(t)
	seedUser(t, db, "jane", models.UserRoleClient, true)

	_, err := svc.Login(db, &dto.LoginRequest{Identifier: "jane", Password: "wrong"})
	requireAppError(t, err, 401)

	// Unknown identifier gets the same answer as a wrong password.
	_, err = svc.Login(db, &dto.LoginRequest{Identifier: "nobody", Password: "secret123"})
	appErr := requireAppError(t, err, 401)
	assert.True(t, apperrors.Is(appErr, apperrors.ErrInvalidCredentials))
}

func TestVerifyEmailIsSingleUse(t *testing.T) {
	svc, mail, db := newAuthFixture(t)

	require.NoError(t, svc.Register(db, &dto.RegisterRequest{
		Name: "Jane", Username: "jane", Email: "jane@example.com",
		Password: "secret123", Role: models.UserRoleCreative,
	}))
	token := mail.lastToken(t)

	resp, err := svc.VerifyEmail(db, token)
	require.NoError(t, err)
	assert.True(t, resp.IsVerified)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Email successfully verified", resp.Message)

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "jane").Error)
	assert.True(t, user.IsVerified)
	assert.Empty(t, user.VerificationToken)
	assert.Nil(t, user.VerificationTokenExp)

	// Replaying the consumed token fails.
	_, err = svc.VerifyEmail(db, token)
	requireAppError(t, err, 400)
}

func TestVerifyEmailExpiredToken(t *testing.T) {
	svc, mail, db := newAuthFixture(t)

	require.NoError(t, svc.Register(db, &dto.RegisterRequest{
		Name: "Jane", Username: "jane", Email: "jane@example.com",
		Password: "secret123", Role: models.UserRoleCreative,
	}))
	token := mail.lastToken(t)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&models.User{}).
		Where("username = ?", "jane").
		Update("verification_token_exp", expired).Error)

	_, err := svc.VerifyEmail(db, token)
	requireAppError(t, err, 400)
}

func TestVerifyEmailUnknownToken(t *testing.T) {
	svc, _, db := newAuthFixture(t)

	_, err := svc.VerifyEmail(db, "deadbeef")
	appErr := requireAppError(t, err, 400)
	assert.True(t, apperrors.Is(appErr, apperrors.ErrInvalidVerificationToken))
}

func TestResendVerification(t *testing.T) {
	svc, mail, db := newAuthFixture(t)
	user := seedUser(t, db, "jane", models.UserRoleCreative, false)

	require.NoError(t, svc.ResendVerification(db, user.ID))
	token := mail.lastToken(t)

	resp, err := svc.VerifyEmail(db, token)
	require.NoError(t, err)
	assert.True(t, resp.IsVerified)

	// Already verified now; another resend is rejected.
	err = svc.ResendVerification(db, user.ID)
	appErr := requireAppError(t, err, 400)
	assert.True(t, apperrors.Is(appErr, apperrors.ErrAlreadyVerified))
}
