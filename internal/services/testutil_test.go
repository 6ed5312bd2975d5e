package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"ekrafmate_backend/internal/ai"
	"ekrafmate_backend/internal/auth"
	"ekrafmate_backend/internal/config"
	"ekrafmate_backend/internal/email"
	"ekrafmate_backend/internal/logger"
	"ekrafmate_backend/internal/models"
	"ekrafmate_backend/pkg/apperrors"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Init("test")

	cfg := &config.Config{}
	cfg.JWT.Secret = "service-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.PortfolioItem{},
		&models.Project{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, role models.UserRole, verified bool) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	user := &models.User{
		Name:         username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
		IsVerified:   verified,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func requireAppError(t *testing.T, err error, httpCode int) *apperrors.AppError {
	t.Helper()

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr), "expected *apperrors.AppError, got %T: %v", err, err)
	require.Equal(t, httpCode, appErr.HTTPCode, "unexpected HTTP code for %v", appErr)
	return appErr
}

// fakeEmbedder returns a canned vector and counts invocations.
type fakeEmbedder struct {
	vec   []float32
	err   error
	calls int
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.vec == nil {
		return []float32{1, 0}, nil
	}
	return f.vec, nil
}

type fakeGenerator struct {
	text  string
	err   error
	calls int
	// last prompt seen, for assertions on prompt assembly
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, _ ai.GenerationConfig) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type sentMail struct {
	to  string
	url string
}

type fakeEmailProvider struct {
	sent []sentMail
	err  error
}

func (f *fakeEmailProvider) Send(msg *email.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: msg.To})
	return nil
}

func (f *fakeEmailProvider) SendVerification(to, verifyURL string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, url: verifyURL})
	return nil
}

// lastToken pulls the plaintext verification token out of the most
// recently emailed link.
func (f *fakeEmailProvider) lastToken(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.sent, "no verification email was sent")
	url := f.sent[len(f.sent)-1].url
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}
