package services

import (
	"fmt"
	"time"

	"ekrafmate_backend/internal/auth"
	"ekrafmate_backend/internal/email"
	"ekrafmate_backend/internal/logger"
	"ekrafmate_backend/internal/models"
	"ekrafmate_backend/internal/repositories"
	"ekrafmate_backend/internal/services/dto"
	"ekrafmate_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	VerifyEmail(db *gorm.DB, token string) (*dto.AuthResponse, error)
	ResendVerification(db *gorm.DB, userID string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	frontendURL   string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	frontendURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		frontendURL:   frontendURL,
	}
}

// Register creates the user and dispatches the verification email. Only
// a bcrypt hash of the password and a sha256 of the verification token
// are stored.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	plainToken, tokenHash, expiresAt, err := auth.NewVerificationToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:                 req.Name,
		Username:             req.Username,
		Email:                req.Email,
		PasswordHash:         hashedPassword,
		Role:                 req.Role,
		IsVerified:           false,
		VerificationToken:    tokenHash,
		VerificationTokenExp: &expiresAt,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		return translateUserConflict(err)
	}

	if err := s.sendVerificationEmail(db, user, plainToken); err != nil {
		return err
	}
	return nil
}

// Login authenticates by username or email and issues a bearer token.
// The verifier enforces the token's expiry; there is no revocation.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByIdentifier(db, req.Identifier)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewAuthResponse(user, token), nil
}

// VerifyEmail consumes a verification token. A token is usable at most
// once: success clears the stored hash, so a replay cannot match again.
func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) (*dto.AuthResponse, error) {
	tokenHash := auth.HashVerificationToken(token)

	user, err := s.userRepo.FindByVerificationToken(db, tokenHash)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidVerificationToken
		}
		return nil, apperrors.InternalError(err)
	}

	if user.VerificationTokenExp == nil || !time.Now().Before(*user.VerificationTokenExp) {
		return nil, apperrors.ErrInvalidVerificationToken
	}

	user.IsVerified = true
	user.VerificationToken = ""
	user.VerificationTokenExp = nil
	if err := s.userRepo.Save(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Fresh token for auto-login after the emailed link is followed.
	jwtToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewAuthResponse(user, jwtToken)
	resp.Message = "Email successfully verified"
	return resp, nil
}

// ResendVerification issues a new token for an unverified account.
func (s *AuthServiceImpl) ResendVerification(db *gorm.DB, userID string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user", "User not found")
		}
		return apperrors.InternalError(err)
	}

	if user.IsVerified {
		return apperrors.ErrAlreadyVerified
	}

	plainToken, tokenHash, expiresAt, err := auth.NewVerificationToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.VerificationToken = tokenHash
	user.VerificationTokenExp = &expiresAt
	if err := s.userRepo.Save(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	return s.sendVerificationEmail(db, user, plainToken)
}

// sendVerificationEmail delivers the link; on failure the token fields
// are cleared so a stale hash cannot linger.
func (s *AuthServiceImpl) sendVerificationEmail(db *gorm.DB, user *models.User, plainToken string) error {
	verifyURL := fmt.Sprintf("%s/verify/%s", s.frontendURL, plainToken)

	if err := s.emailProvider.SendVerification(user.Email, verifyURL); err != nil {
		logger.Error("failed to send verification email", "user_id", user.ID, "error", err)
		user.VerificationToken = ""
		user.VerificationTokenExp = nil
		if saveErr := s.userRepo.Save(db, user); saveErr != nil {
			logger.Error("failed to clear verification token", "user_id", user.ID, "error", saveErr)
		}
		return apperrors.ErrUpstream(err, "email", "Verification email could not be sent")
	}
	return nil
}

// translateUserConflict maps repository duplicate errors to
// field-specific Conflict responses (400 per the API contract).
func translateUserConflict(err error) error {
	switch {
	case apperrors.Is(err, repositories.ErrUsernameTaken):
		return apperrors.ErrConflict("user", "Username already in use", 400)
	case apperrors.Is(err, repositories.ErrEmailTaken):
		return apperrors.ErrConflict("user", "Email already in use", 400)
	case apperrors.Is(err, repositories.ErrUserDuplicateIdent):
		return apperrors.ErrConflict("user", "A user with that email or username is already registered", 400)
	default:
		return apperrors.InternalError(err)
	}
}
