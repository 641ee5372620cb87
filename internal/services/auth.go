package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserStore defines the user operations needed for authentication.
type UserStore interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.User, error)
	Create(ctx context.Context, username, email, passwordHash string, isAdmin bool) (int64, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// TokenRevoker denies a token id until it expires.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	users   UserStore
	jwt     JWTGenerator
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance. revoker may be nil, in
// which case Logout is a no-op.
func NewAuthService(users UserStore, jwt JWTGenerator, revoker TokenRevoker) *AuthService {
	return &AuthService{
		users:   users,
		jwt:     jwt,
		revoker: revoker,
	}
}

// Register registers a new non-admin user.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) error {
	user, err := svc.users.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Infow("user already exists", "username", username, "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return err
	}

	if _, err := svc.users.Create(ctx, username, email, hashedPassword, false); err != nil {
		if isUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.users.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Infow("user does not exist", "username", username)
			return "", ErrUserDoesNotExist
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the token identified by tokenID until its expiry.
func (svc *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if svc.revoker == nil {
		logger.Log.Warnw("token revocation not configured, skipping logout", "token_id", tokenID)
		return nil
	}
	if err := svc.revoker.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		logger.Log.Errorw("failed to revoke token", "token_id", tokenID, "err", err)
		return err
	}
	return nil
}
