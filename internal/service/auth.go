// Package service contains the application services for authentication and
// the job/category catalog.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/techforing/jobboard/internal/errs"
	"github.com/techforing/jobboard/internal/models"
	"github.com/techforing/jobboard/internal/token"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository provides persistence for user credentials.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
}

// WelcomeNotifier sends a best-effort greeting after registration.
type WelcomeNotifier interface {
	SendWelcome(to string) error
}

// AuthService handles registration, credential verification and session issuance.
type AuthService struct {
	users    UserRepository
	tokens   *token.Manager
	log      *logrus.Logger
	notifier WelcomeNotifier // optional
}

// NewAuthService initializes the authentication service. The notifier may be nil.
func NewAuthService(users UserRepository, tokens *token.Manager, log *logrus.Logger, notifier WelcomeNotifier) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log, notifier: notifier}
}

// Register creates a new user with a hashed password
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", errs.ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.SendWelcome(user.Email); err != nil {
			s.log.Warnf("Welcome mail to %s failed: %v", user.Email, err)
		}
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login verifies credentials and returns a signed session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	if email == "" || password == "" {
		return "", time.Time{}, fmt.Errorf("%w: email and password are required", errs.ErrValidation)
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", time.Time{}, fmt.Errorf("invalid credentials: %w", errs.ErrUnauthenticated)
		}
		return "", time.Time{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, fmt.Errorf("invalid credentials: %w", errs.ErrUnauthenticated)
	}

	signed, expires, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return signed, expires, nil
}

// CurrentUser resolves the admitted identity to a stored user record.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
