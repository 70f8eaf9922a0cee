package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "newsboard/internal/errors"
	"newsboard/internal/model"
	"newsboard/internal/repository"
	"newsboard/internal/session"
)

const bcryptCost = 10

// AuthService handles registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo   repository.UserRepository
	tokens     *session.TokenService
	sessions   session.Store
	sessionTTL time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokens *session.TokenService, sessions session.Store, sessionTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, firstName, lastName, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and establishes a session. Both a missing user
// and a wrong password collapse into the same error.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	sessionID, token, err := s.tokens.Issue(user.ID, s.sessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("issue session token: %w", err)
	}
	if err := s.sessions.Save(ctx, sessionID, user.ID, s.sessionTTL); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	return token, user, nil
}

// Logout removes the server-side session referenced by the cookie token.
// An invalid token is treated as already logged out.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.ID)
}
