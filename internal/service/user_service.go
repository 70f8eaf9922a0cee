package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "newsboard/internal/errors"
	"newsboard/internal/model"
	"newsboard/internal/repository"
)

// UserUpdate carries a partial user update. Nil fields keep the stored value.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// UserService exposes user CRUD operations.
type UserService interface {
	CreateUser(ctx context.Context, firstName, lastName, email, password string) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, update UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService over the repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// CreateUser inserts a user with a hashed password, rejecting duplicate emails.
func (s *userService) CreateUser(ctx context.Context, firstName, lastName, email, password string) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
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
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// UpdateUser overwrites only the fields present in the update. A supplied
// password is re-hashed before storage.
func (s *userService) UpdateUser(ctx context.Context, id uint, update UserUpdate) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, user); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
