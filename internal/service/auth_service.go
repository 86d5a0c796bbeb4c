package service

import (
	"context"
	"errors"
	"strings"

	"github.com/emlakofis/backend/internal/model"
	"github.com/emlakofis/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so a caller cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates back-office accounts.
type AuthService interface {
	// Login verifies email+password and returns the matching admin account.
	Login(ctx context.Context, email, password string) (*model.AdminUser, error)
	// GetByID returns the admin account for a verified session.
	GetByID(ctx context.Context, id string) (*model.AdminUser, error)
}

type authServiceImpl struct {
	repo repository.AdminUserRepository
}

// NewAuthService creates an AuthService backed by the given repository.
func NewAuthService(repo repository.AdminUserRepository) AuthService {
	return &authServiceImpl{repo: repo}
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*model.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authServiceImpl) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	return s.repo.FindByID(ctx, id)
}
