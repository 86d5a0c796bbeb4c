package service

import (
	"context"
	"errors"
	"testing"

	"github.com/emlakofis/backend/internal/model"
	"github.com/emlakofis/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// mockAdminUserRepo implements repository.AdminUserRepository with overridable funcs.
type mockAdminUserRepo struct {
	findByEmailFunc func(ctx context.Context, email string) (*model.AdminUser, error)
	findByIDFunc    func(ctx context.Context, id string) (*model.AdminUser, error)
}

func (m *mockAdminUserRepo) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAdminUserRepo) FindByID(ctx context.Context, id string) (*model.AdminUser, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func hashPassword(t *testing.T, pw string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(hash)
}

func TestAuthLogin_Success(t *testing.T) {
	hash := hashPassword(t, "parola123")
	var gotEmail string
	repo := &mockAdminUserRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*model.AdminUser, error) {
			gotEmail = email
			return &model.AdminUser{ID: "admin-1", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(repo)

	user, err := svc.Login(context.Background(), "  Admin@Example.COM ", "parola123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "admin-1" {
		t.Errorf("unexpected user: %+v", user)
	}
	if gotEmail != "admin@example.com" {
		t.Errorf("expected the lookup email trimmed and lower-cased, got %q", gotEmail)
	}
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	repo := &mockAdminUserRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*model.AdminUser, error) {
			return &model.AdminUser{ID: "admin-1", PasswordHash: hashPassword(t, "doğru")}, nil
		},
	}
	svc := NewAuthService(repo)

	if _, err := svc.Login(context.Background(), "admin@example.com", "yanlış"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// TestAuthLogin_UnknownEmail verifies unknown accounts and wrong passwords are
// indistinguishable to the caller.
func TestAuthLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockAdminUserRepo{})

	if _, err := svc.Login(context.Background(), "kimse@example.com", "parola"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthLogin_RepoError(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &mockAdminUserRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*model.AdminUser, error) {
			return nil, repoErr
		},
	}
	svc := NewAuthService(repo)

	if _, err := svc.Login(context.Background(), "admin@example.com", "parola"); !errors.Is(err, repoErr) {
		t.Errorf("expected the repository error to propagate, got %v", err)
	}
}
