package repository

import (
	"context"
	"errors"

	"github.com/emlakofis/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminUserRepository defines the persistence interface for back-office accounts.
type AdminUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	FindByID(ctx context.Context, id string) (*model.AdminUser, error)
}

// PgAdminUserRepository is the PostgreSQL implementation of AdminUserRepository.
type PgAdminUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgAdminUserRepository creates a PgAdminUserRepository backed by the given pool.
func NewPgAdminUserRepository(pool *pgxpool.Pool) *PgAdminUserRepository {
	return &PgAdminUserRepository{pool: pool}
}

var _ AdminUserRepository = (*PgAdminUserRepository)(nil)

func (r *PgAdminUserRepository) findBy(ctx context.Context, column, value string) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at
		 FROM admin_users WHERE `+column+` = $1`, value,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail looks up an admin account by email (stored lower-cased).
func (r *PgAdminUserRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	return r.findBy(ctx, "email", email)
}

// FindByID looks up an admin account by id.
func (r *PgAdminUserRepository) FindByID(ctx context.Context, id string) (*model.AdminUser, error) {
	return r.findBy(ctx, "id", id)
}
