package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/emlakofis/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnnouncementRepository defines the persistence interface for announcements.
type AnnouncementRepository interface {
	// List returns announcements newest-first. When publishedOnly is true,
	// drafts are excluded.
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*model.Announcement, error)
	GetByID(ctx context.Context, id string) (*model.Announcement, error)
	Create(ctx context.Context, a *model.Announcement) error
	Update(ctx context.Context, a *model.Announcement) error
	Delete(ctx context.Context, id string) error
}

// PgAnnouncementRepository is the PostgreSQL implementation of AnnouncementRepository.
type PgAnnouncementRepository struct {
	pool *pgxpool.Pool
}

// NewPgAnnouncementRepository creates a PgAnnouncementRepository backed by the given pool.
func NewPgAnnouncementRepository(pool *pgxpool.Pool) *PgAnnouncementRepository {
	return &PgAnnouncementRepository{pool: pool}
}

var _ AnnouncementRepository = (*PgAnnouncementRepository)(nil)

// List returns announcements newest-first.
func (r *PgAnnouncementRepository) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*model.Announcement, error) {
	where := ""
	var args []any
	if publishedOnly {
		where = "WHERE published = true"
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, limit, offset)

	query := `SELECT id, title, body, published, created_at, updated_at
	          FROM announcements ` + where +
		` ORDER BY created_at DESC
		  LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []*model.Announcement
	for rows.Next() {
		var a model.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.Published, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, &a)
	}
	return announcements, rows.Err()
}

// GetByID returns a single announcement or ErrNotFound.
func (r *PgAnnouncementRepository) GetByID(ctx context.Context, id string) (*model.Announcement, error) {
	var a model.Announcement
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, body, published, created_at, updated_at
		 FROM announcements WHERE id = $1`, id,
	).Scan(&a.ID, &a.Title, &a.Body, &a.Published, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts an announcement and populates ID/CreatedAt/UpdatedAt.
func (r *PgAnnouncementRepository) Create(ctx context.Context, a *model.Announcement) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO announcements (title, body, published)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		a.Title, a.Body, a.Published,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// Update rewrites title, body and published state.
func (r *PgAnnouncementRepository) Update(ctx context.Context, a *model.Announcement) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE announcements SET title = $2, body = $3, published = $4, updated_at = NOW()
		 WHERE id = $1`,
		a.ID, a.Title, a.Body, a.Published)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an announcement.
func (r *PgAnnouncementRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
