package repository

import (
	"context"
	"errors"

	"github.com/emlakofis/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TeamRepository defines the persistence interface for team members.
type TeamRepository interface {
	List(ctx context.Context) ([]*model.TeamMember, error)
	GetByID(ctx context.Context, id string) (*model.TeamMember, error)
	Create(ctx context.Context, m *model.TeamMember) error
	Update(ctx context.Context, m *model.TeamMember) error
	Delete(ctx context.Context, id string) error
}

// PgTeamRepository is the PostgreSQL implementation of TeamRepository.
type PgTeamRepository struct {
	pool *pgxpool.Pool
}

// NewPgTeamRepository creates a PgTeamRepository backed by the given pool.
func NewPgTeamRepository(pool *pgxpool.Pool) *PgTeamRepository {
	return &PgTeamRepository{pool: pool}
}

var _ TeamRepository = (*PgTeamRepository)(nil)

// List returns all team members ordered by sort_order, then name.
func (r *PgTeamRepository) List(ctx context.Context) ([]*model.TeamMember, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, title, COALESCE(phone, ''), COALESCE(email, ''),
		        COALESCE(photo_url, ''), sort_order, created_at
		 FROM team_members
		 ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*model.TeamMember
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Title, &m.Phone, &m.Email,
			&m.PhotoURL, &m.SortOrder, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, &m)
	}
	return members, rows.Err()
}

// GetByID returns a single team member or ErrNotFound.
func (r *PgTeamRepository) GetByID(ctx context.Context, id string) (*model.TeamMember, error) {
	var m model.TeamMember
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, title, COALESCE(phone, ''), COALESCE(email, ''),
		        COALESCE(photo_url, ''), sort_order, created_at
		 FROM team_members WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Title, &m.Phone, &m.Email, &m.PhotoURL, &m.SortOrder, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create inserts a team member and populates ID/CreatedAt.
func (r *PgTeamRepository) Create(ctx context.Context, m *model.TeamMember) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO team_members (name, title, phone, email, photo_url, sort_order)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6)
		 RETURNING id, created_at`,
		m.Name, m.Title, m.Phone, m.Email, m.PhotoURL, m.SortOrder,
	).Scan(&m.ID, &m.CreatedAt)
}

// Update rewrites all mutable columns of a team member.
func (r *PgTeamRepository) Update(ctx context.Context, m *model.TeamMember) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE team_members SET
		   name = $2, title = $3, phone = NULLIF($4, ''), email = NULLIF($5, ''),
		   photo_url = NULLIF($6, ''), sort_order = $7
		 WHERE id = $1`,
		m.ID, m.Name, m.Title, m.Phone, m.Email, m.PhotoURL, m.SortOrder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a team member.
func (r *PgTeamRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
