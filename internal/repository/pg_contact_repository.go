package repository

import (
	"context"
	"strconv"

	"github.com/emlakofis/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository defines the persistence interface for contact messages.
type ContactRepository interface {
	// Save inserts a new message. ID, Read and CreatedAt are populated by
	// the store; the message becomes visible to List only after the insert
	// commits.
	Save(ctx context.Context, msg *model.ContactMessage) error
	// List returns messages newest-first according to opts.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	// MarkRead flags a message as read. Returns ErrNotFound for unknown ids.
	MarkRead(ctx context.Context, id string) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a contact_messages row and populates msg.ID, msg.Read and
// msg.CreatedAt from the RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, phone, subject, message)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		 RETURNING id, read, created_at`,
		msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message,
	).Scan(&msg.ID, &msg.Read, &msg.CreatedAt)
}

// List returns contact messages newest-first, optionally filtered by read
// state ("read"/"unread"; "" and "all" return everything).
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	where := ""
	var args []any

	switch opts.Read {
	case "read":
		where = "WHERE read = true"
	case "unread":
		where = "WHERE read = false"
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, opts.Limit, opts.Offset)

	query := `SELECT id, name, email, COALESCE(phone, ''), subject, message, read, created_at
	          FROM contact_messages ` + where +
		` ORDER BY created_at DESC
		  LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// MarkRead flags a message as read.
func (r *PgContactRepository) MarkRead(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_messages SET read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
