package service

import (
	"context"

	"github.com/emlakofis/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact message and schedules the operator
	// notification. The msg.ID and timestamp are populated by the store.
	// A notification failure never causes Submit to fail: the stored
	// message is the record of truth.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns contact messages newest-first for the moderation view.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)

	// MarkRead flags a message as handled by a moderator.
	MarkRead(ctx context.Context, id string) error
}
