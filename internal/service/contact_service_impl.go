package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/emlakofis/backend/internal/mailer"
	"github.com/emlakofis/backend/internal/model"
	"github.com/emlakofis/backend/internal/repository"
)

const notifyTimeout = 15 * time.Second

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier mailer.Notifier
}

// NewContactService creates a ContactService backed by the given repository
// and notifier.
func NewContactService(repo repository.ContactRepository, notifier mailer.Notifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

// Submit persists the message first, then fires the notification in the
// background. Persistence errors propagate; notification errors are logged
// and swallowed so an already-durable submission is never reported as failed.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.Read = false
	if err := s.repo.Save(ctx, msg); err != nil {
		return err
	}

	go s.notify(msg)
	return nil
}

// notify runs detached from the request with its own timeout.
func (s *contactServiceImpl) notify(msg *model.ContactMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	if err := s.notifier.NotifyContact(ctx, msg); err != nil {
		slog.Error("contact notification failed", "error", err, "message_id", msg.ID)
	}
}

// List returns contact messages according to the given filter/pagination options.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, opts)
}

// MarkRead flags a message as read.
func (s *contactServiceImpl) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}
