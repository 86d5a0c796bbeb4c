// Package mailer sends operator notifications for accepted contact messages.
package mailer

import (
	"context"

	"github.com/emlakofis/backend/internal/model"
)

// Notifier delivers a notification for an accepted contact message.
// Delivery is best-effort: callers are expected to log failures, not to
// surface them to the submitter (the stored message is the record of truth).
type Notifier interface {
	NotifyContact(ctx context.Context, msg *model.ContactMessage) error
}

// Nop is a Notifier that does nothing, used when SMTP is not configured.
type Nop struct{}

// NotifyContact implements Notifier.
func (Nop) NotifyContact(context.Context, *model.ContactMessage) error { return nil }
