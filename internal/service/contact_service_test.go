package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emlakofis/backend/internal/model"
)

// mockContactRepo implements repository.ContactRepository with overridable funcs.
type mockContactRepo struct {
	saveFunc     func(ctx context.Context, msg *model.ContactMessage) error
	listFunc     func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	markReadFunc func(ctx context.Context, id string) error
}

func (m *mockContactRepo) Save(ctx context.Context, msg *model.ContactMessage) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactRepo) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockContactRepo) MarkRead(ctx context.Context, id string) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil
}

// chanNotifier records notifications on a channel so tests can wait for the
// async delivery.
type chanNotifier struct {
	err  error
	sent chan *model.ContactMessage
}

func newChanNotifier(err error) *chanNotifier {
	return &chanNotifier{err: err, sent: make(chan *model.ContactMessage, 1)}
}

func (n *chanNotifier) NotifyContact(_ context.Context, msg *model.ContactMessage) error {
	n.sent <- msg
	return n.err
}

func (n *chanNotifier) wait(t *testing.T) *model.ContactMessage {
	t.Helper()
	select {
	case msg := <-n.sent:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return nil
	}
}

func TestContactSubmit_PersistsUnreadAndNotifies(t *testing.T) {
	var saved *model.ContactMessage
	repo := &mockContactRepo{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			saved = msg
			msg.ID = "generated-id"
			return nil
		},
	}
	notifier := newChanNotifier(nil)
	svc := NewContactService(repo, notifier)

	msg := &model.ContactMessage{Name: "Ali", Email: "ali@example.com", Subject: "genel", Message: "Merhaba", Read: true}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("expected the repository to be called")
	}
	if saved.Read {
		t.Error("expected Read forced to false on submission")
	}

	notified := notifier.wait(t)
	if notified.ID != "generated-id" {
		t.Errorf("expected the notification to carry the stored message, got %+v", notified)
	}
}

func TestContactSubmit_RepoErrorSkipsNotification(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &mockContactRepo{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return repoErr
		},
	}
	notifier := newChanNotifier(nil)
	svc := NewContactService(repo, notifier)

	err := svc.Submit(context.Background(), &model.ContactMessage{Name: "Ali"})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected the repository error, got %v", err)
	}

	select {
	case <-notifier.sent:
		t.Error("expected no notification when persistence fails")
	case <-time.After(50 * time.Millisecond):
	}
}

// TestContactSubmit_NotifierErrorIgnored verifies a failing notifier never
// surfaces to the submitter.
func TestContactSubmit_NotifierErrorIgnored(t *testing.T) {
	notifier := newChanNotifier(errors.New("smtp unavailable"))
	svc := NewContactService(&mockContactRepo{}, notifier)

	if err := svc.Submit(context.Background(), &model.ContactMessage{Name: "Ali"}); err != nil {
		t.Fatalf("expected nil error despite notifier failure, got %v", err)
	}
	notifier.wait(t)
}

func TestContactList_Forwards(t *testing.T) {
	want := []*model.ContactMessage{{ID: "m1"}}
	var gotOpts model.ContactListOptions
	repo := &mockContactRepo{
		listFunc: func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
			gotOpts = opts
			return want, nil
		},
	}
	svc := NewContactService(repo, newChanNotifier(nil))

	got, err := svc.List(context.Background(), model.ContactListOptions{Read: "unread", Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "m1" {
		t.Errorf("unexpected result: %+v", got)
	}
	if gotOpts.Read != "unread" || gotOpts.Limit != 10 {
		t.Errorf("unexpected options: %+v", gotOpts)
	}
}

func TestContactMarkRead_Forwards(t *testing.T) {
	var gotID string
	repo := &mockContactRepo{
		markReadFunc: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	}
	svc := NewContactService(repo, newChanNotifier(nil))

	if err := svc.MarkRead(context.Background(), "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "abc" {
		t.Errorf("expected id abc, got %q", gotID)
	}
}
