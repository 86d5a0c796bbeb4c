package service

import (
	"context"
	"errors"
	"strings"

	"github.com/emlakofis/backend/internal/model"
	"github.com/emlakofis/backend/internal/repository"
)

// ErrInvalidAnnouncement is returned when an announcement fails business validation.
var ErrInvalidAnnouncement = errors.New("invalid announcement")

// AnnouncementService defines the business logic for announcements.
type AnnouncementService interface {
	// List returns announcements newest-first; publishedOnly hides drafts.
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*model.Announcement, error)
	GetByID(ctx context.Context, id string) (*model.Announcement, error)
	Create(ctx context.Context, a *model.Announcement) error
	Update(ctx context.Context, a *model.Announcement) error
	Delete(ctx context.Context, id string) error
}

type announcementServiceImpl struct {
	repo repository.AnnouncementRepository
}

// NewAnnouncementService creates an AnnouncementService backed by the given repository.
func NewAnnouncementService(repo repository.AnnouncementRepository) AnnouncementService {
	return &announcementServiceImpl{repo: repo}
}

func (s *announcementServiceImpl) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*model.Announcement, error) {
	return s.repo.List(ctx, publishedOnly, limit, offset)
}

func (s *announcementServiceImpl) GetByID(ctx context.Context, id string) (*model.Announcement, error) {
	return s.repo.GetByID(ctx, id)
}

func validateAnnouncement(a *model.Announcement) error {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" || strings.TrimSpace(a.Body) == "" {
		return ErrInvalidAnnouncement
	}
	return nil
}

func (s *announcementServiceImpl) Create(ctx context.Context, a *model.Announcement) error {
	if err := validateAnnouncement(a); err != nil {
		return err
	}
	return s.repo.Create(ctx, a)
}

func (s *announcementServiceImpl) Update(ctx context.Context, a *model.Announcement) error {
	if err := validateAnnouncement(a); err != nil {
		return err
	}
	return s.repo.Update(ctx, a)
}

func (s *announcementServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
