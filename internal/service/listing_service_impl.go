package service

import (
	"context"
	"errors"
	"strings"

	"github.com/emlakofis/backend/internal/model"
	"github.com/emlakofis/backend/internal/repository"
)

// ErrInvalidListing is returned when a listing fails business validation.
var ErrInvalidListing = errors.New("invalid listing")

// listingServiceImpl is the production implementation of ListingService.
type listingServiceImpl struct {
	repo repository.ListingRepository
}

// NewListingService creates a ListingService backed by the given repository.
func NewListingService(repo repository.ListingRepository) ListingService {
	return &listingServiceImpl{repo: repo}
}

func (s *listingServiceImpl) List(ctx context.Context, opts model.ListingListOptions) ([]*model.Listing, error) {
	return s.repo.List(ctx, opts)
}

func (s *listingServiceImpl) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

// normalize applies defaults and validates the fields an admin must provide.
func normalizeListing(l *model.Listing) error {
	l.Title = strings.TrimSpace(l.Title)
	l.City = strings.TrimSpace(l.City)
	if l.Currency == "" {
		l.Currency = "TRY"
	}
	if l.Status == "" {
		l.Status = model.ListingStatusActive
	}

	switch {
	case l.Title == "" || l.City == "":
		return ErrInvalidListing
	case l.Type != model.ListingTypeSale && l.Type != model.ListingTypeRent:
		return ErrInvalidListing
	case l.Status != model.ListingStatusActive && l.Status != model.ListingStatusPassive:
		return ErrInvalidListing
	case l.Price < 0:
		return ErrInvalidListing
	}
	return nil
}

func (s *listingServiceImpl) Create(ctx context.Context, l *model.Listing) error {
	if err := normalizeListing(l); err != nil {
		return err
	}
	return s.repo.Create(ctx, l)
}

func (s *listingServiceImpl) Update(ctx context.Context, l *model.Listing) error {
	if err := normalizeListing(l); err != nil {
		return err
	}
	return s.repo.Update(ctx, l)
}

func (s *listingServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
