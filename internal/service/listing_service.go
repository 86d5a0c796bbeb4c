package service

import (
	"context"

	"github.com/emlakofis/backend/internal/model"
)

// ListingService defines the business logic for property listings.
type ListingService interface {
	List(ctx context.Context, opts model.ListingListOptions) ([]*model.Listing, error)
	GetByID(ctx context.Context, id string) (*model.Listing, error)
	Create(ctx context.Context, l *model.Listing) error
	Update(ctx context.Context, l *model.Listing) error
	Delete(ctx context.Context, id string) error
}
