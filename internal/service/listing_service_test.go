package service

import (
	"context"
	"errors"
	"testing"

	"github.com/emlakofis/backend/internal/model"
)

// mockListingRepo implements repository.ListingRepository with overridable funcs.
type mockListingRepo struct {
	listFunc           func(ctx context.Context, opts model.ListingListOptions) ([]*model.Listing, error)
	getByIDFunc        func(ctx context.Context, id string) (*model.Listing, error)
	createFunc         func(ctx context.Context, l *model.Listing) error
	updateFunc         func(ctx context.Context, l *model.Listing) error
	deleteFunc         func(ctx context.Context, id string) error
	updateImageURLFunc func(ctx context.Context, id, imageURL string) error
}

func (m *mockListingRepo) List(ctx context.Context, opts model.ListingListOptions) ([]*model.Listing, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockListingRepo) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockListingRepo) Create(ctx context.Context, l *model.Listing) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, l)
	}
	return nil
}

func (m *mockListingRepo) Update(ctx context.Context, l *model.Listing) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, l)
	}
	return nil
}

func (m *mockListingRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockListingRepo) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	if m.updateImageURLFunc != nil {
		return m.updateImageURLFunc(ctx, id, imageURL)
	}
	return nil
}

func validListing() *model.Listing {
	return &model.Listing{
		Title: "Merkezde 3+1 Daire",
		Type:  model.ListingTypeSale,
		City:  "İzmir",
		Price: 4500000,
	}
}

func TestListingCreate_AppliesDefaults(t *testing.T) {
	var saved *model.Listing
	repo := &mockListingRepo{
		createFunc: func(ctx context.Context, l *model.Listing) error {
			saved = l
			return nil
		},
	}
	svc := NewListingService(repo)

	l := validListing()
	l.Title = "  Merkezde 3+1 Daire  "
	if err := svc.Create(context.Background(), l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved.Title != "Merkezde 3+1 Daire" {
		t.Errorf("expected trimmed title, got %q", saved.Title)
	}
	if saved.Currency != "TRY" {
		t.Errorf("expected default currency TRY, got %q", saved.Currency)
	}
	if saved.Status != model.ListingStatusActive {
		t.Errorf("expected default status active, got %q", saved.Status)
	}
}

func TestListingCreate_Invalid(t *testing.T) {
	cases := map[string]func(*model.Listing){
		"empty title":    func(l *model.Listing) { l.Title = "   " },
		"empty city":     func(l *model.Listing) { l.City = "" },
		"bad type":       func(l *model.Listing) { l.Type = "lease" },
		"bad status":     func(l *model.Listing) { l.Status = "archived" },
		"negative price": func(l *model.Listing) { l.Price = -1 },
	}

	svc := NewListingService(&mockListingRepo{
		createFunc: func(ctx context.Context, l *model.Listing) error {
			t.Error("expected the repository not to be called for invalid input")
			return nil
		},
	})

	for name, mutate := range cases {
		l := validListing()
		mutate(l)
		if err := svc.Create(context.Background(), l); !errors.Is(err, ErrInvalidListing) {
			t.Errorf("%s: expected ErrInvalidListing, got %v", name, err)
		}
	}
}

func TestListingUpdate_Validates(t *testing.T) {
	svc := NewListingService(&mockListingRepo{})

	l := validListing()
	l.Type = "unknown"
	if err := svc.Update(context.Background(), l); !errors.Is(err, ErrInvalidListing) {
		t.Errorf("expected ErrInvalidListing, got %v", err)
	}
}

func TestListingList_Forwards(t *testing.T) {
	var gotOpts model.ListingListOptions
	repo := &mockListingRepo{
		listFunc: func(ctx context.Context, opts model.ListingListOptions) ([]*model.Listing, error) {
			gotOpts = opts
			return []*model.Listing{{ID: "l1"}}, nil
		},
	}
	svc := NewListingService(repo)

	got, err := svc.List(context.Background(), model.ListingListOptions{City: "İzmir", Status: model.ListingStatusActive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "l1" {
		t.Errorf("unexpected result: %+v", got)
	}
	if gotOpts.City != "İzmir" || gotOpts.Status != model.ListingStatusActive {
		t.Errorf("unexpected options: %+v", gotOpts)
	}
}
