package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/emlakofis/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListingRepository defines the persistence interface for property listings.
type ListingRepository interface {
	List(ctx context.Context, opts model.ListingListOptions) ([]*model.Listing, error)
	GetByID(ctx context.Context, id string) (*model.Listing, error)
	Create(ctx context.Context, l *model.Listing) error
	Update(ctx context.Context, l *model.Listing) error
	Delete(ctx context.Context, id string) error
	UpdateImageURL(ctx context.Context, id, imageURL string) error
}

// PgListingRepository is the PostgreSQL implementation of ListingRepository.
type PgListingRepository struct {
	pool *pgxpool.Pool
}

// NewPgListingRepository creates a PgListingRepository backed by the given pool.
func NewPgListingRepository(pool *pgxpool.Pool) *PgListingRepository {
	return &PgListingRepository{pool: pool}
}

var _ ListingRepository = (*PgListingRepository)(nil)

const listingColumns = `id, title, description, type, property_type, city,
	COALESCE(district, ''), price, currency, COALESCE(rooms, ''),
	COALESCE(area_m2, 0), COALESCE(image_url, ''), status, featured,
	created_at, updated_at`

func scanListing(row pgx.Row, l *model.Listing) error {
	return row.Scan(&l.ID, &l.Title, &l.Description, &l.Type, &l.PropertyType,
		&l.City, &l.District, &l.Price, &l.Currency, &l.Rooms, &l.AreaM2,
		&l.ImageURL, &l.Status, &l.Featured, &l.CreatedAt, &l.UpdatedAt)
}

// List returns listings matching opts, newest-first.
func (r *PgListingRepository) List(ctx context.Context, opts model.ListingListOptions) ([]*model.Listing, error) {
	var conditions []string
	var args []any

	arg := func(val any) string {
		args = append(args, val)
		return "$" + strconv.Itoa(len(args))
	}

	if opts.Status != "" {
		conditions = append(conditions, "status = "+arg(opts.Status))
	}
	if opts.Type != "" {
		conditions = append(conditions, "type = "+arg(opts.Type))
	}
	if opts.City != "" {
		conditions = append(conditions, "LOWER(city) = LOWER("+arg(opts.City)+")")
	}
	if opts.District != "" {
		conditions = append(conditions, "LOWER(district) = LOWER("+arg(opts.District)+")")
	}
	if opts.MinPrice > 0 {
		conditions = append(conditions, "price >= "+arg(opts.MinPrice))
	}
	if opts.MaxPrice > 0 {
		conditions = append(conditions, "price <= "+arg(opts.MaxPrice))
	}
	if opts.Featured {
		conditions = append(conditions, "featured = true")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, opts.Limit, opts.Offset)

	query := `SELECT ` + listingColumns + ` FROM listings ` + where +
		` ORDER BY created_at DESC
		  LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*model.Listing
	for rows.Next() {
		var l model.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, err
		}
		listings = append(listings, &l)
	}
	return listings, rows.Err()
}

// GetByID returns a single listing or ErrNotFound.
func (r *PgListingRepository) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	var l model.Listing
	row := r.pool.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)
	if err := scanListing(row, &l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// Create inserts a listing and populates ID/CreatedAt/UpdatedAt.
func (r *PgListingRepository) Create(ctx context.Context, l *model.Listing) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO listings (title, description, type, property_type, city, district,
		                       price, currency, rooms, area_m2, status, featured)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, NULLIF($9, ''), NULLIF($10, 0), $11, $12)
		 RETURNING id, created_at, updated_at`,
		l.Title, l.Description, l.Type, l.PropertyType, l.City, l.District,
		l.Price, l.Currency, l.Rooms, l.AreaM2, l.Status, l.Featured,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// Update rewrites all mutable columns of a listing.
func (r *PgListingRepository) Update(ctx context.Context, l *model.Listing) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE listings SET
		   title = $2, description = $3, type = $4, property_type = $5,
		   city = $6, district = NULLIF($7, ''), price = $8, currency = $9,
		   rooms = NULLIF($10, ''), area_m2 = NULLIF($11, 0), status = $12,
		   featured = $13, updated_at = NOW()
		 WHERE id = $1`,
		l.ID, l.Title, l.Description, l.Type, l.PropertyType, l.City, l.District,
		l.Price, l.Currency, l.Rooms, l.AreaM2, l.Status, l.Featured)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a listing.
func (r *PgListingRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateImageURL sets (or clears, with "") the cover image of a listing.
func (r *PgListingRepository) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE listings SET image_url = NULLIF($2, ''), updated_at = NOW() WHERE id = $1`,
		id, imageURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
