package model

import "time"

// Listing types and statuses stored in the listings table.
const (
	ListingTypeSale = "sale"
	ListingTypeRent = "rent"

	ListingStatusActive  = "active"
	ListingStatusPassive = "passive"
)

// Listing represents a property advertised on the public site.
type Listing struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`          // "sale" | "rent"
	PropertyType string    `json:"property_type"` // "apartment", "villa", "land", "office", ...
	City         string    `json:"city"`
	District     string    `json:"district,omitempty"`
	Price        int64     `json:"price"`
	Currency     string    `json:"currency"` // "TRY" unless stated otherwise
	Rooms        string    `json:"rooms,omitempty"` // "3+1" style
	AreaM2       int       `json:"area_m2,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	Status       string    `json:"status"` // "active" | "passive"
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListingListOptions carries filter and pagination parameters for listing queries.
type ListingListOptions struct {
	Type     string // "", "sale", "rent"
	City     string
	District string
	MinPrice int64
	MaxPrice int64
	// Status filters by listing status. The public site always passes "active";
	// the admin view may pass "" to see everything.
	Status   string
	Featured bool // when true, only featured listings
	Limit    int
	Offset   int
}
