package model

import "time"

// TeamMember represents an agent shown on the team page.
type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"` // "Satış Danışmanı" etc.
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}
