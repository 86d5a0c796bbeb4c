package model

import "time"

// ContactMessage represents an accepted contact form submission.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactListOptions carries filter and pagination parameters for the
// moderation view. Results are always ordered newest-first.
type ContactListOptions struct {
	// Read filters by read state: "", "all", "read", "unread".
	// Empty string and "all" return all messages.
	Read   string
	Limit  int
	Offset int
}
