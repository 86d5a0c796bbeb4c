package model

import "time"

// AdminUser represents a back-office account. PasswordHash is a bcrypt hash
// and is never serialized into API responses.
type AdminUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
