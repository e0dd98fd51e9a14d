// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account.
// Email is unique by convention; the Postgres backend enforces it,
// the in-memory backend checks at insert time.
type User struct {
	ID           string    `json:"userId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Contact      string    `json:"contact,omitempty"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}
