package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique email
	Username     string    `json:"username" db:"username"`     // Unique lower-cased username
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never serialized
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`     // Authorization source of truth
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UserSummary is the public part of a user attached to listings.
type UserSummary struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// Summary strips credentials from the record.
func (u *UserDB) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	}
}

// Principal is an authenticated caller. IsAdmin always comes from a fresh
// users-table read, never from token claims.
type Principal struct {
	UserID  int64
	IsAdmin bool
}
