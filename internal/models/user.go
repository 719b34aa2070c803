package models

import "time"

// Role values stored in users.role. Tokens carry the raw string; anything
// that is not RoleAdmin fails the admin gate.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database.
type UserDB struct {
	ID            int64     `json:"id" db:"id"`                           // Primary key
	Username      string    `json:"username" db:"username"`               // Display name
	Email         string    `json:"email" db:"email"`                     // Unique email
	PasswordHash  string    `json:"-" db:"password_hash"`                 // bcrypt hash, never serialized
	Role          string    `json:"role" db:"role"`                       // "user" or "admin"
	APIUsageCount int64     `json:"api_usage_count" db:"api_usage_count"` // AI-service call counter
	CreatedAt     time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}

// User is the public view of a user record: everything the API returns,
// nothing it must not (no password hash).
type User struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	APIUsageCount int64  `json:"api_usage_count"`
}

// Public converts a database row into its public view.
func (u *UserDB) Public() *User {
	return &User{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Role:          u.Role,
		APIUsageCount: u.APIUsageCount,
	}
}
