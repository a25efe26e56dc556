package auth

import "time"

// User represents an authenticated user account.
type User struct {
	ID           int64
	Username     string
	FullName     string
	Role         string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
