package domain

import "time"

// UserRole distinguishes regular accounts from administrators.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is the domain model for account holders. Email is stored
// lowercased and is unique. PasswordHash never appears in outward-facing
// representations.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
