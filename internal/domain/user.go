package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRole distinguishes shoppers, sellers and administrators.
// The role is a UI gate only, not a security boundary.
type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleVendor UserRole = "vendor"
	RoleAdmin  UserRole = "admin"
)

// User represents an account in the marketplace
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Role      UserRole  `json:"role" validate:"required,oneof=user vendor admin"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create adds a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)
}
