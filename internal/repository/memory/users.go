package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rohitkr5850/storefront/internal/domain"
)

// UserRepository is an in-memory user store seeded with the mock accounts
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

// NewUserRepository creates a user store seeded with the mock dataset
func NewUserRepository() *UserRepository {
	users := make(map[uuid.UUID]*domain.User)
	for _, u := range seedUsers() {
		users[u.ID] = u
	}
	return &UserRepository{users: users}
}

// Create adds a new user
func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrAlreadyExists
		}
	}

	cp := *user
	r.users[user.ID] = &cp
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// GetByEmail retrieves a user by email (case-insensitive)
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}
