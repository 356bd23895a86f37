// Package auth implements the mock sign-in flow. It looks accounts up in the
// seeded user set and persists the signed-in record to the shared key-value
// slot; no passwords are verified and no tokens are issued. The role carried
// on the user is a UI gate, not a security boundary.
package auth

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/pkg/validator"
	"github.com/rohitkr5850/storefront/internal/storage"
)

// Service handles the mock authentication flow
type Service struct {
	users    domain.UserRepository
	store    storage.Store
	key      string
	validate *validatorv10.Validate
	logger   *logger.Logger

	mu      sync.RWMutex
	current *domain.User
}

// NewService creates an auth service, restoring any persisted signed-in user.
// A missing or unparseable record falls back to signed-out; the corrupt value
// is discarded and no error reaches the caller.
func NewService(ctx context.Context, users domain.UserRepository, store storage.Store, key string, log *logger.Logger) *Service {
	s := &Service{
		users:    users,
		store:    store,
		key:      key,
		validate: validator.Get(),
		logger:   log,
	}
	s.current = s.restore(ctx)
	return s
}

func (s *Service) restore(ctx context.Context) *domain.User {
	val, err := s.store.Get(ctx, s.key)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			s.logger.Warnf("Failed to read persisted user, starting signed out: %v", err)
		}
		return nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		s.logger.Warnf("Discarding unparseable persisted user: %v", err)
		if removeErr := s.store.Remove(ctx, s.key); removeErr != nil {
			s.logger.Warnf("Failed to remove corrupt user value: %v", removeErr)
		}
		return nil
	}

	s.logger.Infof("Restored signed-in user %s", user.Email)
	return &user
}

// Login signs in the account registered under email. The password is
// accepted but not verified; this mirrors the mock backend.
func (s *Service) Login(ctx context.Context, email, _ string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Login failed, unknown email: %s", email)
		} else {
			s.logger.Error("Failed to look up user", err)
		}
		return nil, err
	}

	s.mu.Lock()
	s.current = user
	s.persist(ctx, user)
	s.mu.Unlock()

	s.logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User signed in")

	return user, nil
}

// Register creates a new account and signs it in
func (s *Service) Register(ctx context.Context, name, email string, role domain.UserRole) (*domain.User, error) {
	user := &domain.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if err := s.validate.Struct(user); err != nil {
		s.logger.Error("User validation failed", err)
		return nil, domain.ErrInvalidInput
	}

	if err := s.users.Create(ctx, user); err != nil {
		if err == domain.ErrAlreadyExists {
			s.logger.Debugf("Registration failed, email in use: %s", email)
		} else {
			s.logger.Error("Failed to create user", err)
		}
		return nil, err
	}

	s.mu.Lock()
	s.current = user
	s.persist(ctx, user)
	s.mu.Unlock()

	s.logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User registered")

	return user, nil
}

// Logout signs out the current user and removes the persisted record
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.store.Remove(ctx, s.key); err != nil {
		s.logger.Warnf("Failed to remove persisted user: %v", err)
	}

	s.logger.Info("User signed out")
}

// Current returns the signed-in user, or nil when signed out
func (s *Service) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// persist mirrors the signed-in user to the key-value slot; the caller must
// hold the write lock. Failures are logged and swallowed.
func (s *Service) persist(ctx context.Context, user *domain.User) {
	data, err := json.Marshal(user)
	if err != nil {
		s.logger.Warnf("Failed to marshal user for persistence: %v", err)
		return
	}

	if err := s.store.Set(ctx, s.key, string(data)); err != nil {
		s.logger.Warnf("Failed to persist user: %v", err)
	}
}
