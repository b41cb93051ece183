package store

import (
	"context"
	"fmt"
	"sync"

	"admingate/internal/admin/models"
	id "admingate/pkg/domain"
)

// InMemoryStore keeps admins in memory. It is the default backend when no
// database is configured and doubles as the test store.
type InMemoryStore struct {
	mu      sync.RWMutex
	admins  map[id.AdminID]*models.Admin
	byEmail map[string]id.AdminID
}

var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore constructs an empty in-memory admin store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		admins:  make(map[id.AdminID]*models.Admin),
		byEmail: make(map[string]id.AdminID),
	}
}

func (s *InMemoryStore) Create(_ context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[admin.Email]; exists {
		return fmt.Errorf("admin %q: %w", admin.Email, ErrDuplicate)
	}
	copied := *admin
	s.admins[admin.ID] = &copied
	s.byEmail[admin.Email] = admin.ID
	return nil
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Exact, case-sensitive match as stored.
	adminID, ok := s.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("admin not found: %w", ErrNotFound)
	}
	copied := *s.admins[adminID]
	return &copied, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, adminID id.AdminID) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	admin, ok := s.admins[adminID]
	if !ok {
		return nil, fmt.Errorf("admin not found: %w", ErrNotFound)
	}
	copied := *admin
	return &copied, nil
}
