package store

import (
	"bookmart/models"
	"context"
	"log"
	"sync"
)

// SessionStore holds at most one authenticated identity.
type SessionStore struct {
	mu        sync.RWMutex
	identity  *models.Identity
	persister IdentityPersister
}

func NewSessionStore(persister IdentityPersister) *SessionStore {
	return &SessionStore{persister: persister}
}

// Restore rehydrates the identity from its snapshot.
func (s *SessionStore) Restore(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	identity, err := s.persister.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
	return nil
}

// SetUser replaces the identity wholesale. nil clears it.
func (s *SessionStore) SetUser(identity *models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if identity != nil {
		copied := *identity
		identity = &copied
	}
	s.identity = identity
	s.persistLocked()
}

// Logout forgets the identity and its snapshots. The cart is left alone.
func (s *SessionStore) Logout() {
	s.SetUser(nil)
}

// User returns a copy of the current identity, or nil.
func (s *SessionStore) User() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return nil
	}
	copied := *s.identity
	return &copied
}

func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return ""
	}
	return s.identity.AccessToken
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

func (s *SessionStore) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil && s.identity.Role == models.RoleAdmin
}

func (s *SessionStore) persistLocked() {
	if s.persister == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.persister.Save(ctx, s.identity); err != nil {
		log.Printf("Failed to persist %s snapshot: %v", KeyUser, err)
	}
}
