package store

import (
	"bookmart/repositories"
	"context"
	"log"
	"sync"
	"time"
)

// State bundles the stores of one browser session.
type State struct {
	ID      string
	Cart    *CartStore
	Session *SessionStore
	Welcome *WelcomeFlag

	lastSeen time.Time
}

// Registry hands out per-session State, restoring it from the snapshot
// repository the first time a session id is seen.
type Registry struct {
	repo repositories.SnapshotRepository
	now  func() time.Time

	mu     sync.Mutex
	states map[string]*State
}

func NewRegistry(repo repositories.SnapshotRepository) *Registry {
	return &Registry{
		repo:   repo,
		now:    time.Now,
		states: make(map[string]*State),
	}
}

func (r *Registry) Get(ctx context.Context, sessionID string) (*State, error) {
	r.mu.Lock()
	if state, ok := r.states[sessionID]; ok {
		state.lastSeen = r.now()
		r.mu.Unlock()
		return state, nil
	}
	r.mu.Unlock()

	state, err := r.restore(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another request for the same session may have restored it first.
	if existing, ok := r.states[sessionID]; ok {
		existing.lastSeen = r.now()
		return existing, nil
	}
	state.lastSeen = r.now()
	r.states[sessionID] = state
	return state, nil
}

func (r *Registry) restore(ctx context.Context, sessionID string) (*State, error) {
	state := &State{
		ID:      sessionID,
		Cart:    NewCartStore(NewCartPersister(r.repo, sessionID)),
		Session: NewSessionStore(NewIdentityPersister(r.repo, sessionID)),
		Welcome: NewWelcomeFlag(r.repo, sessionID),
	}

	if err := state.Cart.Restore(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		log.Printf("Discarding cart snapshot for session %s: %v", sessionID, err)
	}
	if err := state.Session.Restore(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		log.Printf("Discarding user snapshot for session %s: %v", sessionID, err)
	}
	return state, nil
}

// Len returns the number of sessions held in memory.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// Sweep drops sessions idle for longer than maxIdle. Their snapshots stay
// in the repository.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	removed := 0
	for id, state := range r.states {
		if state.lastSeen.Before(cutoff) {
			delete(r.states, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := r.Sweep(maxIdle); removed > 0 {
				log.Printf("Released %d idle sessions", removed)
			}
		}
	}
}
