package store

import (
	"bookmart/models"
	"bookmart/repositories"
	"context"
	"testing"
	"time"
)

func TestRegistryReturnsSameStateForSession(t *testing.T) {
	registry := NewRegistry(repositories.NewMemoryRepository())
	ctx := context.Background()

	first, err := registry.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, _ := registry.Get(ctx, "s1")
	if first != second {
		t.Error("same session id produced different states")
	}
	other, _ := registry.Get(ctx, "s2")
	if other == first {
		t.Error("different session ids share a state")
	}
	if registry.Len() != 2 {
		t.Errorf("Len = %d, want 2", registry.Len())
	}
}

func TestRegistryRestoresFromSnapshots(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	ctx := context.Background()

	registry := NewRegistry(repo)
	state, _ := registry.Get(ctx, "s1")
	state.Cart.AddItem(bookA, 3)
	state.Session.SetUser(&models.Identity{ID: "u1", Role: models.RoleUser, AccessToken: "tok"})

	reloaded := NewRegistry(repo)
	state, err := reloaded.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if state.Cart.TotalItems() != 3 {
		t.Errorf("cart not restored: %d items", state.Cart.TotalItems())
	}
	if !state.Session.IsAuthenticated() {
		t.Error("identity not restored")
	}
}

func TestRegistryDiscardsCorruptSnapshot(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	repo.Set(context.Background(), "s1:cart", []byte("not json"))

	state, err := NewRegistry(repo).Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(state.Cart.Items()) != 0 {
		t.Error("corrupt snapshot should leave an empty cart")
	}
}

func TestRegistrySweep(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	registry := NewRegistry(repo)
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return now }
	ctx := context.Background()

	idle, _ := registry.Get(ctx, "idle")
	idle.Cart.AddItem(bookA, 1)

	now = now.Add(20 * time.Minute)
	registry.Get(ctx, "active")

	now = now.Add(15 * time.Minute)
	if removed := registry.Sweep(30 * time.Minute); removed != 1 {
		t.Fatalf("Sweep removed %d, want 1", removed)
	}
	if registry.Len() != 1 {
		t.Errorf("Len = %d, want 1", registry.Len())
	}

	back, _ := registry.Get(ctx, "idle")
	if back == idle {
		t.Error("swept session was not rebuilt")
	}
	if back.Cart.TotalItems() != 1 {
		t.Error("swept session lost its persisted cart")
	}
}

func TestRegistryRunStopsWithContext(t *testing.T) {
	registry := NewRegistry(repositories.NewMemoryRepository())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		registry.Run(ctx, time.Millisecond, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
