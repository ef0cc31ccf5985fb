package store

import (
	"bookmart/models"
	"bookmart/repositories"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Snapshot keys, namespaced per browser session by snapshotKey.
const (
	KeyAccessToken = "accessToken"
	KeyUser        = "user"
	KeyCart        = "cart"
	KeyWelcomeSeen = "hasSeenWelcome"
)

func snapshotKey(sessionID, name string) string {
	return sessionID + ":" + name
}

// CartPersister loads and saves the full cart snapshot. Load returns an
// empty snapshot when nothing has been saved yet.
type CartPersister interface {
	Load(ctx context.Context) (models.CartSnapshot, error)
	Save(ctx context.Context, snapshot models.CartSnapshot) error
}

// IdentityPersister loads and saves the authenticated identity. Save(nil)
// clears it.
type IdentityPersister interface {
	Load(ctx context.Context) (*models.Identity, error)
	Save(ctx context.Context, identity *models.Identity) error
}

func loadJSON(ctx context.Context, repo repositories.SnapshotRepository, key string, v interface{}) (bool, error) {
	data, err := repo.Get(ctx, key)
	if errors.Is(err, repositories.ErrSnapshotNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s snapshot: %w", key, err)
	}
	return true, nil
}

func saveJSON(ctx context.Context, repo repositories.SnapshotRepository, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return repo.Set(ctx, key, data)
}

type repositoryCartPersister struct {
	repo repositories.SnapshotRepository
	key  string
}

func NewCartPersister(repo repositories.SnapshotRepository, sessionID string) CartPersister {
	return &repositoryCartPersister{repo: repo, key: snapshotKey(sessionID, KeyCart)}
}

func (p *repositoryCartPersister) Load(ctx context.Context) (models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	if _, err := loadJSON(ctx, p.repo, p.key, &snapshot); err != nil {
		return models.CartSnapshot{}, err
	}
	return snapshot, nil
}

func (p *repositoryCartPersister) Save(ctx context.Context, snapshot models.CartSnapshot) error {
	if snapshot.Items == nil {
		snapshot.Items = []models.CartLine{}
	}
	return saveJSON(ctx, p.repo, p.key, snapshot)
}

type repositoryIdentityPersister struct {
	repo     repositories.SnapshotRepository
	userKey  string
	tokenKey string
}

func NewIdentityPersister(repo repositories.SnapshotRepository, sessionID string) IdentityPersister {
	return &repositoryIdentityPersister{
		repo:     repo,
		userKey:  snapshotKey(sessionID, KeyUser),
		tokenKey: snapshotKey(sessionID, KeyAccessToken),
	}
}

func (p *repositoryIdentityPersister) Load(ctx context.Context) (*models.Identity, error) {
	var identity models.Identity
	found, err := loadJSON(ctx, p.repo, p.userKey, &identity)
	if err != nil || !found {
		return nil, err
	}
	return &identity, nil
}

func (p *repositoryIdentityPersister) Save(ctx context.Context, identity *models.Identity) error {
	if identity == nil {
		if err := p.repo.Delete(ctx, p.tokenKey); err != nil {
			return err
		}
		return p.repo.Delete(ctx, p.userKey)
	}
	if err := saveJSON(ctx, p.repo, p.tokenKey, identity.AccessToken); err != nil {
		return err
	}
	return saveJSON(ctx, p.repo, p.userKey, identity)
}

// WelcomeFlag is the one-shot "welcome seen" marker of a browser session.
type WelcomeFlag struct {
	repo repositories.SnapshotRepository
	key  string
}

func NewWelcomeFlag(repo repositories.SnapshotRepository, sessionID string) *WelcomeFlag {
	return &WelcomeFlag{repo: repo, key: snapshotKey(sessionID, KeyWelcomeSeen)}
}

func (f *WelcomeFlag) Seen(ctx context.Context) (bool, error) {
	var seen bool
	if _, err := loadJSON(ctx, f.repo, f.key, &seen); err != nil {
		return false, err
	}
	return seen, nil
}

func (f *WelcomeFlag) MarkSeen(ctx context.Context) error {
	return saveJSON(ctx, f.repo, f.key, true)
}
