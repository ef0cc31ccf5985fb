package repositories

import (
	"context"
	"errors"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository is a durable key-value store for client state
// snapshots. Get returns ErrSnapshotNotFound for a missing key. Delete of
// a missing key is not an error.
type SnapshotRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
