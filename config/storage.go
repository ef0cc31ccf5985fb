package config

import (
	"bookmart/repositories"
	"context"
	"fmt"
	"log"
)

// OpenStorage builds the snapshot repository selected by STORAGE_DRIVER.
// The returned close function releases any pool or connection it opened.
func OpenStorage(ctx context.Context, cfg *Config) (repositories.SnapshotRepository, func(), error) {
	switch cfg.StorageDriver {
	case StorageMemory:
		log.Println("Using in-memory snapshot storage, state is lost on restart")
		return repositories.NewMemoryRepository(), func() {}, nil

	case StorageFile, "":
		repo, err := repositories.NewFileRepository(cfg.StorageDir)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Snapshot directory: %s", cfg.StorageDir)
		return repo, func() {}, nil

	case StorageRedis:
		client, err := ConnectRedis(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("redis connection failed: %w", err)
		}
		closeFn := func() {
			client.Close()
			log.Println("Redis connection closed")
		}
		return repositories.NewRedisRepository(client, "bookmart:", cfg.SnapshotTTL), closeFn, nil

	case StoragePostgres:
		pool, err := ConnectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection failed: %w", err)
		}
		repo := repositories.NewPostgresRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("create snapshot table: %w", err)
		}
		closeFn := func() {
			pool.Close()
			log.Println("Database connection closed")
		}
		return repo, closeFn, nil
	}

	return nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
}
