package repositories

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func exerciseRepository(t *testing.T, repo SnapshotRepository) {
	t.Helper()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "s1:cart"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("Get missing key: err = %v, want ErrSnapshotNotFound", err)
	}

	if err := repo.Set(ctx, "s1:cart", []byte(`{"items":[]}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := repo.Get(ctx, "s1:cart")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"items":[]}` {
		t.Errorf("Get = %s", got)
	}

	if err := repo.Set(ctx, "s1:cart", []byte(`{"items":[{"quantity":2}]}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = repo.Get(ctx, "s1:cart")
	if err != nil {
		t.Fatalf("Get after overwrite: %v", err)
	}
	if string(got) != `{"items":[{"quantity":2}]}` {
		t.Errorf("Get after overwrite = %s", got)
	}

	if _, err := repo.Get(ctx, "s2:cart"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("keys leak between sessions: err = %v", err)
	}

	if err := repo.Delete(ctx, "s1:cart"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "s1:cart"); err != nil {
		t.Fatalf("Delete twice: %v", err)
	}
	if _, err := repo.Get(ctx, "s1:cart"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("Get after Delete: err = %v", err)
	}
}

func TestMemoryRepository(t *testing.T) {
	exerciseRepository(t, NewMemoryRepository())
}

func TestMemoryRepositoryCopiesValues(t *testing.T) {
	repo := NewMemoryRepository()
	value := []byte(`"abc"`)
	repo.Set(context.Background(), "k", value)
	value[1] = 'x'

	got, _ := repo.Get(context.Background(), "k")
	if string(got) != `"abc"` {
		t.Errorf("stored value aliased caller slice: %s", got)
	}
}

func TestFileRepository(t *testing.T) {
	repo, err := NewFileRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileRepository: %v", err)
	}
	exerciseRepository(t, repo)
}

func TestFileRepositoryEscapesKeys(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("NewFileRepository: %v", err)
	}
	if err := repo.Set(context.Background(), "../escape/cart", []byte(`1`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one file in snapshot dir, got %d", len(entries))
	}
}

func TestFileRepositorySurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	first, _ := NewFileRepository(dir)
	first.Set(context.Background(), "s1:user", []byte(`{"id":"u1"}`))

	second, _ := NewFileRepository(dir)
	got, err := second.Get(context.Background(), "s1:user")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if string(got) != `{"id":"u1"}` {
		t.Errorf("Get after reopen = %s", got)
	}
}

func TestRedisRepository(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("ParseURL: %v", err)
	}
	client := redis.NewClient(opt)
	defer client.Close()

	exerciseRepository(t, NewRedisRepository(client, "bookmart-test:", 0))
}

func TestPostgresRepository(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("pgxpool.New: %v", err)
	}
	defer pool.Close()

	repo := NewPostgresRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	pool.Exec(ctx, `DELETE FROM client_snapshots WHERE key LIKE 's1:%' OR key LIKE 's2:%'`)

	exerciseRepository(t, repo)
}
