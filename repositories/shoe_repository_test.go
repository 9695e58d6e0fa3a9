package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoe-store/models"
)

// openTestDB connects to DATABASE_URL and expects the migrations to be applied.
func openTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL is not set, skipping repository integration tests")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	cfg.MaxConns = 4

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Fatalf("ping db: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

func TestShoeRepositoryLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewShoeRepository(db)
	ctx := context.Background()

	slug := "repo-test-" + time.Now().Format("150405.000000")
	t.Cleanup(func() {
		db.Exec(context.Background(), `DELETE FROM shoes WHERE slug = $1`, slug)
	})

	sale := 7000
	shoe := &models.Shoe{
		Slug:        slug,
		Name:        "Repo Runner",
		Price:       9000,
		SalePrice:   &sale,
		ReleaseDate: time.Now().Add(-48 * time.Hour).UTC(),
		NumOfColors: 2,
	}
	require.NoError(t, repo.Create(ctx, shoe))
	assert.NotZero(t, shoe.ID)
	assert.True(t, shoe.IsActive)

	assert.ErrorIs(t, repo.Create(ctx, shoe), ErrDuplicate)

	got, err := repo.GetBySlug(ctx, slug)
	require.NoError(t, err)
	require.NotNil(t, got.SalePrice)
	assert.Equal(t, 7000, *got.SalePrice)

	got.SalePrice = nil
	got.Name = "Repo Runner II"
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetBySlug(ctx, slug)
	require.NoError(t, err)
	assert.Nil(t, got.SalePrice)
	assert.Equal(t, "Repo Runner II", got.Name)

	require.NoError(t, repo.Delete(ctx, slug))
	_, err = repo.GetBySlug(ctx, slug)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, slug), ErrNotFound)
}

func TestShoeRepositoryList(t *testing.T) {
	db := openTestDB(t)
	repo := NewShoeRepository(db)

	shoes, total, err := repo.List(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(shoes), 2)
	assert.GreaterOrEqual(t, total, len(shoes))
}
