package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoe-store/models"
)

type countingStore struct {
	shoes   []models.Shoe
	lists   int
	creates int
	updates int
	deletes int
}

func (s *countingStore) List(ctx context.Context, page, limit int) ([]models.Shoe, int, error) {
	s.lists++
	return s.shoes, len(s.shoes), nil
}

func (s *countingStore) GetBySlug(ctx context.Context, slug string) (*models.Shoe, error) {
	for i := range s.shoes {
		if s.shoes[i].Slug == slug {
			return &s.shoes[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *countingStore) Create(ctx context.Context, shoe *models.Shoe) error {
	s.creates++
	s.shoes = append(s.shoes, *shoe)
	return nil
}

func (s *countingStore) Update(ctx context.Context, shoe *models.Shoe) error {
	s.updates++
	return nil
}

func (s *countingStore) Delete(ctx context.Context, slug string) error {
	s.deletes++
	return nil
}

func TestCachedShoeStoreWithoutRedisPassesThrough(t *testing.T) {
	inner := &countingStore{shoes: []models.Shoe{{Slug: "a"}, {Slug: "b"}}}
	store := NewCachedShoeStore(inner, nil, time.Minute)
	ctx := context.Background()

	shoes, total, err := store.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, shoes, 2)
	assert.Equal(t, 2, total)

	_, _, err = store.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.lists)

	require.NoError(t, store.Create(ctx, &models.Shoe{Slug: "c"}))
	require.NoError(t, store.Delete(ctx, "c"))
	assert.Equal(t, 1, inner.creates)
	assert.Equal(t, 1, inner.deletes)

	got, err := store.GetBySlug(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", got.Slug)

	_, err = store.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShoeListCacheKey(t *testing.T) {
	assert.Equal(t, "shoes_list_p2_l20", shoeListCacheKey(2, 20))
}

func newRedisCache(t *testing.T, inner ShoeStore, ttl time.Duration) (*CachedShoeStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCachedShoeStore(inner, client, ttl), mr
}

func TestCachedShoeStoreServesPagesFromRedis(t *testing.T) {
	inner := &countingStore{shoes: []models.Shoe{{Slug: "a", Price: 100}, {Slug: "b", Price: 200}}}
	store, mr := newRedisCache(t, inner, 5*time.Minute)
	ctx := context.Background()

	shoes, total, err := store.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, inner.lists)

	key := shoeListCacheKey(1, 10)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 5*time.Minute, mr.TTL(key))

	cached, total, err := store.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.lists, "second read should come from redis")
	assert.Equal(t, 2, total)
	require.Len(t, cached, 2)
	assert.Equal(t, shoes[1].Slug, cached[1].Slug)
	assert.Equal(t, 200, cached[1].Price)

	_, _, err = store.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.lists, "each page has its own entry")
}

func TestCachedShoeStoreInvalidatesOnWrites(t *testing.T) {
	ctx := context.Background()

	writes := map[string]func(s *CachedShoeStore) error{
		"create": func(s *CachedShoeStore) error { return s.Create(ctx, &models.Shoe{Slug: "c"}) },
		"update": func(s *CachedShoeStore) error { return s.Update(ctx, &models.Shoe{Slug: "a"}) },
		"delete": func(s *CachedShoeStore) error { return s.Delete(ctx, "a") },
	}

	for name, write := range writes {
		t.Run(name, func(t *testing.T) {
			inner := &countingStore{shoes: []models.Shoe{{Slug: "a"}}}
			store, mr := newRedisCache(t, inner, time.Minute)

			_, _, err := store.List(ctx, 1, 10)
			require.NoError(t, err)
			_, _, err = store.List(ctx, 2, 5)
			require.NoError(t, err)
			require.NoError(t, mr.Set("featured", "keep"))

			require.NoError(t, write(store))

			assert.False(t, mr.Exists(shoeListCacheKey(1, 10)))
			assert.False(t, mr.Exists(shoeListCacheKey(2, 5)))
			assert.True(t, mr.Exists("featured"), "unrelated keys survive")

			_, _, err = store.List(ctx, 1, 10)
			require.NoError(t, err)
			assert.Equal(t, 3, inner.lists)
		})
	}
}

func TestCachedShoeStoreDropsUnreadableEntries(t *testing.T) {
	inner := &countingStore{shoes: []models.Shoe{{Slug: "a"}}}
	store, mr := newRedisCache(t, inner, time.Minute)
	require.NoError(t, mr.Set(shoeListCacheKey(1, 10), "not json"))

	shoes, total, err := store.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.lists)
	assert.Equal(t, 1, total)
	assert.Equal(t, "a", shoes[0].Slug)
}
