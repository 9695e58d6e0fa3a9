package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"shoe-store/models"
)

const shoeListKeyPattern = "shoes_list_*"

// CachedShoeStore keeps listing pages in redis. Only stored shoe records
// are cached; card variants depend on the current time and are always
// computed by the caller. A nil client turns the cache off.
type CachedShoeStore struct {
	next   ShoeStore
	client *redis.Client
	ttl    time.Duration
}

func NewCachedShoeStore(next ShoeStore, client *redis.Client, ttl time.Duration) *CachedShoeStore {
	return &CachedShoeStore{next: next, client: client, ttl: ttl}
}

type cachedShoePage struct {
	Shoes []models.Shoe `json:"shoes"`
	Total int           `json:"total"`
}

func shoeListCacheKey(page, limit int) string {
	return fmt.Sprintf("shoes_list_p%d_l%d", page, limit)
}

func (s *CachedShoeStore) List(ctx context.Context, page, limit int) ([]models.Shoe, int, error) {
	if s.client == nil {
		return s.next.List(ctx, page, limit)
	}

	key := shoeListCacheKey(page, limit)
	if cached, err := s.client.Get(ctx, key).Bytes(); err == nil {
		var p cachedShoePage
		if err := json.Unmarshal(cached, &p); err == nil {
			return p.Shoes, p.Total, nil
		}
		log.Printf("[cache] dropping unreadable entry %s", key)
	}

	shoes, total, err := s.next.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	if data, err := json.Marshal(cachedShoePage{Shoes: shoes, Total: total}); err == nil {
		if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
			log.Printf("[cache] set %s failed: %v", key, err)
		}
	}
	return shoes, total, nil
}

func (s *CachedShoeStore) GetBySlug(ctx context.Context, slug string) (*models.Shoe, error) {
	return s.next.GetBySlug(ctx, slug)
}

func (s *CachedShoeStore) Create(ctx context.Context, shoe *models.Shoe) error {
	if err := s.next.Create(ctx, shoe); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CachedShoeStore) Update(ctx context.Context, shoe *models.Shoe) error {
	if err := s.next.Update(ctx, shoe); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CachedShoeStore) Delete(ctx context.Context, slug string) error {
	if err := s.next.Delete(ctx, slug); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CachedShoeStore) invalidate(ctx context.Context) {
	if s.client == nil {
		return
	}
	iter := s.client.Scan(ctx, 0, shoeListKeyPattern, 0).Iterator()
	for iter.Next(ctx) {
		s.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("[cache] invalidate failed: %v", err)
	}
}
