package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func OpenRedis(addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// Store is the read-model cache over Redis. Callers treat it as
// advisory: a miss or error only means reading from the database.
type Store struct {
	rdb        *redis.Client
	defaultTTL time.Duration
}

func NewStore(rdb *redis.Client, defaultTTL time.Duration) *Store {
	return &Store{rdb: rdb, defaultTTL: defaultTTL}
}

// Cache key scheme, one key per entity snapshot plus list patterns.
func CampaignKey(id string) string      { return "campaign:" + id }
func CampaignStatsKey(id string) string { return "campaign:" + id + ":stats" }
func CampaignsPattern() string          { return "campaigns:*" }

// CampaignListKey keys one page of a filtered campaign listing; every
// key it produces matches CampaignsPattern so list invalidation sweeps
// them all.
func CampaignListKey(status, category, search string, page, limit int) string {
	return fmt.Sprintf("campaigns:%s:%s:%s:%d:%d", status, category, search, page, limit)
}

// GetJSON loads key into dest; the second return is false on a miss.
func (s *Store) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	return s.rdb.Set(ctx, key, raw, ttl).Err()
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

// DeletePattern removes every key matching pattern via SCAN, never KEYS.
func (s *Store) DeletePattern(ctx context.Context, pattern string) error {
	iter := s.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) >= 100 {
			if err := s.rdb.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return s.rdb.Del(ctx, batch...).Err()
	}
	return nil
}
