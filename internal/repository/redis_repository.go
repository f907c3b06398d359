package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"skillpath-service/internal/models"
	"time"

	redis_v9 "github.com/redis/go-redis/v9"
)

const (
	bundleKeyPrefix      = "skillpath:bundle:"
	refreshLockKeyPrefix = "skillpath:refresh-lock:"
)

// RedisRepo serves two roles: a read-through cache for hot recommendation
// bundles and the per-user refresh lock that keeps a refresh single-flight.
type RedisRepo struct {
	client *redis_v9.Client
}

func NewRedisRepo(client *redis_v9.Client) *RedisRepo {
	return &RedisRepo{
		client: client,
	}
}

// AcquireRefreshLock takes the per-user refresh lock. Returns false when
// another refresh for the same user currently holds it.
func (r *RedisRepo) AcquireRefreshLock(ctx context.Context, userID string, expiry time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, refreshLockKeyPrefix+userID, 1, expiry).Result()
	if err != nil {
		return false, fmt.Errorf("error acquiring refresh lock: %w", err)
	}
	return ok, nil
}

func (r *RedisRepo) ReleaseRefreshLock(ctx context.Context, userID string) {
	if err := r.client.Del(ctx, refreshLockKeyPrefix+userID).Err(); err != nil {
		log.Printf("error releasing refresh lock for user %s: %v", userID, err)
	}
}

// CacheBundle stores a bundle under the user's key with the configured expiry
func (r *RedisRepo) CacheBundle(ctx context.Context, rec *models.SkillPathRecommendation, expiry time.Duration) error {
	val, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("error marshaling bundle for cache: %w", err)
	}

	if err := r.client.Set(ctx, bundleKeyPrefix+rec.UserID, val, expiry).Err(); err != nil {
		return fmt.Errorf("error caching bundle: %w", err)
	}
	return nil
}

// GetCachedBundle returns the cached bundle for a user, or nil on a miss
func (r *RedisRepo) GetCachedBundle(ctx context.Context, userID string) (*models.SkillPathRecommendation, error) {
	data, err := r.client.Get(ctx, bundleKeyPrefix+userID).Bytes()
	if err != nil {
		if err == redis_v9.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading cached bundle: %w", err)
	}

	var rec models.SkillPathRecommendation
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("error decoding cached bundle: %w", err)
	}
	return &rec, nil
}

func (r *RedisRepo) InvalidateBundle(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, bundleKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("error invalidating cached bundle: %w", err)
	}
	return nil
}
