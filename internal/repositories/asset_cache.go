package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-veritas/internal/logger"
	"github.com/sbilibin2017/gw-veritas/internal/models"
)

const assetCacheVersionKey = "assets:version"

// AssetCacheRepository caches public asset catalog pages in Redis.
// Page keys embed a version number; Invalidate bumps the version so every
// previously cached page becomes unreachable and expires on its own.
type AssetCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached pages
}

// NewAssetCacheRepository creates a new repository instance with the given TTL
func NewAssetCacheRepository(client *redis.Client, expiration time.Duration) *AssetCacheRepository {
	return &AssetCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Version returns the current cache version. Callers read it before loading
// a page from the database and pass it to Get and Set, so a page loaded before
// an invalidation is never stored under the newer version.
func (r *AssetCacheRepository) Version(ctx context.Context) (int64, error) {
	version, err := r.client.Get(ctx, assetCacheVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

// Get returns a cached page or ErrCacheMiss.
func (r *AssetCacheRepository) Get(ctx context.Context, version int64, page models.Page) (*models.ContributionPage, error) {
	key := pageKey(version, page)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.FromContext(ctx).Debugw("asset cache miss", "key", key)
		return nil, ErrCacheMiss
	}
	if err != nil {
		logger.FromContext(ctx).Warnw("asset cache get failed", "key", key, "error", err)
		return nil, err
	}

	var cached models.ContributionPage
	if err := json.Unmarshal(val, &cached); err != nil {
		logger.FromContext(ctx).Warnw("asset cache entry is corrupt", "key", key, "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Debugw("asset cache hit", "key", key, "items", len(cached.Data))
	return &cached, nil
}

// Set caches a page with the repository TTL.
func (r *AssetCacheRepository) Set(ctx context.Context, version int64, page models.Page, value *models.ContributionPage) error {
	key := pageKey(version, page)

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.FromContext(ctx).Debugw("asset cache set", "key", key, "error", err)

	return err
}

// Invalidate makes every cached page stale.
func (r *AssetCacheRepository) Invalidate(ctx context.Context) error {
	version, err := r.client.Incr(ctx, assetCacheVersionKey).Result()

	logger.FromContext(ctx).Infow("asset cache invalidated", "version", version, "error", err)

	return err
}

func pageKey(version int64, page models.Page) string {
	return fmt.Sprintf("assets:v%d:page:%d:limit:%d", version, page.Number, page.Limit)
}
