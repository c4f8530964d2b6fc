package services

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-veritas/internal/logger"
	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/sbilibin2017/gw-veritas/internal/repositories"
)

// AssetCache caches public catalog pages under a version number.
type AssetCache interface {
	Version(ctx context.Context) (int64, error)
	Get(ctx context.Context, version int64, page models.Page) (*models.ContributionPage, error)
	Set(ctx context.Context, version int64, page models.Page, value *models.ContributionPage) error
}

// CatalogService serves the admin review queue and the public asset catalog.
type CatalogService struct {
	admins AdminReader
	reader ContributionReader
	cache  AssetCache
}

// NewCatalogService creates a new CatalogService. cache may be nil.
func NewCatalogService(admins AdminReader, reader ContributionReader, cache AssetCache) *CatalogService {
	return &CatalogService{
		admins: admins,
		reader: reader,
		cache:  cache,
	}
}

// ListPending returns a page of PENDING contributions, oldest first, with their owners.
func (s *CatalogService) ListPending(ctx context.Context, adminID int64, page models.Page) (*models.ContributionPage, error) {
	if err := requireAdmin(ctx, s.admins, adminID); err != nil {
		return nil, err
	}

	total, err := s.reader.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to count pending contributions", "error", err)
		return nil, persistence(err)
	}

	list, err := s.reader.ListByStatusOldestFirst(ctx, models.StatusPending, page.Limit, page.Offset())
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list pending contributions", "error", err)
		return nil, persistence(err)
	}

	return &models.ContributionPage{Data: list, Pagination: models.NewPageMeta(page, total)}, nil
}

// ListAssets returns a page of VERIFIED contributions, newest first, with their owners.
// Pages come from the cache when possible; cache failures fall through to the database.
func (s *CatalogService) ListAssets(ctx context.Context, page models.Page) (*models.ContributionPage, error) {
	log := logger.FromContext(ctx)

	var (
		version  int64
		useCache = s.cache != nil
	)
	if useCache {
		var err error
		if version, err = s.cache.Version(ctx); err != nil {
			log.Warnw("asset cache unavailable", "error", err)
			useCache = false
		}
	}

	if useCache {
		cached, err := s.cache.Get(ctx, version, page)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			log.Warnw("asset cache read failed", "error", err)
		}
	}

	total, err := s.reader.CountByStatus(ctx, models.StatusVerified)
	if err != nil {
		log.Errorw("failed to count assets", "error", err)
		return nil, persistence(err)
	}

	list, err := s.reader.ListByStatusNewestFirst(ctx, models.StatusVerified, page.Limit, page.Offset())
	if err != nil {
		log.Errorw("failed to list assets", "error", err)
		return nil, persistence(err)
	}

	result := &models.ContributionPage{Data: list, Pagination: models.NewPageMeta(page, total)}

	if useCache {
		if err := s.cache.Set(ctx, version, page, result); err != nil {
			log.Warnw("asset cache write failed", "error", err)
		}
	}

	return result, nil
}
