// Package service provides application use cases.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"catalogue-service/internal/domain"
	"catalogue-service/pkg/locker"
)

// ContentService handles catalogue read operations and ingestion.
type ContentService struct {
	contents   domain.ContentRepository
	categories domain.CategoryRepository
	metadata   domain.MetadataProvider
	locker     locker.DistributedLocker
	cache      domain.Cache
	cacheTTL   time.Duration
	lockTTL    time.Duration
	logger     *zap.Logger
}

// ContentServiceConfig holds optional collaborators and tunables.
type ContentServiceConfig struct {
	Locker   locker.DistributedLocker // nil disables ingestion locking
	Cache    domain.Cache             // nil disables list caching
	CacheTTL time.Duration
	LockTTL  time.Duration
}

// NewContentService creates a new ContentService.
func NewContentService(
	contents domain.ContentRepository,
	categories domain.CategoryRepository,
	metadata domain.MetadataProvider,
	cfg ContentServiceConfig,
	logger *zap.Logger,
) *ContentService {
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 30 * time.Second
	}

	return &ContentService{
		contents:   contents,
		categories: categories,
		metadata:   metadata,
		locker:     cfg.Locker,
		cache:      cfg.Cache,
		cacheTTL:   cfg.CacheTTL,
		lockTTL:    cfg.LockTTL,
		logger:     logger,
	}
}

// ContentDetail is a content record merged with its similar set.
type ContentDetail struct {
	Content *domain.Content
	Similar []*domain.Content
}

// IngestResult is the outcome of an ingestion.
type IngestResult struct {
	Content              *domain.Content
	Providers            []domain.StreamingProvider
	ProvidersUnavailable bool
	Message              string
}

// GetAllContents returns one page of all contents.
func (s *ContentService) GetAllContents(ctx context.Context, params domain.PageParams) (*domain.Page[*domain.Content], error) {
	params, err := normalize(params)
	if err != nil {
		return nil, err
	}

	return withPageCache(ctx, s.cache, s.cacheTTL, s.logger,
		pageCacheKey("content:list", params),
		func() (*domain.Page[*domain.Content], error) {
			return s.contents.List(ctx, params)
		})
}

// GetContentByID returns the content with the given external id together
// with up to eight similar items, or ErrNotFound.
func (s *ContentService) GetContentByID(ctx context.Context, tmdbID string) (*ContentDetail, error) {
	id, err := parseContentID(tmdbID, "tmdbId")
	if err != nil {
		return nil, err
	}

	content, err := s.contents.GetByContentID(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, domain.NotFoundf("content %d", id)
	}

	similar, err := s.contents.ListSimilar(ctx, content.CategoryID, id, 0)
	if err != nil {
		return nil, err
	}

	return &ContentDetail{Content: content, Similar: similar}, nil
}

// GetRecommendedContents returns one page of contents flagged recommended.
func (s *ContentService) GetRecommendedContents(ctx context.Context, params domain.PageParams) (*domain.Page[*domain.Content], error) {
	params, err := normalize(params)
	if err != nil {
		return nil, err
	}

	return withPageCache(ctx, s.cache, s.cacheTTL, s.logger,
		pageCacheKey("content:recommended", params),
		func() (*domain.Page[*domain.Content], error) {
			return s.contents.ListRecommended(ctx, params)
		})
}

// SearchContents returns one page of contents whose title or original title
// contains the query, case-insensitively.
func (s *ContentService) SearchContents(ctx context.Context, query string, params domain.PageParams) (*domain.Page[*domain.Content], error) {
	query, err := domain.ValidateID(query, "query")
	if err != nil {
		return nil, err
	}

	params, err = normalize(params)
	if err != nil {
		return nil, err
	}

	return s.contents.Search(ctx, query, params)
}

// AddContent ingests a new content item: metadata is fetched from the
// provider (fail-soft per sub-call), the catalogue is checked for a
// duplicate, the category is upserted when the provider reported a genre,
// and the row is inserted with fallback titles for missing fields.
func (s *ContentService) AddContent(ctx context.Context, tmdbID string, contentType domain.ContentType, recommended bool) (*IngestResult, error) {
	id, err := parseContentID(tmdbID, "tmdbId")
	if err != nil {
		return nil, err
	}
	if !contentType.Valid() {
		return nil, domain.InvalidArgumentf("type must be movie or tv")
	}

	// Serialise concurrent ingestions of the same item so the
	// check-then-insert below cannot race with itself.
	if s.locker != nil {
		key := fmt.Sprintf("ingest:content:%d", id)
		acquired, err := s.locker.Acquire(ctx, key, s.lockTTL)
		if err != nil {
			return nil, domain.Upstreamf(err, "acquiring ingestion lock")
		}
		if !acquired {
			return nil, domain.Conflictf("ingestion already in progress for content %d", id)
		}
		defer func() {
			if err := s.locker.Release(ctx, key); err != nil {
				s.logger.Warn("releasing ingestion lock failed",
					zap.Int64("content_id", id),
					zap.Error(err),
				)
			}
		}()
	}

	info := s.metadata.FetchContentInfo(ctx, id, contentType)
	if info.DetailsUnavailable {
		s.logger.Warn("ingesting with partial metadata",
			zap.Int64("content_id", id),
		)
	}

	existing, err := s.contents.GetByContentID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflictf("content %d already exists", id)
	}

	categoryID, err := s.upsertCategory(ctx, info)
	if err != nil {
		return nil, err
	}

	content := buildContent(id, contentType, recommended, info.Details)
	content.CategoryID = categoryID

	if err := s.contents.Create(ctx, content); err != nil {
		return nil, err
	}

	s.logger.Info("content ingested",
		zap.Int64("content_id", id),
		zap.String("type", string(contentType)),
		zap.Bool("recommended", recommended),
		zap.Bool("partial_metadata", info.DetailsUnavailable),
	)

	return &IngestResult{
		Content:              content,
		Providers:            info.Providers,
		ProvidersUnavailable: info.ProvidersUnavailable,
		Message:              "content created",
	}, nil
}

// upsertCategory resolves the provider's primary genre to a stored category,
// creating it on first reference. Returns nil when no genre was reported.
func (s *ContentService) upsertCategory(ctx context.Context, info *domain.ContentInfo) (*int64, error) {
	genre := info.PrimaryGenre()
	if genre == nil {
		return nil, nil
	}

	existing, err := s.categories.GetByCategoryID(ctx, genre.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &existing.CategoryID, nil
	}

	category := domain.NewCategory(genre.ID, genre.Name)
	if err := s.categories.Create(ctx, category); err != nil {
		// A concurrent ingestion may have created it between the lookup
		// and the insert; the row is there either way.
		if !isConflict(err) {
			return nil, err
		}
	}

	return &genre.ID, nil
}

// buildContent maps provider details onto a new catalogue row, substituting
// fallback titles when the provider had none.
func buildContent(id int64, contentType domain.ContentType, recommended bool, details *domain.ContentDetails) *domain.Content {
	content := domain.NewContent(id, domain.FallbackTitle, contentType, recommended)
	content.OriginalTitle = domain.FallbackOriginalTitle

	if details == nil {
		return content
	}

	if details.Title != "" {
		content.Title = details.Title
	}
	if details.OriginalTitle != "" {
		content.OriginalTitle = details.OriginalTitle
	}
	content.Tagline = details.Tagline
	content.Overview = details.Overview
	content.ReleaseDate = details.ReleaseDate
	content.PosterURL = details.PosterURL
	content.BackdropURL = details.BackdropURL
	if details.VoteAverage > 0 {
		content.VoteAverage = strconv.FormatFloat(details.VoteAverage, 'f', 1, 64)
	}

	return content
}

// parseContentID validates and parses an external numeric id supplied as a
// path or body string.
func parseContentID(raw, fieldName string) (int64, error) {
	trimmed, err := domain.ValidateID(raw, fieldName)
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, domain.InvalidArgumentf("%s must be numeric", fieldName)
	}

	return id, nil
}

// normalize applies the default page size and validates the parameters.
func normalize(params domain.PageParams) (domain.PageParams, error) {
	if params.Size == 0 {
		params.Size = domain.DefaultPageSize
	}
	if err := params.Validate(); err != nil {
		return params, err
	}

	return params, nil
}

func isConflict(err error) bool {
	return errors.Is(err, domain.ErrConflict)
}

// withPageCache serves the page from cache when enabled, falling back to the
// repository on a miss or any cache failure. Cache failures never fail the
// request.
func withPageCache[T any](
	ctx context.Context,
	cache domain.Cache,
	ttl time.Duration,
	logger *zap.Logger,
	key string,
	fetch func() (*domain.Page[T], error),
) (*domain.Page[T], error) {
	if cache == nil {
		return fetch()
	}

	if data, err := cache.Get(ctx, key); err == nil && data != nil {
		var page domain.Page[T]
		if err := json.Unmarshal(data, &page); err == nil {
			return &page, nil
		}
		logger.Warn("dropping undecodable cache entry", zap.String("key", key))
		_ = cache.Delete(ctx, key)
	}

	page, err := fetch()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(page); err == nil {
		_ = cache.Set(ctx, key, data, ttl)
	}

	return page, nil
}

func pageCacheKey(prefix string, params domain.PageParams) string {
	return fmt.Sprintf("%s:%d:%s", prefix, params.Size, params.After)
}
