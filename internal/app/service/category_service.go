package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"catalogue-service/internal/domain"
)

// CategoryService handles category read operations.
type CategoryService struct {
	categories domain.CategoryRepository
	contents   domain.ContentRepository
	cache      domain.Cache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewCategoryService creates a new CategoryService. cache may be nil.
func NewCategoryService(
	categories domain.CategoryRepository,
	contents domain.ContentRepository,
	cache domain.Cache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categories: categories,
		contents:   contents,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// GetCategories returns one page of all categories.
func (s *CategoryService) GetCategories(ctx context.Context, params domain.PageParams) (*domain.Page[*domain.Category], error) {
	params, err := normalize(params)
	if err != nil {
		return nil, err
	}

	return withPageCache(ctx, s.cache, s.cacheTTL, s.logger,
		pageCacheKey("category:list", params),
		func() (*domain.Page[*domain.Category], error) {
			return s.categories.List(ctx, params)
		})
}

// GetCategoryContents returns one page of contents whose category carries
// the given external id. A non-numeric categoryId is a client error.
func (s *CategoryService) GetCategoryContents(ctx context.Context, categoryID string, params domain.PageParams) (*domain.Page[*domain.Content], error) {
	id, err := parseContentID(categoryID, "categoryId")
	if err != nil {
		return nil, err
	}

	params, err = normalize(params)
	if err != nil {
		return nil, err
	}

	return s.contents.ListByCategory(ctx, id, params)
}
