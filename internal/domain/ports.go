package domain

import (
	"context"
	"time"
)

// ContentRepository defines content persistence operations.
// Implementation: internal/infra/postgres/content_repository.go
type ContentRepository interface {
	// List returns one page of all contents, category name joined in.
	List(ctx context.Context, params PageParams) (*Page[*Content], error)

	// GetByContentID returns the content with the given external id, or
	// nil when none exists.
	GetByContentID(ctx context.Context, contentID int64) (*Content, error)

	// ListRecommended returns one page of contents flagged recommended.
	ListRecommended(ctx context.Context, params PageParams) (*Page[*Content], error)

	// ListByCategory returns one page of contents whose category carries
	// the given external category id.
	ListByCategory(ctx context.Context, categoryID int64, params PageParams) (*Page[*Content], error)

	// ListSimilar returns up to limit contents sharing the category,
	// filtered by the given content id, ordered by creation time ascending.
	ListSimilar(ctx context.Context, categoryID *int64, contentID int64, limit int) ([]*Content, error)

	// Search returns one page of contents whose title or original title
	// contains the query, case-insensitively.
	Search(ctx context.Context, query string, params PageParams) (*Page[*Content], error)

	// Create inserts a new content row.
	Create(ctx context.Context, content *Content) error
}

// CategoryRepository defines category persistence operations.
// Implementation: internal/infra/postgres/category_repository.go
type CategoryRepository interface {
	// List returns one page of all categories.
	List(ctx context.Context, params PageParams) (*Page[*Category], error)

	// GetByCategoryID returns the category with the given external id, or
	// nil when none exists.
	GetByCategoryID(ctx context.Context, categoryID int64) (*Category, error)

	// Create inserts a new category row.
	Create(ctx context.Context, category *Category) error
}

// MetadataProvider defines the outbound metadata lookups used by ingestion.
// Implementation: internal/infra/tmdb/client.go
type MetadataProvider interface {
	// FetchContentInfo issues the details and streaming-provider calls for
	// (contentID, contentType) and merges them. Sub-call failures are
	// fail-soft and reflected in the result, never returned as an error.
	FetchContentInfo(ctx context.Context, contentID int64, contentType ContentType) *ContentInfo
}

// Cache defines optional read-through caching for list responses.
// Implementation: internal/infra/redis/cache.go
type Cache interface {
	// Get retrieves a value by key. Returns nil if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error
}
