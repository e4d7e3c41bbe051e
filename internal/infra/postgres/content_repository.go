package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"catalogue-service/internal/domain"
)

// similarLimit caps the size of the similar-contents set returned alongside
// a content detail.
const similarLimit = 8

// ContentRepository implements domain.ContentRepository using PostgreSQL.
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository.
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// List returns one page of all contents with the category name joined in.
func (r *ContentRepository) List(ctx context.Context, params domain.PageParams) (*domain.Page[*domain.Content], error) {
	return r.page(ctx, r.joined(ctx), params)
}

// GetByContentID returns the content with the given external id, or nil.
func (r *ContentRepository) GetByContentID(ctx context.Context, contentID int64) (*domain.Content, error) {
	var rows []contentRow
	err := r.joined(ctx).
		Where("contents.content_id = ?", contentID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, domain.Upstreamf(err, "getting content %d", contentID)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return rows[0].ToDomain(), nil
}

// ListRecommended returns one page of contents flagged recommended.
func (r *ContentRepository) ListRecommended(ctx context.Context, params domain.PageParams) (*domain.Page[*domain.Content], error) {
	query := r.joined(ctx).Where("contents.recommended = ?", true)
	return r.page(ctx, query, params)
}

// ListByCategory returns one page of contents carrying the given external
// category id.
func (r *ContentRepository) ListByCategory(ctx context.Context, categoryID int64, params domain.PageParams) (*domain.Page[*domain.Content], error) {
	query := r.joined(ctx).Where("contents.category_id = ?", categoryID)
	return r.page(ctx, query, params)
}

// ListSimilar returns up to limit contents sharing the category, filtered by
// the given content id, ordered by creation time ascending. A nil category
// yields an empty set.
func (r *ContentRepository) ListSimilar(ctx context.Context, categoryID *int64, contentID int64, limit int) ([]*domain.Content, error) {
	if categoryID == nil {
		return []*domain.Content{}, nil
	}
	if limit <= 0 || limit > similarLimit {
		limit = similarLimit
	}

	var rows []contentRow
	err := r.joined(ctx).
		Where("contents.category_id = ?", *categoryID).
		Where("contents.content_id = ?", contentID).
		Order("contents.created_at ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, domain.Upstreamf(err, "listing similar contents")
	}

	return rowsToDomain(rows), nil
}

// Search returns one page of contents whose title or original title contains
// the query, case-insensitively.
func (r *ContentRepository) Search(ctx context.Context, query string, params domain.PageParams) (*domain.Page[*domain.Content], error) {
	pattern := "%" + escapeLike(query) + "%"
	base := r.joined(ctx).
		Where("contents.title ILIKE ? OR contents.original_title ILIKE ?", pattern, pattern)

	return r.page(ctx, base, params)
}

// Create inserts a new content row. A row already carrying the external id
// surfaces as a conflict.
func (r *ContentRepository) Create(ctx context.Context, content *domain.Content) error {
	model := FromDomainContent(content)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Conflictf("content %d already exists", content.ContentID)
		}

		return domain.Upstreamf(err, "creating content %d", content.ContentID)
	}

	content.ID = model.ID
	content.CreatedAt = model.CreatedAt
	content.UpdatedAt = model.UpdatedAt

	return nil
}

// joined is the base query for content reads: contents with the category
// name resolved through a left join.
func (r *ContentRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("contents").
		Select("contents.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.category_id = contents.category_id")
}

// page applies keyset pagination to the base query and executes it. Rows are
// ordered by (created_at, id) so the issued cursor pins an exact position.
func (r *ContentRepository) page(ctx context.Context, base *gorm.DB, params domain.PageParams) (*domain.Page[*domain.Content], error) {
	if params.After != "" {
		pos, err := decodeCursor(params.After)
		if err != nil {
			return nil, err
		}
		base = base.Where("(contents.created_at, contents.id) > (?, ?)", pos.CreatedAt, pos.ID)
	}

	var rows []contentRow
	err := base.
		Order("contents.created_at ASC, contents.id ASC").
		Limit(params.Size + 1). // one extra row to detect a next page
		Scan(&rows).Error
	if err != nil {
		return nil, domain.Upstreamf(err, "listing contents")
	}

	page := &domain.Page[*domain.Content]{}
	if len(rows) > params.Size {
		rows = rows[:params.Size]
		page.More = true
	}
	page.Records = rowsToDomain(rows)
	if page.More && len(rows) > 0 {
		last := rows[len(rows)-1]
		page.Cursor = encodeCursor(last.CreatedAt, last.ID)
	}

	return page, nil
}

func rowsToDomain(rows []contentRow) []*domain.Content {
	contents := make([]*domain.Content, len(rows))
	for i := range rows {
		contents[i] = rows[i].ToDomain()
	}
	return contents
}

// escapeLike neutralises LIKE metacharacters in user-supplied search text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
