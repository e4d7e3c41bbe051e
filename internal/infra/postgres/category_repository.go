package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"catalogue-service/internal/domain"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns one page of all categories ordered by creation time.
func (r *CategoryRepository) List(ctx context.Context, params domain.PageParams) (*domain.Page[*domain.Category], error) {
	query := r.db.WithContext(ctx).Model(&CategoryModel{})

	if params.After != "" {
		pos, err := decodeCursor(params.After)
		if err != nil {
			return nil, err
		}
		query = query.Where("(created_at, id) > (?, ?)", pos.CreatedAt, pos.ID)
	}

	var models []CategoryModel
	err := query.
		Order("created_at ASC, id ASC").
		Limit(params.Size + 1).
		Find(&models).Error
	if err != nil {
		return nil, domain.Upstreamf(err, "listing categories")
	}

	page := &domain.Page[*domain.Category]{}
	if len(models) > params.Size {
		models = models[:params.Size]
		page.More = true
	}
	page.Records = make([]*domain.Category, len(models))
	for i := range models {
		page.Records[i] = models[i].ToDomain()
	}
	if page.More && len(models) > 0 {
		last := models[len(models)-1]
		page.Cursor = encodeCursor(last.CreatedAt, last.ID)
	}

	return page, nil
}

// GetByCategoryID returns the category with the given external id, or nil.
func (r *CategoryRepository) GetByCategoryID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	var model CategoryModel
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domain.Upstreamf(err, "getting category %d", categoryID)
	}

	return model.ToDomain(), nil
}

// Create inserts a new category row.
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	model := FromDomainCategory(category)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Conflictf("category %d already exists", category.CategoryID)
		}

		return domain.Upstreamf(err, "creating category %d", category.CategoryID)
	}

	category.ID = model.ID
	category.CreatedAt = model.CreatedAt
	category.UpdatedAt = model.UpdatedAt

	return nil
}
