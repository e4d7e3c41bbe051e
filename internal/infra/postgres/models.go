package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"catalogue-service/internal/domain"
)

// ContentModel is the GORM model for the contents table.
type ContentModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	ContentID int64  `gorm:"not null;uniqueIndex:uq_contents_content_id"`
	Title     string `gorm:"type:varchar(500);not null"`
	Type      string `gorm:"type:varchar(20);not null;index"`

	OriginalTitle string `gorm:"type:varchar(500)"`
	Tagline       string `gorm:"type:text"`
	Overview      string `gorm:"type:text"`
	ReleaseDate   string `gorm:"type:varchar(20)"`
	PosterURL     string `gorm:"type:text"`
	BackdropURL   string `gorm:"type:text"`
	VoteAverage   string `gorm:"type:varchar(10)"`

	Recommended bool `gorm:"not null;default:false;index"`

	// External category id; nil for uncategorised content.
	CategoryID *int64 `gorm:"index"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for ContentModel.
func (ContentModel) TableName() string {
	return "contents"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (m *ContentModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// contentRow is the scan target for list queries joining the category name.
type contentRow struct {
	ContentModel
	CategoryName string
}

// ToDomain converts the joined row to domain.Content.
func (r *contentRow) ToDomain() *domain.Content {
	c := r.ContentModel.ToDomain()
	c.CategoryName = r.CategoryName
	return c
}

// ToDomain converts ContentModel to domain.Content.
func (m *ContentModel) ToDomain() *domain.Content {
	return &domain.Content{
		ID:            m.ID,
		ContentID:     m.ContentID,
		Title:         m.Title,
		Type:          domain.ContentType(m.Type),
		OriginalTitle: m.OriginalTitle,
		Tagline:       m.Tagline,
		Overview:      m.Overview,
		ReleaseDate:   m.ReleaseDate,
		PosterURL:     m.PosterURL,
		BackdropURL:   m.BackdropURL,
		VoteAverage:   m.VoteAverage,
		Recommended:   m.Recommended,
		CategoryID:    m.CategoryID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomainContent creates a ContentModel from domain.Content.
func FromDomainContent(c *domain.Content) *ContentModel {
	return &ContentModel{
		ID:            c.ID,
		ContentID:     c.ContentID,
		Title:         c.Title,
		Type:          string(c.Type),
		OriginalTitle: c.OriginalTitle,
		Tagline:       c.Tagline,
		Overview:      c.Overview,
		ReleaseDate:   c.ReleaseDate,
		PosterURL:     c.PosterURL,
		BackdropURL:   c.BackdropURL,
		VoteAverage:   c.VoteAverage,
		Recommended:   c.Recommended,
		CategoryID:    c.CategoryID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// CategoryModel is the GORM model for the categories table.
type CategoryModel struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	CategoryID int64     `gorm:"not null;uniqueIndex:uq_categories_category_id"`
	Name       string    `gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (m *CategoryModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ToDomain converts CategoryModel to domain.Category.
func (m *CategoryModel) ToDomain() *domain.Category {
	return &domain.Category{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		Name:       m.Name,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FromDomainCategory creates a CategoryModel from domain.Category.
func FromDomainCategory(c *domain.Category) *CategoryModel {
	return &CategoryModel{
		ID:         c.ID,
		CategoryID: c.CategoryID,
		Name:       c.Name,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
