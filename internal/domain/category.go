package domain

import "time"

// Category is a genre-like tag sourced from the metadata provider's genre
// taxonomy. CategoryID is the external genre id and is unique.
type Category struct {
	ID         string    `json:"id"`
	CategoryID int64     `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewCategory creates a Category with timestamps set.
func NewCategory(categoryID int64, name string) *Category {
	now := time.Now().UTC()
	return &Category{
		CategoryID: categoryID,
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
