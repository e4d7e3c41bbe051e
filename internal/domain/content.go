// Package domain contains the core business entities and ports.
// This package has no external dependencies (only stdlib).
package domain

import (
	"time"
)

// ContentType represents the kind of catalogued content.
type ContentType string

const (
	ContentTypeMovie ContentType = "movie"
	ContentTypeTV    ContentType = "tv"
)

// Fallback titles used when the metadata provider returns no title fields.
const (
	FallbackTitle         = "Titre inconnu"
	FallbackOriginalTitle = "Titre original inconnu"
)

// Content is a catalogued movie or TV item. ContentID is the external
// numeric id assigned by the metadata provider and is unique across the
// catalogue.
type Content struct {
	ID        string      `json:"id"`
	ContentID int64       `json:"content_id"`
	Title     string      `json:"title"`
	Type      ContentType `json:"type"`

	// Provider-sourced metadata. Nullable fields stay empty when the
	// provider had nothing for them.
	OriginalTitle string `json:"original_title,omitempty"`
	Tagline       string `json:"tagline,omitempty"`
	Overview      string `json:"overview,omitempty"`
	ReleaseDate   string `json:"release_date,omitempty"`
	PosterURL     string `json:"poster_url,omitempty"`
	BackdropURL   string `json:"backdrop_url,omitempty"`
	VoteAverage   string `json:"vote_average,omitempty"`

	Recommended bool `json:"recommended"`

	// Category reference, resolved by the repository join. CategoryID is
	// the external genre id; nil when the content has no category.
	CategoryID   *int64 `json:"category_id,omitempty"`
	CategoryName string `json:"category_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewContent creates a Content with timestamps set.
func NewContent(contentID int64, title string, contentType ContentType, recommended bool) *Content {
	now := time.Now().UTC()
	return &Content{
		ContentID:   contentID,
		Title:       title,
		Type:        contentType,
		Recommended: recommended,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsMovie returns true for movie content.
func (c *Content) IsMovie() bool {
	return c.Type == ContentTypeMovie
}

// IsTV returns true for TV content.
func (c *Content) IsTV() bool {
	return c.Type == ContentTypeTV
}

// Valid reports whether the content type is one of the supported kinds.
func (t ContentType) Valid() bool {
	return t == ContentTypeMovie || t == ContentTypeTV
}
