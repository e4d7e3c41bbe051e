package dto

import (
	"time"

	"catalogue-service/internal/app/service"
	"catalogue-service/internal/domain"
)

// ContentResponse represents a single content item in the response.
type ContentResponse struct {
	ID            string `json:"id"`
	ContentID     int64  `json:"content_id"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	OriginalTitle string `json:"original_title,omitempty"`
	Tagline       string `json:"tagline,omitempty"`
	Overview      string `json:"overview,omitempty"`
	ReleaseDate   string `json:"release_date,omitempty"`
	PosterURL     string `json:"poster_url,omitempty"`
	BackdropURL   string `json:"backdrop_url,omitempty"`
	VoteAverage   string `json:"vote_average,omitempty"`
	Recommended   bool   `json:"recommended"`
	CategoryID    *int64 `json:"category_id,omitempty"`
	CategoryName  string `json:"category_name,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// FromDomainContent converts domain.Content to ContentResponse.
func FromDomainContent(c *domain.Content) ContentResponse {
	return ContentResponse{
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
		CategoryName:  c.CategoryName,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
}

// PaginationMeta holds cursor pagination metadata.
type PaginationMeta struct {
	Cursor   string `json:"cursor,omitempty"`
	More     bool   `json:"more"`
	PageSize int    `json:"page_size"`
}

// ContentPageResponse represents one page of contents.
type ContentPageResponse struct {
	Records    []ContentResponse `json:"records"`
	Pagination PaginationMeta    `json:"pagination"`
}

// FromContentPage converts a domain page to ContentPageResponse.
func FromContentPage(page *domain.Page[*domain.Content], pageSize int) ContentPageResponse {
	records := make([]ContentResponse, len(page.Records))
	for i, c := range page.Records {
		records[i] = FromDomainContent(c)
	}

	return ContentPageResponse{
		Records: records,
		Pagination: PaginationMeta{
			Cursor:   page.Cursor,
			More:     page.More,
			PageSize: pageSize,
		},
	}
}

// ContentDetailResponse represents a content record merged with its
// similar set.
type ContentDetailResponse struct {
	ContentResponse
	SimilarContents []ContentResponse `json:"similarContents"`
}

// FromContentDetail converts service.ContentDetail to ContentDetailResponse.
func FromContentDetail(detail *service.ContentDetail) ContentDetailResponse {
	similar := make([]ContentResponse, len(detail.Similar))
	for i, c := range detail.Similar {
		similar[i] = FromDomainContent(c)
	}

	return ContentDetailResponse{
		ContentResponse: FromDomainContent(detail.Content),
		SimilarContents: similar,
	}
}

// CategoryResponse represents a single category in the response.
type CategoryResponse struct {
	ID         string `json:"id"`
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// FromDomainCategory converts domain.Category to CategoryResponse.
func FromDomainCategory(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:         c.ID,
		CategoryID: c.CategoryID,
		Name:       c.Name,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  c.UpdatedAt.Format(time.RFC3339),
	}
}

// CategoryPageResponse represents one page of categories.
type CategoryPageResponse struct {
	Records    []CategoryResponse `json:"records"`
	Pagination PaginationMeta     `json:"pagination"`
}

// FromCategoryPage converts a domain page to CategoryPageResponse.
func FromCategoryPage(page *domain.Page[*domain.Category], pageSize int) CategoryPageResponse {
	records := make([]CategoryResponse, len(page.Records))
	for i, c := range page.Records {
		records[i] = FromDomainCategory(c)
	}

	return CategoryPageResponse{
		Records: records,
		Pagination: PaginationMeta{
			Cursor:   page.Cursor,
			More:     page.More,
			PageSize: pageSize,
		},
	}
}

// IngestResponse represents the outcome of an ingestion.
type IngestResponse struct {
	Content ContentResponse `json:"content"`
	// Providers is null when the availability lookup was unavailable,
	// and an empty list result never appears: no allow-listed provider
	// also serialises as null.
	Providers []domain.StreamingProvider `json:"providers"`
	Message   string                     `json:"message"`
}

// FromIngestResult converts service.IngestResult to IngestResponse.
func FromIngestResult(result *service.IngestResult) IngestResponse {
	return IngestResponse{
		Content:   FromDomainContent(result.Content),
		Providers: result.Providers,
		Message:   result.Message,
	}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}
