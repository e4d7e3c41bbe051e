// Package dto provides Data Transfer Objects for HTTP requests and responses.
package dto

import (
	"strconv"

	"catalogue-service/internal/domain"
)

// ListRequest represents the query parameters shared by all list endpoints.
// pageSize arrives as a string and must be all digits, matching the
// documented query contract.
type ListRequest struct {
	PageSize string `query:"pageSize" json:"pageSize" validate:"omitempty,number"`
	After    string `query:"after" json:"after" validate:"omitempty,max=100"`
}

// ToPageParams converts the request to domain.PageParams, applying the
// default page size when none was supplied.
func (r *ListRequest) ToPageParams() (domain.PageParams, error) {
	params := domain.DefaultPageParams()
	params.After = r.After

	if r.PageSize != "" {
		size, err := strconv.Atoi(r.PageSize)
		if err != nil {
			return params, domain.InvalidArgumentf("pageSize must be a valid number")
		}
		if size, err = domain.ValidatePageSize(size); err != nil {
			return params, err
		}
		params.Size = size
	}

	return params, nil
}

// SearchRequest represents the query parameters of the search endpoint.
type SearchRequest struct {
	Query    string `query:"query" json:"query" validate:"required,min=1,max=200"`
	PageSize string `query:"pageSize" json:"pageSize" validate:"omitempty,number"`
	After    string `query:"after" json:"after" validate:"omitempty,max=100"`
}

// ToPageParams converts the request to domain.PageParams.
func (r *SearchRequest) ToPageParams() (domain.PageParams, error) {
	list := ListRequest{PageSize: r.PageSize, After: r.After}
	return list.ToPageParams()
}

// CreateContentRequest represents the ingestion request body.
// Recommended is a pointer so an absent field fails validation instead of
// silently defaulting to false.
type CreateContentRequest struct {
	TmdbID      string `json:"tmdbId" validate:"required,number"`
	Type        string `json:"type" validate:"required,oneof=movie tv"`
	Recommended *bool  `json:"recommended" validate:"required"`
}
