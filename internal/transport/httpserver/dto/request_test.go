package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogue-service/internal/domain"
	"catalogue-service/internal/validator"
)

func newTestValidator() *validator.Validator {
	return validator.New()
}

func boolPtr(b bool) *bool {
	return &b
}

// TestListRequest_Validation_Valid tests valid list requests.
func TestListRequest_Validation_Valid(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name string
		req  ListRequest
	}{
		{
			name: "empty request",
			req:  ListRequest{},
		},
		{
			name: "page size only",
			req:  ListRequest{PageSize: "20"},
		},
		{
			name: "cursor only",
			req:  ListRequest{After: "MTcwOTI5OTg0NTEyMzQ1Njc4OTphYmM"},
		},
		{
			name: "cursor at max length",
			req:  ListRequest{After: strings.Repeat("a", 100)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			assert.NoError(t, err)
		})
	}
}

// TestListRequest_Validation_Invalid tests invalid list requests.
func TestListRequest_Validation_Invalid(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name string
		req  ListRequest
	}{
		{
			name: "non-numeric page size",
			req:  ListRequest{PageSize: "twenty"},
		},
		{
			name: "page size with spaces",
			req:  ListRequest{PageSize: "2 0"},
		},
		{
			name: "cursor too long",
			req:  ListRequest{After: strings.Repeat("a", 101)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			assert.Error(t, err)
		})
	}
}

// TestListRequest_ToPageParams tests conversion to domain parameters.
func TestListRequest_ToPageParams(t *testing.T) {
	t.Run("default page size", func(t *testing.T) {
		req := ListRequest{}
		params, err := req.ToPageParams()
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPageSize, params.Size)
		assert.Empty(t, params.After)
	})

	t.Run("explicit values", func(t *testing.T) {
		req := ListRequest{PageSize: "50", After: "token"}
		params, err := req.ToPageParams()
		require.NoError(t, err)
		assert.Equal(t, 50, params.Size)
		assert.Equal(t, "token", params.After)
	})

	t.Run("unparsable page size", func(t *testing.T) {
		req := ListRequest{PageSize: "nope"}
		_, err := req.ToPageParams()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("zero page size", func(t *testing.T) {
		req := ListRequest{PageSize: "0"}
		_, err := req.ToPageParams()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("page size above maximum", func(t *testing.T) {
		req := ListRequest{PageSize: "101"}
		_, err := req.ToPageParams()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

// TestSearchRequest_Validation tests the search-specific constraints.
func TestSearchRequest_Validation(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		req     SearchRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  SearchRequest{Query: "dune", PageSize: "20"},
		},
		{
			name: "query at max length",
			req:  SearchRequest{Query: strings.Repeat("q", 200)},
		},
		{
			name:    "missing query",
			req:     SearchRequest{PageSize: "20"},
			wantErr: true,
		},
		{
			name:    "query too long",
			req:     SearchRequest{Query: strings.Repeat("q", 201)},
			wantErr: true,
		},
		{
			name:    "bad page size",
			req:     SearchRequest{Query: "dune", PageSize: "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestCreateContentRequest_Validation tests the ingestion body constraints.
func TestCreateContentRequest_Validation(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		req     CreateContentRequest
		wantErr bool
	}{
		{
			name: "valid movie",
			req:  CreateContentRequest{TmdbID: "693134", Type: "movie", Recommended: boolPtr(true)},
		},
		{
			name: "valid tv not recommended",
			req:  CreateContentRequest{TmdbID: "66732", Type: "tv", Recommended: boolPtr(false)},
		},
		{
			name:    "missing tmdb id",
			req:     CreateContentRequest{Type: "movie", Recommended: boolPtr(true)},
			wantErr: true,
		},
		{
			name:    "non-numeric tmdb id",
			req:     CreateContentRequest{TmdbID: "abc", Type: "movie", Recommended: boolPtr(true)},
			wantErr: true,
		},
		{
			name:    "unknown type",
			req:     CreateContentRequest{TmdbID: "693134", Type: "series", Recommended: boolPtr(true)},
			wantErr: true,
		},
		{
			name:    "missing recommended flag",
			req:     CreateContentRequest{TmdbID: "693134", Type: "movie"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
