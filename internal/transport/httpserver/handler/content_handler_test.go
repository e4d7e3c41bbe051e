package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catalogue-service/internal/app/service"
	"catalogue-service/internal/domain"
	"catalogue-service/internal/transport/httpserver/dto"
	"catalogue-service/internal/validator"
)

// memContentRepo is an in-memory domain.ContentRepository for handler tests.
type memContentRepo struct {
	byID map[int64]*domain.Content
}

func newMemContentRepo() *memContentRepo {
	return &memContentRepo{byID: make(map[int64]*domain.Content)}
}

func (r *memContentRepo) all() []*domain.Content {
	contents := make([]*domain.Content, 0, len(r.byID))
	for _, c := range r.byID {
		contents = append(contents, c)
	}
	return contents
}

func (r *memContentRepo) List(_ context.Context, _ domain.PageParams) (*domain.Page[*domain.Content], error) {
	return &domain.Page[*domain.Content]{Records: r.all()}, nil
}

func (r *memContentRepo) GetByContentID(_ context.Context, contentID int64) (*domain.Content, error) {
	return r.byID[contentID], nil
}

func (r *memContentRepo) ListRecommended(_ context.Context, _ domain.PageParams) (*domain.Page[*domain.Content], error) {
	var recs []*domain.Content
	for _, c := range r.all() {
		if c.Recommended {
			recs = append(recs, c)
		}
	}
	return &domain.Page[*domain.Content]{Records: recs}, nil
}

func (r *memContentRepo) ListByCategory(_ context.Context, categoryID int64, _ domain.PageParams) (*domain.Page[*domain.Content], error) {
	var matches []*domain.Content
	for _, c := range r.all() {
		if c.CategoryID != nil && *c.CategoryID == categoryID {
			matches = append(matches, c)
		}
	}
	return &domain.Page[*domain.Content]{Records: matches}, nil
}

func (r *memContentRepo) ListSimilar(_ context.Context, categoryID *int64, contentID int64, _ int) ([]*domain.Content, error) {
	if categoryID == nil {
		return []*domain.Content{}, nil
	}
	var matches []*domain.Content
	for _, c := range r.all() {
		if c.CategoryID != nil && *c.CategoryID == *categoryID && c.ContentID == contentID {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (r *memContentRepo) Search(_ context.Context, query string, _ domain.PageParams) (*domain.Page[*domain.Content], error) {
	var matches []*domain.Content
	for _, c := range r.all() {
		if strings.Contains(strings.ToLower(c.Title), strings.ToLower(query)) {
			matches = append(matches, c)
		}
	}
	return &domain.Page[*domain.Content]{Records: matches}, nil
}

func (r *memContentRepo) Create(_ context.Context, content *domain.Content) error {
	if _, exists := r.byID[content.ContentID]; exists {
		return domain.Conflictf("content %d already exists", content.ContentID)
	}
	content.ID = "generated-id"
	content.CreatedAt = time.Now().UTC()
	content.UpdatedAt = content.CreatedAt
	r.byID[content.ContentID] = content
	return nil
}

// memCategoryRepo is an in-memory domain.CategoryRepository.
type memCategoryRepo struct {
	byID map[int64]*domain.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{byID: make(map[int64]*domain.Category)}
}

func (r *memCategoryRepo) List(_ context.Context, _ domain.PageParams) (*domain.Page[*domain.Category], error) {
	cats := make([]*domain.Category, 0, len(r.byID))
	for _, c := range r.byID {
		cats = append(cats, c)
	}
	return &domain.Page[*domain.Category]{Records: cats}, nil
}

func (r *memCategoryRepo) GetByCategoryID(_ context.Context, categoryID int64) (*domain.Category, error) {
	return r.byID[categoryID], nil
}

func (r *memCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	if _, exists := r.byID[category.CategoryID]; exists {
		return domain.Conflictf("category %d already exists", category.CategoryID)
	}
	r.byID[category.CategoryID] = category
	return nil
}

// memMetadata answers every lookup with a fixed payload.
type memMetadata struct{}

func (memMetadata) FetchContentInfo(_ context.Context, _ int64, _ domain.ContentType) *domain.ContentInfo {
	return &domain.ContentInfo{
		Details: &domain.ContentDetails{
			Genres:      []domain.Genre{{ID: 878, Name: "Science-Fiction"}},
			Title:       "Dune : Deuxième partie",
			ReleaseDate: "2024-02-28",
			VoteAverage: 8.2,
		},
		Providers: []domain.StreamingProvider{
			{ProviderID: 8, ProviderName: "Netflix"},
		},
	}
}

type testEnv struct {
	app        *fiber.App
	contents   *memContentRepo
	categories *memCategoryRepo
}

func newTestApp(t *testing.T) *testEnv {
	t.Helper()

	contents := newMemContentRepo()
	categories := newMemCategoryRepo()
	logger := zap.NewNop()

	contentSvc := service.NewContentService(contents, categories, memMetadata{}, service.ContentServiceConfig{}, logger)
	categorySvc := service.NewCategoryService(categories, contents, nil, 0, logger)

	v := validator.New()
	contentHandler := NewContentHandler(contentSvc, v, logger)
	categoryHandler := NewCategoryHandler(categorySvc, v, logger)

	app := fiber.New()
	content := app.Group("/api/v1/content")
	content.Get("/", contentHandler.List)
	content.Get("/search", contentHandler.Search)
	content.Get("/recommended", contentHandler.Recommended)
	content.Get("/:tmdbId", contentHandler.GetByID)
	content.Post("/", contentHandler.Create)

	category := app.Group("/api/v1/category")
	category.Get("/", categoryHandler.List)
	category.Get("/:categoryId", categoryHandler.Contents)

	return &testEnv{app: app, contents: contents, categories: categories}
}

func (e *testEnv) seed(t *testing.T, contentID int64, title string, categoryID *int64, recommended bool) {
	t.Helper()

	content := domain.NewContent(contentID, title, domain.ContentTypeMovie, recommended)
	content.CategoryID = categoryID
	require.NoError(t, e.contents.Create(context.Background(), content))
}

func decodeBody[T any](t *testing.T, body io.Reader) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestContentList(t *testing.T) {
	env := newTestApp(t)
	env.seed(t, 1, "Dune", nil, false)
	env.seed(t, 2, "Oppenheimer", nil, false)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/v1/content", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decodeBody[dto.ContentPageResponse](t, resp.Body)
	assert.Len(t, page.Records, 2)
	assert.Equal(t, domain.DefaultPageSize, page.Pagination.PageSize)
}

func TestContentList_BadPageSize(t *testing.T) {
	env := newTestApp(t)

	tests := []struct {
		name string
		url  string
	}{
		{"non-numeric", "/api/v1/content?pageSize=abc"},
		{"zero", "/api/v1/content?pageSize=0"},
		{"above maximum", "/api/v1/content?pageSize=101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.app.Test(httptest.NewRequest("GET", tt.url, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestContentGetByID(t *testing.T) {
	env := newTestApp(t)
	catID := int64(878)
	env.seed(t, 693134, "Dune", &catID, false)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/v1/content/693134", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	detail := decodeBody[dto.ContentDetailResponse](t, resp.Body)
	assert.Equal(t, int64(693134), detail.ContentID)
	// The similar set carries at most the item itself.
	require.Len(t, detail.SimilarContents, 1)
	assert.Equal(t, int64(693134), detail.SimilarContents[0].ContentID)
}

func TestContentGetByID_NotFound(t *testing.T) {
	env := newTestApp(t)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/v1/content/4242", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decodeBody[dto.ErrorResponse](t, resp.Body)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestContentGetByID_NonNumeric(t *testing.T) {
	env := newTestApp(t)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/v1/content/abc", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestContentSearch(t *testing.T) {
	env := newTestApp(t)
	env.seed(t, 1, "Dune", nil, false)
	env.seed(t, 2, "Oppenheimer", nil, false)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/v1/content/search?query=dune", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decodeBody[dto.ContentPageResponse](t, resp.Body)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "Dune", page.Records[0].Title)
}

func TestContentSearch_MissingQuery(t *testing.T) {
	env := newTestApp(t)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/v1/content/search", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody[dto.ErrorResponse](t, resp.Body)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestContentRecommended(t *testing.T) {
	env := newTestApp(t)
	env.seed(t, 1, "Plain", nil, false)
	env.seed(t, 2, "Picked", nil, true)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/v1/content/recommended", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decodeBody[dto.ContentPageResponse](t, resp.Body)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "Picked", page.Records[0].Title)
}

func TestContentCreate(t *testing.T) {
	env := newTestApp(t)

	body := strings.NewReader(`{"tmdbId":"693134","type":"movie","recommended":true}`)
	req := httptest.NewRequest("POST", "/api/v1/content", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.IngestResponse](t, resp.Body)
	assert.Equal(t, "content created", created.Message)
	assert.Equal(t, int64(693134), created.Content.ContentID)
	assert.Equal(t, "Dune : Deuxième partie", created.Content.Title)
	require.Len(t, created.Providers, 1)
	assert.Equal(t, "Netflix", created.Providers[0].ProviderName)
}

func TestContentCreate_Duplicate(t *testing.T) {
	env := newTestApp(t)
	env.seed(t, 693134, "Dune", nil, false)

	body := strings.NewReader(`{"tmdbId":"693134","type":"movie","recommended":false}`)
	req := httptest.NewRequest("POST", "/api/v1/content", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp.Body)
	assert.Equal(t, "CONFLICT", errBody.Code)
}

func TestContentCreate_InvalidBody(t *testing.T) {
	env := newTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing recommended", `{"tmdbId":"693134","type":"movie"}`},
		{"unknown type", `{"tmdbId":"693134","type":"series","recommended":true}`},
		{"non-numeric id", `{"tmdbId":"abc","type":"movie","recommended":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/content", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := env.app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCategoryList(t *testing.T) {
	env := newTestApp(t)
	require.NoError(t, env.categories.Create(context.Background(), domain.NewCategory(878, "Science-Fiction")))

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/v1/category", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decodeBody[dto.CategoryPageResponse](t, resp.Body)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "Science-Fiction", page.Records[0].Name)
}

func TestCategoryContents(t *testing.T) {
	env := newTestApp(t)
	catID := int64(878)
	require.NoError(t, env.categories.Create(context.Background(), domain.NewCategory(catID, "Science-Fiction")))
	env.seed(t, 1, "Dune", &catID, false)
	env.seed(t, 2, "Oppenheimer", nil, false)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/v1/category/878", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decodeBody[dto.ContentPageResponse](t, resp.Body)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "Dune", page.Records[0].Title)
}

func TestCategoryContents_NonNumericID(t *testing.T) {
	env := newTestApp(t)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/v1/category/thrillers", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
