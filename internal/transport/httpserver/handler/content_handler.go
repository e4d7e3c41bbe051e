package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"catalogue-service/internal/app/service"
	"catalogue-service/internal/domain"
	"catalogue-service/internal/transport/httpserver/dto"
	"catalogue-service/internal/validator"
)

// ContentHandler handles content-related HTTP requests.
type ContentHandler struct {
	service   *service.ContentService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(svc *service.ContentService, v *validator.Validator, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// List handles GET /api/v1/content
//
//	@Summary	List contents
//	@Tags		content
//	@Produce	json
//	@Param		pageSize	query		string	false	"Items per page (default 20, max 100)"
//	@Param		after		query		string	false	"Cursor for pagination"
//	@Success	200			{object}	dto.ContentPageResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Security	ApiKeyAuth
//	@Router		/content [get]
func (h *ContentHandler) List(c *fiber.Ctx) error {
	params, ok, err := h.listParams(c)
	if !ok {
		return err
	}

	page, err := h.service.GetAllContents(c.Context(), params)
	if err != nil {
		return respondError(c, h.logger, err, "failed to fetch contents")
	}

	return c.JSON(dto.FromContentPage(page, params.Size))
}

// Search handles GET /api/v1/content/search
//
//	@Summary	Search contents by title
//	@Tags		content
//	@Produce	json
//	@Param		query		query		string	true	"Search keyword"
//	@Param		pageSize	query		string	false	"Items per page (default 20, max 100)"
//	@Param		after		query		string	false	"Cursor for pagination"
//	@Success	200			{object}	dto.ContentPageResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Security	ApiKeyAuth
//	@Router		/content/search [get]
func (h *ContentHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	if err := h.validator.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	params, err := req.ToPageParams()
	if err != nil {
		return respondError(c, h.logger, err, "failed to search contents")
	}

	page, err := h.service.SearchContents(c.Context(), req.Query, params)
	if err != nil {
		return respondError(c, h.logger, err, "failed to search contents")
	}

	return c.JSON(dto.FromContentPage(page, params.Size))
}

// Recommended handles GET /api/v1/content/recommended
//
//	@Summary	List recommended contents
//	@Tags		content
//	@Produce	json
//	@Param		pageSize	query		string	false	"Items per page (default 20, max 100)"
//	@Param		after		query		string	false	"Cursor for pagination"
//	@Success	200			{object}	dto.ContentPageResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Security	ApiKeyAuth
//	@Router		/content/recommended [get]
func (h *ContentHandler) Recommended(c *fiber.Ctx) error {
	params, ok, err := h.listParams(c)
	if !ok {
		return err
	}

	page, err := h.service.GetRecommendedContents(c.Context(), params)
	if err != nil {
		return respondError(c, h.logger, err, "failed to fetch recommended contents")
	}

	return c.JSON(dto.FromContentPage(page, params.Size))
}

// GetByID handles GET /api/v1/content/:tmdbId
//
//	@Summary	Get one content with its similar set
//	@Tags		content
//	@Produce	json
//	@Param		tmdbId	path		string	true	"External content id"
//	@Success	200		{object}	dto.ContentDetailResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Security	ApiKeyAuth
//	@Router		/content/{tmdbId} [get]
func (h *ContentHandler) GetByID(c *fiber.Ctx) error {
	detail, err := h.service.GetContentByID(c.Context(), c.Params("tmdbId"))
	if err != nil {
		return respondError(c, h.logger, err, "failed to fetch content by id")
	}

	return c.JSON(dto.FromContentDetail(detail))
}

// Create handles POST /api/v1/content
//
//	@Summary	Ingest a content item from the metadata provider
//	@Tags		content
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.CreateContentRequest	true	"Content to ingest"
//	@Success	201		{object}	dto.IngestResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Security	ApiKeyAuth
//	@Router		/content [post]
func (h *ContentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validator.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.service.AddContent(
		c.Context(),
		req.TmdbID,
		domain.ContentType(req.Type),
		*req.Recommended,
	)
	if err != nil {
		return respondError(c, h.logger, err, "failed to ingest content")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromIngestResult(result))
}

// listParams parses and validates the shared list query parameters. When ok
// is false the error response has already been written and the returned
// error is fiber's write result.
func (h *ContentHandler) listParams(c *fiber.Ctx) (params domain.PageParams, ok bool, err error) {
	var req dto.ListRequest
	if err := c.QueryParser(&req); err != nil {
		return params, false, badRequest(c, "invalid query parameters")
	}
	if err := h.validator.Validate(&req); err != nil {
		return params, false, validationFailed(c, err)
	}

	params, perr := req.ToPageParams()
	if perr != nil {
		return params, false, respondError(c, h.logger, perr, "invalid pagination parameters")
	}

	return params, true, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: msg,
		Code:  "INVALID_PARAMS",
	})
}

func validationFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error:   "validation failed",
		Code:    "VALIDATION_ERROR",
		Details: err,
	})
}
