package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"catalogue-service/internal/app/service"
	"catalogue-service/internal/domain"
	"catalogue-service/internal/transport/httpserver/dto"
	"catalogue-service/internal/validator"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	service   *service.CategoryService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc *service.CategoryService, v *validator.Validator, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// List handles GET /api/v1/category
//
//	@Summary	List categories
//	@Tags		category
//	@Produce	json
//	@Param		pageSize	query		string	false	"Items per page (default 20, max 100)"
//	@Param		after		query		string	false	"Cursor for pagination"
//	@Success	200			{object}	dto.CategoryPageResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Security	ApiKeyAuth
//	@Router		/category [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	params, ok, err := h.listParams(c)
	if !ok {
		return err
	}

	page, err := h.service.GetCategories(c.Context(), params)
	if err != nil {
		return respondError(c, h.logger, err, "failed to fetch categories")
	}

	return c.JSON(dto.FromCategoryPage(page, params.Size))
}

// Contents handles GET /api/v1/category/:categoryId
//
//	@Summary	List contents of one category
//	@Tags		category
//	@Produce	json
//	@Param		categoryId	path		string	true	"External category id"
//	@Param		pageSize	query		string	false	"Items per page (default 20, max 100)"
//	@Param		after		query		string	false	"Cursor for pagination"
//	@Success	200			{object}	dto.ContentPageResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Security	ApiKeyAuth
//	@Router		/category/{categoryId} [get]
func (h *CategoryHandler) Contents(c *fiber.Ctx) error {
	params, ok, err := h.listParams(c)
	if !ok {
		return err
	}

	page, err := h.service.GetCategoryContents(c.Context(), c.Params("categoryId"), params)
	if err != nil {
		return respondError(c, h.logger, err, "failed to fetch category contents")
	}

	return c.JSON(dto.FromContentPage(page, params.Size))
}

// listParams mirrors ContentHandler.listParams for the category routes.
func (h *CategoryHandler) listParams(c *fiber.Ctx) (params domain.PageParams, ok bool, err error) {
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
