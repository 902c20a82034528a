package handler

import (
	"log/slog"
	"net/http"

	"saletafood/internal/delivery/http/response"
	"saletafood/internal/delivery/http/validator"
	"saletafood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// ContentHandler serves the content-managed homepage blocks and the
// visitor counter.
type ContentHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler.
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// UpdateHeroRequest represents the request body for saving the hero block.
type UpdateHeroRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// UpdateCTARequest represents the request body for saving the CTA block.
type UpdateCTARequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
	ButtonURL   string `json:"buttonUrl"`
}

// GetHeroContent handles GET /content/hero.
func (h *ContentHandler) GetHeroContent(c echo.Context) error {
	hero, err := h.contentUC.GetHeroContent(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hero)
}

// UpdateHeroContent handles PUT /admin/content/hero.
func (h *ContentHandler) UpdateHeroContent(c echo.Context) error {
	var req UpdateHeroRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hero content input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	hero := &usecase.HeroContent{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := h.contentUC.UpdateHeroContent(c.Request().Context(), hero); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hero)
}

// GetCTAContent handles GET /content/cta.
func (h *ContentHandler) GetCTAContent(c echo.Context) error {
	cta, err := h.contentUC.GetCTAContent(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cta)
}

// UpdateCTAContent handles PUT /admin/content/cta.
func (h *ContentHandler) UpdateCTAContent(c echo.Context) error {
	var req UpdateCTARequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid CTA content input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	cta := &usecase.CTAContent{
		Title:       req.Title,
		Description: req.Description,
		ButtonText:  req.ButtonText,
		ButtonURL:   req.ButtonURL,
	}
	if err := h.contentUC.UpdateCTAContent(c.Request().Context(), cta); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cta)
}

// GetVisitorCount handles GET /visits.
func (h *ContentHandler) GetVisitorCount(c echo.Context) error {
	count, err := h.contentUC.GetVisitorCount(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count})
}

// RecordVisit handles POST /visits.
func (h *ContentHandler) RecordVisit(c echo.Context) error {
	count, err := h.contentUC.RecordVisit(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count})
}
