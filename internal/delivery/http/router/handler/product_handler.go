package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"saletafood/internal/delivery/http/response"
	"saletafood/internal/delivery/http/validator"
	"saletafood/internal/delivery/http/view"
	"saletafood/internal/domain/entity"
	"saletafood/internal/domain/service"
	"saletafood/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		qrcode:    params.QRCode,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a product.
type CreateProductRequest struct {
	Name           string               `json:"name" validate:"required"`
	Description    string               `json:"description" validate:"required"`
	Price          float64              `json:"price" validate:"gt=0"`
	Images         []string             `json:"images"`
	Status         string               `json:"status"`
	CategoryID     string               `json:"categoryId" validate:"required"`
	FurtherDetails []entity.DetailBlock `json:"furtherDetails"`
	Tags           []string             `json:"tags"`
	Featured       bool                 `json:"featured"`
	Slug           string               `json:"slug" validate:"omitempty,slug"`
}

// UpdateProductRequest represents the request body for updating a product.
// Absent fields leave the stored value untouched.
type UpdateProductRequest struct {
	Name           *string              `json:"name"`
	Description    *string              `json:"description"`
	Price          *float64             `json:"price" validate:"omitempty,gt=0"`
	Images         []string             `json:"images"`
	Status         *string              `json:"status"`
	CategoryID     *string              `json:"categoryId"`
	FurtherDetails []entity.DetailBlock `json:"furtherDetails"`
	Tags           []string             `json:"tags"`
	Featured       *bool                `json:"featured"`
	Slug           *string              `json:"slug" validate:"omitempty,slug"`
}

// ListProducts handles GET /products with optional limit and search
// query parameters.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	limit := parseLimit(c.QueryParam("limit"))

	products, err := h.productUC.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Limit:  limit,
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view.NewProductViews(products))
}

// ListFeaturedProducts handles GET /products/featured.
func (h *ProductHandler) ListFeaturedProducts(c echo.Context) error {
	limit := parseLimit(c.QueryParam("limit"))

	products, err := h.productUC.ListFeaturedProducts(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view.NewProductViews(products))
}

// ListProductsByCategory handles GET /categories/:slug/products.
func (h *ProductHandler) ListProductsByCategory(c echo.Context) error {
	limit := parseLimit(c.QueryParam("limit"))

	products, err := h.productUC.ListProductsByCategory(c.Request().Context(), c.Param("slug"), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view.NewProductViews(products))
}

// GetProductBySlug handles GET /products/:slug.
func (h *ProductHandler) GetProductBySlug(c echo.Context) error {
	product, err := h.productUC.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view.NewProductView(product))
}

// CreateProduct handles POST /admin/products.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          decimal.NewFromFloat(req.Price),
		Images:         req.Images,
		Status:         req.Status,
		CategoryID:     req.CategoryID,
		FurtherDetails: req.FurtherDetails,
		Tags:           req.Tags,
		Featured:       req.Featured,
		Slug:           req.Slug,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view.NewProductView(product))
}

// UpdateProduct handles PUT /admin/products/:id.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	input := &usecase.UpdateProductInput{
		Name:           req.Name,
		Description:    req.Description,
		Images:         req.Images,
		Status:         req.Status,
		CategoryID:     req.CategoryID,
		FurtherDetails: req.FurtherDetails,
		Tags:           req.Tags,
		Featured:       req.Featured,
		Slug:           req.Slug,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view.NewProductView(product))
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// GetProductQRCode handles GET /admin/products/:id/qrcode. It renders a PNG
// QR code linking to the public product page.
func (h *ProductHandler) GetProductQRCode(c echo.Context) error {
	product, err := h.productUC.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrcode.GenerateProductQR(product.Slug)
	if err != nil {
		h.logger.Error("failed to render product QR code",
			slog.String("product_id", product.ID.String()),
			slog.Any("error", err))

		return response.InternalServerError(c, "QRCODE_FAILED", "Failed to render QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}
