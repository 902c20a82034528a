package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"saletafood/internal/delivery/http/response"
	domainerrors "saletafood/internal/domain/errors"
	"saletafood/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	Storage service.FileStorage
	Logger  *slog.Logger
}

// UploadHandler stores admin-uploaded images in object storage.
type UploadHandler struct {
	storage service.FileStorage
	logger  *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// UploadImage handles POST /admin/uploads. It accepts a multipart form with
// a single "file" part and responds with the public URL of the stored blob.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrUploadMissingFile)
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return response.HandleAppError(c,
			domainerrors.ErrUploadUnsupportedType.WithDetails("content type "+contentType+" is not an image"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer file.Close()

	url, err := h.storage.Upload(c.Request().Context(), service.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		h.logger.Error("failed to store uploaded image",
			slog.String("filename", fileHeader.Filename),
			slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url})
}
