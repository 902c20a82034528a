package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"saletafood/internal/domain/service"
	mockService "saletafood/internal/mocks/service"
)

func newUploadTestContext(t *testing.T, body io.Reader, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func buildMultipartFile(t *testing.T, fieldContentType string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="burger.png"`)
	header.Set("Content-Type", fieldContentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadImage_Success(t *testing.T) {
	storage := mockService.NewMockFileStorage(t)
	storage.EXPECT().
		Upload(mock.Anything, mock.MatchedBy(func(input service.UploadInput) bool {
			return input.Filename == "burger.png" && input.ContentType == "image/png"
		})).
		Return("https://cdn.saletafood.com/uploads/123-abc.png", nil)

	handler := &UploadHandler{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	body, contentType := buildMultipartFile(t, "image/png")
	c, rec := newUploadTestContext(t, body, contentType)

	require.NoError(t, handler.UploadImage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "https://cdn.saletafood.com/uploads/123-abc.png", envelope.Data["url"])
}

func TestUploadImage_MissingFile(t *testing.T) {
	handler := &UploadHandler{
		storage: mockService.NewMockFileStorage(t),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newUploadTestContext(t, bytes.NewBufferString(""), "")

	require.NoError(t, handler.UploadImage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UPLOAD_MISSING_FILE")
}

func TestUploadImage_UnsupportedType(t *testing.T) {
	handler := &UploadHandler{
		storage: mockService.NewMockFileStorage(t),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	body, contentType := buildMultipartFile(t, "application/pdf")
	c, rec := newUploadTestContext(t, body, contentType)

	require.NoError(t, handler.UploadImage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UPLOAD_UNSUPPORTED_TYPE")
}
