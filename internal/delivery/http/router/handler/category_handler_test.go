package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saletafood/internal/delivery/http/validator"
)

func newCategoryTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/categories", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) (code string, fieldErrors map[string]string) {
	t.Helper()

	var body struct {
		Error struct {
			Code        string            `json:"code"`
			FieldErrors map[string]string `json:"fieldErrors"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code, body.Error.FieldErrors
}

func TestCreateCategory_InvalidSlugReturnsFieldErrors(t *testing.T) {
	handler := &CategoryHandler{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	c, rec := newCategoryTestContext(t, `{"name":"Burgers","slug":"Invalid Slug!"}`)

	require.NoError(t, handler.CreateCategory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	code, fieldErrors := decodeErrorBody(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", code)
	assert.Contains(t, fieldErrors, "slug")

	// Struct and field identifiers stay server-side.
	assert.NotContains(t, rec.Body.String(), "CreateCategoryRequest")
	assert.NotContains(t, rec.Body.String(), "'Slug'")
}

func TestCreateCategory_MissingNameReturnsFieldErrors(t *testing.T) {
	handler := &CategoryHandler{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	c, rec := newCategoryTestContext(t, `{"slug":"burgers"}`)

	require.NoError(t, handler.CreateCategory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	code, fieldErrors := decodeErrorBody(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", code)
	assert.Equal(t, "name is required", fieldErrors["name"])
}
