package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsHandler_ScalarUI(t *testing.T) {
	h := NewDocsHandler(t.TempDir(), "Roundup Savings")
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodGet, "/docs", "", uuid.Nil)
	require.NoError(t, h.ServeScalarUI(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Roundup Savings API Reference")
	assert.Contains(t, rec.Body.String(), OpenAPIPath)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	c, rec = newJSONContext(e, http.MethodGet, "/docs", "", uuid.Nil)
	c.Request().Header.Set("If-None-Match", etag)
	require.NoError(t, h.ServeScalarUI(c))
	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestDocsHandler_OpenAPI(t *testing.T) {
	t.Run("not generated", func(t *testing.T) {
		h := NewDocsHandler(t.TempDir(), "Roundup Savings")
		c, rec := newJSONContext(newTestEcho(), http.MethodGet, OpenAPIPath, "", uuid.Nil)

		require.NoError(t, h.ServeOpenAPI(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "SYSTEM_004", decodeErrorCode(rec))
	})

	t.Run("served from disk", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "swagger.json"), []byte(`{"openapi":"3.0.0"}`), 0o600))

		h := NewDocsHandler(dir, "Roundup Savings")
		c, rec := newJSONContext(newTestEcho(), http.MethodGet, OpenAPIPath, "", uuid.Nil)

		require.NoError(t, h.ServeOpenAPI(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"openapi":"3.0.0"}`, rec.Body.String())
		assert.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))
	})
}
