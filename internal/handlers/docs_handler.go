package handlers

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	apierrors "roundup-savings/internal/errors"

	"github.com/labstack/echo/v4"
)

// OpenAPIPath is where the generated API description is served
const OpenAPIPath = "/docs/openapi.json"

const scalarPage = `<!doctype html>
<html>
  <head>
    <title>%s API Reference</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <script id="api-reference" data-url="%s"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
  </body>
</html>
`

// DocsHandler serves the Scalar reference UI and the swag-generated
// OpenAPI document
type DocsHandler struct {
	page        []byte
	pageETag    string
	openAPIPath string
}

// NewDocsHandler serves docsDir/swagger.json. The UI is rendered once at
// construction.
func NewDocsHandler(docsDir, title string) *DocsHandler {
	page := []byte(fmt.Sprintf(scalarPage, title, OpenAPIPath))
	return &DocsHandler{
		page:        page,
		pageETag:    generateETag(page),
		openAPIPath: filepath.Join(docsDir, "swagger.json"),
	}
}

// ServeScalarUI serves the Scalar HTML page
// @Summary API Documentation UI
// @Tags Documentation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /docs [get]
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("ETag", h.pageETag)
	if match := c.Request().Header.Get("If-None-Match"); match == h.pageETag {
		return c.NoContent(http.StatusNotModified)
	}

	return c.HTMLBlob(http.StatusOK, h.page)
}

// ServeOpenAPI serves the OpenAPI document loaded by the UI
func (h *DocsHandler) ServeOpenAPI(c echo.Context) error {
	if !fileExists(h.openAPIPath) {
		return SendError(c, apierrors.SystemRouteNotFound, apierrors.WithDetails("API description has not been generated"))
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	return c.File(h.openAPIPath)
}

func generateETag(data []byte) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf("\"%x\"", sum[:8])
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
