package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithSecurityHeaders(t *testing.T, enableHSTS bool, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	nextCalled := false
	handler := SecurityHeaders(enableHSTS)(func(c echo.Context) error {
		nextCalled = true
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	require.NoError(t, handler(c))
	require.True(t, nextCalled)
	return rec
}

func TestSecurityHeaders(t *testing.T) {
	headers := serveWithSecurityHeaders(t, true, "/users/me").Header()

	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", headers.Get("Referrer-Policy"))
	assert.Equal(t, "geolocation=(), microphone=(), camera=()", headers.Get("Permissions-Policy"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
	assert.Equal(t, apiContentSecurityPolicy, headers.Get("Content-Security-Policy"))
	assert.Equal(t, "no-store", headers.Get("Cache-Control"))
	assert.Equal(t, "no-cache", headers.Get("Pragma"))
}

func TestSecurityHeadersWithoutHSTS(t *testing.T) {
	headers := serveWithSecurityHeaders(t, false, "/users/me").Header()

	assert.Empty(t, headers.Get("Strict-Transport-Security"))
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
}

func TestSecurityHeadersDocsEndpoint(t *testing.T) {
	csp := serveWithSecurityHeaders(t, false, "/docs").Header().Get("Content-Security-Policy")

	assert.Contains(t, csp, "script-src 'self' 'unsafe-inline' 'unsafe-eval' https://cdn.jsdelivr.net")
	assert.Contains(t, csp, "worker-src 'self' blob:")
}
