package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const readinessTimeout = 2 * time.Second

// HealthCheckHandler handles the liveness and readiness endpoints
type HealthCheckHandler struct {
	db          *gorm.DB
	serviceName string
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB, serviceName string) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, serviceName: serviceName}
}

// HealthCheck reports that the process is up. It touches no dependencies.
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,service=string,time=string}
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": h.serviceName,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// ReadinessCheck pings the database
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,service=string,database=string}
// @Failure 503 {object} object{status=string,service=string,database=string}
// @Router /health/ready [get]
func (h *HealthCheckHandler) ReadinessCheck(c echo.Context) error {
	if err := h.pingDatabase(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":   "unhealthy",
			"service":  h.serviceName,
			"database": "unreachable",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":   "ready",
		"service":  h.serviceName,
		"database": "connected",
	})
}

func (h *HealthCheckHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()

	return sqlDB.PingContext(ctx)
}
