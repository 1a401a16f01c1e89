package v1

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

// HealthResponse reports the status of the service and its dependencies
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler defines the interface for the liveness endpoint
type HealthHandler interface {
	Health(ctx *gin.Context)
}

type healthHandler struct {
	checks map[string]HealthCheck
	logger logger.Logger
}

// NewHealthHandler creates a new HealthHandler running the named checks
func NewHealthHandler(checks map[string]HealthCheck, logger logger.Logger) HealthHandler {
	return &healthHandler{checks: checks, logger: logger}
}

// Health handles the GET request probing every dependency
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (handler *healthHandler) Health(ctx *gin.Context) {
	probeCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(handler.checks))
	for name := range handler.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	response := HealthResponse{Status: "ok", Checks: make(map[string]string, len(names))}
	status := http.StatusOK
	for _, name := range names {
		if err := handler.checks[name](probeCtx); err != nil {
			handler.logger.Warn("health check ", name, " failed: ", err)
			response.Checks[name] = "down"
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		response.Checks[name] = "up"
	}
	ctx.JSON(status, response)
}
