// Package http contains the REST handlers for the calc service.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TomasMT1104/Lab-Final-IA/internal/infrastructure/logging"
	"github.com/TomasMT1104/Lab-Final-IA/internal/infrastructure/monitoring"
	"github.com/TomasMT1104/Lab-Final-IA/internal/service"
	"github.com/TomasMT1104/Lab-Final-IA/internal/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// Root handles the basic liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Calc Service (Go)",
		"version": "1.0.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	})
}

// Stats reports aggregate request counters
func (h *Handlers) Stats(c *gin.Context) {
	snap := h.metrics.Stats()
	c.JSON(http.StatusOK, gin.H{
		"total_requests":       snap.TotalRequests,
		"total_errors":         snap.TotalErrors,
		"avg_duration_seconds": h.metrics.AverageDuration(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, nil)
	if err != nil {
		h.logger.Warn("tool routing failed",
			zap.String("tool_id", req.ToolID),
			zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	status := "success"
	if !result.Success {
		status = "error"
		if result.ErrorKind != nil {
			h.metrics.RecordToolError("calc", req.ToolID, *result.ErrorKind)
		}
	}
	h.metrics.RecordToolCall("calc", req.ToolID, status, time.Since(start))

	c.JSON(http.StatusOK, result)
}
