package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for HTTP metrics collection.
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := strconv.Itoa(c.Writer.Status())

		metrics.RecordHTTPRequest(method, path, status, duration)
	}
}

// Timer measures one tool execution.
type Timer struct {
	start   time.Time
	metrics *Metrics
	service string
	tool    string
}

// NewTimer starts a timer for a tool execution.
func NewTimer(metrics *Metrics, service, tool string) *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: metrics,
		service: service,
		tool:    tool,
	}
}

// Stop stops the timer and records the call with its final status.
func (t *Timer) Stop(status string) {
	t.metrics.RecordToolCall(t.service, t.tool, status, time.Since(t.start))
}
