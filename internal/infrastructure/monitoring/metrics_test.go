package monitoring

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	m := NewMetrics()

	m.RecordHTTPRequest("GET", "/health", "200", 5*time.Millisecond)
	m.RecordHTTPRequest("POST", "/services/execute", "400", 2*time.Millisecond)

	snap := m.Stats()
	assert.Equal(t, int64(2), snap.TotalRequests)
	assert.Equal(t, int64(1), snap.TotalErrors)
	assert.Greater(t, m.AverageDuration(), 0.0)
}

func TestRecordToolCall(t *testing.T) {
	m := NewMetrics()

	timer := NewTimer(m, "calc", "calc.add")
	timer.Stop("success")
	m.RecordToolError("calc", "calc.divide", "division_by_zero")

	// Independent instances register without colliding
	other := NewMetrics()
	require.NotNil(t, other)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := NewMetrics()
	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, int64(1), m.Stats().TotalRequests)
	assert.Equal(t, int64(0), m.Stats().TotalErrors)
}

func TestHandlerExposition(t *testing.T) {
	m := NewMetrics()
	m.RecordHTTPRequest("GET", "/health", "200", time.Millisecond)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "calc_http_requests_total")
}
