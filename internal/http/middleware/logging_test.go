package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"task_api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger routes the request-scoped logger into buf so tests can
// inspect the emitted records.
func captureLogger(buf *bytes.Buffer) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := logger.New(buf, "info", true)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), l))
		c.Next()
	}
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &record))
	return record
}

func TestRequestLoggerCompletionEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer

	r := gin.New()
	r.Use(captureLogger(&buf))
	r.Use(RequestLogger())
	r.GET("/tasks", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})

	req := httptest.NewRequest("GET", "/tasks?user_id=u1", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Referer", "http://example.com/")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	record := lastRecord(t, &buf)
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, logger.Name, record["logger"])
	assert.Equal(t, "request completed: GET /tasks", record["msg"])
	assert.Equal(t, float64(http.StatusOK), record["status_code"])
	assert.Equal(t, "test-agent", record["user_agent"])
	assert.Equal(t, "http://example.com/", record["referer"])
	assert.Equal(t, "http", record["component"])
	assert.Equal(t, "request", record["operation"])
	assert.Contains(t, record["content_type"], "application/json")
	assert.GreaterOrEqual(t, record["duration_ms"].(float64), 0.0)
}

func TestRequestLoggerAbsentHeadersAreEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer

	r := gin.New()
	r.Use(captureLogger(&buf))
	r.Use(RequestLogger())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	record := lastRecord(t, &buf)
	assert.Equal(t, "", record["user_agent"])
	assert.Equal(t, "", record["referer"])
}

func TestRequestLoggerRepanicsAfterLogging(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(captureLogger(&buf))
	r.Use(RequestLogger())
	r.GET("/panic", func(c *gin.Context) {
		panic("handler blew up")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/panic", nil))

	// recovery above the middleware converts the re-raised panic
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	record := lastRecord(t, &buf)
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "request failed: GET /panic", record["msg"])
	assert.Equal(t, "handler blew up", record["error"])
	assert.GreaterOrEqual(t, record["duration_ms"].(float64), 0.0)
}
