package middleware

import (
	"fmt"
	"time"

	"task_api/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger measures wall-clock duration of each request and emits one
// completion event. Panics are logged with their duration and re-raised
// unchanged; converting them to a response is the outer recovery's job.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if rec := recover(); rec != nil {
				durationMS := float64(time.Since(start)) / float64(time.Millisecond)
				logger.FromContext(c.Request.Context()).Error(
					fmt.Sprintf("request failed: %s %s", c.Request.Method, c.Request.URL.Path),
					"duration_ms", durationMS,
					"error", fmt.Sprint(rec),
					"component", "http",
					"operation", "request",
				)
				panic(rec)
			}
		}()

		c.Next()

		durationMS := float64(time.Since(start)) / float64(time.Millisecond)
		logger.FromContext(c.Request.Context()).Info(
			fmt.Sprintf("request completed: %s %s", c.Request.Method, c.Request.URL.Path),
			"status_code", c.Writer.Status(),
			"duration_ms", durationMS,
			"content_type", c.Writer.Header().Get("Content-Type"),
			"user_agent", c.Request.UserAgent(),
			"referer", c.Request.Referer(),
			"component", "http",
			"operation", "request",
		)
	}
}
