package middleware

import (
	"task_api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the gin context key holding the generated request id.
	RequestIDKey = "request_id"

	// RequestIDHeader is echoed on every response for client-side correlation.
	RequestIDHeader = "X-Request-ID"

	// UserIDHeader carries the caller-supplied user identifier. Best effort,
	// unauthenticated; the query parameter is the fallback.
	UserIDHeader = "X-User-ID"
)

// RequestContext assigns a fresh request id to each request and attaches a
// request-scoped logger to the request context. Every log call downstream
// automatically carries request_id, path, method and (when supplied) user_id.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()

		userID := userIDFromRequest(c)

		l := logger.With(
			"request_id", requestID,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		if userID != "" {
			l = l.With("user_id", userID)
		}

		c.Set(RequestIDKey, requestID)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), l))

		// set before the handler runs so the header survives early writes
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// userIDFromRequest resolves the caller-supplied user identifier: header
// first, then query parameter. Absence is not an error.
func userIDFromRequest(c *gin.Context) string {
	if v := c.GetHeader(UserIDHeader); v != "" {
		return v
	}
	return c.Query("user_id")
}
