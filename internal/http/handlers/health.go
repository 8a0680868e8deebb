package handlers

import (
	"net/http"

	"task_api/internal/logger"

	"github.com/gin-gonic/gin"
)

// Health reports the service as healthy unconditionally. It does not probe
// the store; a bad store surfaces through per-request errors instead.
func (h *Handler) Health(c *gin.Context) {
	logger.FromContext(c.Request.Context()).Info("health check request received",
		"component", "api")

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "task-api",
	})
}
