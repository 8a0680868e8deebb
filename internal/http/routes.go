package http

import (
	"task_api/internal/http/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, dsn string) {
	h := handlers.NewHandler(dsn)

	r.GET("/health", h.Health)

	r.POST("/tasks", h.CreateTask)
	r.GET("/tasks", h.ListTasks)
}
