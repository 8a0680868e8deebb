package handlers

import (
	"fmt"
	"net/http"

	"task_api/internal/logger"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	UserID      string  `json:"user_id" binding:"required"`
}

// CreateTask inserts one task for the calling user. Validation failures are
// rejected before any store access.
func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	l := logger.FromContext(ctx)

	l.Info("creating task for user",
		"user_id", req.UserID,
		"component", "api",
		"operation", "create_task")

	task, err := h.Tasks.Create(ctx, req.Title, req.Description, req.UserID)
	if err != nil {
		l.Error("error creating task",
			"user_id", req.UserID,
			"error", err.Error(),
			"component", "api",
			"operation", "create_task")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("database error: %v", err),
		})
		return
	}

	l.Info("task created successfully",
		"user_id", req.UserID,
		"task_id", task.ID,
		"component", "api",
		"operation", "create_task")

	c.JSON(http.StatusOK, task)
}

// ListTasks returns all tasks for the user_id query parameter, newest first.
func (h *Handler) ListTasks(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "user_id query parameter is required"})
		return
	}

	ctx := c.Request.Context()
	l := logger.FromContext(ctx)

	l.Info("fetching tasks for user",
		"user_id", userID,
		"component", "api",
		"operation", "list_tasks")

	tasks, err := h.Tasks.ListByUser(ctx, userID)
	if err != nil {
		l.Error("error listing tasks for user",
			"user_id", userID,
			"error", err.Error(),
			"component", "api",
			"operation", "list_tasks")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("database error: %v", err),
		})
		return
	}

	l.Info("tasks retrieved successfully",
		"user_id", userID,
		"task_count", len(tasks),
		"component", "api",
		"operation", "list_tasks")

	c.JSON(http.StatusOK, tasks)
}
