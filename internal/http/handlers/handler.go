package handlers

import (
	"context"

	"task_api/internal/domain"
	"task_api/internal/repository"
)

// TaskStore is the persistence surface handlers depend on.
type TaskStore interface {
	Create(ctx context.Context, title string, description *string, userID string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
}

type Handler struct {
	Tasks TaskStore
}

func NewHandler(dsn string) *Handler {
	return &Handler{
		Tasks: repository.NewTaskRepository(dsn),
	}
}
