package repository

import (
	"context"

	"task_api/internal/db"
	"task_api/internal/domain"
)

// TaskRepository executes one statement per call over a fresh connection.
// Opening a connection per operation is the service's baseline behavior;
// a pool would be the first change for production load.
type TaskRepository struct {
	dsn string
}

func NewTaskRepository(dsn string) *TaskRepository {
	return &TaskRepository{dsn: dsn}
}

// Create inserts a task. The store assigns id, the 'pending' status default
// and created_at; the inserted row is returned as stored.
func (r *TaskRepository) Create(ctx context.Context, title string, description *string, userID string) (*domain.Task, error) {
	conn, err := db.Connect(ctx, r.dsn)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	var t domain.Task
	err = conn.QueryRow(ctx,
		`INSERT INTO tasks (title, description, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, title, description, status, user_id`,
		title, description, userID,
	).Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByUser returns the user's tasks newest first. No rows is an empty
// slice, not an error.
func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	conn, err := db.Connect(ctx, r.dsn)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx,
		`SELECT id, title, description, status, user_id FROM tasks
		 WHERE user_id = $1 ORDER BY id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
