package domain

// Task is the persisted work item. The store owns id, status default and
// created_at; the API never computes them. created_at stays inside the
// store and is not part of the response shape.
type Task struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description *string `json:"description" db:"description"`
	Status      string  `json:"status" db:"status"`
	UserID      string  `json:"user_id" db:"user_id"`
}
