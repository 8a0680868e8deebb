package db

import (
	"context"

	"task_api/internal/config"
	"task_api/internal/logger"

	"github.com/jackc/pgx/v5"
)

// schemaSQL is idempotent: safe to run against an already-initialized store.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS tasks (
    id SERIAL PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    description TEXT,
    status VARCHAR(50) DEFAULT 'pending',
    user_id VARCHAR(255) NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
-- filtering by user_id is the most common access path
CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks (user_id);
CREATE INDEX IF NOT EXISTS idx_tasks_user_id_status ON tasks (user_id, status);
CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks (created_at);
CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks (status);
`

// Connect opens a single connection to the store. The caller closes it.
func Connect(ctx context.Context, dsn string) (*pgx.Conn, error) {
	return pgx.Connect(ctx, dsn)
}

// EnsureSchema runs the idempotent schema statement on an open connection.
func EnsureSchema(ctx context.Context, conn *pgx.Conn) error {
	_, err := conn.Exec(ctx, schemaSQL)
	return err
}

// Bootstrap creates the tasks table and its indexes if absent. Failure is
// logged but never fatal: the service comes up even when the store is not
// ready yet, and callers observe persistence errors per request instead.
func Bootstrap(ctx context.Context, cfg *config.Config) {
	conn, err := Connect(ctx, cfg.DSN())
	if err != nil {
		logger.Error("database initialization failed",
			"database", cfg.DBName,
			"host", cfg.DBHost,
			"component", "database",
			"error", err)
		return
	}
	defer conn.Close(ctx)

	if err := EnsureSchema(ctx, conn); err != nil {
		logger.Error("database initialization failed",
			"database", cfg.DBName,
			"host", cfg.DBHost,
			"component", "database",
			"error", err)
		return
	}

	logger.Info("database initialized successfully",
		"database", cfg.DBName,
		"host", cfg.DBHost,
		"component", "database")
}
