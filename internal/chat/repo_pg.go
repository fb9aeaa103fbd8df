package chat

import (
	"context"
	"database/sql"
)

// PGRepo implements LogsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Append inserts one exchange; id and created_at come from the database.
func (r *PGRepo) Append(ctx context.Context, entry LogEntry) error {
	const query = `
INSERT INTO chat_logs (
    session_id,
    user_message,
    ai_response
) VALUES ($1, $2, $3)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		entry.SessionID,
		entry.UserMessage,
		entry.AIResponse,
	)
	return err
}

var _ LogsRepo = (*PGRepo)(nil)
