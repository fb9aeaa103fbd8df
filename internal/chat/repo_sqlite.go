package chat

import (
	"context"
	"database/sql"
)

// SQLiteRepo implements LogsRepo using SQLite.
type SQLiteRepo struct {
	DB *sql.DB
}

// Append inserts one exchange; id and created_at come from the database.
func (r *SQLiteRepo) Append(ctx context.Context, entry LogEntry) error {
	const query = `
INSERT INTO chat_logs (
    session_id,
    user_message,
    ai_response
) VALUES (?, ?, ?)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		entry.SessionID,
		entry.UserMessage,
		entry.AIResponse,
	)
	return err
}

var _ LogsRepo = (*SQLiteRepo)(nil)
