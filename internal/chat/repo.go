package chat

import "context"

// LogsRepo defines persistence operations for chat exchanges.
type LogsRepo interface {
	Append(ctx context.Context, entry LogEntry) error
}
