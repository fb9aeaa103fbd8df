package chat

import "time"

// LogEntry is one stored exchange: what the visitor asked and what the
// assistant answered, grouped by session.
type LogEntry struct {
	ID          int64
	SessionID   string
	UserMessage string
	AIResponse  string
	CreatedAt   time.Time
}
