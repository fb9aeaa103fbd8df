package chat

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of LogsRepo for dev runs without
// a database.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries []LogEntry
	nextID  int64
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Append stores one exchange, assigning id and timestamp locally.
func (r *MemoryRepo) Append(ctx context.Context, entry LogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	entry.ID = r.nextID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	r.entries = append(r.entries, entry)
	return nil
}

// BySession returns stored exchanges for a session, oldest first.
func (r *MemoryRepo) BySession(sessionID string) []LogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []LogEntry
	for _, entry := range r.entries {
		if entry.SessionID == sessionID {
			out = append(out, entry)
		}
	}
	return out
}

// Len reports the number of stored exchanges.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

var _ LogsRepo = (*MemoryRepo)(nil)
