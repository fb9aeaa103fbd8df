package chat

import (
	"context"
	"testing"
)

func TestMemoryRepoAppendAndFilter(t *testing.T) {
	repo := NewMemoryRepo()

	entries := []LogEntry{
		{SessionID: "a", UserMessage: "first", AIResponse: "one"},
		{SessionID: "b", UserMessage: "second", AIResponse: "two"},
		{SessionID: "a", UserMessage: "third", AIResponse: "three"},
	}
	for _, e := range entries {
		if err := repo.Append(context.Background(), e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	if got := repo.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}

	forA := repo.BySession("a")
	if len(forA) != 2 {
		t.Fatalf("BySession(a) returned %d entries, want 2", len(forA))
	}
	if forA[0].UserMessage != "first" || forA[1].UserMessage != "third" {
		t.Fatalf("entries out of order: %+v", forA)
	}
	if forA[0].ID == 0 || forA[1].ID == 0 {
		t.Fatal("expected assigned IDs")
	}
	if forA[0].ID == forA[1].ID {
		t.Fatalf("expected distinct IDs, both %d", forA[0].ID)
	}
	if forA[0].CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestMemoryRepoHonorsCancelledContext(t *testing.T) {
	repo := NewMemoryRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Append(ctx, LogEntry{SessionID: "a"}); err == nil {
		t.Fatal("expected context error")
	}
	if repo.Len() != 0 {
		t.Fatalf("Len = %d, want 0", repo.Len())
	}
}
