package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client abstracts the chat-completion provider.
type Client interface {
	Chat(ctx context.Context, input ChatInput) (string, error)
}

// ChatInput captures everything a provider needs to answer one visitor
// message about the candidate.
type ChatInput struct {
	UserMessage   string
	ResumeContext string
	CandidateName string
}

// ErrMalformedResponse reports an upstream reply whose JSON shape cannot be
// used (missing choices, empty content, unparseable body).
var ErrMalformedResponse = errors.New("malformed LLM response")

// ErrNotConfigured is returned by the Unconfigured placeholder client.
var ErrNotConfigured = errors.New("LLM client not configured")

// UpstreamError is a non-success reply from the provider. Body is kept for
// logs and never forwarded to API callers.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("LLM upstream status %d", e.StatusCode)
}

// Unconfigured satisfies Client when no API key is present. Every call
// fails, which surfaces as a 502 at the chat endpoint while the rest of the
// API keeps serving.
type Unconfigured struct{}

// Chat returns ErrNotConfigured.
func (Unconfigured) Chat(ctx context.Context, input ChatInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}

var _ Client = Unconfigured{}
