package chat

import (
	"context"
	"time"

	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/resume"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/telemetry"
)

// Service answers visitor messages with the candidate's background injected
// into the prompt, and records each exchange best-effort.
type Service struct {
	Resume *resume.Service
	LLM    llm.Client
	Logs   LogsRepo
}

// Exchange sends one visitor message to the model and returns the reply.
// The log write afterwards is best-effort: a failure is logged and never
// surfaces to the caller. Nothing is written when the model call fails.
func (s *Service) Exchange(ctx context.Context, sessionID, message string) (string, error) {
	metrics.IncChatStarted()

	contextJSON, err := s.Resume.ContextJSON()
	if err != nil {
		metrics.IncChatFailed()
		return "", err
	}

	started := time.Now()
	reply, err := s.LLM.Chat(ctx, llm.ChatInput{
		UserMessage:   message,
		ResumeContext: contextJSON,
		CandidateName: s.Resume.CandidateName(),
	})
	metrics.ObserveLLMRequestDurationMs(float64(time.Since(started)) / float64(time.Millisecond))
	if err != nil {
		metrics.IncChatFailed()
		return "", err
	}

	if err := s.appendLog(ctx, sessionID, message, reply); err != nil {
		telemetry.Error("chat.log_write_failed", map[string]any{
			"session_id": sessionID,
			"err":        err.Error(),
		})
	}

	metrics.IncChatCompleted()
	return reply, nil
}

func (s *Service) appendLog(ctx context.Context, sessionID, message, reply string) error {
	if s.Logs == nil {
		return nil
	}
	return s.Logs.Append(ctx, LogEntry{
		SessionID:   sessionID,
		UserMessage: message,
		AIResponse:  reply,
	})
}
