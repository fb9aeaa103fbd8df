package chat

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/resume"
	"portfolio-backend/internal/shared/server/respond"
	"portfolio-backend/internal/shared/telemetry"
)

// maxMessageChars counts characters, not bytes, so multibyte input gets the
// same limit the frontend enforces.
const maxMessageChars = 2000

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if req.Message == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "message is required", nil)
		return
	}
	if utf8.RuneCountInString(req.Message) > maxMessageChars {
		respond.Error(c, http.StatusBadRequest, "validation_error", "message exceeds 2000 characters", nil)
		return
	}

	// The frontend sends one UUID per browser session so a conversation can
	// be grouped in the logs; anything absent gets a fresh token.
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Set("sessionId", sessionID)

	reply, err := h.Svc.Exchange(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrNotLoaded):
			respond.Error(c, http.StatusInternalServerError, "resume_unavailable", err.Error(), nil)
		default:
			fields := map[string]any{
				"session_id": sessionID,
				"err":        err.Error(),
			}
			var upstream *llm.UpstreamError
			if errors.As(err, &upstream) {
				fields["upstream_status"] = upstream.StatusCode
				fields["upstream_body"] = upstream.Body
			}
			telemetry.Error("chat.llm_failed", fields)
			respond.Error(c, http.StatusBadGateway, "llm_error", "LLM service error", nil)
		}
		return
	}

	respond.OK(c, chatResponse{Reply: reply, SessionID: sessionID})
}
