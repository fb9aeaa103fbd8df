package resume

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume", h.get)
}

// get serves the resume file bytes untouched so the frontend sees exactly
// what is on disk, free-form sections included.
func (h *Handler) get(c *gin.Context) {
	raw, err := h.Svc.Raw()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "resume_unavailable", err.Error(), nil)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}
