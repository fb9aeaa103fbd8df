package resume

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func TestGetResumePassthrough(t *testing.T) {
	contents := `{"personal": {"name": "Rohit"}, "extra_field": {"anything": true}}`
	path := filepath.Join(t.TempDir(), "resume.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	router := newTestRouter(NewService(path))

	req := httptest.NewRequest(http.MethodGet, "/api/resume", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != contents {
		t.Fatalf("expected body to match file exactly, got %q", resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content type, got %q", ct)
	}
}

func TestGetResumeMissingFile(t *testing.T) {
	router := newTestRouter(NewService(filepath.Join(t.TempDir(), "missing.json")))

	req := httptest.NewRequest(http.MethodGet, "/api/resume", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "resume_unavailable") {
		t.Fatalf("expected error envelope, got %q", resp.Body.String())
	}
}
