package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caatpension/pension-api/internal/auth"
	"github.com/caatpension/pension-api/internal/config"
	"github.com/caatpension/pension-api/internal/contact"
	"github.com/caatpension/pension-api/internal/employers"
	"github.com/caatpension/pension-api/internal/members"
	"github.com/caatpension/pension-api/internal/news"
	"github.com/caatpension/pension-api/internal/sessions"
)

// newTestRouter wires a full router over fresh seeded stores, the way main
// does, with an in-memory token registry.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-32-bytes-should-be-long-enough"
	cfg.JWT.AccessTokenTTL = time.Minute

	r := gin.New()
	api := r.Group("/api/v1")
	NewAuthHandler(auth.NewService(cfg, sessions.NewMemoryRegistry())).Register(api)
	NewMembersHandler(members.NewService(cfg, members.NewRepository())).Register(api)
	NewNewsHandler(news.NewService()).Register(api)
	NewEmployersHandler(employers.NewService()).Register(api)
	NewContactHandler(contact.NewService()).Register(api)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var got map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return got
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var got []map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return got
}
