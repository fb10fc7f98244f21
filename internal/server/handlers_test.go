package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/globalbiznex/biznexbot/internal/config"
	"github.com/globalbiznex/biznexbot/internal/models"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.Database.Type = "memory"
	cfg.Scheduler.Disabled = true
	cfg.Scheduler.SweepInterval = "5m"
	cfg.Publisher.Mode = "simulate"
	cfg.Publisher.DefaultHashtags = "#globalbiznex #marketing #automation"
	cfg.Audit.LogPath = filepath.Join(t.TempDir(), "post_log.md")

	srv, err := NewServer(cfg, zap.NewNop())
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	var payload map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	}
	return w, payload
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w, payload := doJSON(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", payload["status"])
}

func TestDraftLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// parse a templated prompt into a draft session
	w, payload := doJSON(t, srv, http.MethodPost, "/api/v1/drafts",
		`{"prompt": "idea: Launch\nplatforms: LinkedIn\ndate: 2026-12-15"}`)
	require.Equal(t, http.StatusOK, w.Code)

	draftID, _ := payload["draft_id"].(string)
	require.NotEmpty(t, draftID)
	draft := payload["draft"].(map[string]any)
	assert.Equal(t, "Launch", draft["idea"])
	assert.Equal(t, "LinkedIn", draft["platforms"])

	// fetch it back
	w, payload = doJSON(t, srv, http.MethodGet, "/api/v1/drafts/"+draftID, "")
	require.Equal(t, http.StatusOK, w.Code)
	draft = payload["draft"].(map[string]any)
	assert.Equal(t, "Launch", draft["idea"])

	// edit the draft
	w, _ = doJSON(t, srv, http.MethodPut, "/api/v1/drafts/"+draftID,
		`{"idea": "Launch v2", "platforms": "LinkedIn, FB", "date": "2026-12-15"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// confirm promotes it to a pending item
	w, payload = doJSON(t, srv, http.MethodPost, "/api/v1/drafts/"+draftID+"/confirm", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(1), payload["id"])
	assert.Equal(t, models.StatusPending, payload["status"])

	// the session is gone after promotion
	w, _ = doJSON(t, srv, http.MethodGet, "/api/v1/drafts/"+draftID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// and the item is listed
	w, payload = doJSON(t, srv, http.MethodGet, "/api/v1/items", "")
	require.Equal(t, http.StatusOK, w.Code)
	items := payload["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "Launch v2", item["idea"])
	assert.Equal(t, models.StatusPending, item["status"])
}

func TestParsePromptExtractionErrorIsVerbatim(t *testing.T) {
	srv := newTestServer(t)

	w, payload := doJSON(t, srv, http.MethodPost, "/api/v1/drafts",
		`{"prompt": "idea: Launch"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "missing 'platforms'. Example: platforms: FB, LinkedIn", payload["error"])
}

func TestParsePromptMissingBody(t *testing.T) {
	srv := newTestServer(t)

	w, _ := doJSON(t, srv, http.MethodPost, "/api/v1/drafts", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmUnknownDraft(t *testing.T) {
	srv := newTestServer(t)

	w, _ := doJSON(t, srv, http.MethodPost, "/api/v1/drafts/nope/confirm", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfirmRevalidatesEditedDraft(t *testing.T) {
	srv := newTestServer(t)

	w, payload := doJSON(t, srv, http.MethodPost, "/api/v1/drafts",
		`{"prompt": "idea: Launch\nplatforms: FB"}`)
	require.Equal(t, http.StatusOK, w.Code)
	draftID := payload["draft_id"].(string)

	// blank out a required field, then confirm
	w, _ = doJSON(t, srv, http.MethodPut, "/api/v1/drafts/"+draftID,
		`{"idea": "", "platforms": "FB"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, srv, http.MethodPost, "/api/v1/drafts/"+draftID+"/confirm", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateItemDirect(t *testing.T) {
	srv := newTestServer(t)

	w, payload := doJSON(t, srv, http.MethodPost, "/api/v1/items",
		`{"idea": "sale", "platforms": "FB, IG", "date": "2026-12-15", "time": "16:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(1), payload["id"])

	w, payload = doJSON(t, srv, http.MethodPost, "/api/v1/items",
		`{"idea": "second", "platforms": "FB"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(2), payload["id"])
}

func TestCreateItemRejectsMalformedDate(t *testing.T) {
	srv := newTestServer(t)

	w, _ := doJSON(t, srv, http.MethodPost, "/api/v1/items",
		`{"idea": "sale", "platforms": "FB", "date": "15/12/2026"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDispatchRunAndPostLog(t *testing.T) {
	srv := newTestServer(t)

	w, _ := doJSON(t, srv, http.MethodPost, "/api/v1/items",
		`{"idea": "sale", "platforms": "FB"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, srv, http.MethodPost, "/api/v1/dispatch/run", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, payload := doJSON(t, srv, http.MethodGet, "/api/v1/items", "")
	require.Equal(t, http.StatusOK, w.Code)
	items := payload["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, models.StatusPosted, items[0].(map[string]any)["status"])

	w, payload = doJSON(t, srv, http.MethodGet, "/api/v1/postlog", "")
	require.Equal(t, http.StatusOK, w.Code)
	entries := payload["entries"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, "FB", entry["platform"])
	assert.Equal(t, "https://facebook.com/fake_page_post", entry["post_url"])
}

func TestLoginDisabled(t *testing.T) {
	srv := newTestServer(t)

	w, _ := doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", `{"code": "123456"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthMiddlewareBlocksWithoutSession(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.Database.Type = "memory"
	cfg.Scheduler.Disabled = true
	cfg.Publisher.Mode = "simulate"
	cfg.Audit.LogPath = filepath.Join(t.TempDir(), "post_log.md")
	cfg.Auth.Enabled = true
	cfg.Auth.TOTPSecret = "JBSWY3DPEHPK3PXP"

	srv, err := NewServer(cfg, zap.NewNop())
	require.NoError(t, err)

	// health stays open
	w, _ := doJSON(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// everything else requires a session
	w, _ = doJSON(t, srv, http.MethodGet, "/api/v1/items", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// a bad login code is rejected
	w, _ = doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", `{"code": "000000"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
