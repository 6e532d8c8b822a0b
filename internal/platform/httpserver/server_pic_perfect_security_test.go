package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	picperfectservice "arcade/contexts/challenge-arcade/pic-perfect-service"
	teamregistryservice "arcade/contexts/internal-ops/team-registry-service"
)

func newTestServer() *Server {
	return New(
		picperfectservice.NewInMemoryModule([]string{"alpha", "bravo"}, slog.Default()),
		teamregistryservice.NewInMemoryModule(slog.Default()),
		slog.Default(),
		":0",
	)
}

func TestPicPerfectAdminRoutesRequireAdminHeader(t *testing.T) {
	server := newTestServer()
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/admin/pic-perfect/start"},
		{http.MethodPost, "/admin/pic-perfect/hidden-image"},
		{http.MethodPost, "/admin/pic-perfect/transition"},
		{http.MethodPost, "/admin/pic-perfect/calculate-scores"},
		{http.MethodPost, "/admin/pic-perfect/finalize"},
		{http.MethodPost, "/admin/pic-perfect/reset"},
		{http.MethodGet, "/admin/pic-perfect/status"},
		{http.MethodGet, "/admin/pic-perfect/submission-status"},
		{http.MethodGet, "/admin/pic-perfect/voting-status"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		server.mux.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d body=%s", route.method, route.path, rr.Code, rr.Body.String())
		}
	}
}

func TestPicPerfectTeamRoutesRequireTeamHeader(t *testing.T) {
	server := newTestServer()
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/pic-perfect/images"},
		{http.MethodPost, "/pic-perfect/votes"},
		{http.MethodGet, "/pic-perfect/voting-pool"},
		{http.MethodGet, "/pic-perfect/team-status"},
		{http.MethodGet, "/pic-perfect/votes/remaining"},
		{http.MethodGet, "/pic-perfect/leaderboard"},
		{http.MethodGet, "/pic-perfect/leaderboard/alpha"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "idem-unauthenticated")

		rr := httptest.NewRecorder()
		server.mux.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d body=%s", route.method, route.path, rr.Code, rr.Body.String())
		}
	}
}

func TestPicPerfectStartRejectsMalformedJSON(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/admin/pic-perfect/start", bytes.NewReader([]byte(`{"hidden_image_url":`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Id", "admin-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPicPerfectSubmitImageRejectsMalformedJSON(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/pic-perfect/images", bytes.NewReader([]byte(`not-json`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Team-Id", "alpha")
	req.Header.Set("Idempotency-Key", "idem-bad-body")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPicPerfectStatusMapsUninitializedChallengeTo404(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/admin/pic-perfect/status", nil)
	req.Header.Set("X-Admin-Id", "admin-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before start, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPicPerfectStartAndStatusRoundTrip(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"hidden_image_url":"https://img.example/original.png","hidden_prompt":"sunset over the harbor"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/pic-perfect/start", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Id", "admin-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on start, got %d body=%s", rr.Code, rr.Body.String())
	}

	statusReq := httptest.NewRequest(http.MethodGet, "/admin/pic-perfect/status", nil)
	statusReq.Header.Set("X-Admin-Id", "admin-1")

	statusRR := httptest.NewRecorder()
	server.mux.ServeHTTP(statusRR, statusReq)
	if statusRR.Code != http.StatusOK {
		t.Fatalf("expected 200 on status, got %d body=%s", statusRR.Code, statusRR.Body.String())
	}
	var status struct {
		State          string `json:"state"`
		HiddenImageSet bool   `json:"hidden_image_set"`
	}
	if err := json.Unmarshal(statusRR.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode status response: %v", err)
	}
	if status.State != "submission" || !status.HiddenImageSet {
		t.Fatalf("unexpected status after start: %+v", status)
	}
}

func TestPicPerfectSubmitImageMapsUnregisteredTeamTo403(t *testing.T) {
	server := newTestServer()
	startBody := []byte(`{"hidden_image_url":"https://img.example/original.png","hidden_prompt":"sunset over the harbor"}`)
	startReq := httptest.NewRequest(http.MethodPost, "/admin/pic-perfect/start", bytes.NewReader(startBody))
	startReq.Header.Set("Content-Type", "application/json")
	startReq.Header.Set("X-Admin-Id", "admin-1")
	startRR := httptest.NewRecorder()
	server.mux.ServeHTTP(startRR, startReq)
	if startRR.Code != http.StatusOK {
		t.Fatalf("expected 200 on start, got %d body=%s", startRR.Code, startRR.Body.String())
	}

	body := []byte(`{"image_url":"https://img.example/ghost.png","prompt":"sunset"}`)
	req := httptest.NewRequest(http.MethodPost, "/pic-perfect/images", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Team-Id", "ghost")
	req.Header.Set("Idempotency-Key", "idem-ghost-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unregistered team, got %d body=%s", rr.Code, rr.Body.String())
	}
}
