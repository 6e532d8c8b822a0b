package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	picperfectservice "arcade/contexts/challenge-arcade/pic-perfect-service"
	teamregistryservice "arcade/contexts/internal-ops/team-registry-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "arcade/internal/platform/httpserver/docs"
)

type Server struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	addr         string
	picPerfect   picperfectservice.Module
	teamRegistry teamregistryservice.Module
}

func New(
	picPerfect picperfectservice.Module,
	teamRegistry teamregistryservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		addr:         addr,
		picPerfect:   picPerfect,
		teamRegistry: teamRegistry,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /admin/pic-perfect/start", s.handlePicPerfectStart)
	s.mux.HandleFunc("POST /admin/pic-perfect/hidden-image", s.handlePicPerfectHiddenImage)
	s.mux.HandleFunc("POST /admin/pic-perfect/transition", s.handlePicPerfectTransition)
	s.mux.HandleFunc("POST /admin/pic-perfect/calculate-scores", s.handlePicPerfectCalculateScores)
	s.mux.HandleFunc("POST /admin/pic-perfect/finalize", s.handlePicPerfectFinalize)
	s.mux.HandleFunc("POST /admin/pic-perfect/reset", s.handlePicPerfectReset)
	s.mux.HandleFunc("GET /admin/pic-perfect/status", s.handlePicPerfectStatus)
	s.mux.HandleFunc("GET /admin/pic-perfect/submission-status", s.handlePicPerfectSubmissionStatus)
	s.mux.HandleFunc("GET /admin/pic-perfect/voting-status", s.handlePicPerfectVotingStatus)

	s.mux.HandleFunc("POST /pic-perfect/images", s.handlePicPerfectSubmitImage)
	s.mux.HandleFunc("POST /pic-perfect/votes", s.handlePicPerfectCastVotes)
	s.mux.HandleFunc("GET /pic-perfect/voting-pool", s.handlePicPerfectVotingPool)
	s.mux.HandleFunc("GET /pic-perfect/team-status", s.handlePicPerfectTeamStatus)
	s.mux.HandleFunc("GET /pic-perfect/votes/remaining", s.handlePicPerfectVotesRemaining)
	s.mux.HandleFunc("GET /pic-perfect/leaderboard", s.handlePicPerfectLeaderboard)
	s.mux.HandleFunc("GET /pic-perfect/leaderboard/{team_name}", s.handlePicPerfectTeamScore)

	s.mux.HandleFunc("POST /admin/teams", s.handleTeamRegistryRegister)
	s.mux.HandleFunc("GET /admin/teams", s.handleTeamRegistryList)
	s.mux.HandleFunc("GET /admin/teams/{team_name}", s.handleTeamRegistryGet)
	s.mux.HandleFunc("DELETE /admin/teams/{team_name}", s.handleTeamRegistryRemove)
}

func (s *Server) decodeJSON(
	w http.ResponseWriter,
	r *http.Request,
	target any,
	writeError func(http.ResponseWriter, int, string, string),
) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
