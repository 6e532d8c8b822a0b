package httpserver

import (
	"errors"
	"net/http"
	"strings"

	registryerrors "arcade/contexts/internal-ops/team-registry-service/domain/errors"
	registryhttp "arcade/contexts/internal-ops/team-registry-service/transport/http"
)

func writeTeamRegistryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, registryhttp.ErrorResponse{Code: code, Message: message})
}

func writeTeamRegistryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registryerrors.ErrTeamNotFound):
		writeTeamRegistryError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, registryerrors.ErrInvalidRequest):
		writeTeamRegistryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeTeamRegistryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func requireTeamRegistryAdmin(w http.ResponseWriter, r *http.Request) bool {
	if strings.TrimSpace(r.Header.Get("X-Admin-Id")) == "" {
		writeTeamRegistryError(w, http.StatusUnauthorized, "missing_admin", "X-Admin-Id header is required")
		return false
	}
	return true
}

func (s *Server) handleTeamRegistryRegister(w http.ResponseWriter, r *http.Request) {
	if !requireTeamRegistryAdmin(w, r) {
		return
	}
	var req registryhttp.RegisterTeamRequest
	if !s.decodeJSON(w, r, &req, writeTeamRegistryError) {
		return
	}
	resp, err := s.teamRegistry.Handler.RegisterTeamHandler(r.Context(), req)
	if err != nil {
		writeTeamRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleTeamRegistryList(w http.ResponseWriter, r *http.Request) {
	if !requireTeamRegistryAdmin(w, r) {
		return
	}
	resp, err := s.teamRegistry.Handler.ListTeamsHandler(r.Context())
	if err != nil {
		writeTeamRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTeamRegistryGet(w http.ResponseWriter, r *http.Request) {
	if !requireTeamRegistryAdmin(w, r) {
		return
	}
	resp, err := s.teamRegistry.Handler.GetTeamHandler(r.Context(), r.PathValue("team_name"))
	if err != nil {
		writeTeamRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTeamRegistryRemove(w http.ResponseWriter, r *http.Request) {
	if !requireTeamRegistryAdmin(w, r) {
		return
	}
	resp, err := s.teamRegistry.Handler.RemoveTeamHandler(r.Context(), r.PathValue("team_name"))
	if err != nil {
		writeTeamRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
