package httpserver

import (
	"errors"
	"net/http"
	"strings"

	picperfecterrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	picperfecthttp "arcade/contexts/challenge-arcade/pic-perfect-service/transport/http"
)

func writePicPerfectError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, picperfecthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writePicPerfectDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, picperfecterrors.ErrChallengeNotInitialized):
		writePicPerfectError(w, http.StatusNotFound, "challenge_not_initialized", err.Error())
	case errors.Is(err, picperfecterrors.ErrUnknownVoteTarget):
		writePicPerfectError(w, http.StatusNotFound, "unknown_vote_target", err.Error())
	case errors.Is(err, picperfecterrors.ErrScoreNotFound):
		writePicPerfectError(w, http.StatusNotFound, "score_not_found", err.Error())
	case errors.Is(err, picperfecterrors.ErrTeamNotRegistered):
		writePicPerfectError(w, http.StatusForbidden, "team_not_registered", err.Error())
	case errors.Is(err, picperfecterrors.ErrInvalidState):
		writePicPerfectError(w, http.StatusConflict, "invalid_state", err.Error())
	case errors.Is(err, picperfecterrors.ErrInvalidTransition):
		writePicPerfectError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, picperfecterrors.ErrDuplicateSubmission):
		writePicPerfectError(w, http.StatusConflict, "duplicate_submission", err.Error())
	case errors.Is(err, picperfecterrors.ErrDuplicateHiddenSubmission):
		writePicPerfectError(w, http.StatusConflict, "duplicate_hidden_submission", err.Error())
	case errors.Is(err, picperfecterrors.ErrDuplicateVote):
		writePicPerfectError(w, http.StatusConflict, "duplicate_vote", err.Error())
	case errors.Is(err, picperfecterrors.ErrVoteLimitExceeded):
		writePicPerfectError(w, http.StatusConflict, "vote_limit_exceeded", err.Error())
	case errors.Is(err, picperfecterrors.ErrIdempotencyConflict),
		errors.Is(err, picperfecterrors.ErrConflict):
		writePicPerfectError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, picperfecterrors.ErrSelfVote):
		writePicPerfectError(w, http.StatusBadRequest, "self_vote", err.Error())
	case errors.Is(err, picperfecterrors.ErrIdempotencyKeyRequired):
		writePicPerfectError(w, http.StatusBadRequest, "idempotency_key_required", err.Error())
	case errors.Is(err, picperfecterrors.ErrInvalidRequest):
		writePicPerfectError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writePicPerfectError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func requirePicPerfectAdmin(w http.ResponseWriter, r *http.Request) bool {
	if strings.TrimSpace(r.Header.Get("X-Admin-Id")) == "" {
		writePicPerfectError(w, http.StatusUnauthorized, "missing_admin", "X-Admin-Id header is required")
		return false
	}
	return true
}

func requirePicPerfectTeam(w http.ResponseWriter, r *http.Request) (string, bool) {
	teamName := strings.TrimSpace(r.Header.Get("X-Team-Id"))
	if teamName == "" {
		writePicPerfectError(w, http.StatusUnauthorized, "missing_team", "X-Team-Id header is required")
		return "", false
	}
	return teamName, true
}

func (s *Server) handlePicPerfectStart(w http.ResponseWriter, r *http.Request) {
	if !requirePicPerfectAdmin(w, r) {
		return
	}
	var req picperfecthttp.StartChallengeRequest
	if !s.decodeJSON(w, r, &req, writePicPerfectError) {
		return
	}
	resp, err := s.picPerfect.Handler.StartChallengeHandler(r.Context(), req)
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectHiddenImage(w http.ResponseWriter, r *http.Request) {
	if !requirePicPerfectAdmin(w, r) {
		return
	}
	var req picperfecthttp.SubmitHiddenImageRequest
	if !s.decodeJSON(w, r, &req, writePicPerfectError) {
		return
	}
	resp, err := s.picPerfect.Handler.SubmitHiddenImageHandler(r.Context(), req)
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectTransition(w http.ResponseWriter, r *http.Request) {
	if !requirePicPerfectAdmin(w, r) {
		return
	}
	var req picperfecthttp.TransitionStateRequest
	if !s.decodeJSON(w, r, &req, writePicPerfectError) {
		return
	}
	resp, err := s.picPerfect.Handler.TransitionStateHandler(r.Context(), req)
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectCalculateScores(w http.ResponseWriter, r *http.Request) {
	if !requirePicPerfectAdmin(w, r) {
		return
	}
	resp, err := s.picPerfect.Handler.CalculateScoresHandler(r.Context())
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectFinalize(w http.ResponseWriter, r *http.Request) {
	if !requirePicPerfectAdmin(w, r) {
		return
	}
	resp, err := s.picPerfect.Handler.FinalizeChallengeHandler(r.Context())
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectReset(w http.ResponseWriter, r *http.Request) {
	if !requirePicPerfectAdmin(w, r) {
		return
	}
	resp, err := s.picPerfect.Handler.ResetChallengeHandler(r.Context())
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectStatus(w http.ResponseWriter, r *http.Request) {
	if !requirePicPerfectAdmin(w, r) {
		return
	}
	resp, err := s.picPerfect.Handler.ChallengeStatusHandler(r.Context())
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	if !requirePicPerfectAdmin(w, r) {
		return
	}
	resp, err := s.picPerfect.Handler.SubmissionStatusHandler(r.Context())
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectVotingStatus(w http.ResponseWriter, r *http.Request) {
	if !requirePicPerfectAdmin(w, r) {
		return
	}
	resp, err := s.picPerfect.Handler.VotingStatusHandler(r.Context())
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectSubmitImage(w http.ResponseWriter, r *http.Request) {
	teamName, ok := requirePicPerfectTeam(w, r)
	if !ok {
		return
	}
	var req picperfecthttp.SubmitImageRequest
	if !s.decodeJSON(w, r, &req, writePicPerfectError) {
		return
	}
	resp, err := s.picPerfect.Handler.SubmitImageHandler(
		r.Context(),
		teamName,
		r.Header.Get("Idempotency-Key"),
		req,
	)
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectCastVotes(w http.ResponseWriter, r *http.Request) {
	teamName, ok := requirePicPerfectTeam(w, r)
	if !ok {
		return
	}
	var req picperfecthttp.CastVotesRequest
	if !s.decodeJSON(w, r, &req, writePicPerfectError) {
		return
	}
	resp, err := s.picPerfect.Handler.CastVotesHandler(
		r.Context(),
		teamName,
		r.Header.Get("Idempotency-Key"),
		req,
	)
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectVotingPool(w http.ResponseWriter, r *http.Request) {
	teamName, ok := requirePicPerfectTeam(w, r)
	if !ok {
		return
	}
	resp, err := s.picPerfect.Handler.VotingPoolHandler(r.Context(), teamName)
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectTeamStatus(w http.ResponseWriter, r *http.Request) {
	teamName, ok := requirePicPerfectTeam(w, r)
	if !ok {
		return
	}
	resp, err := s.picPerfect.Handler.TeamStatusHandler(r.Context(), teamName)
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectVotesRemaining(w http.ResponseWriter, r *http.Request) {
	teamName, ok := requirePicPerfectTeam(w, r)
	if !ok {
		return
	}
	resp, err := s.picPerfect.Handler.VotesRemainingHandler(r.Context(), teamName)
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectLeaderboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePicPerfectTeam(w, r); !ok {
		return
	}
	resp, err := s.picPerfect.Handler.LeaderboardHandler(r.Context())
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePicPerfectTeamScore(w http.ResponseWriter, r *http.Request) {
	requestingTeam, ok := requirePicPerfectTeam(w, r)
	if !ok {
		return
	}
	resp, err := s.picPerfect.Handler.TeamScoreHandler(r.Context(), requestingTeam, r.PathValue("team_name"))
	if err != nil {
		writePicPerfectDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
