package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"arcade/contexts/internal-ops/team-registry-service/application"
	httptransport "arcade/contexts/internal-ops/team-registry-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterTeamHandler(
	ctx context.Context,
	req httptransport.RegisterTeamRequest,
) (httptransport.RegisterTeamResponse, error) {
	item, err := h.Service.RegisterTeam(ctx, application.RegisterTeamInput{
		TeamName: strings.TrimSpace(req.TeamName),
		Members:  req.Members,
	})
	if err != nil {
		return httptransport.RegisterTeamResponse{}, err
	}

	resp := httptransport.RegisterTeamResponse{Status: "success"}
	resp.Data.TeamName = item.TeamName
	resp.Data.Members = append([]string(nil), item.Members...)
	resp.Data.CreatedAt = item.CreatedAt.UTC().Format(time.RFC3339)
	if item.LastActiveAt != nil {
		resp.Data.LastActiveAt = item.LastActiveAt.UTC().Format(time.RFC3339)
	}
	return resp, nil
}

func (h Handler) GetTeamHandler(ctx context.Context, teamName string) (httptransport.GetTeamResponse, error) {
	item, err := h.Service.GetTeam(ctx, strings.TrimSpace(teamName))
	if err != nil {
		return httptransport.GetTeamResponse{}, err
	}

	resp := httptransport.GetTeamResponse{Status: "success"}
	resp.Data.TeamName = item.TeamName
	resp.Data.Members = append([]string(nil), item.Members...)
	resp.Data.CreatedAt = item.CreatedAt.UTC().Format(time.RFC3339)
	if item.LastActiveAt != nil {
		resp.Data.LastActiveAt = item.LastActiveAt.UTC().Format(time.RFC3339)
	}
	return resp, nil
}

func (h Handler) ListTeamsHandler(ctx context.Context) (httptransport.ListTeamsResponse, error) {
	items, err := h.Service.ListTeams(ctx)
	if err != nil {
		return httptransport.ListTeamsResponse{}, err
	}

	resp := httptransport.ListTeamsResponse{Status: "success"}
	for _, item := range items {
		row := struct {
			TeamName     string   `json:"team_name"`
			Members      []string `json:"members"`
			CreatedAt    string   `json:"created_at"`
			LastActiveAt string   `json:"last_active_at,omitempty"`
		}{
			TeamName:  item.TeamName,
			Members:   append([]string(nil), item.Members...),
			CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
		}
		if item.LastActiveAt != nil {
			row.LastActiveAt = item.LastActiveAt.UTC().Format(time.RFC3339)
		}
		resp.Data.Items = append(resp.Data.Items, row)
	}
	return resp, nil
}

func (h Handler) RemoveTeamHandler(ctx context.Context, teamName string) (httptransport.RemoveTeamResponse, error) {
	item, err := h.Service.RemoveTeam(ctx, strings.TrimSpace(teamName))
	if err != nil {
		return httptransport.RemoveTeamResponse{}, err
	}

	resp := httptransport.RemoveTeamResponse{Status: "success"}
	resp.Data.TeamName = item.TeamName
	resp.Data.Removed = true
	return resp, nil
}
