package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterTeamRequest struct {
	TeamName string   `json:"team_name"`
	Members  []string `json:"members,omitempty"`
}

type RegisterTeamResponse struct {
	Status string `json:"status"`
	Data   struct {
		TeamName     string   `json:"team_name"`
		Members      []string `json:"members"`
		CreatedAt    string   `json:"created_at"`
		LastActiveAt string   `json:"last_active_at,omitempty"`
	} `json:"data"`
}

type GetTeamResponse struct {
	Status string `json:"status"`
	Data   struct {
		TeamName     string   `json:"team_name"`
		Members      []string `json:"members"`
		CreatedAt    string   `json:"created_at"`
		LastActiveAt string   `json:"last_active_at,omitempty"`
	} `json:"data"`
}

type ListTeamsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items []struct {
			TeamName     string   `json:"team_name"`
			Members      []string `json:"members"`
			CreatedAt    string   `json:"created_at"`
			LastActiveAt string   `json:"last_active_at,omitempty"`
		} `json:"items"`
	} `json:"data"`
}

type RemoveTeamResponse struct {
	Status string `json:"status"`
	Data   struct {
		TeamName string `json:"team_name"`
		Removed  bool   `json:"removed"`
	} `json:"data"`
}
