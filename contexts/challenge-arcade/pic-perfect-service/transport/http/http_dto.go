package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type StartChallengeRequest struct {
	HiddenImageURL string         `json:"hidden_image_url,omitempty"`
	HiddenPrompt   string         `json:"hidden_prompt,omitempty"`
	Config         map[string]any `json:"config,omitempty"`
}

type HiddenImageOutcomeDTO struct {
	Accepted bool   `json:"accepted"`
	Detail   string `json:"detail,omitempty"`
}

type StartChallengeResponse struct {
	ChallengeID string                `json:"challenge_id"`
	State       string                `json:"state"`
	StartTime   string                `json:"start_time"`
	HiddenImage HiddenImageOutcomeDTO `json:"hidden_image"`
}

type SubmitHiddenImageRequest struct {
	ImageURL string `json:"image_url"`
	Prompt   string `json:"prompt"`
}

type SubmitHiddenImageResponse struct {
	ChallengeID    string `json:"challenge_id"`
	HiddenImageSet bool   `json:"hidden_image_set"`
}

type TransitionStateRequest struct {
	TargetState string `json:"target_state"`
}

type TransitionStateResponse struct {
	ChallengeID   string `json:"challenge_id"`
	PreviousState string `json:"previous_state"`
	CurrentState  string `json:"current_state"`
}

type SubmissionDTO struct {
	TeamName    string `json:"team_name"`
	ImageURL    string `json:"image_url"`
	Prompt      string `json:"prompt"`
	Hidden      bool   `json:"hidden,omitempty"`
	SubmittedAt string `json:"submitted_at"`
}

type SubmitImageRequest struct {
	ImageURL string `json:"image_url"`
	Prompt   string `json:"prompt"`
}

type SubmitImageResponse struct {
	Submission SubmissionDTO `json:"submission"`
	Replayed   bool          `json:"replayed"`
}

type CastVotesRequest struct {
	Targets []string `json:"targets"`
}

type CastVotesResponse struct {
	ReceiptID       string   `json:"receipt_id"`
	AcceptedTargets []string `json:"accepted_targets"`
	VotesRemaining  int      `json:"votes_remaining"`
	Replayed        bool     `json:"replayed"`
}

type PoolEntryDTO struct {
	EntryKey string `json:"entry_key"`
	ImageURL string `json:"image_url"`
	Prompt   string `json:"prompt"`
}

type VotingPoolResponse struct {
	Items []PoolEntryDTO `json:"items"`
}

type TeamVoteProgressDTO struct {
	TeamName       string `json:"team_name"`
	VotesUsed      int    `json:"votes_used"`
	VotesRemaining int    `json:"votes_remaining"`
}

type ChallengeStatusResponse struct {
	ChallengeID            string `json:"challenge_id"`
	State                  string `json:"state"`
	StartTime              string `json:"start_time,omitempty"`
	EndTime                string `json:"end_time,omitempty"`
	HiddenImageSet         bool   `json:"hidden_image_set"`
	HiddenImageRevealed    bool   `json:"hidden_image_revealed"`
	RegisteredTeams        int    `json:"registered_teams"`
	SubmittedTeams         int    `json:"submitted_teams"`
	CanTransitionToVoting  bool   `json:"can_transition_to_voting"`
	CanTransitionToScoring bool   `json:"can_transition_to_scoring"`
}

type SubmissionStatusResponse struct {
	ChallengeID           string   `json:"challenge_id"`
	State                 string   `json:"state"`
	RegisteredTeams       int      `json:"registered_teams"`
	SubmittedTeams        []string `json:"submitted_teams"`
	PendingTeams          []string `json:"pending_teams"`
	HiddenImageSet        bool     `json:"hidden_image_set"`
	CanTransitionToVoting bool     `json:"can_transition_to_voting"`
}

type VotingStatusResponse struct {
	ChallengeID            string                `json:"challenge_id"`
	State                  string                `json:"state"`
	Progress               []TeamVoteProgressDTO `json:"progress"`
	AllVotesCast           bool                  `json:"all_votes_cast"`
	CanTransitionToScoring bool                  `json:"can_transition_to_scoring"`
}

type LeaderboardRowDTO struct {
	Rank            int    `json:"rank"`
	TeamName        string `json:"team_name"`
	ImageURL        string `json:"image_url,omitempty"`
	DeceptionPoints int    `json:"deception_points"`
	DiscoveryPoints int    `json:"discovery_points"`
	TotalPoints     int    `json:"total_points"`
	VotesReceived   int    `json:"votes_received"`
	VotedForHidden  bool   `json:"voted_for_hidden"`
}

type LeaderboardResponse struct {
	ChallengeID         string              `json:"challenge_id"`
	State               string              `json:"state"`
	HiddenImageRevealed bool                `json:"hidden_image_revealed"`
	Items               []LeaderboardRowDTO `json:"items"`
	HiddenImage         *SubmissionDTO      `json:"hidden_image,omitempty"`
}

type TeamScoreResponse struct {
	Item LeaderboardRowDTO `json:"item"`
}

type TeamStatusResponse struct {
	ChallengeID    string             `json:"challenge_id"`
	TeamName       string             `json:"team_name"`
	State          string             `json:"state"`
	HasSubmitted   bool               `json:"has_submitted"`
	Submission     *SubmissionDTO     `json:"submission,omitempty"`
	VotesGiven     []string           `json:"votes_given"`
	VotesRemaining int                `json:"votes_remaining"`
	Score          *LeaderboardRowDTO `json:"score,omitempty"`
}

type VotesRemainingResponse struct {
	TeamName       string   `json:"team_name"`
	VotesGiven     []string `json:"votes_given"`
	VotesRemaining int      `json:"votes_remaining"`
}

type CalculateScoresResponse struct {
	ChallengeID string              `json:"challenge_id"`
	Items       []LeaderboardRowDTO `json:"items"`
}

type FinalizeChallengeResponse struct {
	ChallengeID   string              `json:"challenge_id"`
	PreviousState string              `json:"previous_state"`
	CurrentState  string              `json:"current_state"`
	EndTime       string              `json:"end_time"`
	Items         []LeaderboardRowDTO `json:"items"`
	ScoringError  string              `json:"scoring_error,omitempty"`
}

type ResetChallengeResponse struct {
	ChallengeID string `json:"challenge_id"`
	Cleared     bool   `json:"cleared"`
}
