package picperfectservice

import (
	"log/slog"
	"time"

	httpadapter "arcade/contexts/challenge-arcade/pic-perfect-service/adapters/http"
	"arcade/contexts/challenge-arcade/pic-perfect-service/adapters/memory"
	"arcade/contexts/challenge-arcade/pic-perfect-service/application/commands"
	"arcade/contexts/challenge-arcade/pic-perfect-service/application/queries"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Challenges     ports.ChallengeRepository
	Submissions    ports.SubmissionRepository
	Votes          ports.VoteLedger
	Leaderboard    ports.LeaderboardRepository
	Teams          ports.TeamDirectory
	Idempotency    ports.IdempotencyStore
	Outbox         ports.OutboxWriter
	Clock          ports.Clock
	IDGen          ports.IDGenerator
	ChallengeID    string
	VoteCap        int
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	hiddenIntake := commands.SubmitHiddenImageUseCase{
		Challenges:  deps.Challenges,
		Submissions: deps.Submissions,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		IDGen:       deps.IDGen,
		ChallengeID: deps.ChallengeID,
		Logger:      deps.Logger,
	}
	scoring := commands.CalculateScoresUseCase{
		Challenges:  deps.Challenges,
		Submissions: deps.Submissions,
		Leaderboard: deps.Leaderboard,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		IDGen:       deps.IDGen,
		ChallengeID: deps.ChallengeID,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			StartChallenge: commands.StartChallengeUseCase{
				Challenges:   deps.Challenges,
				Leaderboard:  deps.Leaderboard,
				HiddenIntake: hiddenIntake,
				Outbox:       deps.Outbox,
				Clock:        deps.Clock,
				IDGen:        deps.IDGen,
				ChallengeID:  deps.ChallengeID,
				Logger:       deps.Logger,
			},
			SubmitHiddenImage: hiddenIntake,
			SubmitImage: commands.SubmitImageUseCase{
				Challenges:     deps.Challenges,
				Submissions:    deps.Submissions,
				Leaderboard:    deps.Leaderboard,
				Teams:          deps.Teams,
				Idempotency:    deps.Idempotency,
				Outbox:         deps.Outbox,
				Clock:          deps.Clock,
				IDGen:          deps.IDGen,
				ChallengeID:    deps.ChallengeID,
				IdempotencyTTL: deps.IdempotencyTTL,
				Logger:         deps.Logger,
			},
			CastVotes: commands.CastVotesUseCase{
				Challenges:     deps.Challenges,
				Submissions:    deps.Submissions,
				Votes:          deps.Votes,
				Idempotency:    deps.Idempotency,
				Outbox:         deps.Outbox,
				Clock:          deps.Clock,
				IDGen:          deps.IDGen,
				ChallengeID:    deps.ChallengeID,
				VoteCap:        deps.VoteCap,
				IdempotencyTTL: deps.IdempotencyTTL,
				Logger:         deps.Logger,
			},
			TransitionState: commands.TransitionStateUseCase{
				Challenges:  deps.Challenges,
				Submissions: deps.Submissions,
				Teams:       deps.Teams,
				Outbox:      deps.Outbox,
				Clock:       deps.Clock,
				IDGen:       deps.IDGen,
				ChallengeID: deps.ChallengeID,
				VoteCap:     deps.VoteCap,
				Logger:      deps.Logger,
			},
			CalculateScores: scoring,
			FinalizeChallenge: commands.FinalizeChallengeUseCase{
				Challenges:  deps.Challenges,
				Scoring:     scoring,
				Outbox:      deps.Outbox,
				Clock:       deps.Clock,
				IDGen:       deps.IDGen,
				ChallengeID: deps.ChallengeID,
				Logger:      deps.Logger,
			},
			ResetChallenge: commands.ResetChallengeUseCase{
				Challenges:  deps.Challenges,
				Submissions: deps.Submissions,
				Votes:       deps.Votes,
				Leaderboard: deps.Leaderboard,
				Outbox:      deps.Outbox,
				Clock:       deps.Clock,
				IDGen:       deps.IDGen,
				ChallengeID: deps.ChallengeID,
				Logger:      deps.Logger,
			},
			ChallengeStatus: queries.ChallengeStatusUseCase{
				Challenges:  deps.Challenges,
				Submissions: deps.Submissions,
				Teams:       deps.Teams,
				ChallengeID: deps.ChallengeID,
				VoteCap:     deps.VoteCap,
			},
			SubmissionStatus: queries.SubmissionStatusUseCase{
				Challenges:  deps.Challenges,
				Submissions: deps.Submissions,
				Teams:       deps.Teams,
				ChallengeID: deps.ChallengeID,
				VoteCap:     deps.VoteCap,
			},
			VotingStatus: queries.VotingStatusUseCase{
				Challenges:  deps.Challenges,
				Submissions: deps.Submissions,
				Teams:       deps.Teams,
				ChallengeID: deps.ChallengeID,
				VoteCap:     deps.VoteCap,
			},
			TeamStatus: queries.TeamStatusUseCase{
				Challenges:  deps.Challenges,
				Submissions: deps.Submissions,
				Leaderboard: deps.Leaderboard,
				ChallengeID: deps.ChallengeID,
				VoteCap:     deps.VoteCap,
			},
			LedgerReads: queries.LedgerReadsUseCase{
				Submissions: deps.Submissions,
				ChallengeID: deps.ChallengeID,
				VoteCap:     deps.VoteCap,
			},
			VotingPool: queries.VotingPoolUseCase{
				Challenges:  deps.Challenges,
				Submissions: deps.Submissions,
				ChallengeID: deps.ChallengeID,
			},
			Leaderboard: queries.LeaderboardUseCase{
				Challenges:   deps.Challenges,
				Submissions:  deps.Submissions,
				Leaderboards: deps.Leaderboard,
				ChallengeID:  deps.ChallengeID,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(seedTeams []string, logger *slog.Logger) Module {
	store := memory.NewStore(seedTeams)
	module := NewModule(Dependencies{
		Challenges:     store,
		Submissions:    store,
		Votes:          store,
		Leaderboard:    store,
		Teams:          store,
		Idempotency:    store,
		Outbox:         store,
		Clock:          store,
		IDGen:          store,
		IdempotencyTTL: 24 * time.Hour,
		Logger:         logger,
	})
	module.Store = store
	return module
}
