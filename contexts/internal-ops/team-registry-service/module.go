package teamregistryservice

import (
	"log/slog"

	httpadapter "arcade/contexts/internal-ops/team-registry-service/adapters/http"
	"arcade/contexts/internal-ops/team-registry-service/adapters/memory"
	"arcade/contexts/internal-ops/team-registry-service/application"
	"arcade/contexts/internal-ops/team-registry-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
