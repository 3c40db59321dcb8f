package routers

import (
	"errors"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/handlers"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services"
)

// WorldRouter handles /world commands
type WorldRouter struct {
	router  *core.Router
	handler *handlers.WorldHandler
}

type WorldRouterConfig struct {
	Pipeline *core.Pipeline
	Provider *services.Provider
}

func (cfg *WorldRouterConfig) Validate() error {
	if cfg.Pipeline == nil {
		return errors.New("pipeline is required")
	}
	if cfg.Provider == nil || cfg.Provider.SettingsService == nil {
		return errors.New("provider.SettingsService is required")
	}
	return nil
}

// NewWorldRouter creates a router for the world domain and registers it
func NewWorldRouter(cfg *WorldRouterConfig) (*WorldRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	router := core.NewRouter("world", cfg.Pipeline)

	handler, err := handlers.NewWorldHandler(&handlers.WorldHandlerConfig{
		SettingsService: cfg.Provider.SettingsService,
	})
	if err != nil {
		return nil, err
	}

	wr := &WorldRouter{
		router:  router,
		handler: handler,
	}
	wr.router.SubcommandFunc("show", handler.Show)
	wr.router.SubcommandFunc("thresholds", middleware.RequireArbiter(handler.Thresholds))
	router.Register()

	return wr, nil
}
