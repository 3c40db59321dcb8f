package routers

import (
	"errors"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/handlers"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services"
)

// ResourceRouter handles /resource commands
type ResourceRouter struct {
	router  *core.Router
	handler *handlers.ResourceHandler
}

type ResourceRouterConfig struct {
	Pipeline *core.Pipeline
	Provider *services.Provider
}

func (cfg *ResourceRouterConfig) Validate() error {
	if cfg.Pipeline == nil {
		return errors.New("pipeline is required")
	}
	if cfg.Provider == nil {
		return errors.New("provider is required")
	}
	if cfg.Provider.ResourceService == nil {
		return errors.New("provider.ResourceService is required")
	}
	if cfg.Provider.CharacterService == nil {
		return errors.New("provider.CharacterService is required")
	}
	return nil
}

// NewResourceRouter creates a router for the resource domain and registers it
func NewResourceRouter(cfg *ResourceRouterConfig) (*ResourceRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	router := core.NewRouter("resource", cfg.Pipeline)

	handler, err := handlers.NewResourceHandler(&handlers.ResourceHandlerConfig{
		ResourceService:  cfg.Provider.ResourceService,
		CharacterService: cfg.Provider.CharacterService,
	})
	if err != nil {
		return nil, err
	}

	rr := &ResourceRouter{
		router:  router,
		handler: handler,
	}
	rr.registerRoutes()
	router.Register()

	return rr, nil
}

func (r *ResourceRouter) registerRoutes() {
	r.router.SubcommandFunc("show", r.handler.Show)

	// Pools
	r.router.SubcommandFunc("add", r.handler.Add)
	r.router.SubcommandFunc("remove", r.handler.Remove)
	r.router.SubcommandFunc("set", r.handler.Set)
	r.router.SubcommandFunc("inc", r.handler.Increase)
	r.router.SubcommandFunc("dec", r.handler.Decrease)
	r.router.SubcommandFunc("max", r.handler.Max)
	r.router.SubcommandFunc("zero", r.handler.Zero)
	r.router.SubcommandFunc("recalc", r.handler.Recalculate)

	// Ability level and chakra
	r.router.SubcommandFunc("level", r.handler.Level)
	r.router.SubcommandFunc("chakra", r.handler.Chakra)
	r.router.SubcommandFunc("refill", r.handler.Refill)
}
