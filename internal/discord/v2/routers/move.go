package routers

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/handlers"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services"
)

const (
	rollLimit       = 10
	rollLimitWindow = time.Minute
)

// MoveRouter handles /move commands and the buttons on roll messages
type MoveRouter struct {
	router  *core.Router
	handler *handlers.MoveHandler
}

type MoveRouterConfig struct {
	Pipeline *core.Pipeline
	Provider *services.Provider
	Logger   *zap.Logger

	// RateLimitStore counts rolls per user. Defaults to an in-memory store.
	RateLimitStore middleware.RateLimitStore
}

func (cfg *MoveRouterConfig) Validate() error {
	if cfg.Pipeline == nil {
		return errors.New("pipeline is required")
	}
	if cfg.Provider == nil {
		return errors.New("provider is required")
	}
	if cfg.Provider.MoveService == nil {
		return errors.New("provider.MoveService is required")
	}
	if cfg.Provider.CharacterService == nil {
		return errors.New("provider.CharacterService is required")
	}
	return nil
}

// NewMoveRouter creates a router for the move domain and registers it
func NewMoveRouter(cfg *MoveRouterConfig) (*MoveRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := cfg.RateLimitStore
	if store == nil {
		store = middleware.NewMemoryRateLimitStore()
	}

	router := core.NewRouter("move", cfg.Pipeline)
	router.Use(middleware.UserRateLimitMiddleware(rollLimit, rollLimitWindow, store))

	handler, err := handlers.NewMoveHandler(&handlers.MoveHandlerConfig{
		MoveService:      cfg.Provider.MoveService,
		CharacterService: cfg.Provider.CharacterService,
		CustomIDBuilder:  router.GetCustomIDBuilder(),
		Logger:           cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	mr := &MoveRouter{
		router:  router,
		handler: handler,
	}
	mr.registerRoutes()
	router.Register()

	return mr, nil
}

func (r *MoveRouter) registerRoutes() {
	r.router.SubcommandFunc("roll", r.handler.Roll)
	r.router.SubcommandFunc("history", r.handler.History)
	r.router.SubcommandFunc("send", r.handler.Send)
	r.router.SubcommandFunc("reload", r.handler.Reload)

	// Buttons on roll messages
	r.router.ComponentFunc("reroll", r.handler.Reroll)
	r.router.ComponentFunc("adjust", middleware.RequireArbiter(r.handler.AdjustForm))
	r.router.ModalFunc("adjust", middleware.RequireArbiter(r.handler.AdjustSubmit))

	// Buttons on NPC move cards
	r.router.ComponentFunc("send", r.handler.Send)
	r.router.ComponentFunc("reload", r.handler.Reload)
}
