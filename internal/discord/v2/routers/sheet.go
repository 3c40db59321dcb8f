package routers

import (
	"errors"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/handlers"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services/character"
)

// SheetRouter handles /sheet commands
type SheetRouter struct {
	router  *core.Router
	handler *handlers.SheetHandler
}

type SheetRouterConfig struct {
	Pipeline *core.Pipeline
	Provider *services.Provider
}

func (cfg *SheetRouterConfig) Validate() error {
	if cfg.Pipeline == nil {
		return errors.New("pipeline is required")
	}
	if cfg.Provider == nil {
		return errors.New("provider is required")
	}
	if cfg.Provider.CharacterService == nil {
		return errors.New("provider.CharacterService is required")
	}
	if cfg.Provider.SettingsService == nil {
		return errors.New("provider.SettingsService is required")
	}
	return nil
}

// NewSheetRouter creates a router for the sheet domain and registers it
func NewSheetRouter(cfg *SheetRouterConfig) (*SheetRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	router := core.NewRouter("sheet", cfg.Pipeline)

	handler, err := handlers.NewSheetHandler(&handlers.SheetHandlerConfig{
		CharacterService: cfg.Provider.CharacterService,
		SettingsService:  cfg.Provider.SettingsService,
	})
	if err != nil {
		return nil, err
	}

	sr := &SheetRouter{
		router:  router,
		handler: handler,
	}
	sr.registerRoutes()
	router.Register()

	return sr, nil
}

func (r *SheetRouter) registerRoutes() {
	r.router.SubcommandFunc("create", r.handler.Create)
	r.router.SubcommandFunc("show", r.handler.Show)
	r.router.SubcommandFunc("list", r.handler.List)
	r.router.SubcommandFunc("condition", r.handler.Condition)

	for _, stat := range []character.Stat{
		character.StatMomentum,
		character.StatFireWill,
		character.StatChakra,
		character.StatAdvantageLevel,
	} {
		r.router.SubcommandFunc(string(stat), r.handler.SetStat(stat))
	}
}
