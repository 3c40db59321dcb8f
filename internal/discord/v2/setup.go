package v2

import (
	"errors"

	"go.uber.org/zap"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/routers"
	"github.com/KirkDiggler/naruto2d6-discord/internal/observe"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services"
)

// SetupConfig is everything the interaction pipeline needs
type SetupConfig struct {
	Provider *services.Provider
	Logger   *zap.Logger
	Metrics  *observe.Metrics

	// Arbiter decides who referees. Nil makes server administrators arbiters.
	Arbiter *middleware.ArbiterConfig

	// RateLimitStore counts rolls per user. Nil keeps the counters in memory.
	RateLimitStore middleware.RateLimitStore
}

// SetupPipeline builds the pipeline with its global middleware and every
// router registered.
func SetupPipeline(cfg *SetupConfig) (*core.Pipeline, error) {
	if cfg == nil || cfg.Provider == nil {
		return nil, errors.New("provider is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	pipeline := core.NewPipeline(logger.Named("pipeline"))

	// Middleware must be in place before the routers register
	pipeline.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.MetricsMiddleware(cfg.Metrics),
		middleware.ErrorMiddleware(logger),
		middleware.GuildOnlyMiddleware(),
		middleware.ArbiterMiddleware(cfg.Arbiter),
	)

	if _, err := routers.NewMoveRouter(&routers.MoveRouterConfig{
		Pipeline:       pipeline,
		Provider:       cfg.Provider,
		Logger:         logger.Named("move"),
		RateLimitStore: cfg.RateLimitStore,
	}); err != nil {
		return nil, err
	}
	if _, err := routers.NewSheetRouter(&routers.SheetRouterConfig{
		Pipeline: pipeline,
		Provider: cfg.Provider,
	}); err != nil {
		return nil, err
	}
	if _, err := routers.NewResourceRouter(&routers.ResourceRouterConfig{
		Pipeline: pipeline,
		Provider: cfg.Provider,
	}); err != nil {
		return nil, err
	}
	if _, err := routers.NewWorldRouter(&routers.WorldRouterConfig{
		Pipeline: pipeline,
		Provider: cfg.Provider,
	}); err != nil {
		return nil, err
	}

	return pipeline, nil
}
