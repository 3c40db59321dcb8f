package middleware

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/naruto2d6-discord/internal/observe"
)

// LoggingMiddleware logs every interaction with its duration at debug level
func LoggingMiddleware(logger *zap.Logger) core.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			start := time.Now()
			result, err := next.Handle(ctx)

			domain, action := ctx.Route()
			logger.Debug("interaction handled",
				zap.String("domain", domain),
				zap.String("action", action),
				zap.String("user_id", ctx.UserID),
				zap.String("guild_id", ctx.GuildID),
				zap.Bool("arbiter", ctx.IsArbiter),
				zap.Duration("duration", time.Since(start)),
				zap.Bool("failed", err != nil),
			)
			return result, err
		})
	}
}

// MetricsMiddleware records the handler duration per domain and action
func MetricsMiddleware(metrics *observe.Metrics) core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			start := time.Now()
			result, err := next.Handle(ctx)

			domain, action := ctx.Route()
			metrics.RecordInteraction(ctx.Context, domain, action, time.Since(start).Seconds())
			return result, err
		})
	}
}
