package middleware

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
)

// ErrorMiddleware converts handler errors into ephemeral replies so nothing
// escapes the pipeline. Expected errors (not found, permission, ...) are
// logged at info; everything else at error.
func ErrorMiddleware(logger *zap.Logger) core.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			handlerErr := core.FromError(err)
			domain, action := ctx.Route()
			fields := []zap.Field{
				zap.String("domain", domain),
				zap.String("action", action),
				zap.String("user_id", ctx.UserID),
				zap.String("guild_id", ctx.GuildID),
				zap.Int("code", handlerErr.Code),
				zap.Error(err),
			}
			if handlerErr.Code >= core.ErrorCodeInternal {
				logger.Error("handler failed", fields...)
			} else {
				logger.Info("handler refused interaction", fields...)
			}

			message := handlerErr.UserMessage
			if !handlerErr.ShowToUser {
				message = "An error occurred while processing your request."
			}
			return &core.HandlerResult{
				Response: core.NewEphemeralResponse(message),
			}, nil
		})
	}
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware(logger *zap.Logger) core.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					domain, action := ctx.Route()
					logger.Error("panic recovered in handler",
						zap.String("domain", domain),
						zap.String("action", action),
						zap.String("panic", fmt.Sprint(r)),
						zap.ByteString("stack", debug.Stack()),
					)
					result = &core.HandlerResult{
						Response: core.NewEphemeralResponse("An unexpected error occurred. Please try again later."),
					}
					err = nil
				}
			}()

			return next.Handle(ctx)
		})
	}
}
