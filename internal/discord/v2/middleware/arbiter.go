package middleware

import (
	"slices"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
)

// ArbiterConfig decides who referees the game. Arbiters may force free
// rerolls, adjust results and edit any sheet.
type ArbiterConfig struct {
	// RoleIDs grant arbiter rights to members holding any of them
	RoleIDs []string

	// AdministratorsAreArbiters grants arbiter rights to server administrators
	AdministratorsAreArbiters bool
}

// ArbiterMiddleware sets InteractionContext.IsArbiter
func ArbiterMiddleware(config *ArbiterConfig) core.Middleware {
	if config == nil {
		config = &ArbiterConfig{AdministratorsAreArbiters: true}
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			ctx.IsArbiter = ctx.IsArbiter || isArbiter(ctx.Member, config)
			return next.Handle(ctx)
		})
	}
}

// GuildOnlyMiddleware refuses interactions outside a server; sheets are
// scoped per guild.
func GuildOnlyMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if ctx.GuildID == "" {
				return &core.HandlerResult{
					Response: core.NewEphemeralResponse("❌ This command can only be used in a server."),
				}, nil
			}
			return next.Handle(ctx)
		})
	}
}

// RequireArbiter rejects non-arbiters before the handler runs
func RequireArbiter(next core.HandlerFunc) core.HandlerFunc {
	return func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		if !ctx.IsArbiter {
			return nil, core.NewForbiddenError("Only an arbiter can do that.")
		}
		return next(ctx)
	}
}

func isArbiter(member *discordgo.Member, config *ArbiterConfig) bool {
	if member == nil {
		return false
	}
	if config.AdministratorsAreArbiters && member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	for _, role := range member.Roles {
		if slices.Contains(config.RoleIDs, role) {
			return true
		}
	}
	return false
}
