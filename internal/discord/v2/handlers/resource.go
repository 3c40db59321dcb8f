package handlers

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/resource"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services/character"
	resourceService "github.com/KirkDiggler/naruto2d6-discord/internal/services/resource"
)

// ResourceHandler handles the /resource commands on one ability
type ResourceHandler struct {
	resources  resourceService.Service
	characters character.Service
}

// ResourceHandlerConfig holds the configuration
type ResourceHandlerConfig struct {
	ResourceService  resourceService.Service
	CharacterService character.Service
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(cfg *ResourceHandlerConfig) (*ResourceHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.ResourceService == nil {
		return nil, fmt.Errorf("resource service is required")
	}
	if cfg.CharacterService == nil {
		return nil, fmt.Errorf("character service is required")
	}

	return &ResourceHandler{
		resources:  cfg.ResourceService,
		characters: cfg.CharacterService,
	}, nil
}

// Show handles /resource show
func (h *ResourceHandler) Show(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.characters.ResolveCharacter(ctx.Context, ctx.GuildID, ctx.UserID, ctx.GetStringParam("character"))
	if err != nil {
		return nil, err
	}
	ref := ctx.GetStringParam("ability")
	ability, ok := char.FindAbility(ref)
	if !ok {
		return nil, apperr.NotFoundf("%s has no ability %q", char.Name, ref)
	}
	return &core.HandlerResult{Response: core.NewEmbedResponse(AbilityEmbed(char, ability))}, nil
}

// Add handles /resource add
func (h *ResourceHandler) Add(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.run(ctx, func(c context.Context, t resourceService.Target) (*resourceService.Result, error) {
		return h.resources.AddResource(c, &resourceService.AddResourceInput{
			Target:        t,
			Name:          ctx.GetStringParam("name"),
			ValuePerLevel: ctx.GetIntParam("per_level"),
			DefaultValue:  ctx.GetIntParam("default"),
			Show:          !ctx.HasParam("show") || ctx.GetBoolParam("show"),
		})
	})
}

// Remove handles /resource remove
func (h *ResourceHandler) Remove(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.poolOp(ctx, h.resources.RemoveResource)
}

// Max handles /resource max
func (h *ResourceHandler) Max(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.poolOp(ctx, h.resources.SetToMax)
}

// Zero handles /resource zero
func (h *ResourceHandler) Zero(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.poolOp(ctx, h.resources.SetToZero)
}

// Set handles /resource set
func (h *ResourceHandler) Set(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.run(ctx, func(c context.Context, t resourceService.Target) (*resourceService.Result, error) {
		return h.resources.UpdateField(c, &resourceService.UpdateFieldInput{
			Target: t,
			PoolID: ctx.GetStringParam("pool"),
			Field:  resource.Field(ctx.GetStringParam("field")),
			Raw:    ctx.GetStringParam("value"),
		})
	})
}

// Increase handles /resource inc
func (h *ResourceHandler) Increase(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.amountOp(ctx, h.resources.Increase)
}

// Decrease handles /resource dec
func (h *ResourceHandler) Decrease(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.amountOp(ctx, h.resources.Decrease)
}

// Chakra handles /resource chakra, a signed change to the ability's chakra
func (h *ResourceHandler) Chakra(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.amountOp(ctx, h.resources.AdjustChakra)
}

// Recalculate handles /resource recalc
func (h *ResourceHandler) Recalculate(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.run(ctx, func(c context.Context, t resourceService.Target) (*resourceService.Result, error) {
		return h.resources.RecalculateAll(c, &t)
	})
}

// Refill handles /resource refill
func (h *ResourceHandler) Refill(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.run(ctx, func(c context.Context, t resourceService.Target) (*resourceService.Result, error) {
		return h.resources.RefillChakra(c, &t)
	})
}

// Level handles /resource level
func (h *ResourceHandler) Level(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.run(ctx, func(c context.Context, t resourceService.Target) (*resourceService.Result, error) {
		return h.resources.SetAbilityLevel(c, &resourceService.LevelInput{
			Target: t,
			Level:  ctx.GetIntParam("level"),
		})
	})
}

type resourceOp func(ctx context.Context, target resourceService.Target) (*resourceService.Result, error)

func (h *ResourceHandler) poolOp(ctx *core.InteractionContext, fn func(context.Context, *resourceService.PoolInput) (*resourceService.Result, error)) (*core.HandlerResult, error) {
	return h.run(ctx, func(c context.Context, t resourceService.Target) (*resourceService.Result, error) {
		return fn(c, &resourceService.PoolInput{Target: t, PoolID: ctx.GetStringParam("pool")})
	})
}

func (h *ResourceHandler) amountOp(ctx *core.InteractionContext, fn func(context.Context, *resourceService.AmountInput) (*resourceService.Result, error)) (*core.HandlerResult, error) {
	return h.run(ctx, func(c context.Context, t resourceService.Target) (*resourceService.Result, error) {
		return fn(c, &resourceService.AmountInput{
			Target: t,
			PoolID: ctx.GetStringParam("pool"),
			Amount: ctx.GetIntParam("amount"),
		})
	})
}

// run resolves the character, calls op on the named ability and renders the
// ability. Refused operations only reach the acting player.
func (h *ResourceHandler) run(ctx *core.InteractionContext, op resourceOp) (*core.HandlerResult, error) {
	char, err := h.characters.ResolveCharacter(ctx.Context, ctx.GuildID, ctx.UserID, ctx.GetStringParam("character"))
	if err != nil {
		return nil, err
	}

	result, err := op(ctx.Context, resourceService.Target{
		CharacterID: char.ID,
		AbilityRef:  ctx.GetStringParam("ability"),
		ActorID:     ctx.UserID,
		IsArbiter:   ctx.IsArbiter,
	})
	if err != nil {
		return nil, err
	}
	if !result.Applied {
		notice := result.Notice
		if notice == nil {
			notice = shared.Info("nothing changed")
		}
		return &core.HandlerResult{Response: noticeResponse(notice)}, nil
	}

	response := core.NewEmbedResponse(AbilityEmbed(result.Character, result.Ability))
	if result.Notice != nil {
		response.Content = result.Notice.Message
	}
	return &core.HandlerResult{Response: response}, nil
}
