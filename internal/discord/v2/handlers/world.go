package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services/settings"
)

// WorldHandler handles the guild-wide /world settings
type WorldHandler struct {
	settings settings.Service
}

// WorldHandlerConfig holds the configuration
type WorldHandlerConfig struct {
	SettingsService settings.Service
}

// NewWorldHandler creates a new world handler
func NewWorldHandler(cfg *WorldHandlerConfig) (*WorldHandler, error) {
	if cfg == nil || cfg.SettingsService == nil {
		return nil, fmt.Errorf("settings service is required")
	}
	return &WorldHandler{settings: cfg.SettingsService}, nil
}

// Show handles /world show
func (h *WorldHandler) Show(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	t, err := h.settings.GetThresholds(ctx.Context, ctx.GuildID)
	if err != nil {
		return nil, err
	}
	return &core.HandlerResult{Response: core.NewEmbedResponse(ThresholdsEmbed(t))}, nil
}

// Thresholds handles /world thresholds. Options left out keep their
// current value.
func (h *WorldHandler) Thresholds(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	t, err := h.settings.GetThresholds(ctx.Context, ctx.GuildID)
	if err != nil {
		return nil, err
	}

	for name, field := range map[string]*int{
		"great_disadvantage": &t.GreatDisadvantage,
		"disadvantage":       &t.Disadvantage,
		"advantage":          &t.Advantage,
		"great_advantage":    &t.GreatAdvantage,
	} {
		if ctx.HasParam(name) {
			*field = ctx.GetIntParam(name)
		}
	}

	saved, err := h.settings.SetThresholds(ctx.Context, &settings.SetThresholdsInput{
		GuildID:    ctx.GuildID,
		ActorID:    ctx.UserID,
		IsArbiter:  ctx.IsArbiter,
		Thresholds: t,
	})
	if err != nil {
		return nil, err
	}

	response := core.NewResponse("✅ Thresholds updated.").WithEmbeds(ThresholdsEmbed(saved))
	return &core.HandlerResult{Response: response}, nil
}

// ThresholdsEmbed shows which NV gives which tier
func ThresholdsEmbed(t rolls.Thresholds) *discordgo.MessageEmbed {
	return builders.NewEmbed().
		Title("Advantage thresholds").
		Description("The NV of a character picks the challenge dice of its rolls.").
		Color(builders.ColorInfo).
		Field(rolls.TierGreatDisadvantage.Label(), fmt.Sprintf("NV ≤ %d", t.GreatDisadvantage), true).
		Field(rolls.TierDisadvantage.Label(), fmt.Sprintf("NV ≤ %d", t.Disadvantage), true).
		Field(rolls.TierNormal.Label(), fmt.Sprintf("%d < NV < %d", t.Disadvantage, t.Advantage), true).
		Field(rolls.TierAdvantage.Label(), fmt.Sprintf("NV ≥ %d", t.Advantage), true).
		Field(rolls.TierGreatAdvantage.Label(), fmt.Sprintf("NV ≥ %d", t.GreatAdvantage), true).
		Build()
}
