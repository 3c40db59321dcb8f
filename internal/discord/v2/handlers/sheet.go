package handlers

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	domainCharacter "github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services/settings"
)

// SheetHandler handles the character sheet commands
type SheetHandler struct {
	characters character.Service
	settings   settings.Service
}

// SheetHandlerConfig holds the configuration
type SheetHandlerConfig struct {
	CharacterService character.Service
	SettingsService  settings.Service
}

// NewSheetHandler creates a new sheet handler
func NewSheetHandler(cfg *SheetHandlerConfig) (*SheetHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.CharacterService == nil {
		return nil, fmt.Errorf("character service is required")
	}
	if cfg.SettingsService == nil {
		return nil, fmt.Errorf("settings service is required")
	}

	return &SheetHandler{
		characters: cfg.CharacterService,
		settings:   cfg.SettingsService,
	}, nil
}

// Create handles /sheet create
func (h *SheetHandler) Create(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	kind := shared.CharacterKindPlayer
	if strings.EqualFold(ctx.GetStringParam("kind"), string(shared.CharacterKindNPC)) {
		kind = shared.CharacterKindNPC
	}

	attrs := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		attrs[attr] = ctx.GetIntParam(string(attr))
	}

	char, err := h.characters.CreateCharacter(ctx.Context, &character.CreateCharacterInput{
		OwnerID:    ctx.UserID,
		GuildID:    ctx.GuildID,
		Name:       ctx.GetStringParam("name"),
		Kind:       kind,
		Attributes: attrs,
	})
	if err != nil {
		return nil, err
	}

	return h.sheetResponse(ctx, char, fmt.Sprintf("✅ Created **%s**.", char.Name))
}

// Show handles /sheet show
func (h *SheetHandler) Show(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.characters.ResolveCharacter(ctx.Context, ctx.GuildID, ctx.UserID, ctx.GetStringParam("character"))
	if err != nil {
		return nil, err
	}
	return h.sheetResponse(ctx, char, "")
}

// List handles /sheet list
func (h *SheetHandler) List(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	chars, err := h.characters.ListCharacters(ctx.Context, ctx.GuildID, ctx.UserID)
	if err != nil {
		return nil, err
	}

	eb := builders.NewEmbed().Title("Your characters").Color(builders.ColorInfo)
	if len(chars) == 0 {
		eb.Description("You have no characters in this server yet. Use `/sheet create` to make one.")
	}
	for _, c := range chars {
		eb.Field(c.Name, fmt.Sprintf("%s · `%s`", kindLabel(c.Kind), c.ID), false)
	}
	return &core.HandlerResult{Response: core.NewEmbedResponse(eb.Build()).AsEphemeral()}, nil
}

// SetStat returns a handler for the /sheet subcommand that sets stat
func (h *SheetHandler) SetStat(stat character.Stat) core.HandlerFunc {
	return func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		char, err := h.characters.ResolveCharacter(ctx.Context, ctx.GuildID, ctx.UserID, ctx.GetStringParam("character"))
		if err != nil {
			return nil, err
		}

		out, err := h.characters.SetStat(ctx.Context, &character.SetStatInput{
			CharacterID: char.ID,
			ActorID:     ctx.UserID,
			IsArbiter:   ctx.IsArbiter,
			Stat:        stat,
			Value:       ctx.GetIntParam("value"),
		})
		if err != nil {
			return nil, err
		}
		return &core.HandlerResult{Response: core.NewResponse(out.Note)}, nil
	}
}

// Condition handles /sheet condition
func (h *SheetHandler) Condition(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.characters.ResolveCharacter(ctx.Context, ctx.GuildID, ctx.UserID, ctx.GetStringParam("character"))
	if err != nil {
		return nil, err
	}

	name := ctx.GetStringParam("name")
	active := ctx.GetBoolParam("active")
	updated, err := h.characters.ToggleCondition(ctx.Context, &character.ToggleConditionInput{
		CharacterID: char.ID,
		ActorID:     ctx.UserID,
		IsArbiter:   ctx.IsArbiter,
		Name:        name,
		Active:      active,
	})
	if err != nil {
		return nil, err
	}

	state := "off"
	if active {
		state = "on"
	}
	return &core.HandlerResult{
		Response: core.NewResponse(fmt.Sprintf("%s turned %s **%s**.", updated.Name, state, name)),
	}, nil
}

func (h *SheetHandler) sheetResponse(ctx *core.InteractionContext, char *domainCharacter.Character, content string) (*core.HandlerResult, error) {
	thresholds, err := h.settings.GetThresholds(ctx.Context, ctx.GuildID)
	if err != nil {
		return nil, err
	}

	response := core.NewResponse(content).WithEmbeds(SheetEmbed(char, thresholds))
	return &core.HandlerResult{Response: response}, nil
}
