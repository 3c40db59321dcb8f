package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services/character"
	moveService "github.com/KirkDiggler/naruto2d6-discord/internal/services/move"
)

// historyLimit is the default number of rolls /move history lists
const historyLimit = 5

// MoveHandler handles move rolls, their reroll and adjust controls, and NPC
// move cards
type MoveHandler struct {
	moves           moveService.Service
	characters      character.Service
	customIDBuilder *core.CustomIDBuilder
	logger          *zap.Logger
}

// MoveHandlerConfig holds the configuration
type MoveHandlerConfig struct {
	MoveService      moveService.Service
	CharacterService character.Service
	CustomIDBuilder  *core.CustomIDBuilder
	Logger           *zap.Logger
}

// NewMoveHandler creates a new move handler
func NewMoveHandler(cfg *MoveHandlerConfig) (*MoveHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.MoveService == nil {
		return nil, fmt.Errorf("move service is required")
	}
	if cfg.CharacterService == nil {
		return nil, fmt.Errorf("character service is required")
	}

	customIDBuilder := cfg.CustomIDBuilder
	if customIDBuilder == nil {
		customIDBuilder = core.NewCustomIDBuilder("move")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &MoveHandler{
		moves:           cfg.MoveService,
		characters:      cfg.CharacterService,
		customIDBuilder: customIDBuilder,
		logger:          logger,
	}, nil
}

// Roll handles /move roll
func (h *MoveHandler) Roll(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.characters.ResolveCharacter(ctx.Context, ctx.GuildID, ctx.UserID, ctx.GetStringParam("character"))
	if err != nil {
		return nil, err
	}

	rawAttr := ctx.GetStringParam("attribute")
	attr, ok := shared.ParseAttribute(rawAttr)
	if !ok {
		attr = shared.Attribute(rawAttr)
	}

	var tier rolls.Tier
	if raw := ctx.GetStringParam("tier"); raw != "" {
		if tier, err = rolls.ParseTier(raw); err != nil {
			tier = rolls.Tier(raw)
		}
	}

	out, err := h.moves.Roll(ctx.Context, &moveService.RollInput{
		GuildID:     ctx.GuildID,
		ChannelID:   ctx.ChannelID,
		ActorID:     ctx.UserID,
		IsArbiter:   ctx.IsArbiter,
		CharacterID: char.ID,
		MoveRef:     ctx.GetStringParam("move"),
		Attribute:   attr,
		Tier:        tier,
		Modifier:    ctx.GetStringParam("modifier"),
	})
	if err != nil {
		return nil, err
	}
	if out.Notice != nil {
		return &core.HandlerResult{Response: noticeResponse(out.Notice)}, nil
	}

	recordID := out.Record.ID
	return &core.HandlerResult{
		Response: rollResponse(h.customIDBuilder, out.Record, out.Move, out.Options),
		AfterSend: func(msg *discordgo.Message) {
			if err := h.moves.AttachMessage(ctx.Context, recordID, msg.ID); err != nil {
				h.logger.Warn("failed to attach roll message",
					zap.String("record_id", recordID),
					zap.String("message_id", msg.ID),
					zap.Error(err))
			}
		},
	}, nil
}

// History handles /move history
func (h *MoveHandler) History(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.characters.ResolveCharacter(ctx.Context, ctx.GuildID, ctx.UserID, ctx.GetStringParam("character"))
	if err != nil {
		return nil, err
	}

	limit := historyLimit
	if ctx.HasParam("limit") {
		limit = ctx.GetIntParam("limit")
	}
	records, err := h.moves.ListRecords(ctx.Context, char.ID, limit)
	if err != nil {
		return nil, err
	}

	eb := builders.NewEmbed().
		Title(fmt.Sprintf("%s: recent rolls", char.Name)).
		Color(builders.ColorInfo)
	if len(records) == 0 {
		eb.Description("No rolls yet.")
	}
	for _, r := range records {
		line := fmt.Sprintf("%s (%d vs %d / %d)", r.Outcome.Result.Label(),
			r.Outcome.ActionTotal, r.Outcome.ChallengeATotal, r.Outcome.ChallengeBTotal)
		if r.Terminal() {
			line += " · rerolled"
		}
		eb.Field(title(r.MoveName), line, false)
	}

	return &core.HandlerResult{Response: core.NewEmbedResponse(eb.Build()).AsEphemeral()}, nil
}

// Reroll handles the reroll buttons under a roll. The roll message is
// rewritten in place.
func (h *MoveHandler) Reroll(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if ctx.CustomID == nil || ctx.CustomID.Target == "" {
		return nil, core.NewValidationError("This button is no longer valid.")
	}
	mode, err := rolls.ParseRerollMode(ctx.CustomID.Arg(0))
	if err != nil {
		return nil, core.NewValidationError("This button is no longer valid.")
	}

	out, err := h.moves.Reroll(ctx.Context, &moveService.RerollInput{
		RecordID:  ctx.CustomID.Target,
		Mode:      mode,
		ActorID:   ctx.UserID,
		IsArbiter: ctx.IsArbiter,
	})
	if err != nil {
		return nil, err
	}
	if !out.Applied {
		return &core.HandlerResult{Response: h.refused(out.Notice)}, nil
	}

	response := rollResponse(h.customIDBuilder, out.Record, nil, moveService.Options{})
	if out.Character != nil {
		mv, _ := out.Character.FindMove(out.Record.MoveID)
		response = rollResponse(h.customIDBuilder, out.Record, mv, moveService.OptionsFor(out.Record, out.Character))
	}
	return &core.HandlerResult{Response: response.AsUpdate()}, nil
}

// AdjustForm handles the adjust button by opening the modifier form
func (h *MoveHandler) AdjustForm(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if ctx.CustomID == nil || ctx.CustomID.Target == "" {
		return nil, core.NewValidationError("This button is no longer valid.")
	}
	record, err := h.moves.GetRecord(ctx.Context, ctx.CustomID.Target)
	if err != nil {
		return nil, err
	}
	return &core.HandlerResult{Response: AdjustModal(h.customIDBuilder, record)}, nil
}

// AdjustSubmit handles the adjust form and rewrites the roll message
func (h *MoveHandler) AdjustSubmit(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if ctx.CustomID == nil || ctx.CustomID.Target == "" {
		return nil, core.NewValidationError("This form is no longer valid.")
	}

	out, err := h.moves.Adjust(ctx.Context, &moveService.AdjustInput{
		RecordID:   ctx.CustomID.Target,
		ActorID:    ctx.UserID,
		IsArbiter:  ctx.IsArbiter,
		Action:     ctx.GetStringParam(inputAction),
		ChallengeA: ctx.GetStringParam(inputChallengeA),
		ChallengeB: ctx.GetStringParam(inputChallengeB),
	})
	if err != nil {
		return nil, err
	}
	if !out.Applied {
		return &core.HandlerResult{Response: h.refused(out.Notice)}, nil
	}

	response := rollResponse(h.customIDBuilder, out.Record, nil, moveService.Options{})
	char, err := h.characters.GetCharacter(ctx.Context, out.Record.CharacterID)
	switch {
	case err == nil:
		mv, _ := char.FindMove(out.Record.MoveID)
		response = rollResponse(h.customIDBuilder, out.Record, mv, moveService.OptionsFor(out.Record, char))
	case apperr.IsNotFound(err):
		h.logger.Info("adjusted roll of a deleted character", zap.String("record_id", out.Record.ID))
	default:
		return nil, err
	}
	return &core.HandlerResult{Response: response.AsUpdate()}, nil
}

// Send handles /move send and the send button of an NPC card
func (h *MoveHandler) Send(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.npcMove(ctx, h.moves.SendNPCMove, false)
}

// Reload handles /move reload and the reload button of an NPC card
func (h *MoveHandler) Reload(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.npcMove(ctx, h.moves.ReloadNPCMove, ctx.GetBoolParam("hard"))
}

type npcMoveFunc func(ctx context.Context, input *moveService.NPCMoveInput) (*moveService.NPCMoveOutput, error)

func (h *MoveHandler) npcMove(ctx *core.InteractionContext, fn npcMoveFunc, hard bool) (*core.HandlerResult, error) {
	var charID, moveRef string
	if ctx.IsComponent() {
		if ctx.CustomID == nil || ctx.CustomID.Target == "" || ctx.CustomID.Arg(0) == "" {
			return nil, core.NewValidationError("This button is no longer valid.")
		}
		charID, moveRef = ctx.CustomID.Target, ctx.CustomID.Arg(0)
	} else {
		char, err := h.characters.ResolveCharacter(ctx.Context, ctx.GuildID, ctx.UserID, ctx.GetStringParam("character"))
		if err != nil {
			return nil, err
		}
		charID, moveRef = char.ID, strings.TrimSpace(ctx.GetStringParam("move"))
	}

	out, err := fn(ctx.Context, &moveService.NPCMoveInput{
		CharacterID: charID,
		MoveRef:     moveRef,
		ActorID:     ctx.UserID,
		IsArbiter:   ctx.IsArbiter,
		Hard:        hard,
	})
	if err != nil {
		return nil, err
	}
	if !out.Applied {
		return &core.HandlerResult{Response: h.refused(out.Notice)}, nil
	}

	response := core.NewEmbedResponse(NPCMoveEmbed(out.Character, out.Move)).
		WithComponents(NPCMoveComponents(h.customIDBuilder, out.Character, out.Move)...)
	if ctx.IsComponent() {
		response.AsUpdate()
	}
	return &core.HandlerResult{Response: response}, nil
}

func (h *MoveHandler) refused(n *shared.Notice) *core.Response {
	if n == nil {
		n = shared.Info("nothing changed")
	}
	return noticeResponse(n)
}
