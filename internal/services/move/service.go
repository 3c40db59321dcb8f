// Package move resolves character moves: the roll itself, the three reroll
// mechanisms, arbiter adjustments and NPC move charges.
package move

//go:generate mockgen -destination=mock/mock.go -package=mockmoveservice -source=service.go

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/naruto2d6-discord/internal/dice"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
	"github.com/KirkDiggler/naruto2d6-discord/internal/observe"
	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/characters"
	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/moverolls"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services/keylock"
	settingsService "github.com/KirkDiggler/naruto2d6-discord/internal/services/settings"
	"github.com/KirkDiggler/naruto2d6-discord/internal/uuid"
)

// Service resolves moves
type Service interface {
	// Roll draws a new move and stores its record
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// AttachMessage remembers the chat message that shows a record
	AttachMessage(ctx context.Context, recordID, messageID string) error

	// GetRecord loads a record with the character it belongs to
	GetRecord(ctx context.Context, recordID string) (*rolls.Record, error)

	// ListRecords returns a character's most recent records
	ListRecords(ctx context.Context, characterID string, limit int) ([]*rolls.Record, error)

	// Options reports which reroll controls a record should offer
	Options(ctx context.Context, record *rolls.Record) (Options, error)

	// Reroll applies one reroll mechanism to an open record
	Reroll(ctx context.Context, input *RerollInput) (*RerollOutput, error)

	// Adjust applies arbiter modifiers to a record's totals
	Adjust(ctx context.Context, input *AdjustInput) (*AdjustOutput, error)

	// SendNPCMove spends an NPC move's chakra and charges
	SendNPCMove(ctx context.Context, input *NPCMoveInput) (*NPCMoveOutput, error)

	// ReloadNPCMove refills an NPC move's charges
	ReloadNPCMove(ctx context.Context, input *NPCMoveInput) (*NPCMoveOutput, error)
}

// RollInput requests a move roll
type RollInput struct {
	GuildID     string
	ChannelID   string
	ActorID     string
	IsArbiter   bool
	CharacterID string
	// MoveRef is a move id or name on the character
	MoveRef   string
	Attribute shared.Attribute
	// Tier overrides the tier derived from the character's NV
	Tier rolls.Tier
	// Modifier is free text such as "+2" or "-1"
	Modifier string
}

// RollOutput is a stored roll, or a notice when the input was refused
type RollOutput struct {
	Record    *rolls.Record
	Character *character.Character
	Move      *character.Move
	Options   Options
	Notice    *shared.Notice
}

// RerollInput requests one reroll
type RerollInput struct {
	RecordID  string
	Mode      rolls.RerollMode
	ActorID   string
	IsArbiter bool
}

// RerollOutput is the rewritten record. Applied is false when the reroll
// was refused with a notice.
type RerollOutput struct {
	Record    *rolls.Record
	Character *character.Character
	Notice    *shared.Notice
	Applied   bool
}

// AdjustInput carries arbiter modifiers as typed in the adjust form
type AdjustInput struct {
	RecordID   string
	ActorID    string
	IsArbiter  bool
	Action     string
	ChallengeA string
	ChallengeB string
}

// AdjustOutput is the adjusted record, or a notice for unparsable input
type AdjustOutput struct {
	Record  *rolls.Record
	Notice  *shared.Notice
	Applied bool
}

// NPCMoveInput addresses one NPC move
type NPCMoveInput struct {
	CharacterID string
	MoveRef     string
	ActorID     string
	IsArbiter   bool
	// Hard reloads skip the chakra cost
	Hard bool
}

// NPCMoveOutput is the NPC after the move was sent or reloaded
type NPCMoveOutput struct {
	Character *character.Character
	Move      *character.Move
	Notice    *shared.Notice
	Applied   bool
}

type service struct {
	characters    characters.Repository
	records       moverolls.Repository
	settings      settingsService.Service
	roller        dice.Roller
	uuidGenerator uuid.Generator
	locker        *keylock.Locker
	logger        *zap.Logger
	metrics       *observe.Metrics
	now           func() time.Time
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	CharacterRepository characters.Repository   // Required
	RecordRepository    moverolls.Repository    // Required
	SettingsService     settingsService.Service // Required
	Roller              dice.Roller             // Optional, defaults to crypto random
	UUIDGenerator       uuid.Generator
	Locker              *keylock.Locker
	Logger              *zap.Logger
	Metrics             *observe.Metrics
	Now                 func() time.Time
}

// NewService creates a new move service
func NewService(cfg *ServiceConfig) Service {
	if cfg.CharacterRepository == nil {
		panic("character repository is required")
	}
	if cfg.RecordRepository == nil {
		panic("record repository is required")
	}
	if cfg.SettingsService == nil {
		panic("settings service is required")
	}

	svc := &service{
		characters:    cfg.CharacterRepository,
		records:       cfg.RecordRepository,
		settings:      cfg.SettingsService,
		roller:        cfg.Roller,
		uuidGenerator: cfg.UUIDGenerator,
		locker:        cfg.Locker,
		logger:        cfg.Logger,
		metrics:       cfg.Metrics,
		now:           cfg.Now,
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.roller == nil {
		svc.roller = dice.NewLoggedRoller(dice.NewCryptoSource(), svc.logger)
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.locker == nil {
		svc.locker = keylock.New()
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc
}

func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil || strings.TrimSpace(input.CharacterID) == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}
	if !input.Attribute.IsValid() {
		return &RollOutput{Notice: shared.Warn("unknown attribute %q", string(input.Attribute))}, nil
	}
	if input.Tier != "" && !input.Tier.IsValid() {
		return &RollOutput{Notice: shared.Warn("unknown advantage tier %q", string(input.Tier))}, nil
	}
	modifier, err := rolls.ParseModifier(input.Modifier)
	if err != nil {
		return &RollOutput{Notice: shared.Warn("modifier %s", err.Error())}, nil
	}

	char, err := s.characters.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get character '%s'", input.CharacterID).
			WithMeta("character_id", input.CharacterID)
	}
	if char.OwnerID != input.ActorID && !input.IsArbiter {
		return nil, apperr.PermissionDenied("only the character's owner or an arbiter can roll for it").
			WithMeta("character_id", char.ID)
	}
	mv, ok := char.FindMove(input.MoveRef)
	if !ok {
		return nil, apperr.NotFoundf("%s has no move %q", char.Name, input.MoveRef).
			WithMeta("character_id", char.ID)
	}

	tier := input.Tier
	var level *int
	if tier == "" {
		thresholds, err := s.settings.GetThresholds(ctx, input.GuildID)
		if err != nil {
			return nil, err
		}
		nv := char.AdvantageLevel.Value
		level = &nv
		tier = thresholds.TierFor(nv)
	}

	now := s.now()
	record := &rolls.Record{
		ID:             s.uuidGenerator.New(),
		GuildID:        input.GuildID,
		ChannelID:      input.ChannelID,
		CharacterID:    char.ID,
		CharacterName:  char.Name,
		OwnerID:        char.OwnerID,
		MoveID:         mv.ID,
		MoveName:       mv.Name,
		Attribute:      input.Attribute,
		AttributeValue: char.AttributeValue(input.Attribute),
		Tier:           tier,
		AdvantageLevel: level,
		FlatModifier:   modifier,
		ConditionBonus: char.ConditionBonus(mv.Name, input.Attribute),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	draw, err := rolls.RollMove(s.roller, tier, record.ActionBonus())
	if err != nil {
		return nil, apperr.Wrap(err, "failed to roll move").WithMeta("character_id", char.ID)
	}
	record.ActionDice = draw.Action.Rolls
	record.ChallengeADice = draw.ChallengeA.Rolls
	record.ChallengeBDice = draw.ChallengeB.Rolls
	record.Outcome = draw.Outcome()

	if err := s.records.Create(ctx, record); err != nil {
		return nil, apperr.Wrap(err, "failed to save roll").WithMeta("record_id", record.ID)
	}

	s.metrics.RecordRoll(ctx, string(tier), string(record.Outcome.Result))
	s.logger.Debug("move rolled",
		zap.String("record_id", record.ID),
		zap.String("character_id", char.ID),
		zap.String("move", mv.Name),
		zap.String("tier", string(tier)),
		zap.Int("action", record.Outcome.ActionTotal),
		zap.Int("challenge_a", record.Outcome.ChallengeATotal),
		zap.Int("challenge_b", record.Outcome.ChallengeBTotal),
		zap.String("result", string(record.Outcome.Result)),
	)

	return &RollOutput{
		Record:    record,
		Character: char,
		Move:      mv,
		Options:   OptionsFor(record, char),
	}, nil
}

func (s *service) AttachMessage(ctx context.Context, recordID, messageID string) error {
	unlock := s.locker.Lock(keylock.RecordKey(recordID))
	defer unlock()

	record, err := s.records.Get(ctx, recordID)
	if err != nil {
		return apperr.Wrap(err, "failed to load roll").WithMeta("record_id", recordID)
	}
	record.MessageID = messageID
	if err := s.records.Update(ctx, record); err != nil {
		return apperr.Wrap(err, "failed to save roll").WithMeta("record_id", recordID)
	}
	return nil
}

func (s *service) GetRecord(ctx context.Context, recordID string) (*rolls.Record, error) {
	record, err := s.records.Get(ctx, recordID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load roll").WithMeta("record_id", recordID)
	}
	return record, nil
}

func (s *service) ListRecords(ctx context.Context, characterID string, limit int) ([]*rolls.Record, error) {
	records, err := s.records.ListByCharacter(ctx, characterID, limit)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list rolls").WithMeta("character_id", characterID)
	}
	return records, nil
}

func (s *service) Options(ctx context.Context, record *rolls.Record) (Options, error) {
	if record.Terminal() {
		return Options{}, nil
	}
	char, err := s.characters.Get(ctx, record.CharacterID)
	if err != nil {
		return Options{}, apperr.Wrap(err, "failed to get character").
			WithMeta("character_id", record.CharacterID)
	}
	return OptionsFor(record, char), nil
}

func (s *service) Reroll(ctx context.Context, input *RerollInput) (*RerollOutput, error) {
	if input == nil || input.RecordID == "" {
		return nil, apperr.InvalidArgument("record ID is required")
	}
	if !input.Mode.IsValid() {
		return nil, apperr.InvalidArgumentf("unknown reroll mode %q", string(input.Mode))
	}

	unlock := s.locker.Lock(keylock.RecordKey(input.RecordID))
	defer unlock()

	record, err := s.records.Get(ctx, input.RecordID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load roll").WithMeta("record_id", input.RecordID)
	}

	if record.Terminal() {
		s.metrics.RecordReroll(ctx, string(input.Mode), "refused")
		return nil, apperr.FailedPrecondition("this roll was already rerolled").
			WithMeta("record_id", record.ID)
	}

	var out *RerollOutput
	switch input.Mode {
	case rolls.RerollFree:
		out, err = s.rerollFree(ctx, record, input)
	default:
		if record.OwnerID != input.ActorID && !input.IsArbiter {
			s.metrics.RecordReroll(ctx, string(input.Mode), "refused")
			return nil, apperr.PermissionDenied("only the character's owner or an arbiter can spend their resources").
				WithMeta("record_id", record.ID)
		}
		out, err = s.rerollWithCost(ctx, record, input)
	}
	if err != nil {
		return nil, err
	}

	status := "applied"
	if !out.Applied {
		status = "refused"
	}
	if out.Notice != nil {
		s.metrics.RecordNotice(ctx, string(out.Notice.Level))
	}
	s.metrics.RecordReroll(ctx, string(input.Mode), status)
	return out, nil
}

func (s *service) rerollFree(ctx context.Context, record *rolls.Record, input *RerollInput) (*RerollOutput, error) {
	if !input.IsArbiter {
		s.metrics.RecordReroll(ctx, string(input.Mode), "refused")
		return nil, apperr.PermissionDenied("only an arbiter may reroll freely").
			WithMeta("record_id", record.ID)
	}

	if err := s.redraw(record, input); err != nil {
		return nil, err
	}
	record.AddNote("%s rerolled freely", record.CharacterName)

	if err := s.records.Update(ctx, record); err != nil {
		return nil, apperr.Wrap(err, "failed to save roll").WithMeta("record_id", record.ID)
	}
	return &RerollOutput{Record: record, Applied: true}, nil
}

// rerollWithCost applies a momentum or fire-will reroll. The record and the
// character are changed in memory and then saved together.
func (s *service) rerollWithCost(ctx context.Context, record *rolls.Record, input *RerollInput) (*RerollOutput, error) {
	unlock := s.locker.Lock(keylock.CharacterKey(record.CharacterID))
	defer unlock()

	char, err := s.characters.Get(ctx, record.CharacterID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get character '%s'", record.CharacterID).
			WithMeta("character_id", record.CharacterID)
	}

	switch input.Mode {
	case rolls.RerollMomentum:
		if !rolls.MomentumEligible(char.Momentum.Value, record.Outcome) {
			return &RerollOutput{
				Record:    record,
				Character: char,
				Notice:    shared.Info("burning momentum cannot improve this roll"),
			}, nil
		}
		burn := rolls.ApplyMomentum(char.Momentum.Value, record.Outcome)
		record.ApplyReroll(rolls.RerollState{
			Mode:     input.Mode,
			ActorID:  input.ActorID,
			At:       s.now(),
			ClearedA: burn.ClearedA,
			ClearedB: burn.ClearedB,
		}, burn.Outcome, nil, nil, nil)
		char.Momentum.Reset()
		record.AddNote("%s burned momentum!", char.Name)

	case rolls.RerollFireWill:
		if !char.FireWill.Spend(1) {
			return &RerollOutput{
				Record:    record,
				Character: char,
				Notice:    shared.Info("no Will of Fire points available"),
			}, nil
		}
		if err := s.redraw(record, input); err != nil {
			return nil, err
		}
		record.AddNote("%s rerolled with the Will of Fire!", char.Name)
	}

	char.UpdatedAt = s.now()
	if err := s.records.SaveWithCharacter(ctx, record, char); err != nil {
		return nil, apperr.Wrap(err, "failed to save reroll").
			WithMeta("record_id", record.ID).
			WithMeta("character_id", char.ID)
	}

	s.logger.Info("roll rerolled",
		zap.String("record_id", record.ID),
		zap.String("mode", string(input.Mode)),
		zap.String("actor_id", input.ActorID),
		zap.String("result", string(record.Outcome.Result)),
	)
	return &RerollOutput{Record: record, Character: char, Applied: true}, nil
}

// redraw rolls all three dice again with the record's stored tier and bonus
func (s *service) redraw(record *rolls.Record, input *RerollInput) error {
	draw, err := rolls.RollMove(s.roller, record.Tier, record.ActionBonus())
	if err != nil {
		return apperr.Wrap(err, "failed to reroll move").WithMeta("record_id", record.ID)
	}
	record.ApplyReroll(rolls.RerollState{
		Mode:    input.Mode,
		ActorID: input.ActorID,
		At:      s.now(),
	}, draw.Outcome(), draw.Action.Rolls, draw.ChallengeA.Rolls, draw.ChallengeB.Rolls)
	return nil
}

func (s *service) Adjust(ctx context.Context, input *AdjustInput) (*AdjustOutput, error) {
	if input == nil || input.RecordID == "" {
		return nil, apperr.InvalidArgument("record ID is required")
	}
	if !input.IsArbiter {
		return nil, apperr.PermissionDenied("only an arbiter may adjust a roll")
	}

	var mods [3]int
	for i, raw := range []string{input.Action, input.ChallengeA, input.ChallengeB} {
		n, err := rolls.ParseModifier(raw)
		if err != nil {
			return &AdjustOutput{Notice: shared.Warn("modifier %s", err.Error())}, nil
		}
		mods[i] = n
	}

	unlock := s.locker.Lock(keylock.RecordKey(input.RecordID))
	defer unlock()

	record, err := s.records.Get(ctx, input.RecordID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load roll").WithMeta("record_id", input.RecordID)
	}
	if mods == [3]int{} {
		return &AdjustOutput{Record: record, Notice: shared.Info("nothing to adjust")}, nil
	}

	record.ApplyAdjustment(rolls.Adjustment{
		ActorID:    input.ActorID,
		Action:     mods[0],
		ChallengeA: mods[1],
		ChallengeB: mods[2],
		At:         s.now(),
	})
	record.AddNote("result adjusted (action %+d, challenge A %+d, challenge B %+d)", mods[0], mods[1], mods[2])

	if err := s.records.Update(ctx, record); err != nil {
		return nil, apperr.Wrap(err, "failed to save roll").WithMeta("record_id", record.ID)
	}
	return &AdjustOutput{Record: record, Applied: true}, nil
}

func (s *service) SendNPCMove(ctx context.Context, input *NPCMoveInput) (*NPCMoveOutput, error) {
	return s.npcMove(ctx, input, func(char *character.Character, mv *character.Move) *shared.Notice {
		return mv.Send(&char.Chakra)
	})
}

func (s *service) ReloadNPCMove(ctx context.Context, input *NPCMoveInput) (*NPCMoveOutput, error) {
	return s.npcMove(ctx, input, func(char *character.Character, mv *character.Move) *shared.Notice {
		return mv.Reload(&char.Chakra, input.Hard)
	})
}

func (s *service) npcMove(ctx context.Context, input *NPCMoveInput, fn func(*character.Character, *character.Move) *shared.Notice) (*NPCMoveOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	unlock := s.locker.Lock(keylock.CharacterKey(input.CharacterID))
	defer unlock()

	char, err := s.characters.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get character '%s'", input.CharacterID).
			WithMeta("character_id", input.CharacterID)
	}
	if char.OwnerID != input.ActorID && !input.IsArbiter {
		return nil, apperr.PermissionDenied("only the NPC's owner or an arbiter can use its moves").
			WithMeta("character_id", char.ID)
	}
	mv, ok := char.FindMove(input.MoveRef)
	if !ok {
		return nil, apperr.NotFoundf("%s has no move %q", char.Name, input.MoveRef).
			WithMeta("character_id", char.ID)
	}

	if notice := fn(char, mv); notice != nil {
		s.metrics.RecordNotice(ctx, string(notice.Level))
		return &NPCMoveOutput{Character: char, Move: mv, Notice: notice}, nil
	}

	char.UpdatedAt = s.now()
	if err := s.characters.Update(ctx, char); err != nil {
		return nil, apperr.Wrap(err, "failed to save character").WithMeta("character_id", char.ID)
	}
	return &NPCMoveOutput{Character: char, Move: mv, Applied: true}, nil
}
