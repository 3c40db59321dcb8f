package character

//go:generate mockgen -destination=mock/mock.go -package=mockcharacterservice -source=service.go

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
	"github.com/KirkDiggler/naruto2d6-discord/internal/observe"
	characterRepo "github.com/KirkDiggler/naruto2d6-discord/internal/repositories/characters"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services/keylock"
	"github.com/KirkDiggler/naruto2d6-discord/internal/uuid"
)

// Repository is an alias for the character repository interface
type Repository = characterRepo.Repository

// Service defines the character sheet operations
type Service interface {
	// CreateCharacter creates a new character with the given details
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error)

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, characterID string) (*character.Character, error)

	// ListCharacters lists a user's characters in a guild
	ListCharacters(ctx context.Context, guildID, ownerID string) ([]*character.Character, error)

	// ResolveCharacter finds the character a command refers to. An empty ref
	// means the user's first character; otherwise ref is an id or a name.
	ResolveCharacter(ctx context.Context, guildID, ownerID, ref string) (*character.Character, error)

	// SetStat changes momentum, fire-will, chakra or the advantage level,
	// clamped to its range
	SetStat(ctx context.Context, input *SetStatInput) (*SetStatOutput, error)

	// ToggleCondition activates or deactivates a named condition
	ToggleCondition(ctx context.Context, input *ToggleConditionInput) (*character.Character, error)

	// Import creates or replaces characters loaded from a world file
	Import(ctx context.Context, chars []*character.Character) (int, error)
}

// Stat names a character meter that can be set directly
type Stat string

const (
	StatMomentum       Stat = "momentum"
	StatFireWill       Stat = "firewill"
	StatChakra         Stat = "chakra"
	StatAdvantageLevel Stat = "nv"
)

// CreateCharacterInput contains all data needed to create a character
type CreateCharacterInput struct {
	OwnerID    string
	GuildID    string
	Name       string
	Kind       shared.CharacterKind
	Attributes map[shared.Attribute]int
	// Abilities are optional starting abilities; their pools are
	// recalculated from the ability level
	Abilities []*character.Ability
}

// SetStatInput changes one stat of a character
type SetStatInput struct {
	CharacterID string
	ActorID     string
	IsArbiter   bool
	Stat        Stat
	Value       int
}

// SetStatOutput is the changed character and the chat note describing it
type SetStatOutput struct {
	Character *character.Character
	Value     int
	Note      string
}

// ToggleConditionInput switches a condition on or off
type ToggleConditionInput struct {
	CharacterID string
	ActorID     string
	IsArbiter   bool
	Name        string
	Active      bool
}

type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
	locker        *keylock.Locker
	logger        *zap.Logger
	metrics       *observe.Metrics
	now           func() time.Time
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository      // Required
	UUIDGenerator uuid.Generator  // Optional, defaults to google uuid
	Locker        *keylock.Locker // Optional, share with the other services
	Logger        *zap.Logger
	Metrics       *observe.Metrics
	Now           func() time.Time
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
		locker:        cfg.Locker,
		logger:        cfg.Logger,
		metrics:       cfg.Metrics,
		now:           cfg.Now,
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.locker == nil {
		svc.locker = keylock.New()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc
}

func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperr.Wrap(apperr.Validationf("%v", err), "invalid character creation input").
			WithMeta("operation", "CreateCharacter")
	}

	kind := input.Kind
	if kind == "" {
		kind = shared.CharacterKindPlayer
	}

	char := character.New(s.uuidGenerator.New(), input.OwnerID, input.GuildID,
		strings.TrimSpace(input.Name), kind, input.Attributes)
	for _, ability := range input.Abilities {
		a := ability.Clone()
		a.Recalculate()
		char.Abilities = append(char.Abilities, a)
	}
	char.CreatedAt = s.now()
	char.UpdatedAt = char.CreatedAt

	if err := s.repository.Create(ctx, char); err != nil {
		return nil, apperr.Wrap(err, "failed to save character").
			WithMeta("owner_id", input.OwnerID)
	}

	s.logger.Info("character created",
		zap.String("character_id", char.ID),
		zap.String("guild_id", char.GuildID),
		zap.String("owner_id", char.OwnerID),
	)
	return char, nil
}

func (s *service) GetCharacter(ctx context.Context, characterID string) (*character.Character, error) {
	if strings.TrimSpace(characterID) == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	return char, nil
}

func (s *service) ListCharacters(ctx context.Context, guildID, ownerID string) ([]*character.Character, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	chars, err := s.repository.ListByOwner(ctx, guildID, ownerID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to list characters for user '%s'", ownerID).
			WithMeta("owner_id", ownerID)
	}
	sort.SliceStable(chars, func(i, j int) bool {
		if chars[i].CreatedAt.Equal(chars[j].CreatedAt) {
			return chars[i].Name < chars[j].Name
		}
		return chars[i].CreatedAt.Before(chars[j].CreatedAt)
	})
	return chars, nil
}

func (s *service) ResolveCharacter(ctx context.Context, guildID, ownerID, ref string) (*character.Character, error) {
	ref = strings.TrimSpace(ref)

	if ref != "" {
		char, err := s.repository.Get(ctx, ref)
		if err == nil {
			if char.GuildID != guildID {
				return nil, apperr.NotFoundf("character %s not found in this server", ref)
			}
			return char, nil
		}
		if !apperr.IsNotFound(err) {
			return nil, apperr.Wrap(err, "failed to resolve character")
		}
	}

	chars, err := s.ListCharacters(ctx, guildID, ownerID)
	if err != nil {
		return nil, err
	}
	if len(chars) == 0 {
		return nil, apperr.NotFound("you have no characters in this server, create one with /sheet create").
			WithMeta("owner_id", ownerID)
	}
	if ref == "" {
		return chars[0], nil
	}
	for _, char := range chars {
		if strings.EqualFold(char.Name, ref) {
			return char, nil
		}
	}
	return nil, apperr.NotFoundf("no character named %q", ref).WithMeta("owner_id", ownerID)
}

func (s *service) SetStat(ctx context.Context, input *SetStatInput) (*SetStatOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperr.Validationf("%v", err)
	}

	var out *SetStatOutput
	err := s.mutate(ctx, input.CharacterID, input.ActorID, input.IsArbiter, func(char *character.Character) error {
		out = &SetStatOutput{Character: char}
		switch input.Stat {
		case StatMomentum:
			out.Value = char.Momentum.Set(input.Value)
			out.Note = fmt.Sprintf("%s changed their momentum to: %d", char.Name, out.Value)
		case StatFireWill:
			out.Value = char.FireWill.Set(input.Value)
			out.Note = fmt.Sprintf("%s changed their Will of Fire to: %d", char.Name, out.Value)
		case StatChakra:
			out.Value = char.Chakra.Set(input.Value)
			out.Note = fmt.Sprintf("%s changed their chakra to: %d", char.Name, out.Value)
		case StatAdvantageLevel:
			out.Value = char.AdvantageLevel.Set(input.Value)
			out.Note = fmt.Sprintf("%s changed their NV to: %d", char.Name, out.Value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordResourceMutation(ctx, "set_"+string(input.Stat))
	return out, nil
}

func (s *service) ToggleCondition(ctx context.Context, input *ToggleConditionInput) (*character.Character, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperr.Validationf("%v", err)
	}

	var result *character.Character
	err := s.mutate(ctx, input.CharacterID, input.ActorID, input.IsArbiter, func(char *character.Character) error {
		cond, ok := char.FindCondition(input.Name)
		if !ok {
			return apperr.NotFoundf("%s has no condition named %q", char.Name, input.Name).
				WithMeta("character_id", char.ID)
		}
		cond.Active = input.Active
		result = char
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) Import(ctx context.Context, chars []*character.Character) (int, error) {
	imported := 0
	for _, incoming := range chars {
		char := incoming.Clone()
		if char.ID == "" {
			char.ID = s.uuidGenerator.New()
		}
		for _, a := range char.Abilities {
			a.Recalculate()
		}
		now := s.now()
		char.UpdatedAt = now

		unlock := s.locker.Lock(keylock.CharacterKey(char.ID))
		existing, err := s.repository.Get(ctx, char.ID)
		switch {
		case err == nil:
			char.CreatedAt = existing.CreatedAt
			err = s.repository.Update(ctx, char)
		case apperr.IsNotFound(err):
			char.CreatedAt = now
			err = s.repository.Create(ctx, char)
		}
		unlock()
		if err != nil {
			return imported, apperr.Wrapf(err, "failed to import character %q", char.Name).
				WithMeta("character_id", char.ID)
		}
		imported++
	}

	s.logger.Info("world characters imported", zap.Int("count", imported))
	return imported, nil
}

// mutate loads a character under its lock, checks the actor may edit it,
// applies fn and saves the result.
func (s *service) mutate(ctx context.Context, characterID, actorID string, isArbiter bool, fn func(*character.Character) error) error {
	unlock := s.locker.Lock(keylock.CharacterKey(characterID))
	defer unlock()

	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return apperr.Wrapf(err, "failed to get character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	if char.OwnerID != actorID && !isArbiter {
		return apperr.PermissionDenied("only the character's owner or an arbiter can change it").
			WithMeta("character_id", characterID)
	}

	if err := fn(char); err != nil {
		return err
	}
	char.UpdatedAt = s.now()

	if err := s.repository.Update(ctx, char); err != nil {
		return apperr.Wrap(err, "failed to save character").
			WithMeta("character_id", characterID)
	}
	return nil
}
