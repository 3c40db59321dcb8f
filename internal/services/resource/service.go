// Package resource manages the resource pools and chakra reserve of a
// character's abilities.
package resource

//go:generate mockgen -destination=mock/mock.go -package=mockresourceservice -source=service.go

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/resource"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
	"github.com/KirkDiggler/naruto2d6-discord/internal/observe"
	characterRepo "github.com/KirkDiggler/naruto2d6-discord/internal/repositories/characters"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services/keylock"
	"github.com/KirkDiggler/naruto2d6-discord/internal/uuid"
)

// maxIDAttempts bounds retries when a generated short id collides
const maxIDAttempts = 5

// Service defines resource pool operations on one ability
type Service interface {
	AddResource(ctx context.Context, input *AddResourceInput) (*Result, error)
	RemoveResource(ctx context.Context, input *PoolInput) (*Result, error)
	UpdateField(ctx context.Context, input *UpdateFieldInput) (*Result, error)
	Increase(ctx context.Context, input *AmountInput) (*Result, error)
	Decrease(ctx context.Context, input *AmountInput) (*Result, error)
	SetToMax(ctx context.Context, input *PoolInput) (*Result, error)
	SetToZero(ctx context.Context, input *PoolInput) (*Result, error)
	RecalculateAll(ctx context.Context, input *Target) (*Result, error)

	// SetAbilityLevel changes the level and recomputes every maximum
	SetAbilityLevel(ctx context.Context, input *LevelInput) (*Result, error)

	// AdjustChakra adds a signed delta to the ability's chakra points
	AdjustChakra(ctx context.Context, input *AmountInput) (*Result, error)

	// RefillChakra fills the ability's chakra for one point of character chakra
	RefillChakra(ctx context.Context, input *Target) (*Result, error)
}

// Target names the ability an operation works on and who is asking
type Target struct {
	CharacterID string
	// AbilityRef is an ability id or name
	AbilityRef string
	ActorID    string
	IsArbiter  bool
}

// AddResourceInput creates a pool
type AddResourceInput struct {
	Target
	Name          string
	ValuePerLevel int
	DefaultValue  int
	Show          bool
}

// PoolInput addresses one pool
type PoolInput struct {
	Target
	PoolID string
}

// UpdateFieldInput sets one field of a pool from raw text
type UpdateFieldInput struct {
	Target
	PoolID string
	Field  resource.Field
	Raw    string
}

// AmountInput carries an amount for increase, decrease or a chakra delta
type AmountInput struct {
	Target
	PoolID string
	Amount int
}

// LevelInput sets an ability level
type LevelInput struct {
	Target
	Level int
}

// Result is the outcome of a resource operation. Applied is false when the
// operation was refused or was a no-op; Notice then explains why when the
// player should be told.
type Result struct {
	Character *character.Character
	Ability   *character.Ability
	Pool      *resource.Pool
	Notice    *shared.Notice
	Applied   bool
}

type service struct {
	repository Repository
	ids        uuid.Generator
	locker     *keylock.Locker
	logger     *zap.Logger
	metrics    *observe.Metrics
	now        func() time.Time
}

// Repository is an alias for the character repository interface
type Repository = characterRepo.Repository

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository // Required
	// IDGenerator names new pools. Defaults to seven character ids.
	IDGenerator uuid.Generator
	Locker      *keylock.Locker
	Logger      *zap.Logger
	Metrics     *observe.Metrics
	Now         func() time.Time
}

// NewService creates a new resource service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		ids:        cfg.IDGenerator,
		locker:     cfg.Locker,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        cfg.Now,
	}
	if svc.ids == nil {
		svc.ids = uuid.NewShortGenerator()
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

func (s *service) AddResource(ctx context.Context, input *AddResourceInput) (*Result, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return &Result{Notice: shared.Warn("resource name cannot be empty")}, nil
	}

	return s.mutate(ctx, &input.Target, "create", func(a *character.Ability) (*resource.Pool, *shared.Notice, bool) {
		id := s.ids.New()
		for attempt := 1; attempt < maxIDAttempts; attempt++ {
			if _, taken := a.Resources.Find(id); !taken {
				break
			}
			id = s.ids.New()
		}
		if _, taken := a.Resources.Find(id); taken {
			return nil, shared.Warn("could not generate a unique resource id, try again"), false
		}

		a.Resources = append(a.Resources, resource.New(id, name, input.ValuePerLevel, input.DefaultValue, input.Show, a.EffectiveLevel()))
		pool, _ := a.Resources.Find(id)
		return pool, nil, true
	})
}

func (s *service) RemoveResource(ctx context.Context, input *PoolInput) (*Result, error) {
	return s.mutate(ctx, &input.Target, "delete", func(a *character.Ability) (*resource.Pool, *shared.Notice, bool) {
		if !a.Resources.Remove(input.PoolID) {
			s.warnUnknownPool(a, input.PoolID, "delete")
			return nil, nil, false
		}
		return nil, nil, true
	})
}

func (s *service) UpdateField(ctx context.Context, input *UpdateFieldInput) (*Result, error) {
	return s.withPool(ctx, &input.Target, input.PoolID, "update_"+string(input.Field), func(a *character.Ability, p *resource.Pool) *shared.Notice {
		return p.SetField(input.Field, input.Raw, a.EffectiveLevel())
	})
}

func (s *service) Increase(ctx context.Context, input *AmountInput) (*Result, error) {
	amount := defaultAmount(input.Amount)
	return s.withPool(ctx, &input.Target, input.PoolID, "increase", func(_ *character.Ability, p *resource.Pool) *shared.Notice {
		return p.Increase(amount)
	})
}

func (s *service) Decrease(ctx context.Context, input *AmountInput) (*Result, error) {
	amount := defaultAmount(input.Amount)
	return s.withPool(ctx, &input.Target, input.PoolID, "decrease", func(_ *character.Ability, p *resource.Pool) *shared.Notice {
		return p.Decrease(amount)
	})
}

func (s *service) SetToMax(ctx context.Context, input *PoolInput) (*Result, error) {
	return s.withPool(ctx, &input.Target, input.PoolID, "set_max", func(_ *character.Ability, p *resource.Pool) *shared.Notice {
		p.SetToMax()
		return nil
	})
}

func (s *service) SetToZero(ctx context.Context, input *PoolInput) (*Result, error) {
	return s.withPool(ctx, &input.Target, input.PoolID, "set_zero", func(_ *character.Ability, p *resource.Pool) *shared.Notice {
		p.SetToZero()
		return nil
	})
}

func (s *service) RecalculateAll(ctx context.Context, input *Target) (*Result, error) {
	return s.mutate(ctx, input, "recalculate", func(a *character.Ability) (*resource.Pool, *shared.Notice, bool) {
		a.Recalculate()
		return nil, nil, true
	})
}

func (s *service) SetAbilityLevel(ctx context.Context, input *LevelInput) (*Result, error) {
	if input.Level < 0 {
		return &Result{Notice: shared.Warn("level cannot be negative")}, nil
	}
	return s.mutate(ctx, &input.Target, "set_level", func(a *character.Ability) (*resource.Pool, *shared.Notice, bool) {
		a.SetLevel(input.Level)
		return nil, nil, true
	})
}

func (s *service) AdjustChakra(ctx context.Context, input *AmountInput) (*Result, error) {
	return s.mutate(ctx, &input.Target, "chakra_adjust", func(a *character.Ability) (*resource.Pool, *shared.Notice, bool) {
		if notice := a.AdjustChakra(input.Amount); notice != nil {
			return nil, notice, false
		}
		return nil, nil, true
	})
}

func (s *service) RefillChakra(ctx context.Context, input *Target) (*Result, error) {
	return s.mutateCharacter(ctx, input, "chakra_refill", func(char *character.Character, a *character.Ability) (*resource.Pool, *shared.Notice, bool) {
		if notice := a.RefillChakra(&char.Chakra); notice != nil {
			return nil, notice, false
		}
		return nil, nil, true
	})
}

type poolOp func(a *character.Ability, p *resource.Pool) *shared.Notice

// withPool runs op on one pool. An unknown pool id is logged and leaves
// the ability as it was.
func (s *service) withPool(ctx context.Context, target *Target, poolID, op string, fn poolOp) (*Result, error) {
	return s.mutate(ctx, target, op, func(a *character.Ability) (*resource.Pool, *shared.Notice, bool) {
		pool, ok := a.Resources.Find(poolID)
		if !ok {
			s.warnUnknownPool(a, poolID, op)
			return nil, nil, false
		}
		if notice := fn(a, pool); notice != nil {
			return pool, notice, false
		}
		return pool, nil, true
	})
}

type abilityOp func(a *character.Ability) (*resource.Pool, *shared.Notice, bool)

func (s *service) mutate(ctx context.Context, target *Target, op string, fn abilityOp) (*Result, error) {
	return s.mutateCharacter(ctx, target, op, func(_ *character.Character, a *character.Ability) (*resource.Pool, *shared.Notice, bool) {
		return fn(a)
	})
}

// mutateCharacter loads the character under its lock, runs fn on the
// target ability and saves only when fn reports a change.
func (s *service) mutateCharacter(ctx context.Context, target *Target, op string, fn func(*character.Character, *character.Ability) (*resource.Pool, *shared.Notice, bool)) (*Result, error) {
	if target == nil || strings.TrimSpace(target.CharacterID) == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	unlock := s.locker.Lock(keylock.CharacterKey(target.CharacterID))
	defer unlock()

	char, err := s.repository.Get(ctx, target.CharacterID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get character '%s'", target.CharacterID).
			WithMeta("character_id", target.CharacterID)
	}
	if char.OwnerID != target.ActorID && !target.IsArbiter {
		return nil, apperr.PermissionDenied("only the character's owner or an arbiter can change its resources").
			WithMeta("character_id", char.ID)
	}

	ability, ok := char.FindAbility(target.AbilityRef)
	if !ok {
		return nil, apperr.NotFoundf("%s has no ability %q", char.Name, target.AbilityRef).
			WithMeta("character_id", char.ID)
	}

	pool, notice, applied := fn(char, ability)
	result := &Result{
		Character: char,
		Ability:   ability,
		Pool:      pool,
		Notice:    notice,
		Applied:   applied,
	}
	if notice != nil {
		s.metrics.RecordNotice(ctx, string(notice.Level))
	}
	if !applied {
		return result, nil
	}

	char.UpdatedAt = s.now()
	if err := s.repository.Update(ctx, char); err != nil {
		return nil, apperr.Wrap(err, "failed to save character").
			WithMeta("character_id", char.ID)
	}

	s.metrics.RecordResourceMutation(ctx, op)
	return result, nil
}

func (s *service) warnUnknownPool(a *character.Ability, poolID, op string) {
	s.logger.Warn("resource not found",
		zap.String("ability_id", a.ID),
		zap.String("resource_id", poolID),
		zap.String("op", op),
	)
}

func defaultAmount(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
