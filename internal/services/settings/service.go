package settings

//go:generate mockgen -destination=mock/mock.go -package=mocksettingsservice -source=service.go

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
	settingsRepo "github.com/KirkDiggler/naruto2d6-discord/internal/repositories/settings"
)

// Repository is an alias for the settings repository interface
type Repository = settingsRepo.Repository

// Service manages per-guild world settings
type Service interface {
	// GetThresholds returns the guild's thresholds, or the defaults when the
	// guild never stored any
	GetThresholds(ctx context.Context, guildID string) (rolls.Thresholds, error)

	// SetThresholds validates and stores new thresholds. Arbiter only.
	SetThresholds(ctx context.Context, input *SetThresholdsInput) (rolls.Thresholds, error)

	// Defaults returns the thresholds used for guilds without settings
	Defaults() rolls.Thresholds
}

// SetThresholdsInput carries a threshold change
type SetThresholdsInput struct {
	GuildID    string
	ActorID    string
	IsArbiter  bool
	Thresholds rolls.Thresholds
}

type service struct {
	repository Repository
	defaults   rolls.Thresholds
	logger     *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository // Required
	// Defaults are used for guilds without stored thresholds. Zero value
	// means rolls.DefaultThresholds().
	Defaults rolls.Thresholds
	Logger   *zap.Logger
}

// NewService creates a new settings service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		defaults:   cfg.Defaults,
		logger:     cfg.Logger,
	}
	if svc.defaults == (rolls.Thresholds{}) {
		svc.defaults = rolls.DefaultThresholds()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

func (s *service) Defaults() rolls.Thresholds {
	return s.defaults
}

func (s *service) GetThresholds(ctx context.Context, guildID string) (rolls.Thresholds, error) {
	stored, err := s.repository.GetThresholds(ctx, guildID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return s.defaults, nil
		}
		return rolls.Thresholds{}, apperr.Wrapf(err, "failed to load thresholds for guild %s", guildID).
			WithMeta("guild_id", guildID)
	}
	return *stored, nil
}

func (s *service) SetThresholds(ctx context.Context, input *SetThresholdsInput) (rolls.Thresholds, error) {
	if input == nil {
		return rolls.Thresholds{}, apperr.InvalidArgument("input cannot be nil")
	}
	if !input.IsArbiter {
		return rolls.Thresholds{}, apperr.PermissionDenied("only an arbiter may change the thresholds")
	}
	if err := input.Thresholds.Validate(); err != nil {
		return rolls.Thresholds{}, apperr.Validationf("%v", err).WithMeta("guild_id", input.GuildID)
	}

	if err := s.repository.SaveThresholds(ctx, input.GuildID, input.Thresholds); err != nil {
		return rolls.Thresholds{}, apperr.Wrap(err, "failed to save thresholds").
			WithMeta("guild_id", input.GuildID)
	}

	s.logger.Info("thresholds changed",
		zap.String("guild_id", input.GuildID),
		zap.String("actor_id", input.ActorID),
		zap.Any("thresholds", input.Thresholds),
	)
	return input.Thresholds, nil
}
