package services

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/naruto2d6-discord/internal/dice"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	"github.com/KirkDiggler/naruto2d6-discord/internal/observe"
	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/characters"
	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/moverolls"
	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/settings"
	characterService "github.com/KirkDiggler/naruto2d6-discord/internal/services/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services/keylock"
	moveService "github.com/KirkDiggler/naruto2d6-discord/internal/services/move"
	resourceService "github.com/KirkDiggler/naruto2d6-discord/internal/services/resource"
	settingsService "github.com/KirkDiggler/naruto2d6-discord/internal/services/settings"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	MoveService      moveService.Service
	ResourceService  resourceService.Service
	SettingsService  settingsService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository
	MoveRollRepository  moverolls.Repository
	SettingsRepository  settings.Repository

	// DefaultThresholds apply to guilds without stored thresholds
	DefaultThresholds rolls.Thresholds
	Roller            dice.Roller
	Logger            *zap.Logger
	Metrics           *observe.Metrics
}

// NewProvider creates a new service provider with all services initialized.
// Missing repositories fall back to in-memory ones.
func NewProvider(cfg *ProviderConfig) *Provider {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	rollRepo := cfg.MoveRollRepository
	if rollRepo == nil {
		rollRepo = moverolls.NewInMemoryRepository(charRepo)
	}

	settingsRepo := cfg.SettingsRepository
	if settingsRepo == nil {
		settingsRepo = settings.NewInMemoryRepository()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewLoggedRoller(dice.NewCryptoSource(), logger.Named("dice"))
	}

	// Services share one locker so a reroll and a sheet edit on the same
	// character never interleave.
	locker := keylock.New()

	settingsSvc := settingsService.NewService(&settingsService.ServiceConfig{
		Repository: settingsRepo,
		Defaults:   cfg.DefaultThresholds,
		Logger:     logger.Named("settings"),
	})

	charSvc := characterService.NewService(&characterService.ServiceConfig{
		Repository: charRepo,
		Locker:     locker,
		Logger:     logger.Named("character"),
		Metrics:    cfg.Metrics,
	})

	resourceSvc := resourceService.NewService(&resourceService.ServiceConfig{
		Repository: charRepo,
		Locker:     locker,
		Logger:     logger.Named("resource"),
		Metrics:    cfg.Metrics,
	})

	moveSvc := moveService.NewService(&moveService.ServiceConfig{
		CharacterRepository: charRepo,
		RecordRepository:    rollRepo,
		SettingsService:     settingsSvc,
		Roller:              roller,
		Locker:              locker,
		Logger:              logger.Named("move"),
		Metrics:             cfg.Metrics,
	})

	return &Provider{
		CharacterService: charSvc,
		MoveService:      moveSvc,
		ResourceService:  resourceSvc,
		SettingsService:  settingsSvc,
	}
}
