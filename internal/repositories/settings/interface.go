package settings

//go:generate mockgen -destination=mock/mock.go -package=mocksettings -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
)

// Repository stores per-guild world settings
type Repository interface {
	// GetThresholds returns the guild's thresholds or a not found error
	GetThresholds(ctx context.Context, guildID string) (*rolls.Thresholds, error)

	// SaveThresholds replaces the guild's thresholds
	SaveThresholds(ctx context.Context, guildID string, thresholds rolls.Thresholds) error
}
