package settings

import (
	"context"
	"sync"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
)

// InMemoryRepository keeps settings in a map
type InMemoryRepository struct {
	mu         sync.RWMutex
	thresholds map[string]rolls.Thresholds
}

// NewInMemoryRepository creates a new in-memory settings repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{thresholds: make(map[string]rolls.Thresholds)}
}

func (r *InMemoryRepository) GetThresholds(ctx context.Context, guildID string) (*rolls.Thresholds, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.thresholds[guildID]
	if !ok {
		return nil, apperr.NotFoundf("no thresholds stored for guild %s", guildID).
			WithMeta("guild_id", guildID)
	}
	return &t, nil
}

func (r *InMemoryRepository) SaveThresholds(ctx context.Context, guildID string, t rolls.Thresholds) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.thresholds[guildID] = t
	return nil
}
