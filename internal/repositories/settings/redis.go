package settings

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
)

const (
	fieldGreatDisadvantage = "great_disadvantage"
	fieldDisadvantage      = "disadvantage"
	fieldAdvantage         = "advantage"
	fieldGreatAdvantage    = "great_advantage"
)

// ThresholdsKey is the hash holding a guild's thresholds
func ThresholdsKey(guildID string) string {
	return fmt.Sprintf("guild:%s:settings:thresholds", guildID)
}

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed settings repository
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("Redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

func (r *redisRepo) GetThresholds(ctx context.Context, guildID string) (*rolls.Thresholds, error) {
	values, err := r.client.HGetAll(ctx, ThresholdsKey(guildID)).Result()
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get thresholds")
	}
	if len(values) == 0 {
		return nil, apperr.NotFoundf("no thresholds stored for guild %s", guildID).
			WithMeta("guild_id", guildID)
	}

	var t rolls.Thresholds
	fields := []struct {
		name string
		dst  *int
	}{
		{fieldGreatDisadvantage, &t.GreatDisadvantage},
		{fieldDisadvantage, &t.Disadvantage},
		{fieldAdvantage, &t.Advantage},
		{fieldGreatAdvantage, &t.GreatAdvantage},
	}
	for _, f := range fields {
		n, err := strconv.Atoi(values[f.name])
		if err != nil {
			return nil, apperr.Wrapf(err, "invalid %s threshold for guild %s", f.name, guildID)
		}
		*f.dst = n
	}
	return &t, nil
}

func (r *redisRepo) SaveThresholds(ctx context.Context, guildID string, t rolls.Thresholds) error {
	err := r.client.HSet(ctx, ThresholdsKey(guildID),
		fieldGreatDisadvantage, t.GreatDisadvantage,
		fieldDisadvantage, t.Disadvantage,
		fieldAdvantage, t.Advantage,
		fieldGreatAdvantage, t.GreatAdvantage,
	).Err()
	if err != nil {
		return apperr.Wrap(err, "failed to save thresholds")
	}
	return nil
}
