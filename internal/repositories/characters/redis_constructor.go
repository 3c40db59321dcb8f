package characters

import (
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/naruto2d6-discord/internal/uuid"
)

// NewRedis creates a new Redis-backed character repository
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
	})
}
