package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
	"github.com/KirkDiggler/naruto2d6-discord/internal/uuid"
)

// Key is the Redis key holding a character. Other repositories that write a
// character inside their own transaction use it too.
func Key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// OwnerKey is the set of character ids a user owns in a guild
func OwnerKey(guildID, ownerID string) string {
	return fmt.Sprintf("guild:%s:owner:%s:characters", guildID, ownerID)
}

// Encode serialises a character the way this repository stores it
func Encode(char *character.Character) ([]byte, error) {
	data, err := json.Marshal(char)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to marshal character")
	}
	return data, nil
}

// Decode parses a stored character
func Decode(data []byte) (*character.Character, error) {
	var char character.Character
	if err := json.Unmarshal(data, &char); err != nil {
		return nil, apperr.Wrap(err, "failed to unmarshal character")
	}
	return &char, nil
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	now           func() time.Time
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	Now           func() time.Time
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		now:           cfg.Now,
	}
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		char.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, Key(char.ID)).Result()
	if err != nil {
		return apperr.Wrap(err, "failed to check character existence")
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	now := r.now()
	if char.CreatedAt.IsZero() {
		char.CreatedAt = now
	}
	char.UpdatedAt = now

	return r.save(ctx, char)
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	data, err := r.client.Get(ctx, Key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFoundf("character with ID '%s' not found", id).
				WithMeta("character_id", id)
		}
		return nil, apperr.Wrapf(err, "failed to get character %s", id)
	}

	return Decode(data)
}

// ListByOwner retrieves every character a user owns in a guild
func (r *redisRepo) ListByOwner(ctx context.Context, guildID, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, OwnerKey(guildID, ownerID)).Result()
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get owner characters")
	}

	chars := make([]*character.Character, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			char, err := r.Get(gctx, id)
			if err != nil {
				return err
			}
			chars[i] = char
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return chars, nil
}

// Update replaces an existing character
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, Key(char.ID)).Result()
	if err != nil {
		return apperr.Wrap(err, "failed to check character existence")
	}
	if exists == 0 {
		return apperr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}

	char.UpdatedAt = r.now()
	return r.save(ctx, char)
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	char, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, Key(id))
	pipe.SRem(ctx, OwnerKey(char.GuildID, char.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrapf(err, "failed to delete character %s", id)
	}

	return nil
}

func (r *redisRepo) save(ctx context.Context, char *character.Character) error {
	data, err := Encode(char)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, Key(char.ID), string(data), 0)
	pipe.SAdd(ctx, OwnerKey(char.GuildID, char.OwnerID), char.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrapf(err, "failed to save character %s", char.ID)
	}

	return nil
}
