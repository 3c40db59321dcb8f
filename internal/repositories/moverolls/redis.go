package moverolls

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/characters"
)

const defaultRecordTTL = 30 * 24 * time.Hour

// Key is the Redis key holding a record
func Key(id string) string {
	return fmt.Sprintf("moveroll:%s", id)
}

// CharacterKey is the sorted set of a character's record ids scored by
// creation time.
func CharacterKey(characterID string) string {
	return fmt.Sprintf("character:%s:moverolls", characterID)
}

type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
	now    func() time.Time
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	// RecordTTL is how long a roll stays rerollable (default: 30 days)
	RecordTTL time.Duration
	Now       func() time.Time
}

// NewRedis creates a Redis-backed record repository with defaults
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// NewRedisRepository creates a new Redis-backed record repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.RecordTTL == 0 {
		cfg.RecordTTL = defaultRecordTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &redisRepo{
		client: cfg.Client,
		ttl:    cfg.RecordTTL,
		now:    cfg.Now,
	}
}

func (r *redisRepo) Create(ctx context.Context, record *rolls.Record) error {
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}
	if record.ID == "" {
		return apperr.InvalidArgument("record ID is required")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal record")
	}

	index := CharacterKey(record.CharacterID)
	pipe := r.client.TxPipeline()
	created := pipe.SetNX(ctx, Key(record.ID), string(data), r.ttl)
	pipe.ZAddNX(ctx, index, redis.Z{
		Score:  float64(record.CreatedAt.Unix()),
		Member: record.ID,
	})
	pipe.Expire(ctx, index, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrapf(err, "failed to create record %s", record.ID)
	}
	if !created.Val() {
		return apperr.AlreadyExistsf("record with ID '%s' already exists", record.ID).
			WithMeta("record_id", record.ID)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*rolls.Record, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("record ID is required")
	}

	data, err := r.client.Get(ctx, Key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFoundf("roll %s not found", id).WithMeta("record_id", id)
		}
		return nil, apperr.Wrapf(err, "failed to get record %s", id)
	}

	var record rolls.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, apperr.Wrap(err, "failed to unmarshal record")
	}
	return &record, nil
}

func (r *redisRepo) Update(ctx context.Context, record *rolls.Record) error {
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}

	record.UpdatedAt = r.now()
	data, err := json.Marshal(record)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal record")
	}

	updated, err := r.client.SetXX(ctx, Key(record.ID), string(data), r.ttl).Result()
	if err != nil {
		return apperr.Wrapf(err, "failed to update record %s", record.ID)
	}
	if !updated {
		return apperr.NotFoundf("roll %s not found", record.ID).WithMeta("record_id", record.ID)
	}
	return nil
}

// SaveWithCharacter writes both keys in one MULTI/EXEC transaction
func (r *redisRepo) SaveWithCharacter(ctx context.Context, record *rolls.Record, char *character.Character) error {
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}

	now := r.now()
	record.UpdatedAt = now
	char.UpdatedAt = now

	recordData, err := json.Marshal(record)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal record")
	}
	charData, err := characters.Encode(char)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, Key(record.ID), string(recordData), r.ttl)
	pipe.Set(ctx, characters.Key(char.ID), string(charData), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to save roll and character")
	}
	return nil
}

func (r *redisRepo) ListByCharacter(ctx context.Context, characterID string, limit int) ([]*rolls.Record, error) {
	if limit <= 0 {
		limit = 10
	}

	ids, err := r.client.ZRevRange(ctx, CharacterKey(characterID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list character rolls")
	}

	found := make([]*rolls.Record, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			record, err := r.Get(gctx, id)
			if apperr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			found[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]*rolls.Record, 0, len(found))
	var expired []any
	for i, record := range found {
		if record == nil {
			expired = append(expired, ids[i])
			continue
		}
		records = append(records, record)
	}

	// Records expire on their own; the index is trimmed as expired ids show up.
	// A failed trim is retried by the next listing.
	if len(expired) > 0 {
		_ = r.client.ZRem(ctx, CharacterKey(characterID), expired...).Err()
	}
	return records, nil
}
