package moverolls

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/characters"
)

// InMemoryRepository keeps records in a map. SaveWithCharacter writes the
// character through Characters while holding the record lock.
type InMemoryRepository struct {
	mu         sync.RWMutex
	records    map[string]*rolls.Record
	characters characters.Repository
}

// NewInMemoryRepository creates a new in-memory repository backed by chars
// for combined saves.
func NewInMemoryRepository(chars characters.Repository) *InMemoryRepository {
	if chars == nil {
		panic("characters repository cannot be nil")
	}
	return &InMemoryRepository{
		records:    make(map[string]*rolls.Record),
		characters: chars,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, record *rolls.Record) error {
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}
	if record.ID == "" {
		return apperr.InvalidArgument("record ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; exists {
		return apperr.AlreadyExistsf("record with ID '%s' already exists", record.ID).
			WithMeta("record_id", record.ID)
	}
	r.records[record.ID] = record.Clone()
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*rolls.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, apperr.NotFoundf("roll %s not found", id).WithMeta("record_id", id)
	}
	return record.Clone(), nil
}

func (r *InMemoryRepository) Update(ctx context.Context, record *rolls.Record) error {
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; !exists {
		return apperr.NotFoundf("roll %s not found", record.ID).WithMeta("record_id", record.ID)
	}
	record.UpdatedAt = time.Now()
	r.records[record.ID] = record.Clone()
	return nil
}

func (r *InMemoryRepository) SaveWithCharacter(ctx context.Context, record *rolls.Record, char *character.Character) error {
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; !exists {
		return apperr.NotFoundf("roll %s not found", record.ID).WithMeta("record_id", record.ID)
	}

	// The record write below cannot fail, so a failed character write
	// leaves both untouched.
	if err := r.characters.Update(ctx, char); err != nil {
		return apperr.Wrap(err, "failed to save roll and character")
	}
	record.UpdatedAt = char.UpdatedAt
	r.records[record.ID] = record.Clone()
	return nil
}

func (r *InMemoryRepository) ListByCharacter(ctx context.Context, characterID string, limit int) ([]*rolls.Record, error) {
	if limit <= 0 {
		limit = 10
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*rolls.Record
	for _, record := range r.records {
		if record.CharacterID == characterID {
			out = append(out, record.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
