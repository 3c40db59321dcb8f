package moverolls

//go:generate mockgen -destination=mock/mock.go -package=mockmoverolls -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
)

// Repository persists move roll records
type Repository interface {
	// Create stores a new record
	Create(ctx context.Context, record *rolls.Record) error

	// Get retrieves a record by ID
	Get(ctx context.Context, id string) (*rolls.Record, error)

	// Update replaces a record, e.g. after its chat message id is known
	Update(ctx context.Context, record *rolls.Record) error

	// SaveWithCharacter writes record and char together. Either both are
	// stored or neither is.
	SaveWithCharacter(ctx context.Context, record *rolls.Record, char *character.Character) error

	// ListByCharacter returns the most recent records of a character, newest first
	ListByCharacter(ctx context.Context, characterID string, limit int) ([]*rolls.Record, error)
}
