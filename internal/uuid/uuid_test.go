package uuid_test

import (
	"testing"

	"github.com/KirkDiggler/naruto2d6-discord/internal/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShortGenerator_New(t *testing.T) {
	gen := uuid.NewShortGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := gen.New()
		assert.Len(t, id, 7)
		assert.Regexp(t, "^[0-9a-f]{7}$", id)
		seen[id] = struct{}{}
	}
	assert.Greater(t, len(seen), 95)
}

func TestGoogleUUIDGenerator_New(t *testing.T) {
	id := uuid.NewGoogleUUIDGenerator().New()
	assert.Len(t, id, 36)
}
