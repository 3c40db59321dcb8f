// uuid simple generators that allow mocking
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"strings"

	"github.com/google/uuid"
)

// shortIDLength matches the length of resource ids on ability sheets
const shortIDLength = 7

// Generator is an interface for generating ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// ShortGenerator produces short ids for entries nested inside a character,
// such as ability resource pools, where a full UUID is noise in a slash
// command argument.
type ShortGenerator struct{}

// New returns the first seven hex characters of a random UUID
func (g *ShortGenerator) New() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return id[:shortIDLength]
}

// NewShortGenerator creates a new ShortGenerator
func NewShortGenerator() *ShortGenerator {
	return &ShortGenerator{}
}
