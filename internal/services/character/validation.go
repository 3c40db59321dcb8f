package character

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
)

// attributeRange bounds starting attribute values
const (
	minAttribute = -3
	maxAttribute = 3
)

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// ValidateInput validates any input that implements Validator
func ValidateInput(input Validator) error {
	if input == nil {
		return fmt.Errorf("input cannot be nil")
	}
	return input.Validate()
}

// Validate checks CreateCharacterInput for validity
func (i *CreateCharacterInput) Validate() error {
	if i == nil {
		return fmt.Errorf("CreateCharacterInput cannot be nil")
	}

	if strings.TrimSpace(i.OwnerID) == "" {
		return fmt.Errorf("owner ID is required")
	}

	if strings.TrimSpace(i.GuildID) == "" {
		return fmt.Errorf("guild ID is required")
	}

	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("character name is required")
	}

	if len(i.Name) > 50 {
		return fmt.Errorf("character name cannot exceed 50 characters")
	}

	switch i.Kind {
	case "", shared.CharacterKindPlayer, shared.CharacterKindNPC:
	default:
		return fmt.Errorf("unknown character kind %q", i.Kind)
	}

	if len(i.Attributes) == 0 {
		return fmt.Errorf("attributes are required")
	}

	for _, attr := range shared.Attributes {
		value, ok := i.Attributes[attr]
		if !ok {
			return fmt.Errorf("missing attribute %s", attr)
		}
		if value < minAttribute || value > maxAttribute {
			return fmt.Errorf("%s must be between %d and %d, got %d", attr.Label(), minAttribute, maxAttribute, value)
		}
	}

	return nil
}

// Validate checks SetStatInput for validity
func (i *SetStatInput) Validate() error {
	if i == nil {
		return fmt.Errorf("SetStatInput cannot be nil")
	}

	if strings.TrimSpace(i.CharacterID) == "" {
		return fmt.Errorf("character ID is required")
	}

	switch i.Stat {
	case StatMomentum, StatFireWill, StatChakra, StatAdvantageLevel:
	default:
		return fmt.Errorf("unknown stat %q", i.Stat)
	}

	return nil
}

// Validate checks ToggleConditionInput for validity
func (i *ToggleConditionInput) Validate() error {
	if i == nil {
		return fmt.Errorf("ToggleConditionInput cannot be nil")
	}

	if strings.TrimSpace(i.CharacterID) == "" {
		return fmt.Errorf("character ID is required")
	}

	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("condition name is required")
	}

	return nil
}
