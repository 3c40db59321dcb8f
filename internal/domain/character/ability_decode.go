package character

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/resource"
)

// Stored sheets and world files may carry numbers as strings. Abilities
// decode through resource.Int and keep plain ints in memory.

type abilityWire struct {
	ID                string             `json:"id" yaml:"id"`
	Name              string             `json:"name" yaml:"name"`
	Level             resource.Int       `json:"level" yaml:"level"`
	Description       string             `json:"description" yaml:"description"`
	LevelDescriptions []LevelDescription `json:"level_descriptions" yaml:"level_descriptions"`
	Chakra            AbilityChakra      `json:"chakra" yaml:"chakra"`
	Resources         resource.Pools     `json:"resources" yaml:"resources"`
}

func (w abilityWire) ability() Ability {
	return Ability{
		ID:                w.ID,
		Name:              w.Name,
		Level:             int(w.Level),
		Description:       w.Description,
		LevelDescriptions: w.LevelDescriptions,
		Chakra:            w.Chakra,
		Resources:         w.Resources,
	}
}

// UnmarshalJSON coerces a quoted level
func (a *Ability) UnmarshalJSON(data []byte) error {
	var w abilityWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*a = w.ability()
	return nil
}

// UnmarshalYAML coerces a quoted level
func (a *Ability) UnmarshalYAML(value *yaml.Node) error {
	var w abilityWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	*a = w.ability()
	return nil
}

type abilityChakraWire struct {
	Enabled  bool         `json:"enabled" yaml:"enabled"`
	Points   resource.Int `json:"points" yaml:"points"`
	Max      resource.Int `json:"max" yaml:"max"`
	PerLevel resource.Int `json:"per_level" yaml:"per_level"`
	Default  resource.Int `json:"default" yaml:"default"`
}

func (w abilityChakraWire) chakra() AbilityChakra {
	return AbilityChakra{
		Enabled:  w.Enabled,
		Points:   int(w.Points),
		Max:      int(w.Max),
		PerLevel: int(w.PerLevel),
		Default:  int(w.Default),
	}
}

// UnmarshalJSON coerces quoted chakra numbers
func (c *AbilityChakra) UnmarshalJSON(data []byte) error {
	var w abilityChakraWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = w.chakra()
	return nil
}

// UnmarshalYAML coerces quoted chakra numbers
func (c *AbilityChakra) UnmarshalYAML(value *yaml.Node) error {
	var w abilityChakraWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	*c = w.chakra()
	return nil
}
