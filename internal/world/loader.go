// Package world seeds characters from a YAML world file.
package world

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
)

// yamlWorldFile is the top-level YAML structure of a world file.
type yamlWorldFile struct {
	Guild      string          `yaml:"guild"`
	Characters []yamlCharacter `yaml:"characters"`
}

// yamlCharacter is the YAML representation of a character sheet.
type yamlCharacter struct {
	ID             string               `yaml:"id"`
	Guild          string               `yaml:"guild"`
	Owner          string               `yaml:"owner"`
	Name           string               `yaml:"name"`
	Kind           string               `yaml:"kind"`
	Attributes     map[string]int       `yaml:"attributes"`
	Momentum       *yamlMeter           `yaml:"momentum"`
	FireWill       *yamlMeter           `yaml:"fire_will"`
	Chakra         *yamlMeter           `yaml:"chakra"`
	AdvantageLevel *int                 `yaml:"nv"`
	Moves          []*character.Move    `yaml:"moves"`
	Abilities      []*character.Ability `yaml:"abilities"`
	Conditions     []yamlCondition      `yaml:"conditions"`
}

// yamlMeter overrides the starting value and maximum of a meter.
type yamlMeter struct {
	Value *int `yaml:"value"`
	Max   *int `yaml:"max"`
}

// yamlCondition keys its modifiers by attribute key or sheet label.
type yamlCondition struct {
	Name          string           `yaml:"name"`
	Active        bool             `yaml:"active"`
	AttributeMods map[string]int   `yaml:"attribute_mods"`
	MoveConfigs   []yamlMoveConfig `yaml:"move_configs"`
}

type yamlMoveConfig struct {
	MoveName      string         `yaml:"move_name"`
	AttributeMods map[string]int `yaml:"attribute_mods"`
}

// LoadFromFile reads and converts a world file.
func LoadFromFile(path string) ([]*character.Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a world file. Every character is validated; the
// first invalid one fails the whole load.
func LoadFromBytes(data []byte) ([]*character.Character, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}

	chars := make([]*character.Character, 0, len(file.Characters))
	for i, yc := range file.Characters {
		char, err := convertCharacter(file.Guild, yc)
		if err != nil {
			return nil, fmt.Errorf("character %d (%q): %w", i, yc.Name, err)
		}
		chars = append(chars, char)
	}
	return chars, nil
}

func convertCharacter(defaultGuild string, yc yamlCharacter) (*character.Character, error) {
	name := strings.TrimSpace(yc.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if yc.Owner == "" {
		return nil, fmt.Errorf("owner is required")
	}

	guild := yc.Guild
	if guild == "" {
		guild = defaultGuild
	}
	if guild == "" {
		return nil, fmt.Errorf("guild is required")
	}

	kind := shared.CharacterKindPlayer
	switch strings.ToLower(yc.Kind) {
	case "", string(shared.CharacterKindPlayer):
	case string(shared.CharacterKindNPC):
		kind = shared.CharacterKindNPC
	default:
		return nil, fmt.Errorf("unknown kind %q", yc.Kind)
	}

	attrs, err := convertMods(yc.Attributes)
	if err != nil {
		return nil, err
	}

	char := character.New(yc.ID, yc.Owner, guild, name, kind, attrs)
	applyMeter(&char.Momentum, yc.Momentum)
	applyMeter(&char.FireWill, yc.FireWill)
	applyMeter(&char.Chakra, yc.Chakra)
	if yc.AdvantageLevel != nil {
		char.AdvantageLevel.Set(*yc.AdvantageLevel)
	}

	for _, m := range yc.Moves {
		if m == nil || m.Name == "" {
			return nil, fmt.Errorf("move without a name")
		}
		if m.ID == "" {
			m.ID = slug(m.Name)
		}
		if m.NPC != nil && m.NPC.Uses != nil && m.NPC.Uses.Current > m.NPC.Uses.Max {
			m.NPC.Uses.Current = m.NPC.Uses.Max
		}
	}
	char.Moves = yc.Moves

	for _, a := range yc.Abilities {
		if a == nil || a.Name == "" {
			return nil, fmt.Errorf("ability without a name")
		}
		if a.ID == "" {
			a.ID = slug(a.Name)
		}
		a.Recalculate()
	}
	char.Abilities = yc.Abilities

	for _, ycond := range yc.Conditions {
		cond, err := convertCondition(ycond)
		if err != nil {
			return nil, err
		}
		char.Conditions = append(char.Conditions, cond)
	}

	return char, nil
}

func convertCondition(yc yamlCondition) (*character.Condition, error) {
	if yc.Name == "" {
		return nil, fmt.Errorf("condition without a name")
	}
	mods, err := convertMods(yc.AttributeMods)
	if err != nil {
		return nil, fmt.Errorf("condition %q: %w", yc.Name, err)
	}
	cond := &character.Condition{
		Name:          yc.Name,
		Active:        yc.Active,
		AttributeMods: mods,
	}
	for _, cfg := range yc.MoveConfigs {
		cfgMods, err := convertMods(cfg.AttributeMods)
		if err != nil {
			return nil, fmt.Errorf("condition %q: %w", yc.Name, err)
		}
		cond.MoveConfigs = append(cond.MoveConfigs, character.MoveConfig{
			MoveName:      cfg.MoveName,
			AttributeMods: cfgMods,
		})
	}
	return cond, nil
}

func convertMods(in map[string]int) (map[shared.Attribute]int, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[shared.Attribute]int, len(in))
	for key, v := range in {
		attr, ok := shared.ParseAttribute(key)
		if !ok {
			return nil, fmt.Errorf("unknown attribute %q", key)
		}
		out[attr] = v
	}
	return out, nil
}

func applyMeter(m *shared.Meter, ym *yamlMeter) {
	if ym == nil {
		return
	}
	if ym.Max != nil && *ym.Max >= 0 {
		m.Max = *ym.Max
	}
	if ym.Value != nil {
		m.Set(*ym.Value)
	} else if m.Value > m.Max {
		m.Value = m.Max
	}
}

func slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
