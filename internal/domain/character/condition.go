package character

import "github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"

// Condition is a toggleable status. While active it shifts attribute values
// and can grant bonuses to specific moves.
type Condition struct {
	Name          string                   `json:"name" yaml:"name"`
	Active        bool                     `json:"active" yaml:"active"`
	AttributeMods map[shared.Attribute]int `json:"attribute_mods,omitempty" yaml:"attribute_mods"`
	MoveConfigs   []MoveConfig             `json:"move_configs,omitempty" yaml:"move_configs"`
}

// MoveConfig is a bonus a condition grants when a named move is rolled
type MoveConfig struct {
	MoveName      string                   `json:"move_name" yaml:"move_name"`
	AttributeMods map[shared.Attribute]int `json:"attribute_mods" yaml:"attribute_mods"`
}

// Clone returns a deep copy
func (c *Condition) Clone() *Condition {
	if c == nil {
		return nil
	}
	out := *c
	out.AttributeMods = cloneMods(c.AttributeMods)
	if c.MoveConfigs != nil {
		out.MoveConfigs = make([]MoveConfig, len(c.MoveConfigs))
		for i, cfg := range c.MoveConfigs {
			out.MoveConfigs[i] = MoveConfig{MoveName: cfg.MoveName, AttributeMods: cloneMods(cfg.AttributeMods)}
		}
	}
	return &out
}

func cloneMods(in map[shared.Attribute]int) map[shared.Attribute]int {
	if in == nil {
		return nil
	}
	out := make(map[shared.Attribute]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
