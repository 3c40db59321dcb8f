package character

import (
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/resource"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
)

// Ability is a levelled technique. It may hold its own chakra points and a
// list of resource pools whose maximums follow its level.
type Ability struct {
	ID                string             `json:"id" yaml:"id"`
	Name              string             `json:"name" yaml:"name"`
	Level             int                `json:"level" yaml:"level"`
	Description       string             `json:"description,omitempty" yaml:"description"`
	LevelDescriptions []LevelDescription `json:"level_descriptions,omitempty" yaml:"level_descriptions"`
	Chakra            AbilityChakra      `json:"chakra" yaml:"chakra"`
	Resources         resource.Pools     `json:"resources,omitempty" yaml:"resources"`
}

// LevelDescription is the text unlocked at a level
type LevelDescription struct {
	Level       int    `json:"level" yaml:"level"`
	Description string `json:"description" yaml:"description"`
}

// AbilityChakra is the optional chakra reserve of an ability
type AbilityChakra struct {
	Enabled  bool `json:"enabled" yaml:"enabled"`
	Points   int  `json:"points" yaml:"points"`
	Max      int  `json:"max" yaml:"max"`
	PerLevel int  `json:"per_level" yaml:"per_level"`
	Default  int  `json:"default" yaml:"default"`
}

var ranks = []struct {
	level int
	name  string
}{
	{9, "Kage"},
	{7, "Jounin"},
	{5, "Jounin Especial"},
	{3, "Chunin"},
	{0, "Genin"},
}

// Rank names the ability's tier from its level
func (a *Ability) Rank() string {
	for _, r := range ranks {
		if a.Level >= r.level {
			return r.name
		}
	}
	return "Genin"
}

// EffectiveLevel is the level used for maximums; an unset level counts as 1
func (a *Ability) EffectiveLevel() int {
	if a.Level <= 0 {
		return 1
	}
	return a.Level
}

// UnlockedDescriptions returns the level texts at or below the current level
func (a *Ability) UnlockedDescriptions() []LevelDescription {
	var out []LevelDescription
	for _, d := range a.LevelDescriptions {
		if d.Level <= a.Level {
			out = append(out, d)
		}
	}
	return out
}

// SetLevel changes the level and recomputes every maximum
func (a *Ability) SetLevel(level int) {
	a.Level = level
	a.Recalculate()
}

// Recalculate recomputes chakra and resource maximums from the level,
// clamping current values down.
func (a *Ability) Recalculate() {
	level := a.EffectiveLevel()
	a.Resources.RecalculateAll(level)
	if a.Chakra.Enabled {
		a.Chakra.Max = resource.MaxFor(level, a.Chakra.PerLevel, a.Chakra.Default)
		if a.Chakra.Points > a.Chakra.Max {
			a.Chakra.Points = a.Chakra.Max
		}
	}
}

// AdjustChakra adds delta to the ability's chakra points. Results outside
// [0, Max] are refused.
func (a *Ability) AdjustChakra(delta int) *shared.Notice {
	if !a.Chakra.Enabled {
		return shared.Warn("%s does not use chakra points", a.Name)
	}
	next := a.Chakra.Points + delta
	if next < 0 {
		return shared.Warn("chakra cannot be less than 0")
	}
	if next > a.Chakra.Max {
		return shared.Warn("chakra cannot exceed %d", a.Chakra.Max)
	}
	a.Chakra.Points = next
	return nil
}

// RefillChakra fills the ability's chakra at the cost of one point of the
// character's own chakra.
func (a *Ability) RefillChakra(actorChakra *shared.Meter) *shared.Notice {
	if !a.Chakra.Enabled {
		return shared.Warn("%s does not use chakra points", a.Name)
	}
	if a.Chakra.Points >= a.Chakra.Max {
		return shared.Info("%s chakra is already full", a.Name)
	}
	if !actorChakra.Spend(1) {
		return shared.Info("not enough chakra")
	}
	a.Chakra.Points = a.Chakra.Max
	return nil
}

// Clone returns a deep copy
func (a *Ability) Clone() *Ability {
	if a == nil {
		return nil
	}
	out := *a
	out.LevelDescriptions = append([]LevelDescription(nil), a.LevelDescriptions...)
	out.Resources = a.Resources.Clone()
	return &out
}
