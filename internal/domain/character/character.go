package character

import (
	"strings"
	"time"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
)

// Starting ranges for newly created characters
const (
	DefaultMomentumMax       = 10
	DefaultFireWillMax       = 3
	DefaultChakraMax         = 10
	DefaultAdvantageLevelMin = -6
	DefaultAdvantageLevelMax = 6
)

// Character is a player character or an NPC sheet owned by a Discord user
// within one guild.
type Character struct {
	ID      string               `json:"id"`
	OwnerID string               `json:"owner_id"`
	GuildID string               `json:"guild_id"`
	Name    string               `json:"name"`
	Kind    shared.CharacterKind `json:"kind"`

	// Attributes holds base values; conditions are applied on read
	Attributes map[shared.Attribute]int `json:"attributes"`

	Momentum       shared.Meter `json:"momentum"`
	FireWill       shared.Meter `json:"fire_will"`
	Chakra         shared.Meter `json:"chakra"`
	AdvantageLevel shared.Scale `json:"advantage_level"`

	Moves      []*Move      `json:"moves,omitempty"`
	Abilities  []*Ability   `json:"abilities,omitempty"`
	Conditions []*Condition `json:"conditions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New builds a character with the starting ranges filled in
func New(id, ownerID, guildID, name string, kind shared.CharacterKind, attrs map[shared.Attribute]int) *Character {
	base := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, a := range shared.Attributes {
		base[a] = attrs[a]
	}
	return &Character{
		ID:             id,
		OwnerID:        ownerID,
		GuildID:        guildID,
		Name:           name,
		Kind:           kind,
		Attributes:     base,
		Momentum:       shared.Meter{Max: DefaultMomentumMax},
		FireWill:       shared.Meter{Value: DefaultFireWillMax, Max: DefaultFireWillMax},
		Chakra:         shared.Meter{Value: DefaultChakraMax, Max: DefaultChakraMax},
		AdvantageLevel: shared.Scale{Min: DefaultAdvantageLevelMin, Max: DefaultAdvantageLevelMax},
	}
}

// AttributeValue is the base attribute plus every active condition modifier
func (c *Character) AttributeValue(attr shared.Attribute) int {
	v := c.Attributes[attr]
	for _, cond := range c.Conditions {
		if cond.Active {
			v += cond.AttributeMods[attr]
		}
	}
	return v
}

// ConditionBonus sums the per-move modifiers active conditions grant to
// moveName rolled with attr.
func (c *Character) ConditionBonus(moveName string, attr shared.Attribute) int {
	bonus := 0
	for _, cond := range c.Conditions {
		if !cond.Active {
			continue
		}
		for _, cfg := range cond.MoveConfigs {
			if strings.EqualFold(cfg.MoveName, moveName) {
				bonus += cfg.AttributeMods[attr]
			}
		}
	}
	return bonus
}

// FindMove looks a move up by id or, failing that, by name
func (c *Character) FindMove(ref string) (*Move, bool) {
	for _, m := range c.Moves {
		if m.ID == ref {
			return m, true
		}
	}
	for _, m := range c.Moves {
		if strings.EqualFold(m.Name, ref) {
			return m, true
		}
	}
	return nil, false
}

// FindAbility looks an ability up by id or, failing that, by name
func (c *Character) FindAbility(ref string) (*Ability, bool) {
	for _, a := range c.Abilities {
		if a.ID == ref {
			return a, true
		}
	}
	for _, a := range c.Abilities {
		if strings.EqualFold(a.Name, ref) {
			return a, true
		}
	}
	return nil, false
}

// FindCondition looks a condition up by name
func (c *Character) FindCondition(name string) (*Condition, bool) {
	for _, cond := range c.Conditions {
		if strings.EqualFold(cond.Name, name) {
			return cond, true
		}
	}
	return nil, false
}

// Clone returns a deep copy. Services mutate clones and only swap them in
// once the change has been saved.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c

	out.Attributes = make(map[shared.Attribute]int, len(c.Attributes))
	for k, v := range c.Attributes {
		out.Attributes[k] = v
	}

	if c.Moves != nil {
		out.Moves = make([]*Move, len(c.Moves))
		for i, m := range c.Moves {
			out.Moves[i] = m.Clone()
		}
	}
	if c.Abilities != nil {
		out.Abilities = make([]*Ability, len(c.Abilities))
		for i, a := range c.Abilities {
			out.Abilities[i] = a.Clone()
		}
	}
	if c.Conditions != nil {
		out.Conditions = make([]*Condition, len(c.Conditions))
		for i, cond := range c.Conditions {
			out.Conditions[i] = cond.Clone()
		}
	}
	return &out
}
