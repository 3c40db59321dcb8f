package character

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
)

// Move is something a character can attempt. Player moves are rolled; NPC
// moves are sent to chat and may spend chakra or charges.
type Move struct {
	ID          string                  `json:"id" yaml:"id"`
	Name        string                  `json:"name" yaml:"name"`
	Description string                  `json:"description,omitempty" yaml:"description"`
	Results     map[rolls.Result]string `json:"results,omitempty" yaml:"results"`
	NPC         *NPCMove                `json:"npc,omitempty" yaml:"npc"`
}

// NPCMove configures how an NPC move is spent
type NPCMove struct {
	Level      int   `json:"level,omitempty" yaml:"level"`
	ChakraCost int   `json:"chakra_cost,omitempty" yaml:"chakra_cost"`
	Uses       *Uses `json:"uses,omitempty" yaml:"uses"`
}

// Uses are the charges of an NPC move
type Uses struct {
	Enabled          bool `json:"enabled" yaml:"enabled"`
	Current          int  `json:"current" yaml:"current"`
	Max              int  `json:"max" yaml:"max"`
	ConsumesOnSend   bool `json:"consumes_on_send" yaml:"consumes_on_send"`
	ReloadChakraCost int  `json:"reload_chakra_cost,omitempty" yaml:"reload_chakra_cost"`
}

// ResultText is the narrative text for a result, if the move defines one
func (m *Move) ResultText(r rolls.Result) string {
	return m.Results[r]
}

// RenderDescription substitutes the //Level//, //MinUses// and //MaxUses//
// placeholders.
func (m *Move) RenderDescription() string {
	level, current, max := 0, 0, 0
	if m.NPC != nil {
		level = m.NPC.Level
		if m.NPC.Uses != nil {
			current, max = m.NPC.Uses.Current, m.NPC.Uses.Max
		}
	}
	return strings.NewReplacer(
		"//Level//", strconv.Itoa(level),
		"//MinUses//", strconv.Itoa(current),
		"//MaxUses//", strconv.Itoa(max),
	).Replace(m.Description)
}

// UsesEnabled reports whether the move tracks charges
func (m *Move) UsesEnabled() bool {
	return m.NPC != nil && m.NPC.Uses != nil && m.NPC.Uses.Enabled
}

// Send spends what the NPC move costs from chakra. Nothing changes when the
// move cannot be sent; the notice explains why.
func (m *Move) Send(chakra *shared.Meter) *shared.Notice {
	if m.NPC == nil {
		return shared.Warn("%s is not an NPC move", m.Name)
	}
	if m.NPC.ChakraCost > 0 && chakra.Value < m.NPC.ChakraCost {
		return shared.Info("not enough chakra")
	}
	if m.UsesEnabled() && m.NPC.Uses.Current <= 0 {
		return shared.Info("no charges left")
	}

	if m.NPC.ChakraCost > 0 {
		chakra.Spend(m.NPC.ChakraCost)
	}
	if m.UsesEnabled() && m.NPC.Uses.ConsumesOnSend {
		m.NPC.Uses.Current--
	}
	return nil
}

// Reload refills the move's charges. A hard reload is free.
func (m *Move) Reload(chakra *shared.Meter, hard bool) *shared.Notice {
	if !m.UsesEnabled() {
		return shared.Warn("%s has no charges to reload", m.Name)
	}
	uses := m.NPC.Uses
	if uses.Current >= uses.Max {
		return shared.Info("charges are already full")
	}
	if !hard && uses.ReloadChakraCost > 0 {
		if !chakra.Spend(uses.ReloadChakraCost) {
			return shared.Info("not enough chakra to reload")
		}
	}
	uses.Current = uses.Max
	return nil
}

// Clone returns a deep copy
func (m *Move) Clone() *Move {
	if m == nil {
		return nil
	}
	out := *m
	if m.Results != nil {
		out.Results = make(map[rolls.Result]string, len(m.Results))
		for k, v := range m.Results {
			out.Results[k] = v
		}
	}
	if m.NPC != nil {
		npc := *m.NPC
		if m.NPC.Uses != nil {
			uses := *m.NPC.Uses
			npc.Uses = &uses
		}
		out.NPC = &npc
	}
	return &out
}
