package move

import (
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
)

// Options are the reroll controls a roll message shows
type Options struct {
	Free     bool
	Momentum bool
	FireWill bool
}

// Any reports whether at least one control is offered
func (o Options) Any() bool {
	return o.Free || o.Momentum || o.FireWill
}

// OptionsFor decides the controls for record. Terminal records offer none.
// The free control is always offered and checked on click; momentum is
// offered only when a burn could change the result.
func OptionsFor(record *rolls.Record, char *character.Character) Options {
	if record.Terminal() {
		return Options{}
	}
	return Options{
		Free:     true,
		Momentum: rolls.MomentumEligible(char.Momentum.Value, record.Outcome),
		FireWill: true,
	}
}
