package rolls

import (
	"fmt"

	"github.com/KirkDiggler/naruto2d6-discord/internal/dice"
)

// Draw is one complete set of dice for a move: the action die and the two
// challenge dice, drawn in that order.
type Draw struct {
	Action     *dice.RollResult
	ChallengeA *dice.RollResult
	ChallengeB *dice.RollResult
}

// Outcome classifies the drawn totals
func (d Draw) Outcome() Outcome {
	return Classify(d.Action.Total, d.ChallengeA.Total, d.ChallengeB.Total)
}

// RollMove draws the action die with actionBonus added, then two challenge
// dice with the draw rule of tier.
func RollMove(roller dice.Roller, tier Tier, actionBonus int) (Draw, error) {
	action, err := roller.RollExpression(dice.MustParse(ActionNotation).WithModifier(actionBonus))
	if err != nil {
		return Draw{}, fmt.Errorf("failed to roll action die: %w", err)
	}

	challenge := dice.MustParse(tier.ChallengeNotation())
	a, err := roller.RollExpression(challenge)
	if err != nil {
		return Draw{}, fmt.Errorf("failed to roll challenge die A: %w", err)
	}
	b, err := roller.RollExpression(challenge)
	if err != nil {
		return Draw{}, fmt.Errorf("failed to roll challenge die B: %w", err)
	}

	return Draw{Action: action, ChallengeA: a, ChallengeB: b}, nil
}
