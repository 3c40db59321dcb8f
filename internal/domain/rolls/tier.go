package rolls

import "fmt"

// Tier is the advantage tier a move is rolled at. It selects the dice pool
// used for each of the two challenge dice.
type Tier string

const (
	TierGreatAdvantage    Tier = "greatAdvantage"
	TierAdvantage         Tier = "advantage"
	TierNormal            Tier = "normal"
	TierDisadvantage      Tier = "disadvantage"
	TierGreatDisadvantage Tier = "greatDisadvantage"
)

// Tiers lists every tier from best to worst
var Tiers = []Tier{TierGreatAdvantage, TierAdvantage, TierNormal, TierDisadvantage, TierGreatDisadvantage}

// ActionNotation is the action die; attribute and modifiers are added on top
const ActionNotation = "1d6"

var challengeNotations = map[Tier]string{
	TierGreatAdvantage:    "3d10kl1",
	TierAdvantage:         "2d10kl1",
	TierNormal:            "1d10",
	TierDisadvantage:      "2d10kh1",
	TierGreatDisadvantage: "3d10kh1",
}

var tierLabels = map[Tier]string{
	TierGreatAdvantage:    "Vantagem+",
	TierAdvantage:         "Vantagem",
	TierNormal:            "Normal",
	TierDisadvantage:      "Desvantagem",
	TierGreatDisadvantage: "Desvantagem+",
}

// IsValid reports whether t is one of the five tiers
func (t Tier) IsValid() bool {
	_, ok := challengeNotations[t]
	return ok
}

// ChallengeNotation is the draw rule for ONE challenge die; every move rolls
// it twice.
func (t Tier) ChallengeNotation() string {
	if n, ok := challengeNotations[t]; ok {
		return n
	}
	return challengeNotations[TierNormal]
}

// Label is the sheet label of the tier
func (t Tier) Label() string {
	if l, ok := tierLabels[t]; ok {
		return l
	}
	return string(t)
}

// ParseTier accepts the tier key or the dialog shorthands "+advantage" and
// "+disadvantage".
func ParseTier(s string) (Tier, error) {
	switch s {
	case "+advantage":
		return TierGreatAdvantage, nil
	case "+disadvantage":
		return TierGreatDisadvantage, nil
	}
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown advantage tier %q", s)
	}
	return t, nil
}
