package rolls

import "fmt"

// Thresholds map a character's numeric advantage level (NV) onto a Tier.
// They are world settings; each one can be tuned per guild.
type Thresholds struct {
	GreatDisadvantage int `json:"great_disadvantage" yaml:"great_disadvantage"`
	Disadvantage      int `json:"disadvantage" yaml:"disadvantage"`
	Advantage         int `json:"advantage" yaml:"advantage"`
	GreatAdvantage    int `json:"great_advantage" yaml:"great_advantage"`
}

// DefaultThresholds returns the stock world settings
func DefaultThresholds() Thresholds {
	return Thresholds{
		GreatDisadvantage: -5,
		Disadvantage:      -2,
		Advantage:         1,
		GreatAdvantage:    4,
	}
}

// Validate requires GreatDisadvantage < Disadvantage < 0 < Advantage < GreatAdvantage
func (t Thresholds) Validate() error {
	if t.GreatDisadvantage >= t.Disadvantage {
		return fmt.Errorf("great disadvantage threshold (%d) must be below disadvantage (%d)", t.GreatDisadvantage, t.Disadvantage)
	}
	if t.Disadvantage >= 0 {
		return fmt.Errorf("disadvantage threshold (%d) must be negative", t.Disadvantage)
	}
	if t.Advantage <= 0 {
		return fmt.Errorf("advantage threshold (%d) must be positive", t.Advantage)
	}
	if t.Advantage >= t.GreatAdvantage {
		return fmt.Errorf("advantage threshold (%d) must be below great advantage (%d)", t.Advantage, t.GreatAdvantage)
	}
	return nil
}

// TierFor reduces an advantage level to a tier. Levels past either extreme
// threshold clamp to the extreme tier.
func (t Thresholds) TierFor(level int) Tier {
	switch {
	case level <= t.GreatDisadvantage:
		return TierGreatDisadvantage
	case level <= t.Disadvantage:
		return TierDisadvantage
	case level >= t.GreatAdvantage:
		return TierGreatAdvantage
	case level >= t.Advantage:
		return TierAdvantage
	default:
		return TierNormal
	}
}
