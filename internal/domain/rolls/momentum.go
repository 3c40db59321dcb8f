package rolls

// MomentumEligible reports whether burning momentum could improve o.
//
// Burning requires that momentum reaches at least one challenge die, that
// some challenge die is above zero, and that the action does not already
// beat both dice. A burn is also refused when the only die momentum strictly
// beats is one the action already beat while the other stays out of reach.
func MomentumEligible(momentum int, o Outcome) bool {
	a, b, action := o.ChallengeATotal, o.ChallengeBTotal, o.ActionTotal

	reaches := momentum >= a || momentum >= b
	anyAboveZero := a > 0 || b > 0
	alreadyBoth := action > a && action > b
	pointless := (momentum > a && action > a && momentum < b) ||
		(momentum > b && action > b && momentum < a)

	return reaches && anyAboveZero && !alreadyBoth && !pointless
}

// MomentumBurn is the result of applying a momentum burn
type MomentumBurn struct {
	Outcome  Outcome
	ClearedA bool
	ClearedB bool
}

// ApplyMomentum zeroes every challenge die at or below momentum and keeps
// the action total. Callers must check MomentumEligible first and reset the
// character's momentum themselves.
func ApplyMomentum(momentum int, o Outcome) MomentumBurn {
	burn := MomentumBurn{
		ClearedA: o.ChallengeATotal <= momentum,
		ClearedB: o.ChallengeBTotal <= momentum,
	}

	a, b := o.ChallengeATotal, o.ChallengeBTotal
	if burn.ClearedA {
		a = 0
	}
	if burn.ClearedB {
		b = 0
	}

	burn.Outcome = classify(o.ActionTotal, a, b, burn.ClearedA, burn.ClearedB)
	return burn
}
