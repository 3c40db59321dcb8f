package rolls_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
)

func TestMomentumEligible(t *testing.T) {
	tests := []struct {
		name     string
		momentum int
		action   int
		a, b     int
		want     bool
	}{
		{name: "momentum reaches the die the action missed", momentum: 4, action: 6, a: 4, b: 9, want: true},
		{name: "momentum beats only the die already beaten", momentum: 5, action: 6, a: 4, b: 9, want: false},
		{name: "momentum reaches neither die", momentum: 2, action: 1, a: 4, b: 9, want: false},
		{name: "action already beats both", momentum: 9, action: 10, a: 4, b: 9, want: false},
		{name: "both dice cleared on a failure", momentum: 9, action: 1, a: 4, b: 9, want: true},
		{name: "zero momentum against zero dice", momentum: 0, action: 0, a: 0, b: 0, want: false},
		{name: "momentum equals the missed die", momentum: 9, action: 6, a: 4, b: 9, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := rolls.Classify(tt.action, tt.a, tt.b)
			assert.Equal(t, tt.want, rolls.MomentumEligible(tt.momentum, o))
		})
	}
}

func TestApplyMomentum(t *testing.T) {
	o := rolls.Classify(6, 4, 9)
	assert.Equal(t, rolls.ResultPartialSuccess, o.Result)

	burn := rolls.ApplyMomentum(4, o)

	assert.True(t, burn.ClearedA)
	assert.False(t, burn.ClearedB)
	assert.Equal(t, 0, burn.Outcome.ChallengeATotal)
	assert.Equal(t, 9, burn.Outcome.ChallengeBTotal)
	assert.Equal(t, 6, burn.Outcome.ActionTotal)
	assert.Equal(t, rolls.ResultPartialSuccess, burn.Outcome.Result)
}

func TestApplyMomentum_ClearedDiceNeverMatch(t *testing.T) {
	o := rolls.Classify(1, 3, 5)

	burn := rolls.ApplyMomentum(5, o)

	assert.True(t, burn.ClearedA)
	assert.True(t, burn.ClearedB)
	assert.False(t, burn.Outcome.IsMatch)
	assert.Equal(t, 2, burn.Outcome.SuccessCount)
	assert.Equal(t, rolls.ResultFullSuccess, burn.Outcome.Result)
}
