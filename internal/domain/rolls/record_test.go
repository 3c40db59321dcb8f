package rolls_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockdice "github.com/KirkDiggler/naruto2d6-discord/internal/dice/mock"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
)

func TestRecord_ApplyReroll(t *testing.T) {
	r := &rolls.Record{
		ID:             "r-1",
		ActionDice:     []int{3},
		ChallengeADice: []int{7},
		ChallengeBDice: []int{2},
		Outcome:        rolls.Classify(5, 7, 2),
	}
	before := r.Clone()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	r.ApplyReroll(rolls.RerollState{Mode: rolls.RerollFree, ActorID: "u-1", At: at},
		rolls.Classify(8, 1, 2), []int{6}, []int{1}, []int{2})

	require.True(t, r.Terminal())
	assert.False(t, before.Terminal())
	assert.Equal(t, before.Outcome, r.Reroll.Previous)
	assert.Equal(t, rolls.ResultFullSuccess, r.Outcome.Result)
	assert.Equal(t, []int{6}, r.ActionDice)
	assert.Equal(t, []int{3}, before.ActionDice)
	assert.Equal(t, at, r.UpdatedAt)
}

func TestRecord_ApplyAdjustment(t *testing.T) {
	r := &rolls.Record{Outcome: rolls.Classify(5, 7, 2)}

	r.ApplyAdjustment(rolls.Adjustment{ActorID: "gm", Action: 3})

	assert.Equal(t, 8, r.Outcome.ActionTotal)
	assert.Equal(t, rolls.ResultFullSuccess, r.Outcome.Result)
	assert.Len(t, r.Adjustments, 1)
	assert.False(t, r.Terminal())
}

func TestRecord_ApplyAdjustment_KeepsMomentumClears(t *testing.T) {
	before := rolls.Classify(3, 5, 5)
	require.Equal(t, rolls.ResultCriticalFailure, before.Result)

	burn := rolls.ApplyMomentum(5, before)
	require.True(t, burn.ClearedA)
	require.True(t, burn.ClearedB)

	r := &rolls.Record{Outcome: before}
	r.ApplyReroll(rolls.RerollState{Mode: rolls.RerollMomentum, ClearedA: burn.ClearedA, ClearedB: burn.ClearedB},
		burn.Outcome, nil, nil, nil)
	require.Equal(t, rolls.ResultFullSuccess, r.Outcome.Result)

	r.ApplyAdjustment(rolls.Adjustment{ActorID: "gm", Action: 1, ChallengeB: 4})

	assert.Equal(t, 4, r.Outcome.ActionTotal)
	assert.Equal(t, 0, r.Outcome.ChallengeATotal)
	assert.Equal(t, 0, r.Outcome.ChallengeBTotal)
	assert.False(t, r.Outcome.IsMatch)
	assert.Equal(t, 2, r.Outcome.SuccessCount)
	assert.Equal(t, rolls.ResultFullSuccess, r.Outcome.Result)
}

func TestRecord_ApplyAdjustment_PartialClear(t *testing.T) {
	r := &rolls.Record{Outcome: rolls.Classify(2, 3, 9)}
	burn := rolls.ApplyMomentum(4, r.Outcome)
	r.ApplyReroll(rolls.RerollState{Mode: rolls.RerollMomentum, ClearedA: burn.ClearedA, ClearedB: burn.ClearedB},
		burn.Outcome, nil, nil, nil)
	require.Equal(t, rolls.ResultPartialSuccess, r.Outcome.Result)

	r.ApplyAdjustment(rolls.Adjustment{ActorID: "gm", ChallengeB: -9})

	assert.Equal(t, 0, r.Outcome.ChallengeBTotal)
	assert.False(t, r.Outcome.IsMatch, "a cleared die never forms a match")
	assert.Equal(t, rolls.ResultFullSuccess, r.Outcome.Result)
}

func TestParseModifier(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "+2", want: 2},
		{in: "-1", want: -1},
		{in: " 3 ", want: 3},
		{in: "+ 4", want: 4},
		{in: "two", wantErr: true},
	}

	for _, tt := range tests {
		got, err := rolls.ParseModifier(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestRollMove(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	// action 4, challenge A draws 9 3 7 (keep lowest), challenge B draws 2 8 5
	roller.SetRolls([]int{4, 9, 3, 7, 2, 8, 5})

	draw, err := rolls.RollMove(roller, rolls.TierGreatAdvantage, 2)
	require.NoError(t, err)

	assert.Equal(t, 6, draw.Action.Total)
	assert.Equal(t, 3, draw.ChallengeA.Total)
	assert.Equal(t, 2, draw.ChallengeB.Total)
	assert.Equal(t, rolls.ResultFullSuccess, draw.Outcome().Result)
	assert.Equal(t, 7, roller.Used())
}

func TestRollMove_RollerExhausted(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{4, 9})

	_, err := rolls.RollMove(roller, rolls.TierNormal, 0)
	assert.Error(t, err)
}
