package rolls_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		action      int
		a, b        int
		wantResult  rolls.Result
		wantSuccess int
		wantMatch   bool
	}{
		{name: "match under action is critical success", action: 7, a: 5, b: 5, wantResult: rolls.ResultCriticalSuccess, wantSuccess: 2, wantMatch: true},
		{name: "match over action is critical failure", action: 3, a: 5, b: 5, wantResult: rolls.ResultCriticalFailure, wantMatch: true},
		{name: "match equal to action is critical failure", action: 5, a: 5, b: 5, wantResult: rolls.ResultCriticalFailure, wantMatch: true},
		{name: "one die beaten", action: 8, a: 5, b: 9, wantResult: rolls.ResultPartialSuccess, wantSuccess: 1},
		{name: "both dice beaten", action: 8, a: 3, b: 4, wantResult: rolls.ResultFullSuccess, wantSuccess: 2},
		{name: "no die beaten", action: 2, a: 5, b: 9, wantResult: rolls.ResultFailure},
		{name: "tie does not beat a die", action: 5, a: 5, b: 2, wantResult: rolls.ResultPartialSuccess, wantSuccess: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rolls.Classify(tt.action, tt.a, tt.b)

			assert.Equal(t, tt.wantResult, got.Result)
			assert.Equal(t, tt.wantSuccess, got.SuccessCount)
			assert.Equal(t, tt.wantMatch, got.IsMatch)
			assert.Equal(t, tt.action, got.ActionTotal)
		})
	}
}

func TestClassify_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		action := rapid.IntRange(-5, 25).Draw(t, "action")
		a := rapid.IntRange(0, 10).Draw(t, "a")
		b := rapid.IntRange(0, 10).Draw(t, "b")

		got := rolls.Classify(action, a, b)

		if got.SuccessCount < 0 || got.SuccessCount > 2 {
			t.Fatalf("success count %d out of range", got.SuccessCount)
		}
		if got.IsMatch != (a == b) {
			t.Fatalf("match %v for %d/%d", got.IsMatch, a, b)
		}
		if got.IsMatch && got.Result != rolls.ResultCriticalSuccess && got.Result != rolls.ResultCriticalFailure {
			t.Fatalf("match classified as %s", got.Result)
		}
		if got != rolls.Classify(action, a, b) {
			t.Fatal("classification is not deterministic")
		}
	})
}

func TestOutcome_Adjust(t *testing.T) {
	o := rolls.Classify(6, 7, 3)
	assert.Equal(t, rolls.ResultPartialSuccess, o.Result)

	adjusted := o.Adjust(2, 0, -1)

	assert.Equal(t, 8, adjusted.ActionTotal)
	assert.Equal(t, 2, adjusted.ChallengeBTotal)
	assert.Equal(t, rolls.ResultFullSuccess, adjusted.Result)
}
