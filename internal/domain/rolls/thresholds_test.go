package rolls_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
)

func TestThresholds_TierFor(t *testing.T) {
	th := rolls.DefaultThresholds()
	require.NoError(t, th.Validate())

	tests := []struct {
		level int
		want  rolls.Tier
	}{
		{level: -99, want: rolls.TierGreatDisadvantage},
		{level: -5, want: rolls.TierGreatDisadvantage},
		{level: -4, want: rolls.TierDisadvantage},
		{level: -2, want: rolls.TierDisadvantage},
		{level: -1, want: rolls.TierNormal},
		{level: 0, want: rolls.TierNormal},
		{level: 1, want: rolls.TierAdvantage},
		{level: 3, want: rolls.TierAdvantage},
		{level: 4, want: rolls.TierGreatAdvantage},
		{level: 99, want: rolls.TierGreatAdvantage},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, th.TierFor(tt.level), "level %d", tt.level)
	}
}

func TestThresholds_Validate(t *testing.T) {
	tests := []struct {
		name    string
		th      rolls.Thresholds
		wantErr bool
	}{
		{name: "defaults", th: rolls.DefaultThresholds()},
		{name: "great disadvantage not below disadvantage", th: rolls.Thresholds{GreatDisadvantage: -2, Disadvantage: -2, Advantage: 1, GreatAdvantage: 4}, wantErr: true},
		{name: "disadvantage not negative", th: rolls.Thresholds{GreatDisadvantage: -5, Disadvantage: 0, Advantage: 1, GreatAdvantage: 4}, wantErr: true},
		{name: "advantage not positive", th: rolls.Thresholds{GreatDisadvantage: -5, Disadvantage: -2, Advantage: 0, GreatAdvantage: 4}, wantErr: true},
		{name: "great advantage not above advantage", th: rolls.Thresholds{GreatDisadvantage: -5, Disadvantage: -2, Advantage: 4, GreatAdvantage: 4}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.th.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTier_ChallengeNotation(t *testing.T) {
	assert.Equal(t, "3d10kl1", rolls.TierGreatAdvantage.ChallengeNotation())
	assert.Equal(t, "2d10kl1", rolls.TierAdvantage.ChallengeNotation())
	assert.Equal(t, "1d10", rolls.TierNormal.ChallengeNotation())
	assert.Equal(t, "2d10kh1", rolls.TierDisadvantage.ChallengeNotation())
	assert.Equal(t, "3d10kh1", rolls.TierGreatDisadvantage.ChallengeNotation())
}

func TestParseTier(t *testing.T) {
	tier, err := rolls.ParseTier("+advantage")
	require.NoError(t, err)
	assert.Equal(t, rolls.TierGreatAdvantage, tier)

	tier, err = rolls.ParseTier("disadvantage")
	require.NoError(t, err)
	assert.Equal(t, rolls.TierDisadvantage, tier)

	_, err = rolls.ParseTier("sideways")
	assert.Error(t, err)
}
