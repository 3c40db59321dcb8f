package character_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/resource"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
)

func TestAbility_Rank(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Genin"},
		{2, "Genin"},
		{3, "Chunin"},
		{5, "Jounin Especial"},
		{7, "Jounin"},
		{8, "Jounin"},
		{9, "Kage"},
		{12, "Kage"},
	}
	for _, tt := range tests {
		a := &character.Ability{Level: tt.level}
		assert.Equal(t, tt.want, a.Rank(), "level %d", tt.level)
	}
}

func TestAbility_SetLevel(t *testing.T) {
	scrolls := resource.New("aaaaaaa", "Pergaminhos", 1, 1, true, 4)
	scrolls.SetToMax()
	a := &character.Ability{
		Name:      "Selos",
		Level:     4,
		Chakra:    character.AbilityChakra{Enabled: true, Points: 9, Max: 9, PerLevel: 2, Default: 1},
		Resources: resource.Pools{scrolls},
	}

	a.SetLevel(2)

	assert.Equal(t, 5, a.Chakra.Max)
	assert.Equal(t, 5, a.Chakra.Points)
	assert.Equal(t, resource.Int(3), a.Resources[0].MaxValue)
	assert.Equal(t, resource.Int(3), a.Resources[0].Value)
}

func TestAbility_AdjustChakra(t *testing.T) {
	a := &character.Ability{Name: "Selos", Chakra: character.AbilityChakra{Enabled: true, Points: 2, Max: 4}}

	notice := a.AdjustChakra(-3)
	require.NotNil(t, notice)
	assert.Equal(t, "chakra cannot be less than 0", notice.Message)

	notice = a.AdjustChakra(3)
	require.NotNil(t, notice)
	assert.Equal(t, "chakra cannot exceed 4", notice.Message)
	assert.Equal(t, 2, a.Chakra.Points)

	assert.Nil(t, a.AdjustChakra(2))
	assert.Equal(t, 4, a.Chakra.Points)
}

func TestAbility_RefillChakra(t *testing.T) {
	a := &character.Ability{Name: "Selos", Chakra: character.AbilityChakra{Enabled: true, Points: 1, Max: 4}}

	empty := shared.Meter{Value: 0, Max: 10}
	require.NotNil(t, a.RefillChakra(&empty))
	assert.Equal(t, 1, a.Chakra.Points)

	actor := shared.Meter{Value: 3, Max: 10}
	require.Nil(t, a.RefillChakra(&actor))
	assert.Equal(t, 4, a.Chakra.Points)
	assert.Equal(t, 2, actor.Value)

	require.NotNil(t, a.RefillChakra(&actor), "already full")
	assert.Equal(t, 2, actor.Value)
}

func TestAbility_UnlockedDescriptions(t *testing.T) {
	a := &character.Ability{Level: 3, LevelDescriptions: []character.LevelDescription{
		{Level: 1, Description: "um"}, {Level: 3, Description: "três"}, {Level: 5, Description: "cinco"},
	}}

	assert.Len(t, a.UnlockedDescriptions(), 2)
}

func TestAbility_DecodeCoercesQuotedNumbers(t *testing.T) {
	want := character.AbilityChakra{Enabled: true, Points: 2, Max: 5, PerLevel: 1, Default: 2}

	t.Run("json", func(t *testing.T) {
		var a character.Ability
		err := json.Unmarshal([]byte(`{
			"id": "selos", "name": "Selos", "level": "3",
			"chakra": {"enabled": true, "points": "2", "max": 5, "per_level": "+1", "default": "2"},
			"resources": [{"id": "aaaaaaa", "name": "Pergaminhos", "value": "1", "maxValue": 4}]
		}`), &a)
		require.NoError(t, err)
		assert.Equal(t, 3, a.Level)
		assert.Equal(t, want, a.Chakra)
		require.Len(t, a.Resources, 1)
		assert.Equal(t, resource.Int(1), a.Resources[0].Value)
	})

	t.Run("yaml", func(t *testing.T) {
		var a character.Ability
		err := yaml.Unmarshal([]byte(`
id: selos
name: Selos
level: "3"
chakra:
  enabled: true
  points: "2"
  max: 5
  per_level: "+1"
  default: "2"
`), &a)
		require.NoError(t, err)
		assert.Equal(t, 3, a.Level)
		assert.Equal(t, want, a.Chakra)
	})

	t.Run("not a number", func(t *testing.T) {
		var a character.Ability
		assert.Error(t, json.Unmarshal([]byte(`{"level": "high"}`), &a))
	})
}
