package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockdice "github.com/KirkDiggler/naruto2d6-discord/internal/dice/mock"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
	"github.com/KirkDiggler/naruto2d6-discord/internal/services"
	characterService "github.com/KirkDiggler/naruto2d6-discord/internal/services/character"
	moveService "github.com/KirkDiggler/naruto2d6-discord/internal/services/move"
)

func TestNewProvider_InMemoryDefaults(t *testing.T) {
	ctx := context.Background()
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{6, 1, 2})

	p := services.NewProvider(&services.ProviderConfig{Roller: roller})
	require.NotNil(t, p.CharacterService)
	require.NotNil(t, p.ResourceService)

	thresholds, err := p.SettingsService.GetThresholds(ctx, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, rolls.DefaultThresholds(), thresholds)

	char, err := p.CharacterService.CreateCharacter(ctx, &characterService.CreateCharacterInput{
		OwnerID: "user-1",
		GuildID: "guild-1",
		Name:    "Rock Lee",
		Attributes: map[shared.Attribute]int{
			shared.AttributeBody:    3,
			shared.AttributeAgility: 2,
			shared.AttributeHeart:   1,
			shared.AttributeShadow:  -1,
			shared.AttributeCunning: 0,
		},
	})
	require.NoError(t, err)

	// the move itself is not on the sheet; Roll must refuse it
	_, err = p.MoveService.Roll(ctx, &moveService.RollInput{
		GuildID:     "guild-1",
		ActorID:     "user-1",
		CharacterID: char.ID,
		MoveRef:     "Lótus Primária",
		Attribute:   shared.AttributeBody,
	})
	assert.Error(t, err)
}
