package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	domainCharacter "github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/resource"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
	mockcharacterservice "github.com/KirkDiggler/naruto2d6-discord/internal/services/character/mock"
	resourceService "github.com/KirkDiggler/naruto2d6-discord/internal/services/resource"
	mockresourceservice "github.com/KirkDiggler/naruto2d6-discord/internal/services/resource/mock"
)

func setupResourceHandler(t *testing.T) (*ResourceHandler, *mockresourceservice.MockService, *mockcharacterservice.MockService) {
	ctrl := gomock.NewController(t)
	resources := mockresourceservice.NewMockService(ctrl)
	chars := mockcharacterservice.NewMockService(ctrl)

	h, err := NewResourceHandler(&ResourceHandlerConfig{
		ResourceService:  resources,
		CharacterService: chars,
	})
	require.NoError(t, err)
	return h, resources, chars
}

func characterWithAbility() (*domainCharacter.Character, *domainCharacter.Ability) {
	ability := &domainCharacter.Ability{
		ID:     "kenjutsu",
		Name:   "kenjutsu",
		Level:  3,
		Chakra: domainCharacter.AbilityChakra{Enabled: true, Points: 2, Max: 5, PerLevel: 1, Default: 2},
		Resources: resource.Pools{
			{ID: "abc1234", Name: "Kunai", Value: 4, MaxValue: 8, ValuePerLevel: 2, DefaultValue: 2, Show: true},
			{ID: "def5678", Name: "Selos", Value: 0, MaxValue: 3, ValuePerLevel: 1, Show: false},
		},
	}
	char := domainCharacter.New("char-1", testUserID, testGuildID, "Tenten", shared.CharacterKindPlayer, nil)
	char.Abilities = []*domainCharacter.Ability{ability}
	return char, ability
}

func TestResourceHandler_Increase(t *testing.T) {
	h, resources, chars := setupResourceHandler(t)
	char, ability := characterWithAbility()

	ctx := core.NewTestInteractionContext().
		AsCommand("resource", "inc").
		WithParam("ability", "kenjutsu").
		WithParam("pool", "abc1234").
		WithParam("amount", float64(2))

	chars.EXPECT().ResolveCharacter(gomock.Any(), testGuildID, testUserID, "").Return(char, nil)
	resources.EXPECT().Increase(gomock.Any(), &resourceService.AmountInput{
		Target: resourceService.Target{
			CharacterID: "char-1",
			AbilityRef:  "kenjutsu",
			ActorID:     testUserID,
		},
		PoolID: "abc1234",
		Amount: 2,
	}).Return(&resourceService.Result{Character: char, Ability: ability, Pool: &ability.Resources[0], Applied: true}, nil)

	result, err := h.Increase(ctx.InteractionContext)
	require.NoError(t, err)

	embed := result.Response.Embeds[0]
	assert.Equal(t, "Tenten: Kenjutsu", embed.Title)
	var pools string
	for _, f := range embed.Fields {
		if f.Name == "Recursos" {
			pools = f.Value
		}
	}
	assert.Contains(t, pools, "`abc1234` Kunai: **4 / 8** (+2 per level, base 2)")
	assert.Contains(t, pools, "`def5678` Selos: **0 / 3** (+1 per level, base 0) · hidden")
}

func TestResourceHandler_RefusedOperations(t *testing.T) {
	tests := []struct {
		name    string
		result  *resourceService.Result
		content string
	}{
		{
			name:    "notice from the pool",
			result:  &resourceService.Result{Notice: shared.Info("Kunai is already at maximum")},
			content: "ℹ️ Kunai is already at maximum",
		},
		{
			name:    "unknown pool",
			result:  &resourceService.Result{},
			content: "ℹ️ nothing changed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, resources, chars := setupResourceHandler(t)
			char, _ := characterWithAbility()

			ctx := core.NewTestInteractionContext().
				AsCommand("resource", "max").
				WithParam("ability", "kenjutsu").
				WithParam("pool", "abc1234")

			chars.EXPECT().ResolveCharacter(gomock.Any(), testGuildID, testUserID, "").Return(char, nil)
			resources.EXPECT().SetToMax(gomock.Any(), gomock.Any()).Return(tt.result, nil)

			result, err := h.Max(ctx.InteractionContext)
			require.NoError(t, err)
			assert.True(t, result.Response.Ephemeral)
			assert.Equal(t, tt.content, result.Response.Content)
		})
	}
}

func TestResourceHandler_AddDefaultsToShown(t *testing.T) {
	h, resources, chars := setupResourceHandler(t)
	char, ability := characterWithAbility()

	ctx := core.NewTestInteractionContext().
		AsCommand("resource", "add").
		WithParam("ability", "kenjutsu").
		WithParam("name", "Pergaminhos").
		WithParam("per_level", float64(1))

	chars.EXPECT().ResolveCharacter(gomock.Any(), testGuildID, testUserID, "").Return(char, nil)
	resources.EXPECT().AddResource(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input *resourceService.AddResourceInput) (*resourceService.Result, error) {
			assert.Equal(t, "Pergaminhos", input.Name)
			assert.Equal(t, 1, input.ValuePerLevel)
			assert.True(t, input.Show)
			return &resourceService.Result{Character: char, Ability: ability, Applied: true}, nil
		})

	_, err := h.Add(ctx.InteractionContext)
	require.NoError(t, err)
}

func TestResourceHandler_SetField(t *testing.T) {
	h, resources, chars := setupResourceHandler(t)
	char, ability := characterWithAbility()

	ctx := core.NewTestInteractionContext().
		AsCommand("resource", "set").
		WithParam("ability", "kenjutsu").
		WithParam("pool", "abc1234").
		WithParam("field", "valuePerLevel").
		WithParam("value", "3")

	chars.EXPECT().ResolveCharacter(gomock.Any(), testGuildID, testUserID, "").Return(char, nil)
	resources.EXPECT().UpdateField(gomock.Any(), &resourceService.UpdateFieldInput{
		Target: resourceService.Target{CharacterID: "char-1", AbilityRef: "kenjutsu", ActorID: testUserID},
		PoolID: "abc1234",
		Field:  resource.FieldValuePerLevel,
		Raw:    "3",
	}).Return(&resourceService.Result{Character: char, Ability: ability, Applied: true}, nil)

	_, err := h.Set(ctx.InteractionContext)
	require.NoError(t, err)
}

func TestResourceHandler_LevelAndChakra(t *testing.T) {
	h, resources, chars := setupResourceHandler(t)
	char, ability := characterWithAbility()
	target := resourceService.Target{CharacterID: "char-1", AbilityRef: "kenjutsu", ActorID: testUserID}

	chars.EXPECT().ResolveCharacter(gomock.Any(), testGuildID, testUserID, "").Return(char, nil).Times(3)
	resources.EXPECT().SetAbilityLevel(gomock.Any(), &resourceService.LevelInput{Target: target, Level: 5}).
		Return(&resourceService.Result{Character: char, Ability: ability, Applied: true}, nil)
	resources.EXPECT().AdjustChakra(gomock.Any(), &resourceService.AmountInput{Target: target, Amount: -1}).
		Return(&resourceService.Result{Character: char, Ability: ability, Applied: true}, nil)
	resources.EXPECT().RefillChakra(gomock.Any(), &target).
		Return(&resourceService.Result{Character: char, Ability: ability, Notice: shared.Info("not enough chakra")}, nil)

	_, err := h.Level(core.NewTestInteractionContext().
		AsCommand("resource", "level").
		WithParam("ability", "kenjutsu").
		WithParam("level", float64(5)).InteractionContext)
	require.NoError(t, err)

	_, err = h.Chakra(core.NewTestInteractionContext().
		AsCommand("resource", "chakra").
		WithParam("ability", "kenjutsu").
		WithParam("amount", float64(-1)).InteractionContext)
	require.NoError(t, err)

	result, err := h.Refill(core.NewTestInteractionContext().
		AsCommand("resource", "refill").
		WithParam("ability", "kenjutsu").InteractionContext)
	require.NoError(t, err)
	assert.Equal(t, "ℹ️ not enough chakra", result.Response.Content)
}

func TestResourceHandler_Show(t *testing.T) {
	h, _, chars := setupResourceHandler(t)
	char, _ := characterWithAbility()

	chars.EXPECT().ResolveCharacter(gomock.Any(), testGuildID, testUserID, "").Return(char, nil).Times(2)

	result, err := h.Show(core.NewTestInteractionContext().
		AsCommand("resource", "show").
		WithParam("ability", "Kenjutsu").InteractionContext)
	require.NoError(t, err)
	assert.Equal(t, "ability kenjutsu", result.Response.Embeds[0].Footer.Text)

	_, err = h.Show(core.NewTestInteractionContext().
		AsCommand("resource", "show").
		WithParam("ability", "taijutsu").InteractionContext)
	assert.True(t, apperr.IsNotFound(err))
}

func TestResourceHandler_PermissionDenied(t *testing.T) {
	h, resources, chars := setupResourceHandler(t)
	char, _ := characterWithAbility()

	ctx := core.NewTestInteractionContext().
		WithUserID("someone-else").
		AsCommand("resource", "zero").
		WithParam("ability", "kenjutsu").
		WithParam("pool", "abc1234")

	chars.EXPECT().ResolveCharacter(gomock.Any(), testGuildID, "someone-else", "").Return(char, nil)
	resources.EXPECT().SetToZero(gomock.Any(), gomock.Any()).
		Return(nil, apperr.PermissionDenied("only the character's owner or an arbiter can change its resources"))

	_, err := h.Zero(ctx.InteractionContext)
	assert.Equal(t, core.ErrorCodeForbidden, core.FromError(err).Code)
}
