package handlers

import (
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	domainCharacter "github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
	moveService "github.com/KirkDiggler/naruto2d6-discord/internal/services/move"
)

func fieldValue(embed *discordgo.MessageEmbed, name string) string {
	for _, f := range embed.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func TestRollEmbed(t *testing.T) {
	level := -3
	record := &rolls.Record{
		ID:             "rec-9",
		CharacterName:  "Hinata",
		MoveName:       "gentle fist",
		Attribute:      shared.AttributeAgility,
		AttributeValue: 2,
		ConditionBonus: 1,
		FlatModifier:   -1,
		Tier:           rolls.TierDisadvantage,
		AdvantageLevel: &level,
		ActionDice:     []int{5},
		ChallengeADice: []int{3, 9},
		ChallengeBDice: []int{2, 4},
		Outcome: rolls.Outcome{
			ActionTotal:     7,
			ChallengeATotal: 9,
			ChallengeBTotal: 4,
			SuccessCount:    2,
			Result:          rolls.ResultFullSuccess,
		},
		Reroll: &rolls.RerollState{Mode: rolls.RerollMomentum, ClearedA: true},
		Notes:  []string{"Hinata spent 3 momentum"},
	}

	embed := RollEmbed(record, nil)

	assert.Equal(t, "Hinata: Gentle Fist", embed.Title)
	assert.Equal(t, "**Sucesso Total**", embed.Description)
	assert.Equal(t, builders.ColorSuccess, embed.Color)
	assert.Equal(t, "[5] +2 → **7**", fieldValue(embed, "Ação"))
	assert.Equal(t, "~~[3, 9]~~ cleared", fieldValue(embed, "Desafio A"))
	assert.Equal(t, "[2, 4] → **4**", fieldValue(embed, "Desafio B"))
	assert.Equal(t, "Agilidade +2, conditions +1, modifier -1", fieldValue(embed, "Atributo"))
	assert.Equal(t, "Desvantagem (NV -3)", fieldValue(embed, "Vantagem"))
	assert.Equal(t, "Hinata spent 3 momentum", fieldValue(embed, "Notas"))
	assert.Equal(t, "roll rec-9 · rerolled with momentum", embed.Footer.Text)
}

func TestRollEmbed_ResultColors(t *testing.T) {
	tests := []struct {
		result rolls.Result
		color  int
	}{
		{rolls.ResultCriticalSuccess, builders.ColorCrit},
		{rolls.ResultFullSuccess, builders.ColorSuccess},
		{rolls.ResultPartialSuccess, builders.ColorPartial},
		{rolls.ResultFailure, builders.ColorError},
		{rolls.ResultCriticalFailure, builders.ColorError},
	}

	for _, tt := range tests {
		t.Run(string(tt.result), func(t *testing.T) {
			record := &rolls.Record{ID: "r", Tier: rolls.TierNormal, Outcome: rolls.Outcome{Result: tt.result}}
			assert.Equal(t, tt.color, RollEmbed(record, nil).Color)
		})
	}
}

func TestRollComponents(t *testing.T) {
	ids := core.NewCustomIDBuilder("move")
	record := &rolls.Record{ID: "rec-1"}

	all := RollComponents(ids, record, moveService.Options{Free: true, Momentum: true, FireWill: true})
	assert.Equal(t, []string{
		"move:reroll:rec-1:free",
		"move:reroll:rec-1:momentum",
		"move:reroll:rec-1:fireWill",
		"move:adjust:rec-1",
	}, buttonIDs(all))

	none := RollComponents(ids, record, moveService.Options{})
	assert.Equal(t, []string{"move:adjust:rec-1"}, buttonIDs(none))
}

func TestNPCMoveComponents(t *testing.T) {
	ids := core.NewCustomIDBuilder("move")
	char := domainCharacter.New("npc-1", testUserID, testGuildID, "Zabuza", shared.CharacterKindNPC, nil)

	t.Run("no reload without charges", func(t *testing.T) {
		mv := &domainCharacter.Move{ID: "mist", Name: "hidden mist", NPC: &domainCharacter.NPCMove{ChakraCost: 2}}
		assert.Equal(t, []string{"move:send:npc-1:mist"}, buttonIDs(NPCMoveComponents(ids, char, mv)))
	})

	t.Run("ids too long for a button", func(t *testing.T) {
		mv := &domainCharacter.Move{ID: strings.Repeat("x", 100), Name: "long"}
		assert.Nil(t, NPCMoveComponents(ids, char, mv))
	})

	t.Run("ids with a separator", func(t *testing.T) {
		mv := &domainCharacter.Move{ID: "a:b", Name: "odd"}
		assert.Nil(t, NPCMoveComponents(ids, char, mv))
	})
}

func TestNPCMoveEmbed_RendersPlaceholders(t *testing.T) {
	char := domainCharacter.New("npc-1", testUserID, testGuildID, "Zabuza", shared.CharacterKindNPC, nil)
	mv := &domainCharacter.Move{
		ID:          "kunai",
		Name:        "kunai volley",
		Description: "Level //Level//, //MinUses// of //MaxUses// volleys left",
		NPC: &domainCharacter.NPCMove{
			Level:      2,
			ChakraCost: 1,
			Uses:       &domainCharacter.Uses{Enabled: true, Current: 1, Max: 3},
		},
	}

	embed := NPCMoveEmbed(char, mv)
	assert.Equal(t, "Level 2, 1 of 3 volleys left", embed.Description)
	assert.Equal(t, "1 / 3", fieldValue(embed, "Charges"))
	assert.Equal(t, "10 / 10", fieldValue(embed, "Chakra"))
}

type fakeCommandAPI struct {
	created []string
	failOn  string
}

func (f *fakeCommandAPI) ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, _ ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	if cmd.Name == f.failOn {
		return nil, errors.New("rate limited")
	}
	f.created = append(f.created, cmd.Name)
	return cmd, nil
}

func TestRegisterCommands(t *testing.T) {
	api := &fakeCommandAPI{}
	require.NoError(t, RegisterCommands(api, "app", "guild"))
	assert.Equal(t, []string{"move", "sheet", "resource", "world"}, api.created)

	err := RegisterCommands(&fakeCommandAPI{failOn: "resource"}, "app", "guild")
	assert.ErrorContains(t, err, "cannot create 'resource' command")
}

func TestCommands_RequiredOptionsComeFirst(t *testing.T) {
	for _, cmd := range Commands() {
		for _, sub := range cmd.Options {
			optional := false
			for _, opt := range sub.Options {
				if !opt.Required {
					optional = true
					continue
				}
				assert.Falsef(t, optional, "/%s %s: required option %q after an optional one", cmd.Name, sub.Name, opt.Name)
			}
			assert.LessOrEqualf(t, len(sub.Options), 25, "/%s %s has too many options", cmd.Name, sub.Name)
		}
	}
}
