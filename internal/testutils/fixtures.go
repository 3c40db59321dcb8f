package testutils

import (
	"time"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/resource"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
)

// CreateTestMove creates a player move with result texts
func CreateTestMove(id, name string) *character.Move {
	return &character.Move{
		ID:          id,
		Name:        name,
		Description: "Role +Físico para superar um obstáculo.",
		Results: map[rolls.Result]string{
			rolls.ResultFullSuccess:    "Você consegue.",
			rolls.ResultPartialSuccess: "Você consegue, mas a um custo.",
			rolls.ResultFailure:        "Prepare-se para o pior.",
		},
	}
}

// CreateTestNPCMove creates an NPC move that spends chakra and charges
func CreateTestNPCMove(id, name string, chakraCost, charges int) *character.Move {
	return &character.Move{
		ID:          id,
		Name:        name,
		Description: "Nível //Level//, cargas //MinUses// / //MaxUses//",
		NPC: &character.NPCMove{
			Level:      2,
			ChakraCost: chakraCost,
			Uses: &character.Uses{
				Enabled:          true,
				Current:          charges,
				Max:              charges,
				ConsumesOnSend:   true,
				ReloadChakraCost: 1,
			},
		},
	}
}

// CreateTestAbility creates a level 3 ability with chakra and one pool
func CreateTestAbility(id, name string) *character.Ability {
	a := &character.Ability{
		ID:    id,
		Name:  name,
		Level: 3,
		Chakra: character.AbilityChakra{
			Enabled:  true,
			PerLevel: 1,
			Default:  1,
		},
		Resources: resource.Pools{
			resource.New("res0001", "Pergaminhos", 1, 1, true, 3),
		},
	}
	a.Recalculate()
	a.Chakra.Points = a.Chakra.Max
	for i := range a.Resources {
		a.Resources[i].SetToMax()
	}
	return a
}

// CreateTestCharacter creates a fully formed test character
func CreateTestCharacter(id, ownerID, guildID, name string) *character.Character {
	char := character.New(id, ownerID, guildID, name, shared.CharacterKindPlayer, map[shared.Attribute]int{
		shared.AttributeBody:    2,
		shared.AttributeAgility: 1,
		shared.AttributeHeart:   0,
		shared.AttributeShadow:  -1,
		shared.AttributeCunning: 1,
	})
	char.Moves = []*character.Move{CreateTestMove("move-1", "Superar")}
	char.Abilities = []*character.Ability{CreateTestAbility("ability-1", "Arte Ninja")}
	char.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	char.UpdatedAt = char.CreatedAt
	return char
}

// CreateTestNPC creates an NPC with one charged move
func CreateTestNPC(id, ownerID, guildID, name string) *character.Character {
	char := CreateTestCharacter(id, ownerID, guildID, name)
	char.Kind = shared.CharacterKindNPC
	char.Moves = []*character.Move{CreateTestNPCMove("npc-move-1", "Suiton", 2, 2)}
	return char
}

// CreateTestRecord creates an open roll record for char
func CreateTestRecord(id string, char *character.Character, action, a, b int) *rolls.Record {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &rolls.Record{
		ID:             id,
		GuildID:        char.GuildID,
		ChannelID:      "channel-1",
		CharacterID:    char.ID,
		CharacterName:  char.Name,
		OwnerID:        char.OwnerID,
		MoveID:         "move-1",
		MoveName:       "Superar",
		Attribute:      shared.AttributeBody,
		AttributeValue: char.AttributeValue(shared.AttributeBody),
		Tier:           rolls.TierNormal,
		ActionDice:     []int{action - char.AttributeValue(shared.AttributeBody)},
		ChallengeADice: []int{a},
		ChallengeBDice: []int{b},
		Outcome:        rolls.Classify(action, a, b),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
