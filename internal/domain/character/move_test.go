package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
)

func npcMove(cost int, uses *character.Uses) *character.Move {
	return &character.Move{ID: "m-1", Name: "Suiton", NPC: &character.NPCMove{Level: 3, ChakraCost: cost, Uses: uses}}
}

func TestMove_Send(t *testing.T) {
	tests := []struct {
		name        string
		move        *character.Move
		chakra      int
		wantNotice  string
		wantChakra  int
		wantCurrent int
	}{
		{
			name:        "spends chakra and a charge",
			move:        npcMove(2, &character.Uses{Enabled: true, Current: 2, Max: 3, ConsumesOnSend: true}),
			chakra:      5,
			wantChakra:  3,
			wantCurrent: 1,
		},
		{
			name:        "not enough chakra",
			move:        npcMove(6, &character.Uses{Enabled: true, Current: 2, Max: 3, ConsumesOnSend: true}),
			chakra:      5,
			wantNotice:  "not enough chakra",
			wantChakra:  5,
			wantCurrent: 2,
		},
		{
			name:        "no charges left",
			move:        npcMove(1, &character.Uses{Enabled: true, Current: 0, Max: 3, ConsumesOnSend: true}),
			chakra:      5,
			wantNotice:  "no charges left",
			wantChakra:  5,
			wantCurrent: 0,
		},
		{
			name:        "charges kept when not consumed on send",
			move:        npcMove(0, &character.Uses{Enabled: true, Current: 2, Max: 3}),
			chakra:      5,
			wantChakra:  5,
			wantCurrent: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chakra := shared.Meter{Value: tt.chakra, Max: 10}

			notice := tt.move.Send(&chakra)

			if tt.wantNotice != "" {
				require.NotNil(t, notice)
				assert.Equal(t, tt.wantNotice, notice.Message)
			} else {
				assert.Nil(t, notice)
			}
			assert.Equal(t, tt.wantChakra, chakra.Value)
			assert.Equal(t, tt.wantCurrent, tt.move.NPC.Uses.Current)
		})
	}
}

func TestMove_Reload(t *testing.T) {
	t.Run("pays chakra", func(t *testing.T) {
		m := npcMove(0, &character.Uses{Enabled: true, Current: 0, Max: 3, ReloadChakraCost: 2})
		chakra := shared.Meter{Value: 5, Max: 10}

		require.Nil(t, m.Reload(&chakra, false))
		assert.Equal(t, 3, m.NPC.Uses.Current)
		assert.Equal(t, 3, chakra.Value)
	})

	t.Run("hard reload is free", func(t *testing.T) {
		m := npcMove(0, &character.Uses{Enabled: true, Current: 1, Max: 3, ReloadChakraCost: 2})
		chakra := shared.Meter{Value: 0, Max: 10}

		require.Nil(t, m.Reload(&chakra, true))
		assert.Equal(t, 3, m.NPC.Uses.Current)
		assert.Equal(t, 0, chakra.Value)
	})

	t.Run("refused when full", func(t *testing.T) {
		m := npcMove(0, &character.Uses{Enabled: true, Current: 3, Max: 3})
		chakra := shared.Meter{Value: 5, Max: 10}

		notice := m.Reload(&chakra, false)
		require.NotNil(t, notice)
		assert.Equal(t, "charges are already full", notice.Message)
	})

	t.Run("refused without chakra", func(t *testing.T) {
		m := npcMove(0, &character.Uses{Enabled: true, Current: 0, Max: 3, ReloadChakraCost: 2})
		chakra := shared.Meter{Value: 1, Max: 10}

		require.NotNil(t, m.Reload(&chakra, false))
		assert.Equal(t, 0, m.NPC.Uses.Current)
		assert.Equal(t, 1, chakra.Value)
	})
}

func TestMove_RenderDescription(t *testing.T) {
	m := npcMove(0, &character.Uses{Enabled: true, Current: 1, Max: 4})
	m.Description = "Nível //Level//: //MinUses// de //MaxUses// cargas"

	assert.Equal(t, "Nível 3: 1 de 4 cargas", m.RenderDescription())
}
