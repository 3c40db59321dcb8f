package builders

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
)

func TestEmbedBuilder_Fields(t *testing.T) {
	embed := NewEmbed().
		Title("Rock Lee").
		Field("Momentum", "3/10", true).
		Field("Notes", "", false).
		Field("Long", strings.Repeat("a", 2000), false).
		Build()

	assert.Equal(t, "Rock Lee", embed.Title)
	require.Len(t, embed.Fields, 2, "empty values are skipped")
	assert.Len(t, []rune(embed.Fields[1].Value), maxFieldValue)
}

func TestComponentBuilder_RowsAndIDs(t *testing.T) {
	b := NewComponentBuilder(core.NewCustomIDBuilder("move"))
	for i := 0; i < 6; i++ {
		b.Button("Reroll", discordgo.SecondaryButton, "reroll", "rec-1", "free")
	}
	rows := b.Build()

	require.Len(t, rows, 2)
	first := rows[0].(discordgo.ActionsRow)
	assert.Len(t, first.Components, 5)
	assert.Equal(t, "move:reroll:rec-1:free", first.Components[0].(discordgo.Button).CustomID)

	assert.Nil(t, NewComponentBuilder(core.NewCustomIDBuilder("move")).Build())
}
