package builders

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Discord caps embed field values at 1024 characters
const maxFieldValue = 1024

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

// Title sets the embed title
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// Description sets the embed description
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

// Color sets the embed color
func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Timestamp sets the embed timestamp
func (b *EmbedBuilder) Timestamp(timestamp time.Time) *EmbedBuilder {
	b.embed.Timestamp = timestamp.Format(time.RFC3339)
	return b
}

// Footer sets the embed footer
func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	return b
}

// Author sets the embed author
func (b *EmbedBuilder) Author(name string) *EmbedBuilder {
	b.embed.Author = &discordgo.MessageEmbedAuthor{Name: name}
	return b
}

// Field adds a field to the embed. Empty values are skipped; long ones are
// truncated.
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	if value == "" {
		return b
	}
	if r := []rune(value); len(r) > maxFieldValue {
		value = string(r[:maxFieldValue-1]) + "…"
	}
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// Common embed colors
const (
	ColorSuccess = 0x2ecc71 // Green
	ColorPartial = 0xf1c40f // Yellow
	ColorError   = 0xe74c3c // Red
	ColorCrit    = 0x9b59b6 // Purple
	ColorInfo    = 0x3498db // Blue
	ColorPrimary = 0xe67e22 // Konoha orange
)
