package builders

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
)

// Discord allows five buttons per action row
const maxRowComponents = 5

// ComponentBuilder builds Discord message components
type ComponentBuilder struct {
	rows            []discordgo.MessageComponent
	currentRow      []discordgo.MessageComponent
	customIDBuilder *core.CustomIDBuilder
}

// NewComponentBuilder creates a new component builder
func NewComponentBuilder(customIDBuilder *core.CustomIDBuilder) *ComponentBuilder {
	return &ComponentBuilder{
		rows:            make([]discordgo.MessageComponent, 0),
		currentRow:      make([]discordgo.MessageComponent, 0, maxRowComponents),
		customIDBuilder: customIDBuilder,
	}
}

// Button adds a button whose custom ID is <domain>:<action>:<target>:<args...>
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, action, target string, args ...string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.customIDBuilder.Button(action, target, args...),
	})
	return b
}

// EmojiButton adds a button with emoji
func (b *ComponentBuilder) EmojiButton(label, emoji string, style discordgo.ButtonStyle, action, target string, args ...string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.customIDBuilder.Button(action, target, args...),
		Emoji:    &discordgo.ComponentEmoji{Name: emoji},
	})
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{Components: b.currentRow})
		b.currentRow = make([]discordgo.MessageComponent, 0, maxRowComponents)
	}
	return b
}

// Build returns the built components; nil when no component was added
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	if len(b.rows) == 0 {
		return nil
	}
	return b.rows
}

func (b *ComponentBuilder) addComponent(component discordgo.MessageComponent) {
	if len(b.currentRow) >= maxRowComponents {
		b.NewRow()
	}
	b.currentRow = append(b.currentRow, component)
}

// TextInputRow is a single-line modal input in its own row
func TextInputRow(customID, label, placeholder, value string, required bool) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    customID,
				Label:       label,
				Style:       discordgo.TextInputShort,
				Placeholder: placeholder,
				Value:       value,
				Required:    required,
				MaxLength:   10,
			},
		},
	}
}
