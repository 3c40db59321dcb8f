package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// InteractionContext wraps a Discord interaction with useful helpers and context
type InteractionContext struct {
	// Core Discord objects
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate

	// Extracted common fields for convenience
	UserID    string
	UserName  string
	GuildID   string
	ChannelID string
	Member    *discordgo.Member

	// IsArbiter is set by the arbiter middleware for members holding an
	// arbiter role
	IsArbiter bool

	// Context for cancellation and values
	Context context.Context

	// CustomID is the parsed custom ID of a component or modal interaction
	CustomID *CustomID

	params map[string]any
}

// NewInteractionContext creates a new InteractionContext from a Discord interaction
func NewInteractionContext(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) *InteractionContext {
	ic := &InteractionContext{
		Session:     s,
		Interaction: i,
		Context:     ctx,
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		params:      make(map[string]any),
	}

	if i.Member != nil && i.Member.User != nil {
		ic.Member = i.Member
		ic.UserID = i.Member.User.ID
		ic.UserName = i.Member.User.Username
		if i.Member.Nick != "" {
			ic.UserName = i.Member.Nick
		}
	} else if i.User != nil {
		ic.UserID = i.User.ID
		ic.UserName = i.User.Username
	}

	ic.parseParams()
	return ic
}

func (ic *InteractionContext) parseParams() {
	switch ic.Interaction.Type {
	case discordgo.InteractionApplicationCommand:
		ic.parseOptions(ic.Interaction.ApplicationCommandData().Options)
	case discordgo.InteractionMessageComponent:
		ic.CustomID, _ = ParseCustomID(ic.Interaction.MessageComponentData().CustomID)
	case discordgo.InteractionModalSubmit:
		ic.parseModalParams()
	}
}

// parseOptions flattens subcommand options into params
func (ic *InteractionContext) parseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommand, discordgo.ApplicationCommandOptionSubCommandGroup:
			ic.params["subcommand"] = opt.Name
			ic.parseOptions(opt.Options)
		default:
			ic.params[opt.Name] = opt.Value
		}
	}
}

// parseModalParams stores every text input value under its custom ID
func (ic *InteractionContext) parseModalParams() {
	data := ic.Interaction.ModalSubmitData()
	ic.CustomID, _ = ParseCustomID(data.CustomID)

	for _, comp := range data.Components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				ic.params[input.CustomID] = input.Value
			}
		}
	}
}

// GetParam retrieves a parameter by name
func (ic *InteractionContext) GetParam(name string) any {
	return ic.params[name]
}

// HasParam reports whether the option or input was supplied
func (ic *InteractionContext) HasParam(name string) bool {
	_, ok := ic.params[name]
	return ok
}

// GetStringParam retrieves a string parameter or returns empty string
func (ic *InteractionContext) GetStringParam(name string) string {
	if val, ok := ic.params[name].(string); ok {
		return val
	}
	return ""
}

// GetIntParam retrieves an int parameter or returns 0. Discord delivers
// integer options as float64.
func (ic *InteractionContext) GetIntParam(name string) int {
	switch v := ic.params[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

// GetBoolParam retrieves a bool parameter or returns false
func (ic *InteractionContext) GetBoolParam(name string) bool {
	if val, ok := ic.params[name].(bool); ok {
		return val
	}
	return false
}

// IsCommand checks if this is a slash command interaction
func (ic *InteractionContext) IsCommand() bool {
	return ic.Interaction.Type == discordgo.InteractionApplicationCommand
}

// IsComponent checks if this is a message component interaction
func (ic *InteractionContext) IsComponent() bool {
	return ic.Interaction.Type == discordgo.InteractionMessageComponent
}

// IsModal checks if this is a modal submit interaction
func (ic *InteractionContext) IsModal() bool {
	return ic.Interaction.Type == discordgo.InteractionModalSubmit
}

// GetCustomID returns the raw custom ID for component and modal interactions
func (ic *InteractionContext) GetCustomID() string {
	if ic.IsComponent() {
		return ic.Interaction.MessageComponentData().CustomID
	}
	if ic.IsModal() {
		return ic.Interaction.ModalSubmitData().CustomID
	}
	return ""
}

// GetCommandName returns the command name for slash commands
func (ic *InteractionContext) GetCommandName() string {
	if ic.IsCommand() {
		return ic.Interaction.ApplicationCommandData().Name
	}
	return ""
}

// GetSubcommand returns the subcommand name if present
func (ic *InteractionContext) GetSubcommand() string {
	return ic.GetStringParam("subcommand")
}

// MessageID is the message a component or modal was triggered from
func (ic *InteractionContext) MessageID() string {
	if ic.Interaction != nil && ic.Interaction.Message != nil {
		return ic.Interaction.Message.ID
	}
	return ""
}

// Route names the interaction (domain, action) for logs and metrics
func (ic *InteractionContext) Route() (domain, action string) {
	if ic.IsCommand() {
		return ic.GetCommandName(), ic.GetSubcommand()
	}
	if ic.CustomID != nil {
		return ic.CustomID.Domain, ic.CustomID.Action
	}
	return "unknown", ""
}

// WithValue adds a value to the context
func (ic *InteractionContext) WithValue(key, val any) {
	ic.Context = context.WithValue(ic.Context, key, val)
}

// Value retrieves a value from the context
func (ic *InteractionContext) Value(key any) any {
	return ic.Context.Value(key)
}
