package core

import (
	"context"
	"sort"

	"github.com/bwmarrin/discordgo"
)

// TestInteractionContext creates an InteractionContext for testing
type TestInteractionContext struct {
	*InteractionContext
}

// NewTestInteractionContext creates a test interaction context
func NewTestInteractionContext() *TestInteractionContext {
	ctx := &InteractionContext{
		Context:   context.Background(),
		UserID:    "test-user-123",
		UserName:  "tester",
		GuildID:   "test-guild-123",
		ChannelID: "test-channel-123",
		params:    make(map[string]any),
		Interaction: &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{},
		},
	}
	return &TestInteractionContext{InteractionContext: ctx}
}

// WithParam adds a parameter for testing
func (t *TestInteractionContext) WithParam(key string, value any) *TestInteractionContext {
	t.params[key] = value
	return t
}

// WithUserID sets the user ID
func (t *TestInteractionContext) WithUserID(userID string) *TestInteractionContext {
	t.UserID = userID
	return t
}

// WithGuildID sets the guild ID
func (t *TestInteractionContext) WithGuildID(guildID string) *TestInteractionContext {
	t.GuildID = guildID
	return t
}

// WithRoles sets the roles for the member
func (t *TestInteractionContext) WithRoles(roles ...string) *TestInteractionContext {
	if t.Member == nil {
		t.Member = &discordgo.Member{User: &discordgo.User{ID: t.UserID}}
	}
	t.Member.Roles = roles
	t.Interaction.Member = t.Member
	return t
}

// AsArbiter marks the user as an arbiter
func (t *TestInteractionContext) AsArbiter() *TestInteractionContext {
	t.IsArbiter = true
	return t
}

// WithMessage sets the message a component or modal was triggered from
func (t *TestInteractionContext) WithMessage(messageID string) *TestInteractionContext {
	t.Interaction.Message = &discordgo.Message{ID: messageID}
	return t
}

// AsCommand simulates a slash command interaction
func (t *TestInteractionContext) AsCommand(name string, subcommand ...string) *TestInteractionContext {
	t.Interaction.Type = discordgo.InteractionApplicationCommand
	t.Interaction.Data = discordgo.ApplicationCommandInteractionData{Name: name}
	if len(subcommand) > 0 {
		t.params["subcommand"] = subcommand[0]
	}
	return t
}

// AsComponent simulates a component interaction
func (t *TestInteractionContext) AsComponent(customID string) *TestInteractionContext {
	t.Interaction.Type = discordgo.InteractionMessageComponent
	t.Interaction.Data = discordgo.MessageComponentInteractionData{CustomID: customID}
	t.CustomID, _ = ParseCustomID(customID)
	return t
}

// AsModal simulates a modal submit with the given text inputs
func (t *TestInteractionContext) AsModal(customID string, inputs map[string]string) *TestInteractionContext {
	keys := make([]string, 0, len(inputs))
	for k := range inputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]discordgo.MessageComponent, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, &discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: k, Value: inputs[k]},
			},
		})
	}

	t.Interaction.Type = discordgo.InteractionModalSubmit
	t.Interaction.Data = discordgo.ModalSubmitInteractionData{CustomID: customID, Components: rows}
	t.parseModalParams()
	return t
}

// MockResponder is a test implementation of InteractionResponder
type MockResponder struct {
	Responses    []*Response
	Edits        []*Response
	FollowUps    []*Response
	RespondError error
	EditError    error

	// OriginalMessage is returned by Original
	OriginalMessage *discordgo.Message
	Responded       bool
}

// NewMockResponder creates a new mock responder
func NewMockResponder() *MockResponder {
	return &MockResponder{
		Responses:       make([]*Response, 0),
		Edits:           make([]*Response, 0),
		FollowUps:       make([]*Response, 0),
		OriginalMessage: &discordgo.Message{ID: "test-message-123"},
	}
}

func (m *MockResponder) Respond(response *Response) error {
	m.Responses = append(m.Responses, response)
	m.Responded = true
	return m.RespondError
}

func (m *MockResponder) Edit(response *Response) error {
	m.Edits = append(m.Edits, response)
	return m.EditError
}

func (m *MockResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	m.FollowUps = append(m.FollowUps, response)
	return &discordgo.Message{ID: "test-followup-123"}, nil
}

func (m *MockResponder) Original() (*discordgo.Message, error) {
	return m.OriginalMessage, nil
}

func (m *MockResponder) HasResponded() bool {
	return m.Responded
}

// LastResponse returns the last response sent
func (m *MockResponder) LastResponse() *Response {
	if len(m.Edits) > 0 {
		return m.Edits[len(m.Edits)-1]
	}
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	return nil
}
