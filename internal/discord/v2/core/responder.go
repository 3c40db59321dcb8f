package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// InteractionResponder provides an abstraction over Discord's interaction response API
type InteractionResponder interface {
	// Respond sends the initial response
	Respond(response *Response) error

	// Edit updates the initial response
	Edit(response *Response) error

	// FollowUp sends an additional message after the initial response
	FollowUp(response *Response) (*discordgo.Message, error)

	// Original fetches the message created by the initial response
	Original() (*discordgo.Message, error)

	// HasResponded returns whether the initial response was sent
	HasResponded() bool
}

// InteractionAPI is the part of *discordgo.Session the responder uses
type InteractionAPI interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponse(interaction *discordgo.Interaction, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordResponder implements InteractionResponder using Discord's API
type DiscordResponder struct {
	api         InteractionAPI
	interaction *discordgo.Interaction
	responded   bool
}

// NewDiscordResponder creates a new Discord responder
func NewDiscordResponder(api InteractionAPI, i *discordgo.InteractionCreate) *DiscordResponder {
	return &DiscordResponder{
		api:         api,
		interaction: i.Interaction,
	}
}

// Respond sends the initial response. Later calls edit it instead.
func (r *DiscordResponder) Respond(response *Response) error {
	if r.responded {
		return r.Edit(response)
	}

	err := r.api.InteractionRespond(r.interaction, buildInteractionResponse(response))
	if err == nil {
		r.responded = true
	}
	return err
}

// Edit updates a previous response
func (r *DiscordResponder) Edit(response *Response) error {
	if !r.responded {
		return fmt.Errorf("cannot edit before responding")
	}

	_, err := r.api.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
		Content:         &response.Content,
		Embeds:          &response.Embeds,
		Components:      &response.Components,
		AllowedMentions: response.AllowedMentions,
	})
	return err
}

// FollowUp sends an additional message after the initial response
func (r *DiscordResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	if !r.responded {
		return nil, fmt.Errorf("cannot follow up before responding")
	}

	params := &discordgo.WebhookParams{
		Content:         response.Content,
		Embeds:          response.Embeds,
		Components:      response.Components,
		AllowedMentions: response.AllowedMentions,
	}
	if response.Ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}
	return r.api.FollowupMessageCreate(r.interaction, true, params)
}

// Original fetches the message created by the initial response
func (r *DiscordResponder) Original() (*discordgo.Message, error) {
	if !r.responded {
		return nil, fmt.Errorf("no response sent yet")
	}
	return r.api.InteractionResponse(r.interaction)
}

// HasResponded returns whether this responder has already sent a response
func (r *DiscordResponder) HasResponded() bool {
	return r.responded
}

// buildInteractionResponse picks the response type: modal, in-place update
// of the triggering message, or a new channel message.
func buildInteractionResponse(response *Response) *discordgo.InteractionResponse {
	if response.Modal != nil {
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseModal,
			Data: &discordgo.InteractionResponseData{
				CustomID:   response.Modal.CustomID,
				Title:      response.Modal.Title,
				Components: response.Modal.Components,
			},
		}
	}

	data := &discordgo.InteractionResponseData{
		Content:         response.Content,
		Embeds:          response.Embeds,
		Components:      response.Components,
		AllowedMentions: response.AllowedMentions,
	}
	if response.Update {
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: data,
		}
	}

	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}
