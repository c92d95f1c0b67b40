package utils

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// InteractionResponder is the reply surface of the Discord session.
// *discordgo.Session satisfies it.
type InteractionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// FollowupSender additionally covers follow-up messages for interactions
// that were already replied to.
type FollowupSender interface {
	InteractionResponder
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// SendEphemeralResponse sends an ephemeral message as the interaction reply.
func SendEphemeralResponse(s InteractionResponder, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending ephemeral response: %v", err)
	}
}

// SendEphemeralComponents sends an ephemeral reply carrying action buttons.
func SendEphemeralComponents(s InteractionResponder, i *discordgo.InteractionCreate, message string, components []discordgo.MessageComponent) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    message,
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending ephemeral component response: %v", err)
	}
}

// SendFallbackResponse guarantees some reply reaches the user: it tries a
// fresh reply first and falls back to a follow-up if one was already sent.
func SendFallbackResponse(s FollowupSender, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err == nil {
		return
	}
	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: message,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Printf("Error sending fallback follow-up: %v", err)
	}
}
