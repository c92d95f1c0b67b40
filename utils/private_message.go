package utils

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// DirectMessenger is the DM surface of the Discord session.
// *discordgo.Session satisfies it.
type DirectMessenger interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// SendPrivateMessage sends a direct message to a user. Delivery is
// best-effort; failures are logged and otherwise ignored.
func SendPrivateMessage(s DirectMessenger, userID, message string) {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		log.Printf("Error creating private channel with user %s: %v", userID, err)
		return
	}
	_, err = s.ChannelMessageSend(channel.ID, message)
	if err != nil {
		log.Printf("Error sending private message to user %s: %v", userID, err)
	}
}
