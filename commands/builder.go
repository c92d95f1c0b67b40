package commands

import (
	"ttrl-signup-bot/commands/defs"

	"github.com/bwmarrin/discordgo"
)

// Generate returns the full application command set.
func Generate() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.Signup,
		defs.SetAutoRole,
		defs.Status,
	}
}
