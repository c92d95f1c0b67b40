package signup

import (
	"fmt"
	"log"

	"ttrl-signup-bot/bot"
	"ttrl-signup-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleSetAutoRole handles /ttrl-set-autorole: with a role it maps a
// choice label to an automatically-granted role, without one it clears
// the mapping.
func HandleSetAutoRole(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if i.GuildID == "" {
		return
	}
	if !utils.IsGuildAdmin(i) {
		utils.SendEphemeralResponse(s, i, "Admins only.")
		return
	}

	var choice string
	var role *discordgo.Role
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "choice":
			choice = opt.StringValue()
		case "role":
			role = opt.RoleValue(s, i.GuildID)
		}
	}

	if choice == "" {
		utils.SendEphemeralResponse(s, i, "Missing choice string.")
		return
	}

	if role == nil {
		if err := b.Store.ClearAutoRole(i.GuildID, choice); err != nil {
			log.Printf("Error clearing auto-role: %v", err)
		}
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("Auto-role disabled for **%s**.", choice))
		return
	}

	if err := b.Store.SetAutoRole(i.GuildID, choice, role.ID); err != nil {
		log.Printf("Error saving auto-role: %v", err)
	}
	utils.SendEphemeralResponse(s, i,
		fmt.Sprintf("Users selecting **%s** will now receive **%s** automatically.", choice, role.Name))
}
