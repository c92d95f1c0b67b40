package handlers

import (
	"log"

	"ttrl-signup-bot/bot"
	"ttrl-signup-bot/handlers/signup"
	"ttrl-signup-bot/utils"

	"github.com/bwmarrin/discordgo"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"ttrl-signup": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			signup.HandleSetup(s, i, b)
		},
		"ttrl-set-autorole": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			signup.HandleSetAutoRole(s, i, b)
		},
		"signup-status": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !utils.IsGuildAdmin(i) {
				utils.SendEphemeralResponse(s, i, "Admins only.")
				return
			}
			SystemInfoHandler(s, i, b)
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
		if err := utils.LogInfo(b.Config.LogWebhookURL, "System", "Startup", "Bot has started successfully."); err != nil {
			log.Printf("Failed to send startup log: %v", err)
		}
	})

	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer recoverInteraction(s, i)

		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
				h(s, i)
			}
		case discordgo.InteractionMessageComponent:
			cid, err := signup.ParseCustomID(i.MessageComponentData().CustomID)
			if err != nil {
				// Not one of ours; no reply.
				return
			}
			signup.HandleButton(s, i, b, cid)
		}
	})
}

// recoverInteraction is the top-level catch for interaction handling: a
// panicking handler still gets some reply to the user, as a fresh reply or
// a follow-up depending on whether one was already sent.
func recoverInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	r := recover()
	if r == nil {
		return
	}
	log.Printf("Interaction handler panic: %v", r)
	utils.SendFallbackResponse(s, i, "Something went wrong.")
}
