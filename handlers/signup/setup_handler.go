package signup

import (
	"context"
	"log"
	"os"

	"ttrl-signup-bot/bot"
	"ttrl-signup-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleSetup handles /ttrl-signup: it records the guild's stats channel,
// posts the panel with the two branch buttons, and seeds the summary.
func HandleSetup(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if i.GuildID == "" {
		utils.SendEphemeralResponse(s, i, "Use this in a server.")
		return
	}
	if !utils.IsGuildAdmin(i) {
		utils.SendEphemeralResponse(s, i, "Admins only.")
		return
	}

	options := i.ApplicationCommandData().Options
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		optionMap[opt.Name] = opt
	}

	var ftRoleID, reserveRoleID, statsChannelID string
	if opt, ok := optionMap["ftrole"]; ok {
		ftRoleID = opt.RoleValue(s, i.GuildID).ID
	}
	if opt, ok := optionMap["reserverole"]; ok {
		reserveRoleID = opt.RoleValue(s, i.GuildID).ID
	}
	if opt, ok := optionMap["statschannel"]; ok {
		statsChannelID = opt.ChannelValue(s).ID
	}
	if ftRoleID == "" || reserveRoleID == "" || statsChannelID == "" {
		utils.SendEphemeralResponse(s, i,
			"This command must include **two role options** (FT + Reserve) and **one channel option** (stats).")
		return
	}

	if err := b.Store.SetStatsChannel(i.GuildID, statsChannelID); err != nil {
		log.Printf("Error saving stats channel for guild %s: %v", i.GuildID, err)
	}

	embed := &discordgo.MessageEmbed{
		Title:       b.Config.Panel.Title,
		Description: b.Config.Panel.Description,
		Color:       0xffcc00,
	}

	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Current Full Time Driver",
						Style:    discordgo.PrimaryButton,
						CustomID: CustomID{Flow: FlowOpen, Action: ActionFT, FTRoleID: ftRoleID, ReserveRoleID: reserveRoleID}.Encode(),
					},
					discordgo.Button{
						Label:    "Current Reserve",
						Style:    discordgo.SecondaryButton,
						CustomID: CustomID{Flow: FlowOpen, Action: ActionReserve, FTRoleID: ftRoleID, ReserveRoleID: reserveRoleID}.Encode(),
					},
				},
			},
		},
	}

	if logo, err := os.Open(b.Config.Panel.LogoPath); err == nil {
		defer logo.Close()
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: "attachment://" + b.Config.Panel.LogoPath}
		msg.Files = []*discordgo.File{{Name: b.Config.Panel.LogoPath, Reader: logo}}
	} else {
		log.Printf("Panel logo %s not attached: %v", b.Config.Panel.LogoPath, err)
	}

	if _, err := s.ChannelMessageSendComplex(i.ChannelID, msg); err != nil {
		log.Printf("Error posting signup panel: %v", err)
		utils.SendEphemeralResponse(s, i, "I cannot post here.")
		return
	}

	utils.SendEphemeralResponse(s, i, "Signup panel posted.")

	if err := b.Publisher.Publish(context.Background(), s, i.GuildID); err != nil {
		log.Printf("Error publishing summary after setup: %v", err)
	}
}
