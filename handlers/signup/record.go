package signup

import (
	"context"
	"fmt"
	"log"

	"ttrl-signup-bot/bot"
	"ttrl-signup-bot/model"
	"ttrl-signup-bot/sheets"
	"ttrl-signup-bot/summary"
	"ttrl-signup-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// sessionAPI is the slice of the Discord session the signup flows touch.
// *discordgo.Session satisfies it.
type sessionAPI interface {
	summary.ChannelAPI
	utils.InteractionResponder
	utils.DirectMessenger
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// recordSignup runs the terminal-transition gates and, if they pass,
// appends the row, refreshes the summary, applies the auto-role and
// confirms to the member. It returns whether a row was recorded; gate
// failures reply to the user and record nothing.
func recordSignup(s sessionAPI, i *discordgo.InteractionCreate, b *bot.Bot, member *discordgo.Member, ftRoleID, reserveRoleID, choice, followUp string) bool {
	ctx := context.Background()
	displayName := memberDisplayName(member)

	ledger := sheets.Ledger{Reader: b.Sheets, NameRange: model.NameRange(b.Config.SheetName)}
	submitted, err := ledger.HasSubmitted(ctx, displayName)
	if err != nil {
		log.Printf("Error checking ledger for %s: %v", displayName, err)
		utils.SendEphemeralResponse(s, i, "Something went wrong.")
		return false
	}
	if submitted {
		utils.SendEphemeralResponse(s, i, "You have already submitted your signup.")
		return false
	}

	driverType := memberDriverType(member, ftRoleID, reserveRoleID)
	record := buildRecord(s, member, i.GuildID, driverType, choice, followUp)

	if err := b.Sheets.Append(ctx, model.AppendRange(b.Config.SheetName), record.ToRow()); err != nil {
		log.Printf("Error appending signup for %s: %v", displayName, err)
		utils.SendEphemeralResponse(s, i, "Something went wrong.")
		return false
	}

	if err := b.Publisher.Publish(ctx, s, i.GuildID); err != nil {
		log.Printf("Error updating summary for guild %s: %v", i.GuildID, err)
	}

	applyAutoRole(s, i.GuildID, member, b, choice)

	utils.SendEphemeralResponse(s, i, "Your signup has been recorded. A DM has been sent.")
	utils.SendPrivateMessage(s, member.User.ID, "Your TTRL signup has been received.")

	if err := utils.LogInfo(b.Config.LogWebhookURL, "Signup", "Recorded",
		fmt.Sprintf("%s (%s): %s", displayName, driverType, choice)); err != nil {
		log.Printf("Error sending signup log: %v", err)
	}

	return true
}

// applyAutoRole grants the role mapped to the choice, if any. Failure is
// logged and never shown to the member.
func applyAutoRole(s sessionAPI, guildID string, member *discordgo.Member, b *bot.Bot, choice string) {
	roleID, ok := b.Store.AutoRole(guildID, choice)
	if !ok {
		return
	}
	if err := s.GuildMemberRoleAdd(guildID, member.User.ID, roleID); err != nil {
		log.Printf("Auto-role failed for user %s: %v", member.User.ID, err)
	}
}
