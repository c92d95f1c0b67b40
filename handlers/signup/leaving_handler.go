package signup

import (
	"fmt"
	"log"
	"time"

	"ttrl-signup-bot/bot"
	"ttrl-signup-bot/model"
	"ttrl-signup-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// promptLeaveConfirmation shows the confirm/cancel pair. Nothing is
// recorded until the member confirms.
func promptLeaveConfirmation(s sessionAPI, i *discordgo.InteractionCreate, cid CustomID) {
	confirm := CustomID{Flow: FlowLeave, Action: ActionConfirm, FTRoleID: cid.FTRoleID, ReserveRoleID: cid.ReserveRoleID}
	cancel := CustomID{Flow: FlowLeave, Action: ActionCancel, FTRoleID: cid.FTRoleID, ReserveRoleID: cid.ReserveRoleID}

	utils.SendEphemeralComponents(s, i,
		"Leaving TTRL removes your driver roles and cannot be undone. Are you sure?",
		[]discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "Yes, I am leaving", Style: discordgo.DangerButton, CustomID: confirm.Encode()},
					discordgo.Button{Label: "Cancel", Style: discordgo.SecondaryButton, CustomID: cancel.Encode()},
				},
			},
		})
}

// HandleLeave handles the confirmation pair. Cancel is a terminal no-op;
// confirm records the choice and then runs the three leaving side effects,
// each independently best-effort.
func HandleLeave(s sessionAPI, i *discordgo.InteractionCreate, b *bot.Bot, member *discordgo.Member, cid CustomID) {
	if cid.Action == ActionCancel {
		utils.SendEphemeralResponse(s, i, "No changes made. See you on track.")
		return
	}

	recorded := recordSignup(s, i, b, member, cid.FTRoleID, cid.ReserveRoleID, model.ChoiceLeaving, "")
	if !recorded {
		return
	}

	stripManageableRoles(s, i.GuildID, b.Publisher.BotUserID, member)
	addLeavingRole(s, i.GuildID, member, b.Config.LeavingRoleID)
	notifyLeaving(s, b.Config.LeavingNotifyChannelID, member)

	if err := utils.LogWarn(b.Config.LogWebhookURL, "Signup", "Leaving confirmed",
		fmt.Sprintf("%s (%s)", memberDisplayName(member), member.User.ID)); err != nil {
		log.Printf("Error sending leaving log: %v", err)
	}
}

// stripManageableRoles removes every member role positioned below the
// bot's own highest role. Managed (integration) roles and anything the
// bot cannot touch are left alone; each removal is best-effort.
func stripManageableRoles(s sessionAPI, guildID, botUserID string, member *discordgo.Member) {
	guildRoles, err := s.GuildRoles(guildID)
	if err != nil {
		log.Printf("Error fetching roles for guild %s: %v", guildID, err)
		return
	}
	rolesByID := make(map[string]*discordgo.Role, len(guildRoles))
	for _, r := range guildRoles {
		rolesByID[r.ID] = r
	}

	botTop := botTopRolePosition(s, guildID, botUserID, rolesByID)

	for _, roleID := range member.Roles {
		role, ok := rolesByID[roleID]
		if !ok || role.Managed || role.Position >= botTop {
			continue
		}
		if err := s.GuildMemberRoleRemove(guildID, member.User.ID, roleID); err != nil {
			log.Printf("Error removing role %s from user %s: %v", roleID, member.User.ID, err)
		}
	}
}

func botTopRolePosition(s sessionAPI, guildID, botUserID string, rolesByID map[string]*discordgo.Role) int {
	botMember, err := s.GuildMember(guildID, botUserID)
	if err != nil {
		log.Printf("Error fetching bot member in guild %s: %v", guildID, err)
		return 0
	}
	top := 0
	for _, roleID := range botMember.Roles {
		if role, ok := rolesByID[roleID]; ok && role.Position > top {
			top = role.Position
		}
	}
	return top
}

func addLeavingRole(s sessionAPI, guildID string, member *discordgo.Member, leavingRoleID string) {
	if leavingRoleID == "" {
		return
	}
	if err := s.GuildMemberRoleAdd(guildID, member.User.ID, leavingRoleID); err != nil {
		log.Printf("Error adding leaving role to user %s: %v", member.User.ID, err)
	}
}

func notifyLeaving(s sessionAPI, channelID string, member *discordgo.Member) {
	if channelID == "" {
		return
	}
	embed := &discordgo.MessageEmbed{
		Title:       "Driver leaving TTRL",
		Description: fmt.Sprintf("**%s** (%s) has confirmed they are leaving.", memberDisplayName(member), member.User.Username),
		Color:       0xe74c3c,
		Timestamp:   time.Now().Format(time.RFC3339),
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: member.User.AvatarURL("256")},
	}
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("Error sending leaving notification: %v", err)
	}
}
