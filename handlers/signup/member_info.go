package signup

import (
	"log"
	"strings"
	"time"

	"ttrl-signup-bot/model"
	"ttrl-signup-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// resolveMember returns a full member object for the clicking user,
// fetching it from the API when the interaction payload lacks one.
func resolveMember(s sessionAPI, i *discordgo.InteractionCreate) *discordgo.Member {
	member := i.Member
	if member == nil && i.GuildID != "" && i.User != nil {
		fetched, err := s.GuildMember(i.GuildID, i.User.ID)
		if err != nil {
			log.Printf("Error fetching member %s in guild %s: %v", i.User.ID, i.GuildID, err)
			return nil
		}
		member = fetched
	}
	return member
}

func memberDisplayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}

// memberDriverType classifies the member by the panel's two role IDs.
// Reserve wins when both roles are held, matching the recorded precedence.
func memberDriverType(member *discordgo.Member, ftRoleID, reserveRoleID string) string {
	driverType := model.DriverTypeUnknown
	if memberHasRole(member, ftRoleID) {
		driverType = model.DriverTypeFT
	}
	if memberHasRole(member, reserveRoleID) {
		driverType = model.DriverTypeReserve
	}
	return driverType
}

func memberHasRole(member *discordgo.Member, roleID string) bool {
	for _, r := range member.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}

func currentRoleLabel(driverType string) string {
	switch driverType {
	case model.DriverTypeFT:
		return "Full Time Driver"
	case model.DriverTypeReserve:
		return "Reserve Driver"
	default:
		return "Unknown"
	}
}

// buildRecord snapshots the member into a sheet row. Role names are
// resolved best-effort; a failed lookup leaves the raw IDs out rather than
// failing the submission.
func buildRecord(s sessionAPI, member *discordgo.Member, guildID, driverType, choice, followUp string) model.SignupRecord {
	now := time.Now()
	user := member.User

	accountCreated := "Unknown"
	if created, err := discordgo.SnowflakeTimestamp(user.ID); err == nil {
		accountCreated = created.Format("2006-01-02")
	}

	joinDate := "Unknown"
	membership := utils.FormatMembership(now, now)
	if !member.JoinedAt.IsZero() {
		joinDate = member.JoinedAt.Format("2006-01-02")
		membership = utils.FormatMembership(member.JoinedAt, now)
	}

	boostStatus := "Not boosting"
	if member.PremiumSince != nil {
		boostStatus = "Since " + member.PremiumSince.Format("2006-01-02")
	}

	return model.SignupRecord{
		Timestamp:      utils.FormatTimestamp(now),
		DisplayName:    memberDisplayName(member),
		Username:       user.Username,
		CurrentRole:    currentRoleLabel(driverType),
		DriverType:     driverType,
		MembershipText: membership,
		UserID:         user.ID,
		AccountCreated: accountCreated,
		AvatarURL:      user.AvatarURL("256"),
		AllRoles:       roleNameList(s, guildID, member),
		BoostStatus:    boostStatus,
		JoinDate:       joinDate,
		Choice:         choice,
		FollowUp:       followUp,
	}
}

// roleNameList renders the member's role names, excluding @everyone.
func roleNameList(s sessionAPI, guildID string, member *discordgo.Member) string {
	guildRoles, err := s.GuildRoles(guildID)
	if err != nil {
		log.Printf("Error fetching roles for guild %s: %v", guildID, err)
		return "None"
	}

	namesByID := make(map[string]string, len(guildRoles))
	for _, r := range guildRoles {
		namesByID[r.ID] = r.Name
	}

	var names []string
	for _, id := range member.Roles {
		if name, ok := namesByID[id]; ok && name != "@everyone" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}
