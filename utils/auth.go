package utils

import "github.com/bwmarrin/discordgo"

// IsGuildAdmin reports whether the interaction's member holds an
// administrator-equivalent permission (Administrator or Manage Server).
func IsGuildAdmin(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	perms := i.Member.Permissions
	return perms&discordgo.PermissionAdministrator != 0 ||
		perms&discordgo.PermissionManageServer != 0
}
