package defs

import "github.com/bwmarrin/discordgo"

var Signup = &discordgo.ApplicationCommand{
	Name:        "ttrl-signup",
	Description: "Post the TTRL signup panel and set the stats channel",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "ftrole",
			Description: "The Full Time driver role",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "reserverole",
			Description: "The Reserve driver role",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "statschannel",
			Description: "Channel for the live signup summary",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	},
}

var SetAutoRole = &discordgo.ApplicationCommand{
	Name:        "ttrl-set-autorole",
	Description: "Set or clear the role granted automatically for a choice",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "choice",
			Description: "The choice label, e.g. \"Stay FT\"",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "Role to grant; omit to disable the mapping",
			Required:    false,
		},
	},
}

var Status = &discordgo.ApplicationCommand{
	Name:        "signup-status",
	Description: "Display bot and system status information",
}
