package handlers

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"ttrl-signup-bot/bot"
	"ttrl-signup-bot/model"
	"ttrl-signup-bot/summary"
	"ttrl-signup-bot/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemInfoHandler replies with host statistics and signup totals.
func SystemInfoHandler(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}

	totalResponses := "unavailable"
	rows, err := b.Sheets.ReadColumn(context.Background(), model.SummaryRange(b.Config.SheetName))
	if err != nil {
		log.Printf("Error reading sheet for status command: %v", err)
	} else {
		totalResponses = fmt.Sprintf("%d", summary.Compute(rows).Total)
	}

	embed := &discordgo.MessageEmbed{
		Title: "Signup Bot Status",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "OS", Value: fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion), Inline: true},
			{Name: "Go", Value: runtime.Version(), Inline: true},
			{Name: "Uptime", Value: (time.Duration(hostInfo.Uptime) * time.Second).String(), Inline: true},
			{Name: "CPU", Value: fmt.Sprintf("%d cores, %.1f%%", cpuCount, cpuUsage), Inline: true},
			{Name: "Memory", Value: fmt.Sprintf("%.1f%% of %d MB", vm.UsedPercent, vm.Total/1024/1024), Inline: true},
			{Name: "Guilds", Value: fmt.Sprintf("%d (%d configured)", len(s.State.Guilds), len(b.Store.ConfiguredGuilds())), Inline: true},
			{Name: "Recorded responses", Value: totalResponses, Inline: true},
			{Name: "Pending dialogues", Value: fmt.Sprintf("%d", b.Store.PendingCount()), Inline: true},
		},
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending status response: %v", err)
		utils.SendEphemeralResponse(s, i, "Something went wrong.")
	}
}
