package summary

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ttrl-signup-bot/sheets"
	"ttrl-signup-bot/store"

	"github.com/bwmarrin/discordgo"
)

// ChannelAPI is the slice of the Discord session the publisher needs.
// *discordgo.Session satisfies it.
type ChannelAPI interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessageEdit(channelID, messageID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Publisher recomputes the tally from the sheet and keeps one summary
// message up to date in each guild's configured stats channel.
type Publisher struct {
	Reader       sheets.ColumnReader
	Store        *store.Store
	SummaryRange string
	BotUserID    string
	PageBudget   int
	FetchLimit   int
}

// Publish recomputes the counts and edits the guild's existing summary
// message in place, or sends a new one if none is found within the page
// budget. Guilds without a configured stats channel are a no-op.
func (p Publisher) Publish(ctx context.Context, api ChannelAPI, guildID string) error {
	channelID, ok := p.Store.StatsChannel(guildID)
	if !ok {
		return nil
	}

	rows, err := p.Reader.ReadColumn(ctx, p.SummaryRange)
	if err != nil {
		return fmt.Errorf("failed to read summary rows: %w", err)
	}
	text := Render(Compute(rows))

	existing, err := p.findSummaryMessage(api, channelID)
	if err != nil {
		return fmt.Errorf("failed to search channel %s for summary: %w", channelID, err)
	}

	if existing != nil {
		if _, err := api.ChannelMessageEdit(channelID, existing.ID, text); err != nil {
			return fmt.Errorf("failed to edit summary message: %w", err)
		}
		return nil
	}

	if _, err := api.ChannelMessageSend(channelID, text); err != nil {
		return fmt.Errorf("failed to send summary message: %w", err)
	}
	return nil
}

// findSummaryMessage pages backwards through the channel looking for the
// bot's own message starting with the marker. Exhausting the budget returns
// nil, which makes Publish post a duplicate; that matches the original
// behavior for channels where the summary has scrolled far out of view.
func (p Publisher) findSummaryMessage(api ChannelAPI, channelID string) (*discordgo.Message, error) {
	// A limit of zero or below makes discordgo omit the limit parameter,
	// so the same page would be fetched forever.
	fetchLimit := p.FetchLimit
	if fetchLimit <= 0 {
		fetchLimit = 100
	}

	beforeID := ""
	fetched := 0

	for fetched < p.PageBudget {
		msgs, err := api.ChannelMessages(channelID, fetchLimit, beforeID, "", "")
		if err != nil {
			return nil, err
		}
		if len(msgs) == 0 {
			return nil, nil
		}

		fetched += len(msgs)
		for _, m := range msgs {
			if m.Author != nil && m.Author.ID == p.BotUserID && hasMarker(m.Content) {
				return m, nil
			}
		}

		beforeID = msgs[len(msgs)-1].ID
	}

	log.Printf("Summary search exhausted %d messages in channel %s", fetched, channelID)
	return nil, nil
}

func hasMarker(content string) bool {
	return strings.HasPrefix(content, Marker)
}
