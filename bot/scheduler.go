package bot

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// startScheduler starts the periodic summary refresh job. Editing the
// summary on every submission keeps it current; the cron pass catches
// guilds whose summary message was deleted or never posted.
func (b *Bot) startScheduler() {
	b.cron = cron.New()

	_, err := b.cron.AddFunc(b.Config.Summary.RefreshSpec, func() {
		guilds := b.Store.ConfiguredGuilds()
		log.Printf("Refreshing summaries for %d configured guilds", len(guilds))
		for _, guildID := range guilds {
			if err := b.Publisher.Publish(context.Background(), b.Session, guildID); err != nil {
				log.Printf("Summary refresh failed for guild %s: %v", guildID, err)
			}
		}
		if n := b.Store.PendingCount(); n > 0 {
			log.Printf("%d two-step dialogues still pending", n)
		}
	})
	if err != nil {
		log.Fatalf("Could not set up summary refresh job: %v", err)
	}

	b.cron.Start()
	log.Printf("Summary refresh scheduled (%s)", b.Config.Summary.RefreshSpec)
}
