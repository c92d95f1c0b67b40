package bot

import (
	"ttrl-signup-bot/model"
	"ttrl-signup-bot/sheets"
	"ttrl-signup-bot/store"
	"ttrl-signup-bot/summary"

	"github.com/jmoiron/sqlx"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
)

type Bot struct {
	Session            *discordgo.Session
	Config             *model.Config
	Store              *store.Store
	Sheets             sheets.Gateway
	Publisher          *summary.Publisher
	DB                 *sqlx.DB
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)

	cron *cron.Cron
}

func New(cfg *model.Config, db *sqlx.DB, st *store.Store, sh *sheets.Client) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	b := &Bot{
		Session: dg,
		Config:  cfg,
		Store:   st,
		Sheets:  sh,
		DB:      db,
		Publisher: &summary.Publisher{
			Reader:       sh,
			Store:        st,
			SummaryRange: model.SummaryRange(cfg.SheetName),
			PageBudget:   cfg.Summary.PageBudget,
			FetchLimit:   cfg.Summary.FetchLimit,
		},
	}
	return b, nil
}

func (b *Bot) Close() {
	if b.cron != nil {
		b.cron.Stop()
	}
	if b.DB != nil {
		b.DB.Close()
	}
	b.Session.Close()
}
