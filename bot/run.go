package bot

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"ttrl-signup-bot/commands"
)

func (b *Bot) Run() {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	// Known only after the gateway hands us our own user.
	b.Publisher.BotUserID = b.Session.State.User.ID

	log.Println("Registering application commands...")
	cmds := commands.Generate()
	registered, err := b.Session.ApplicationCommandBulkOverwrite(b.Config.AppID, "", cmds)
	if err != nil {
		log.Printf("Cannot register commands: %v", err)
	} else {
		b.RegisteredCommands = registered
		log.Printf("Registered %d commands", len(registered))
	}

	b.startScheduler()

	log.Println("Bot is now running. Press CTRL-C to exit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}
