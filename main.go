package main

import (
	"context"
	"log"
	"os"

	"ttrl-signup-bot/bot"
	"ttrl-signup-bot/config"
	"ttrl-signup-bot/handlers"
	"ttrl-signup-bot/sheets"
	"ttrl-signup-bot/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err := os.MkdirAll("./data", os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	db, err := store.Init("./data/signup.db")
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	st, err := store.New(db)
	if err != nil {
		log.Fatalf("Error loading stored configuration: %v", err)
	}

	sheetsClient, err := sheets.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Error creating sheets client: %v", err)
	}

	b, err := bot.New(cfg, db, st, sheetsClient)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)

	b.Run()

	defer b.Close()
}
