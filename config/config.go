package config

import (
	"log"
	"strings"

	"ttrl-signup-bot/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from environment variables and an optional
// config.yaml. Environment variables override file settings.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Info: config.yaml not found, using environment variables and defaults")
		} else {
			return nil, err
		}
	}

	viper.SetDefault("SHEET_NAME", "Sheet1")
	viper.SetDefault("panel.title", "TTRL Sign-Up Process")
	viper.SetDefault("panel.description", strings.Join([]string{
		"Welcome to the TTRL sign-up process!",
		"",
		"As we approach our new season, we need to confirm each driver's intentions for the upcoming season.",
		"",
		"Please select an option below and follow the prompts.",
		"",
		"Thank you.",
	}, "\n"))
	viper.SetDefault("panel.logo_path", "ttrl-logo.png")
	viper.SetDefault("summary.page_budget", 500)
	viper.SetDefault("summary.fetch_limit", 100)
	viper.SetDefault("summary.refresh_spec", "@hourly")

	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	appID := viper.GetString("APP_ID")
	if appID == "" {
		log.Fatal("Error: APP_ID environment variable not set")
	}

	spreadsheetID := viper.GetString("GOOGLE_SPREADSHEET_ID")
	if spreadsheetID == "" {
		log.Fatal("Error: GOOGLE_SPREADSHEET_ID environment variable not set")
	}

	clientEmail := viper.GetString("GOOGLE_CLIENT_EMAIL")
	privateKey := viper.GetString("GOOGLE_PRIVATE_KEY")
	if clientEmail == "" || privateKey == "" {
		log.Fatal("Error: GOOGLE_CLIENT_EMAIL / GOOGLE_PRIVATE_KEY not set")
	}

	if viper.GetString("LOG_WEBHOOK_URL") == "" {
		log.Println("Warning: LOG_WEBHOOK_URL not set, operational logging is disabled")
	}
	if viper.GetString("LEAVING_ROLE_ID") == "" {
		log.Println("Warning: LEAVING_ROLE_ID not set, leaving role assignment is disabled")
	}

	cfg := &model.Config{
		BotToken:               token,
		AppID:                  appID,
		LogWebhookURL:          viper.GetString("LOG_WEBHOOK_URL"),
		SpreadsheetID:          spreadsheetID,
		GoogleClientEmail:      clientEmail,
		GooglePrivateKey:       privateKey,
		SheetName:              viper.GetString("SHEET_NAME"),
		LeavingRoleID:          viper.GetString("LEAVING_ROLE_ID"),
		LeavingNotifyChannelID: viper.GetString("LEAVING_NOTIFY_CHANNEL_ID"),
		Panel: model.PanelConfig{
			Title:       viper.GetString("panel.title"),
			Description: viper.GetString("panel.description"),
			LogoPath:    viper.GetString("panel.logo_path"),
		},
		Summary: model.SummaryConfig{
			PageBudget:  viper.GetInt("summary.page_budget"),
			FetchLimit:  viper.GetInt("summary.fetch_limit"),
			RefreshSpec: viper.GetString("summary.refresh_spec"),
		},
	}

	return cfg, nil
}
