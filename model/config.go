package model

// Config holds everything the bot needs at runtime. It is assembled once in
// config.Load and passed into the bot at construction time.
type Config struct {
	BotToken      string
	AppID         string
	LogWebhookURL string

	SpreadsheetID     string
	GoogleClientEmail string
	GooglePrivateKey  string
	SheetName         string

	// Leaving flow, externally supplied identifiers. Either may be empty,
	// in which case the corresponding side effect is skipped.
	LeavingRoleID          string
	LeavingNotifyChannelID string

	Panel   PanelConfig
	Summary SummaryConfig
}

// PanelConfig controls the signup panel message posted by /ttrl-signup.
type PanelConfig struct {
	Title       string
	Description string
	LogoPath    string
}

// SummaryConfig controls the summary publisher and its refresh job.
type SummaryConfig struct {
	// PageBudget is the maximum number of channel messages searched for an
	// existing summary before giving up and posting a new one.
	PageBudget int
	// FetchLimit is the page size for each channel history fetch.
	FetchLimit int
	// RefreshSpec is a cron expression for the periodic re-publish job.
	RefreshSpec string
}
