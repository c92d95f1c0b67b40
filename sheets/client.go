package sheets

import (
	"context"
	"fmt"
	"strings"

	"ttrl-signup-bot/model"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps value reads and appends against a single spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// New authenticates a service account from the client email and private key
// and returns a Client bound to the configured spreadsheet.
func New(ctx context.Context, cfg *model.Config) (*Client, error) {
	conf := &jwt.Config{
		Email: cfg.GoogleClientEmail,
		// .env files carry the key with literal \n sequences.
		PrivateKey: []byte(strings.ReplaceAll(cfg.GooglePrivateKey, `\n`, "\n")),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
	}, nil
}

// ReadColumn fetches the raw cell values for a range.
func (c *Client) ReadColumn(ctx context.Context, readRange string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}
	return resp.Values, nil
}

// Append writes one row at the bottom of the given range.
func (c *Client) Append(ctx context.Context, appendRange string, row []interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, appendRange, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row to %s: %w", appendRange, err)
	}
	return nil
}
