package utils

import (
	"fmt"
	"time"
)

// FormatTimestamp renders a sheet timestamp, local time.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// FormatMembership renders how long a member has been in the server using
// the league's season vocabulary: "<1m", "3m", "2 seasons", "1 seasons 3m".
// A season is a year; months are approximated at 30 days.
func FormatMembership(joined, now time.Time) string {
	days := int(now.Sub(joined).Hours() / 24)
	years := days / 365
	months := (days % 365) / 30

	switch {
	case years == 0 && months == 0:
		return "<1m"
	case years == 0:
		return fmt.Sprintf("%dm", months)
	case months == 0:
		return fmt.Sprintf("%d seasons", years)
	default:
		return fmt.Sprintf("%d seasons %dm", years, months)
	}
}
