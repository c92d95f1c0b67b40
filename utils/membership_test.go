package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMembership(t *testing.T) {
	now := time.Date(2025, 12, 5, 12, 0, 0, 0, time.UTC)
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	cases := []struct {
		name   string
		joined time.Time
		want   string
	}{
		{"joined today", now, "<1m"},
		{"under a month", daysAgo(29), "<1m"},
		{"three months", daysAgo(95), "3m"},
		{"exactly a season", daysAgo(365), "1 seasons"},
		{"two seasons", daysAgo(740), "2 seasons"},
		{"season and a bit", daysAgo(365 + 95), "1 seasons 3m"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatMembership(tc.joined, now))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 12, 5, 9, 3, 7, 0, time.UTC)
	assert.Equal(t, "2025-12-05 09:03:07", FormatTimestamp(ts))
}
