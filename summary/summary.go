package summary

import (
	"fmt"
	"strings"

	"ttrl-signup-bot/model"
)

// Marker is the first line of the published summary message. The publisher
// recognizes its own previous message by this prefix.
const Marker = "**TTRL Signup Summary**"

// Counts is the tally of recorded choices, grouped by driver type.
type Counts struct {
	Total int

	FTStay    int
	FTReserve int
	FTLeave   int

	ResWantsFT int
	ResStay    int
	ResLeave   int

	// Breakdown of ResWantsFT by the two-step follow-up answer. Rows from
	// the one-step revision have no follow-up and count only in ResWantsFT.
	WantsFTFallbackStay  int
	WantsFTFallbackLeave int
}

// Compute tallies choices from summary-range rows (driver type through
// follow-up). A leading header row is skipped.
func Compute(rows [][]interface{}) Counts {
	var c Counts

	start := 0
	if len(rows) > 0 && cell(rows[0], model.SummaryDriverTypeIndex) == "Driver Type" {
		start = 1
	}

	for _, row := range rows[start:] {
		driverType := cell(row, model.SummaryDriverTypeIndex)
		choice := cell(row, model.SummaryChoiceIndex)
		if driverType == "" || choice == "" {
			continue
		}

		c.Total++

		switch driverType {
		case model.DriverTypeFT:
			switch choice {
			case model.ChoiceStayFT:
				c.FTStay++
			case model.ChoiceMoveToReserve:
				c.FTReserve++
			case model.ChoiceLeaving:
				c.FTLeave++
			}
		case model.DriverTypeReserve:
			switch choice {
			case model.ChoiceWantsFT:
				c.ResWantsFT++
				switch cell(row, model.SummaryFollowUpIndex) {
				case model.FollowUpStayReserve:
					c.WantsFTFallbackStay++
				case model.FollowUpLeave:
					c.WantsFTFallbackLeave++
				}
			case model.ChoiceStayReserve:
				c.ResStay++
			case model.ChoiceLeaving:
				c.ResLeave++
			}
		}
	}

	return c
}

// Render produces the summary message text.
func Render(c Counts) string {
	lines := []string{
		Marker,
		"",
		fmt.Sprintf("Total responses: %d", c.Total),
		"",
		"**Full Time Drivers:**",
		fmt.Sprintf("  Stay FT: %d", c.FTStay),
		fmt.Sprintf("  Move to Reserve: %d", c.FTReserve),
		fmt.Sprintf("  Leaving TTRL: %d", c.FTLeave),
		"",
		"**Reserve Drivers:**",
		fmt.Sprintf("  Wants FT seat: %d", c.ResWantsFT),
	}

	if c.WantsFTFallbackStay > 0 || c.WantsFTFallbackLeave > 0 {
		lines = append(lines,
			fmt.Sprintf("    └ would stay Reserve: %d", c.WantsFTFallbackStay),
			fmt.Sprintf("    └ would leave: %d", c.WantsFTFallbackLeave),
		)
	}

	lines = append(lines,
		fmt.Sprintf("  Stay Reserve: %d", c.ResStay),
		fmt.Sprintf("  Leaving TTRL: %d", c.ResLeave),
	)

	return strings.Join(lines, "\n")
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	s, _ := row[idx].(string)
	return s
}
