package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRowColumnOrder(t *testing.T) {
	r := SignupRecord{
		Timestamp:      "2025-12-05 09:00:00",
		DisplayName:    "A",
		Username:       "a0001",
		CurrentRole:    "Full Time Driver",
		DriverType:     DriverTypeFT,
		MembershipText: "2 seasons",
		UserID:         "42",
		AccountCreated: "2020-01-01",
		AvatarURL:      "https://cdn/avatar.png",
		AllRoles:       "Full Time, Veteran",
		BoostStatus:    "Not boosting",
		JoinDate:       "2023-11-02",
		Choice:         ChoiceStayFT,
		FollowUp:       "",
	}

	row := r.ToRow()
	assert.Len(t, row, 14, "layout is A through N")
	assert.Equal(t, "A", row[1], "display name is column B")
	assert.Equal(t, DriverTypeFT, row[4], "driver type is column E")
	assert.Equal(t, ChoiceStayFT, row[12], "choice is column M")
	assert.Equal(t, "", row[13], "follow-up is column N")
}

func TestRangesShareTheSchema(t *testing.T) {
	assert.Equal(t, "Sheet1!A:N", AppendRange("Sheet1"))
	assert.Equal(t, "Sheet1!B:B", NameRange("Sheet1"))
	assert.Equal(t, "Sheet1!E:N", SummaryRange("Sheet1"))
}

func TestSummaryIndicesMatchToRow(t *testing.T) {
	r := SignupRecord{DriverType: DriverTypeReserve, Choice: ChoiceWantsFT, FollowUp: FollowUpLeave}
	row := r.ToRow()

	// The summary reads E:N; E is offset 4 in the full row.
	summaryRow := row[4:]
	assert.Equal(t, DriverTypeReserve, summaryRow[SummaryDriverTypeIndex])
	assert.Equal(t, ChoiceWantsFT, summaryRow[SummaryChoiceIndex])
	assert.Equal(t, FollowUpLeave, summaryRow[SummaryFollowUpIndex])
}
