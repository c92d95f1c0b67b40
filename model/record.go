package model

import "fmt"

// Driver types as written to the sheet and read back by the summary.
const (
	DriverTypeFT      = "FT"
	DriverTypeReserve = "Reserve"
	DriverTypeUnknown = "Unknown"
)

// Terminal choice labels. These are the values of the choice column and the
// keys of the auto-role mapping.
const (
	ChoiceStayFT        = "Stay FT"
	ChoiceMoveToReserve = "Move to Reserve"
	ChoiceWantsFT       = "Wants FT seat"
	ChoiceStayReserve   = "Stay Reserve"
	ChoiceLeaving       = "Leaving TTRL"
)

// Follow-up answers for the two-step "Wants FT seat" flow (column N).
const (
	FollowUpStayReserve = "Stay Reserve if no seat"
	FollowUpLeave       = "Leave if no seat"
)

// SignupRecord is one appended row. The field order here IS the sheet
// column layout (A through N); both the append writer and the summary
// reader derive their ranges from it, so the two cannot drift apart.
type SignupRecord struct {
	Timestamp      string // A
	DisplayName    string // B
	Username       string // C
	CurrentRole    string // D
	DriverType     string // E
	MembershipText string // F
	UserID         string // G
	AccountCreated string // H
	AvatarURL      string // I
	AllRoles       string // J
	BoostStatus    string // K
	JoinDate       string // L
	Choice         string // M
	FollowUp       string // N, blank for one-step flows
}

// ToRow returns the record as a positional sheet row, A through N.
func (r SignupRecord) ToRow() []interface{} {
	return []interface{}{
		r.Timestamp,
		r.DisplayName,
		r.Username,
		r.CurrentRole,
		r.DriverType,
		r.MembershipText,
		r.UserID,
		r.AccountCreated,
		r.AvatarURL,
		r.AllRoles,
		r.BoostStatus,
		r.JoinDate,
		r.Choice,
		r.FollowUp,
	}
}

// Sheet column positions that other components key off.
const (
	colFirst      = "A"
	colName       = "B"
	colDriverType = "E"
	colLast       = "N"
)

// Offsets within a summary-range row (colDriverType..colLast).
const (
	SummaryDriverTypeIndex = 0 // E
	SummaryChoiceIndex     = 8 // M
	SummaryFollowUpIndex   = 9 // N
)

// AppendRange is the full-row range appends are anchored to.
func AppendRange(sheet string) string {
	return fmt.Sprintf("%s!%s:%s", sheet, colFirst, colLast)
}

// NameRange is the display-name column used for duplicate detection.
func NameRange(sheet string) string {
	return fmt.Sprintf("%s!%s:%s", sheet, colName, colName)
}

// SummaryRange covers driver type through follow-up for tallying.
func SummaryRange(sheet string) string {
	return fmt.Sprintf("%s!%s:%s", sheet, colDriverType, colLast)
}
