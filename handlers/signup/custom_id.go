package signup

import (
	"fmt"
	"strings"
)

// Flow identifies which stage of the signup dialogue a button belongs to.
type Flow string

const (
	// FlowOpen is the panel's branch choice (FT or Reserve).
	FlowOpen Flow = "ttrlopen"
	// FlowFT carries the Full Time terminal choices.
	FlowFT Flow = "ttrlft"
	// FlowReserve carries the Reserve terminal choices.
	FlowReserve Flow = "ttrlres"
	// FlowStep2 is the follow-up question of the two-step flow.
	FlowStep2 Flow = "ttrlstep2"
	// FlowLeave is the leaving confirm/cancel pair.
	FlowLeave Flow = "ttrlleave"
)

// Actions per flow. The customID is the only state carried between clicks,
// so every transition must be reconstructible from (Flow, Action) plus the
// embedded role IDs.
const (
	ActionFT      = "ft"
	ActionReserve = "res"

	ActionStayFT        = "yes"
	ActionMoveToReserve = "reserve"
	ActionLeave         = "leave"

	ActionWantsFT     = "ft"
	ActionStayReserve = "stay"

	ActionConfirm = "confirm"
	ActionCancel  = "cancel"
)

// CustomID is the decoded form of a button identifier:
// "<flow>|<action>|<ftRoleID>|<reserveRoleID>". The step-2 buttons omit the
// role IDs; they travel in the pending map instead.
type CustomID struct {
	Flow          Flow
	Action        string
	FTRoleID      string
	ReserveRoleID string
}

const delimiter = "|"

var flowActions = map[Flow]map[string]bool{
	FlowOpen:    {ActionFT: true, ActionReserve: true},
	FlowFT:      {ActionStayFT: true, ActionMoveToReserve: true, ActionLeave: true},
	FlowReserve: {ActionWantsFT: true, ActionStayReserve: true, ActionLeave: true},
	FlowStep2:   {ActionStayReserve: true, ActionLeave: true},
	FlowLeave:   {ActionConfirm: true, ActionCancel: true},
}

// Encode renders the customID string for a button.
func (c CustomID) Encode() string {
	parts := []string{string(c.Flow), c.Action}
	if c.FTRoleID != "" || c.ReserveRoleID != "" {
		parts = append(parts, c.FTRoleID, c.ReserveRoleID)
	}
	return strings.Join(parts, delimiter)
}

// ParseCustomID decodes and validates a raw button identifier. Identifiers
// from other features, or malformed ones, return an error and are ignored
// by the dispatcher.
func ParseCustomID(raw string) (CustomID, error) {
	parts := strings.Split(raw, delimiter)
	if len(parts) < 2 {
		return CustomID{}, fmt.Errorf("customID %q has too few fields", raw)
	}

	flow := Flow(parts[0])
	actions, ok := flowActions[flow]
	if !ok {
		return CustomID{}, fmt.Errorf("unknown flow %q", parts[0])
	}

	action := parts[1]
	if !actions[action] {
		return CustomID{}, fmt.Errorf("unknown action %q for flow %q", action, flow)
	}

	c := CustomID{Flow: flow, Action: action}

	switch flow {
	case FlowStep2:
		// No role context; the pending entry holds it.
	default:
		if len(parts) != 4 || parts[2] == "" || parts[3] == "" {
			return CustomID{}, fmt.Errorf("customID %q is missing role context", raw)
		}
		c.FTRoleID = parts[2]
		c.ReserveRoleID = parts[3]
	}

	return c, nil
}
