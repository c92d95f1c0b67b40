package signup

import (
	"log"

	"ttrl-signup-bot/bot"
	"ttrl-signup-bot/model"
	"ttrl-signup-bot/store"
	"ttrl-signup-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleButton routes a decoded button click to its dialogue transition.
func HandleButton(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, cid CustomID) {
	member := resolveMember(s, i)
	if member == nil {
		utils.SendEphemeralResponse(s, i, "Could not load your member data.")
		return
	}

	switch cid.Flow {
	case FlowOpen:
		handleOpen(s, i, member, cid)
	case FlowFT, FlowReserve:
		handleTerminal(s, i, b, member, cid)
	case FlowStep2:
		handleStep2(s, i, b, member, cid)
	case FlowLeave:
		HandleLeave(s, i, b, member, cid)
	}
}

// handleOpen gates the branch choice on the matching role and replies with
// that branch's terminal buttons.
func handleOpen(s sessionAPI, i *discordgo.InteractionCreate, member *discordgo.Member, cid CustomID) {
	if cid.Action == ActionFT && !memberHasRole(member, cid.FTRoleID) {
		utils.SendEphemeralResponse(s, i, "You do not have the FT role.")
		return
	}
	if cid.Action == ActionReserve && !memberHasRole(member, cid.ReserveRoleID) {
		utils.SendEphemeralResponse(s, i, "You do not have the Reserve role.")
		return
	}

	branch := func(flow Flow, action string) string {
		return CustomID{Flow: flow, Action: action, FTRoleID: cid.FTRoleID, ReserveRoleID: cid.ReserveRoleID}.Encode()
	}

	var content string
	var row discordgo.ActionsRow

	if cid.Action == ActionFT {
		content = "For FT drivers: What do you want to do next season?"
		row = discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Stay FT", Style: discordgo.SuccessButton, CustomID: branch(FlowFT, ActionStayFT)},
				discordgo.Button{Label: "Move to Reserve", Style: discordgo.PrimaryButton, CustomID: branch(FlowFT, ActionMoveToReserve)},
				discordgo.Button{Label: "Leaving TTRL", Style: discordgo.DangerButton, CustomID: branch(FlowFT, ActionLeave)},
			},
		}
	} else {
		content = "For Reserve drivers: What do you want to do next season?"
		row = discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Want FT seat", Style: discordgo.SuccessButton, CustomID: branch(FlowReserve, ActionWantsFT)},
				discordgo.Button{Label: "Stay Reserve", Style: discordgo.PrimaryButton, CustomID: branch(FlowReserve, ActionStayReserve)},
				discordgo.Button{Label: "Leaving TTRL", Style: discordgo.DangerButton, CustomID: branch(FlowReserve, ActionLeave)},
			},
		}
	}

	utils.SendEphemeralComponents(s, i, content, []discordgo.MessageComponent{row})
}

// handleTerminal handles the second panel. Leaving gets a confirmation
// prompt, "Wants FT seat" opens the follow-up question, everything else is
// recorded immediately.
func handleTerminal(s sessionAPI, i *discordgo.InteractionCreate, b *bot.Bot, member *discordgo.Member, cid CustomID) {
	if cid.Action == ActionLeave {
		promptLeaveConfirmation(s, i, cid)
		return
	}

	if cid.Flow == FlowReserve && cid.Action == ActionWantsFT {
		b.Store.SetPending(member.User.ID, store.PendingSignup{
			GuildID:       i.GuildID,
			Choice:        model.ChoiceWantsFT,
			FTRoleID:      cid.FTRoleID,
			ReserveRoleID: cid.ReserveRoleID,
		})
		utils.SendEphemeralComponents(s, i,
			"If no FT seat opens up, what would you do?",
			[]discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{Label: "Stay Reserve", Style: discordgo.PrimaryButton, CustomID: CustomID{Flow: FlowStep2, Action: ActionStayReserve}.Encode()},
						discordgo.Button{Label: "Leave TTRL", Style: discordgo.DangerButton, CustomID: CustomID{Flow: FlowStep2, Action: ActionLeave}.Encode()},
					},
				},
			})
		return
	}

	choice, ok := choiceFor(cid.Flow, cid.Action)
	if !ok {
		log.Printf("No choice mapped for flow %s action %s", cid.Flow, cid.Action)
		return
	}

	recordSignup(s, i, b, member, cid.FTRoleID, cid.ReserveRoleID, choice, "")
}

// handleStep2 consumes the pending first-step choice and records the
// combined answer.
func handleStep2(s sessionAPI, i *discordgo.InteractionCreate, b *bot.Bot, member *discordgo.Member, cid CustomID) {
	pending, ok := b.Store.TakePending(member.User.ID)
	if !ok {
		utils.SendEphemeralResponse(s, i, "This question has expired. Please start again from the panel.")
		return
	}
	if pending.GuildID != i.GuildID {
		// A stale step-2 click from another guild must not destroy the
		// pending answer for the guild that asked the question.
		b.Store.SetPending(member.User.ID, pending)
		utils.SendEphemeralResponse(s, i, "This question has expired. Please start again from the panel.")
		return
	}

	followUp := model.FollowUpStayReserve
	if cid.Action == ActionLeave {
		followUp = model.FollowUpLeave
	}

	recordSignup(s, i, b, member, pending.FTRoleID, pending.ReserveRoleID, pending.Choice, followUp)
}

// choiceFor maps a terminal (flow, action) pair to its recorded label.
func choiceFor(flow Flow, action string) (string, bool) {
	switch flow {
	case FlowFT:
		switch action {
		case ActionStayFT:
			return model.ChoiceStayFT, true
		case ActionMoveToReserve:
			return model.ChoiceMoveToReserve, true
		case ActionLeave:
			return model.ChoiceLeaving, true
		}
	case FlowReserve:
		switch action {
		case ActionWantsFT:
			return model.ChoiceWantsFT, true
		case ActionStayReserve:
			return model.ChoiceStayReserve, true
		case ActionLeave:
			return model.ChoiceLeaving, true
		}
	}
	return "", false
}
