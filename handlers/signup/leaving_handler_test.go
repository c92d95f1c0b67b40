package signup

import (
	"testing"

	"ttrl-signup-bot/model"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLeaveCancelChangesNothing(t *testing.T) {
	gw := &fakeGateway{}
	b := newTestBot(t, gw)
	s := &fakeSession{}
	m := member("ft-role")

	cid := CustomID{Flow: FlowLeave, Action: ActionCancel, FTRoleID: "ft-role", ReserveRoleID: "res-role"}
	HandleLeave(s, buttonClick("g1", m), b, m, cid)

	assert.Empty(t, gw.appends)
	assert.Empty(t, s.roleRemoves)
	assert.Empty(t, s.roleAdds)
	assert.Equal(t, "No changes made. See you on track.", s.lastReply())
}

func TestHandleLeaveConfirmRecordsAndStripsRoles(t *testing.T) {
	gw := &fakeGateway{}
	b := newTestBot(t, gw)
	b.Config.LeavingRoleID = "leaving"
	b.Config.LeavingNotifyChannelID = "mod-log"

	m := member("ft-role", "bot-role", "integration", "higher")
	s := &fakeSession{
		guildRoles: []*discordgo.Role{
			{ID: "ft-role", Name: "FT Driver", Position: 1},
			{ID: "bot-role", Name: "Signup Bot", Position: 5},
			{ID: "integration", Name: "Some App", Position: 2, Managed: true},
			{ID: "higher", Name: "Admin", Position: 9},
		},
		members: map[string]*discordgo.Member{
			"bot": {User: &discordgo.User{ID: "bot"}, Roles: []string{"bot-role"}},
		},
	}

	cid := CustomID{Flow: FlowLeave, Action: ActionConfirm, FTRoleID: "ft-role", ReserveRoleID: "res-role"}
	HandleLeave(s, buttonClick("g1", m), b, m, cid)

	require.Len(t, gw.appends, 1)
	assert.Equal(t, model.ChoiceLeaving, gw.appends[0][12])

	// Only roles below the bot's top role and not managed are removed.
	assert.Equal(t, []string{"ft-role"}, s.roleRemoves)
	assert.Contains(t, s.roleAdds, "leaving")

	require.Len(t, s.embeds, 1)
	assert.Equal(t, "Driver leaving TTRL", s.embeds[0].Title)
}

func TestHandleLeaveConfirmRejectsDuplicate(t *testing.T) {
	gw := &fakeGateway{names: []string{"driver"}}
	b := newTestBot(t, gw)
	b.Config.LeavingRoleID = "leaving"
	s := &fakeSession{}
	m := member("ft-role")

	cid := CustomID{Flow: FlowLeave, Action: ActionConfirm, FTRoleID: "ft-role", ReserveRoleID: "res-role"}
	HandleLeave(s, buttonClick("g1", m), b, m, cid)

	assert.Empty(t, gw.appends)
	assert.Empty(t, s.roleRemoves)
	assert.Empty(t, s.roleAdds)
	assert.Equal(t, "You have already submitted your signup.", s.lastReply())
}
