package signup

import (
	"testing"

	"ttrl-signup-bot/model"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func member(roles ...string) *discordgo.Member {
	return &discordgo.Member{
		Roles: roles,
		User:  &discordgo.User{ID: "42", Username: "driver"},
	}
}

func TestMemberDriverType(t *testing.T) {
	t.Run("ft role", func(t *testing.T) {
		assert.Equal(t, model.DriverTypeFT, memberDriverType(member("111"), "111", "222"))
	})
	t.Run("reserve role", func(t *testing.T) {
		assert.Equal(t, model.DriverTypeReserve, memberDriverType(member("222"), "111", "222"))
	})
	t.Run("reserve wins when both held", func(t *testing.T) {
		assert.Equal(t, model.DriverTypeReserve, memberDriverType(member("111", "222"), "111", "222"))
	})
	t.Run("neither role", func(t *testing.T) {
		assert.Equal(t, model.DriverTypeUnknown, memberDriverType(member("333"), "111", "222"))
	})
}

func TestCurrentRoleLabel(t *testing.T) {
	assert.Equal(t, "Full Time Driver", currentRoleLabel(model.DriverTypeFT))
	assert.Equal(t, "Reserve Driver", currentRoleLabel(model.DriverTypeReserve))
	assert.Equal(t, "Unknown", currentRoleLabel(model.DriverTypeUnknown))
}

func TestMemberDisplayName(t *testing.T) {
	m := member()
	assert.Equal(t, "driver", memberDisplayName(m))

	m.User.GlobalName = "Driver A"
	assert.Equal(t, "Driver A", memberDisplayName(m))

	m.Nick = "A"
	assert.Equal(t, "A", memberDisplayName(m))
}
