package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(nil)
	require.NoError(t, err)
	return s
}

func TestStatsChannel(t *testing.T) {
	s := newMemoryStore(t)

	_, ok := s.StatsChannel("g1")
	assert.False(t, ok)

	require.NoError(t, s.SetStatsChannel("g1", "c1"))
	got, ok := s.StatsChannel("g1")
	require.True(t, ok)
	assert.Equal(t, "c1", got)

	// Re-running setup replaces the channel.
	require.NoError(t, s.SetStatsChannel("g1", "c2"))
	got, _ = s.StatsChannel("g1")
	assert.Equal(t, "c2", got)

	require.NoError(t, s.SetStatsChannel("g2", "c3"))
	assert.ElementsMatch(t, []string{"g1", "g2"}, s.ConfiguredGuilds())
}

func TestAutoRoles(t *testing.T) {
	s := newMemoryStore(t)

	_, ok := s.AutoRole("g1", "Stay FT")
	assert.False(t, ok)

	require.NoError(t, s.SetAutoRole("g1", "Stay FT", "r1"))
	roleID, ok := s.AutoRole("g1", "Stay FT")
	require.True(t, ok)
	assert.Equal(t, "r1", roleID)

	// Mappings are per guild.
	_, ok = s.AutoRole("g2", "Stay FT")
	assert.False(t, ok)

	require.NoError(t, s.ClearAutoRole("g1", "Stay FT"))
	_, ok = s.AutoRole("g1", "Stay FT")
	assert.False(t, ok)

	// Clearing an unknown mapping is fine.
	require.NoError(t, s.ClearAutoRole("g3", "Stay FT"))
}

func TestPending(t *testing.T) {
	s := newMemoryStore(t)

	_, ok := s.TakePending("u1")
	assert.False(t, ok)

	p := PendingSignup{GuildID: "g1", Choice: "Wants FT seat", FTRoleID: "111", ReserveRoleID: "222"}
	s.SetPending("u1", p)
	assert.Equal(t, 1, s.PendingCount())

	got, ok := s.TakePending("u1")
	require.True(t, ok)
	assert.Equal(t, p, got)
	assert.Equal(t, 0, s.PendingCount())

	// Consumed exactly once.
	_, ok = s.TakePending("u1")
	assert.False(t, ok)
}

func TestPendingIsPerUser(t *testing.T) {
	s := newMemoryStore(t)
	s.SetPending("u1", PendingSignup{GuildID: "g1", Choice: "Wants FT seat"})
	s.SetPending("u2", PendingSignup{GuildID: "g2", Choice: "Wants FT seat"})

	got, ok := s.TakePending("u2")
	require.True(t, ok)
	assert.Equal(t, "g2", got.GuildID)
	assert.Equal(t, 1, s.PendingCount())
}

func TestSqlitePersistence(t *testing.T) {
	dbPath := t.TempDir() + "/signup.db"

	db, err := Init(dbPath)
	require.NoError(t, err)
	s, err := New(db)
	require.NoError(t, err)

	require.NoError(t, s.SetStatsChannel("g1", "c1"))
	require.NoError(t, s.SetAutoRole("g1", "Stay FT", "r1"))
	require.NoError(t, db.Close())

	// A fresh store sees the checkpointed state.
	db2, err := Init(dbPath)
	require.NoError(t, err)
	defer db2.Close()
	reloaded, err := New(db2)
	require.NoError(t, err)

	channelID, ok := reloaded.StatsChannel("g1")
	require.True(t, ok)
	assert.Equal(t, "c1", channelID)

	roleID, ok := reloaded.AutoRole("g1", "Stay FT")
	require.True(t, ok)
	assert.Equal(t, "r1", roleID)

	// Pending state is memory-only and does not survive.
	assert.Equal(t, 0, reloaded.PendingCount())
}
