package store

import (
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// PendingSignup bridges the two button interactions of the two-step flow.
// It is created when a member picks a first-step choice that has a follow-up
// question and consumed by the second click. Abandoned entries are never
// reclaimed; they only disappear on process restart.
type PendingSignup struct {
	GuildID       string
	Choice        string
	FTRoleID      string
	ReserveRoleID string
}

// Store is the bot's mutable application state: the per-guild stats channel,
// the per-guild auto-role mapping and the per-user pending two-step state.
// Stats channels and auto-roles are checkpointed to sqlite and survive
// restarts; pending state is memory-only.
type Store struct {
	mu            sync.RWMutex
	db            *sqlx.DB
	statsChannels map[string]string            // guildID -> channelID
	autoRoles     map[string]map[string]string // guildID -> choice -> roleID
	pending       map[string]PendingSignup     // userID -> pending state
}

// Init opens the sqlite database and ensures the tables exist.
func Init(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS guild_configs (
		"guild_id" TEXT NOT NULL PRIMARY KEY,
		"stats_channel_id" TEXT
	);
	CREATE TABLE IF NOT EXISTS auto_roles (
		"guild_id" TEXT NOT NULL,
		"choice" TEXT NOT NULL,
		"role_id" TEXT NOT NULL,
		PRIMARY KEY ("guild_id", "choice")
	);`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// New builds a Store backed by db and loads the checkpointed state. A nil db
// gives a memory-only store; nothing is persisted and nothing is loaded.
func New(db *sqlx.DB) (*Store, error) {
	s := &Store{
		db:            db,
		statsChannels: make(map[string]string),
		autoRoles:     make(map[string]map[string]string),
		pending:       make(map[string]PendingSignup),
	}
	if db == nil {
		return s, nil
	}

	rows, err := db.Query("SELECT guild_id, stats_channel_id FROM guild_configs")
	if err != nil {
		return nil, fmt.Errorf("failed to load guild configs: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var guildID, channelID string
		if err := rows.Scan(&guildID, &channelID); err != nil {
			return nil, err
		}
		s.statsChannels[guildID] = channelID
	}

	roleRows, err := db.Query("SELECT guild_id, choice, role_id FROM auto_roles")
	if err != nil {
		return nil, fmt.Errorf("failed to load auto roles: %w", err)
	}
	defer roleRows.Close()
	for roleRows.Next() {
		var guildID, choice, roleID string
		if err := roleRows.Scan(&guildID, &choice, &roleID); err != nil {
			return nil, err
		}
		if s.autoRoles[guildID] == nil {
			s.autoRoles[guildID] = make(map[string]string)
		}
		s.autoRoles[guildID][choice] = roleID
	}

	return s, nil
}

// SetStatsChannel records the guild's summary channel and checkpoints it.
func (s *Store) SetStatsChannel(guildID, channelID string) error {
	s.mu.Lock()
	s.statsChannels[guildID] = channelID
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO guild_configs (guild_id, stats_channel_id) VALUES (?, ?)
		 ON CONFLICT(guild_id) DO UPDATE SET stats_channel_id = excluded.stats_channel_id`,
		guildID, channelID)
	if err != nil {
		return fmt.Errorf("failed to persist stats channel for guild %s: %w", guildID, err)
	}
	return nil
}

// StatsChannel returns the guild's configured summary channel, if any.
func (s *Store) StatsChannel(guildID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	channelID, ok := s.statsChannels[guildID]
	return channelID, ok
}

// ConfiguredGuilds returns every guild that has a stats channel set.
func (s *Store) ConfiguredGuilds() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	guilds := make([]string, 0, len(s.statsChannels))
	for guildID := range s.statsChannels {
		guilds = append(guilds, guildID)
	}
	return guilds
}

// SetAutoRole maps a choice label to a role that is added automatically
// when a member records that choice.
func (s *Store) SetAutoRole(guildID, choice, roleID string) error {
	s.mu.Lock()
	if s.autoRoles[guildID] == nil {
		s.autoRoles[guildID] = make(map[string]string)
	}
	s.autoRoles[guildID][choice] = roleID
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO auto_roles (guild_id, choice, role_id) VALUES (?, ?, ?)
		 ON CONFLICT(guild_id, choice) DO UPDATE SET role_id = excluded.role_id`,
		guildID, choice, roleID)
	if err != nil {
		return fmt.Errorf("failed to persist auto role for guild %s: %w", guildID, err)
	}
	return nil
}

// ClearAutoRole removes the auto-role mapping for a choice label.
func (s *Store) ClearAutoRole(guildID, choice string) error {
	s.mu.Lock()
	if roles, ok := s.autoRoles[guildID]; ok {
		delete(roles, choice)
	}
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec("DELETE FROM auto_roles WHERE guild_id = ? AND choice = ?", guildID, choice)
	if err != nil {
		return fmt.Errorf("failed to clear auto role for guild %s: %w", guildID, err)
	}
	return nil
}

// AutoRole returns the role mapped to a choice label, if any.
func (s *Store) AutoRole(guildID, choice string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	roles, ok := s.autoRoles[guildID]
	if !ok {
		return "", false
	}
	roleID, ok := roles[choice]
	return roleID, ok
}

// SetPending stores a user's first-step choice until the follow-up click.
func (s *Store) SetPending(userID string, p PendingSignup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[userID] = p
}

// TakePending consumes a user's pending state. The second return value is
// false if there was nothing pending.
func (s *Store) TakePending(userID string) (PendingSignup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[userID]
	if ok {
		delete(s.pending, userID)
	}
	return p, ok
}

// PendingCount reports how many two-step dialogues are currently open.
func (s *Store) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pending)
}
