// Package sqlite persists game snapshots and the action journal.
//
// Snapshots hold the full JSON-encoded root at a checkpoint; the journal
// holds every accepted action in sequence order. Replaying the journal over
// the initial snapshot reproduces the current root byte for byte, which is
// what makes saves verifiable.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mage-knight-digital/mageknight/internal/game/action"
	"github.com/mage-knight-digital/mageknight/internal/game/state"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNotFound reports a missing snapshot or journal.
var ErrNotFound = errors.New("sqlite: not found")

// Store is a SQLite-backed snapshot and journal store.
type Store struct {
	sqlDB *sql.DB
}

// JournalEntry is one accepted action in a game's journal.
type JournalEntry struct {
	Seq    int
	Player state.PlayerID
	Action action.Action
}

// Open opens the store at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func applyMigrations(sqlDB *sql.DB) error {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	for _, file := range files {
		contents, err := fs.ReadFile(migrationsFS, "migrations/"+file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if _, err := sqlDB.Exec(string(contents)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}
	return nil
}

// SaveSnapshot stores the full root for a game, replacing any prior
// snapshot.
func (s *Store) SaveSnapshot(ctx context.Context, g state.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	encoded, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO snapshots (game_id, state, created_at)
VALUES (?, ?, ?)
ON CONFLICT(game_id) DO UPDATE SET state = excluded.state, created_at = excluded.created_at
`, g.ID, encoded, time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot loads the stored root for a game.
func (s *Store) LoadSnapshot(ctx context.Context, gameID string) (state.Game, error) {
	if err := ctx.Err(); err != nil {
		return state.Game{}, err
	}
	var encoded []byte
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT state FROM snapshots WHERE game_id = ?`, gameID,
	).Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return state.Game{}, fmt.Errorf("%w: snapshot %s", ErrNotFound, gameID)
	}
	if err != nil {
		return state.Game{}, fmt.Errorf("load snapshot: %w", err)
	}
	var g state.Game
	if err := json.Unmarshal(encoded, &g); err != nil {
		return state.Game{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return g, nil
}

// AppendAction appends one accepted action to a game's journal.
func (s *Store) AppendAction(ctx context.Context, gameID string, seq int, player state.PlayerID, act action.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	encoded, err := action.Encode(act)
	if err != nil {
		return fmt.Errorf("encode action: %w", err)
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO action_journal (game_id, seq, player, action, created_at)
VALUES (?, ?, ?, ?, ?)
`, gameID, seq, string(player), encoded, time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("append action: %w", err)
	}
	return nil
}

// ListActions returns a game's journal in sequence order.
func (s *Store) ListActions(ctx context.Context, gameID string) ([]JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT seq, player, action FROM action_journal WHERE game_id = ? ORDER BY seq ASC
`, gameID)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var (
			entry   JournalEntry
			player  string
			encoded []byte
		)
		if err := rows.Scan(&entry.Seq, &player, &encoded); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		act, err := action.Decode(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode action seq %d: %w", entry.Seq, err)
		}
		entry.Player = state.PlayerID(player)
		entry.Action = act
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal rows: %w", err)
	}
	return entries, nil
}
