// Package sqlite persists event ledgers in a SQLite database, one row per
// player holding the versioned ledger payload.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	domainerrors "github.com/hardluck-games/streetlife/internal/errors"
	"github.com/hardluck-games/streetlife/internal/platform/storage/sqlitemigrate"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/ledger"
	"github.com/hardluck-games/streetlife/internal/services/events/storage"
	"github.com/hardluck-games/streetlife/internal/services/events/storage/sqlite/migrations"
)

// Store is a SQLite-backed ledger store.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the database at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying database. It is nil-safe so callers can defer
// it in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load reads the player's ledger. Missing players report storage.ErrNotFound.
func (s *Store) Load(ctx context.Context, playerID string) (*ledger.Ledger, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, fmt.Errorf("player id is required")
	}

	var payload []byte
	row := s.sqlDB.QueryRowContext(ctx, "SELECT payload FROM event_ledgers WHERE player_id = ?", playerID)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, domainerrors.Wrap(domainerrors.CodePersistenceFailure, err)
	}
	return ledger.Decode(payload)
}

// Save upserts the player's ledger row.
func (s *Store) Save(ctx context.Context, led *ledger.Ledger) error {
	if led == nil || strings.TrimSpace(led.PlayerID) == "" {
		return fmt.Errorf("ledger with player id is required")
	}

	payload, err := ledger.Encode(led)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO event_ledgers (player_id, schema_version, payload, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(player_id) DO UPDATE SET
    schema_version = excluded.schema_version,
    payload = excluded.payload,
    updated_at = excluded.updated_at
`, led.PlayerID, ledger.SchemaVersion, payload, time.Now().UTC().UnixMilli())
	if err != nil {
		return domainerrors.Wrap(domainerrors.CodePersistenceFailure, err)
	}
	return nil
}
