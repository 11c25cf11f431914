package overlay

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS overlay (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLiteKV persists overlay entries in a single-table SQLite database.
// Values remain opaque JSON documents; read-modify-write happens above
// this layer, so a row update replaces the whole document.
type SQLiteKV struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewSQLiteKV opens (or creates) the overlay database at path.
func NewSQLiteKV(path string, log zerolog.Logger) (*SQLiteKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create overlay directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open overlay database: %w", err)
	}

	// The overlay is a single shared resource; one connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create overlay schema: %w", err)
	}

	kv := &SQLiteKV{
		db:  db,
		log: log.With().Str("component", "overlay-sqlite").Logger(),
	}
	kv.log.Info().Str("path", path).Msg("Overlay database opened")
	return kv, nil
}

func (s *SQLiteKV) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM overlay WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (s *SQLiteKV) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO overlay (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(value),
	)
	return err
}

func (s *SQLiteKV) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM overlay WHERE key = ?", key)
	return err
}

func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
