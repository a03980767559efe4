package store

import (
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jonntd/anima/util/log"
)

const settingsSchema = `
CREATE TABLE IF NOT EXISTS camera_settings (
    key TEXT PRIMARY KEY,
    value TEXT,
    type TEXT,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLite is a durable store backed by a local SQLite database, used by the
// CLI so option box values survive across sessions without the desktop
// dialog running. Read and write failures are logged and surface as
// missing values; the caller's defaults pass repairs the rest.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the settings database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open settings database: %w", err)
	}
	if _, err := db.Exec(settingsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create settings table: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Exists reports whether a value is stored for name.
func (s *SQLite) Exists(name string) bool {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM camera_settings WHERE key = ?", name,
	).Scan(&count)
	if err != nil {
		log.Printf("settings lookup for %q failed: %v", name, err)
		return false
	}
	return count > 0
}

func (s *SQLite) get(name string) (string, bool) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM camera_settings WHERE key = ?", name,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		log.Printf("settings read for %q failed: %v", name, err)
		return "", false
	}
	return value, true
}

func (s *SQLite) set(name, value, valueType string) {
	_, err := s.db.Exec(
		`INSERT INTO camera_settings (key, value, type, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		type = excluded.type,
		updated_at = CURRENT_TIMESTAMP`,
		name, value, valueType,
	)
	if err != nil {
		log.Printf("settings write for %q failed: %v", name, err)
	}
}

// Float returns the stored float for name, zero when absent or unparsable.
func (s *SQLite) Float(name string) float64 {
	raw, ok := s.get(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("setting %q holds %q, not a float", name, raw)
		return 0
	}
	return v
}

// Int returns the stored int for name, zero when absent or unparsable.
func (s *SQLite) Int(name string) int {
	raw, ok := s.get(name)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("setting %q holds %q, not an int", name, raw)
		return 0
	}
	return v
}

// Bool returns the stored bool for name, false when absent or unparsable.
func (s *SQLite) Bool(name string) bool {
	raw, ok := s.get(name)
	if !ok {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("setting %q holds %q, not a bool", name, raw)
		return false
	}
	return v
}

// SetFloat stores a float value under name.
func (s *SQLite) SetFloat(name string, value float64) {
	s.set(name, strconv.FormatFloat(value, 'f', -1, 64), "float")
}

// SetInt stores an int value under name.
func (s *SQLite) SetInt(name string, value int) {
	s.set(name, strconv.Itoa(value), "int")
}

// SetBool stores a bool value under name.
func (s *SQLite) SetBool(name string, value bool) {
	s.set(name, strconv.FormatBool(value), "bool")
}
