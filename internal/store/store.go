// Package store provides local persistence for the resume profile and the
// remote-provider credential. Data lives in a single-file SQLite database
// laid out as a key/value table, so the on-disk shape stays a flat JSON
// document per key.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jonathan/resume-autofill/internal/types"
)

// Storage keys. The profile document and the credential are stored under
// fixed keys in the kv table.
const (
	keyProfile = "resumeData"
	keyAPIKey  = "openai_api_key"
)

// Store wraps the SQLite database holding profile and credential state.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path, creating parent directories
// as needed, and ensures the schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DefaultPath returns the default database location under the user's home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".resume-autofill", "store.db")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return err
}

func (s *Store) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// get returns the stored value and whether the key existed.
func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

// SaveProfile persists the profile as a JSON document, replacing any stored
// one.
func (s *Store) SaveProfile(ctx context.Context, profile *types.Profile) error {
	if profile == nil {
		return fmt.Errorf("profile is nil")
	}
	doc, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.put(ctx, keyProfile, string(doc)); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// LoadProfile returns the stored profile. A profile that was never saved is
// an empty profile, not an error.
func (s *Store) LoadProfile(ctx context.Context) (*types.Profile, error) {
	doc, ok, err := s.get(ctx, keyProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if !ok {
		return &types.Profile{}, nil
	}

	var profile types.Profile
	if err := json.Unmarshal([]byte(doc), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode stored profile: %w", err)
	}
	return &profile, nil
}

// SaveAPIKey stores the remote-provider credential.
func (s *Store) SaveAPIKey(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("api key is empty")
	}
	if err := s.put(ctx, keyAPIKey, key); err != nil {
		return fmt.Errorf("failed to save api key: %w", err)
	}
	return nil
}

// LoadAPIKey returns the stored credential, or "" when none is stored.
func (s *Store) LoadAPIKey(ctx context.Context) (string, error) {
	key, _, err := s.get(ctx, keyAPIKey)
	if err != nil {
		return "", fmt.Errorf("failed to load api key: %w", err)
	}
	return key, nil
}

// ClearAPIKey removes the stored credential. Clearing an absent key is a
// no-op.
func (s *Store) ClearAPIKey(ctx context.Context) error {
	if err := s.delete(ctx, keyAPIKey); err != nil {
		return fmt.Errorf("failed to clear api key: %w", err)
	}
	return nil
}
