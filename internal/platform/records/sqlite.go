package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	apperrors "konkrete/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps every logical record as one JSON payload row.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS records (
  scope TEXT NOT NULL,
  name TEXT NOT NULL,
  payload TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  PRIMARY KEY (scope, name)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create records table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, scope, name string, out any) error {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM records WHERE scope = ? AND name = ?`, scope, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("read record %s/%s: %w", scope, name, err)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("decode record %s/%s: %w", scope, name, err)
	}
	return nil
}

func (s *SQLiteStore) Put(ctx context.Context, scope, name string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %s/%s: %w", scope, name, err)
	}
	const stmt = `
INSERT INTO records (scope, name, payload, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(scope, name) DO UPDATE SET
  payload=excluded.payload,
  updated_at=excluded.updated_at
`
	if _, err := s.db.ExecContext(ctx, stmt, scope, name, string(payload), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("write record %s/%s: %w", scope, name, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, scope, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE scope = ? AND name = ?`, scope, name); err != nil {
		return fmt.Errorf("delete record %s/%s: %w", scope, name, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
