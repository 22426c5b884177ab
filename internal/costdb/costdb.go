// Package costdb persists oracle cache entries in SQLite so later runs can
// start from a warm cache.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package costdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/maisem/keypad"
)

// Store manages the SQLite database holding computed costs.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("costdb: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("costdb: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("costdb: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("costdb: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("costdb: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS costs (
			fingerprint TEXT NOT NULL,
			pad INTEGER NOT NULL,
			from_button INTEGER NOT NULL,
			to_button INTEGER NOT NULL,
			levels INTEGER NOT NULL,
			cost INTEGER NOT NULL,
			PRIMARY KEY (fingerprint, pad, from_button, to_button, levels)
		);
	`)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load stores every entry saved under fingerprint into c and returns how
// many were read.
func (s *Store) Load(ctx context.Context, fingerprint string, c keypad.Cache) (int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT pad, from_button, to_button, levels, cost FROM costs WHERE fingerprint = ?",
		fingerprint,
	)
	if err != nil {
		return 0, fmt.Errorf("costdb: cannot query costs: %w", err)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var (
			q    keypad.Query
			pad  int
			from int32
			to   int32
			cost int
		)
		if err := rows.Scan(&pad, &from, &to, &q.Levels, &cost); err != nil {
			return n, fmt.Errorf("costdb: cannot scan cost: %w", err)
		}
		q.Pad, q.From, q.To = keypad.PadKind(pad), from, to
		c.Store(q, cost)
		n++
	}
	if err := rows.Err(); err != nil {
		return n, fmt.Errorf("costdb: reading costs: %w", err)
	}
	return n, nil
}

// Save writes every entry of c under fingerprint in one transaction.
// Existing rows are left as they are.
func (s *Store) Save(ctx context.Context, fingerprint string, c keypad.Cache) (n int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("costdb: cannot begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO costs (fingerprint, pad, from_button, to_button, levels, cost) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("costdb: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	c.Range(func(q keypad.Query, cost int) bool {
		_, err = stmt.ExecContext(ctx, fingerprint, int(q.Pad), q.From, q.To, q.Levels, cost)
		if err != nil {
			err = fmt.Errorf("costdb: cannot save %v: %w", q, err)
			return false
		}
		n++
		return true
	})
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("costdb: cannot commit: %w", err)
	}
	return n, nil
}

// Count returns the number of rows saved under fingerprint.
func (s *Store) Count(ctx context.Context, fingerprint string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM costs WHERE fingerprint = ?", fingerprint).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("costdb: cannot count costs: %w", err)
	}
	return n, nil
}
