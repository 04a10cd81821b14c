package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"jobdigest/internal/model"
)

// Ensure SQLiteStore implements model.SeenStore.
var _ model.SeenStore = (*SQLiteStore)(nil)

// SQLiteStore keeps the seen-set in a SQLite database. Rowid order stands
// in for insertion order, so the FIFO cap prunes the oldest identities.
type SQLiteStore struct {
	db  *sql.DB
	cap int
}

// NewSQLiteStore opens (or creates) a database at dbPath and ensures the
// seen_jobs table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS seen_jobs (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		identity  TEXT UNIQUE NOT NULL,
		first_seen DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating seen_jobs table: %w", err)
	}

	return &SQLiteStore{db: db, cap: DefaultCap}, nil
}

// Load returns all recorded identities in insertion order.
func (s *SQLiteStore) Load() (*model.SeenSet, error) {
	rows, err := s.db.Query("SELECT identity FROM seen_jobs ORDER BY id")
	if err != nil {
		return model.NewSeenSet(), fmt.Errorf("loading seen jobs: %w", err)
	}
	defer rows.Close()

	var identities []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return model.NewSeenSet(), fmt.Errorf("scanning seen job: %w", err)
		}
		identities = append(identities, id)
	}
	if err := rows.Err(); err != nil {
		return model.NewSeenSet(), fmt.Errorf("loading seen jobs: %w", err)
	}
	return model.NewSeenSet(identities...), nil
}

// Save inserts any new identities and prunes entries beyond the cap,
// oldest first.
func (s *SQLiteStore) Save(seen *model.SeenSet) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("saving seen jobs: %w", err)
	}
	defer tx.Rollback()

	for _, identity := range seen.Identities() {
		if _, err := tx.Exec("INSERT OR IGNORE INTO seen_jobs (identity) VALUES (?)", identity); err != nil {
			return fmt.Errorf("inserting seen job: %w", err)
		}
	}

	prune := `DELETE FROM seen_jobs WHERE id NOT IN (
		SELECT id FROM seen_jobs ORDER BY id DESC LIMIT ?
	)`
	if _, err := tx.Exec(prune, s.cap); err != nil {
		return fmt.Errorf("pruning seen jobs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("saving seen jobs: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
