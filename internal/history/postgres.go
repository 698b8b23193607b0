package history

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL, for history shared across
// machines (e.g. a CI fleet writing to one database).
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store and applies migrations.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id SERIAL PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		iterations INTEGER NOT NULL,
		warmup INTEGER NOT NULL,
		entries TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Save inserts the run; entries go in as a JSON blob for flexibility.
func (s *PostgresStore) Save(run Run) error {
	entries, err := json.Marshal(run.Entries)
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO runs (created_at, iterations, warmup, entries) VALUES ($1, $2, $3, $4)`,
		run.Timestamp, run.Iterations, run.Warmup, string(entries))
	return err
}

// LoadAll returns every saved run, oldest first.
func (s *PostgresStore) LoadAll() ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT created_at, iterations, warmup, entries FROM runs ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var entries string
		if err := rows.Scan(&run.Timestamp, &run.Iterations, &run.Warmup, &entries); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(entries), &run.Entries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entries: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// LoadLatest returns the most recent run, or nil if there is none.
func (s *PostgresStore) LoadLatest() (*Run, error) {
	runs, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[len(runs)-1], nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
