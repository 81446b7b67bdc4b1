package score

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database holding local high scores.
type Store struct {
	conn *sql.DB
}

// Row is one high-score record.
type Row struct {
	ID        int64
	Name      string
	Score     int
	Wave      int
	CreatedAt time.Time
}

// Open opens (or creates) the score database at path.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}
	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

// migrate creates tables if they don't exist
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL DEFAULT 'PLAYER',
		score INTEGER NOT NULL,
		wave INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_score ON scores(score DESC);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save records a finished run.
func (s *Store) Save(name string, scoreVal, wave int) error {
	_, err := s.conn.Exec(
		"INSERT INTO scores (name, score, wave) VALUES (?, ?, ?)",
		name, scoreVal, wave,
	)
	return err
}

// Top returns the best n scores, highest first.
func (s *Store) Top(n int) ([]Row, error) {
	rows, err := s.conn.Query(
		"SELECT id, name, score, wave, created_at FROM scores ORDER BY score DESC, id ASC LIMIT ?", n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Name, &r.Score, &r.Wave, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Best returns the highest recorded score, or 0 with no rows.
func (s *Store) Best() (int, error) {
	var best sql.NullInt64
	err := s.conn.QueryRow("SELECT MAX(score) FROM scores").Scan(&best)
	if err != nil {
		return 0, err
	}
	return int(best.Int64), nil
}
