// Package storage provides the SQLite session log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only per-session counters are stored; drawings themselves are never
// persisted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the session log lives unless --db says otherwise.
const DefaultPath = "~/.sketch/sessions.db"

// Store manages the SQLite database connection for the session log.
type Store struct {
	db *sql.DB
}

// Session is one finished run of a demo.
type Session struct {
	ID            int64
	DemoID        string
	Moves         int // Accepted rectangle steps
	Shapes        int // Committed circles and segments
	Intersections int // Intersection points found
	DurationSecs  int
	CreatedAt     time.Time
}

// DemoStats contains aggregated statistics for a demo.
type DemoStats struct {
	DemoID             string
	Sessions           int
	TotalMoves         int64
	TotalShapes        int64
	TotalIntersections int64
	TotalSecs          int64
	LastUsed           time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			demo_id TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			shapes INTEGER NOT NULL DEFAULT 0,
			intersections INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_demo_id ON sessions(demo_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(created_at DESC, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.DemoID == "" {
		return 0, errors.New("storage: session without demo id")
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (demo_id, moves, shapes, intersections, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		sess.DemoID, sess.Moves, sess.Shapes, sess.Intersections, sess.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions returns the newest sessions first.
// An empty demoID returns sessions of every demo.
func (s *Store) RecentSessions(demoID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, demo_id, moves, shapes, intersections, duration_secs, created_at
		 FROM sessions
		 WHERE ? = '' OR demo_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		demoID, demoID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdAt any
		if err := rows.Scan(
			&sess.ID,
			&sess.DemoID,
			&sess.Moves,
			&sess.Shapes,
			&sess.Intersections,
			&sess.DurationSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// DemoStats retrieves aggregated statistics for a specific demo.
// A demo without sessions yields zero counts.
func (s *Store) DemoStats(demoID string) (*DemoStats, error) {
	stats := &DemoStats{DemoID: demoID}

	var lastUsed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(moves), 0), COALESCE(SUM(shapes), 0),
		        COALESCE(SUM(intersections), 0), COALESCE(SUM(duration_secs), 0), MAX(created_at)
		 FROM sessions WHERE demo_id = ?`,
		demoID,
	).Scan(
		&stats.Sessions,
		&stats.TotalMoves,
		&stats.TotalShapes,
		&stats.TotalIntersections,
		&stats.TotalSecs,
		&lastUsed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get demo stats: %w", err)
	}
	stats.LastUsed = parseTime(lastUsed)

	return stats, nil
}

// AllDemoStats retrieves statistics for every demo that has sessions.
func (s *Store) AllDemoStats() (map[string]*DemoStats, error) {
	rows, err := s.db.Query(
		`SELECT demo_id, COUNT(*), SUM(moves), SUM(shapes), SUM(intersections),
		        SUM(duration_secs), MAX(created_at)
		 FROM sessions
		 GROUP BY demo_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all demo stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*DemoStats)
	for rows.Next() {
		var st DemoStats
		var lastUsed any
		if err := rows.Scan(
			&st.DemoID,
			&st.Sessions,
			&st.TotalMoves,
			&st.TotalShapes,
			&st.TotalIntersections,
			&st.TotalSecs,
			&lastUsed,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastUsed = parseTime(lastUsed)
		stats[st.DemoID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearSessions deletes the sessions of demoID, or all sessions if it is empty.
func (s *Store) ClearSessions(demoID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE ? = '' OR demo_id = ?", demoID, demoID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
