package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists render history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external tooling can read while the demo writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logrus.WithField("path", dbPath).Info("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS frame_samples (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			composer  TEXT,
			dt_ms     REAL,
			ops       INTEGER,
			max_depth INTEGER,
			reveal    REAL,
			points    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_frame_ts ON frame_samples(timestamp)`,

		`CREATE TABLE IF NOT EXISTS session_events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			event_type TEXT,
			feed       TEXT,
			symbol     TEXT,
			note       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_session_ts ON session_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordFrame(s *FrameSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO frame_samples
		(timestamp, composer, dt_ms, ops, max_depth, reveal, points)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), s.Composer, s.DTMillis, s.Ops, s.MaxDepth, s.Reveal, s.Points,
	)
	return err
}

func (r *SQLiteRecorder) RecordSession(evt *SessionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO session_events
		(timestamp, event_type, feed, symbol, note)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.EventType, evt.Feed, evt.Symbol, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	logrus.Info("closing sqlite recorder")
	return r.db.Close()
}
