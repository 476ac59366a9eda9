package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the snapshot database and ensures the schema exists.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Whole-container JSON snapshots, one row per (session, container).
-- Writes replace the previous snapshot; last write wins.
CREATE TABLE IF NOT EXISTS snapshots(
  session_id TEXT NOT NULL,
  container  TEXT NOT NULL,
  data       TEXT NOT NULL,
  updated_at TEXT,
  PRIMARY KEY (session_id, container)
);
CREATE INDEX IF NOT EXISTS idx_snapshots_session ON snapshots(session_id);
`
	_, err := db.Exec(schema)
	return err
}

// Store persists opaque whole-container snapshots keyed by session and
// container name, restored verbatim on the next load.
type Store struct{ db *sqlx.DB }

func NewStore(db *sqlx.DB) *Store { return &Store{db: db} }

// Save replaces the container snapshot for the session.
func (s *Store) Save(sessionID, container string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO snapshots(session_id, container, data, updated_at)
		VALUES(?,?,?,?)
		ON CONFLICT(session_id, container) DO UPDATE
		SET data = excluded.data, updated_at = excluded.updated_at
	`, sessionID, container, string(data), time.Now().UTC().Format(time.RFC3339))
	return err
}

// Load restores a snapshot into v. It reports false without touching v when
// no snapshot exists.
func (s *Store) Load(sessionID, container string, v any) (bool, error) {
	var data string
	err := s.db.Get(&data, `SELECT data FROM snapshots WHERE session_id = ? AND container = ?`,
		sessionID, container)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false, err
	}
	return true, nil
}

// Delete drops a container snapshot if present.
func (s *Store) Delete(sessionID, container string) error {
	_, err := s.db.Exec(`DELETE FROM snapshots WHERE session_id = ? AND container = ?`,
		sessionID, container)
	return err
}
