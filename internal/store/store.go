// Package store persists scored sessions in a local SQLite file. The
// collection is append-only: sessions are immutable once written and only a
// full clear removes them. There is exactly one writer by design; the store
// takes no locks beyond SQLite's own.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kdossou/focusedu/internal/model"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		timestamp TEXT NOT NULL,
		last_name TEXT NOT NULL,
		first_name TEXT NOT NULL,
		role TEXT NOT NULL,
		context TEXT NOT NULL,
		answers TEXT NOT NULL,
		score INTEGER NOT NULL,
		category TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append assigns the session an id and timestamp and stores it. The filled-in
// session is returned; all other fields are written exactly as given and
// never touched again.
func (s *Store) Append(sess model.Session) (model.Session, error) {
	sess.ID = uuid.NewString()
	sess.Timestamp = time.Now().UTC().Format(time.RFC3339)

	ctx, err := json.Marshal(sess.Context)
	if err != nil {
		return model.Session{}, fmt.Errorf("marshal context: %w", err)
	}
	answers, err := json.Marshal(sess.Answers)
	if err != nil {
		return model.Session{}, fmt.Errorf("marshal answers: %w", err)
	}
	category, err := json.Marshal(sess.Category)
	if err != nil {
		return model.Session{}, fmt.Errorf("marshal category: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO sessions (id, timestamp, last_name, first_name, role, context, answers, score, category)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.Timestamp, sess.Identity.LastName, sess.Identity.FirstName,
		sess.Context.Role, string(ctx), string(answers), sess.Score, string(category),
	)
	if err != nil {
		return model.Session{}, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

// LoadAll returns every stored session in insertion order.
func (s *Store) LoadAll() ([]model.Session, error) {
	rows, err := s.db.Query(
		`SELECT id, timestamp, last_name, first_name, context, answers, score, category
		 FROM sessions ORDER BY rowid`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		var sess model.Session
		var ctx, answers, category string
		if err := rows.Scan(&sess.ID, &sess.Timestamp,
			&sess.Identity.LastName, &sess.Identity.FirstName,
			&ctx, &answers, &sess.Score, &category); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(ctx), &sess.Context); err != nil {
			return nil, fmt.Errorf("session %s: unmarshal context: %w", sess.ID, err)
		}
		if err := json.Unmarshal([]byte(answers), &sess.Answers); err != nil {
			return nil, fmt.Errorf("session %s: unmarshal answers: %w", sess.ID, err)
		}
		if err := json.Unmarshal([]byte(category), &sess.Category); err != nil {
			return nil, fmt.Errorf("session %s: unmarshal category: %w", sess.ID, err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// Count returns the number of stored sessions.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count)
	return count, err
}

// HasIdentity reports whether a session with the same role and
// case-insensitive last/first name already exists.
func (s *Store) HasIdentity(role model.Role, lastName, firstName string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM sessions
		 WHERE role = ? AND LOWER(last_name) = LOWER(?) AND LOWER(first_name) = LOWER(?)`,
		role, lastName, firstName,
	).Scan(&count)
	return count > 0, err
}

// Clear removes every stored session.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM sessions`)
	return err
}
