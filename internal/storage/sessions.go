package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a recorded move session.
type Session struct {
	SessionID string
	StartedAt time.Time
	EndedAt   *time.Time
	Scramble  *string
	Notes     *string
	Solved    bool
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(scramble, notes string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr, notesPtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, scramble, notes)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), scramblePtr, notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as complete, recording whether the cube ended solved.
func (r *SessionRepository) End(sessionID string, solved bool) error {
	endedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, solved = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), solved, sessionID)

	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID, or nil if absent.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	err := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, scramble, notes, solved
		FROM sessions
		WHERE session_id = ?
	`, sessionID).Scan(
		&s.SessionID, &startedAtStr, &endedAtStr,
		&s.Scramble, &s.Notes, &s.Solved,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		s.EndedAt = &t
	}

	return &s, nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, scramble, notes, solved
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var startedAtStr string
		var endedAtStr sql.NullString

		err := rows.Scan(
			&s.SessionID, &startedAtStr, &endedAtStr,
			&s.Scramble, &s.Notes, &s.Solved,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
		if endedAtStr.Valid {
			t, _ := time.Parse(time.RFC3339, endedAtStr.String)
			s.EndedAt = &t
		}

		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session and its moves (cascading).
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
