package storage

import (
	"fmt"
	"time"

	"github.com/mstern/cubekit"
)

// MoveRecord is one applied move within a session.
type MoveRecord struct {
	SessionID string
	Seq       int
	Notation  string
	AppliedAt time.Time
}

// MoveRepository provides access to the per-session move logs.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Append stores moves at the end of a session's log.
func (r *MoveRepository) Append(sessionID string, moves []cubekit.Move) error {
	if len(moves) == 0 {
		return nil
	}

	next, err := r.Count(sessionID)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i, m := range moves {
		_, err := r.db.Exec(`
			INSERT INTO moves (session_id, seq, notation, applied_at)
			VALUES (?, ?, ?, ?)
		`, sessionID, next+i, m.String(), now)
		if err != nil {
			return fmt.Errorf("failed to append move: %w", err)
		}
	}

	return nil
}

// GetBySession returns a session's moves in application order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT session_id, seq, notation, applied_at
		FROM moves
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var records []MoveRecord
	for rows.Next() {
		var rec MoveRecord
		var appliedAtStr string
		if err := rows.Scan(&rec.SessionID, &rec.Seq, &rec.Notation, &appliedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		rec.AppliedAt, _ = time.Parse(time.RFC3339, appliedAtStr)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Moves parses a session's log back into move values. Logs only ever hold
// notation produced by the library, so a parse failure means a corrupted
// database.
func (r *MoveRepository) Moves(sessionID string) ([]cubekit.Move, error) {
	records, err := r.GetBySession(sessionID)
	if err != nil {
		return nil, err
	}

	moves := make([]cubekit.Move, len(records))
	for i, rec := range records {
		m, err := cubekit.ParseMove(rec.Notation)
		if err != nil {
			return nil, fmt.Errorf("corrupt move log for %s at seq %d: %w", sessionID, rec.Seq, err)
		}
		moves[i] = m
	}

	return moves, nil
}

// Count returns the number of moves recorded for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var n int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return n, nil
}
