package cubekit

import "time"

// TrackedMove is a move with the time it was applied.
type TrackedMove struct {
	Move Move
	Time time.Time
}

// Tracker wraps a Cube and provides solved-state change detection with a
// timestamped move log.
type Tracker struct {
	cube      *Cube
	log       []TrackedMove
	wasSolved bool
	onSolved  func()
}

// NewTracker creates a new cube tracker starting from a solved state.
func NewTracker() *Tracker {
	return &Tracker{
		cube:      New(WithMoveHistory(false)),
		wasSolved: true,
	}
}

// SetSolvedCallback sets a callback that fires whenever a move brings the
// cube back to the solved state.
func (t *Tracker) SetSolvedCallback(cb func()) {
	t.onSolved = cb
}

// Reset resets the tracker to a solved cube and clears the log.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.log = nil
	t.wasSolved = true
}

// ApplyMove applies a move, records it, and checks for a solved transition.
func (t *Tracker) ApplyMove(m Move) {
	t.cube.ApplyMove(m)
	t.log = append(t.log, TrackedMove{Move: m, Time: time.Now()})

	solved := t.cube.IsSolved()
	if solved && !t.wasSolved && t.onSolved != nil {
		t.onSolved()
	}
	t.wasSolved = solved
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Sequence parses and applies a notation string. On a parse error nothing
// is applied or logged.
func (t *Tracker) Sequence(s string) error {
	moves, err := ParseSequence(s)
	if err != nil {
		return err
	}
	t.ApplyMoves(moves)
	return nil
}

// Log returns a copy of the timestamped move log, oldest first.
func (t *Tracker) Log() []TrackedMove {
	out := make([]TrackedMove, len(t.log))
	copy(out, t.log)
	return out
}

// Moves returns just the moves from the log.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.log))
	for i, tm := range t.log {
		out[i] = tm.Move
	}
	return out
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
