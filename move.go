package cubekit

import (
	"fmt"
	"math/rand"
	"strings"
)

// Move is one of the twelve quarter-turn face moves. The notation is the
// fixed 12-symbol vocabulary "L Li R Ri F Fi B Bi U Ui D Di" where the i
// suffix marks the counter-clockwise (inverse) turn.
type Move int

const (
	MoveF Move = iota
	MoveFi
	MoveB
	MoveBi
	MoveL
	MoveLi
	MoveR
	MoveRi
	MoveU
	MoveUi
	MoveD
	MoveDi

	numMoves
)

// moveTable maps every move to its fixed (axis, matrix) pair. Turning a
// face clockwise when viewed from outside the cube is a CW rotation about
// a positive axis and a CC rotation about a negative one, which is why
// opposite faces pair with opposite matrices.
var moveTable = [numMoves]struct {
	name   string
	axis   Vec3
	matrix Mat3
}{
	MoveF:  {"F", FrontAxis, RotXCW},
	MoveFi: {"Fi", FrontAxis, RotXCC},
	MoveB:  {"B", BackAxis, RotXCC},
	MoveBi: {"Bi", BackAxis, RotXCW},
	MoveL:  {"L", LeftAxis, RotYCW},
	MoveLi: {"Li", LeftAxis, RotYCC},
	MoveR:  {"R", RightAxis, RotYCC},
	MoveRi: {"Ri", RightAxis, RotYCW},
	MoveU:  {"U", UpAxis, RotZCW},
	MoveUi: {"Ui", UpAxis, RotZCC},
	MoveD:  {"D", DownAxis, RotZCC},
	MoveDi: {"Di", DownAxis, RotZCW},
}

// Axis returns the face axis the move rotates about.
func (m Move) Axis() Vec3 {
	return moveTable[m].axis
}

// Matrix returns the rotation operator the move applies.
func (m Move) Matrix() Mat3 {
	return moveTable[m].matrix
}

// Inverse returns the move that undoes this one: F <-> Fi and so on.
func (m Move) Inverse() Move {
	if m%2 == 0 {
		return m + 1
	}
	return m - 1
}

// String returns the notation symbol for the move.
func (m Move) String() string {
	if m < 0 || m >= numMoves {
		return "?"
	}
	return moveTable[m].name
}

// ParseMove parses a single notation token. Matching is exact and
// case-sensitive; anything outside the 12-symbol vocabulary fails with
// ErrInvalidNotation.
func ParseMove(token string) (Move, error) {
	for m := Move(0); m < numMoves; m++ {
		if moveTable[m].name == token {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, token)
}

// ParseSequence parses a whitespace-separated move string. The whole
// sequence is validated before anything is returned: one bad token fails
// the entire parse.
func ParseSequence(s string) ([]Move, error) {
	tokens := strings.Fields(s)
	moves := make([]Move, 0, len(tokens))
	for _, tok := range tokens {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatSequence formats moves as a space-separated notation string.
func FormatSequence(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// InverseSequence returns the sequence that undoes moves: each move
// inverted, in reverse order.
func InverseSequence(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// Scramble generates n random moves, avoiding consecutive turns of the
// same face. A nil rng falls back to the global source.
func Scramble(n int, rng *rand.Rand) []Move {
	pick := rand.Intn
	if rng != nil {
		pick = rng.Intn
	}
	moves := make([]Move, 0, n)
	prevAxis := Vec3{}
	for len(moves) < n {
		m := Move(pick(int(numMoves)))
		if m.Axis() == prevAxis {
			continue
		}
		prevAxis = m.Axis()
		moves = append(moves, m)
	}
	return moves
}
