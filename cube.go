package cubekit

import (
	"fmt"
	"strings"
)

// Face axes. A face is identified by the unit vector pointing out of it:
// Front is +X, Back is -X, Left is -Y, Right is +Y, Up is +Z, Down is -Z.
var (
	FrontAxis = Vec3{X: 1}
	BackAxis  = Vec3{X: -1}
	LeftAxis  = Vec3{Y: -1}
	RightAxis = Vec3{Y: 1}
	UpAxis    = Vec3{Z: 1}
	DownAxis  = Vec3{Z: -1}
)

// Axes lists the six face axes in a fixed order.
var Axes = [6]Vec3{FrontAxis, BackAxis, LeftAxis, RightAxis, UpAxis, DownAxis}

// NumPieces is the number of cubies in a 3x3x3 cube: every lattice point
// in {-1,0,1}^3 except the hidden origin.
const NumPieces = 26

// Cube is a 3x3x3 twisty puzzle modeled as 26 rigid pieces on a lattice.
//
// All 26 pieces live in one fixed array; a piece's array slot is its
// identity for the lifetime of the cube, while its position and color
// record mutate with every face turn. Category groupings (centers, edges,
// corners) are computed views over the same array, never separate storage.
type Cube struct {
	pieces  [NumPieces]Piece
	history []Move
	track   bool
}

// New creates a cube in the solved state: Yellow front, White back, Blue
// left, Green right, Orange up, Red down.
func New(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{track: cfg.moveHistory}
	c.reset()
	return c
}

// reset puts every piece back at its solved position and coloring.
func (c *Cube) reset() {
	i := 0
	add := func(pos Vec3, x, y, z Color) {
		c.pieces[i] = Piece{Pos: pos, Colors: [3]Color{x, y, z}}
		i++
	}

	// Centers
	add(FrontAxis, Yellow, Blank, Blank)
	add(BackAxis, White, Blank, Blank)
	add(LeftAxis, Blank, Blue, Blank)
	add(RightAxis, Blank, Green, Blank)
	add(UpAxis, Blank, Blank, Orange)
	add(DownAxis, Blank, Blank, Red)

	// Edges
	add(FrontAxis.Add(LeftAxis), Yellow, Blue, Blank)
	add(FrontAxis.Add(RightAxis), Yellow, Green, Blank)
	add(FrontAxis.Add(UpAxis), Yellow, Blank, Orange)
	add(FrontAxis.Add(DownAxis), Yellow, Blank, Red)
	add(BackAxis.Add(LeftAxis), White, Blue, Blank)
	add(BackAxis.Add(RightAxis), White, Green, Blank)
	add(BackAxis.Add(UpAxis), White, Blank, Orange)
	add(BackAxis.Add(DownAxis), White, Blank, Red)
	add(LeftAxis.Add(UpAxis), Blank, Blue, Orange)
	add(LeftAxis.Add(DownAxis), Blank, Blue, Red)
	add(RightAxis.Add(UpAxis), Blank, Green, Orange)
	add(RightAxis.Add(DownAxis), Blank, Green, Red)

	// Corners
	add(FrontAxis.Add(LeftAxis).Add(UpAxis), Yellow, Blue, Orange)
	add(FrontAxis.Add(LeftAxis).Add(DownAxis), Yellow, Blue, Red)
	add(FrontAxis.Add(RightAxis).Add(UpAxis), Yellow, Green, Orange)
	add(FrontAxis.Add(RightAxis).Add(DownAxis), Yellow, Green, Red)
	add(BackAxis.Add(LeftAxis).Add(UpAxis), White, Blue, Orange)
	add(BackAxis.Add(LeftAxis).Add(DownAxis), White, Blue, Red)
	add(BackAxis.Add(RightAxis).Add(UpAxis), White, Green, Orange)
	add(BackAxis.Add(RightAxis).Add(DownAxis), White, Green, Red)

	c.history = nil
}

// Reset returns the cube to the solved state and clears the move history.
func (c *Cube) Reset() {
	c.reset()
}

// Face returns the nine pieces whose positions have a positive dot product
// with the axis. The axis must be one of the six face axes, i.e. have
// exactly two zero components; anything else fails with ErrInvalidAxis.
func (c *Cube) Face(axis Vec3) ([]*Piece, error) {
	if axis.Zeros() != 2 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAxis, axis)
	}

	face := make([]*Piece, 0, 9)
	for i := range c.pieces {
		if c.pieces[i].Pos.Dot(axis) > 0 {
			face = append(face, &c.pieces[i])
		}
	}
	return face, nil
}

// RotateFace rotates every piece on the given face by the given matrix.
// Four applications of the same call restore the face, since every
// supported matrix has order 4.
func (c *Cube) RotateFace(axis Vec3, m Mat3) error {
	face, err := c.Face(axis)
	if err != nil {
		return err
	}
	for _, p := range face {
		p.Rotate(m)
	}
	return nil
}

// ApplyMove applies a single move through the fixed move table.
func (c *Cube) ApplyMove(m Move) {
	// Face axes always pass the Face precondition; the error path is
	// unreachable from the move table.
	_ = c.RotateFace(m.Axis(), m.Matrix())
	if c.track {
		c.history = append(c.history, m)
	}
}

// Apply applies moves strictly in order. Face turns do not commute, so the
// order is the semantics.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// Sequence parses and applies a whitespace-separated move string. The whole
// string is validated first: if any token is not one of the twelve move
// symbols the cube is left completely untouched.
func (c *Cube) Sequence(s string) error {
	moves, err := ParseSequence(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// Undo reverts the most recent recorded move. It reports false when the
// history is empty or history tracking is disabled.
func (c *Cube) Undo() bool {
	if len(c.history) == 0 {
		return false
	}
	last := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]

	track := c.track
	c.track = false
	c.ApplyMove(last.Inverse())
	c.track = track
	return true
}

// History returns a copy of the recorded moves, oldest first. It is nil
// when tracking is disabled.
func (c *Cube) History() []Move {
	if c.history == nil {
		return nil
	}
	out := make([]Move, len(c.history))
	copy(out, c.history)
	return out
}

// faceSlot returns the color-slot index a face axis reads: the index of
// the axis's single non-zero component.
func faceSlot(axis Vec3) int {
	if axis.X != 0 {
		return 0
	}
	if axis.Y != 0 {
		return 1
	}
	return 2
}

// FaceColors returns the nine facelet colors visible on a face, in the
// cube's fixed piece enumeration order.
func (c *Cube) FaceColors(axis Vec3) ([9]Color, error) {
	var colors [9]Color
	face, err := c.Face(axis)
	if err != nil {
		return colors, err
	}
	slot := faceSlot(axis)
	for i, p := range face {
		colors[i] = p.Colors[slot]
	}
	return colors, nil
}

// IsSolved reports whether every face shows a single uniform color.
func (c *Cube) IsSolved() bool {
	for _, axis := range Axes {
		colors, err := c.FaceColors(axis)
		if err != nil {
			return false
		}
		for _, col := range colors[1:] {
			if col != colors[0] {
				return false
			}
		}
	}
	return true
}

// FindPiece returns the first piece carrying all the given colors, or nil
// if no piece matches. One color finds a center's piece (among others), two
// identify an edge, three a corner; zero or more than three colors match
// nothing.
func (c *Cube) FindPiece(colors ...Color) *Piece {
	if len(colors) == 0 || len(colors) > 3 {
		return nil
	}
	for i := range c.pieces {
		p := &c.pieces[i]
		match := true
		for _, col := range colors {
			if !p.Has(col) {
				match = false
				break
			}
		}
		if match {
			return p
		}
	}
	return nil
}

// Pieces returns a copy of all 26 pieces for read-only iteration.
func (c *Cube) Pieces() []Piece {
	out := make([]Piece, NumPieces)
	copy(out, c.pieces[:])
	return out
}

// byCategory collects pieces of one category, preserving array order.
func (c *Cube) byCategory(cat Category) []Piece {
	var out []Piece
	for i := range c.pieces {
		if c.pieces[i].Category() == cat {
			out = append(out, c.pieces[i])
		}
	}
	return out
}

// Centers returns the six center pieces.
func (c *Cube) Centers() []Piece { return c.byCategory(Center) }

// Edges returns the twelve edge pieces.
func (c *Cube) Edges() []Piece { return c.byCategory(Edge) }

// Corners returns the eight corner pieces.
func (c *Cube) Corners() []Piece { return c.byCategory(Corner) }

// Clone creates a deep copy of the cube state, including the history.
func (c *Cube) Clone() *Cube {
	clone := &Cube{pieces: c.pieces, track: c.track}
	if c.history != nil {
		clone.history = make([]Move, len(c.history))
		copy(clone.history, c.history)
	}
	return clone
}

// Equal reports whether both cubes hold identical piece positions and
// colors. Histories are not compared.
func (c *Cube) Equal(other *Cube) bool {
	return other != nil && c.pieces == other.pieces
}

// String renders the unfolded cube net:
//
//	      U U U
//	      U U U
//	      U U U
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//	      D D D
//	      D D D
//	      D D D
func (c *Cube) String() string {
	up, _ := c.FaceColors(UpAxis)
	left, _ := c.FaceColors(LeftAxis)
	front, _ := c.FaceColors(FrontAxis)
	right, _ := c.FaceColors(RightAxis)
	back, _ := c.FaceColors(BackAxis)
	down, _ := c.FaceColors(DownAxis)

	var b strings.Builder
	writeRow := func(indent bool, faces ...[9]Color) func(row int) {
		return func(row int) {
			if indent {
				b.WriteString("      ")
			}
			for _, f := range faces {
				for col := 0; col < 3; col++ {
					b.WriteString(f[row*3+col].String())
					b.WriteByte(' ')
				}
			}
			b.WriteByte('\n')
		}
	}

	top := writeRow(true, up)
	mid := writeRow(false, left, front, right, back)
	bot := writeRow(true, down)
	for row := 0; row < 3; row++ {
		top(row)
	}
	for row := 0; row < 3; row++ {
		mid(row)
	}
	for row := 0; row < 3; row++ {
		bot(row)
	}
	return b.String()
}

// Debug returns a simple debug string.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Solved: %v", c.IsSolved())
}
