package cubekit

import "fmt"

// Category classifies a piece by how many facelets it carries.
type Category int

const (
	Center Category = 0 // One facelet
	Edge   Category = 1 // Two facelets
	Corner Category = 2 // Three facelets
)

func (c Category) String() string {
	switch c {
	case Center:
		return "center"
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	default:
		return "?"
	}
}

// Piece is a single cubie: a lattice position plus a 3-slot color record.
// Colors[0] is the facelet on the X axis, Colors[1] the Y axis, Colors[2]
// the Z axis; a Blank slot means no facelet faces that axis.
type Piece struct {
	Pos    Vec3
	Colors [3]Color
}

// NewPiece creates a piece and validates its color record: exactly three
// slots, every color defined, and as many Blank slots as zero coordinates
// (one facelet per face the piece touches).
func NewPiece(pos Vec3, colors []Color) (Piece, error) {
	if len(colors) != 3 {
		return Piece{}, fmt.Errorf("%w, got %d", ErrColorCount, len(colors))
	}
	var cs [3]Color
	blanks := 0
	for i, c := range colors {
		if !c.Valid() {
			return Piece{}, fmt.Errorf("%w: %d", ErrUnknownColor, c)
		}
		if c == Blank {
			blanks++
		}
		cs[i] = c
	}
	if blanks != pos.Zeros() {
		return Piece{}, fmt.Errorf("%w: %d blanks at %v", ErrColorShape, blanks, pos)
	}
	return Piece{Pos: pos, Colors: cs}, nil
}

// Category derives the piece classification from its blank slots.
func (p *Piece) Category() Category {
	blanks := 0
	for _, c := range p.Colors {
		if c == Blank {
			blanks++
		}
	}
	switch blanks {
	case 2:
		return Center
	case 1:
		return Edge
	default:
		return Corner
	}
}

// Rotate applies a quarter-turn rotation matrix to the piece, updating the
// position and the color record in one step.
//
// Every supported matrix is a 90-degree rotation about a single coordinate
// axis, so its main diagonal has exactly one 1 (the unaffected axis) and two
// 0s (cos 90). The two zero entries name the axis slots whose facelets trade
// places; the through-face color stays attached to its slot. This diagonal
// test only holds for axis-aligned quarter turns.
func (p *Piece) Rotate(m Mat3) {
	before := p.Pos
	p.Pos = m.MulVec(p.Pos)
	if p.Pos == before {
		return
	}

	diag := m.Diagonal()
	var swap [2]int
	n := 0
	for i, d := range diag {
		if d == 0 {
			swap[n] = i
			n++
		}
	}
	p.Colors[swap[0]], p.Colors[swap[1]] = p.Colors[swap[1]], p.Colors[swap[0]]
}

// Has reports whether the piece carries the given color on any slot.
func (p *Piece) Has(c Color) bool {
	return p.Colors[0] == c || p.Colors[1] == c || p.Colors[2] == c
}

func (p Piece) String() string {
	return fmt.Sprintf("Pos: %v, Colors: [%s %s %s], Type: %s",
		p.Pos, p.Colors[0].Name(), p.Colors[1].Name(), p.Colors[2].Name(), p.Category())
}
