package cubekit

import (
	"errors"
	"testing"
)

func TestNewPieceValidation(t *testing.T) {
	if _, err := NewPiece(FrontAxis, []Color{Yellow, Blank}); !errors.Is(err, ErrColorCount) {
		t.Errorf("two slots: err = %v, want ErrColorCount", err)
	}
	if _, err := NewPiece(FrontAxis, []Color{Yellow, Blank, Color(99)}); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("bad color: err = %v, want ErrUnknownColor", err)
	}
	// A center has one nonzero coordinate, so it needs two blanks
	if _, err := NewPiece(FrontAxis, []Color{Yellow, Green, Blank}); !errors.Is(err, ErrColorShape) {
		t.Errorf("one blank on center: err = %v, want ErrColorShape", err)
	}
	if _, err := NewPiece(FrontAxis, []Color{Yellow, Blank, Blank}); err != nil {
		t.Errorf("valid center: err = %v", err)
	}
}

func TestPieceCategory(t *testing.T) {
	cases := []struct {
		pos    Vec3
		colors []Color
		want   Category
	}{
		{FrontAxis, []Color{Yellow, Blank, Blank}, Center},
		{FrontAxis.Add(UpAxis), []Color{Yellow, Blank, Orange}, Edge},
		{FrontAxis.Add(RightAxis).Add(UpAxis), []Color{Yellow, Green, Orange}, Corner},
	}
	for _, tc := range cases {
		p, err := NewPiece(tc.pos, tc.colors)
		if err != nil {
			t.Fatalf("NewPiece(%v): %v", tc.pos, err)
		}
		if got := p.Category(); got != tc.want {
			t.Errorf("Category at %v = %v, want %v", tc.pos, got, tc.want)
		}
	}
}

func TestPieceRotateMovesAndSwapsColors(t *testing.T) {
	// Front-up edge: yellow on X, orange on Z
	p := Piece{Pos: FrontAxis.Add(UpAxis), Colors: [3]Color{Yellow, Blank, Orange}}

	// U turn: the edge moves to left-up and its yellow facelet now faces -Y
	p.Rotate(RotZCW)
	if p.Pos != LeftAxis.Add(UpAxis) {
		t.Errorf("Pos = %v, want %v", p.Pos, LeftAxis.Add(UpAxis))
	}
	if p.Colors != [3]Color{Blank, Yellow, Orange} {
		t.Errorf("Colors = %v, want [Blank Yellow Orange]", p.Colors)
	}
}

func TestPieceRotateOnAxisIsNoop(t *testing.T) {
	// The up center sits on the Z axis; a Z rotation leaves it in place
	// and must not touch its colors.
	p := Piece{Pos: UpAxis, Colors: [3]Color{Blank, Blank, Orange}}
	p.Rotate(RotZCW)
	if p.Pos != UpAxis {
		t.Errorf("Pos = %v, want %v", p.Pos, UpAxis)
	}
	if p.Colors != [3]Color{Blank, Blank, Orange} {
		t.Errorf("Colors = %v, want unchanged", p.Colors)
	}
}

func TestPieceRotateIdentityIsNoop(t *testing.T) {
	p := Piece{Pos: FrontAxis.Add(RightAxis), Colors: [3]Color{Yellow, Green, Blank}}
	before := p
	p.Rotate(Identity)
	if p != before {
		t.Errorf("identity rotation changed piece: %v -> %v", before, p)
	}
}

func TestPieceRotateOrderFour(t *testing.T) {
	p := Piece{Pos: FrontAxis.Add(RightAxis).Add(UpAxis), Colors: [3]Color{Yellow, Green, Orange}}
	before := p
	for i := 0; i < 4; i++ {
		p.Rotate(RotYCC)
	}
	if p != before {
		t.Errorf("four quarter turns: %v -> %v, want unchanged", before, p)
	}
}

func TestPieceHas(t *testing.T) {
	p := Piece{Pos: FrontAxis.Add(UpAxis), Colors: [3]Color{Yellow, Blank, Orange}}
	if !p.Has(Yellow) || !p.Has(Orange) {
		t.Error("piece should have yellow and orange")
	}
	if p.Has(Green) {
		t.Error("piece should not have green")
	}
}
