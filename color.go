package cubekit

// Color represents a facelet color.
type Color byte

const (
	Blank  Color = 0 // No facelet on this axis
	Yellow Color = 1 // Front face when solved
	White  Color = 2 // Back face when solved
	Blue   Color = 3 // Left face when solved
	Green  Color = 4 // Right face when solved
	Orange Color = 5 // Up face when solved
	Red    Color = 6 // Down face when solved
)

// Valid reports whether c is one of the seven defined colors.
func (c Color) Valid() bool {
	return c <= Red
}

func (c Color) String() string {
	switch c {
	case Blank:
		return "."
	case Yellow:
		return "Y"
	case White:
		return "W"
	case Blue:
		return "B"
	case Green:
		return "G"
	case Orange:
		return "O"
	case Red:
		return "R"
	default:
		return "?"
	}
}

// Name returns the full lowercase color name.
func (c Color) Name() string {
	switch c {
	case Blank:
		return "blank"
	case Yellow:
		return "yellow"
	case White:
		return "white"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Orange:
		return "orange"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// ParseColor parses a full color name into a Color.
// Unrecognized names fail with ErrUnknownColor.
func ParseColor(s string) (Color, error) {
	for c := Blank; c <= Red; c++ {
		if c.Name() == s {
			return c, nil
		}
	}
	return Blank, ErrUnknownColor
}
