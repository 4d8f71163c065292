// Package render draws cube state for the terminal. It only reads the
// cube's query surface (face colors and pieces); it never mutates state.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mstern/cubekit"
)

// facelet styles, one per color
var styles = map[cubekit.Color]lipgloss.Style{
	cubekit.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")),
	cubekit.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	cubekit.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("15")),
	cubekit.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("0")),
	cubekit.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	cubekit.Red:    lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("15")),
}

// Renderer renders a cube as an unfolded net.
type Renderer struct {
	colored bool
}

// New creates a renderer. When colored is false the output is the plain
// letter net, suitable for logs and tests.
func New(colored bool) *Renderer {
	return &Renderer{colored: colored}
}

// facelet renders one facelet cell.
func (r *Renderer) facelet(c cubekit.Color) string {
	if !r.colored {
		return c.String() + " "
	}
	style, ok := styles[c]
	if !ok {
		return "? "
	}
	return style.Render(" " + c.String()) + " "
}

// Net renders the unfolded cube:
//
//	      U U U
//	L L L F F F R R R B B B
//	      D D D
func (r *Renderer) Net(c *cubekit.Cube) string {
	up, _ := c.FaceColors(cubekit.UpAxis)
	left, _ := c.FaceColors(cubekit.LeftAxis)
	front, _ := c.FaceColors(cubekit.FrontAxis)
	right, _ := c.FaceColors(cubekit.RightAxis)
	back, _ := c.FaceColors(cubekit.BackAxis)
	down, _ := c.FaceColors(cubekit.DownAxis)

	indent := strings.Repeat(" ", 6)
	if r.colored {
		indent = strings.Repeat(" ", 9)
	}

	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		r.writeRow(&b, up, row)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, face := range [][9]cubekit.Color{left, front, right, back} {
			r.writeRow(&b, face, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		r.writeRow(&b, down, row)
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) writeRow(b *strings.Builder, face [9]cubekit.Color, row int) {
	for col := 0; col < 3; col++ {
		b.WriteString(r.facelet(face[row*3+col]))
	}
}

// Summary renders a one-line state summary for status output.
func (r *Renderer) Summary(c *cubekit.Cube) string {
	if c.IsSolved() {
		return "solved"
	}
	return "scrambled"
}
