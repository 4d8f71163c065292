// Package tui implements the interactive terminal session for cubekit.
package tui

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mstern/cubekit"
	"github.com/mstern/cubekit/internal/config"
	"github.com/mstern/cubekit/internal/render"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the interactive cube session.
type Model struct {
	cube     *cubekit.Cube
	renderer *render.Renderer
	cfg      *config.Config

	input    string
	status   string
	err      error
	quitting bool
}

// New creates the interactive model starting from a solved cube.
func New(cfg *config.Config) *Model {
	return &Model{
		cube:     cubekit.New(),
		renderer: render.New(true),
		cfg:      cfg,
		status:   "solved cube ready",
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		m.submit()

	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}

	case "ctrl+u":
		if m.cube.Undo() {
			m.status = "undid last move"
			m.err = nil
		} else {
			m.status = "nothing to undo"
		}

	case "ctrl+r":
		m.cube.Reset()
		m.status = "cube reset"
		m.err = nil

	case "ctrl+s":
		moves := cubekit.Scramble(m.cfg.ScrambleLength, rand.New(rand.NewSource(rand.Int63())))
		m.cube.Apply(moves...)
		m.status = "scramble: " + cubekit.FormatSequence(moves)
		m.err = nil

	default:
		if keyMsg.Type == tea.KeyRunes {
			m.input += string(keyMsg.Runes)
		} else if keyMsg.Type == tea.KeySpace {
			m.input += " "
		}
	}

	return m, nil
}

// submit applies the typed input as notation or as an algorithm name.
func (m *Model) submit() {
	line := strings.TrimSpace(m.input)
	m.input = ""
	if line == "" {
		return
	}

	// A bare word matching a configured algorithm expands to its sequence.
	if moves, err := m.cfg.Algorithm(line); err == nil {
		m.cube.Apply(moves...)
		m.status = fmt.Sprintf("applied %s: %s", line, cubekit.FormatSequence(moves))
		m.err = nil
		return
	}

	if err := m.cube.Sequence(line); err != nil {
		m.err = err
		return
	}
	m.status = "applied: " + line
	m.err = nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubekit"))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Net(m.cube))
	b.WriteString("\n")

	if m.cube.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d moves applied", len(m.cube.History()))))
	}
	b.WriteString("\n\n")

	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n> ")
	b.WriteString(m.input)
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("Type notation (e.g. R U Ri Ui) or an algorithm name, then Enter.\n" +
		"ctrl+u undo | ctrl+r reset | ctrl+s scramble | esc quit"))
	b.WriteString("\n")

	return b.String()
}
