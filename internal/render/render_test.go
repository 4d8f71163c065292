package render

import (
	"strings"
	"testing"

	"github.com/mstern/cubekit"
)

func TestPlainNetSolved(t *testing.T) {
	r := New(false)
	net := r.Net(cubekit.New())

	lines := strings.Split(strings.TrimRight(net, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("net has %d lines, want 9", len(lines))
	}

	// Solved cube: uniform faces in the net
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "O O O") {
		t.Errorf("top row = %q, want orange", lines[0])
	}
	if strings.TrimSpace(lines[3]) != "B B B Y Y Y G G G W W W" {
		t.Errorf("middle row = %q", strings.TrimSpace(lines[3]))
	}
	if strings.TrimSpace(lines[8]) != "R R R" {
		t.Errorf("bottom row = %q, want red", lines[8])
	}
}

func TestPlainNetAfterMove(t *testing.T) {
	c := cubekit.New()
	if err := c.Sequence("U"); err != nil {
		t.Fatal(err)
	}
	net := New(false).Net(c)

	// After U the side faces mix, so the letters G and Y must both appear
	// in the front columns. A cheap sanity check: net contains all six
	// letters and nothing else besides whitespace.
	for _, ch := range "YWBGOR" {
		if !strings.ContainsRune(net, ch) {
			t.Errorf("net missing %c:\n%s", ch, net)
		}
	}
	if strings.ContainsRune(net, '?') {
		t.Errorf("net contains unknown facelet:\n%s", net)
	}
}

func TestSummary(t *testing.T) {
	c := cubekit.New()
	r := New(false)
	if got := r.Summary(c); got != "solved" {
		t.Errorf("Summary = %q, want solved", got)
	}
	c.ApplyMove(cubekit.MoveF)
	if got := r.Summary(c); got != "scrambled" {
		t.Errorf("Summary = %q, want scrambled", got)
	}
}
