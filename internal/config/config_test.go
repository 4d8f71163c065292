package config

import (
	"errors"
	"testing"

	"github.com/mstern/cubekit"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.ScrambleLength != 25 {
		t.Errorf("ScrambleLength = %d, want 25", cfg.ScrambleLength)
	}
	moves, err := cfg.Algorithm("sexy")
	if err != nil {
		t.Fatalf("Algorithm(sexy): %v", err)
	}
	if cubekit.FormatSequence(moves) != "R U Ri Ui" {
		t.Errorf("sexy = %q", cubekit.FormatSequence(moves))
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
algorithms:
  tperm: "R U Ri Ui Ri F R R Ui Ri Ui R U Ri Fi"
scramble_length: 30
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.ScrambleLength != 30 {
		t.Errorf("ScrambleLength = %d, want 30", cfg.ScrambleLength)
	}
	if _, err := cfg.Algorithm("tperm"); err != nil {
		t.Errorf("Algorithm(tperm): %v", err)
	}
}

func TestParseRejectsInvalidNotation(t *testing.T) {
	_, err := Parse([]byte(`
algorithms:
  bad: "R X U"
`))
	if !errors.Is(err, cubekit.ErrInvalidNotation) {
		t.Errorf("err = %v, want ErrInvalidNotation", err)
	}
}

func TestParseRejectsBadScrambleLength(t *testing.T) {
	if _, err := Parse([]byte("scramble_length: -5\n")); err == nil {
		t.Error("negative scramble_length should fail")
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	if _, err := Default().Algorithm("nope"); err == nil {
		t.Error("unknown algorithm should fail")
	}
}

func TestAlgorithmNamesSorted(t *testing.T) {
	names := Default().AlgorithmNames()
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}
