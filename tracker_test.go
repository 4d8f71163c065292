package cubekit

import "testing"

func TestTrackerStartsSolved(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMove(MoveR)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
	if len(tr.Log()) != 0 {
		t.Error("Reset should clear the move log")
	}
}

func TestTrackerSolvedCallback(t *testing.T) {
	tr := NewTracker()

	fired := 0
	tr.SetSolvedCallback(func() { fired++ })

	// Scramble then reverse; the callback fires once, on the move that
	// completes the cube.
	tr.Sequence("R U F")
	if fired != 0 {
		t.Errorf("callback fired %d times while scrambled", fired)
	}

	tr.Sequence("Fi Ui Ri")
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reversing moves")
		t.Log(tr.CubeString())
	}
	if fired != 1 {
		t.Errorf("callback fired %d times, want 1", fired)
	}
}

func TestTrackerLog(t *testing.T) {
	tr := NewTracker()
	if err := tr.Sequence("R U Ri Ui"); err != nil {
		t.Fatalf("Sequence: %v", err)
	}

	moves := tr.Moves()
	if FormatSequence(moves) != "R U Ri Ui" {
		t.Errorf("Moves = %q, want %q", FormatSequence(moves), "R U Ri Ui")
	}

	log := tr.Log()
	for i := 1; i < len(log); i++ {
		if log[i].Time.Before(log[i-1].Time) {
			t.Error("log timestamps should be non-decreasing")
		}
	}
}

func TestTrackerInvalidSequenceNotLogged(t *testing.T) {
	tr := NewTracker()
	if err := tr.Sequence("R X"); err == nil {
		t.Fatal("invalid sequence should fail")
	}
	if len(tr.Log()) != 0 {
		t.Errorf("log should be empty after invalid sequence, got %v", tr.Moves())
	}
	if !tr.IsSolved() {
		t.Error("cube should be untouched after invalid sequence")
	}
}
