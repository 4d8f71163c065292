package storage

import (
	"path/filepath"
	"testing"

	"github.com/mstern/cubekit"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}
	return db
}

func TestSessionRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create("R U Ri Ui", "test notes")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	s, err := sessions.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s == nil {
		t.Fatal("Get returned nil for existing session")
	}
	if s.Scramble == nil || *s.Scramble != "R U Ri Ui" {
		t.Errorf("scramble = %v, want R U Ri Ui", s.Scramble)
	}
	if s.EndedAt != nil {
		t.Error("new session should not be ended")
	}

	if err := sessions.End(id, true); err != nil {
		t.Fatalf("End: %v", err)
	}
	s, err = sessions.Get(id)
	if err != nil {
		t.Fatalf("Get after End: %v", err)
	}
	if s.EndedAt == nil || !s.Solved {
		t.Errorf("ended session = %+v, want ended and solved", s)
	}
}

func TestGetMissingSession(t *testing.T) {
	db := openTestDB(t)
	s, err := NewSessionRepository(db).Get("no-such-id")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s != nil {
		t.Errorf("Get = %+v, want nil", s)
	}
}

func TestMoveLogRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moveRepo := NewMoveRepository(db)

	id, err := sessions.Create("", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	want := []cubekit.Move{cubekit.MoveR, cubekit.MoveU, cubekit.MoveRi, cubekit.MoveUi}
	if err := moveRepo.Append(id, want[:2]); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := moveRepo.Append(id, want[2:]); err != nil {
		t.Fatalf("second Append: %v", err)
	}

	got, err := moveRepo.Moves(id)
	if err != nil {
		t.Fatalf("Moves: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d moves, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d = %s, want %s", i, got[i], want[i])
		}
	}

	n, err := moveRepo.Count(id)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 4 {
		t.Errorf("Count = %d, want 4", n)
	}
}

func TestDeleteCascadesMoves(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moveRepo := NewMoveRepository(db)

	id, _ := sessions.Create("", "")
	if err := moveRepo.Append(id, []cubekit.Move{cubekit.MoveF}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := sessions.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	n, err := moveRepo.Count(id)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("Count after delete = %d, want 0", n)
	}
}

func TestReplayFromLog(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moveRepo := NewMoveRepository(db)

	scramble := []cubekit.Move{cubekit.MoveR, cubekit.MoveU, cubekit.MoveF}
	id, _ := sessions.Create(cubekit.FormatSequence(scramble), "")
	if err := moveRepo.Append(id, scramble); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := moveRepo.Append(id, cubekit.InverseSequence(scramble)); err != nil {
		t.Fatalf("Append inverse: %v", err)
	}

	moves, err := moveRepo.Moves(id)
	if err != nil {
		t.Fatalf("Moves: %v", err)
	}

	c := cubekit.New()
	c.Apply(moves...)
	if !c.IsSolved() {
		t.Error("replaying scramble plus inverse should end solved")
		t.Log(c.String())
	}
}
