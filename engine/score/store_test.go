package score

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndTop(t *testing.T) {
	s := openTestStore(t)
	for _, r := range []struct {
		name  string
		score int
		wave  int
	}{
		{"AAA", 1200, 3},
		{"BBB", 4800, 7},
		{"CCC", 300, 1},
	} {
		if err := s.Save(r.name, r.score, r.wave); err != nil {
			t.Fatalf("Save(%q): %v", r.name, err)
		}
	}

	top, err := s.Top(2)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Top(2) returned %d rows", len(top))
	}
	if top[0].Name != "BBB" || top[0].Score != 4800 || top[0].Wave != 7 {
		t.Errorf("top row = %+v, want BBB/4800/7", top[0])
	}
	if top[1].Name != "AAA" {
		t.Errorf("second row = %+v, want AAA", top[1])
	}
}

func TestTopTiesKeepInsertionOrder(t *testing.T) {
	s := openTestStore(t)
	s.Save("FIRST", 1000, 2)
	s.Save("SECOND", 1000, 2)

	top, err := s.Top(10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 2 || top[0].Name != "FIRST" || top[1].Name != "SECOND" {
		t.Errorf("tied rows out of insertion order: %+v", top)
	}
}

func TestBest(t *testing.T) {
	s := openTestStore(t)

	best, err := s.Best()
	if err != nil {
		t.Fatalf("Best on empty store: %v", err)
	}
	if best != 0 {
		t.Errorf("Best on empty store = %d, want 0", best)
	}

	s.Save("AAA", 900, 2)
	s.Save("BBB", 2500, 5)
	best, err = s.Best()
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if best != 2500 {
		t.Errorf("Best = %d, want 2500", best)
	}
}

func TestReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Save("AAA", 777, 4)
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	best, err := s.Best()
	if err != nil {
		t.Fatalf("Best after reopen: %v", err)
	}
	if best != 777 {
		t.Errorf("Best after reopen = %d, want 777", best)
	}
}
