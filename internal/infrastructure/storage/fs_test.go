package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"svw.info/sudoku-audit/internal/domain"
	"svw.info/sudoku-audit/internal/generator"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()

	full := generator.BaseGrid()
	p := &domain.Puzzle{
		ID:         "abc",
		Initial:    full,
		Solution:   full,
		Difficulty: domain.Easy,
		ClueCount:  81,
	}
	if err := s.SaveCollection(ctx, []*domain.Puzzle{p, p}); err != nil {
		t.Fatalf("SaveCollection failed: %v", err)
	}

	m, err := s.LoadManifest(ctx)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if m.PuzzleCount != 2 || len(m.Puzzles) != 2 || m.Puzzles[0] != "001" || m.Puzzles[1] != "002" {
		t.Fatalf("unexpected manifest: %+v", m)
	}

	rec, err := s.LoadRecord(ctx, "002")
	if err != nil {
		t.Fatalf("LoadRecord failed: %v", err)
	}
	if rec.ID != "002" || rec.Difficulty != "easy" {
		t.Fatalf("unexpected record: id=%q difficulty=%q", rec.ID, rec.Difficulty)
	}
	if got := domain.GridFromRows(rec.Initial); got != full {
		t.Fatal("initial grid did not round-trip")
	}
}

func TestLoadManifestCountMismatch(t *testing.T) {
	dir := t.TempDir()
	body := `{"puzzle_count": 3, "puzzles": ["001"]}`
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFS(dir).LoadManifest(context.Background()); err == nil {
		t.Fatal("want error for count mismatch")
	}
}

func TestLoadRecordMissingFile(t *testing.T) {
	if _, err := NewFS(t.TempDir()).LoadRecord(context.Background(), "001"); err == nil {
		t.Fatal("want error for missing record")
	}
}
