package usecase

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"svw.info/sudoku-audit/internal/generator"
	"svw.info/sudoku-audit/internal/infrastructure/storage"
	"svw.info/sudoku-audit/internal/solver"
	"svw.info/sudoku-audit/internal/validator"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newService(dir string) *Service {
	s := solver.NewBacktrackingSolver()
	svc := NewService(validator.New(s), generator.NewUniqueGenerator(s), storage.NewFS(dir), quietLogger())
	svc.Workers = 2
	return svc
}

func TestGenerateThenValidateCollection(t *testing.T) {
	dir := t.TempDir()
	svc := newService(dir)
	ctx := context.Background()

	puzzles, err := svc.GenerateCollection(ctx, 3, 32, 7)
	if err != nil {
		t.Fatalf("GenerateCollection failed: %v", err)
	}
	if len(puzzles) != 3 {
		t.Fatalf("want 3 puzzles, got %d", len(puzzles))
	}

	sum, err := svc.ValidateCollection(ctx)
	if err != nil {
		t.Fatalf("ValidateCollection failed: %v", err)
	}
	if sum.TotalPuzzles != 3 || sum.InvalidPuzzles != 0 || sum.ValidPuzzles != 3 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	for i, rep := range sum.Reports {
		if rep.PuzzleID == "" {
			t.Errorf("report %d missing puzzle id", i)
		}
	}
}

func TestValidateCollectionIsolatesBadRecords(t *testing.T) {
	dir := t.TempDir()
	svc := newService(dir)
	ctx := context.Background()

	if _, err := svc.GenerateCollection(ctx, 2, 32, 11); err != nil {
		t.Fatalf("GenerateCollection failed: %v", err)
	}
	// Corrupt one record; the other must still validate.
	if err := os.WriteFile(filepath.Join(dir, "001.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	sum, err := svc.ValidateCollection(ctx)
	if err != nil {
		t.Fatalf("ValidateCollection failed: %v", err)
	}
	if sum.TotalPuzzles != 2 || sum.ValidPuzzles != 1 || sum.InvalidPuzzles != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	bad := sum.Reports[0]
	if bad.Valid || len(bad.Errors) == 0 || !strings.Contains(bad.Errors[0], "record unreadable") {
		t.Fatalf("corrupted record not isolated: %+v", bad)
	}
	if !sum.Reports[1].Valid {
		t.Fatalf("healthy record dragged down: %+v", sum.Reports[1])
	}
}

func TestValidateCollectionReportsInManifestOrder(t *testing.T) {
	dir := t.TempDir()
	svc := newService(dir)
	ctx := context.Background()

	if _, err := svc.GenerateCollection(ctx, 4, 36, 3); err != nil {
		t.Fatalf("GenerateCollection failed: %v", err)
	}
	sum, err := svc.ValidateCollection(ctx)
	if err != nil {
		t.Fatalf("ValidateCollection failed: %v", err)
	}
	want := []string{"001", "002", "003", "004"}
	for i, id := range want {
		if sum.Reports[i].PuzzleID != id {
			t.Fatalf("report %d has id %s, want %s", i, sum.Reports[i].PuzzleID, id)
		}
	}
}
