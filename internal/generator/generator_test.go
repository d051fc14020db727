package generator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"svw.info/sudoku-audit/internal/solver"
	"svw.info/sudoku-audit/internal/validator"
)

func TestBaseGridIsValid(t *testing.T) {
	g := BaseGrid()
	if !validator.CheckSolution(&g) {
		t.Fatal("canonical base grid violates constraints")
	}
}

func TestShuffledGridsStayValid(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		g := ShuffledGrid(rand.New(rand.NewSource(seed)))
		if !validator.CheckSolution(&g) {
			t.Fatalf("seed %d: transformed grid violates constraints", seed)
		}
	}
}

func TestShuffledGridIsDeterministicPerSeed(t *testing.T) {
	a := ShuffledGrid(rand.New(rand.NewSource(42)))
	b := ShuffledGrid(rand.New(rand.NewSource(42)))
	if a != b {
		t.Fatal("same seed produced different grids")
	}
}

func TestGeneratePreservesUniqueness(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	for _, target := range []int{40, 30, 24} {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		p, _, err := g.Generate(ctx, 12345, target)
		cancel()
		if err != nil {
			t.Fatalf("Generate(target=%d) failed: %v", target, err)
		}
		if !validator.CheckSolution(&p.Solution) {
			t.Fatalf("target=%d: solution grid invalid", target)
		}
		n, _, err := s.CountSolutions(context.Background(), p.Initial, 2)
		if err != nil || n != 1 {
			t.Fatalf("target=%d: want unique solution, count=%d err=%v", target, n, err)
		}
		if got := p.Initial.ClueCount(); got != p.ClueCount {
			t.Fatalf("target=%d: ClueCount field %d != grid clues %d", target, p.ClueCount, got)
		}
		if p.ClueCount < target {
			t.Fatalf("target=%d: carved past the target to %d", target, p.ClueCount)
		}
		// Clues must agree with the solution everywhere.
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if v := p.Initial[r][c]; v != 0 && v != p.Solution[r][c] {
					t.Fatalf("target=%d: clue (%d,%d) diverges from solution", target, r, c)
				}
			}
		}
	}
}

func TestGenerateRejectsImpossibleTarget(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	if _, _, err := g.Generate(context.Background(), 1, 16); err == nil {
		t.Fatal("want error for target below the 17-clue bound")
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	a, _, err := g.Generate(context.Background(), 99, 32)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := g.Generate(context.Background(), 99, 32)
	if err != nil {
		t.Fatal(err)
	}
	if a.Initial != b.Initial || a.Solution != b.Solution {
		t.Fatal("same seed produced different puzzles")
	}
}
