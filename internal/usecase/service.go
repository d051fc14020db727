// Package usecase orchestrates the engine: batch validation of a stored
// collection and generation of new collections.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"svw.info/sudoku-audit/internal/domain"
	"svw.info/sudoku-audit/internal/ports"
	"svw.info/sudoku-audit/internal/validator"
)

type Service struct {
	Validator *validator.Validator
	Generator ports.Generator
	Storage   ports.Storage
	// Workers bounds concurrent per-puzzle validation; <= 0 means one
	// worker per CPU. Puzzles are independent, so no locking is needed
	// beyond collecting results into pre-sized slots.
	Workers int
	Log     *logrus.Logger
}

func NewService(v *validator.Validator, g ports.Generator, st ports.Storage, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{Validator: v, Generator: g, Storage: st, Log: log}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// ValidateCollection validates every puzzle listed in the manifest and
// aggregates the reports. A missing or malformed record is recorded as an
// error for that puzzle only; the rest of the batch proceeds. Reports
// come back in manifest order regardless of worker scheduling.
func (u *Service) ValidateCollection(ctx context.Context) (*domain.BatchSummary, error) {
	if u.Validator == nil || u.Storage == nil {
		return nil, errNotConfigured
	}
	m, err := u.Storage.LoadManifest(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.ValidationReport, len(m.Puzzles))
	workers := u.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(m.Puzzles) && len(m.Puzzles) > 0 {
		workers = len(m.Puzzles)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				reports[idx] = u.validateOne(ctx, m.Puzzles[idx])
			}
		}()
	}
	for idx := range m.Puzzles {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	sum := &domain.BatchSummary{TotalPuzzles: len(reports), Reports: reports}
	for i := range reports {
		if reports[i].Valid {
			sum.ValidPuzzles++
		} else {
			sum.InvalidPuzzles++
		}
		sum.TotalErrors += len(reports[i].Errors)
		sum.TotalWarnings += len(reports[i].Warnings)
	}
	u.Log.WithFields(logrus.Fields{
		"total":    sum.TotalPuzzles,
		"valid":    sum.ValidPuzzles,
		"invalid":  sum.InvalidPuzzles,
		"errors":   sum.TotalErrors,
		"warnings": sum.TotalWarnings,
	}).Info("collection validated")
	return sum, nil
}

func (u *Service) validateOne(ctx context.Context, id string) domain.ValidationReport {
	rec, err := u.Storage.LoadRecord(ctx, id)
	if err != nil {
		u.Log.WithField("puzzle", id).WithError(err).Error("record unreadable")
		return domain.ValidationReport{
			PuzzleID: id,
			Valid:    false,
			Errors:   []string{fmt.Sprintf("record unreadable: %v", err)},
			Warnings: []string{},
		}
	}
	return u.Validator.Validate(ctx, rec)
}

// GenerateCollection produces count puzzles at the target clue count and
// writes them as a collection. Seeds are derived from the base seed so a
// run is reproducible. Puzzles that stop short of the target are kept and
// logged as partial results rather than discarded.
func (u *Service) GenerateCollection(ctx context.Context, count, targetClues int, seed int64) ([]*domain.Puzzle, error) {
	if u.Generator == nil || u.Storage == nil {
		return nil, errNotConfigured
	}
	puzzles := make([]*domain.Puzzle, 0, count)
	for i := 0; i < count; i++ {
		p, st, err := u.Generator.Generate(ctx, seed+int64(i), targetClues)
		if err != nil {
			return nil, fmt.Errorf("generate puzzle %d: %w", i+1, err)
		}
		log := u.Log.WithFields(logrus.Fields{
			"puzzle":     i + 1,
			"clues":      p.ClueCount,
			"difficulty": p.Difficulty.String(),
			"nodes":      st.Nodes,
			"dur":        st.Duration,
		})
		if p.ClueCount > targetClues {
			log.Warnf("partial result: stopped at %d clues, target was %d", p.ClueCount, targetClues)
		} else {
			log.Debug("puzzle generated")
		}
		puzzles = append(puzzles, p)
	}
	if err := u.Storage.SaveCollection(ctx, puzzles); err != nil {
		return nil, err
	}
	return puzzles, nil
}
