// Package storage reads and writes puzzle collections as a directory of
// JSON files: a manifest plus one record per puzzle keyed by a
// zero-padded numeric identifier.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"svw.info/sudoku-audit/internal/domain"
	"svw.info/sudoku-audit/internal/ports"
)

const manifestName = "manifest.json"

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) LoadManifest(ctx context.Context) (ports.Manifest, error) {
	var m ports.Manifest
	data, err := os.ReadFile(filepath.Join(s.dir, manifestName))
	if err != nil {
		return m, fmt.Errorf("read manifest: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse manifest: %w", err)
	}
	if m.PuzzleCount != len(m.Puzzles) {
		return m, fmt.Errorf("manifest puzzle_count %d disagrees with %d listed identifiers", m.PuzzleCount, len(m.Puzzles))
	}
	return m, nil
}

func (s *FS) LoadRecord(ctx context.Context, id string) (*ports.PuzzleRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, id+".json"))
	if err != nil {
		return nil, fmt.Errorf("read record %s: %w", id, err)
	}
	var rec ports.PuzzleRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse record %s: %w", id, err)
	}
	if rec.ID == "" {
		rec.ID = id
	}
	return &rec, nil
}

// SaveCollection writes one record per puzzle under zero-padded numeric
// identifiers plus the manifest listing them in order.
func (s *FS) SaveCollection(ctx context.Context, puzzles []*domain.Puzzle) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	m := ports.Manifest{PuzzleCount: len(puzzles), Puzzles: make([]string, 0, len(puzzles))}
	for i, p := range puzzles {
		id := fmt.Sprintf("%03d", i+1)
		rec := ports.PuzzleRecord{
			ID:         id,
			Initial:    p.Initial.Rows(),
			Solution:   p.Solution.Rows(),
			Difficulty: p.Difficulty.String(),
		}
		if err := writeJSON(filepath.Join(s.dir, id+".json"), rec); err != nil {
			return fmt.Errorf("write record %s: %w", id, err)
		}
		m.Puzzles = append(m.Puzzles, id)
	}
	if err := writeJSON(filepath.Join(s.dir, manifestName), m); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
