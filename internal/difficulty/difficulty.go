// Package difficulty grades puzzles by clue count.
//
// The grade is advisory metadata: it never participates in pass/fail
// validation. The canonical table is Default; callers may load an
// alternative table from YAML.
package difficulty

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/sudoku-audit/internal/domain"
)

// Thresholds maps clue counts to difficulty labels: a puzzle with at
// least Easy clues is easy, at least Medium is medium, at least Hard is
// hard, and anything below Hard is expert.
type Thresholds struct {
	Easy   int `yaml:"easy"`
	Medium int `yaml:"medium"`
	Hard   int `yaml:"hard"`
}

// Default is the canonical table.
var Default = Thresholds{Easy: 35, Medium: 27, Hard: 22}

// Estimate grades a clue count against the table.
func (t Thresholds) Estimate(clueCount int) domain.Difficulty {
	switch {
	case clueCount >= t.Easy:
		return domain.Easy
	case clueCount >= t.Medium:
		return domain.Medium
	case clueCount >= t.Hard:
		return domain.Hard
	default:
		return domain.Expert
	}
}

// Validate rejects tables that are not strictly descending; a
// non-monotonic table would make some labels unreachable.
func (t Thresholds) Validate() error {
	if t.Easy <= t.Medium || t.Medium <= t.Hard || t.Hard < 1 {
		return fmt.Errorf("thresholds must satisfy easy > medium > hard >= 1, got %d/%d/%d",
			t.Easy, t.Medium, t.Hard)
	}
	return nil
}

// Load reads a Thresholds table from a YAML file.
func Load(path string) (Thresholds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, fmt.Errorf("read thresholds: %w", err)
	}
	var t Thresholds
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Thresholds{}, fmt.Errorf("parse thresholds: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Thresholds{}, err
	}
	return t, nil
}
