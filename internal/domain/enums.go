package domain

// Difficulty labels puzzle grading by clue count.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "expert"
	}
}

// ParseDifficulty maps a label back to its Difficulty; unknown labels
// report ok=false so pass-through metadata is never silently re-graded.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	case "expert":
		return Expert, true
	}
	return Medium, false
}

// Symmetry classifies the geometric layout of clue positions.
// Values are irrelevant; only the set of coordinates matters.
type Symmetry int

const (
	Rotational180 Symmetry = iota
	Horizontal
	Vertical
	Diagonal
	NoSymmetry
)

func (s Symmetry) String() string {
	switch s {
	case Rotational180:
		return "rotational_180"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	default:
		return "none"
	}
}
