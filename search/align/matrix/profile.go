package matrix

import (
	"fmt"

	"github.com/bebop/poly/alphabet"
)

// ProfileMatrix is a position-specific scoring table over a single
// alphabet: one row per profile HMM model position k in [1, M], one
// column per dense alphabet index. It also carries the two extension
// tables used to bound how much additional score a partial match could
// still accumulate: OptExtFwd[k][d] is the best obtainable score
// extending forward d additional residues from position k, OptExtRev[k][d]
// is the symmetric bound extending backward.
type ProfileMatrix struct {
	Alphabet  *alphabet.Alphabet
	M         int
	scores    [][]int
	OptExtFwd [][]int
	OptExtRev [][]int
}

// NewProfileMatrix builds a ProfileMatrix from a dense M x A score table
// (model position 1..M, alphabet symbol 0..A-1) and derives the forward
// and backward optimal-extension tables from it. scores[0] is unused
// padding so that rows can be indexed directly by 1-based model position,
// matching the rest of this package's 1-based model-position convention.
func NewProfileMatrix(alpha *alphabet.Alphabet, scores [][]int) (*ProfileMatrix, error) {
	m := len(scores) - 1
	if m < 1 {
		return nil, fmt.Errorf("scores must have at least 2 rows (index 0 padding plus at least one model position), got %d", len(scores))
	}
	a := len(alpha.Symbols())
	for k, row := range scores {
		if len(row) != a {
			return nil, fmt.Errorf("scores row %d has %d columns, expected %d to match alphabet", k, len(row), a)
		}
	}

	pm := &ProfileMatrix{
		Alphabet: alpha,
		M:        m,
		scores:   scores,
	}
	pm.OptExtFwd = pm.buildExtensionTable(forwardDirection)
	pm.OptExtRev = pm.buildExtensionTable(backwardDirection)
	return pm, nil
}

type extensionDirection int

const (
	forwardDirection extensionDirection = iota
	backwardDirection
)

// Score returns the match score of alphabet symbol c at model position k.
func (pm *ProfileMatrix) Score(k int, c uint8) int {
	return pm.scores[k][c]
}

// buildExtensionTable computes, for every model position k and remaining
// depth d, the best score obtainable by picking the single highest
// scoring residue at each of the d positions strictly beyond k in the
// given direction (k itself is excluded: callers already fold k's own
// score into the running score before consulting this bound, and
// including it again here would double-count it). It is a bound used
// for branch-and-bound pruning, not an achievable alignment score:
// consecutive positions may not be able to simultaneously hit their
// individual best residue in a real alignment, but no real extension
// can ever exceed this sum.
func (pm *ProfileMatrix) buildExtensionTable(dir extensionDirection) [][]int {
	table := make([][]int, pm.M+2)
	for k := range table {
		table[k] = make([]int, pm.M+2)
	}

	bestAt := make([]int, pm.M+1)
	for k := 1; k <= pm.M; k++ {
		best := pm.scores[k][0]
		for c := 1; c < len(pm.scores[k]); c++ {
			if pm.scores[k][c] > best {
				best = pm.scores[k][c]
			}
		}
		bestAt[k] = best
	}

	for k := 1; k <= pm.M; k++ {
		cumulative := 0
		for d := 0; d <= pm.M; d++ {
			table[k][d] = cumulative
			var pos int
			if dir == forwardDirection {
				pos = k + d + 1
			} else {
				pos = k - d - 1
			}
			if pos < 1 || pos > pm.M {
				break
			}
			cumulative += bestAt[pos]
		}
	}
	return table
}
