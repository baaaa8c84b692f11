package msv

import (
	"testing"

	"github.com/bebop/poly/alphabet"
	"github.com/bebop/poly/search/align/matrix"
)

// identityModel builds an M-position model over DNA where residue k-1
// (0-based) scores +2 at position k and every other residue scores -5,
// matching scenario S1/S2 from the scoring specification.
func identityModel(t *testing.T, m int) *Model {
	t.Helper()
	scores := make([][]int, m+1)
	scores[0] = make([]int, 4)
	for k := 1; k <= m; k++ {
		row := make([]int, 4)
		for c := range row {
			if c == k-1 {
				row[c] = 2
			} else {
				row[c] = -5
			}
		}
		scores[k] = row
	}
	pm, err := matrix.NewProfileMatrix(alphabet.DNA, scores)
	if err != nil {
		t.Fatalf("NewProfileMatrix() error = %v", err)
	}
	return NewModel(pm)
}

func TestPrunedRejectsNonPositiveScore(t *testing.T) {
	model := identityModel(t, 4)
	cfg := Config{Alphabet: alphabet.DNA, MaxDepth: 4, NegLenLimit: 4, ConsecPosReq: 0, ScoreRatioReq: 0}
	dp := dpPair{direction: Forward, maxScoreLen: 1, maxConsecPos: 1}
	if !pruned(model, cfg, dp, 0, 2, 1) {
		t.Error("expected prune on non-positive score")
	}
}

func TestPrunedRejectsAtMaxDepth(t *testing.T) {
	model := identityModel(t, 4)
	cfg := Config{Alphabet: alphabet.DNA, MaxDepth: 4, NegLenLimit: 4, ConsecPosReq: 0, ScoreRatioReq: 0}
	dp := dpPair{direction: Forward, maxScoreLen: 1, maxConsecPos: 1}
	if !pruned(model, cfg, dp, 5, 2, 4) {
		t.Error("expected prune once depth reaches max_depth")
	}
}

func TestPrunedRejectsLowDensity(t *testing.T) {
	model := identityModel(t, 4)
	cfg := Config{Alphabet: alphabet.DNA, MaxDepth: 8, NegLenLimit: 8, ConsecPosReq: 0, ScoreRatioReq: 2.0}
	dp := dpPair{direction: Forward, maxScoreLen: 1, maxConsecPos: 1}
	if !pruned(model, cfg, dp, 1, 2, 2) {
		t.Error("expected prune when score/depth falls below score_ratio_req")
	}
}

func TestPrunedRejectsForwardAtModelEnd(t *testing.T) {
	model := identityModel(t, 4)
	cfg := Config{Alphabet: alphabet.DNA, MaxDepth: 8, NegLenLimit: 8, ConsecPosReq: 0, ScoreRatioReq: 0}
	dp := dpPair{direction: Forward, maxScoreLen: 1, maxConsecPos: 1}
	if !pruned(model, cfg, dp, 2, model.M, 2) {
		t.Error("expected prune when forward walk reaches the last model position")
	}
}

func TestPrunedRejectsBackwardAtModelStart(t *testing.T) {
	model := identityModel(t, 4)
	cfg := Config{Alphabet: alphabet.DNA, MaxDepth: 8, NegLenLimit: 8, ConsecPosReq: 0, ScoreRatioReq: 0}
	dp := dpPair{direction: Backward, maxScoreLen: 1, maxConsecPos: 1}
	if !pruned(model, cfg, dp, 2, 1, 2) {
		t.Error("expected prune when backward walk reaches model position 1")
	}
}

func TestPrunedAllowsHealthyBranch(t *testing.T) {
	model := identityModel(t, 4)
	cfg := Config{Alphabet: alphabet.DNA, MaxDepth: 8, NegLenLimit: 8, ConsecPosReq: 0, ScoreRatioReq: 0.5}
	dp := dpPair{direction: Forward, score: 2, maxScore: 2, maxScoreLen: 1, consecPos: 1, maxConsecPos: 1}
	if pruned(model, cfg, dp, 4, 2, 2) {
		t.Error("did not expect prune on a healthy, improving branch")
	}
}
