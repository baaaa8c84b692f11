package msv

import "github.com/bebop/poly/search/fmindex"

// fmDirection is which side of the bidirectional FM-index a recursion
// branch is walking: forward extends the match by appending a residue
// (keeping a primary/companion interval pair in sync via
// fmindex.Index.UpdateForward), backward extends it by prepending one
// (a single-index search via fmindex.Index.UpdateReverse). It is
// independent of a DP pair's own model-stepping Direction.
type fmDirection int

const (
	fmForward fmDirection = iota
	fmBackward
)

// recurse walks one more residue of every alphabet symbol against every
// DP pair in pairs, emitting diagonals whose score crosses the
// threshold and propagating the rest, depth-first, until nothing
// survives or max_depth is reached. primary/companion are the FM
// interval(s) matching the db/model string already accumulated by
// pairs; for fmForward both are meaningful, for fmBackward only primary
// is (companion is the zero value and ignored).
func recurse(model *Model, idx *fmindex.Index, cfg Config, depth int, dir fmDirection, pairs []dpPair, primary, companion fmindex.Interval, emit func(Diagonal)) {
	symbols := cfg.Alphabet.Symbols()

	for s := 0; s < len(symbols); s++ {
		c := symbols[s][0]
		code := uint8(s)

		var nextPrimary, nextCompanion fmindex.Interval
		if dir == fmForward {
			nextPrimary, nextCompanion = idx.UpdateForward(primary, companion, c)
		} else {
			nextPrimary = idx.UpdateReverse(primary, c)
		}
		intervalEmpty := nextPrimary.End <= nextPrimary.Start

		var survivors []dpPair
		for _, dp := range pairs {
			kNew := dp.pos + 1
			if dp.direction == Backward {
				kNew = dp.pos - 1
			}
			if kNew < 1 || kNew > model.M {
				continue
			}

			residue := code
			if dp.complementarity == Complement {
				comp, err := cfg.Alphabet.Complement(code)
				if err != nil {
					continue
				}
				residue = comp
			}
			extensionScore := model.Score(kNew, residue)
			newScore := dp.score + extensionScore

			if newScore >= cfg.ScThreshFM {
				if !intervalEmpty {
					emitDiagonals(idx, dir, dp, kNew, depth, nextPrimary, nextCompanion, emit)
				}
				continue
			}

			if pruned(model, cfg, dp, newScore, kNew, depth) {
				continue
			}

			next := dp
			next.pos = kNew
			next.score = newScore
			if newScore > next.maxScore {
				next.maxScore = newScore
				next.maxScoreLen = depth
			}
			if extensionScore > 0 {
				next.consecPos = dp.consecPos + 1
			} else {
				next.consecPos = 0
			}
			if next.consecPos > next.maxConsecPos {
				next.maxConsecPos = next.consecPos
			}
			survivors = append(survivors, next)
		}

		if len(survivors) > 0 && !intervalEmpty {
			recurse(model, idx, cfg, depth+1, dir, survivors, nextPrimary, nextCompanion, emit)
		}
	}
}

// emitDiagonals extracts one diagonal per row of the interval that
// carries real database positions: the companion interval in fmForward
// mode (it lives in the forward index's row space), the primary interval
// in fmBackward mode (it already is the forward index's interval).
func emitDiagonals(idx *fmindex.Index, dir fmDirection, dp dpPair, kNew, depth int, primary, companion fmindex.Interval, emit func(Diagonal)) {
	iv := primary
	if dir == fmForward {
		iv = companion
	}

	k := kNew
	if dir == fmForward {
		k = kNew - depth + 1
	}

	for row := iv.Start; row < iv.End; row++ {
		n, _ := idx.BacktrackSeed(row)
		emit(Diagonal{N: n, K: k, Length: depth})
	}
}

// pruned implements the enumerator's multi-criterion pruning test: a
// branch is abandoned when any of these conditions holds, each one a
// different way of concluding that no completion within the remaining
// budget can both reach the threshold and satisfy the configured
// quality bars.
func pruned(model *Model, cfg Config, dp dpPair, newScore, kNew, depth int) bool {
	if newScore <= 0 {
		return true
	}
	if depth == cfg.MaxDepth {
		return true
	}
	if depth == dp.maxScoreLen+cfg.NegLenLimit {
		return true
	}
	if float64(newScore)/float64(depth) < cfg.ScoreRatioReq {
		return true
	}
	if dp.maxConsecPos < cfg.ConsecPosReq {
		densityTooLowAtMidpoint := depth >= cfg.MaxDepth/2 &&
			float64(newScore)/float64(depth) < float64(cfg.ScThreshFM)/float64(cfg.MaxDepth)
		outOfRoomForRun := depth == cfg.MaxDepth-cfg.ConsecPosReq+1
		if densityTooLowAtMidpoint || outOfRoomForRun {
			return true
		}
	}

	remaining := cfg.MaxDepth - depth - 1
	if dp.direction == Forward {
		if kNew == model.M {
			return true
		}
		if depth > cfg.MaxDepth-10 && newScore+model.OptExtFwd(kNew, remaining) < cfg.ScThreshFM {
			return true
		}
	} else {
		if kNew == 1 {
			return true
		}
		if depth > cfg.MaxDepth-10 && newScore+model.OptExtRev(kNew, remaining) < cfg.ScThreshFM {
			return true
		}
	}
	return false
}
