package msv

import "github.com/bebop/poly/search/fmindex"

// FindSeeds walks every database position implicitly, via the index,
// looking for short high-scoring ungapped alignments between model and
// (complement-strand) database residues, then extends each one with
// recurse until it either crosses threshold or gets pruned. Only the
// complement strand is searched: no DP pair is ever built that matches
// the database directly against the model.
func FindSeeds(model *Model, idx *fmindex.Index, cfg Config) []Diagonal {
	var diagonals []Diagonal
	emit := func(d Diagonal) { diagonals = append(diagonals, d) }

	symbols := cfg.Alphabet.Symbols()
	for s := 0; s < len(symbols); s++ {
		c := symbols[s][0]
		code := uint8(s)

		complement, err := cfg.Alphabet.Complement(code)
		if err != nil {
			continue
		}

		var fwdSeeds, revSeeds []dpPair
		for k := 1; k <= model.M; k++ {
			score := model.Score(k, complement)
			if score <= 0 {
				continue
			}
			seed := dpPair{
				pos:             k,
				score:           score,
				maxScore:        score,
				maxScoreLen:     1,
				consecPos:       1,
				maxConsecPos:    1,
				complementarity: Complement,
			}

			if k > 3 {
				seed.direction = Backward
				fwdSeeds = append(fwdSeeds, seed)
			}
			if k < model.M-2 {
				seed.direction = Forward
				revSeeds = append(revSeeds, seed)
			}
		}

		if len(fwdSeeds) > 0 {
			primary, companion := idx.UpdateForward(idx.Full(), idx.Full(), c)
			recurse(model, idx, cfg, 2, fmForward, fwdSeeds, primary, companion, emit)
		}
		if len(revSeeds) > 0 {
			primary := idx.UpdateReverse(idx.Full(), c)
			recurse(model, idx, cfg, 2, fmBackward, revSeeds, primary, fmindex.Interval{}, emit)
		}
	}

	return SortAndMerge(diagonals)
}
