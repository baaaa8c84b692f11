package fmindex

// UpdateReverse narrows a primary interval by prepending symbol c to the
// already-matched pattern. This is a standard single-index backward
// search step: no companion interval is touched, because prepending a
// character never changes the relative suffix order the companion
// interval already encodes.
func (idx *Index) UpdateReverse(primary Interval, c byte) Interval {
	return Interval{
		Start: idx.forward.CAt(c) + idx.forward.Occ(c, primary.Start),
		End:   idx.forward.CAt(c) + idx.forward.Occ(c, primary.End),
	}
}

// UpdateForward narrows a primary/companion interval pair by appending
// symbol c to the already-matched pattern. primary lives in the backward
// (reverse-text) index's row space and is searched directly, the same
// way UpdateReverse searches the forward index; companion lives in the
// forward index's row space (the one whose suffix array gives real
// database positions) and is carried along by counting, within the old
// primary range, how many occurrences of every symbol lexicographically
// smaller than c, the '$' sentinel included, preceded it - the standard
// bidirectional-BWT trick that
// lets a single index's rank queries advance both interval pairs in
// lock-step. See Lam et al., "High Throughput Short Read Alignment via
// Bi-directional BWT".
func (idx *Index) UpdateForward(primary, companion Interval, c byte) (Interval, Interval) {
	// An occurrence at the very end of the sequence is followed by the
	// sentinel, which sorts before every alphabet symbol.
	lessThanC := idx.backward.Occ('$', primary.End) - idx.backward.Occ('$', primary.Start)
	for _, symbol := range idx.Alphabet.Symbols() {
		other := symbol[0]
		if other >= c {
			continue
		}
		lessThanC += idx.backward.Occ(other, primary.End) - idx.backward.Occ(other, primary.Start)
	}

	newPrimary := Interval{
		Start: idx.backward.CAt(c) + idx.backward.Occ(c, primary.Start),
		End:   idx.backward.CAt(c) + idx.backward.Occ(c, primary.End),
	}
	newCompanion := Interval{
		Start: companion.Start + lessThanC,
		End:   companion.Start + lessThanC + (newPrimary.End - newPrimary.Start),
	}
	return newPrimary, newCompanion
}
