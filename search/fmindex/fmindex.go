/*
Package fmindex provides a bidirectional FM-index pair over a single
database sequence.

A classic FM-index, built from the Burrows-Wheeler Transform of a text,
only supports backward search: each additional character must be
prepended to the pattern already matched. Walking a profile HMM against a
database needs to extend a seed in both directions from wherever the
first high-scoring residue was found, so this package keeps two indexes
in sync - one built over the database text, one built over its reverse -
and narrows them together. See Lam et al., "High Throughput Short Read
Alignment via Bi-directional BWT", for the formulas UpdateForward
implements.
*/
package fmindex

import (
	"github.com/bebop/poly/alphabet"
	"github.com/bebop/poly/bwt"
	"github.com/bebop/poly/transform"
)

// Interval is a contiguous, open-ended range of BWT rows shared by a
// forward/backward pair of indexes representing the same set of pattern
// occurrences.
type Interval = bwt.Interval

// Index is a bidirectional FM-index pair over a single database
// sequence: one BWT built over the sequence itself, used to extend a
// match to the left (UpdateReverse), and one BWT built over the reverse
// of the sequence, used to extend a match to the right while keeping a
// companion interval on the first BWT in sync (UpdateForward). Together
// they let the seed enumerator walk either direction from a starting
// model position.
type Index struct {
	Alphabet *alphabet.Alphabet
	forward  bwt.BWT
	backward bwt.BWT
}

// New builds a bidirectional FM-index over sequence, sampling its suffix
// arrays at a stride of 2^shiftSA. A shiftSA of 0 keeps a dense suffix
// array; a larger shiftSA keeps real values only for sampled positions and
// resolves the other rows through BacktrackSeed. The sampled arrays still
// hold one slot per row, so a larger shiftSA does not shrink them.
func New(alpha *alphabet.Alphabet, sequence string, shiftSA uint) (*Index, error) {
	fwd, err := bwt.NewSampled(sequence, shiftSA)
	if err != nil {
		return nil, err
	}
	bwd, err := bwt.NewSampled(transform.Reverse(sequence), shiftSA)
	if err != nil {
		return nil, err
	}
	return &Index{
		Alphabet: alpha,
		forward:  fwd,
		backward: bwd,
	}, nil
}

// Len returns the length of the indexed sequence, not counting the
// sentinel row added internally by the BWT construction.
func (idx *Index) Len() int {
	return idx.forward.Len()
}

// Full returns the interval spanning every row of the index: the
// starting point for any bidirectional walk, before any symbol has been
// matched.
func (idx *Index) Full() Interval {
	return Interval{Start: 0, End: idx.forward.Len() + 1}
}

// BacktrackSeed resolves a row of the forward index to its position in
// the original database sequence, walking LF-mapping steps until a
// sampled suffix-array entry is found. The returned step count is the
// number of residues between the row's true position and the nearest
// preceding sample; it is zero whenever the index was built with
// shiftSA == 0.
func (idx *Index) BacktrackSeed(row int) (pos int, steps int) {
	return idx.forward.BacktrackRow(row)
}
