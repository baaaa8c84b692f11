package msv

import "github.com/bebop/poly/alphabet"

// Config holds every tunable that governs how aggressively the
// enumerator prunes and how far it is willing to recurse.
type Config struct {
	// Alphabet is the database/model alphabet (dense index 0..A-1), and
	// must have a complement table attached (see alphabet.DNA).
	Alphabet *alphabet.Alphabet

	// MaxDepth bounds how many residues a diagonal may accumulate before
	// enumeration gives up on it.
	MaxDepth int

	// NegLenLimit aborts a branch once this many residues have passed
	// since its best-scoring prefix was last improved.
	NegLenLimit int

	// ConsecPosReq is the longest run of strictly-positive per-residue
	// contributions a surviving branch must be able to show.
	ConsecPosReq int

	// ScoreRatioReq is the minimum score/depth density a branch must
	// maintain to survive.
	ScoreRatioReq float64

	// ScThreshFM is the absolute score a diagonal must reach to be
	// emitted as a seed.
	ScThreshFM int
}
