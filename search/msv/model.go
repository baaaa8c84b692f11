package msv

import "github.com/bebop/poly/search/align/matrix"

// Model is the profile HMM score data the enumerator walks against: the
// position-specific match scores and the derived best-possible-extension
// bounds used for branch-and-bound pruning.
type Model struct {
	// M is the number of model positions, numbered 1..M.
	M int
	profile *matrix.ProfileMatrix
}

// NewModel wraps a ProfileMatrix as a Model for seed enumeration.
func NewModel(profile *matrix.ProfileMatrix) *Model {
	return &Model{M: profile.M, profile: profile}
}

// Score returns the match score of alphabet symbol c at model position k.
func (m *Model) Score(k int, c uint8) int {
	return m.profile.Score(k, c)
}

// OptExtFwd returns the best obtainable score extending forward d
// additional residues from position k. It is a bound, not an achievable
// score: see matrix.ProfileMatrix.buildExtensionTable.
func (m *Model) OptExtFwd(k, d int) int {
	return m.extensionBound(m.profile.OptExtFwd, k, d)
}

// OptExtRev is the backward-direction counterpart of OptExtFwd.
func (m *Model) OptExtRev(k, d int) int {
	return m.extensionBound(m.profile.OptExtRev, k, d)
}

func (m *Model) extensionBound(table [][]int, k, d int) int {
	if k < 0 || k >= len(table) || d < 0 || d >= len(table[k]) {
		return 0
	}
	return table[k][d]
}
