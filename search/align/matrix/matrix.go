/*
Package matrix provides scoring matrices for sequence comparison.

SubstitutionMatrix is a generic, symmetric-or-not lookup table between two
alphabets, the kind used for simple pairwise alignment (e.g. a DNA
identity matrix or a protein BLOSUM table). ProfileMatrix is a
position-specific scoring table over a single alphabet, one row per
profile HMM model position, which is what drives residue-by-residue
match scoring during seed enumeration.
*/
package matrix

import (
	"fmt"

	"github.com/bebop/poly/alphabet"
)

// SubstitutionMatrix holds a scoring matrix between two (possibly
// distinct) alphabets, such as a nucleotide identity matrix or a protein
// substitution matrix like BLOSUM62.
type SubstitutionMatrix struct {
	FirstAlphabet  *alphabet.Alphabet
	SecondAlphabet *alphabet.Alphabet
	scores         [][]int
}

// NewSubstitutionMatrix returns a new SubstitutionMatrix, validating that
// scores has exactly one row per symbol of firstAlphabet and one column
// per symbol of secondAlphabet.
func NewSubstitutionMatrix(firstAlphabet, secondAlphabet *alphabet.Alphabet, scores [][]int) (*SubstitutionMatrix, error) {
	if len(scores) != len(firstAlphabet.Symbols()) {
		return nil, fmt.Errorf("scores has %d rows, expected %d to match firstAlphabet", len(scores), len(firstAlphabet.Symbols()))
	}
	for i, row := range scores {
		if len(row) != len(secondAlphabet.Symbols()) {
			return nil, fmt.Errorf("scores row %d has %d columns, expected %d to match secondAlphabet", i, len(row), len(secondAlphabet.Symbols()))
		}
	}
	return &SubstitutionMatrix{
		FirstAlphabet:  firstAlphabet,
		SecondAlphabet: secondAlphabet,
		scores:         scores,
	}, nil
}

// Score returns the substitution score between symbol a (encoded in
// FirstAlphabet) and symbol b (encoded in SecondAlphabet).
func (m *SubstitutionMatrix) Score(a, b string) (int, error) {
	codeA, err := m.FirstAlphabet.Encode(a)
	if err != nil {
		return 0, fmt.Errorf("symbol %q not in first alphabet: %w", a, err)
	}
	codeB, err := m.SecondAlphabet.Encode(b)
	if err != nil {
		return 0, fmt.Errorf("symbol %q not in second alphabet: %w", b, err)
	}
	return m.scores[codeA][codeB], nil
}
