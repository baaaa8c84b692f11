package msv

// Diagonal is a seed hit: an ungapped alignment between a contiguous
// model window and a database substring.
type Diagonal struct {
	// N is the database start position, 0-based.
	N int
	// K is the model position aligned to the first diagonal character.
	K int
	// Length is the number of matched residues.
	Length int
}

// Antidiagonal returns n-k, which is constant along any single ungapped
// alignment and is the key diagonals are sorted and merged by.
func (d Diagonal) Antidiagonal() int {
	return d.N - d.K
}

// End returns the exclusive end of the diagonal's database range.
func (d Diagonal) End() int {
	return d.N + d.Length
}
