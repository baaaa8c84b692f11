package msv

import "sort"

// SortAndMerge sorts diagonals by antidiagonal (n-k) ascending, tie
// broken by k ascending, then coalesces adjacent entries that share an
// antidiagonal into one entry running from the smallest n to the largest
// end of their [n, n+length) ranges; a gap between them is included. The
// input slice is sorted and compacted in place; the returned slice is a
// prefix of it.
func SortAndMerge(diagonals []Diagonal) []Diagonal {
	if len(diagonals) < 2 {
		return diagonals
	}

	sort.Slice(diagonals, func(i, j int) bool {
		ai, aj := diagonals[i].Antidiagonal(), diagonals[j].Antidiagonal()
		if ai != aj {
			return ai < aj
		}
		return diagonals[i].K < diagonals[j].K
	})

	merged := diagonals[:1]
	for _, d := range diagonals[1:] {
		last := &merged[len(merged)-1]
		if d.Antidiagonal() != last.Antidiagonal() {
			merged = append(merged, d)
			continue
		}
		end := last.End()
		if d.End() > end {
			end = d.End()
		}
		if d.N < last.N {
			last.N = d.N
			last.K = d.K
		}
		last.Length = end - last.N
	}
	return merged
}
