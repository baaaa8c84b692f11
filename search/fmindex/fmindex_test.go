package fmindex_test

import (
	"sort"
	"testing"

	"github.com/bebop/poly/alphabet"
	"github.com/bebop/poly/search/fmindex"
)

func TestUpdateReverseLocatesPattern(t *testing.T) {
	idx, err := fmindex.New(alphabet.DNA, "ACGTACGT", 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// "GT" occurs at database positions 2 and 6. UpdateReverse prepends
	// characters, so we narrow with the pattern's last character first.
	iv := idx.Full()
	iv = idx.UpdateReverse(iv, 'T')
	iv = idx.UpdateReverse(iv, 'G')

	var positions []int
	for row := iv.Start; row < iv.End; row++ {
		pos, _ := idx.BacktrackSeed(row)
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	want := []int{2, 6}
	if len(positions) != len(want) {
		t.Fatalf("got positions %v, want %v", positions, want)
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Errorf("positions[%d] = %d, want %d", i, positions[i], want[i])
		}
	}
}

func TestUpdateForwardMatchesUpdateReverse(t *testing.T) {
	idx, err := fmindex.New(alphabet.DNA, "ACGTACGT", 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Searching "GT" by appending (UpdateForward, left to right) must find
	// the same occurrence set as searching it by prepending
	// (UpdateReverse, right to left). UpdateForward's companion interval
	// lives in the same (forward-index) row space as UpdateReverse's
	// interval, so both can be resolved to database positions directly.
	primary, companion := idx.UpdateForward(idx.Full(), idx.Full(), 'G')
	_, companion = idx.UpdateForward(primary, companion, 'T')

	reverseIv := idx.Full()
	reverseIv = idx.UpdateReverse(reverseIv, 'T')
	reverseIv = idx.UpdateReverse(reverseIv, 'G')

	forwardCount := companion.End - companion.Start
	reverseCount := reverseIv.End - reverseIv.Start
	if forwardCount != reverseCount {
		t.Fatalf("UpdateForward found %d occurrences, UpdateReverse found %d", forwardCount, reverseCount)
	}
	if forwardCount != 2 {
		t.Fatalf("got %d occurrences of GT, want 2", forwardCount)
	}

	var forwardPositions, reversePositions []int
	for row := companion.Start; row < companion.End; row++ {
		pos, _ := idx.BacktrackSeed(row)
		forwardPositions = append(forwardPositions, pos)
	}
	for row := reverseIv.Start; row < reverseIv.End; row++ {
		pos, _ := idx.BacktrackSeed(row)
		reversePositions = append(reversePositions, pos)
	}
	sort.Ints(forwardPositions)
	sort.Ints(reversePositions)
	for i := range forwardPositions {
		if forwardPositions[i] != reversePositions[i] {
			t.Errorf("position %d: forward=%d reverse=%d", i, forwardPositions[i], reversePositions[i])
		}
	}
}

func TestUpdateReverseEmptyForAbsentPattern(t *testing.T) {
	idx, err := fmindex.New(alphabet.DNA, "ACGTACGT", 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	iv := idx.Full()
	iv = idx.UpdateReverse(iv, 'T')
	iv = idx.UpdateReverse(iv, 'T')
	if iv.End > iv.Start {
		t.Errorf("expected no occurrences of TT, got interval %+v", iv)
	}
}

func TestSampledBacktrackMatchesDense(t *testing.T) {
	const db = "ACGTACGTACGTACGTACGT"
	dense, err := fmindex.New(alphabet.DNA, db, 0)
	if err != nil {
		t.Fatalf("New() dense error = %v", err)
	}
	sampled, err := fmindex.New(alphabet.DNA, db, 2) // stride 4
	if err != nil {
		t.Fatalf("New() sampled error = %v", err)
	}

	ivDense := dense.Full()
	ivDense = dense.UpdateReverse(ivDense, 'T')
	ivDense = dense.UpdateReverse(ivDense, 'G')

	ivSampled := sampled.Full()
	ivSampled = sampled.UpdateReverse(ivSampled, 'T')
	ivSampled = sampled.UpdateReverse(ivSampled, 'G')

	if (ivDense.End - ivDense.Start) != (ivSampled.End - ivSampled.Start) {
		t.Fatalf("dense and sampled intervals differ in size: %+v vs %+v", ivDense, ivSampled)
	}

	var densePositions, sampledPositions []int
	for row := ivDense.Start; row < ivDense.End; row++ {
		pos, _ := dense.BacktrackSeed(row)
		densePositions = append(densePositions, pos)
	}
	for row := ivSampled.Start; row < ivSampled.End; row++ {
		pos, _ := sampled.BacktrackSeed(row)
		sampledPositions = append(sampledPositions, pos)
	}
	sort.Ints(densePositions)
	sort.Ints(sampledPositions)

	if len(densePositions) != len(sampledPositions) {
		t.Fatalf("got %d dense positions, %d sampled positions", len(densePositions), len(sampledPositions))
	}
	for i := range densePositions {
		if densePositions[i] != sampledPositions[i] {
			t.Errorf("position %d: dense=%d sampled=%d", i, densePositions[i], sampledPositions[i])
		}
	}
}
