package bio_test

import (
	"context"
	"strings"
	"testing"

	"github.com/bebop/poly/bio"
	"github.com/bebop/poly/bio/fasta"
)

func TestParseFasta(t *testing.T) {
	const data = ">seq1\nACGTACGT\n>seq2\nTTTT\n"
	parser, err := bio.NewFastaParser(strings.NewReader(data))
	if err != nil {
		t.Fatalf("NewFastaParser() error = %v", err)
	}
	records, err := parser.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Identifier != "seq1" || records[0].Sequence != "ACGTACGT" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Identifier != "seq2" || records[1].Sequence != "TTTT" {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestManyToChannelParsesConcurrently(t *testing.T) {
	fileOne := ">alpha\nACGT\n"
	fileTwo := ">beta\nTTTT\n>gamma\nGGGG\n"

	parserOne, err := bio.NewFastaParser(strings.NewReader(fileOne))
	if err != nil {
		t.Fatalf("NewFastaParser(fileOne) error = %v", err)
	}
	parserTwo, err := bio.NewFastaParser(strings.NewReader(fileTwo))
	if err != nil {
		t.Fatalf("NewFastaParser(fileTwo) error = %v", err)
	}

	records := make(chan *fasta.Record)
	errCh := make(chan error, 1)
	go func() {
		errCh <- bio.ManyToChannel(context.Background(), records, parserOne, parserTwo)
	}()

	seen := make(map[string]string)
	for record := range records {
		seen[record.Identifier] = record.Sequence
	}
	if err := <-errCh; err != nil {
		t.Fatalf("ManyToChannel() error = %v", err)
	}

	want := map[string]string{"alpha": "ACGT", "beta": "TTTT", "gamma": "GGGG"}
	if len(seen) != len(want) {
		t.Fatalf("got %d records across both parsers, want %d: %+v", len(seen), len(want), seen)
	}
	for id, sequence := range want {
		if seen[id] != sequence {
			t.Errorf("record %s: got sequence %q, want %q", id, seen[id], sequence)
		}
	}
}
