/*
Command msv runs the MSV seed finder against a FASTA-encoded target
database and a tab-separated profile score matrix, printing the
resulting diagonals as TSV to stdout.

	msv -db target.fasta -matrix profile.tsv -threshold 20
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/bebop/poly/alphabet"
	"github.com/bebop/poly/bio"
	"github.com/bebop/poly/checks"
	"github.com/bebop/poly/search/align/matrix"
	"github.com/bebop/poly/search/fmindex"
	"github.com/bebop/poly/search/msv"
	"github.com/bebop/poly/seqhash"
)

func main() {
	app := &cli.App{
		Name:  "msv",
		Usage: "find MSV seed diagonals between a profile and an FM-indexed database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Required: true, Usage: "target database in FASTA format"},
			&cli.StringFlag{Name: "matrix", Required: true, Usage: "tab-separated profile score matrix, one row per model position"},
			&cli.IntFlag{Name: "threshold", Required: true, Usage: "minimum diagonal score to emit, sc_threshFM"},
			&cli.IntFlag{Name: "max-depth", Value: 16, Usage: "maximum enumeration depth"},
			&cli.IntFlag{Name: "neg-len-limit", Value: 5, Usage: "residues tolerated since the last score improvement"},
			&cli.IntFlag{Name: "consec-pos-req", Value: 2, Usage: "required longest run of positive-scoring residues"},
			&cli.Float64Flag{Name: "score-ratio-req", Value: 0.0, Usage: "minimum score/depth density"},
			&cli.UintFlag{Name: "sa-shift", Value: 4, Usage: "suffix array sampling stride, as a power of two"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	dbFile, err := os.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer dbFile.Close()

	parser, err := bio.NewFastaParser(dbFile)
	if err != nil {
		return fmt.Errorf("reading database: %w", err)
	}
	records, err := parser.Parse()
	if err != nil {
		return fmt.Errorf("parsing database: %w", err)
	}

	matrixFile, err := os.Open(c.String("matrix"))
	if err != nil {
		return fmt.Errorf("opening score matrix: %w", err)
	}
	defer matrixFile.Close()

	scores, err := parseScoreMatrix(matrixFile)
	if err != nil {
		return fmt.Errorf("parsing score matrix: %w", err)
	}

	profile, err := matrix.NewProfileMatrix(alphabet.DNA, scores)
	if err != nil {
		return fmt.Errorf("building profile: %w", err)
	}
	model := msv.NewModel(profile)

	cfg := msv.Config{
		Alphabet:      alphabet.DNA,
		MaxDepth:      c.Int("max-depth"),
		NegLenLimit:   c.Int("neg-len-limit"),
		ConsecPosReq:  c.Int("consec-pos-req"),
		ScoreRatioReq: c.Float64("score-ratio-req"),
		ScThreshFM:    c.Int("threshold"),
	}

	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	seen := make(map[string]string) // seqhash -> identifier of the record it was first seen under
	for _, record := range records {
		if !checks.IsDNA(strings.ToUpper(record.Sequence)) {
			return fmt.Errorf("record %s is not a DNA sequence", record.Identifier)
		}

		hash, err := seqhash.Hash(record.Sequence, seqhash.DNA, false, false)
		if err != nil {
			return fmt.Errorf("hashing %s: %w", record.Identifier, err)
		}
		if firstSeenAs, duplicate := seen[hash]; duplicate {
			fmt.Fprintf(os.Stderr, "skipping %s: identical sequence already indexed as %s\n", record.Identifier, firstSeenAs)
			continue
		}
		seen[hash] = record.Identifier

		idx, err := fmindex.New(alphabet.DNA, record.Sequence, c.Uint("sa-shift"))
		if err != nil {
			return fmt.Errorf("indexing %s: %w", record.Identifier, err)
		}
		for _, d := range msv.FindSeeds(model, idx, cfg) {
			fmt.Fprintf(writer, "%s\t%s\t%d\t%d\t%d\n", record.Identifier, hash, d.N, d.K, d.Length)
		}
	}
	return nil
}

// parseScoreMatrix reads a tab-separated file, one row per model
// position k (1-based; a leading padding row for k=0 is synthesized
// automatically), one column per symbol of the DNA alphabet in A,C,G,T
// order.
func parseScoreMatrix(f *os.File) ([][]int, error) {
	scores := [][]int{make([]int, 4)}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("expected 4 columns (A C G T), got %d", len(fields))
		}
		row := make([]int, 4)
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("column %d: %w", i, err)
			}
			row[i] = v
		}
		scores = append(scores, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}
