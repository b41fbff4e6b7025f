package codopt

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ScoreTable maps an amino acid context key to the nucleotide windows that
// can realize it and each window's desirability. In steady state the key is
// the 3 consecutive residues whose codons form a 9-nt window; at the start
// of a sequence the key is the 1 or 2 residues that exist, with a 3- or
// 6-nt window.
//
// The table is precomputed elsewhere, loaded once by the caller, and
// borrowed read-only for the duration of every search.
type ScoreTable map[string]map[string]float64

// ReadScoreTable parses a serialized score table.
func ReadScoreTable(r io.Reader) (ScoreTable, error) {
	var table ScoreTable
	if err := json.NewDecoder(r).Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to parse score table: %w", err)
	}
	return table, nil
}

// LoadScoreTable reads a score table from a JSON file.
func LoadScoreTable(path string) (ScoreTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open score table: %w", err)
	}
	defer f.Close()

	return ReadScoreTable(f)
}

// Score looks up the desirability of one realized window under one context
// key. A missing key or window scores 0: sparse tables are expected at
// sequence boundaries and for rare residue triplets, and absence of data
// must not block otherwise-valid search paths
func (s ScoreTable) Score(context, window string) float64 {
	windows, ok := s[context]
	if !ok {
		return 0
	}
	return windows[window] // zero value when absent
}

// contextKey is the residue context for placing codon i of protein: the
// new residue plus up to two preceding ones
func contextKey(protein string, i int) string {
	start := i - 2
	if start < 0 {
		start = 0
	}
	return protein[start : i+1]
}
