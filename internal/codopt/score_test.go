package codopt

import (
	"strings"
	"testing"
)

func TestReadScoreTable(t *testing.T) {
	raw := `{
		"MKT": {"ATGAAAACC": 1.5, "ATGAAGACC": 0.25},
		"M":   {"ATG": 0.5}
	}`

	table, err := ReadScoreTable(strings.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}

	if got := table.Score("MKT", "ATGAAAACC"); got != 1.5 {
		t.Errorf("Score(MKT, ATGAAAACC) = %f, want 1.5", got)
	}
	if got := table.Score("M", "ATG"); got != 0.5 {
		t.Errorf("Score(M, ATG) = %f, want 0.5", got)
	}
}

func TestReadScoreTable_invalid(t *testing.T) {
	if _, err := ReadScoreTable(strings.NewReader("not json")); err == nil {
		t.Fatal("expected an error for malformed input")
	}
}

// missing contexts and windows score 0 rather than failing: sparse tables
// must not block otherwise-valid search paths
func TestScoreTable_Score_failSoft(t *testing.T) {
	table := ScoreTable{
		"MKT": {"ATGAAAACC": 2},
	}

	tests := []struct {
		name    string
		context string
		window  string
		want    float64
	}{
		{
			"present",
			"MKT",
			"ATGAAAACC",
			2,
		},
		{
			"missing window",
			"MKT",
			"ATGAAGACC",
			0,
		},
		{
			"missing context",
			"KTW",
			"AAAACCTGG",
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Score(tt.context, tt.window); got != tt.want {
				t.Errorf("Score() = %f, want %f", got, tt.want)
			}
		})
	}
}

// the first two positions use shorter context keys since fewer than two
// codons precede them
func Test_contextKey(t *testing.T) {
	tests := []struct {
		name    string
		protein string
		i       int
		want    string
	}{
		{
			"first residue",
			"MKTW",
			0,
			"M",
		},
		{
			"second residue",
			"MKTW",
			1,
			"MK",
		},
		{
			"third residue",
			"MKTW",
			2,
			"MKT",
		},
		{
			"steady state",
			"MKTW",
			3,
			"KTW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contextKey(tt.protein, tt.i); got != tt.want {
				t.Errorf("contextKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
