package codopt

import (
	"testing"
)

// chain builds a candidate by appending codons to the root, carrying only
// the state dna() and seen() depend on
func chain(codons ...string) *candidate {
	c := &candidate{}
	for _, codon := range codons {
		tail := c.tail + codon
		if len(tail) > 9 {
			tail = tail[len(tail)-9:]
		}
		c = &candidate{
			parent: c,
			codon:  codon,
			length: c.length + 3,
			tail:   tail,
		}
	}
	return c
}

func Test_candidate_dna(t *testing.T) {
	tests := []struct {
		name   string
		codons []string
		want   string
	}{
		{
			"root",
			nil,
			"",
		},
		{
			"single codon",
			[]string{"ATG"},
			"ATG",
		},
		{
			"several codons",
			[]string{"ATG", "AAA", "ACC"},
			"ATGAAAACC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chain(tt.codons...).dna(); got != tt.want {
				t.Errorf("dna() = %q, want %q", got, tt.want)
			}
		})
	}
}

// extending one candidate twice must leave the parent and the sibling
// untouched: the prefix is shared, the deltas are not
func Test_candidate_structuralSharing(t *testing.T) {
	parent := chain("ATG", "AAA")

	left := &candidate{parent: parent, codon: "ACC", length: parent.length + 3}
	right := &candidate{parent: parent, codon: "ACG", length: parent.length + 3}

	if got := parent.dna(); got != "ATGAAA" {
		t.Errorf("parent corrupted: %q", got)
	}
	if got := left.dna(); got != "ATGAAAACC" {
		t.Errorf("left = %q, want ATGAAAACC", got)
	}
	if got := right.dna(); got != "ATGAAAACG" {
		t.Errorf("right = %q, want ATGAAAACG", got)
	}
}

func Test_candidate_seen(t *testing.T) {
	grandparent := &candidate{added: []string{"ATGAAA"}}
	parent := &candidate{parent: grandparent, added: []string{"TGAAAA", "GAAAAC"}}
	c := &candidate{parent: parent, added: []string{"AAAACC"}}

	for _, window := range []string{"ATGAAA", "TGAAAA", "GAAAAC", "AAAACC"} {
		if !c.seen(window) {
			t.Errorf("seen(%s) = false, want true", window)
		}
	}
	if c.seen("CCCCCC") {
		t.Error("seen(CCCCCC) = true, want false")
	}

	// the parent must not see windows added below it
	if parent.seen("AAAACC") {
		t.Error("parent sees a child's window")
	}
}
