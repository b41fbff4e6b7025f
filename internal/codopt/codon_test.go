package codopt

import (
	"errors"
	"reflect"
	"testing"
)

func TestCodonTable_Synonyms(t *testing.T) {
	table := NewCodonTable()

	tests := []struct {
		name    string
		aa      byte
		want    []string
		wantErr error
	}{
		{
			"single codon residue",
			'M',
			[]string{"ATG"},
			nil,
		},
		{
			"two codon residue",
			'K',
			[]string{"AAA", "AAG"},
			nil,
		},
		{
			"six codon residue",
			'L',
			[]string{"CTA", "CTC", "CTG", "CTT", "TTA", "TTG"},
			nil,
		},
		{
			"stop",
			'*',
			[]string{"TAA", "TAG", "TGA"},
			nil,
		},
		{
			"unknown residue",
			'Z',
			nil,
			ErrUnknownResidue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Synonyms(tt.aa)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Synonyms() error = %v, want %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Synonyms() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Synonyms must return the same ordering on every call: the search's
// tie-breaking depends on it
func TestCodonTable_Synonyms_stable(t *testing.T) {
	table := NewCodonTable()

	first, err := table.Synonyms('S')
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		again, _ := table.Synonyms('S')
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Synonyms ordering changed between calls: %v then %v", first, again)
		}
	}
}

func TestCodonTable_Translate(t *testing.T) {
	table := NewCodonTable()

	tests := []struct {
		name    string
		dna     string
		want    string
		wantErr error
	}{
		{
			"single codon",
			"ATG",
			"M",
			nil,
		},
		{
			"several codons",
			"ATGAAAACC",
			"MKT",
			nil,
		},
		{
			"lowercase input",
			"atgaaaacc",
			"MKT",
			nil,
		},
		{
			"stop codon",
			"ATGTAA",
			"M*",
			nil,
		},
		{
			"length not a multiple of three",
			"ATGA",
			"",
			ErrInvalidLength,
		},
		{
			"unknown codon",
			"ATGNNN",
			"",
			ErrUnknownCodon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Translate(tt.dna)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Translate() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Translate() = %q, want %q", got, tt.want)
			}
		})
	}
}

// every codon a residue maps to must translate back to that residue
func TestCodonTable_roundTrip(t *testing.T) {
	table := NewCodonTable()

	for _, aa := range "ACDEFGHIKLMNPQRSTVWY*" {
		codons, err := table.Synonyms(byte(aa))
		if err != nil {
			t.Fatal(err)
		}
		for _, codon := range codons {
			back, err := table.Translate(codon)
			if err != nil {
				t.Fatal(err)
			}
			if back != string(aa) {
				t.Errorf("Translate(%s) = %q, want %q", codon, back, string(aa))
			}
		}
	}
}
