// Package codopt converts a protein sequence into a synthesizable DNA
// sequence. Synonymous codons are chosen with a beam search that maximizes
// a local-context score while avoiding forbidden motifs, long mononucleotide
// runs, and repeated 6-nt windows.
package codopt

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownResidue is returned for an amino acid letter outside the
	// 20 standard residues + stop ('*')
	ErrUnknownResidue = errors.New("unknown amino acid")

	// ErrInvalidLength is returned when a DNA sequence's length isn't a
	// multiple of three
	ErrInvalidLength = errors.New("DNA length is not a multiple of 3")

	// ErrUnknownCodon is returned when a triplet isn't in the codon table
	ErrUnknownCodon = errors.New("unknown codon")
)

// geneticCode is the standard genetic code, codon -> residue ('*' = stop)
var geneticCode = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// CodonTable maps each residue to its synonymous codons and each codon
// back to its residue. It's built once and read-only afterwards, so a
// single table can back many concurrent searches.
type CodonTable struct {
	synonyms map[byte][]string
	residues map[string]byte
}

// NewCodonTable builds a CodonTable for the standard genetic code. Each
// residue's codons are sorted lexicographically so Synonyms returns the
// same ordering on every call
func NewCodonTable() *CodonTable {
	synonyms := make(map[byte][]string)
	residues := make(map[string]byte, len(geneticCode))

	for codon, aa := range geneticCode {
		synonyms[aa] = append(synonyms[aa], codon)
		residues[codon] = aa
	}

	for aa := range synonyms {
		sort.Strings(synonyms[aa])
	}

	return &CodonTable{
		synonyms: synonyms,
		residues: residues,
	}
}

// Synonyms returns the codons encoding the passed residue, in a stable
// lexicographic order.
func (t *CodonTable) Synonyms(aa byte) ([]string, error) {
	codons, ok := t.synonyms[aa]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResidue, string(aa))
	}
	return codons, nil
}

// Translate converts a DNA sequence back to its protein sequence. It's
// the ground truth for the round-trip check after every optimization
func (t *CodonTable) Translate(dna string) (string, error) {
	dna = strings.ToUpper(dna)

	if len(dna)%3 != 0 {
		return "", fmt.Errorf("%w: %d bp", ErrInvalidLength, len(dna))
	}

	var protein strings.Builder
	protein.Grow(len(dna) / 3)
	for i := 0; i+3 <= len(dna); i += 3 {
		codon := dna[i : i+3]
		aa, ok := t.residues[codon]
		if !ok {
			return "", fmt.Errorf("%w: %q at %d", ErrUnknownCodon, codon, i)
		}
		protein.WriteByte(aa)
	}

	return protein.String(), nil
}
