package codopt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// motifRegex turns a motif with IUPAC ambiguity codes into a regex for
// searching a candidate sequence, eg "GGTNACC" -> "GGT(A|C|G|T)ACC"
var motifRegex = map[rune]string{
	'A': "A",
	'C': "C",
	'G': "G",
	'T': "T",
	'M': "(A|C)",
	'R': "(A|G)",
	'W': "(A|T)",
	'Y': "(C|T)",
	'S': "(C|G)",
	'K': "(G|T)",
	'H': "(A|C|T)",
	'D': "(A|G|T)",
	'V': "(A|C|G)",
	'B': "(C|G|T)",
	'N': "(A|C|G|T)",
	'X': "(A|C|G|T)",
}

// motif is one forbidden subsequence, eg a restriction enzyme's
// recognition site
type motif struct {
	raw string
	re  *regexp.Regexp
}

// ExclusionSet is the ordered collection of motifs that must not appear
// anywhere in an optimized sequence. Parsed once before any search runs,
// read-only afterwards.
type ExclusionSet struct {
	motifs []motif
	maxLen int
}

// ReadExclusions parses newline-delimited motifs. Blank lines and lines
// starting with '#' are skipped. Motifs may use IUPAC ambiguity codes.
func ReadExclusions(r io.Reader) (*ExclusionSet, error) {
	set := &ExclusionSet{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := set.add(strings.ToUpper(line)); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read exclusion list: %w", err)
	}

	return set, nil
}

// LoadExclusions reads an exclusion list from a plain-text file.
func LoadExclusions(path string) (*ExclusionSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open exclusion list: %w", err)
	}
	defer f.Close()

	return ReadExclusions(f)
}

// NewExclusionSet builds a set from motifs already in memory. For testing
// and for callers that keep their exclusion list elsewhere.
func NewExclusionSet(motifs ...string) (*ExclusionSet, error) {
	set := &ExclusionSet{}
	for _, m := range motifs {
		if err := set.add(strings.ToUpper(strings.TrimSpace(m))); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func (x *ExclusionSet) add(raw string) error {
	var pattern strings.Builder
	for _, c := range raw {
		decoded, ok := motifRegex[c]
		if !ok {
			return fmt.Errorf("invalid character %q in motif %q", string(c), raw)
		}
		pattern.WriteString(decoded)
	}

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return fmt.Errorf("failed to compile motif %q: %w", raw, err)
	}

	x.motifs = append(x.motifs, motif{raw: raw, re: re})
	if len(raw) > x.maxLen {
		x.maxLen = len(raw)
	}
	return nil
}

// Empty is whether the set holds no motifs.
func (x *ExclusionSet) Empty() bool {
	return x == nil || len(x.motifs) == 0
}

// MaxLen is the length of the longest motif, the amount of trailing
// context a candidate needs to carry for incremental matching.
func (x *ExclusionSet) MaxLen() int {
	if x == nil {
		return 0
	}
	return x.maxLen
}

// Len is the number of motifs in the set.
func (x *ExclusionSet) Len() int {
	if x == nil {
		return 0
	}
	return len(x.motifs)
}

// Motifs returns the raw motifs in their original order.
func (x *ExclusionSet) Motifs() []string {
	if x == nil {
		return nil
	}
	raws := make([]string, len(x.motifs))
	for i, m := range x.motifs {
		raws[i] = m.raw
	}
	return raws
}

// Matches is whether any motif occurs in seq. Search callers pass only
// the suffix touching a new codon; occurrences further left were already
// checked when their last base was added.
func (x *ExclusionSet) Matches(seq string) bool {
	if x == nil {
		return false
	}
	for _, m := range x.motifs {
		if m.re.MatchString(seq) {
			return true
		}
	}
	return false
}
