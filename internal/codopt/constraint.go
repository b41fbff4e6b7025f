package codopt

import (
	"github.com/biogrammatics/codopt/config"
)

// checker evaluates every candidate extension against the three
// sequence-design rule families: motif exclusion, homopolymer run bounds,
// and 6-nt window uniqueness. Each family is independently toggleable and
// a disabled family always passes. Rejections are normal pruning, never
// errors.
//
// All checks are incremental: only the suffix touching the new codon is
// examined, since everything to its left was checked when it was added.
type checker struct {
	exclusions *ExclusionSet

	// maxRun is the longest allowed single-base run, 0 disables the rule
	maxRun int

	uniqueSixmers bool

	// tailKeep is how many trailing nucleotides a candidate carries:
	// enough for the longest motif to span into the new codon, and never
	// less than two codons of scoring context
	tailKeep int
}

func newChecker(exclusions *ExclusionSet, conf *config.Config) *checker {
	maxRun := 0
	if conf.Constraints.Homopolymer {
		maxRun = conf.Constraints.HomopolymerMax
	}

	tailKeep := 9
	if keep := exclusions.MaxLen() + 2; keep > tailKeep {
		tailKeep = keep
	}

	return &checker{
		exclusions:    exclusions,
		maxRun:        maxRun,
		uniqueSixmers: conf.Constraints.UniqueSixmers,
		tailKeep:      tailKeep,
	}
}

// extend builds the candidate that appends codon to parent with the passed
// cumulative score, or returns false when a constraint rejects it.
func (k *checker) extend(parent *candidate, codon string, score float64, gen int) (*candidate, bool) {
	// trailing run across the previous codon's tail and the new head
	runBase, runLen := parent.runBase, parent.runLen
	for i := 0; i < len(codon); i++ {
		if codon[i] == runBase {
			runLen++
		} else {
			runBase, runLen = codon[i], 1
		}
		if k.maxRun > 0 && runLen > k.maxRun {
			return nil, false
		}
	}

	var added []string
	if k.uniqueSixmers {
		// every 6-nt window ending in the new codon: the last 5 nt of
		// the parent plus the codon covers them all
		win := parent.tail
		if len(win) > sixmerLen-1 {
			win = win[len(win)-(sixmerLen-1):]
		}
		win += codon

		for i := 0; i+sixmerLen <= len(win); i++ {
			w := win[i : i+sixmerLen]
			if parent.seen(w) {
				return nil, false
			}
			for _, prev := range added {
				if prev == w {
					return nil, false
				}
			}
			added = append(added, w)
		}
	}

	tail := parent.tail + codon
	if len(tail) > k.tailKeep {
		tail = tail[len(tail)-k.tailKeep:]
	}

	if !k.exclusions.Empty() && k.exclusions.Matches(tail) {
		return nil, false
	}

	return &candidate{
		parent:  parent,
		codon:   codon,
		length:  parent.length + 3,
		score:   score,
		gen:     gen,
		tail:    tail,
		runBase: runBase,
		runLen:  runLen,
		added:   added,
	}, true
}
