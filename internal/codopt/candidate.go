package codopt

// sixmerLen is the window size for the uniqueness constraint
const sixmerLen = 6

// candidate is one partial design during beam search. The DNA prefix is
// shared structurally through the parent pointer; each extension carries
// only the codon it added plus the rolling state the constraints need, so
// expanding a candidate never touches its parent or siblings.
type candidate struct {
	// parent is the candidate this one extended, nil for the root
	parent *candidate

	// codon added by this extension, empty for the root
	codon string

	// length of the DNA prefix in nucleotides
	length int

	// score accumulated across every extension so far
	score float64

	// gen is this candidate's insertion order within its step, the
	// deterministic tie-break during pruning
	gen int

	// tail is the last few nucleotides of the prefix, enough context
	// for scoring windows and incremental constraint checks
	tail string

	// runBase and runLen track the trailing single-base run
	runBase byte
	runLen  int

	// added holds the 6-nt windows introduced by this extension
	added []string
}

// dna rebuilds the full sequence by walking the parent chain. Only called
// once per search, on the winning candidate.
func (c *candidate) dna() string {
	buf := make([]byte, c.length)
	for n := c; n != nil && n.codon != ""; n = n.parent {
		copy(buf[n.length-3:], n.codon)
	}
	return string(buf)
}

// seen is whether the 6-nt window already occurs somewhere in this
// candidate's prefix. Walks the ancestry's per-step window deltas.
func (c *candidate) seen(window string) bool {
	for n := c; n != nil; n = n.parent {
		for _, w := range n.added {
			if w == window {
				return true
			}
		}
	}
	return false
}
