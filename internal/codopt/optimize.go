package codopt

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/biogrammatics/codopt/config"
)

var (
	// ErrEmptySequence is returned when optimize is called without an
	// amino acid sequence
	ErrEmptySequence = errors.New("empty amino acid sequence")

	// ErrNoValidSequence is returned when the constraints eliminate
	// every candidate at some step. The failure is deterministic for
	// the same inputs and settings; retrying only helps with a wider
	// beam, relaxed constraints, or a smaller exclusion list
	ErrNoValidSequence = errors.New("no valid sequence")
)

// Engine runs codon optimizations against one set of tables. The tables
// are read-only, so a single Engine can serve concurrent Optimize calls,
// and engines with different tables can coexist.
type Engine struct {
	codons *CodonTable
	scores ScoreTable
	check  *checker

	beamWidth int
	workers   int
	verbose   bool
}

// NewEngine builds an Engine from the codon table, the precomputed score
// table, the exclusion list (nil for none), and app settings.
func NewEngine(codons *CodonTable, scores ScoreTable, exclusions *ExclusionSet, conf *config.Config) (*Engine, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		codons:    codons,
		scores:    scores,
		check:     newChecker(exclusions, conf),
		beamWidth: conf.Search.BeamWidth,
		workers:   conf.Search.Workers,
		verbose:   conf.Verbose,
	}, nil
}

// StepStats summarizes the surviving beam after one search step.
type StepStats struct {
	// Position of the residue within the protein, 0-based
	Position int `json:"position"`

	// Residue placed at this step
	Residue string `json:"residue"`

	// Expanded is the number of extensions tried: beam size x synonyms
	Expanded int `json:"expanded"`

	// Kept is the beam size after constraint checks and pruning
	Kept int `json:"kept"`

	// Best, Mean, StdDev describe the surviving cumulative scores
	Best   float64 `json:"best"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
}

// Result is a successful optimization.
type Result struct {
	// DNA is the optimized coding sequence, 3x the protein's length
	DNA string

	// Score is the winning candidate's cumulative context score
	Score float64

	// Elapsed is the wall-clock duration of the search
	Elapsed time.Duration

	// Steps is the per-step beam summary, in order
	Steps []StepStats
}

// Optimize builds the highest scoring DNA sequence encoding protein that
// satisfies every enabled constraint. The search is deterministic: the
// same inputs and settings always produce the same sequence and score,
// regardless of the worker count.
//
// The step loop checks ctx between steps, so a caller wanting bounded
// latency can pass a deadline and treat expiry like any other failed
// search.
func (e *Engine) Optimize(ctx context.Context, protein string) (*Result, error) {
	start := time.Now()

	protein = strings.ToUpper(strings.TrimSpace(protein))
	if protein == "" {
		return nil, ErrEmptySequence
	}
	for i := 0; i < len(protein); i++ {
		if _, err := e.codons.Synonyms(protein[i]); err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
	}

	beam := []*candidate{{}}
	steps := make([]StepStats, 0, len(protein))

	for i := 0; i < len(protein); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		syns, _ := e.codons.Synonyms(protein[i])
		key := contextKey(protein, i)

		// expand every candidate by every synonym. Each extension lands
		// in a slot fixed by its generation order, so evaluation order
		// never affects the outcome
		out := make([]*candidate, len(beam)*len(syns))
		expand := func(pi int) {
			parent := beam[pi]
			pre := parent.tail
			if len(pre) > 6 {
				pre = pre[len(pre)-6:]
			}
			for ci, codon := range syns {
				gen := pi*len(syns) + ci
				score := parent.score + e.scores.Score(key, pre+codon)
				if child, ok := e.check.extend(parent, codon, score, gen); ok {
					out[gen] = child
				}
			}
		}

		if e.workers > 1 && len(beam) > 1 {
			g := new(errgroup.Group)
			g.SetLimit(e.workers)
			for pi := range beam {
				pi := pi
				g.Go(func() error {
					expand(pi)
					return nil
				})
			}
			g.Wait() // the workers never error
		} else {
			for pi := range beam {
				expand(pi)
			}
		}

		expanded := len(out)
		survivors := out[:0]
		for _, c := range out {
			if c != nil {
				survivors = append(survivors, c)
			}
		}

		if len(survivors) == 0 {
			return nil, fmt.Errorf(
				"%w: every codon for %q at position %d violates a constraint",
				ErrNoValidSequence, string(protein[i]), i,
			)
		}

		// keep the top beamWidth by score, generation order breaking ties
		sort.Slice(survivors, func(a, b int) bool {
			if survivors[a].score != survivors[b].score {
				return survivors[a].score > survivors[b].score
			}
			return survivors[a].gen < survivors[b].gen
		})
		if len(survivors) > e.beamWidth {
			survivors = survivors[:e.beamWidth]
		}
		beam = survivors

		stats := newStepStats(i, protein[i], expanded, beam)
		steps = append(steps, stats)
		if e.verbose {
			stderr.Printf(
				"step %d (%s): kept %d of %d, best %.4f",
				i, stats.Residue, stats.Kept, stats.Expanded, stats.Best,
			)
		}
	}

	best := beam[0]
	dna := best.dna()

	// the round-trip invariant: a violation indicates a codon table or
	// constraint bug, not a property of the input
	back, err := e.codons.Translate(dna)
	if err != nil {
		return nil, fmt.Errorf("round-trip check failed: %w", err)
	}
	if back != protein {
		return nil, fmt.Errorf("round-trip check failed: %q translates to %q", dna, back)
	}

	return &Result{
		DNA:     dna,
		Score:   best.score,
		Elapsed: time.Since(start),
		Steps:   steps,
	}, nil
}

func newStepStats(position int, residue byte, expanded int, beam []*candidate) StepStats {
	scores := make([]float64, len(beam))
	for i, c := range beam {
		scores[i] = c.score
	}

	stddev := 0.0
	if len(scores) > 1 {
		stddev = stat.StdDev(scores, nil)
	}

	return StepStats{
		Position: position,
		Residue:  string(residue),
		Expanded: expanded,
		Kept:     len(beam),
		Best:     beam[0].score, // beam is sorted best-first
		Mean:     stat.Mean(scores, nil),
		StdDev:   stddev,
	}
}
