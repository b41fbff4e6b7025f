package codopt

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/biogrammatics/codopt/config"
)

// Output is the JSON document written for a finished optimization.
type Output struct {
	// Target is the name of the input, its file name or "sequence"
	Target string `json:"target"`

	// Protein is the input amino acid sequence
	Protein string `json:"protein"`

	// DNA is the optimized coding sequence
	DNA string `json:"dna"`

	// Score is the winning candidate's cumulative context score
	Score float64 `json:"score"`

	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the search
	Execution float64 `json:"execution"`

	// BeamWidth the search ran with
	BeamWidth int `json:"beamWidth"`

	// Motifs is the number of exclusion motifs enforced
	Motifs int `json:"motifs"`

	// Steps is the per-step beam summary
	Steps []StepStats `json:"steps,omitempty"`
}

// writeJSON turns a Result into an Output document and writes it to the
// filename requested.
func writeJSON(
	filename, target, protein string,
	result *Result,
	motifCount int,
	conf *config.Config,
) (output []byte, err error) {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	timestamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	out := Output{
		Target:    target,
		Protein:   protein,
		DNA:       result.DNA,
		Score:     result.Score,
		Time:      timestamp,
		Execution: result.Elapsed.Seconds(),
		BeamWidth: conf.Search.BeamWidth,
		Motifs:    motifCount,
		Steps:     result.Steps,
	}

	output, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize output: %w", err)
	}

	if filename != "" {
		if err = os.WriteFile(filename, output, 0644); err != nil {
			return output, fmt.Errorf("failed to write %s: %w", filename, err)
		}
	}

	return output, nil
}
