package codopt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/biogrammatics/codopt/config"
)

// OptimizeCmd takes a cobra command (with its flags) and runs Optimize.
func OptimizeCmd(cmd *cobra.Command, args []string) {
	fs, conf := parseCmdFlags(cmd, args)

	result, protein, motifs := Run(fs, conf)

	target := "sequence"
	if _, err := os.Stat(fs.in); err == nil {
		target = strings.TrimSuffix(filepath.Base(fs.in), filepath.Ext(fs.in))
	}

	output, err := writeJSON(fs.out, target, protein, result, motifs, conf)
	if err != nil {
		stderr.Fatal(err)
	}
	if fs.out == "" {
		fmt.Println(string(output))
	}

	if fs.plot != "" {
		if err := plotTrajectory(fs.plot, result.Steps); err != nil {
			stderr.Fatal(err)
		}
	}

	if conf.Verbose {
		fmt.Printf("%s\n\n", result.Elapsed)
	}
}

// Run is for running an end to end codon optimization from parsed flags.
// Returns the result, the resolved protein sequence, and the number of
// exclusion motifs enforced.
func Run(fs *Flags, conf *config.Config) (*Result, string, int) {
	p := inputParser{}

	protein, err := p.protein(fs.in)
	if err != nil {
		stderr.Fatal(err)
	}

	scores := ScoreTable{}
	if fs.scores != "" {
		if scores, err = LoadScoreTable(fs.scores); err != nil {
			stderr.Fatal(err)
		}
	}

	var exclusions *ExclusionSet
	if fs.exclude != "" {
		if exclusions, err = LoadExclusions(fs.exclude); err != nil {
			stderr.Fatal(err)
		}
	}

	engine, err := NewEngine(NewCodonTable(), scores, exclusions, conf)
	if err != nil {
		stderr.Fatal(err)
	}

	ctx, cancel := fs.context()
	defer cancel()

	result, err := engine.Optimize(ctx, protein)
	if err != nil {
		stderr.Fatal(err)
	}

	return result, protein, exclusions.Len()
}

// TranslateCmd translates a DNA sequence back to its protein sequence.
func TranslateCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatal("\nno DNA sequence passed.")
	}

	protein, err := NewCodonTable().Translate(args[0])
	if err != nil {
		stderr.Fatal(err)
	}
	fmt.Println(protein)
}

// SynonymsCmd lists the synonymous codons for the passed residues, or for
// the whole alphabet when none are passed.
func SynonymsCmd(cmd *cobra.Command, args []string) {
	table := NewCodonTable()

	residues := "ACDEFGHIKLMNPQRSTVWY*"
	if len(args) > 0 {
		residues = strings.ToUpper(strings.Join(args, ""))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "residue\tcodons\t\n")
	for i := 0; i < len(residues); i++ {
		codons, err := table.Synonyms(residues[i])
		if err != nil {
			stderr.Fatal(err)
		}
		fmt.Fprintf(w, "%s\t%s\t\n", string(residues[i]), strings.Join(codons, ","))
	}
	w.Flush()
}
