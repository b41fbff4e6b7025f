package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biogrammatics/codopt/internal/codopt"
)

// optimizeCmd represents the optimize command
var optimizeCmd = &cobra.Command{
	Use:   "optimize [sequence]",
	Short: "Optimize the codons encoding a protein sequence",
	Long: `Build a DNA sequence encoding the passed protein one amino acid at a
time, keeping the top scoring partial sequences at each step (beam search).

Each candidate codon is scored by the 9-nt window it completes, looked up
in a precomputed score table keyed by the residue triplet in that window.
Candidates are dropped if they contain an excluded motif, extend a
single-base run past the configured maximum, or repeat a 6-nt window.

The protein may be passed as an argument or as a file (plain text or
single-record FASTA) via --in`,
	Run: codopt.OptimizeCmd,
}

// set flags
func init() {
	RootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().StringP("in", "i", "", "Input protein sequence or file name")
	optimizeCmd.Flags().StringP("out", "o", "", "Output file name for the result JSON")
	optimizeCmd.Flags().StringP("scores", "s", "", "Path to the JSON context score table")
	optimizeCmd.Flags().StringP("exclude", "e", "", "Path to a newline-delimited list of forbidden motifs")
	optimizeCmd.Flags().StringP("plot", "p", "", "Write a best-score trajectory plot to this image file")
	optimizeCmd.Flags().DurationP("timeout", "t", 0, "Abort the search after this long, ex: 30s")

	optimizeCmd.Flags().IntP("beam-width", "b", 100, "Number of top-scoring candidates kept per step")
	optimizeCmd.Flags().Int("workers", 0, "Goroutines used to expand candidates (0 = all CPUs)")
	optimizeCmd.Flags().Bool("unique-sixmers", true, "Reject candidates that repeat a 6-nt window")
	optimizeCmd.Flags().Bool("homopolymer", true, "Bound single-base run lengths")
	optimizeCmd.Flags().Int("homopolymer-max", 3, "Longest allowed run of one nucleotide")

	viper.BindPFlag("search.beam-width", optimizeCmd.Flags().Lookup("beam-width"))
	viper.BindPFlag("search.workers", optimizeCmd.Flags().Lookup("workers"))
	viper.BindPFlag("constraints.unique-sixmers", optimizeCmd.Flags().Lookup("unique-sixmers"))
	viper.BindPFlag("constraints.homopolymer", optimizeCmd.Flags().Lookup("homopolymer"))
	viper.BindPFlag("constraints.homopolymer-max", optimizeCmd.Flags().Lookup("homopolymer-max"))
}
