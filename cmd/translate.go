package cmd

import (
	"github.com/spf13/cobra"

	"github.com/biogrammatics/codopt/internal/codopt"
)

// translateCmd represents the translate command
var translateCmd = &cobra.Command{
	Use:   "translate [dna]",
	Short: "Translate a DNA sequence back to its protein sequence",
	Long: `Translate a DNA sequence to amino acids using the standard genetic
code. Useful for spot checking an optimized sequence against its input`,
	Run: codopt.TranslateCmd,
}

func init() {
	RootCmd.AddCommand(translateCmd)
}
