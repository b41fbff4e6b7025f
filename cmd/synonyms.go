package cmd

import (
	"github.com/spf13/cobra"

	"github.com/biogrammatics/codopt/internal/codopt"
)

// synonymsCmd represents the synonyms command
var synonymsCmd = &cobra.Command{
	Use:   "synonyms [residues]",
	Short: "List the synonymous codons for one or more residues",
	Long: `List the codons the optimizer can choose from for each passed
residue ('*' for stop), or for the whole alphabet when none are passed`,
	Run: codopt.SynonymsCmd,
}

func init() {
	RootCmd.AddCommand(synonymsCmd)
}
