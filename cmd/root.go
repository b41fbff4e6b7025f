// Package cmd is for command line interactions with the codopt application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biogrammatics/codopt/config"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "codopt",
	Short: `Convert a protein sequence into a synthesizable DNA sequence.
Synonymous codons are chosen to maximize a learned local-context score
while avoiding forbidden motifs, homopolymer runs, and repeated 6-mers`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	config.SetDefaults()

	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log search progress to stderr")
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))

	// an optional settings.yaml next to the binary or in the working
	// directory overrides the defaults; flags override both
	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // missing settings.yaml is fine
}
