package codopt

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/biogrammatics/codopt/config"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra flags like "in", "out", "scores" that the
// optimize command uses.
type Flags struct {
	// the protein sequence itself, or the name of a file holding it
	in string

	// the name of the file to write the output to, "" for stdout only
	out string

	// path to the JSON score table
	scores string

	// path to the newline-delimited exclusion motif list, optional
	exclude string

	// path for the best-score trajectory plot, optional
	plot string

	// wall-clock budget for the search, 0 for none
	timeout time.Duration
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, out, scores, exclude string) *Flags {
	return &Flags{
		in:      in,
		out:     out,
		scores:  scores,
		exclude: exclude,
	}
}

// parseCmdFlags gathers the in sequence, out path, table paths, etc from
// a cobra cmd. Returns Flags and a Config for codopt.Optimize.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	fs := &Flags{}
	var err error

	if len(args) > 0 {
		fs.in = args[0]
	} else if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		cmd.Help()
		stderr.Fatal("\nno amino acid sequence passed.")
	}

	if fs.out, err = cmd.Flags().GetString("out"); err != nil {
		stderr.Fatal(err)
	}
	if fs.scores, err = cmd.Flags().GetString("scores"); err != nil {
		stderr.Fatal(err)
	}
	if fs.exclude, err = cmd.Flags().GetString("exclude"); err != nil {
		stderr.Fatal(err)
	}
	if fs.plot, err = cmd.Flags().GetString("plot"); err != nil {
		stderr.Fatal(err)
	}
	if fs.timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		stderr.Fatal(err)
	}

	conf, err := config.New()
	if err != nil {
		stderr.Fatal(err)
	}

	return fs, conf
}

// protein resolves the in flag to an amino acid sequence: the flag is
// either the sequence itself or the name of a file holding it (plain
// text or FASTA, single record).
func (p *inputParser) protein(in string) (string, error) {
	if _, err := os.Stat(in); err != nil {
		// not a file, treat as a literal sequence
		return strings.ToUpper(strings.TrimSpace(in)), nil
	}

	contents, err := os.ReadFile(in)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", in, err)
	}

	var seq strings.Builder
	records := 0
	for _, line := range strings.Split(string(contents), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			records++
			if records > 1 {
				return "", fmt.Errorf("%s holds more than one record", in)
			}
			continue
		}
		seq.WriteString(line)
	}

	if seq.Len() == 0 {
		return "", fmt.Errorf("no sequence in %s", in)
	}

	return strings.ToUpper(seq.String()), nil
}

// context wraps the background context with the timeout flag, if any.
func (fs *Flags) context() (context.Context, context.CancelFunc) {
	if fs.timeout > 0 {
		return context.WithTimeout(context.Background(), fs.timeout)
	}
	return context.Background(), func() {}
}
