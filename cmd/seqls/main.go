// Package main is the entry point for the seqls CLI.
package main

import (
	"fmt"
	"iter"
	"os"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jacoelho/pathseq"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var logger = zerolog.Nop()

func rootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "seqls",
		Short: "Inspect and expand file-sequence paths",
		Long: `seqls works with file-sequence paths such as "render/beauty.1-100####.exr".

A sequence path names a whole set of numbered files at once. seqls expands
sequences to the file paths they stand for, reports their structure, and
converts them to glob or regular expression patterns.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).
				With().Timestamp().Logger()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(expandCmd())
	cmd.AddCommand(infoCmd())
	cmd.AddCommand(globCmd())
	cmd.AddCommand(regexCmd())

	return cmd
}

// sequence is the view shared by the strict and loose sequence types.
type sequence interface {
	Dir() string
	Name() string
	Stem() string
	Suffixes() []string
	String() string
	Len() int
	HasSubsamples() bool
	Glob() string
	Regexp() *regexp.Regexp
	Paths() iter.Seq[string]
	FileNums() ([]*pathseq.FileNums, error)
}

func parseSequence(pattern string, loose bool) (sequence, error) {
	if loose {
		return pathseq.ParseLoose(pattern)
	}
	return pathseq.Parse(pattern)
}
