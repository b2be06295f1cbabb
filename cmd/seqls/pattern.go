package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func globCmd() *cobra.Command {
	var loose bool
	cmd := &cobra.Command{
		Use:   "glob <sequence>",
		Short: "Print a glob pattern matching the sequence's file paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSequence(args[0], loose)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), seq.Glob())
			return nil
		},
	}
	cmd.Flags().BoolVar(&loose, "loose", false, "parse with the loose grammar")
	return cmd
}

func regexCmd() *cobra.Command {
	var loose bool
	cmd := &cobra.Command{
		Use:   "regex <sequence>",
		Short: "Print a regular expression matching the sequence's file names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSequence(args[0], loose)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), seq.Regexp().String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&loose, "loose", false, "parse with the loose grammar")
	return cmd
}
