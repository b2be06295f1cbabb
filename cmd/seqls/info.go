package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	var loose bool
	cmd := &cobra.Command{
		Use:   "info <sequence>",
		Short: "Describe the structure of a sequence path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSequence(args[0], loose)
			if err != nil {
				return err
			}

			ranges := "unknown"
			if nums, err := seq.FileNums(); err == nil {
				parts := make([]string, len(nums))
				for i, c := range nums {
					parts[i] = c.String()
				}
				ranges = strings.Join(parts, " ")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:       %s\n", seq)
			fmt.Fprintf(out, "dir:        %s\n", seq.Dir())
			fmt.Fprintf(out, "stem:       %s\n", seq.Stem())
			fmt.Fprintf(out, "suffixes:   %s\n", strings.Join(seq.Suffixes(), " "))
			fmt.Fprintf(out, "ranges:     %s\n", ranges)
			fmt.Fprintf(out, "files:      %d\n", seq.Len())
			fmt.Fprintf(out, "subsamples: %t\n", seq.HasSubsamples())
			return nil
		},
	}
	cmd.Flags().BoolVar(&loose, "loose", false, "parse with the loose grammar")
	return cmd
}
