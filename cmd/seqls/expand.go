package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacoelho/pathseq"
)

func expandCmd() *cobra.Command {
	var loose, existing bool
	cmd := &cobra.Command{
		Use:   "expand <sequence>",
		Short: "Print the file paths a sequence stands for",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSequence(args[0], loose)
			if err != nil {
				return err
			}
			if existing {
				seq, err = withExisting(seq)
				if err != nil {
					return err
				}
			} else if seq.Len() == 0 {
				return fmt.Errorf("%s has no file numbers to expand", seq)
			}
			for p := range seq.Paths() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&loose, "loose", false, "parse with the loose grammar")
	cmd.Flags().BoolVar(&existing, "existing", false, "take the file numbers from the files present on disk")
	return cmd
}

func withExisting(seq sequence) (sequence, error) {
	logger.Debug().
		Str("dir", seq.Dir()).
		Str("glob", seq.Glob()).
		Msg("scanning directory")

	fsys := os.DirFS(seq.Dir())
	switch s := seq.(type) {
	case *pathseq.Sequence:
		return s.WithExistingFiles(fsys)
	case *pathseq.Loose:
		return s.WithExistingFiles(fsys)
	}
	return nil, fmt.Errorf("unsupported sequence type %T", seq)
}
