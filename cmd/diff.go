package cmd

import (
	"github.com/spf13/cobra"
)

var (
	diffStaged bool

	diffCmd = &cobra.Command{
		Use:   "diff [path]",
		Short: "Compare working changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return newGitClient().Diff(path, diffStaged)
		},
	}
)

func init() {
	diffCmd.Flags().BoolVar(&diffStaged, "staged", false, "Show what will be committed")
	rootCmd.AddCommand(diffCmd)
}
