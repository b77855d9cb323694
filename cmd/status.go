package cmd

import (
	"github.com/spf13/cobra"
)

var (
	statusShort bool

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show what is staged vs unstaged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newGitClient().Status(statusShort)
		},
	}
)

func init() {
	statusCmd.Flags().BoolVar(&statusShort, "short", false, "Use the compact branch-aware listing")
	rootCmd.AddCommand(statusCmd)
}
