package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thomasboom/sgit/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a Git repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newGitClient().Init(); err != nil {
			return err
		}
		ui.Successf(rootCmd.OutOrStdout(), "Initialized Git repository")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
