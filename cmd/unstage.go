package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thomasboom/sgit/internal/workflow"
)

var (
	unstageAll bool

	unstageCmd = &cobra.Command{
		Use:   "unstage [paths...]",
		Short: "Remove files from the staging area",
		Long: `Remove files from the staging area without touching their working-tree
contents. With no arguments an interactive menu asks what to unstage.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := workflow.NewUnstageFlow(newGitClient(), newPrompter(), rootCmd.OutOrStdout())
			return flow.Run(workflow.UnstageOptions{
				Targets: args,
				All:     unstageAll,
			})
		},
	}
)

func init() {
	unstageCmd.Flags().BoolVar(&unstageAll, "all", false, "Unstage every staged file")
	rootCmd.AddCommand(unstageCmd)
}
