package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thomasboom/sgit/internal/workflow"
)

var (
	resetAll       bool
	resetStaged    bool
	resetUnstaged  bool
	resetTracked   bool
	resetUntracked bool

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Discard changes",
		Long: `Discard changes in the staging area or working tree. With no flags an
interactive menu asks what to reset, including a per-file custom selection.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := workflow.NewResetFlow(newGitClient(), newPrompter(), rootCmd.OutOrStdout())
			return flow.Run(workflow.ResetOptions{
				All:       resetAll,
				Staged:    resetStaged,
				Unstaged:  resetUnstaged,
				Tracked:   resetTracked,
				Untracked: resetUntracked,
			})
		},
	}
)

func init() {
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "Hard-reset tracked files and remove untracked ones")
	resetCmd.Flags().BoolVar(&resetStaged, "staged", false, "Unstage everything")
	resetCmd.Flags().BoolVar(&resetUnstaged, "unstaged", false, "Discard unstaged working-tree edits")
	resetCmd.Flags().BoolVar(&resetTracked, "tracked", false, "Hard-reset tracked files")
	resetCmd.Flags().BoolVar(&resetUntracked, "untracked", false, "Remove untracked files")
	rootCmd.AddCommand(resetCmd)
}
