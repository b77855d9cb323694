package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thomasboom/sgit/internal/workflow"
)

var (
	branchCreate string

	branchCmd = &cobra.Command{
		Use:   "branch",
		Short: "List and checkout branches",
		Long: `List branches for interactive checkout, or create and switch to a new
branch with --create.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := workflow.NewBranchFlow(newGitClient(), newPrompter(), rootCmd.OutOrStdout())
			if cmd.Flags().Changed("create") {
				return flow.Create(branchCreate)
			}
			return flow.RunInteractive()
		},
	}
)

func init() {
	branchCmd.Flags().StringVarP(&branchCreate, "create", "c", "", "Create and switch to a new branch")
	rootCmd.AddCommand(branchCmd)
}
