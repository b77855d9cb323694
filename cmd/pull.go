package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thomasboom/sgit/internal/workflow"
)

var pullCmd = &cobra.Command{
	Use:   "pull [remote] [branch]",
	Short: "Fetch and merge from your remote",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, branch := remoteBranchArgs(args)
		flow := workflow.NewSyncFlow(newGitClient(), rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), appCfg.DefaultRemote)
		return flow.Pull(remote, branch)
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
}
