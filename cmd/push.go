package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thomasboom/sgit/internal/workflow"
)

var pushCmd = &cobra.Command{
	Use:   "push [remote] [branch]",
	Short: "Send commits to your remote",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, branch := remoteBranchArgs(args)
		flow := workflow.NewSyncFlow(newGitClient(), rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), appCfg.DefaultRemote)
		return flow.Push(remote, branch)
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
}

func remoteBranchArgs(args []string) (remote, branch string) {
	if len(args) > 0 {
		remote = args[0]
	}
	if len(args) > 1 {
		branch = args[1]
	}
	return remote, branch
}
