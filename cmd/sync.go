package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thomasboom/sgit/internal/workflow"
)

var syncCmd = &cobra.Command{
	Use:   "sync [remote] [branch]",
	Short: "Fetch, pull, and push in one command",
	Long: `Run fetch, pull, and push in sequence. A failed fetch only aborts on
network errors; a failed pull only aborts on merge conflicts or a missing
upstream; any push failure aborts with guidance.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, branch := remoteBranchArgs(args)
		flow := workflow.NewSyncFlow(newGitClient(), rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), appCfg.DefaultRemote)
		return flow.Sync(remote, branch)
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
