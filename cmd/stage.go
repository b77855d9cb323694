package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thomasboom/sgit/internal/workflow"
)

var (
	stageAll     bool
	stageTracked bool

	stageCmd = &cobra.Command{
		Use:   "stage [paths...]",
		Short: "Add files to the staging area",
		Long: `Add files to the staging area. With no arguments an interactive menu asks
whether to stage everything, tracked files only, or a chosen subset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := workflow.NewStageFlow(newGitClient(), newPrompter(), rootCmd.OutOrStdout())
			return flow.Run(workflow.StageOptions{
				Targets: args,
				All:     stageAll,
				Tracked: stageTracked,
			})
		},
	}
)

func init() {
	stageCmd.Flags().BoolVar(&stageAll, "all", false, "Stage all files, including untracked ones")
	stageCmd.Flags().BoolVar(&stageTracked, "tracked", false, "Stage modified tracked files only")
	rootCmd.AddCommand(stageCmd)
}
