package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thomasboom/sgit/internal/workflow"
)

var (
	commitMessage  string
	commitAll      bool
	commitStaged   bool
	commitUnstaged bool
	commitPush     bool
	commitAmend    bool
	commitNoVerify bool

	commitCmd = &cobra.Command{
		Use:   "commit",
		Short: "Record staged changes",
		Long: `Record changes as a commit. With no message or scope flags an interactive
menu resolves what to commit, asks for a message, and offers a push.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := workflow.NewCommitFlow(newGitClient(), newPrompter(), rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())
			return flow.Run(workflow.CommitOptions{
				Message:  commitMessage,
				All:      commitAll,
				Staged:   commitStaged,
				Unstaged: commitUnstaged,
				Push:     commitPush,
				Amend:    commitAmend,
				NoVerify: commitNoVerify,
			})
		},
	}
)

func init() {
	commitCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "Commit message")
	commitCmd.Flags().BoolVar(&commitAll, "all", false, "Stage everything before committing")
	commitCmd.Flags().BoolVar(&commitStaged, "staged", false, "Commit only what is already staged")
	commitCmd.Flags().BoolVar(&commitUnstaged, "unstaged", false, "Stage modified tracked files before committing")
	commitCmd.Flags().BoolVar(&commitPush, "push", false, "Push after committing")
	commitCmd.Flags().BoolVar(&commitAmend, "amend", false, "Rewrite the last commit")
	commitCmd.Flags().BoolVar(&commitNoVerify, "no-verify", false, "Skip hooks and the amend confirmation")
	rootCmd.AddCommand(commitCmd)
}
