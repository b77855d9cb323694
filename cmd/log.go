package cmd

import (
	"github.com/spf13/cobra"
)

var (
	logShort bool

	logCmd = &cobra.Command{
		Use:   "log",
		Short: "View commit history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := appCfg.LogLimit
			if logShort {
				limit = appCfg.LogShortLimit
			}
			return newGitClient().Log(logShort, limit)
		},
	}
)

func init() {
	logCmd.Flags().BoolVar(&logShort, "short", false, "Show compact one-line entries")
	rootCmd.AddCommand(logCmd)
}
