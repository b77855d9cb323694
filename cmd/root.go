// Package cmd declares the sgit command-line surface. Commands stay thin:
// flag schemas live here, orchestration lives in internal/workflow.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thomasboom/sgit/internal/config"
	"github.com/thomasboom/sgit/internal/git"
	"github.com/thomasboom/sgit/internal/prompt"
	"github.com/thomasboom/sgit/internal/ui"
)

// errExplained short-circuits dispatch after --explain output; Execute maps
// it back to a zero exit.
var errExplained = errors.New("explained")

var (
	cfgFile   string
	explain   bool
	verbose   bool
	configErr error
	appCfg    = &config.Config{}

	rootCtx = context.Background()

	rootCmd = &cobra.Command{
		Use:   "sgit",
		Short: "sgit - simplified Git workflows",
		Long: `sgit is a convenience layer over git: shorthand subcommands for staging,
committing, branching, and syncing, with interactive prompts when no flags
are given.`,
		Version:           fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: rootPreRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("'sgit' requires a subcommand; use --help to see the available list")
		},
	}
)

// SetContext installs the signal-aware context used for command execution.
func SetContext(ctx context.Context) {
	rootCtx = ctx
}

func Execute() error {
	err := rootCmd.ExecuteContext(rootCtx)
	if errors.Is(err, errExplained) {
		return nil
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default is $HOME/.sgit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&explain, "explain", false,
		"Explain what each command does and exit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false,
		"Show the underlying git commands as they run")
}

func initConfig() {
	configErr = config.InitConfig(cfgFile)
}

func rootPreRun(cmd *cobra.Command, _ []string) error {
	if configErr != nil {
		return fmt.Errorf("configuration error: %w", configErr)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	appCfg = cfg
	if cfg.Verbose {
		verbose = true
	}
	if cfg.NoColor {
		ui.NoColor()
	}

	if explain {
		printExplanations(cmd.OutOrStdout())
		return errExplained
	}

	if requiresRepository(cmd.Name()) {
		return newGitClient().CheckRepository()
	}
	return nil
}

// requiresRepository reports whether a subcommand needs the pre-flight
// repository check. init creates the repository; version, completion, and
// help never touch one.
func requiresRepository(name string) bool {
	switch name {
	case "sgit", "init", "version", "completion", "help",
		cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	return true
}

func newGitClient() *git.Client {
	return git.NewClient(git.Options{Verbose: verbose})
}

func newPrompter() prompt.Prompter {
	return prompt.Terminal{}
}

func printExplanations(w io.Writer) {
	fmt.Fprintln(w, "sgit simplifies Git for beginners by wrapping each major workflow:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  init    - initialize a Git repository (runs `git init`).")
	fmt.Fprintln(w, "  stage   - add files to the staging area (interactive, or use --all/--tracked).")
	fmt.Fprintln(w, "  unstage - remove staged files safely (interactive, or use --all).")
	fmt.Fprintln(w, "  status  - show what is staged vs unstaged (`--short` uses `git status -sb`).")
	fmt.Fprintln(w, "  log     - view history (`--short` shows compact entries).")
	fmt.Fprintln(w, "  diff    - compare working changes (`--staged` shows what will be committed).")
	fmt.Fprintln(w, "  branch  - list and checkout branches (interactive); use -c <name> to create a new branch.")
	fmt.Fprintln(w, "  reset   - discard changes (interactive, or use --all/--staged/--unstaged/--tracked/--untracked).")
	fmt.Fprintln(w, "  push    - send commits to your remote (uses Git's defaults unless you pass a remote/branch).")
	fmt.Fprintln(w, "  pull    - fetch + merge from your remote repository.")
	fmt.Fprintln(w, "  commit  - make commits; `--all` stages everything, `--unstaged` stages only modified tracked")
	fmt.Fprintln(w, "            files, `--push` runs `git push`, `--amend` rewrites the last commit, and")
	fmt.Fprintln(w, "            `--no-verify` skips hooks.")
	fmt.Fprintln(w, "  sync    - fetch, pull, and push in one command with graceful error handling.")
}
