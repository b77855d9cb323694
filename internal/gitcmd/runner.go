// Package gitcmd executes git as a subprocess with shared logging and
// output-capture handling.
package gitcmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Executable is the fixed name of the wrapped tool, resolved on PATH.
const Executable = "git"

// Runner executes git commands. The zero value is usable; Dir and Verbose
// adjust behavior per command.
type Runner struct {
	Verbose bool
	Dir     string
	Env     []string
	Logger  io.Writer
}

// Result contains captured stdout/stderr for a git command.
type Result struct {
	Stdout []byte
	Stderr []byte
}

func (r Result) StdoutString(trim bool) string {
	output := string(r.Stdout)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Result) StderrString(trim bool) string {
	output := string(r.Stderr)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Runner) withDefaults() Runner {
	if r.Logger == nil {
		r.Logger = os.Stderr
	}
	return r
}

func (r Runner) command(args ...string) *exec.Cmd {
	cmd := exec.Command(Executable, args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	return cmd
}

func (r Runner) log(args []string) {
	if !r.Verbose {
		return
	}
	r = r.withDefaults()
	fmt.Fprintf(r.Logger, "Running: git %s\n", strings.Join(args, " "))
}

// Run executes a git command and captures both stdout and stderr.
func (r Runner) Run(args ...string) (Result, error) {
	r.log(args)
	cmd := r.command(args...)
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := wrapSpawn(cmd.Run(), args)
	return Result{Stdout: outBuf.Bytes(), Stderr: errBuf.Bytes()}, err
}

// RunQuiet executes a git command with stdout discarded and stderr captured.
// Callers print their own progress messages instead of git's output.
func (r Runner) RunQuiet(args ...string) (Result, error) {
	r.log(args)
	cmd := r.command(args...)
	var errBuf bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &errBuf

	err := wrapSpawn(cmd.Run(), args)
	return Result{Stderr: errBuf.Bytes()}, err
}

// RunStreaming executes a git command with stdout inherited by the terminal.
// Stderr is streamed too but additionally captured, so a failed command can
// still be classified for hinting.
func (r Runner) RunStreaming(args ...string) (Result, error) {
	r.log(args)
	cmd := r.command(args...)
	var errBuf bytes.Buffer
	cmd.Stdout = os.Stdout
	cmd.Stdin = os.Stdin
	cmd.Stderr = io.MultiWriter(os.Stderr, &errBuf)

	err := wrapSpawn(cmd.Run(), args)
	return Result{Stderr: errBuf.Bytes()}, err
}

// IsSpawnError reports whether err means the git executable itself could not
// be launched, as opposed to git running and exiting non-zero.
func IsSpawnError(err error) bool {
	var exitErr *exec.ExitError
	return err != nil && !errors.As(err, &exitErr)
}

func wrapSpawn(err error, args []string) error {
	if err == nil {
		return nil
	}
	if IsSpawnError(err) {
		return fmt.Errorf("failed to execute git %s - is git installed?: %w",
			strings.Join(args, " "), err)
	}
	return err
}
