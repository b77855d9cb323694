package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thomasboom/sgit/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd.SetContext(ctx)

	if err := cmd.Execute(); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled")
			os.Exit(130)
		}
		printErrorChain(err)
		os.Exit(1)
	}
}

// printErrorChain prints every cause in the chain, one per line.
func printErrorChain(err error) {
	for err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		next := errors.Unwrap(err)
		if next != nil && next.Error() == err.Error() {
			break
		}
		err = next
	}
}
