// SPDX-License-Identifier: MIT
// Package: chromatic/cmd/chromatic
//
// main.go — command-line entry point.

// Command chromatic computes chromatic invariants of matroids.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/chromatic/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// ExitErrors from commands have already been reported on stdout.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) || exitErr.Err == nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
