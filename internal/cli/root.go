// SPDX-License-Identifier: MIT
// Package: chromatic/internal/cli
//
// root.go — root command, global flags and logging.

// Package cli implements the chromatic command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Logger returns the logger installed by the root command; it discards
// everything before the command runs.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o.logger
}

// NewRootCommand creates the root command for the chromatic CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "chromatic",
		Short: "Chromatic invariants of matroids",
		Long: `Compute the chromatic polynomial and the chromatic quasisymmetric and
non-commutative quasisymmetric functions of matroids, and the stability
matrices that bound the dimension of their span.

Matroids are given as shorthand arguments (uniform:3,2, schubert:4:2,4,
complete:4, cycle:5, graphic:0-1,1-2, random:6,0.5,1) or as a YAML file with --file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewPolynomialCommand(opts))
	cmd.AddCommand(NewQSymCommand(opts))
	cmd.AddCommand(NewNCQSymCommand(opts))
	cmd.AddCommand(NewStableCommand(opts))
	cmd.AddCommand(NewMatrixCommand(opts))
	cmd.AddCommand(NewDimensionCommand(opts))
	cmd.AddCommand(NewFamiliesCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newFormatter writes results to stdout and diagnostics to stderr.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
