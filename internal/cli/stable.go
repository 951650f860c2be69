// SPDX-License-Identifier: MIT
// Package: chromatic/internal/cli
//
// stable.go — the stable command.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chromatic/chromatic"
	"github.com/katalvlaran/chromatic/internal/config"
	"github.com/katalvlaran/chromatic/setcomposition"
)

// StableResult answers whether a matroid is stable for a set composition.
type StableResult struct {
	Matroid        string `json:"matroid"`
	SetComposition string `json:"set_composition"`
	Stable         bool   `json:"stable"`
}

func (r StableResult) String() string {
	verdict := "unstable"
	if r.Stable {
		verdict = "stable"
	}
	return fmt.Sprintf("%s %s: %s", r.Matroid, r.SetComposition, verdict)
}

// NewStableCommand creates the stable command.
func NewStableCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stable <matroid> <set-composition>",
		Short: "Test stability for a set composition",
		Long: `Report whether the matroid has a unique maximum-weight basis when every
element of block i of the set composition weighs i. Set compositions are
written (2,4|1|3).`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStable(rootOpts, cmd, args[0], args[1])
		},
	}

	return cmd
}

func runStable(opts *RootOptions, cmd *cobra.Command, shorthand, composition string) error {
	formatter := newFormatter(opts, cmd)
	desc, err := config.ParseShorthand(shorthand)
	if err != nil {
		return formatter.Fail(ErrCodeInput, "invalid matroid description", err)
	}
	o, err := desc.Build()
	if err != nil {
		return formatter.Fail(ErrCodeInput, "invalid matroid description", err)
	}
	phi, err := setcomposition.Parse(composition)
	if err != nil {
		return formatter.Fail(ErrCodeInput, "invalid set composition", err)
	}

	stable, err := chromatic.IsStable(o, phi)
	if err != nil {
		return formatter.Fail(ErrCodeInput, "set composition does not fit the matroid", err)
	}

	return formatter.Success(StableResult{
		Matroid:        desc.Label(),
		SetComposition: phi.String(),
		Stable:         stable,
	})
}
