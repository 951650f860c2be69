// SPDX-License-Identifier: MIT
// Package: chromatic/internal/cli
//
// matrix.go — the matrix command.

package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chromatic/conjecture"
)

// Matrix kinds accepted by --kind.
var matrixBuilders = map[string]func(int, ...conjecture.Option) (*conjecture.Table, error){
	"lower":       conjecture.LowerBound,
	"conjecture":  conjecture.Conjecture,
	"big":         conjecture.Big,
	"alternating": conjecture.AlternatingSum,
}

// MatrixResult is a stability matrix with its rank.
type MatrixResult struct {
	Kind      string    `json:"kind"`
	D         int       `json:"d"`
	Rank      int       `json:"rank"`
	RowLabels []string  `json:"rows"`
	ColLabels []string  `json:"cols"`
	Entries   [][]int64 `json:"entries"`

	text string
}

func (r MatrixResult) String() string { return r.text }

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	var kind string
	var d int
	var latex bool

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Build a stability matrix and its rank",
		Long: `Build one of the stability matrices of matroids on d elements:

  lower        loopless Schubert matroids × subset set compositions
  conjecture   loopless nested matroids × min-max set compositions
  big          loopless nested matroids × all set compositions
  alternating  loopless nested matroids × permutations, signed sums

and report its exact rank. --latex prints the matrix as a bmatrix.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(rootOpts, cmd, kind, d, latex)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "conjecture", "lower|conjecture|big|alternating")
	cmd.Flags().IntVarP(&d, "dimension", "d", 3, "number of elements")
	cmd.Flags().BoolVar(&latex, "latex", false, "print the matrix in LaTeX")

	return cmd
}

func runMatrix(opts *RootOptions, cmd *cobra.Command, kind string, d int, latex bool) error {
	formatter := newFormatter(opts, cmd)
	build, ok := matrixBuilders[kind]
	if !ok {
		return formatter.Fail(ErrCodeInput, "invalid --kind", fmt.Errorf("unknown matrix kind %q", kind))
	}
	tbl, err := build(d, conjecture.WithLogger(opts.Logger()))
	if err != nil {
		return formatter.Fail(ErrCodeInput, "cannot build matrix", err)
	}
	rows, cols := tbl.Matrix.Shape()
	rank := tbl.Rank()
	formatter.VerboseLog("%s matrix: %s entries", kind, humanize.Comma(int64(rows*cols)))

	text := tbl.Matrix.LaTeX()
	if !latex {
		text = fmt.Sprintf("%s matrix, d=%d: %s × %s, rank %s\n%s",
			kind, d, humanize.Comma(int64(rows)), humanize.Comma(int64(cols)), humanize.Comma(int64(rank)),
			strings.TrimSuffix(tbl.Matrix.String(), "\n"))
	}

	return formatter.Success(MatrixResult{
		Kind:      kind,
		D:         d,
		Rank:      rank,
		RowLabels: tbl.Rows,
		ColLabels: tbl.Cols,
		Entries:   tbl.Matrix.ToRows(),
		text:      text,
	})
}
