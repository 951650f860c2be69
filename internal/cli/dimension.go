// SPDX-License-Identifier: MIT
// Package: chromatic/internal/cli
//
// dimension.go — the dimension command.

package cli

import (
	"fmt"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chromatic/conjecture"
	"github.com/katalvlaran/chromatic/setcomposition"
)

// DimensionRow is one line of the dimension study.
type DimensionRow conjecture.Dimension

func (r DimensionRow) String() string {
	return fmt.Sprintf("d=%d  matroids %s  set compositions %s  QSym %d/%s  NCQSym %d/%s",
		r.D,
		humanize.Comma(int64(r.Matroids)),
		humanize.Comma(int64(r.SetCompositions)),
		r.QSymRank, humanize.Comma(r.QSymBound),
		r.NCQSymRank, humanize.Comma(r.NCQSymBound),
	)
}

// DimensionRows renders one dimension per line.
type DimensionRows []DimensionRow

func (rs DimensionRows) String() string { return joinLines(rs) }

// NewDimensionCommand creates the dimension command.
func NewDimensionCommand(rootOpts *RootOptions) *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "dimension",
		Short: "Rank of the chromatic functions of loopless nested matroids",
		Long: `For each d in [from, to], compute the chromatic QSym and NCQSym functions
of the loopless nested matroids on d elements and the rank of their span,
next to the bounds 2^(d−1) and d!.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDimension(rootOpts, cmd, from, to)
		},
	}
	cmd.Flags().IntVar(&from, "from", 1, "smallest d")
	cmd.Flags().IntVar(&to, "to", 4, "largest d")

	return cmd
}

func runDimension(opts *RootOptions, cmd *cobra.Command, from, to int) error {
	formatter := newFormatter(opts, cmd)
	if from > to {
		return formatter.Fail(ErrCodeInput, "invalid range", fmt.Errorf("from=%d > to=%d", from, to))
	}

	g := setcomposition.NewGenerator()
	rows := make(DimensionRows, to-from+1)
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for d := from; d <= to; d++ {
		d := d
		eg.Go(func() error {
			dim, err := conjecture.Study(d, conjecture.WithGenerator(g), conjecture.WithLogger(opts.Logger()))
			if err != nil {
				return err
			}
			rows[d-from] = DimensionRow(dim)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return formatter.Fail(ErrCodeInput, "dimension study failed", err)
	}
	for _, r := range rows {
		formatter.VerboseLog("d=%d: %s matroids", r.D, humanize.Comma(int64(r.Matroids)))
	}

	return formatter.Success(rows)
}
