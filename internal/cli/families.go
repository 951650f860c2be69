// SPDX-License-Identifier: MIT
// Package: chromatic/internal/cli
//
// families.go — the families command.

package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chromatic/families"
	"github.com/katalvlaran/chromatic/matroid"
)

// FamilyMember is one matroid of a listed family.
type FamilyMember struct {
	Name  string `json:"name"`
	Rank  int    `json:"rank"`
	Bases int    `json:"bases"`
}

func (m FamilyMember) String() string {
	return fmt.Sprintf("%s  rank %d  bases %s", m.Name, m.Rank, humanize.Comma(int64(m.Bases)))
}

// FamilyResult lists a family of matroids on n elements.
type FamilyResult struct {
	Kind    string         `json:"kind"`
	N       int            `json:"n"`
	Members []FamilyMember `json:"members"`
}

func (r FamilyResult) String() string {
	header := fmt.Sprintf("%s %s matroids on %d elements", humanize.Comma(int64(len(r.Members))), r.Kind, r.N)
	if len(r.Members) == 0 {
		return header
	}
	return header + "\n" + joinLines(r.Members)
}

// NewFamiliesCommand creates the families command.
func NewFamiliesCommand(rootOpts *RootOptions) *cobra.Command {
	var kind string
	var n int

	cmd := &cobra.Command{
		Use:   "families",
		Short: "List a family of matroids",
		Long: `List the matroids of a family on n elements with their ranks and numbers
of bases. Kinds: uniform, schubert, loopless-schubert, nested (the loopless
nested matroids, named by their double chains).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFamilies(rootOpts, cmd, kind, n)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "loopless-schubert", "uniform|schubert|loopless-schubert|nested")
	cmd.Flags().IntVarP(&n, "elements", "n", 3, "number of elements")

	return cmd
}

func runFamilies(opts *RootOptions, cmd *cobra.Command, kind string, n int) error {
	formatter := newFormatter(opts, cmd)
	members, err := listFamily(kind, n)
	if err != nil {
		return formatter.Fail(ErrCodeInput, "cannot list family", err)
	}
	opts.Logger().Debug("family listed", "kind", kind, "n", n, "members", len(members))

	return formatter.Success(FamilyResult{Kind: kind, N: n, Members: members})
}

func listFamily(kind string, n int) ([]FamilyMember, error) {
	switch kind {
	case "uniform":
		var out []FamilyMember
		for r := 0; r <= n; r++ {
			m, err := families.Uniform(n, r)
			if err != nil {
				return nil, err
			}
			out = append(out, member(fmt.Sprintf("U(%d,%d)", r, n), m))
		}
		return out, nil
	case "schubert", "loopless-schubert":
		list, err := families.AllSchubert(n)
		if kind == "loopless-schubert" {
			list, err = families.LooplessSchubert(n)
		}
		if err != nil {
			return nil, err
		}
		out := make([]FamilyMember, len(list))
		for i, m := range list {
			out[i] = member(schubertName(n, m), m)
		}
		return out, nil
	case "nested":
		chains, err := families.NestedDoubleChains(n)
		if err != nil {
			return nil, err
		}
		out := make([]FamilyMember, len(chains))
		for i, dc := range chains {
			m, err := families.NestedFromChain(dc)
			if err != nil {
				return nil, err
			}
			out[i] = member(dc.String(), m)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown family %q", kind)
	}
}

func member(name string, m *matroid.BasisMatroid) FamilyMember {
	return FamilyMember{Name: name, Rank: m.FullRank(), Bases: m.NumBases()}
}

// schubertName recovers A from sh([n], A): A is the componentwise largest
// basis, which is also the numerically largest one.
func schubertName(n int, m *matroid.BasisMatroid) string {
	bases := m.BasisSubsets()
	top := matroid.Labels(m, bases[len(bases)-1])
	parts := make([]string, len(top))
	for i, x := range top {
		parts[i] = fmt.Sprint(x)
	}
	return fmt.Sprintf("sh(%d,{%s})", n, strings.Join(parts, ","))
}
