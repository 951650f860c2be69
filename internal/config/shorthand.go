// SPDX-License-Identifier: MIT
// Package: chromatic/internal/config
//
// shorthand.go — the kind:args command-line notation.

package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseShorthand reads the command-line notation kind:args.
//
//	uniform:N,R      U(R, N)
//	schubert:N:A     sh([N], A), A comma separated, may be empty
//	complete:N       cycle matroid of K_N
//	cycle:N          cycle matroid of C_N
//	graphic:U-V,...  cycle matroid of the listed edges
//	random:N,P,SEED  cycle matroid of G(N, P) drawn from SEED
//
// Nested and basis-family matroids are only available through files.
func ParseShorthand(s string) (Matroid, error) {
	kind, args, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Matroid{}, fmt.Errorf("%q: want kind:args: %w", s, ErrShorthand)
	}
	bad := func(format string) error {
		return fmt.Errorf("%q: want %s: %w", s, format, ErrShorthand)
	}

	m := Matroid{Kind: Kind(kind)}
	switch m.Kind {
	case KindUniform:
		xs, err := parseInts(args, ",")
		if err != nil || len(xs) != 2 {
			return Matroid{}, bad("uniform:N,R")
		}
		m.N, m.Rank = xs[0], xs[1]
	case KindSchubert:
		n, a, _ := strings.Cut(args, ":")
		var err error
		if m.N, err = strconv.Atoi(n); err != nil {
			return Matroid{}, bad("schubert:N:A")
		}
		if m.A, err = parseInts(a, ","); err != nil {
			return Matroid{}, bad("schubert:N:A")
		}
	case KindComplete, KindCycle:
		n, err := strconv.Atoi(args)
		if err != nil {
			return Matroid{}, bad(kind + ":N")
		}
		m.N = n
	case KindGraphic:
		for _, e := range strings.Split(args, ",") {
			uv, err := parseInts(e, "-")
			if err != nil || len(uv) != 2 {
				return Matroid{}, bad("graphic:U-V,...")
			}
			m.Edges = append(m.Edges, [2]int{uv[0], uv[1]})
		}
	case KindRandom:
		fields := strings.Split(args, ",")
		if len(fields) != 3 {
			return Matroid{}, bad("random:N,P,SEED")
		}
		var errN, errP, errSeed error
		m.N, errN = strconv.Atoi(strings.TrimSpace(fields[0]))
		m.P, errP = strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		m.Seed, errSeed = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
		if errN != nil || errP != nil || errSeed != nil {
			return Matroid{}, bad("random:N,P,SEED")
		}
	default:
		return Matroid{}, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}

	return m, nil
}

// parseInts splits s on sep; the empty string yields an empty, non-nil slice.
func parseInts(s, sep string) ([]int, error) {
	out := []int{}
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, field := range strings.Split(s, sep) {
		x, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}

	return out, nil
}
