// SPDX-License-Identifier: MIT
// Package: chromatic/chromatic
//
// prepare.go — shared preconditions: emptiness, tabulation and validation.

package chromatic

import (
	"fmt"

	"github.com/katalvlaran/chromatic/matroid"
)

// prepare applies the shared preconditions and returns the oracle to query.
//
// Steps:
//  1. Reject the empty matroid under WithRequireNonEmpty.
//  2. Above matroid.MaxTabulated, spot-check the axioms when validating
//     and hand back o itself.
//  3. Otherwise tabulate o (rejecting ranks outside 0..n) and, when
//     validating, check the axioms exhaustively on the table.
func prepare(method string, o matroid.Oracle, cfg config) (matroid.Oracle, error) {
	n := matroid.Size(o)
	if n == 0 && cfg.requireNonEmpty {
		return nil, fmt.Errorf("%s: %w", method, ErrEmptyGroundSet)
	}
	if n > matroid.MaxTabulated {
		if cfg.validate {
			if err := matroid.SpotCheckRank(o); err != nil {
				return nil, fmt.Errorf("%s: %w", method, err)
			}
		}
		cfg.logger.Debug("matroid too large to tabulate", "method", method, "elements", n, "validated", cfg.validate)
		return o, nil
	}

	t, err := matroid.Tabulate(o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if cfg.validate {
		if err := matroid.ValidateRank(t); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	cfg.logger.Debug("matroid prepared", "method", method, "elements", n, "rank", matroid.FullRank(t))

	return t, nil
}
