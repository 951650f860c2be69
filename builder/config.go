// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// config.go — resolved builder configuration.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is the immutable view constructors see.
type builderConfig struct {
	idFn func(int) string
	rng  *rand.Rand
}

// decimalID is the default ID scheme: 0 → "0", 1 → "1", ...
func decimalID(i int) string { return strconv.Itoa(i) }

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: decimalID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
