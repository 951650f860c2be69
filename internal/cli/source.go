// SPDX-License-Identifier: MIT
// Package: chromatic/internal/cli
//
// source.go — matroid sources: shorthand arguments and files.

package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chromatic/internal/config"
	"github.com/katalvlaran/chromatic/matroid"
)

// errNoMatroid is returned when neither arguments nor --file name a matroid.
var errNoMatroid = errors.New("no matroid given: pass shorthand arguments or --file")

type namedMatroid struct {
	Label  string
	Oracle matroid.Oracle
}

// loadMatroids builds the matroids of the --file document followed by the
// shorthand arguments.
func loadMatroids(file string, args []string) ([]namedMatroid, error) {
	var descs []config.Matroid
	if file != "" {
		f, err := config.Load(file)
		if err != nil {
			return nil, err
		}
		descs = append(descs, f.Matroids...)
	}
	for _, arg := range args {
		m, err := config.ParseShorthand(arg)
		if err != nil {
			return nil, err
		}
		descs = append(descs, m)
	}
	if len(descs) == 0 {
		return nil, errNoMatroid
	}

	out := make([]namedMatroid, len(descs))
	for i, d := range descs {
		o, err := d.Build()
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", d.Label(), err)
		}
		out[i] = namedMatroid{Label: d.Label(), Oracle: o}
	}

	return out, nil
}

// joinLines renders one item per line.
func joinLines[T fmt.Stringer](items []T) string {
	var out []byte
	for i, item := range items {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, item.String()...)
	}

	return string(out)
}
