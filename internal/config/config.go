// SPDX-License-Identifier: MIT
// Package: chromatic/internal/config

// Package config decodes matroid descriptions from YAML files and from the
// short command-line notation, and builds the described matroids.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chromatic/builder"
	"github.com/katalvlaran/chromatic/core"
	"github.com/katalvlaran/chromatic/families"
	"github.com/katalvlaran/chromatic/matroid"
)

// Kind selects the constructor behind a description.
type Kind string

// Supported kinds.
const (
	KindUniform  Kind = "uniform"
	KindSchubert Kind = "schubert"
	KindNested   Kind = "nested"
	KindGraphic  Kind = "graphic"
	KindComplete Kind = "complete"
	KindCycle    Kind = "cycle"
	KindRandom   Kind = "random"
	KindBases    Kind = "bases"
)

var (
	// ErrUnknownKind indicates a kind outside the supported set.
	ErrUnknownKind = errors.New("config: unknown matroid kind")

	// ErrMissingField indicates a field the kind requires is absent.
	ErrMissingField = errors.New("config: missing field")

	// ErrEmptyFile indicates a file without any matroid.
	ErrEmptyFile = errors.New("config: no matroids")

	// ErrShorthand indicates a malformed command-line description.
	ErrShorthand = errors.New("config: malformed shorthand")
)

// Matroid describes one matroid. Which fields apply depends on Kind:
//
//	uniform:  n, rank
//	schubert: n, a
//	nested:   n, rank, x, ranks
//	graphic:  edges
//	complete: n (vertices)
//	cycle:    n (vertices)
//	random:   n (vertices), p, seed; G(n, p) drawn from the seed
//	bases:    ground, bases
//
// Offset, when set, is the label of the first element; labels default to
// 1..n. It does not apply to kind bases, which carries its own labels.
type Matroid struct {
	Name   string   `yaml:"name,omitempty"`
	Kind   Kind     `yaml:"kind"`
	N      int      `yaml:"n,omitempty"`
	Rank   int      `yaml:"rank,omitempty"`
	Offset *int     `yaml:"offset,omitempty"`
	A      []int    `yaml:"a,omitempty"`
	X      [][]int  `yaml:"x,omitempty"`
	Ranks  []int    `yaml:"ranks,omitempty"`
	Edges  [][2]int `yaml:"edges,omitempty"`
	P      float64  `yaml:"p,omitempty"`
	Seed   int64    `yaml:"seed,omitempty"`
	Ground []int    `yaml:"ground,omitempty"`
	Bases  [][]int  `yaml:"bases,omitempty"`
}

// File is the top-level document of a matroid file.
type File struct {
	Matroids []Matroid `yaml:"matroids"`
}

// Load reads and validates a matroid file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read matroid file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a matroid file, rejecting unknown fields, and validates
// every entry.
func Parse(data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(f.Matroids) == 0 {
		return nil, ErrEmptyFile
	}
	for i := range f.Matroids {
		if err := f.Matroids[i].Validate(); err != nil {
			return nil, fmt.Errorf("matroid %d: %w", i+1, err)
		}
	}

	return &f, nil
}

// Validate checks that the fields required by Kind are present. Value
// constraints are left to the constructors.
func (m Matroid) Validate() error {
	missing := func(field string) error {
		return fmt.Errorf("%s needs %q: %w", m.Kind, field, ErrMissingField)
	}
	switch m.Kind {
	case KindUniform, KindComplete, KindCycle, KindRandom:
		return nil
	case KindSchubert:
		if m.A == nil {
			return missing("a")
		}
	case KindNested:
		if len(m.X) == 0 {
			return missing("x")
		}
		if len(m.Ranks) == 0 {
			return missing("ranks")
		}
	case KindGraphic:
		if m.Edges == nil {
			return missing("edges")
		}
	case KindBases:
		if m.Ground == nil {
			return missing("ground")
		}
		if m.Bases == nil {
			return missing("bases")
		}
	case "":
		return fmt.Errorf("kind: %w", ErrMissingField)
	default:
		return fmt.Errorf("%q: %w", m.Kind, ErrUnknownKind)
	}

	return nil
}

// Label returns Name, or a description derived from the fields.
func (m Matroid) Label() string {
	if m.Name != "" {
		return m.Name
	}
	switch m.Kind {
	case KindUniform:
		return fmt.Sprintf("U(%d,%d)", m.Rank, m.N)
	case KindSchubert:
		return fmt.Sprintf("sh(%d,%v)", m.N, m.A)
	case KindNested:
		return fmt.Sprintf("ne(%d,%d,%v,%v)", m.N, m.Rank, m.X, m.Ranks)
	case KindComplete:
		return fmt.Sprintf("M(K%d)", m.N)
	case KindCycle:
		return fmt.Sprintf("M(C%d)", m.N)
	case KindGraphic:
		return fmt.Sprintf("M(G) with %d edges", len(m.Edges))
	case KindRandom:
		return fmt.Sprintf("M(G(%d,%g)) seed %d", m.N, m.P, m.Seed)
	default:
		return fmt.Sprintf("%s on %v", m.Kind, m.Ground)
	}
}

// Build constructs the described matroid.
func (m Matroid) Build() (matroid.Oracle, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	var opts []families.Option
	if m.Offset != nil {
		opts = append(opts, families.WithOffset(*m.Offset))
	}
	o, err := m.build(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.Label(), err)
	}

	return o, nil
}

func (m Matroid) build(opts []families.Option) (matroid.Oracle, error) {
	switch m.Kind {
	case KindUniform:
		return families.Uniform(m.N, m.Rank, opts...)
	case KindSchubert:
		return families.Schubert(m.N, m.A, opts...)
	case KindNested:
		return families.Nested(m.N, m.Rank, m.X, m.Ranks, opts...)
	case KindGraphic:
		// Loops and repeated pairs are legal graphic input.
		gopts := []core.GraphOption{core.WithLoops(), core.WithMultiEdges()}
		return m.graphic(gopts, nil, builder.EdgeList(m.Edges), opts)
	case KindComplete:
		return m.graphic(nil, nil, builder.Complete(m.N), opts)
	case KindCycle:
		return m.graphic(nil, nil, builder.Cycle(m.N), opts)
	case KindRandom:
		bopts := []builder.BuilderOption{builder.WithSeed(m.Seed)}
		return m.graphic(nil, bopts, builder.RandomSparse(m.N, m.P), opts)
	default:
		return matroid.NewBasisMatroid(m.Ground, m.Bases)
	}
}

// graphic builds the graph with cons and returns its cycle matroid.
func (m Matroid) graphic(gopts []core.GraphOption, bopts []builder.BuilderOption, cons builder.Constructor, opts []families.Option) (matroid.Oracle, error) {
	g, err := builder.BuildGraph(gopts, bopts, cons)
	if err != nil {
		return nil, err
	}

	return families.Graphic(g, opts...)
}
