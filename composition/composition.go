// SPDX-License-Identifier: MIT
// Package: chromatic/composition
//
// composition.go — the Composition value type: construction, parsing, ordering.

package composition

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for composition operations.
var (
	// ErrInvalidPart indicates a part that is not a positive integer.
	ErrInvalidPart = errors.New("composition: parts must be positive integers")

	// ErrEmptyStructure indicates an operation that needs at least one part.
	ErrEmptyStructure = errors.New("composition: composition has no parts")

	// ErrParse indicates malformed textual input for Parse.
	ErrParse = errors.New("composition: malformed composition text")
)

// Method tags used in error wrapping.
const (
	methodNew     = "New"
	methodParse   = "Parse"
	methodFirst   = "First"
	methodPrepend = "Prepend"
)

// Composition is an ordered sequence of positive integers.
// The zero value is the empty composition of 0.
type Composition struct {
	parts []int // never aliased outside the package
	size  int   // Σ parts
}

// Empty returns the empty composition, the unique composition of 0.
func Empty() Composition {
	return Composition{}
}

// New builds a composition from parts. Every part must be ≥ 1.
// The input slice is copied.
func New(parts ...int) (Composition, error) {
	out := Composition{parts: make([]int, len(parts))}
	for i, p := range parts {
		if p <= 0 {
			return Composition{}, fmt.Errorf("%s: part %d = %d: %w", methodNew, i, p, ErrInvalidPart)
		}
		out.parts[i] = p
		out.size += p
	}

	return out, nil
}

// MustNew is like New but panics on invalid input. Intended for fixtures
// and package-level literals.
func MustNew(parts ...int) Composition {
	c, err := New(parts...)
	if err != nil {
		panic(err)
	}

	return c
}

// Parse reads the canonical text form "(2,1,3)". "()" is the empty composition.
func Parse(s string) (Composition, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return Composition{}, fmt.Errorf("%s(%q): %w", methodParse, s, ErrParse)
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return Empty(), nil
	}
	fields := strings.Split(body, ",")
	parts := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Composition{}, fmt.Errorf("%s(%q): %w", methodParse, s, ErrParse)
		}
		parts[i] = v
	}
	c, err := New(parts...)
	if err != nil {
		return Composition{}, fmt.Errorf("%s(%q): %w", methodParse, s, err)
	}

	return c, nil
}

// Len returns the number of parts k.
func (c Composition) Len() int { return len(c.parts) }

// Size returns n = Σ parts.
func (c Composition) Size() int { return c.size }

// IsEmpty reports whether c has no parts.
func (c Composition) IsEmpty() bool { return len(c.parts) == 0 }

// Parts returns a copy of the parts.
func (c Composition) Parts() []int {
	out := make([]int, len(c.parts))
	copy(out, c.parts)

	return out
}

// Part returns the i-th part (0-based). It panics when i is out of range,
// like slice indexing.
func (c Composition) Part(i int) int { return c.parts[i] }

// First returns c₁.
func (c Composition) First() (int, error) {
	if len(c.parts) == 0 {
		return 0, fmt.Errorf("%s: %w", methodFirst, ErrEmptyStructure)
	}

	return c.parts[0], nil
}

// Rest drops the first part. The empty composition is its own rest.
func (c Composition) Rest() Composition {
	if len(c.parts) == 0 {
		return Composition{}
	}
	out := Composition{parts: make([]int, len(c.parts)-1), size: c.size - c.parts[0]}
	copy(out.parts, c.parts[1:])

	return out
}

// Prepend returns a new composition with x inserted in front.
func (c Composition) Prepend(x int) (Composition, error) {
	if x <= 0 {
		return Composition{}, fmt.Errorf("%s(%d): %w", methodPrepend, x, ErrInvalidPart)
	}

	return c.prepend(x), nil
}

// prepend is the unchecked form used by generators and the stuffle.
func (c Composition) prepend(x int) Composition {
	out := Composition{parts: make([]int, len(c.parts)+1), size: c.size + x}
	out.parts[0] = x
	copy(out.parts[1:], c.parts)

	return out
}

// Equal reports whether a and b have the same ordered parts.
func (c Composition) Equal(o Composition) bool {
	if len(c.parts) != len(o.parts) {
		return false
	}
	for i := range c.parts {
		if c.parts[i] != o.parts[i] {
			return false
		}
	}

	return true
}

// Key returns the canonical text "(2,1,3)". Keys are equal iff the
// compositions are equal, so they serve as map keys.
func (c Composition) Key() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, p := range c.parts {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteByte(')')

	return sb.String()
}

// String implements fmt.Stringer.
func (c Composition) String() string { return c.Key() }

// Compare orders compositions by size, then by number of parts, then
// lexicographically by parts. It returns -1, 0 or +1.
func Compare(a, b Composition) int {
	switch {
	case a.size != b.size:
		return sign(a.size - b.size)
	case len(a.parts) != len(b.parts):
		return sign(len(a.parts) - len(b.parts))
	}
	for i := range a.parts {
		if a.parts[i] != b.parts[i] {
			return sign(a.parts[i] - b.parts[i])
		}
	}

	return 0
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}

	return 0
}
