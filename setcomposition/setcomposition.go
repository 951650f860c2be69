// SPDX-License-Identifier: MIT
// Package: chromatic/setcomposition
//
// setcomposition.go — the SetComposition value type.

package setcomposition

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/chromatic/composition"
)

// Sentinel errors for set composition operations.
var (
	// ErrEmptyStructure indicates an operation that needs at least one block.
	ErrEmptyStructure = errors.New("setcomposition: set composition has no blocks")

	// ErrInvalidBlock indicates an empty block or a block overlapping another one.
	ErrInvalidBlock = errors.New("setcomposition: blocks must be non-empty and pairwise disjoint")

	// ErrInvalidRelabeling indicates a relabeling that is not injective on the
	// ground set or that misses one of its labels.
	ErrInvalidRelabeling = errors.New("setcomposition: relabeling must be injective on the ground set")

	// ErrOverlappingGroundSets indicates quasi-shuffle operands sharing a label.
	ErrOverlappingGroundSets = errors.New("setcomposition: ground sets must be disjoint")

	// ErrParse indicates malformed textual input for Parse.
	ErrParse = errors.New("setcomposition: malformed set composition text")
)

const (
	methodNew         = "New"
	methodParse       = "Parse"
	methodFirst       = "First"
	methodPrepend     = "Prepend"
	methodRelabel     = "Relabel"
	methodRelabelOnto = "RelabelOnto"
)

// SetComposition is an ordered sequence of non-empty pairwise-disjoint
// blocks of integer labels. The zero value is the empty set composition.
type SetComposition struct {
	blocks [][]int // each block sorted ascending; never aliased outside
	ground []int   // union of blocks, sorted ascending
}

// Empty returns the set composition with no blocks.
func Empty() SetComposition { return SetComposition{} }

// New builds a set composition from blocks. Each block must be non-empty
// with distinct labels, and blocks must be pairwise disjoint. Inputs are
// copied and sorted.
func New(blocks ...[]int) (SetComposition, error) {
	out := SetComposition{blocks: make([][]int, len(blocks))}
	seen := make(map[int]struct{})
	for i, b := range blocks {
		if len(b) == 0 {
			return SetComposition{}, fmt.Errorf("%s: block %d is empty: %w", methodNew, i, ErrInvalidBlock)
		}
		cp := make([]int, len(b))
		for j, x := range b {
			if _, dup := seen[x]; dup {
				return SetComposition{}, fmt.Errorf("%s: label %d repeated in block %d: %w", methodNew, x, i, ErrInvalidBlock)
			}
			seen[x] = struct{}{}
			cp[j] = x
		}
		sort.Ints(cp)
		out.blocks[i] = cp
		out.ground = append(out.ground, cp...)
	}
	sort.Ints(out.ground)

	return out, nil
}

// MustNew is like New but panics on invalid input; for fixtures.
func MustNew(blocks ...[]int) SetComposition {
	sc, err := New(blocks...)
	if err != nil {
		panic(err)
	}

	return sc
}

// Parse reads the canonical text "(2,4|1|3,5,6)". "()" is the empty set composition.
func Parse(s string) (SetComposition, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return SetComposition{}, fmt.Errorf("%s(%q): %w", methodParse, s, ErrParse)
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return Empty(), nil
	}
	rawBlocks := strings.Split(body, "|")
	blocks := make([][]int, len(rawBlocks))
	for i, rb := range rawBlocks {
		fields := strings.Split(rb, ",")
		block := make([]int, 0, len(fields))
		for _, f := range fields {
			f = strings.TrimSpace(f)
			if f == "" {
				return SetComposition{}, fmt.Errorf("%s(%q): empty label: %w", methodParse, s, ErrParse)
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return SetComposition{}, fmt.Errorf("%s(%q): %w", methodParse, s, ErrParse)
			}
			block = append(block, v)
		}
		blocks[i] = block
	}
	sc, err := New(blocks...)
	if err != nil {
		return SetComposition{}, fmt.Errorf("%s(%q): %w", methodParse, s, err)
	}

	return sc, nil
}

// Len returns the number of blocks.
func (sc SetComposition) Len() int { return len(sc.blocks) }

// Size returns the size of the ground set.
func (sc SetComposition) Size() int { return len(sc.ground) }

// IsEmpty reports whether sc has no blocks.
func (sc SetComposition) IsEmpty() bool { return len(sc.blocks) == 0 }

// GroundSet returns the sorted union of the blocks.
func (sc SetComposition) GroundSet() []int { return cloneInts(sc.ground) }

// Blocks returns a deep copy of the blocks.
func (sc SetComposition) Blocks() [][]int {
	out := make([][]int, len(sc.blocks))
	for i, b := range sc.blocks {
		out[i] = cloneInts(b)
	}

	return out
}

// Block returns a copy of block i (0-based). It panics when i is out of range.
func (sc SetComposition) Block(i int) []int { return cloneInts(sc.blocks[i]) }

// BlockOf returns the index of the block containing label x.
func (sc SetComposition) BlockOf(x int) (int, bool) {
	for i, b := range sc.blocks {
		j := sort.SearchInts(b, x)
		if j < len(b) && b[j] == x {
			return i, true
		}
	}

	return -1, false
}

// Contains reports whether label x belongs to the ground set.
func (sc SetComposition) Contains(x int) bool {
	i := sort.SearchInts(sc.ground, x)
	return i < len(sc.ground) && sc.ground[i] == x
}

// First returns a copy of B₁.
func (sc SetComposition) First() ([]int, error) {
	if len(sc.blocks) == 0 {
		return nil, fmt.Errorf("%s: %w", methodFirst, ErrEmptyStructure)
	}

	return cloneInts(sc.blocks[0]), nil
}

// Rest returns (B₂,…,Bₖ). The empty set composition is its own rest.
func (sc SetComposition) Rest() SetComposition {
	if len(sc.blocks) <= 1 {
		return SetComposition{}
	}
	out := SetComposition{blocks: make([][]int, len(sc.blocks)-1)}
	for i, b := range sc.blocks[1:] {
		out.blocks[i] = cloneInts(b)
		out.ground = append(out.ground, b...)
	}
	sort.Ints(out.ground)

	return out
}

// Prepend inserts block a in front. a must be non-empty, without repeated
// labels, and disjoint from every existing block.
func (sc SetComposition) Prepend(a []int) (SetComposition, error) {
	if len(a) == 0 {
		return SetComposition{}, fmt.Errorf("%s: empty block: %w", methodPrepend, ErrInvalidBlock)
	}
	block := cloneInts(a)
	sort.Ints(block)
	for i, x := range block {
		if i > 0 && block[i-1] == x {
			return SetComposition{}, fmt.Errorf("%s: label %d repeated: %w", methodPrepend, x, ErrInvalidBlock)
		}
		if sc.Contains(x) {
			return SetComposition{}, fmt.Errorf("%s: label %d already present: %w", methodPrepend, x, ErrInvalidBlock)
		}
	}

	return sc.prepend(block), nil
}

// prepend is the unchecked form; block must be sorted and disjoint.
func (sc SetComposition) prepend(block []int) SetComposition {
	out := SetComposition{blocks: make([][]int, len(sc.blocks)+1)}
	out.blocks[0] = block
	copy(out.blocks[1:], sc.blocks)
	out.ground = mergeSorted(sc.ground, block)

	return out
}

// Relabel applies mapping to every label. A nil mapping standardizes the
// ground set onto 1..n, preserving the order of labels. The mapping must
// cover the ground set and be injective on it.
func (sc SetComposition) Relabel(mapping map[int]int) (SetComposition, error) {
	if mapping == nil {
		return sc.standardize(1), nil
	}
	image := make(map[int]int, len(sc.ground))
	for _, x := range sc.ground {
		y, ok := mapping[x]
		if !ok {
			return SetComposition{}, fmt.Errorf("%s: label %d not mapped: %w", methodRelabel, x, ErrInvalidRelabeling)
		}
		if prev, clash := image[y]; clash {
			return SetComposition{}, fmt.Errorf("%s: labels %d and %d both map to %d: %w", methodRelabel, prev, x, y, ErrInvalidRelabeling)
		}
		image[y] = x
	}

	return sc.apply(func(x int) int { return mapping[x] }), nil
}

// RelabelOnto maps the i-th smallest label of the ground set to labels[i].
// labels must have exactly Size() distinct entries.
func (sc SetComposition) RelabelOnto(labels []int) (SetComposition, error) {
	if len(labels) != len(sc.ground) {
		return SetComposition{}, fmt.Errorf("%s: got %d labels for ground set of size %d: %w",
			methodRelabelOnto, len(labels), len(sc.ground), ErrInvalidRelabeling)
	}
	mapping := make(map[int]int, len(labels))
	for i, x := range sc.ground {
		mapping[x] = labels[i]
	}
	out, err := sc.Relabel(mapping)
	if err != nil {
		return SetComposition{}, fmt.Errorf("%s: %w", methodRelabelOnto, err)
	}

	return out, nil
}

// Shift adds offset to every label. Order of labels is preserved.
func (sc SetComposition) Shift(offset int) SetComposition {
	if offset == 0 {
		return sc
	}

	return sc.apply(func(x int) int { return x + offset })
}

// MinLabel returns the smallest label, or false for the empty set composition.
func (sc SetComposition) MinLabel() (int, bool) {
	if len(sc.ground) == 0 {
		return 0, false
	}

	return sc.ground[0], true
}

// MaxLabel returns the largest label, or false for the empty set composition.
func (sc SetComposition) MaxLabel() (int, bool) {
	if len(sc.ground) == 0 {
		return 0, false
	}

	return sc.ground[len(sc.ground)-1], true
}

// standardize relabels the ground set onto start, start+1, … in order.
func (sc SetComposition) standardize(start int) SetComposition {
	pos := make(map[int]int, len(sc.ground))
	for i, x := range sc.ground {
		pos[x] = start + i
	}

	return sc.apply(func(x int) int { return pos[x] })
}

// apply maps labels through f, which must be injective on the ground set.
func (sc SetComposition) apply(f func(int) int) SetComposition {
	out := SetComposition{blocks: make([][]int, len(sc.blocks)), ground: make([]int, 0, len(sc.ground))}
	for i, b := range sc.blocks {
		nb := make([]int, len(b))
		for j, x := range b {
			nb[j] = f(x)
		}
		sort.Ints(nb)
		out.blocks[i] = nb
		out.ground = append(out.ground, nb...)
	}
	sort.Ints(out.ground)

	return out
}

// Alpha returns the composition (|B₁|,…,|Bₖ|).
func (sc SetComposition) Alpha() composition.Composition {
	sizes := make([]int, len(sc.blocks))
	for i, b := range sc.blocks {
		sizes[i] = len(b)
	}
	// block sizes are positive by construction
	return composition.MustNew(sizes...)
}

// Equal reports whether both set compositions have the same ordered blocks.
func (sc SetComposition) Equal(o SetComposition) bool {
	return Compare(sc, o) == 0
}

// Key returns the canonical text "(2,4|1|3,5,6)"; equal keys ⇔ equal values.
func (sc SetComposition) Key() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, b := range sc.blocks {
		if i > 0 {
			sb.WriteByte('|')
		}
		for j, x := range b {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(x))
		}
	}
	sb.WriteByte(')')

	return sb.String()
}

// String implements fmt.Stringer.
func (sc SetComposition) String() string { return sc.Key() }

// Compare orders set compositions by ground set size, then number of
// blocks, then block by block (block size first, then labels).
func Compare(a, b SetComposition) int {
	if c := cmpInt(len(a.ground), len(b.ground)); c != 0 {
		return c
	}
	if c := cmpInt(len(a.blocks), len(b.blocks)); c != 0 {
		return c
	}
	for i := range a.blocks {
		x, y := a.blocks[i], b.blocks[i]
		if c := cmpInt(len(x), len(y)); c != 0 {
			return c
		}
		for j := range x {
			if c := cmpInt(x[j], y[j]); c != 0 {
				return c
			}
		}
	}

	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func cloneInts(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)

	return out
}

// mergeSorted merges two sorted, disjoint slices into a new sorted slice.
func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}
