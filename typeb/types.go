// SPDX-License-Identifier: MIT
// Package: lvstirling/typeb
//
// types.go - Block, Partition, ReducedBlocks and sentinel errors.

package typeb

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvstirling/word"
)

var (
	// ErrNegativeOrder is returned when n < 0 is requested.
	ErrNegativeOrder = errors.New("typeb: order must be non-negative")

	// ErrMalformedPartition indicates a partition that is not Type-B over
	// the expected range.
	ErrMalformedPartition = errors.New("typeb: malformed partition")
)

// Block is one entry of a Type-B partition.
// For a nonzero pair, Elems is B and Mirror is -B, element by element.
// For the zero block Mirror is nil and Elems holds 0 and its ± members.
type Block struct {
	Elems  []int
	Mirror []int
}

// ZeroBlock returns the zero block holding elems.
func ZeroBlock(elems ...int) Block {
	return Block{Elems: append([]int(nil), elems...)}
}

// PairBlock returns the pair (elems, -elems).
func PairBlock(elems ...int) Block {
	return Block{Elems: append([]int(nil), elems...), Mirror: negate(elems)}
}

// IsZero reports whether b is the self-negating zero block.
func (b Block) IsZero() bool { return b.Mirror == nil }

// clone deep-copies b, keeping a nil Mirror nil.
func (b Block) clone() Block {
	out := Block{Elems: append([]int(nil), b.Elems...)}
	if b.Mirror != nil {
		out.Mirror = append([]int{}, b.Mirror...)
	}

	return out
}

// String renders "{0,1,-1}" for the zero block and "{1,-2}/{-1,2}" for a pair.
func (b Block) String() string {
	if b.IsZero() {
		return set(b.Elems)
	}

	return set(b.Elems) + "/" + set(b.Mirror)
}

// Partition is a Type-B set partition.
type Partition []Block

// Clone deep-copies p.
func (p Partition) Clone() Partition {
	out := make(Partition, len(p))
	for i, b := range p {
		out[i] = b.clone()
	}

	return out
}

// String renders the blocks separated by spaces.
func (p Partition) String() string {
	parts := make([]string, len(p))
	for i, b := range p {
		parts[i] = b.String()
	}

	return strings.Join(parts, " ")
}

// ReducedBlocks is the reduced representation of a Type-B partition.
type ReducedBlocks [][]int

// String renders the blocks joined by "|", e.g. "0|(-2)1".
func (r ReducedBlocks) String() string {
	parts := make([]string, len(r))
	for i, block := range r {
		var sb strings.Builder
		for _, v := range block {
			sb.WriteString(word.Format(v))
		}
		parts[i] = sb.String()
	}

	return strings.Join(parts, "|")
}

func negate(xs []int) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = -x
	}

	return out
}

func set(xs []int) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, x := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteByte('}')

	return sb.String()
}
