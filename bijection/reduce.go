// SPDX-License-Identifier: MIT
// Package: lvstirling/bijection
//
// reduce.go - flattened Stirling permutation → Type-B partition.

package bijection

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvstirling/stirling"
	"github.com/katalvlaran/lvstirling/typeb"
)

// check enforces the reduction's precondition. The empty permutation passes.
func check(p stirling.Permutation) error {
	if len(p) == 0 {
		return nil
	}
	if !stirling.IsStirling(p, 2) {
		return ErrNotStirling
	}
	if !p.IsFlattened() {
		return ErrNotFlattened
	}

	return nil
}

// ReducedForm cuts a flattened Stirling permutation on [n]_2 into the
// blocks of its Type-B partition, in scan order. Values are shifted down by
// one, so blocks live in {-(n-1),…,n-1}. The empty permutation has no
// blocks.
//
// Complexity: O(L·D) time, D = number of descents.
func ReducedForm(p stirling.Permutation) (typeb.ReducedBlocks, error) {
	if err := check(p); err != nil {
		return nil, fmt.Errorf("ReducedForm(%s): %w", p, err)
	}

	return reducedForm(p), nil
}

func reducedForm(p stirling.Permutation) typeb.ReducedBlocks {
	blocks := typeb.ReducedBlocks{}
	descents := stirling.Descents(p)

	for i := 0; i < len(p)-1; {
		v := p[i]
		switch {
		case p[i+1] != v:
			// rule 1: nesting
			end, block := nestedBlock(p, i)
			blocks = append(blocks, block)
			i = end + 1
		case descentBelow(p, descents, i):
			// rule 2: negative block
			end, block := negativeBlock(p, i)
			blocks = append(blocks, block)
			i = end + 1
		default:
			// rule 3: singleton
			blocks = append(blocks, []int{v - 1})
			i += 2
		}
	}

	return blocks
}

// nestedBlock collects the all-positive block opened at i: one value-1 per
// distinct value up to the second copy of p[i], adjacent repeats collapsed.
// A doubled p[i] yields the singleton {p[i]-1}. It returns the index of the
// closing copy.
func nestedBlock(p stirling.Permutation, i int) (int, []int) {
	v := p[i]
	block := []int{v - 1}
	for i++; p[i] != v; i++ {
		if p[i]-1 != block[len(block)-1] {
			block = append(block, p[i]-1)
		}
	}

	return i, block
}

// negativeBlock collects the negative prefix of increasing doubled values
// starting at i, then the positive block that follows it. It returns the
// index where that positive block closes.
func negativeBlock(p stirling.Permutation, i int) (int, []int) {
	last := p[i]
	block := []int{-(last - 1)}
	for i += 2; p[i] > last; i += 2 {
		last = p[i]
		block = append(block, -(last - 1))
	}
	end, pos := nestedBlock(p, i)

	return end, append(block, pos...)
}

// descentBelow reports whether some descent at or after i lands on a value
// smaller than p[i].
func descentBelow(p stirling.Permutation, descents []int, i int) bool {
	for _, d := range descents {
		if d >= i && p[d+1] < p[i] {
			return true
		}
	}

	return false
}

// TypeBPartition maps a flattened Stirling permutation on [n]_2 to a Type-B
// partition of {-(n-1),…,n-1}. The block holding 0 becomes the zero block
// (completed with the negation of its other elements); every other block
// B becomes the pair (B, -B).
func TypeBPartition(p stirling.Permutation) (typeb.Partition, error) {
	if err := check(p); err != nil {
		return nil, fmt.Errorf("TypeBPartition(%s): %w", p, err)
	}

	blocks := reducedForm(p)
	part := make(typeb.Partition, 0, len(blocks))
	for _, block := range blocks {
		if !slices.Contains(block, 0) {
			part = append(part, typeb.PairBlock(block...))

			continue
		}
		elems := slices.Clone(block)
		for _, x := range block {
			if x != 0 {
				elems = append(elems, -x)
			}
		}
		part = append(part, typeb.ZeroBlock(elems...))
	}

	return part, nil
}
