// SPDX-License-Identifier: MIT
// Package: lvstirling/bijection
//
// build.go - reduced Type-B partition → flattened Stirling permutation.

package bijection

import (
	"fmt"

	"github.com/katalvlaran/lvstirling/stirling"
	"github.com/katalvlaran/lvstirling/typeb"
)

// StirlingPermutation builds the flattened Stirling permutation whose
// reduced form is r. Blocks are written in the order given, each as a
// sub-word:
//  1. every magnitude is shifted up by one;
//  2. each negative is written twice, sign dropped;
//  3. a lone positive is written twice; several positives are written as
//     the first one, the others each twice, then the first one again.
//
// An empty block contributes an empty sub-word. Typically r comes from
// typeb.Reduce.
func StirlingPermutation(r typeb.ReducedBlocks) (stirling.Permutation, error) {
	var perm stirling.Permutation
	for i, block := range r {
		sub, err := subWord(block)
		if err != nil {
			return nil, fmt.Errorf("StirlingPermutation: block %d %v: %w", i, block, err)
		}
		perm = append(perm, sub...)
	}
	if perm == nil {
		perm = stirling.Permutation{}
	}

	return perm, nil
}

func subWord(block []int) ([]int, error) {
	if len(block) == 0 {
		return []int{}, nil
	}

	// 1) Split the negative prefix from the positive remainder.
	pos := 0
	for pos < len(block) && block[pos] < 0 {
		pos++
	}
	if pos == len(block) {
		return nil, ErrMalformedReduced // negatives only
	}

	out := make([]int, 0, 2*len(block))
	for _, x := range block[:pos] {
		v := -x + 1
		out = append(out, v, v)
	}

	// 2) Positives: doubled alone, or nested inside the first one.
	head, rest := block[pos]+1, block[pos+1:]
	if len(rest) == 0 {
		return append(out, head, head), nil
	}
	out = append(out, head)
	for _, x := range rest {
		if x < 0 {
			return nil, ErrMalformedReduced
		}
		out = append(out, x+1, x+1)
	}

	return append(out, head), nil
}
