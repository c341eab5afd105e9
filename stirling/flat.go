// SPDX-License-Identifier: MIT
// Package: lvstirling/stirling
//
// flat.go - direct generator of flattened Stirling permutations.
//
// Level n is built from level n-1: for every permutation and every legal
// insertion point j, splice k copies of n right after position j. Because n
// exceeds every value already present, the block of n's never creates a
// descent of its own and the result is still Stirling; the insertion rule
// below keeps the run leaders weakly ascending. Every (parent, point) pair
// yields a distinct child and every flattened child arises this way, so no
// filtering pass is needed.

package stirling

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvstirling/word"
)

// Descents returns every i with p[i] > p[i+1], in increasing order.
func Descents(p Permutation) []int {
	var out []int
	for i := 0; i+1 < len(p); i++ {
		if p[i] > p[i+1] {
			out = append(out, i)
		}
	}

	return out
}

// insertState classifies position j relative to the next unconsumed descent.
type insertState int

const (
	noMoreDescents insertState = iota // no descent at or after j
	beforeDescent                     // next descent d satisfies d > j
	atDescent                         // next descent is exactly j
)

// InsertionPoints returns the positions j after which a block of values
// larger than everything in p can be spliced while keeping p flattened.
//
// Rules, scanning j left to right while tracking the next descent d:
//  1. atDescent: legal. The block extends the run that ends at j.
//  2. noMoreDescents: legal. The rest of p ascends, so the block ends the
//     current run and the new run after it starts with p[j+1] (or there is
//     none).
//  3. beforeDescent: legal iff p[j+1] ≤ p[d+1]. The run that would start at
//     j+1 must not lead with more than the run that begins after d.
//
// An empty permutation has no insertion points.
//
// Complexity: O(L).
func InsertionPoints(p Permutation) []int {
	descents := Descents(p)
	next := 0 // index into descents of the next descent at or after j

	var points []int
	for j := range p {
		state := noMoreDescents
		if next < len(descents) {
			state = beforeDescent
			if descents[next] == j {
				state = atDescent
			}
		}

		switch state {
		case atDescent:
			points = append(points, j)
			next++
		case noMoreDescents:
			points = append(points, j)
		case beforeDescent:
			d := descents[next]
			if p[j+1] <= p[d+1] {
				points = append(points, j)
			}
		}
	}

	return points
}

// insertAfter returns a new permutation: p[:j+1], k copies of v, p[j+1:].
func insertAfter(p Permutation, j, v, k int) Permutation {
	out := make(Permutation, 0, len(p)+k)
	out = append(out, p[:j+1]...)
	for c := 0; c < k; c++ {
		out = append(out, v)
	}

	return append(out, p[j+1:]...)
}

// nextLevel builds level v from the flattened permutations of level v-1.
func nextLevel(level []Permutation, v, k int) []Permutation {
	var out []Permutation
	for _, perm := range level {
		for _, j := range InsertionPoints(perm) {
			out = append(out, insertAfter(perm, j, v, k))
		}
	}

	return out
}

// FlatLevels returns an iterator over the levels 0..n of the flattened
// Stirling permutations on [i]_k, yielding (i, level). Level 0 is the single
// empty permutation and level 1 is k copies of 1. Each level is computed
// only when the previous one has been consumed, so stopping early bounds
// memory by the last level reached.
func FlatLevels(n int, opts ...Option) (iter.Seq2[int, []Permutation], error) {
	if n < 0 {
		return nil, fmt.Errorf("FlatLevels(%d): %w", n, ErrNegativeOrder)
	}
	k := resolve(opts).Multiplicity

	return func(yield func(int, []Permutation) bool) {
		level := []Permutation{{}}
		if !yield(0, level) {
			return
		}
		for i := 1; i <= n; i++ {
			if i == 1 {
				level = []Permutation{insertAfter(nil, -1, 1, k)}
			} else {
				level = nextLevel(level, i, k)
			}
			if !yield(i, level) {
				return
			}
		}
	}, nil
}

// Flat returns the flattened Stirling permutations on [n]_k (k defaults to
// 2, see WithMultiplicity). Flat(0) returns the single empty permutation.
//
// For k = 2 the counts are 1, 1, 2, 6, 24, 116, 648, … for n = 0, 1, 2, ….
func Flat(n int, opts ...Option) ([]Permutation, error) {
	levels, err := FlatLevels(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Flat: %w", err)
	}

	var last []Permutation
	for _, level := range levels {
		last = level
	}

	return last, nil
}

// FlatBrute returns the flattened Stirling permutations on [n]_2 by
// filtering All(n). It is the reference Flat is checked against.
func FlatBrute(n int) ([]Permutation, error) {
	all, err := All(n)
	if err != nil {
		return nil, fmt.Errorf("FlatBrute: %w", err)
	}

	var out []Permutation
	for _, p := range all {
		if word.Make([]int(p)).IsFlattened() {
			out = append(out, p)
		}
	}

	return out, nil
}
