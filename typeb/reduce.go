// SPDX-License-Identifier: MIT
// Package: lvstirling/typeb
//
// reduce.go - the reduced representation of a Type-B partition.

package typeb

import (
	"slices"
)

// CompareMagnitude orders integers by absolute value, a negative value
// before its positive twin: 0, -1, 1, -2, 2, …
func CompareMagnitude(a, b int) int {
	aa, ab := abs(a), abs(b)
	switch {
	case aa < ab:
		return -1
	case aa > ab:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// Reduce returns the reduced representation of p.
//
// Steps:
//  1. Zero block: keep its nonnegative elements, ascending.
//  2. Nonzero pair: sort both blocks by CompareMagnitude and keep the one
//     that sorts second, i.e. the one holding the positive copy of the
//     pair's smallest magnitude.
//  3. Order the kept blocks by their smallest nonnegative element.
//  4. Rewrite each block as its negatives by ascending magnitude followed
//     by its positives ascending.
//
// An empty block reduces to an empty block, ordered after the others.
// Otherwise p must be a valid Type-B partition (see Validate).
// Reduce(nil) is empty.
func Reduce(p Partition) ReducedBlocks {
	kept := make(ReducedBlocks, 0, len(p))

	// 1..2) One block per entry.
	for _, b := range p {
		if b.IsZero() {
			nonneg := []int{}
			for _, x := range b.Elems {
				if x >= 0 {
					nonneg = append(nonneg, x)
				}
			}
			slices.Sort(nonneg)
			kept = append(kept, nonneg)

			continue
		}

		if len(b.Elems) == 0 {
			kept = append(kept, []int{})

			continue
		}

		elems := slices.Clone(b.Elems)
		mirror := slices.Clone(b.Mirror)
		slices.SortFunc(elems, CompareMagnitude)
		slices.SortFunc(mirror, CompareMagnitude)
		if CompareMagnitude(elems[0], mirror[0]) < 0 {
			kept = append(kept, mirror)
		} else {
			kept = append(kept, elems)
		}
	}

	// 3) Every nonempty kept block starts with its smallest nonnegative element.
	slices.SortStableFunc(kept, func(a, b []int) int {
		if len(a) == 0 || len(b) == 0 {
			return len(b) - len(a)
		}

		return a[0] - b[0]
	})

	// 4) Negatives by magnitude, then positives.
	for i, block := range kept {
		if len(block) == 0 {
			continue
		}
		var neg, pos []int
		for _, x := range block {
			if x < 0 {
				neg = append(neg, x)
			} else {
				pos = append(pos, x)
			}
		}
		slices.SortFunc(neg, CompareMagnitude)
		slices.Sort(pos)
		kept[i] = append(neg, pos...)
	}

	return kept
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
