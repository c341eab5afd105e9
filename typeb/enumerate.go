// SPDX-License-Identifier: MIT
// Package: lvstirling/typeb
//
// enumerate.go - level-by-level construction of all Type-B partitions.

package typeb

import (
	"fmt"
	"iter"
)

// extend returns the successors of p at level i, in rule order:
// R4 first, then for each block in order either R1 (zero block) or R2 and R3.
// Each successor is an independent deep copy.
func extend(p Partition, i int) []Partition {
	out := make([]Partition, 0, 2*len(p)+1)

	// R4: append the singleton pair {i}, {-i}.
	r4 := append(p.Clone(), PairBlock(i))
	out = append(out, r4)

	for j, b := range p {
		if b.IsZero() {
			// R1: grow the zero block by i and -i.
			r1 := p.Clone()
			r1[j].Elems = append(r1[j].Elems, i, -i)
			out = append(out, r1)

			continue
		}

		// R2: i joins B, -i joins -B.
		r2 := p.Clone()
		r2[j].Elems = append(r2[j].Elems, i)
		r2[j].Mirror = append(r2[j].Mirror, -i)
		out = append(out, r2)

		// R3: -i joins B, i joins -B.
		r3 := p.Clone()
		r3[j].Elems = append(r3[j].Elems, -i)
		r3[j].Mirror = append(r3[j].Mirror, i)
		out = append(out, r3)
	}

	return out
}

// Levels returns an iterator over the levels 0..n, yielding (i, partitions
// of {-i..i}). Level 0 is the single partition {0}. A level is built only
// after the previous one has been consumed.
func Levels(n int) (iter.Seq2[int, []Partition], error) {
	if n < 0 {
		return nil, fmt.Errorf("Levels(%d): %w", n, ErrNegativeOrder)
	}

	return func(yield func(int, []Partition) bool) {
		level := []Partition{{ZeroBlock(0)}}
		if !yield(0, level) {
			return
		}
		for i := 1; i <= n; i++ {
			var next []Partition
			for _, p := range level {
				next = append(next, extend(p, i)...)
			}
			level = next
			if !yield(i, level) {
				return
			}
		}
	}, nil
}

// Enumerate returns every Type-B partition of {-n,…,n}.
// Counts for n = 0..6: 1, 2, 6, 24, 116, 648, 4088.
func Enumerate(n int) ([]Partition, error) {
	levels, err := Levels(n)
	if err != nil {
		return nil, fmt.Errorf("Enumerate: %w", err)
	}

	var last []Partition
	for _, level := range levels {
		last = level
	}

	return last, nil
}

// Validate checks that p is a Type-B partition of {-n,…,n}: blocks are
// disjoint and cover the range, every pair mirror is the element-wise
// negation of its block, and exactly one zero block exists, contains 0 and
// is closed under negation.
func Validate(p Partition, n int) error {
	if n < 0 {
		return fmt.Errorf("Validate(%d): %w", n, ErrNegativeOrder)
	}

	seen := make(map[int]bool, 2*n+1)
	mark := func(x int) error {
		if x < -n || x > n {
			return fmt.Errorf("Validate: element %d outside [-%d,%d]: %w", x, n, n, ErrMalformedPartition)
		}
		if seen[x] {
			return fmt.Errorf("Validate: element %d appears twice: %w", x, ErrMalformedPartition)
		}
		seen[x] = true

		return nil
	}

	zeros := 0
	for _, b := range p {
		if b.IsZero() {
			zeros++
			members := make(map[int]bool, len(b.Elems))
			for _, x := range b.Elems {
				members[x] = true
			}
			if !members[0] {
				return fmt.Errorf("Validate: zero block %s lacks 0: %w", b, ErrMalformedPartition)
			}
			for _, x := range b.Elems {
				if !members[-x] {
					return fmt.Errorf("Validate: zero block %s not closed under negation: %w", b, ErrMalformedPartition)
				}
				if err := mark(x); err != nil {
					return err
				}
			}

			continue
		}

		if len(b.Elems) == 0 || len(b.Mirror) != len(b.Elems) {
			return fmt.Errorf("Validate: pair %s has mismatched sizes: %w", b, ErrMalformedPartition)
		}
		for i, x := range b.Elems {
			if b.Mirror[i] != -x {
				return fmt.Errorf("Validate: pair %s mirror differs at %d: %w", b, i, ErrMalformedPartition)
			}
			if err := mark(x); err != nil {
				return err
			}
			if err := mark(-x); err != nil {
				return err
			}
		}
	}
	if zeros != 1 {
		return fmt.Errorf("Validate: %d zero blocks: %w", zeros, ErrMalformedPartition)
	}
	if len(seen) != 2*n+1 {
		return fmt.Errorf("Validate: covers %d of %d elements: %w", len(seen), 2*n+1, ErrMalformedPartition)
	}

	return nil
}
