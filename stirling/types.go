// SPDX-License-Identifier: MIT
// Package: lvstirling/stirling
//
// types.go - Permutation, options and sentinel errors.

package stirling

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvstirling/word"
)

// DefaultMultiplicity is the number of copies of each value in a classical
// Stirling permutation.
const DefaultMultiplicity = 2

// ErrNegativeOrder is returned when n < 0 is requested.
var ErrNegativeOrder = errors.New("stirling: order must be non-negative")

// Permutation is a sequence of values over a multiset such as [n]_2.
type Permutation []int

// Clone returns an independent copy of p.
func (p Permutation) Clone() Permutation {
	return append(Permutation(nil), p...)
}

// Word returns p as a word of positive letters.
func (p Permutation) Word() word.Word[int] {
	return word.Make([]int(p))
}

// IsFlattened reports whether the run leaders of p weakly increase.
func (p Permutation) IsFlattened() bool {
	return p.Word().IsFlattened()
}

// String renders p with single digits bare and larger values parenthesized,
// e.g. "1(10)(10)1".
func (p Permutation) String() string {
	var sb strings.Builder
	for _, v := range p {
		sb.WriteString(word.Format(v))
	}

	return sb.String()
}

// Option configures the flattened generator.
type Option func(*Options)

// Options holds generator parameters.
type Options struct {
	// Multiplicity is the number of copies k of every value, k ≥ 1.
	Multiplicity int
}

// DefaultOptions returns Options with Multiplicity = 2.
func DefaultOptions() Options {
	return Options{Multiplicity: DefaultMultiplicity}
}

// WithMultiplicity sets k, the number of copies of each value ([n]_k).
// Panics if k < 1.
func WithMultiplicity(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("stirling: WithMultiplicity(%d): k must be ≥ 1", k))
	}

	return func(o *Options) {
		o.Multiplicity = k
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// IsStirling reports whether p is a Stirling permutation on [n]_k with
// n = len(p)/k: every value 1..n occurs exactly k times, and everything
// between the first and last copy of i is ≥ i.
//
// Complexity: O(n·L) time, O(n) memory.
func IsStirling(p Permutation, k int) bool {
	if k < 1 || len(p)%k != 0 {
		return false
	}
	n := len(p) / k

	// 1) Multiset check: each value 1..n exactly k times.
	first := make([]int, n+1)
	last := make([]int, n+1)
	seen := make([]int, n+1)
	for i, v := range p {
		if v < 1 || v > n {
			return false
		}
		if seen[v] == 0 {
			first[v] = i
		}
		last[v] = i
		seen[v]++
	}
	for v := 1; v <= n; v++ {
		if seen[v] != k {
			return false
		}
	}

	// 2) Nesting check: values between copies of v are ≥ v.
	for v := 1; v <= n; v++ {
		for i := first[v] + 1; i < last[v]; i++ {
			if p[i] < v {
				return false
			}
		}
	}

	return true
}
