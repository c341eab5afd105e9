// SPDX-License-Identifier: MIT
// Package: lvstirling/word
//
// word.go - Word construction, run decomposition and the flatness predicate.

package word

import (
	"cmp"
	"strings"
)

// Word is an immutable sequence of letters together with its runs.
// The zero value is the empty word.
type Word[T cmp.Ordered] struct {
	letters []Letter[T]
	runs    [][]Letter[T]
}

// New builds a Word from letters. The input slice is copied, so the caller
// may reuse it. Runs are computed eagerly.
//
// Complexity: O(L) time and memory.
func New[T cmp.Ordered](letters []Letter[T]) Word[T] {
	own := make([]Letter[T], len(letters))
	copy(own, letters)

	return Word[T]{letters: own, runs: splitRuns(own)}
}

// Make builds a Word of positive letters from symbols.
func Make[T cmp.Ordered](symbols []T) Word[T] {
	letters := make([]Letter[T], len(symbols))
	for i, s := range symbols {
		letters[i] = NewLetter(s)
	}

	return Word[T]{letters: letters, runs: splitRuns(letters)}
}

// splitRuns cuts letters into maximal weakly ascending runs in one
// left-to-right scan. Each run is a sub-slice of letters with its capacity
// clipped, so appending to a run never writes into its neighbour.
func splitRuns[T cmp.Ordered](letters []Letter[T]) [][]Letter[T] {
	if len(letters) == 0 {
		return nil
	}

	var runs [][]Letter[T]
	start := 0
	for i := 1; i < len(letters); i++ {
		// a strict descent closes the current run
		if !LessEq(letters[i-1], letters[i]) {
			runs = append(runs, letters[start:i:i])
			start = i
		}
	}
	runs = append(runs, letters[start:len(letters):len(letters)])

	return runs
}

// Letters returns a copy of the word's letters.
func (w Word[T]) Letters() []Letter[T] {
	out := make([]Letter[T], len(w.letters))
	copy(out, w.letters)

	return out
}

// Len returns the number of letters.
func (w Word[T]) Len() int { return len(w.letters) }

// Runs returns the maximal weakly ascending runs, left to right.
// Concatenating them reproduces Letters exactly. The empty word has no runs.
func (w Word[T]) Runs() [][]Letter[T] {
	out := make([][]Letter[T], len(w.runs))
	for i, r := range w.runs {
		out[i] = append([]Letter[T](nil), r...)
	}

	return out
}

// NumRuns returns the number of runs.
func (w Word[T]) NumRuns() int { return len(w.runs) }

// IsFlattened reports whether the leading letters of consecutive runs are
// weakly ascending. A word with at most one run is flattened.
//
// Complexity: O(R).
func (w Word[T]) IsFlattened() bool {
	for i := 0; i+1 < len(w.runs); i++ {
		if !LessEq(w.runs[i][0], w.runs[i+1][0]) {
			return false
		}
	}

	return true
}

// RunType returns the length of every run, in order.
func (w Word[T]) RunType() []int {
	lengths := make([]int, len(w.runs))
	for i, r := range w.runs {
		lengths[i] = len(r)
	}

	return lengths
}

// String concatenates the renderings of the letters.
func (w Word[T]) String() string {
	var sb strings.Builder
	for _, l := range w.letters {
		sb.WriteString(l.String())
	}

	return sb.String()
}
