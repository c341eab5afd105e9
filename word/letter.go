// SPDX-License-Identifier: MIT
// Package: lvstirling/word
//
// letter.go - the signed letter and its total order.

package word

import (
	"cmp"
	"fmt"
	"unicode/utf8"
)

// Letter is a symbol paired with a sign.
// Positive is true for a positive letter and false for a negative one.
type Letter[T cmp.Ordered] struct {
	Char     T
	Positive bool
}

// NewLetter returns the positive letter c.
func NewLetter[T cmp.Ordered](c T) Letter[T] {
	return Letter[T]{Char: c, Positive: true}
}

// Neg returns the negative letter -c.
func Neg[T cmp.Ordered](c T) Letter[T] {
	return Letter[T]{Char: c, Positive: false}
}

// Compare orders a and b under the signed order and returns -1, 0 or +1.
//
// Rules:
//  1. Opposite signs: the negative letter is smaller.
//  2. Equal signs, equal symbols: the letters are equal.
//  3. Both positive: the smaller symbol is smaller.
//  4. Both negative: the larger symbol is smaller.
//
// Complexity: O(1).
func Compare[T cmp.Ordered](a, b Letter[T]) int {
	// 1) Opposite signs never compare by symbol.
	if a.Positive != b.Positive {
		if a.Positive {
			return 1
		}

		return -1
	}

	// 2..4) Same sign: symbol order, inverted for negatives.
	c := cmp.Compare(a.Char, b.Char)
	if !a.Positive {
		return -c
	}

	return c
}

// LessEq reports whether a ≤ b under the signed order. It is reflexive.
func LessEq[T cmp.Ordered](a, b Letter[T]) bool {
	return Compare(a, b) <= 0
}

// String renders the letter: "a", "(-a)", or "(12)" for multi-rune symbols.
func (l Letter[T]) String() string {
	s := fmt.Sprint(l.Char)
	if !l.Positive {
		return "(-" + s + ")"
	}
	if utf8.RuneCountInString(s) > 1 {
		return "(" + s + ")"
	}

	return s
}

// Format renders a bare symbol with the letter conventions: single-rune
// renderings stay bare, anything longer (multi-digit or negative numbers)
// is parenthesized.
func Format[T cmp.Ordered](c T) string {
	return NewLetter(c).String()
}
