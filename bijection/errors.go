// SPDX-License-Identifier: MIT
// Package: lvstirling/bijection
//
// errors.go - sentinel errors. Compare with errors.Is.

package bijection

import "errors"

var (
	// ErrNotStirling indicates a sequence that is not a Stirling
	// permutation on [n]_2.
	ErrNotStirling = errors.New("bijection: not a Stirling permutation")

	// ErrNotFlattened indicates a Stirling permutation whose run leaders
	// do not weakly increase; the reduction is undefined for it.
	ErrNotFlattened = errors.New("bijection: permutation is not flattened")

	// ErrMalformedReduced indicates reduced blocks that no flattened
	// Stirling permutation maps to.
	ErrMalformedReduced = errors.New("bijection: malformed reduced representation")
)
