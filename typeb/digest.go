// SPDX-License-Identifier: MIT
// Package: lvstirling/typeb
//
// digest.go - order-independent fingerprint of a set of partitions.

package typeb

import (
	"slices"

	"github.com/zeebo/blake3"
)

// Digest returns a BLAKE3-256 fingerprint of parts, computed over the
// sorted renderings of their reduced representations. Two enumerations
// holding the same partitions in any order and with blocks listed in any
// order share a digest.
func Digest(parts []Partition) [32]byte {
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = Reduce(p).String()
	}
	slices.Sort(lines)

	h := blake3.New()
	for _, line := range lines {
		_, _ = h.Write([]byte(line))
		_, _ = h.Write([]byte{'\n'})
	}

	var sum [32]byte
	copy(sum[:], h.Sum(nil))

	return sum
}
