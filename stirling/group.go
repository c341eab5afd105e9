// SPDX-License-Identifier: MIT
// Package: lvstirling/stirling
//
// group.go - tabulation helpers over sets of permutations.

package stirling

import (
	"slices"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"
)

// RunTypeKey renders a run type as a comma-separated key, e.g. "4,2".
func RunTypeKey(runType []int) string {
	parts := make([]string, len(runType))
	for i, n := range runType {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, ",")
}

// ByRunCount groups the renderings of perms by their number of runs.
// Within a group the input order is kept.
func ByRunCount(perms []Permutation) map[int][]string {
	out := make(map[int][]string)
	for _, p := range perms {
		runs := p.Word().NumRuns()
		out[runs] = append(out[runs], p.String())
	}

	return out
}

// ByRunType groups the flattened members of perms by run type key.
// Non-flattened permutations are skipped; each group is sorted.
func ByRunType(perms []Permutation) map[string][]string {
	out := make(map[string][]string)
	for _, p := range perms {
		w := p.Word()
		if !w.IsFlattened() {
			continue
		}
		key := RunTypeKey(w.RunType())
		out[key] = append(out[key], w.String())
	}
	for key := range out {
		slices.Sort(out[key])
	}

	return out
}

// Digest returns a BLAKE3-256 fingerprint of the set of perms. The
// renderings are sorted first, so the digest does not depend on the order
// in which a generator produced them.
func Digest(perms []Permutation) [32]byte {
	lines := make([]string, len(perms))
	for i, p := range perms {
		lines[i] = p.String()
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
