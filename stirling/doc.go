// Package stirling enumerates Stirling permutations on the doubled alphabet
// [n]_2 = {1,1,2,2,…,n,n} and, directly, their flattened subset.
//
// What:
//
//   - A Stirling permutation places, between the two copies of every value
//     i, only values greater than i (1221 is Stirling, 1212 is not).
//   - A permutation is flattened when the leading values of its runs
//     (maximal weakly increasing blocks) weakly increase.
//   - All: every Stirling permutation, built by substituting values into the
//     matched pairs of every balanced parenthesis string of length 2n. This
//     is the exhaustive ground truth.
//   - Flat: only the flattened ones, built level by level by inserting
//     "n n" at the legal insertion points of every permutation of level n-1.
//     Supports a multiplicity k (k copies of each value, default 2).
//   - FlatLevels: the same construction exposed one level at a time so a
//     caller may stop early.
//   - ByRunCount / ByRunType: grouping helpers for tabulation.
//   - Digest: order-independent BLAKE3 fingerprint of a set of permutations.
//
// Why:
//
//   - Flattened Stirling permutations on [n]_2 are in bijection with Type-B
//     set partitions of {-(n-1),…,n-1} (see package bijection).
//   - Flat never generates a permutation it has to throw away; All produces
//     (2n-1)!! permutations and is intended for verification only.
//
// Complexity:
//
//   - All:             Time O(C_n · n! · n) worst case, Memory O((2n-1)!! · n).
//   - Flat:            Time O(F_n · n·k), Memory O(F_n · n·k), F_n = |level n|.
//   - InsertionPoints: Time O(L), L = len(perm).
//
// Memory:
//
//   - Every level is fully materialized. Level sizes grow super-exponentially
//     (1, 2, 6, 24, 116, 648, 4088, … for k = 2), so prefer FlatLevels when
//     only a prefix of the levels is needed.
//
// Errors:
//
//   - ErrNegativeOrder: n < 0.
//   - WithMultiplicity(k < 1) panics.
//   - BuildParenTree panics on an unbalanced string (internal invariant).
package stirling
