// Package typeb enumerates Type-B set partitions of {-n,…,-1,0,1,…,n} and
// computes their reduced representation.
//
// What:
//
//   - A Type-B partition is closed under negation: every nonzero block B
//     comes with its mirror -B, and exactly one block (the zero block)
//     contains 0 and equals its own negation.
//   - Partition: a list of Blocks; a nonzero Block carries its mirror, the
//     zero block carries none.
//   - Enumerate: level-by-level construction from {0}. Level i extends every
//     partition of level i-1 by placing i and -i with four rules:
//     R4 new pair {i},{-i}; R1 i,-i into the zero block; R2 i into B and -i
//     into -B; R3 -i into B and i into -B (R2/R3 once per nonzero pair).
//   - Reduce: one block per mirrored pair (the one whose smallest-magnitude
//     element is positive), the zero block without its negatives, blocks
//     ordered by their smallest nonnegative element, and each block written
//     negatives first (ascending magnitude) then positives (ascending).
//
// Complexity:
//
//   - Enumerate: Time O(T_n · n), Memory O(T_n · n), T_n = 1, 2, 6, 24, 116,
//     648, 4088, … (Type-B Bell numbers). Every level is materialized; use
//     Levels to stop early.
//   - Reduce:    Time O(n log n) per partition.
//
// Errors:
//
//   - ErrNegativeOrder: n < 0.
//   - ErrMalformedPartition: Validate found a broken invariant.
package typeb
