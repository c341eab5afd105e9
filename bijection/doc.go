// Package bijection maps flattened Stirling permutations on [n]_2 to Type-B
// partitions of {-(n-1),…,n-1} and back.
//
// Stirling → partition (ReducedForm, TypeBPartition) scans the permutation
// left to right and cuts it into blocks, one block per rule:
//
//  1. Nesting: the next value differs from the current one. The block runs
//     to the second copy of the current value and holds value-1 for every
//     distinct value met (adjacent repeats collapsed), all positive.
//  2. Negative block: the current value is doubled and a later descent
//     lands below it. Successive doubled, increasing values contribute
//     -(value-1) until the first value that does not increase; the block
//     ends with the positive block starting there (rule 1 or a singleton).
//  3. Singleton: otherwise the block is {value-1}.
//
// Blocks holding 0 become the zero block; every other block B becomes the
// pair (B, -B).
//
// Partition → Stirling (StirlingPermutation) reverses this on the reduced
// representation: shift magnitudes up by one, double every negative
// (dropping the sign), and write the positives as the first positive
// wrapped around the doubled remainder, or simply doubled when alone.
//
// The two directions are mutually inverse on reduced representations.
//
// Errors:
//
//   - ErrNotStirling: input is not a Stirling permutation on [n]_2.
//   - ErrNotFlattened: input is Stirling but not flattened.
//   - ErrMalformedReduced: a reduced block is empty or has no positive part.
package bijection
