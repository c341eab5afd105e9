// Package lvstirling is an in-memory toolkit for Stirling permutations on
// the doubled alphabet [n]_2 = {1,1,2,2,…,n,n}, their flattened subset, and
// the Type-B set partitions of {-n,…,n} they are in bijection with.
//
// What:
//
//   - word/      signed letters, their total order, runs and flatness
//   - stirling/  exhaustive (balanced-parenthesis) and direct
//     (insertion-point) generators, k-Stirling variant, grouping helpers
//   - typeb/     Type-B partition enumerator and reduced representation
//   - bijection/ flattened Stirling permutation ⇄ reduced Type-B partition
//   - notation/  parser for the textual rendering ("1(10)(10)1", "0|(-2)1")
//
// Quick example:
//
//	113322  →  blocks {0} | {-2,1}  →  {0} {-2,1}/{2,-1}  →  113322
//
// Everything is pure, single-threaded and held in memory; level sizes grow
// super-exponentially, so the generators also expose level iterators that a
// caller can abandon early.
//
//	go get github.com/katalvlaran/lvstirling
package lvstirling
