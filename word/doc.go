// Package word models signed letters and the words built from them, and
// answers the two questions every other package in lvstirling asks of a
// sequence: where are its runs, and is it flattened?
//
// What:
//
//   - Letter[T]: a symbol of any ordered type paired with a sign.
//   - Compare / LessEq: the signed total order. All negative letters come
//     first, ordered by decreasing magnitude, then all positive letters,
//     ordered by increasing magnitude:
//     … < (-2) < (-1) < 1 < 2 < …
//   - Word[T]: an immutable sequence of letters with its run decomposition
//     computed once at construction.
//   - Runs: maximal weakly ascending contiguous sub-sequences.
//   - IsFlattened: the leading letters of the runs are themselves weakly
//     ascending.
//   - RunType: the sequence of run lengths.
//
// Rendering:
//
//   - A positive symbol renders bare ("a", "3").
//   - A negative symbol renders as "(-a)".
//   - A symbol whose rendering is longer than one rune is parenthesized
//     even when positive ("(12)"), so concatenated renderings stay
//     unambiguous.
//
// Complexity:
//
//   - New / Make:  Time O(L), Memory O(L)   (L = number of letters).
//   - IsFlattened: Time O(R)                (R = number of runs).
//   - RunType:     Time O(R), Memory O(R).
//
// Errors:
//
//   - None. The empty word has zero runs and is vacuously flattened.
package word
