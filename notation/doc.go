// Package notation parses the textual rendering used across lvstirling back
// into structured values.
//
// Grammar:
//
//	symbol      = digit | "(" ["-"] digits ")"
//	permutation = symbol*
//	reduced     = block ("|" block)*
//	block       = symbol+
//
// A single digit stands bare; anything else is parenthesized, so "1(10)(10)1"
// is the permutation 1 10 10 1 and "0|(-2)1" is the reduced representation
// {0} {-2,1}. Whitespace between symbols is ignored.
//
// Errors:
//
//   - ErrSyntax wraps every parse failure.
package notation
