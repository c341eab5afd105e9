// SPDX-License-Identifier: MIT
// Package: lvstirling/stirling
//
// parens.go - exhaustive Stirling generator via balanced parentheses.
//
// Every Stirling permutation on [n]_2 is a balanced parenthesis string of
// length 2n whose matched pairs carry the values 1..n, each pair nested
// inside a pair with a smaller value. All walks every string, builds its
// nesting tree with an explicit stack, and enumerates the legal value
// assignments by backtracking over the pairs in depth-first order.

package stirling

import (
	"fmt"
	"slices"
)

// ParenNode is one matched pair of a balanced parenthesis string.
// Open and Close are byte offsets into the string; Children are the pairs
// immediately nested inside it, left to right.
type ParenNode struct {
	Open     int
	Close    int
	Children []*ParenNode
}

// ParenPair is a matched pair in depth-first order. Parent is the index
// (in the same slice) of the immediately enclosing pair, or -1 at top level.
type ParenPair struct {
	Open   int
	Close  int
	Parent int
}

// BalancedParens returns every balanced parenthesis string of length 2n,
// in the order "(" before ")". For n = 0 it returns the empty string.
func BalancedParens(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("BalancedParens(%d): %w", n, ErrNegativeOrder)
	}

	return balanced(make([]byte, 0, 2*n), 0, n), nil
}

// balanced extends prefix given the number of currently open pairs and the
// number of "(" still to place. Each branch works on its own copy of prefix.
func balanced(prefix []byte, open, left int) []string {
	if open+left == 0 {
		return []string{string(prefix)}
	}

	var out []string
	if left > 0 {
		out = append(out, balanced(append(prefix[:len(prefix):len(prefix)], '('), open+1, left-1)...)
	}
	if open > 0 {
		out = append(out, balanced(append(prefix[:len(prefix):len(prefix)], ')'), open-1, left)...)
	}

	return out
}

// BuildParenTree parses a balanced parenthesis string into its forest of
// top-level pairs in one scan with an explicit stack.
// It panics if s contains any other byte or is not balanced; callers only
// pass strings produced by BalancedParens.
func BuildParenTree(s string) []*ParenNode {
	var roots []*ParenNode
	var stack []*ParenNode

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			node := &ParenNode{Open: i, Close: -1}
			if len(stack) == 0 {
				roots = append(roots, node)
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case ')':
			if len(stack) == 0 {
				panic(fmt.Sprintf("stirling: BuildParenTree(%q): unmatched ')' at %d", s, i))
			}
			stack[len(stack)-1].Close = i
			stack = stack[:len(stack)-1]
		default:
			panic(fmt.Sprintf("stirling: BuildParenTree(%q): unexpected byte %q at %d", s, s[i], i))
		}
	}
	if len(stack) != 0 {
		panic(fmt.Sprintf("stirling: BuildParenTree(%q): %d unmatched '('", s, len(stack)))
	}

	return roots
}

// FlattenTree lists the pairs of a parenthesis forest in depth-first
// pre-order, recording for each pair the index of its enclosing pair.
//
// Example: "(())()(())" → [(0,3,-1) (1,2,0) (4,5,-1) (6,9,-1) (7,8,3)].
func FlattenTree(roots []*ParenNode) []ParenPair {
	var pairs []ParenPair
	var walk func(nodes []*ParenNode, parent int)
	walk = func(nodes []*ParenNode, parent int) {
		for _, node := range nodes {
			pairs = append(pairs, ParenPair{Open: node.Open, Close: node.Close, Parent: parent})
			walk(node.Children, len(pairs)-1)
		}
	}
	walk(roots, -1)

	return pairs
}

// FillParens returns every Stirling permutation obtained by assigning the
// values 1..len(pairs) to the pairs so that a nested pair always exceeds its
// enclosing pair. pairs must be in depth-first pre-order (see FlattenTree)
// so a parent is always assigned before its children.
func FillParens(pairs []ParenPair) []Permutation {
	return fill(pairs, nil)
}

// fill assigns a value to pair len(assigned) and recurses. assigned[i] is
// the value chosen for pairs[i]; every branch receives a fresh slice.
func fill(pairs []ParenPair, assigned []int) []Permutation {
	pos := len(assigned)
	n := len(pairs)

	// 1) All pairs assigned: read the values back by position.
	if pos == n {
		perm := make(Permutation, 2*n)
		for i, pr := range pairs {
			perm[pr.Open] = assigned[i]
			perm[pr.Close] = assigned[i]
		}

		return []Permutation{perm}
	}

	// 2) A nested pair must exceed its parent's value.
	minimum := 0
	if parent := pairs[pos].Parent; parent >= 0 {
		minimum = assigned[parent]
	}

	// 3) Try every unused value above the minimum.
	var out []Permutation
	for v := minimum + 1; v <= n; v++ {
		if slices.Contains(assigned, v) {
			continue
		}
		next := append(assigned[:pos:pos], v)
		out = append(out, fill(pairs, next)...)
	}

	return out
}

// FromParens returns every Stirling permutation whose pair structure is the
// balanced string s. It panics if s is not balanced.
func FromParens(s string) []Permutation {
	return FillParens(FlattenTree(BuildParenTree(s)))
}

// All returns every Stirling permutation on [n]_2, flattened or not.
// There are (2n-1)!! of them; All(0) returns the single empty permutation.
//
// Complexity: exponential in n; intended for verification and small n.
func All(n int) ([]Permutation, error) {
	strs, err := BalancedParens(n)
	if err != nil {
		return nil, fmt.Errorf("All: %w", err)
	}

	var perms []Permutation
	for _, s := range strs {
		perms = append(perms, FromParens(s)...)
	}

	return perms, nil
}
