// SPDX-License-Identifier: MIT
// Package: lvstirling/notation
//
// notation.go - participle grammar for permutations and reduced blocks.

package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/lvstirling/stirling"
	"github.com/katalvlaran/lvstirling/typeb"
)

// ErrSyntax indicates input that does not follow the rendering grammar.
var ErrSyntax = errors.New("notation: syntax error")

//nolint:govet // participle grammar tags are not standard struct tags
type reducedGrammar struct {
	Blocks []*blockGrammar `parser:"@@ ( \"|\" @@ )*"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type blockGrammar struct {
	Symbols []*symbolGrammar `parser:"@@+"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type symbolGrammar struct {
	Group string `parser:"  @Group"`
	Digit string `parser:"| @Digit"`
}

// symbolLexer splits renderings into bare digits and parenthesized groups.
var symbolLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Group", Pattern: `\(-?[0-9]+\)`},
	{Name: "Digit", Pattern: `[0-9]`},
	{Name: "Bar", Pattern: `\|`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	reducedParser = participle.MustBuild[reducedGrammar](
		participle.Lexer(symbolLexer),
		participle.Elide("Whitespace"),
	)
	blockParser = participle.MustBuild[blockGrammar](
		participle.Lexer(symbolLexer),
		participle.Elide("Whitespace"),
	)
)

func (s *symbolGrammar) value() (int, error) {
	if s.Digit != "" {
		return strconv.Atoi(s.Digit)
	}

	return strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(s.Group, "("), ")"))
}

func (b *blockGrammar) values() ([]int, error) {
	out := make([]int, len(b.Symbols))
	for i, sym := range b.Symbols {
		v, err := sym.value()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// ParsePermutation parses a rendered permutation such as "1(10)(10)1".
// The empty string is the empty permutation. The result is not checked
// for being Stirling.
func ParsePermutation(s string) (stirling.Permutation, error) {
	if strings.TrimSpace(s) == "" {
		return stirling.Permutation{}, nil
	}

	parsed, err := blockParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("ParsePermutation(%q): %v: %w", s, err, ErrSyntax)
	}
	values, err := parsed.values()
	if err != nil {
		return nil, fmt.Errorf("ParsePermutation(%q): %v: %w", s, err, ErrSyntax)
	}

	return stirling.Permutation(values), nil
}

// ParseReduced parses rendered reduced blocks such as "0|(-2)1".
// The empty string yields no blocks.
func ParseReduced(s string) (typeb.ReducedBlocks, error) {
	if strings.TrimSpace(s) == "" {
		return typeb.ReducedBlocks{}, nil
	}

	parsed, err := reducedParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("ParseReduced(%q): %v: %w", s, err, ErrSyntax)
	}

	out := make(typeb.ReducedBlocks, len(parsed.Blocks))
	for i, b := range parsed.Blocks {
		values, err := b.values()
		if err != nil {
			return nil, fmt.Errorf("ParseReduced(%q): block %d: %v: %w", s, i, err, ErrSyntax)
		}
		out[i] = values
	}

	return out, nil
}
