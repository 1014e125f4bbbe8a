// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package lex

import "github.com/mlml/mlml/pkg/util/source"

// Token associates a kind with a given range of characters in the text being
// tokenized.
type Token struct {
	Kind uint
	Span source.Span
}

// Rule associates the characters matched by a scanner with a given kind of
// token.  Characters matched by a skip rule produce no token at all.
type Rule struct {
	scanner Scanner
	kind    uint
	skip    bool
}

// Match constructs a rule which turns matching characters into a token of the
// given kind.
func Match(scanner Scanner, kind uint) Rule {
	return Rule{scanner, kind, false}
}

// Skip constructs a rule which discards matching characters (e.g.
// whitespace).
func Skip(scanner Scanner) Rule {
	return Rule{scanner, 0, true}
}

// Lexer turns text into tokens.  Rules are tried in order, and the first rule
// which matches wins.  A character which no rule matches becomes a
// single-character token of the unknown kind, so that a parser can report it.
type Lexer struct {
	rules   []Rule
	end     uint
	unknown uint
}

// NewLexer constructs a lexer from a given set of rules.  The end kind marks
// the (empty) token which always terminates the token stream.
func NewLexer(end uint, unknown uint, rules ...Rule) *Lexer {
	return &Lexer{rules, end, unknown}
}

// Tokenize the given text.  The result is never empty, since its last token is
// always the end token.
func (p *Lexer) Tokenize(text []rune) []Token {
	var (
		tokens []Token
		index  int
	)
	//
	for index < len(text) {
		kind, n, skip := p.match(text[index:])
		//
		if !skip {
			tokens = append(tokens, Token{kind, source.NewSpan(index, index+n)})
		}
		//
		index += n
	}
	//
	return append(tokens, Token{p.end, source.NewSpan(index, index)})
}

// Determine the kind and length of the token at the start of some non-empty
// text.
func (p *Lexer) match(text []rune) (uint, int, bool) {
	for _, r := range p.rules {
		if n := r.scanner(text); n > 0 {
			return r.kind, min(n, len(text)), r.skip
		}
	}
	//
	return p.unknown, 1, false
}
