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
package logic

import (
	"errors"
	"fmt"
	"slices"
	"unicode"

	"github.com/mlml/mlml/pkg/util/source"
	"github.com/mlml/mlml/pkg/util/source/lex"
)

// ErrUnknownOperator signals that something other than a binary connective was
// found in operator position.
var ErrUnknownOperator = errors.New("unknown operator")

// ErrUnexpectedEnd signals that the input ended before the expression was
// complete.
var ErrUnexpectedEnd = errors.New("unexpected end of input")

// ErrTokenMismatch signals that a specific token was expected (e.g. a closing
// brace) but something else was found.
var ErrTokenMismatch = errors.New("unexpected token")

// ErrTrailingInput signals that text remains after a complete expression.
var ErrTrailingInput = errors.New("trailing input")

// Parse a given input string into an expression.  This is the inverse of Print,
// though whitespace is permitted anywhere between tokens and a few ASCII
// spellings of the connectives are also accepted.  Any error returned is a
// *source.SyntaxError wrapping one of ErrUnknownOperator, ErrUnexpectedEnd,
// ErrTokenMismatch or ErrTrailingInput.
func Parse(input string) (Expr, error) {
	expr, err := ParseFile(source.NewSourceFile("expr", []byte(input)))
	// Avoid returning a typed nil inside the error interface.
	if err != nil {
		return nil, err
	}
	//
	return expr, nil
}

// MustParse parses a given input string, panicking on failure.  This is
// intended for literals and tests.
func MustParse(input string) Expr {
	expr, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("invalid expression \"%s\": %s", input, err.Error()))
	}
	//
	return expr
}

// ParseFile parses the contents of a given source file into an expression.
func ParseFile(srcfile *source.File) (Expr, *source.SyntaxError) {
	parser := &Parser{srcfile, lexer.Tokenize(srcfile.Contents()), 0}
	// Parse expression
	expr, err := parser.parseExpr()
	// Check all parsed
	if err == nil && !parser.follows(END_OF) {
		return nil, parser.syntaxError(parser.lookahead(), ErrTrailingInput, "unexpected text after expression")
	}
	//
	return expr, err
}

// END_OF signals "end of file"
const END_OF uint = 0

// LBRACE signals "left brace"
const LBRACE uint = 1

// RBRACE signals "right brace"
const RBRACE uint = 2

// NOT signals logical negation
const NOT uint = 3

// CONJ represents logical conjunction
const CONJ uint = 4

// DISJ represents logical disjunction
const DISJ uint = 5

// IMPL represents implication
const IMPL uint = 6

// EQUIV represents equivalence
const EQUIV uint = 7

// VARIABLE signals a single-letter variable.
const VARIABLE uint = 8

// UNKNOWN signals any other character.
const UNKNOWN uint = 9

// CONNECTIVES captures the set of binary connectives.
var CONNECTIVES = []uint{CONJ, DISJ, IMPL, EQUIV}

// Each connective has its printed symbol plus an ASCII spelling.  Equivalence
// is matched before implication, since "<->" contains "->".
var lexer = lex.NewLexer(END_OF, UNKNOWN,
	lex.Match(lex.Char('('), LBRACE),
	lex.Match(lex.Char(')'), RBRACE),
	lex.Match(lex.Char(NOT_SYMBOL, '!'), NOT),
	lex.Match(lex.Char(AND.Symbol(), '&'), CONJ),
	lex.Match(lex.Char(OR.Symbol(), '|'), DISJ),
	lex.Match(lex.First(lex.Char(EQUIVALENT.Symbol()), lex.Word("<->")), EQUIV),
	lex.Match(lex.First(lex.Char(IMPLIES.Symbol()), lex.Word("->")), IMPL),
	lex.Skip(lex.While(unicode.IsSpace)),
	lex.Match(lex.Satisfies(unicode.IsLetter), VARIABLE),
)

// Parser is a recursive-descent parser for propositional expressions over a
// stream of tokens.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

func (p *Parser) parseExpr() (Expr, *source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case LBRACE:
		return p.parseBinary()
	case NOT:
		p.expect(NOT)
		//
		operand, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		//
		return NewNot(operand), nil
	case VARIABLE:
		p.expect(VARIABLE)
		//
		return NewVar(p.srcfile.Contents()[token.Span.Start()]), nil
	case END_OF:
		return nil, p.syntaxError(token, ErrUnexpectedEnd, "expected variable, '(' or '¬'")
	}
	//
	return nil, p.syntaxError(token, ErrTokenMismatch,
		fmt.Sprintf("expected variable, '(' or '¬', got '%s'", p.string(token)))
}

func (p *Parser) parseBinary() (Expr, *source.SyntaxError) {
	p.expect(LBRACE)
	//
	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	// Parse operator
	token := p.lookahead()
	//
	if token.Kind == END_OF {
		return nil, p.syntaxError(token, ErrUnexpectedEnd, "expected operator")
	} else if !p.follows(CONNECTIVES...) {
		return nil, p.syntaxError(token, ErrUnknownOperator, fmt.Sprintf("unknown operator '%s'", p.string(token)))
	}
	//
	p.expect(token.Kind)
	//
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	// Match closing brace
	if closing := p.lookahead(); closing.Kind == END_OF {
		return nil, p.syntaxError(closing, ErrUnexpectedEnd, "expected ')'")
	} else if !p.match(RBRACE) {
		return nil, p.syntaxError(closing, ErrTokenMismatch, fmt.Sprintf("expected ')', got '%s'", p.string(closing)))
	}
	//
	return NewBinaryOp(connectiveOf(token.Kind), lhs, rhs), nil
}

func connectiveOf(kind uint) Connective {
	switch kind {
	case CONJ:
		return AND
	case DISJ:
		return OR
	case IMPL:
		return IMPLIES
	case EQUIV:
		return EQUIVALENT
	}
	//
	panic("internal failure")
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxError(token lex.Token, kind error, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(token.Span, kind, msg)
}
