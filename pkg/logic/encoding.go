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
	"strings"
	"unicode/utf8"
)

// ErrMalformedEncoding signals that a piece of text does not follow the
// "[assignment] expression" encoding.
var ErrMalformedEncoding = errors.New("malformed encoding")

// Encode produces the canonical text consumed by downstream tokenizers: the
// assignment in square brackets followed by the expression, for example
// "[a, c: true; b: false] ((a ∧ b) ∨ c)".
func Encode(e Expr, state Assignment) string {
	return fmt.Sprintf("[%s] %s", state.String(), Print(e))
}

// Decode is the inverse of Encode.  The decoded assignment must bind exactly
// the variables of the decoded expression.
func Decode(text string) (Expr, Assignment, error) {
	var empty Assignment
	//
	text = strings.TrimSpace(text)
	//
	if !strings.HasPrefix(text, "[") {
		return nil, empty, fmt.Errorf("%w: expected '['", ErrMalformedEncoding)
	}
	//
	end := strings.IndexRune(text, ']')
	if end < 0 {
		return nil, empty, fmt.Errorf("%w: expected ']'", ErrMalformedEncoding)
	}
	//
	state, err := decodeAssignment(text[1:end])
	if err != nil {
		return nil, empty, err
	}
	//
	expr, err := Parse(text[end+1:])
	if err != nil {
		return nil, empty, err
	}
	// Sanity check coverage
	if err := Covers(expr, state); err != nil {
		return nil, empty, fmt.Errorf("%w: %s", ErrMalformedEncoding, err.Error())
	} else if n := len(Variables(expr)); n != state.Len() {
		return nil, empty, fmt.Errorf("%w: %d variables assigned, %d used", ErrMalformedEncoding, state.Len(), n)
	}
	//
	return expr, state, nil
}

func decodeAssignment(text string) (Assignment, error) {
	var bindings []Binding
	//
	for _, group := range strings.Split(text, ";") {
		symbols, value, ok := strings.Cut(group, ":")
		if !ok {
			return Assignment{}, fmt.Errorf("%w: expected ':' in \"%s\"", ErrMalformedEncoding, group)
		}
		//
		var truth bool
		//
		switch strings.TrimSpace(value) {
		case "true":
			truth = true
		case "false":
			truth = false
		default:
			return Assignment{}, fmt.Errorf("%w: unknown truth value \"%s\"", ErrMalformedEncoding, value)
		}
		//
		for _, symbol := range strings.Split(symbols, ",") {
			symbol = strings.TrimSpace(symbol)
			//
			if utf8.RuneCountInString(symbol) != 1 {
				return Assignment{}, fmt.Errorf("%w: invalid variable \"%s\"", ErrMalformedEncoding, symbol)
			}
			//
			r, _ := utf8.DecodeRuneInString(symbol)
			bindings = append(bindings, Binding{r, truth})
		}
	}
	//
	state, err := NewAssignment(bindings...)
	if err != nil {
		return Assignment{}, fmt.Errorf("%w: %s", ErrMalformedEncoding, err.Error())
	}
	//
	return state, nil
}
