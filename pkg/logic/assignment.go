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
	"fmt"
	"slices"
	"strings"
)

// Binding associates a variable symbol with a truth value.
type Binding struct {
	Symbol rune
	Value  bool
}

// Assignment maps variable symbols to truth values.  Bindings are kept sorted
// by symbol, and each symbol is bound at most once.  Assignments are immutable
// once constructed.
type Assignment struct {
	bindings []Binding
}

// NewAssignment constructs an assignment from a given set of bindings, which
// can be supplied in any order.  It is an error to bind the same symbol twice.
func NewAssignment(bindings ...Binding) (Assignment, error) {
	sorted := slices.Clone(bindings)
	slices.SortFunc(sorted, compareBindings)
	//
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Symbol == sorted[i].Symbol {
			return Assignment{}, fmt.Errorf("variable %c assigned more than once", sorted[i].Symbol)
		}
	}
	//
	return Assignment{sorted}, nil
}

// Len returns the number of variables bound by this assignment.
func (p Assignment) Len() int {
	return len(p.bindings)
}

// Bindings returns the bindings of this assignment, sorted by symbol.
func (p Assignment) Bindings() []Binding {
	return slices.Clone(p.bindings)
}

// Lookup the value bound to a given symbol.  The second result is false if
// the symbol is not bound.
func (p Assignment) Lookup(symbol rune) (bool, bool) {
	i, ok := slices.BinarySearchFunc(p.bindings, symbol, func(b Binding, s rune) int {
		return int(b.Symbol) - int(s)
	})
	//
	if !ok {
		return false, false
	}
	//
	return p.bindings[i].Value, true
}

// Equals checks whether two assignments bind exactly the same symbols to the
// same values.
func (p Assignment) Equals(other Assignment) bool {
	return slices.Equal(p.bindings, other.bindings)
}

// String returns the canonical text of this assignment, where variables are
// grouped by truth value (true first).  For example, "a, c: true; b: false".
// An empty group is omitted.
func (p Assignment) String() string {
	var (
		builder strings.Builder
		groups  []string
	)
	//
	for _, value := range []bool{true, false} {
		var symbols []string
		//
		for _, b := range p.bindings {
			if b.Value == value {
				symbols = append(symbols, string(b.Symbol))
			}
		}
		//
		if len(symbols) > 0 {
			groups = append(groups, fmt.Sprintf("%s: %t", strings.Join(symbols, ", "), value))
		}
	}
	//
	builder.WriteString(strings.Join(groups, "; "))
	//
	return builder.String()
}

// with returns an assignment extended with a new binding.  The symbol must not
// already be bound.
func (p Assignment) with(symbol rune, value bool) Assignment {
	i, ok := slices.BinarySearchFunc(p.bindings, symbol, func(b Binding, s rune) int {
		return int(b.Symbol) - int(s)
	})
	//
	if ok {
		panic(fmt.Sprintf("variable %c already bound", symbol))
	}
	//
	return Assignment{slices.Insert(slices.Clone(p.bindings), i, Binding{symbol, value})}
}

func compareBindings(lhs Binding, rhs Binding) int {
	return int(lhs.Symbol) - int(rhs.Symbol)
}
