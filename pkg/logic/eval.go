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
)

// MissingVariableError is raised (as a panic) when an expression is evaluated
// under an assignment which does not cover one of its variables.  In a
// correctly wired pipeline this cannot happen, since states are sampled from
// the expression being evaluated.
type MissingVariableError struct {
	Symbol rune
}

func (p *MissingVariableError) Error() string {
	return fmt.Sprintf("variable %c is not assigned", p.Symbol)
}

// Evaluate an expression under a given assignment.  The assignment must bind
// every variable referenced by the expression, otherwise this panics with a
// *MissingVariableError.
func Evaluate(e Expr, state Assignment) bool {
	switch e := e.(type) {
	case *Var:
		value, ok := state.Lookup(e.Symbol)
		if !ok {
			panic(&MissingVariableError{e.Symbol})
		}
		//
		return value
	case *Not:
		return !Evaluate(e.Operand, state)
	case *BinaryOp:
		l := Evaluate(e.Left, state)
		r := Evaluate(e.Right, state)
		//
		switch e.Kind {
		case AND:
			return l && r
		case OR:
			return l || r
		case IMPLIES:
			return !l || r
		case EQUIVALENT:
			return l == r
		}
	}
	//
	panic("unknown expression")
}

// Covers checks that an assignment binds every variable of an expression,
// returning a *MissingVariableError for the first which is not.
func Covers(e Expr, state Assignment) error {
	for _, v := range Variables(e) {
		if _, ok := state.Lookup(v); !ok {
			return &MissingVariableError{v}
		}
	}
	//
	return nil
}
