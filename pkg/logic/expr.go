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

import "slices"

// Expr represents a propositional formula.  An expression is one of: a
// variable (Var), a negation (Not) or a binary connective (BinaryOp).
// Expressions are immutable trees where every node is owned by exactly one
// parent.
type Expr interface {
	// String returns the canonical text of this expression.
	String() string
	// marker to close the set of expression forms.
	isExpr()
}

// Connective identifies the kind of a binary operation.
type Connective uint8

const (
	// AND represents logical conjunction
	AND Connective = iota
	// OR represents logical disjunction
	OR
	// IMPLIES represents (material) implication
	IMPLIES
	// EQUIVALENT represents logical equivalence
	EQUIVALENT
)

// Connectives lists every binary connective, in a fixed order.
var Connectives = []Connective{AND, OR, IMPLIES, EQUIVALENT}

// Symbol returns the operator symbol used when printing this connective.
func (c Connective) Symbol() rune {
	switch c {
	case AND:
		return '∧'
	case OR:
		return '∨'
	case IMPLIES:
		return '→'
	case EQUIVALENT:
		return '↔'
	}
	//
	panic("unknown connective")
}

func (c Connective) String() string {
	switch c {
	case AND:
		return "and"
	case OR:
		return "or"
	case IMPLIES:
		return "implies"
	case EQUIVALENT:
		return "equivalent"
	}
	//
	return "unknown"
}

// Var is a propositional variable, identified by a single symbol.
type Var struct {
	Symbol rune
}

// Not is the logical negation of its operand.
type Not struct {
	Operand Expr
}

// BinaryOp combines two operands with a binary connective.
type BinaryOp struct {
	Kind  Connective
	Left  Expr
	Right Expr
}

func (*Var) isExpr()      {}
func (*Not) isExpr()      {}
func (*BinaryOp) isExpr() {}

func (e *Var) String() string      { return Print(e) }
func (e *Not) String() string      { return Print(e) }
func (e *BinaryOp) String() string { return Print(e) }

// NewVar constructs a variable.
func NewVar(symbol rune) *Var {
	return &Var{symbol}
}

// NewNot constructs the negation of a given expression.
func NewNot(operand Expr) *Not {
	return &Not{operand}
}

// NewBinaryOp constructs a binary operation of the given kind.
func NewBinaryOp(kind Connective, left Expr, right Expr) *BinaryOp {
	return &BinaryOp{kind, left, right}
}

// And constructs the conjunction of two expressions.
func And(left Expr, right Expr) *BinaryOp {
	return NewBinaryOp(AND, left, right)
}

// Or constructs the disjunction of two expressions.
func Or(left Expr, right Expr) *BinaryOp {
	return NewBinaryOp(OR, left, right)
}

// Implies constructs the implication "left → right".
func Implies(left Expr, right Expr) *BinaryOp {
	return NewBinaryOp(IMPLIES, left, right)
}

// Equivalent constructs the equivalence "left ↔ right".
func Equivalent(left Expr, right Expr) *BinaryOp {
	return NewBinaryOp(EQUIVALENT, left, right)
}

// Depth of an expression.  A variable has depth 0, a negation adds one to the
// depth of its operand, and a binary operation has depth one more than the
// *sum* of its operands' depths.
func Depth(e Expr) uint {
	switch e := e.(type) {
	case *Var:
		return 0
	case *Not:
		return 1 + Depth(e.Operand)
	case *BinaryOp:
		return 1 + Depth(e.Left) + Depth(e.Right)
	}
	//
	panic("unknown expression")
}

// VarOccurrences counts the variable leaves of an expression.  Repeated
// occurrences of the same symbol are each counted.
func VarOccurrences(e Expr) uint {
	switch e := e.(type) {
	case *Var:
		return 1
	case *Not:
		return VarOccurrences(e.Operand)
	case *BinaryOp:
		return VarOccurrences(e.Left) + VarOccurrences(e.Right)
	}
	//
	panic("unknown expression")
}

// Complexity is a scalar proxy for the difficulty of an expression, computed
// as VarOccurrences(e) + 2*Depth(e).  Note that this counts variable leaves,
// not distinct variables.
func Complexity(e Expr) uint {
	return VarOccurrences(e) + 2*Depth(e)
}

// Variables returns the distinct variable symbols of an expression, in the
// order they are first encountered during a left-to-right traversal.
func Variables(e Expr) []rune {
	return variables(e, nil)
}

func variables(e Expr, vars []rune) []rune {
	switch e := e.(type) {
	case *Var:
		if !slices.Contains(vars, e.Symbol) {
			vars = append(vars, e.Symbol)
		}

		return vars
	case *Not:
		return variables(e.Operand, vars)
	case *BinaryOp:
		return variables(e.Right, variables(e.Left, vars))
	}
	//
	panic("unknown expression")
}

// Equal checks whether two expressions are structurally identical.
func Equal(lhs Expr, rhs Expr) bool {
	switch l := lhs.(type) {
	case *Var:
		r, ok := rhs.(*Var)
		return ok && l.Symbol == r.Symbol
	case *Not:
		r, ok := rhs.(*Not)
		return ok && Equal(l.Operand, r.Operand)
	case *BinaryOp:
		r, ok := rhs.(*BinaryOp)
		return ok && l.Kind == r.Kind && Equal(l.Left, r.Left) && Equal(l.Right, r.Right)
	}
	//
	return false
}
