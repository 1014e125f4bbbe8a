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

import "hash/fnv"

// SHAPE_MARKER is the anonymous symbol which replaces every variable within a
// shape.
const SHAPE_MARKER = '_'

// Shape is an expression with variable identities erased, such that only the
// connectives and the topology of the tree remain.  For example, "(a ∧ ¬b)"
// and "(c ∧ ¬c)" have the same shape "(_ ∧ ¬_)".
type Shape struct {
	expr Expr
}

// ToShape erases the variable identities of an expression.
func ToShape(e Expr) Shape {
	return Shape{erase(e)}
}

func erase(e Expr) Expr {
	switch e := e.(type) {
	case *Var:
		return NewVar(SHAPE_MARKER)
	case *Not:
		return NewNot(erase(e.Operand))
	case *BinaryOp:
		return NewBinaryOp(e.Kind, erase(e.Left), erase(e.Right))
	}
	//
	panic("unknown expression")
}

// Equals checks whether two shapes are identical.
func (p Shape) Equals(other Shape) bool {
	return Equal(p.expr, other.expr)
}

// Hash returns a 64-bit FNV-1a hashcode for this shape.
func (p Shape) Hash() uint64 {
	hash := fnv.New64a()
	hash.Write([]byte(p.String()))
	//
	return hash.Sum64()
}

func (p Shape) String() string {
	return Print(p.expr)
}
