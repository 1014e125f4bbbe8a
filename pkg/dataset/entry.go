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
package dataset

import (
	"hash/fnv"

	"github.com/mlml/mlml/pkg/logic"
)

// Entry is a candidate row of the dataset: an expression, an assignment of its
// variables and the result of evaluating one under the other.  Entries are
// immutable.
type Entry struct {
	expr   logic.Expr
	state  logic.Assignment
	result bool
}

// NewEntry evaluates an expression under a given assignment, producing an
// entry.
func NewEntry(expr logic.Expr, state logic.Assignment) Entry {
	return Entry{expr, state, logic.Evaluate(expr, state)}
}

// Expr returns the expression of this entry.
func (p Entry) Expr() logic.Expr {
	return p.expr
}

// State returns the assignment of this entry.
func (p Entry) State() logic.Assignment {
	return p.state
}

// Result returns the truth value of this entry's expression under its
// assignment.
func (p Entry) Result() bool {
	return p.result
}

// Complexity returns the complexity score of this entry's expression.
func (p Entry) Complexity() uint {
	return logic.Complexity(p.expr)
}

// Shape returns the shape of this entry's expression.
func (p Entry) Shape() logic.Shape {
	return logic.ToShape(p.expr)
}

// Encoding returns the canonical text of this entry (without the result).
func (p Entry) Encoding() string {
	return logic.Encode(p.expr, p.state)
}

// Equals checks whether two entries have structurally identical expressions,
// identical assignments and the same result.
func (p Entry) Equals(other Entry) bool {
	return p.result == other.result && p.state.Equals(other.state) && logic.Equal(p.expr, other.expr)
}

// Hash returns a 64-bit FNV-1a hashcode for this entry.
func (p Entry) Hash() uint64 {
	hash := fnv.New64a()
	hash.Write([]byte(p.Encoding()))
	//
	if p.result {
		hash.Write([]byte{1})
	} else {
		hash.Write([]byte{0})
	}
	//
	return hash.Sum64()
}

func (p Entry) String() string {
	if p.result {
		return p.Encoding() + " = true"
	}
	//
	return p.Encoding() + " = false"
}
