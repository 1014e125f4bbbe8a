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

import "strings"

// NOT_SYMBOL is the prefix symbol used for negation.
const NOT_SYMBOL = '¬'

// Print returns the canonical text of an expression.  Every binary operation
// is printed fully parenthesised, hence no operator precedence is required to
// read it back.
func Print(e Expr) string {
	var builder strings.Builder
	//
	printExpr(&builder, e)
	//
	return builder.String()
}

func printExpr(builder *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *Var:
		builder.WriteRune(e.Symbol)
	case *Not:
		builder.WriteRune(NOT_SYMBOL)
		printExpr(builder, e.Operand)
	case *BinaryOp:
		builder.WriteString("(")
		printExpr(builder, e.Left)
		builder.WriteString(" ")
		builder.WriteRune(e.Kind.Symbol())
		builder.WriteString(" ")
		printExpr(builder, e.Right)
		builder.WriteString(")")
	default:
		panic("unknown expression")
	}
}
