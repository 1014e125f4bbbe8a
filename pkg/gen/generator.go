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
package gen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/mlml/mlml/pkg/logic"
)

// Generator synthesises random expressions whose depth and number of distinct
// variables are bounded.
type Generator struct {
	maxDepth     uint
	maxVariables uint
	dist         Distribution
}

// NewGenerator constructs a generator for expressions with Depth() at most
// maxDepth, referencing at most maxVariables distinct variables.
func NewGenerator(maxDepth uint, maxVariables uint, weights Weights) (*Generator, error) {
	if maxVariables == 0 {
		return nil, errors.New("at least one variable is required")
	}
	//
	dist, err := NewDistribution(weights)
	if err != nil {
		return nil, err
	}
	//
	return &Generator{maxDepth, maxVariables, dist}, nil
}

// MaxDepth returns the depth bound of generated expressions.
func (g *Generator) MaxDepth() uint {
	return g.maxDepth
}

// MaxVariables returns the bound on distinct variables of generated
// expressions.
func (g *Generator) MaxVariables() uint {
	return g.maxVariables
}

// CheckAlphabet determines whether a given alphabet is suitable for this
// generator.  It must contain at least MaxVariables() symbols, and no symbol
// twice.
func (g *Generator) CheckAlphabet(alphabet []rune) error {
	if uint(len(alphabet)) < g.maxVariables {
		return fmt.Errorf("alphabet \"%s\" has fewer than %d symbols", string(alphabet), g.maxVariables)
	}
	//
	sorted := slices.Clone(alphabet)
	slices.Sort(sorted)
	//
	if len(slices.Compact(sorted)) != len(alphabet) {
		return fmt.Errorf("alphabet \"%s\" contains duplicate symbols", string(alphabet))
	}
	//
	return nil
}

// Generate synthesises a random expression over the given alphabet.  At each
// node either a variable is emitted (when the depth budget is exhausted, or
// the VAR production is drawn) or the drawn connective is applied to
// recursively generated operands.  The remaining depth budget is split such
// that the final expression never exceeds the maximum depth.
func (g *Generator) Generate(alphabet []rune, rng *rand.Rand) (logic.Expr, error) {
	if err := g.CheckAlphabet(alphabet); err != nil {
		return nil, err
	}
	//
	draw := &generation{g, alphabet, rng, nil}
	expr, _ := draw.expr(g.maxDepth)
	//
	return expr, nil
}

// generation holds the state of a single call to Generate.
type generation struct {
	*Generator
	alphabet []rune
	rng      *rand.Rand
	// symbols used so far, in order of first use
	used []rune
}

// Generate an expression whose depth is at most budget, returning it along
// with its actual depth.
func (p *generation) expr(budget uint) (logic.Expr, uint) {
	if budget == 0 {
		return p.variable(), 0
	}
	//
	switch production := p.dist.Sample(p.rng); production {
	case VAR:
		return p.variable(), 0
	case NOT:
		operand, depth := p.expr(budget - 1)
		return logic.NewNot(operand), depth + 1
	default:
		// Depth of a binary node is one more than the sum of its operands'
		// depths, so the right operand gets whatever the left leaves over.
		lhs, ldepth := p.expr(budget - 1)
		rhs, rdepth := p.expr(budget - 1 - ldepth)
		//
		return logic.NewBinaryOp(connective(production), lhs, rhs), 1 + ldepth + rdepth
	}
}

// Select a variable, preferring fresh symbols until the variable budget is
// exhausted.
func (p *generation) variable() logic.Expr {
	if uint(len(p.used)) < p.maxVariables {
		var fresh []rune
		//
		for _, s := range p.alphabet {
			if !slices.Contains(p.used, s) {
				fresh = append(fresh, s)
			}
		}
		//
		symbol := fresh[p.rng.IntN(len(fresh))]
		p.used = append(p.used, symbol)
		//
		return logic.NewVar(symbol)
	}
	//
	return logic.NewVar(p.used[p.rng.IntN(len(p.used))])
}

func connective(p Production) logic.Connective {
	switch p {
	case AND:
		return logic.AND
	case OR:
		return logic.OR
	case IMPLIES:
		return logic.IMPLIES
	case EQUIVALENT:
		return logic.EQUIVALENT
	}
	//
	panic(fmt.Sprintf("production %s is not a connective", p))
}
