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
	"math"
	"math/rand/v2"
)

// Production identifies one generation choice made at a node of an expression
// being synthesised.
type Production uint8

const (
	// VAR emits a variable leaf
	VAR Production = iota
	// NOT emits a negation
	NOT
	// AND emits a conjunction
	AND
	// OR emits a disjunction
	OR
	// IMPLIES emits an implication
	IMPLIES
	// EQUIVALENT emits an equivalence
	EQUIVALENT
)

// Productions lists every production, in a fixed order.
var Productions = []Production{VAR, NOT, AND, OR, IMPLIES, EQUIVALENT}

func (p Production) String() string {
	switch p {
	case VAR:
		return "var"
	case NOT:
		return "not"
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

// Weights gives the relative likelihood of each production.  Weights need not
// sum to one, but must be non-negative with a positive total.
type Weights struct {
	Var        float64 `yaml:"var" validate:"gte=0"`
	Not        float64 `yaml:"not" validate:"gte=0"`
	And        float64 `yaml:"and" validate:"gte=0"`
	Or         float64 `yaml:"or" validate:"gte=0"`
	Implies    float64 `yaml:"implies" validate:"gte=0"`
	Equivalent float64 `yaml:"equivalent" validate:"gte=0"`
}

// Uniform returns weights under which every production is equally likely.
func Uniform() Weights {
	return Weights{1, 1, 1, 1, 1, 1}
}

// Of returns the weight of a given production.
func (w Weights) Of(p Production) float64 {
	switch p {
	case VAR:
		return w.Var
	case NOT:
		return w.Not
	case AND:
		return w.And
	case OR:
		return w.Or
	case IMPLIES:
		return w.Implies
	case EQUIVALENT:
		return w.Equivalent
	}
	//
	panic("unknown production")
}

// Distribution is a discrete distribution over productions.
type Distribution struct {
	// cumulative[i] holds the total (normalised) weight of productions 0..i
	cumulative []float64
}

// NewDistribution constructs a distribution from a given set of weights.
func NewDistribution(weights Weights) (Distribution, error) {
	var (
		total      float64
		cumulative = make([]float64, len(Productions))
	)
	//
	for i, p := range Productions {
		w := weights.Of(p)
		//
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return Distribution{}, fmt.Errorf("invalid weight %v for production %s", w, p)
		}
		//
		total += w
		cumulative[i] = total
	}
	//
	if total <= 0 {
		return Distribution{}, errors.New("production weights must have a positive total")
	}
	// Normalise
	for i := range cumulative {
		cumulative[i] /= total
	}
	//
	return Distribution{cumulative}, nil
}

// Sample a production from this distribution.
func (p Distribution) Sample(rng *rand.Rand) Production {
	n := rng.Float64()
	//
	// The first boundary above n always belongs to a production with a
	// non-zero weight.
	for i, cum := range p.cumulative {
		if n < cum {
			return Productions[i]
		}
	}
	// Rounding can leave the final boundary fractionally below one, so
	// fall back on the last production with a non-zero weight.
	for i := len(p.cumulative) - 1; i > 0; i-- {
		if p.cumulative[i] > p.cumulative[i-1] {
			return Productions[i]
		}
	}
	//
	return Productions[0]
}

// Probability returns the (normalised) probability of a given production.
func (p Distribution) Probability(production Production) float64 {
	i := int(production)
	//
	if i == 0 {
		return p.cumulative[0]
	}
	//
	return p.cumulative[i] - p.cumulative[i-1]
}
