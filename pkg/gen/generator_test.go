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
	"math/rand/v2"
	"testing"

	"github.com/mlml/mlml/pkg/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Generate_01(t *testing.T) {
	checkGenerator(t, "ab", 0, 1, Uniform())
}

func Test_Generate_02(t *testing.T) {
	checkGenerator(t, "ab", 2, 2, Uniform())
}

func Test_Generate_03(t *testing.T) {
	checkGenerator(t, "abcde", 2, 5, Uniform())
}

func Test_Generate_04(t *testing.T) {
	checkGenerator(t, "abcdefghij", 6, 3, Uniform())
}

func Test_Generate_05(t *testing.T) {
	// No variables unless forced by the depth budget
	checkGenerator(t, "pqrst", 5, 5, Weights{0, 1, 1, 1, 1, 1})
}

func Test_Generate_06(t *testing.T) {
	checkGenerator(t, "xyz", 8, 1, Weights{Not: 1, Implies: 2})
}

func Test_Generate_07(t *testing.T) {
	// only variables
	checkGenerator(t, "abc", 4, 2, Weights{Var: 1})
}

func Test_Generate_Exhausts(t *testing.T) {
	// With no variable production, the depth budget is always used up.
	var (
		gen, _ = NewGenerator(4, 4, Weights{Not: 1})
		rng    = rand.New(rand.NewPCG(1, 1))
	)
	//
	e, err := gen.Generate([]rune("abcd"), rng)
	require.NoError(t, err)
	assert.Equal(t, uint(4), logic.Depth(e))
}

func Test_Generate_Reproducible(t *testing.T) {
	var (
		gen, _ = NewGenerator(5, 3, Uniform())
		left   = rand.New(rand.NewPCG(11, 13))
		right  = rand.New(rand.NewPCG(11, 13))
	)
	//
	for range 100 {
		l, err := gen.Generate([]rune("abcdef"), left)
		require.NoError(t, err)
		r, err := gen.Generate([]rune("abcdef"), right)
		require.NoError(t, err)
		assert.True(t, logic.Equal(l, r))
	}
}

func Test_Generate_FreshFirst(t *testing.T) {
	// A single leaf with a budget of one variable must use a fresh symbol, so
	// every alphabet symbol is eventually produced.
	var (
		gen, _ = NewGenerator(0, 1, Uniform())
		rng    = rand.New(rand.NewPCG(2, 3))
		seen   = make(map[rune]bool)
	)
	//
	for range 200 {
		e, err := gen.Generate([]rune("abc"), rng)
		require.NoError(t, err)
		seen[e.(*logic.Var).Symbol] = true
	}
	//
	assert.Len(t, seen, 3)
}

func Test_Generate_BadAlphabet(t *testing.T) {
	gen, err := NewGenerator(2, 3, Uniform())
	require.NoError(t, err)
	//
	_, err = gen.Generate([]rune("ab"), rand.New(rand.NewPCG(1, 1)))
	assert.Error(t, err)
	_, err = gen.Generate([]rune("aab"), rand.New(rand.NewPCG(1, 1)))
	assert.Error(t, err)
}

func Test_NewGenerator_Invalid(t *testing.T) {
	_, err := NewGenerator(2, 0, Uniform())
	assert.Error(t, err)
	_, err = NewGenerator(2, 2, Weights{})
	assert.Error(t, err)
	_, err = NewGenerator(2, 2, Weights{Var: -1, Not: 2})
	assert.Error(t, err)
}

func Test_Distribution_01(t *testing.T) {
	dist, err := NewDistribution(Weights{Var: 1, Not: 3})
	require.NoError(t, err)
	//
	assert.InDelta(t, 0.25, dist.Probability(VAR), 1e-9)
	assert.InDelta(t, 0.75, dist.Probability(NOT), 1e-9)
	assert.InDelta(t, 0.0, dist.Probability(AND), 1e-9)
	assert.InDelta(t, 0.0, dist.Probability(EQUIVALENT), 1e-9)
}

func Test_Distribution_02(t *testing.T) {
	var (
		dist, _ = NewDistribution(Weights{Var: 1, And: 1, Equivalent: 2})
		rng     = rand.New(rand.NewPCG(5, 8))
		counts  = make(map[Production]int)
	)
	//
	for range 4000 {
		counts[dist.Sample(rng)]++
	}
	// zero weights are never drawn
	assert.Zero(t, counts[NOT])
	assert.Zero(t, counts[OR])
	assert.Zero(t, counts[IMPLIES])
	// loose frequency checks
	assert.InDelta(t, 1000, counts[VAR], 200)
	assert.InDelta(t, 1000, counts[AND], 200)
	assert.InDelta(t, 2000, counts[EQUIVALENT], 200)
}

// ============================================================================
// Framework
// ============================================================================

func checkGenerator(t *testing.T, alphabet string, maxDepth uint, maxVariables uint, weights Weights) {
	gen, err := NewGenerator(maxDepth, maxVariables, weights)
	require.NoError(t, err)
	//
	for seed := range uint64(8) {
		rng := rand.New(rand.NewPCG(seed, 17))
		//
		for range 250 {
			e, err := gen.Generate([]rune(alphabet), rng)
			require.NoError(t, err)
			// depth bound
			require.LessOrEqual(t, logic.Depth(e), maxDepth, "depth of %s", e)
			// variable bound
			vars := logic.Variables(e)
			require.LessOrEqual(t, uint(len(vars)), maxVariables, "variables of %s", e)
			// variables drawn from alphabet
			for _, v := range vars {
				require.Contains(t, []rune(alphabet), v)
			}
			// round trip
			parsed, err := logic.Parse(e.String())
			require.NoError(t, err)
			require.True(t, logic.Equal(e, parsed), "round trip of %s", e)
		}
	}
}
