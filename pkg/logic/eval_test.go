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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Eval_01(t *testing.T) {
	checkEval(t, "(a → b)", false, Binding{'a', true}, Binding{'b', false})
}

func Test_Eval_02(t *testing.T) {
	checkEval(t, "(a ↔ a)", true, Binding{'a', false})
}

func Test_Eval_03(t *testing.T) {
	checkEval(t, "¬a", false, Binding{'a', true})
}

func Test_Eval_04(t *testing.T) {
	checkTruthTable(t, "(a ∧ b)", false, false, false, true)
}

func Test_Eval_05(t *testing.T) {
	checkTruthTable(t, "(a ∨ b)", false, true, true, true)
}

func Test_Eval_06(t *testing.T) {
	checkTruthTable(t, "(a → b)", true, true, false, true)
}

func Test_Eval_07(t *testing.T) {
	checkTruthTable(t, "(a ↔ b)", true, false, false, true)
}

func Test_Eval_08(t *testing.T) {
	checkTruthTable(t, "¬(¬a ∨ ¬b)", false, false, false, true)
}

func Test_Eval_09(t *testing.T) {
	// extra bindings are harmless
	checkEval(t, "(a ∧ b)", true, Binding{'a', true}, Binding{'b', true}, Binding{'c', false})
}

func Test_Eval_MissingVariable(t *testing.T) {
	var (
		e        = MustParse("(a ∨ b)")
		state, _ = NewAssignment(Binding{'b', true})
	)
	// Left-hand side is evaluated first, so "a" is reported.
	assert.PanicsWithError(t, "variable a is not assigned", func() {
		Evaluate(e, state)
	})
	//
	err := Covers(e, state)
	require.Error(t, err)
	assert.Equal(t, 'a', err.(*MissingVariableError).Symbol)
}

func Test_Eval_Covers(t *testing.T) {
	state, err := NewAssignment(Binding{'b', true}, Binding{'a', false})
	require.NoError(t, err)
	assert.NoError(t, Covers(MustParse("(a ∨ ¬b)"), state))
}

func Test_Assignment_Duplicate(t *testing.T) {
	_, err := NewAssignment(Binding{'a', true}, Binding{'a', false})
	assert.Error(t, err)
}

func Test_Assignment_String(t *testing.T) {
	state, err := NewAssignment(Binding{'c', true}, Binding{'b', false}, Binding{'a', true})
	require.NoError(t, err)
	assert.Equal(t, "a, c: true; b: false", state.String())
	//
	state, err = NewAssignment(Binding{'x', false})
	require.NoError(t, err)
	assert.Equal(t, "x: false", state.String())
}

func Test_SampleState_01(t *testing.T) {
	checkSampleState(t, "a")
}

func Test_SampleState_02(t *testing.T) {
	checkSampleState(t, "((a ∧ b) → (b ∨ ¬a))")
}

func Test_SampleState_03(t *testing.T) {
	checkSampleState(t, "((e ↔ d) ∨ ¬(c ∧ (b → a)))")
}

func Test_SampleState_Reproducible(t *testing.T) {
	var (
		e     = MustParse("((e ↔ d) ∨ ¬(c ∧ (b → a)))")
		left  = rand.New(rand.NewPCG(42, 7))
		right = rand.New(rand.NewPCG(42, 7))
	)
	//
	for range 32 {
		assert.True(t, SampleState(e, left).Equals(SampleState(e, right)))
	}
}

func Test_SampleState_Fair(t *testing.T) {
	var (
		e     = MustParse("a")
		rng   = rand.New(rand.NewPCG(1, 2))
		trues = 0
	)
	//
	for range 1000 {
		if v, _ := SampleState(e, rng).Lookup('a'); v {
			trues++
		}
	}
	// Very loose bounds, only catching a stuck coin.
	assert.Greater(t, trues, 400)
	assert.Less(t, trues, 600)
}

// ============================================================================
// Framework
// ============================================================================

func checkEval(t *testing.T, input string, expected bool, bindings ...Binding) {
	state, err := NewAssignment(bindings...)
	require.NoError(t, err)
	assert.Equal(t, expected, Evaluate(MustParse(input), state), "evaluating %s under %s", input, state)
}

// Check a two-variable expression over (a,b) = FF, FT, TF, TT.
func checkTruthTable(t *testing.T, input string, expected ...bool) {
	for i, row := range [][2]bool{{false, false}, {false, true}, {true, false}, {true, true}} {
		checkEval(t, input, expected[i], Binding{'a', row[0]}, Binding{'b', row[1]})
	}
}

func checkSampleState(t *testing.T, input string) {
	var (
		e   = MustParse(input)
		rng = rand.New(rand.NewPCG(3, 5))
	)
	//
	for range 16 {
		state := SampleState(e, rng)
		// Covers exactly the variables of e
		require.NoError(t, Covers(e, state))
		assert.Equal(t, len(Variables(e)), state.Len())
		// Evaluation never panics
		Evaluate(e, state)
	}
}
