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

import "math/rand/v2"

// SampleState draws a random assignment for exactly the variables referenced
// by a given expression.  Each distinct variable receives an independent fair
// coin flip, drawn in order of first occurrence so that the result depends
// only on the expression and the state of the random source.
func SampleState(e Expr, rng *rand.Rand) Assignment {
	var state Assignment
	//
	for _, v := range Variables(e) {
		state = state.with(v, rng.IntN(2) == 1)
	}
	//
	return state
}
