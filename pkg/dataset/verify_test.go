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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Verify_01(t *testing.T) {
	var (
		ds       = checkBuild(t, 5, "abc", 3, 2, splits(10, 5, 5))
		verifier = NewVerifier(Bounds{3, 2})
	)
	//
	for _, split := range ds.Splits() {
		assert.Empty(t, verifier.Check(split.Name(), ds.Rows(split, RarityFinal)))
	}
}

func Test_Verify_02(t *testing.T) {
	// Same split twice gives duplicates
	var (
		ds       = checkBuild(t, 5, "abc", 3, 2, splits(4))
		rows     = ds.Rows(ds.Splits()[0], RarityRunning)
		verifier = NewVerifier(Bounds{})
	)
	//
	assert.Empty(t, verifier.Check("train", rows))
	assert.Len(t, verifier.Check("again", rows), 4)
}

func Test_Verify_03(t *testing.T) {
	rows := []Row{
		{"[a: true] a", "true", 1, 1},
		{"[a: true] ¬a", "true", 3, 1},
		{"[a: true] (a ∧ a)", "true", 1, 1},
		{"[a: true] (a ∧ a", "false", 4, 1},
		{"[b: false] ¬b", "true", 3, 0},
		{"[b: false] ¬¬b", "false", 5, 1},
	}
	//
	errs := NewVerifier(Bounds{MaxDepth: 1}).Check("train", rows)
	// all but the first row are invalid
	assert.Len(t, errs, 5)
}

func Test_Verify_04(t *testing.T) {
	rows := []Row{
		{"[a: true] a", "true", 1, 1},
		{"[b: true] b", "true", 1, 1},
	}
	// both valid, but unbalanced
	assert.Len(t, NewVerifier(Bounds{}).Check("train", rows), 1)
}
