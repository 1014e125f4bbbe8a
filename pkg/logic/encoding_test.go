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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Encode_01(t *testing.T) {
	state, err := NewAssignment(Binding{'a', true}, Binding{'b', false}, Binding{'c', true})
	require.NoError(t, err)
	//
	assert.Equal(t, "[a, c: true; b: false] ((a ∧ b) ∨ c)", Encode(MustParse("((a ∧ b) ∨ c)"), state))
}

func Test_Encode_02(t *testing.T) {
	state, err := NewAssignment(Binding{'a', false})
	require.NoError(t, err)
	//
	assert.Equal(t, "[a: false] ¬a", Encode(MustParse("¬a"), state))
}

func Test_Decode_01(t *testing.T) {
	checkDecode(t, "[a, c: true; b: false] ((a ∧ b) ∨ c)")
}

func Test_Decode_02(t *testing.T) {
	checkDecode(t, "[p: false] ¬¬p")
}

func Test_Decode_03(t *testing.T) {
	checkDecode(t, "[q, r: true] (q ↔ r)")
}

func Test_DecodeError_01(t *testing.T) {
	checkDecodeError(t, "a: true] a", ErrMalformedEncoding)
}

func Test_DecodeError_02(t *testing.T) {
	checkDecodeError(t, "[a: true a", ErrMalformedEncoding)
}

func Test_DecodeError_03(t *testing.T) {
	checkDecodeError(t, "[a: maybe] a", ErrMalformedEncoding)
}

func Test_DecodeError_04(t *testing.T) {
	// b is not assigned
	checkDecodeError(t, "[a: true] (a ∧ b)", ErrMalformedEncoding)
}

func Test_DecodeError_05(t *testing.T) {
	// c is assigned, but not used
	checkDecodeError(t, "[a, c: true] a", ErrMalformedEncoding)
}

func Test_DecodeError_06(t *testing.T) {
	checkDecodeError(t, "[a: true; a: false] a", ErrMalformedEncoding)
}

func Test_DecodeError_07(t *testing.T) {
	checkDecodeError(t, "[a: true] (a ∧", ErrUnexpectedEnd)
}

// ============================================================================
// Framework
// ============================================================================

func checkDecode(t *testing.T, text string) {
	e, state, err := Decode(text)
	//
	require.NoError(t, err, "decoding %s", text)
	assert.Equal(t, text, Encode(e, state))
}

func checkDecodeError(t *testing.T, text string, kind error) {
	_, _, err := Decode(text)
	//
	require.Error(t, err, "decoding %s", text)
	assert.True(t, errors.Is(err, kind), "expected %v, got %v", kind, err)
}
