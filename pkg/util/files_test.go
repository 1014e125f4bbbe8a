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
package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ReadLines_01(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(filename, []byte("a\n\n  (a ∧ b)  \r\n¬c"), 0600))
	//
	lines, err := ReadLines(filename)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "(a ∧ b)", "¬c"}, lines)
}

func Test_ReadLines_02(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, os.IsNotExist(err))
}
