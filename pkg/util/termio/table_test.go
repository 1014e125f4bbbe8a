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
package termio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Table_01(t *testing.T) {
	table := NewTablePrinter("shape", "count")
	table.AddRow("(_ ∧ ¬_)", "12")
	table.AnsiEscapes(false)
	//
	assert.Equal(t, uint(2), table.Height())
	assert.Equal(t, "12", table.Get(1, 1))
	checkTable(t, table, "    shape | count |\n (_ ∧ ¬_) |    12 |\n")
}

func Test_Table_02(t *testing.T) {
	table := NewTablePrinter("e")
	table.AddRow("((a ∧ b) ∨ c)")
	table.SetMaxWidth(0, 6)
	table.AnsiEscapes(false)
	//
	checkTable(t, table, "      e |\n ((a .. |\n")
}

func Test_Table_03(t *testing.T) {
	table := NewTablePrinter("x")
	table.AddRow("y")
	table.SetEscape(0, 1, BoldAnsiEscape().FgColour(TERM_GREEN))
	//
	checkTable(t, table, "\033[1m x\033[0m |\n\033[1;32m y\033[0m |\n")
	//
	table.AnsiEscapes(false)
	checkTable(t, table, " x |\n y |\n")
}

func Test_Table_04(t *testing.T) {
	table := NewTablePrinter("a", "b")
	assert.Panics(t, func() { table.AddRow("only one") })
}

func Test_Escape_01(t *testing.T) {
	bold := BoldAnsiEscape()
	red := bold.FgColour(TERM_RED)
	// extending an escape leaves the original intact
	assert.Equal(t, "\033[1m", bold.Build())
	assert.Equal(t, "\033[1;31m", red.Build())
	assert.Equal(t, "\033[0m", ResetAnsiEscape().Build())
}

func Test_Terminal_01(t *testing.T) {
	var builder strings.Builder
	//
	assert.False(t, IsTerminal(&builder))
	_, ok := TerminalWidth(&builder)
	assert.False(t, ok)
}

func checkTable(t *testing.T, table *TablePrinter, expected string) {
	var builder strings.Builder
	//
	require.NoError(t, table.Print(&builder))
	assert.Equal(t, expected, builder.String())
}
