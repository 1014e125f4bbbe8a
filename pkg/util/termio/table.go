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
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter lays out rows of cells in right-aligned columns, beneath a
// header row shown in bold.  Widths are measured in runes, so that cells
// holding logical symbols line up.
type TablePrinter struct {
	widths []uint
	// limits[i] bounds the width of column i, where zero means no bound
	limits []uint
	rows   [][]cell
	// whether ANSI escapes are written
	escapes bool
}

type cell struct {
	text   string
	escape string
}

// NewTablePrinter constructs a table with the given column headers.
func NewTablePrinter(headers ...string) *TablePrinter {
	p := &TablePrinter{
		widths:  make([]uint, len(headers)),
		limits:  make([]uint, len(headers)),
		escapes: true,
	}
	//
	p.AddRow(headers...)
	//
	for col := range headers {
		p.SetEscape(uint(col), 0, BoldAnsiEscape())
	}
	//
	return p
}

// AddRow appends a row to this table.
func (p *TablePrinter) AddRow(vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	row := make([]cell, len(vals))
	//
	for i, val := range vals {
		row[i] = cell{val, ""}
		p.widths[i] = max(p.widths[i], runeWidth(val))
	}
	//
	p.rows = append(p.rows, row)
}

// Get the contents of a given cell in this table, where the header is row 0.
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col].text
}

// Height returns the number of rows in this table, including the header.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetEscape sets the formatting to use when printing a given cell.
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.rows[row][col].escape = escape.Build()
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Escapes should be disabled when output is not a terminal, as
// otherwise the escape characters end up in the output.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.escapes = enable
}

// SetMaxWidth bounds the width of a given column.  Longer cells are truncated
// and end with "..".
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.limits[col] = max(width, 3)
}

// Print the table to a given writer.
func (p *TablePrinter) Print(w io.Writer) error {
	var builder strings.Builder
	//
	for _, row := range p.rows {
		for j, c := range row {
			width := p.widths[j]
			text := c.text
			//
			if p.limits[j] != 0 {
				width = min(width, p.limits[j])
			}
			//
			if runeWidth(text) > width {
				text = string([]rune(text)[:width-2]) + ".."
			}
			//
			if p.escapes && c.escape != "" {
				builder.WriteString(c.escape)
			}
			//
			builder.WriteString(" ")
			builder.WriteString(strings.Repeat(" ", int(width-runeWidth(text))))
			builder.WriteString(text)
			//
			if p.escapes && c.escape != "" {
				builder.WriteString(ResetAnsiEscape().Build())
			}
			//
			builder.WriteString(" |")
		}
		//
		builder.WriteString("\n")
	}
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}

func runeWidth(text string) uint {
	return uint(utf8.RuneCountInString(text))
}
