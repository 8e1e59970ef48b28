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
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter is useful for printing left-aligned tables, such as token
// listings.  Rows are added one at a time and column widths grow to fit.
type TablePrinter struct {
	widths        []uint
	limits        []uint
	rows          [][]string
	escapes       [][]AnsiEscape
	enableEscapes bool
}

// NewTablePrinter constructs a new (empty) table with a given number of
// columns.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{make([]uint, width), make([]uint, width), nil, nil, false}
}

// Height returns the number of rows in this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// AddRow appends a row to this table, returning its index.
func (p *TablePrinter) AddRow(vals ...string) uint {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i, v := range vals {
		p.widths[i] = max(p.widths[i], uint(utf8.RuneCountInString(v)))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]AnsiEscape, len(vals)))
	//
	return uint(len(p.rows) - 1)
}

// SetEscape set the escape to use when printing the contents of a given cell.
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetMaxWidth puts an upper bound on the width of a given column.  Cells
// exceeding this are truncated with "..".
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.limits[col] = max(width, 3)
}

// Width returns the width at which a given column is printed.
func (p *TablePrinter) Width(col uint) uint {
	if p.limits[col] == 0 {
		return p.widths[col]
	}
	//
	return min(p.widths[col], p.limits[col])
}

// Print the table to a given writer.  The last column is not padded.
func (p *TablePrinter) Print(out io.Writer) error {
	for i, row := range p.rows {
		var builder strings.Builder
		//
		for j, cell := range row {
			width := p.Width(uint(j))
			text := truncate(cell, width)
			//
			if j+1 < len(row) {
				text = pad(text, width)
			}
			//
			builder.WriteString(p.escapes[i][j].Wrap(text, p.enableEscapes))
			//
			if j+1 < len(row) {
				builder.WriteString("  ")
			}
		}
		//
		if _, err := fmt.Fprintln(out, strings.TrimRight(builder.String(), " ")); err != nil {
			return err
		}
	}
	//
	return nil
}

func truncate(text string, width uint) string {
	runes := []rune(text)
	//
	if uint(len(runes)) <= width {
		return text
	}
	//
	return string(runes[:width-2]) + ".."
}

func pad(text string, width uint) string {
	n := uint(utf8.RuneCountInString(text))
	//
	return text + strings.Repeat(" ", int(width-n))
}
