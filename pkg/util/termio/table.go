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
	"os"
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths        []int
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width int, height int) *TablePrinter {
	widths := make([]int, width)
	rows := make([][]string, height)
	escapes := make([][]string, height)
	// Construct the table
	for i := range height {
		rows[i] = make([]string, width)
		escapes[i] = make([]string, width)
	}

	return &TablePrinter{widths, rows, escapes, true}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col int, row int, val string) {
	p.widths[col] = max(p.widths[col], len(val))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col int, row int) string {
	return p.rows[row][col]
}

// Width returns the number of columns in this table.
func (p *TablePrinter) Width() int {
	return len(p.widths)
}

// Height returns the height of this table.
func (p *TablePrinter) Height() int {
	return len(p.rows)
}

// SetEscape set the colour to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col int, row int, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible excape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row int, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := range p.widths {
		p.widths[i] = max(p.widths[i], len(vals[i]))
	}
	// Done
	p.rows[row] = vals
}

// SetMaxWidths puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidths(width int) {
	for i := range p.widths {
		p.SetMaxWidth(i, width)
	}
}

// SetMaxWidth puts an upper bound on the width of any column.  Widths below
// three are not supported, since there would be no room for a cell's contents
// once truncated.
func (p *TablePrinter) SetMaxWidth(col int, width int) {
	p.widths[col] = min(p.widths[col], max(width, 3))
}

// Print the table to stdout.
func (p *TablePrinter) Print() {
	p.Write(os.Stdout)
}

// Write the table to a given writer.
func (p *TablePrinter) Write(out io.Writer) {
	//
	for i, row := range p.rows {
		escapes := p.escapes[i]
		//
		for j, col := range row {
			jth := col
			jth_width := p.widths[j]
			jth_escape := escapes[j]
			// Print colour (if applicable)
			if p.enableEscapes && jth_escape != "" {
				fmt.Fprint(out, jth_escape)
			}
			// Print data
			if len(col) > jth_width {
				jth = col[0 : jth_width-2]
				fmt.Fprintf(out, " %*s..", jth_width-2, jth)
			} else {
				fmt.Fprintf(out, " %*s", jth_width, jth)
			}
			// Cancel colour (if applicable)
			if p.enableEscapes && jth_escape != "" {
				fmt.Fprint(out, ResetAnsiEscape().Build())
			}

			fmt.Fprint(out, " |")
		}

		fmt.Fprintln(out)
	}
}
