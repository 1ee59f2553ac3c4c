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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-matteray/pkg/util/collection/array"
	"github.com/consensys/go-matteray/pkg/util/collection/matrix"
	"github.com/consensys/go-matteray/pkg/util/termio"
	"github.com/spf13/cobra"
)

// Determine whether or not to use ANSI escapes when printing.
func useColour(cmd *cobra.Command) bool {
	return !GetFlag(cmd, "no-color") && termio.IsTerminal(os.Stdout)
}

// Print a matrix as a table, with the row and column indices shown along the
// left and top edges respectively.
func printMatrix[T fmt.Stringer](out io.Writer, m matrix.Matrix[T], colour bool) {
	if m.Rows() == 0 {
		fmt.Fprintf(out, "(empty %d x %d matrix)\n", m.Rows(), m.Columns())
		return
	}
	//
	var (
		table  = termio.NewTablePrinter(m.Columns()+1, m.Rows()+1)
		header = termio.BoldAnsiEscape()
	)
	//
	for c := range m.Columns() {
		table.Set(c+1, 0, fmt.Sprintf("%d", c))
		table.SetEscape(c+1, 0, header)
	}
	//
	for i, e := range m.All() {
		table.Set(i.Column+1, i.Row+1, e.String())
	}
	//
	for r := range m.Rows() {
		table.Set(0, r+1, fmt.Sprintf("%d", r))
		table.SetEscape(0, r+1, header)
	}
	//
	table.SetMaxWidths(termio.Width(os.Stdout)/(m.Columns()+1) - 3)
	table.AnsiEscapes(colour)
	table.Write(out)
}

// Print an array as a table with a single row, with the indices shown along the
// top edge.
func printArray[T fmt.Stringer](out io.Writer, arr array.Array[T], colour bool) {
	printMatrix(out, matrix.FromRow(arr), colour)
}

// label is a piece of text to be printed as is.
type label string

func (p label) String() string {
	return string(p)
}
