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
	"os"

	"github.com/consensys/go-matteray/pkg/util/collection/matrix"
	"github.com/consensys/go-matteray/pkg/util/field/bls12_377"
	"github.com/consensys/go-matteray/pkg/util/word"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate [flags] matrix_file",
	Short: "Rotate a matrix by a quarter turn (or more).",
	Long: `Rotate a matrix, where "left" turns it anti-clockwise
	by 90 degrees, "right" turns it clockwise by 90 degrees and
	"half" turns it by 180 degrees.`,
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, 1, runRotate[word.Int], runRotate[word.Uint256], runRotate[bls12_377.Element])
	},
}

var mirrorCmd = &cobra.Command{
	Use:   "mirror [flags] matrix_file",
	Short: "Mirror a matrix along an axis.",
	Long: `Mirror a matrix, where "rows" reverses the order of
	elements in each row and "columns" reverses the order of
	the rows.`,
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, 1, runMirror[word.Int], runMirror[word.Uint256], runMirror[bls12_377.Element])
	},
}

var transposeCmd = &cobra.Command{
	Use:   "transpose [flags] matrix_file",
	Short: "Transpose a matrix.",
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, 1, runTranspose[word.Int], runTranspose[word.Uint256], runTranspose[bls12_377.Element])
	},
}

var subCmd = &cobra.Command{
	Use:   "sub [flags] matrix_file",
	Short: "Print a rectangular region of a matrix.",
	Long: `Print a rectangular region of a matrix, where the rows
	and columns to include are given as ranges "from:to" (with
	"to" being exclusive).  Either end of a range can be omitted.`,
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, 1, runSub[word.Int], runSub[word.Uint256], runSub[bls12_377.Element])
	},
}

var rowCmd = &cobra.Command{
	Use:   "row [flags] matrix_file",
	Short: "Print a single row of a matrix.",
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, 1, runRow[word.Int], runRow[word.Uint256], runRow[bls12_377.Element])
	},
}

var columnCmd = &cobra.Command{
	Use:   "column [flags] matrix_file",
	Short: "Print a single column of a matrix.",
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, 1, runColumn[word.Int], runColumn[word.Uint256], runColumn[bls12_377.Element])
	},
}

func runRotate[T word.Word[T]](cmd *cobra.Command, args []string, elems Elements[T]) {
	rotation, err := matrix.ParseRotation(GetString(cmd, "rotation"))
	if err != nil {
		usageError("%s", err)
	}
	//
	m := readMatrix(args[0], elems.parse)
	log.Debugf("rotating %d x %d matrix %s", m.Rows(), m.Columns(), rotation)
	printMatrix(os.Stdout, m.Rotate(rotation), useColour(cmd))
}

func runMirror[T word.Word[T]](cmd *cobra.Command, args []string, elems Elements[T]) {
	axis, err := matrix.ParseAxis(GetString(cmd, "axis"))
	if err != nil {
		usageError("%s", err)
	}
	//
	m := readMatrix(args[0], elems.parse)
	log.Debugf("mirroring %d x %d matrix along %s", m.Rows(), m.Columns(), axis)
	printMatrix(os.Stdout, m.Mirror(axis), useColour(cmd))
}

func runTranspose[T word.Word[T]](cmd *cobra.Command, args []string, elems Elements[T]) {
	m := readMatrix(args[0], elems.parse)
	printMatrix(os.Stdout, matrix.Transpose(m), useColour(cmd))
}

func runSub[T word.Word[T]](cmd *cobra.Command, args []string, elems Elements[T]) {
	m := readMatrix(args[0], elems.parse)
	//
	fromRow, toRow, err := parseRange(GetString(cmd, "rows"), m.Rows())
	if err != nil {
		usageError("rows: %s", err)
	}
	//
	fromColumn, toColumn, err := parseRange(GetString(cmd, "columns"), m.Columns())
	if err != nil {
		usageError("columns: %s", err)
	}
	//
	printMatrix(os.Stdout, m.SubMatrix(fromRow, toRow, fromColumn, toColumn), useColour(cmd))
}

func runRow[T word.Word[T]](cmd *cobra.Command, args []string, elems Elements[T]) {
	var (
		m     = readMatrix(args[0], elems.parse)
		index = GetInt(cmd, "index")
	)
	//
	if index < 0 || index >= m.Rows() {
		usageError("row %d out of bounds for %d rows", index, m.Rows())
	}
	//
	printArray(os.Stdout, m.Row(index), useColour(cmd))
}

func runColumn[T word.Word[T]](cmd *cobra.Command, args []string, elems Elements[T]) {
	var (
		m     = readMatrix(args[0], elems.parse)
		index = GetInt(cmd, "index")
	)
	//
	if index < 0 || index >= m.Columns() {
		usageError("column %d out of bounds for %d columns", index, m.Columns())
	}
	//
	printArray(os.Stdout, m.Column(index), useColour(cmd))
}

func init() {
	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(mirrorCmd)
	rootCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(rowCmd)
	rootCmd.AddCommand(columnCmd)
	rotateCmd.Flags().StringP("rotation", "r", "left", "rotation to apply (none, left, half or right)")
	mirrorCmd.Flags().StringP("axis", "a", "rows", "axis to mirror along (rows or columns)")
	subCmd.Flags().String("rows", "", "range of rows to include (from:to)")
	subCmd.Flags().String("columns", "", "range of columns to include (from:to)")
	rowCmd.Flags().IntP("index", "i", 0, "index of row to print")
	columnCmd.Flags().IntP("index", "i", 0, "index of column to print")
}
