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

	"github.com/consensys/go-matteray/pkg/util/field/bls12_377"
	"github.com/consensys/go-matteray/pkg/util/word"
	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort [flags] matrix_file",
	Short: "Sort the elements of each row in a matrix.",
	Long: `Sort the elements of each row in a matrix, in ascending
	order unless otherwise requested.  Elements of a prime field are
	ordered by their canonical (i.e. least non-negative) value.`,
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, 1, runSort[word.Int], runSort[word.Uint256], runSort[bls12_377.Element])
	},
}

func runSort[T word.Word[T]](cmd *cobra.Command, args []string, elems Elements[T]) {
	m := readMatrix(args[0], elems.parse)
	printMatrix(os.Stdout, sortRows(m, GetFlag(cmd, "descending")), useColour(cmd))
}

func init() {
	rootCmd.AddCommand(sortCmd)
	sortCmd.Flags().BoolP("descending", "d", false, "sort in descending order")
}
