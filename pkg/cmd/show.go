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
	"os"

	"github.com/consensys/go-matteray/pkg/util/field/bls12_377"
	"github.com/consensys/go-matteray/pkg/util/word"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] matrix_file",
	Short: "Print a matrix.",
	Long:  `Print the shape and contents of a matrix.`,
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, 1, runShow[word.Int], runShow[word.Uint256], runShow[bls12_377.Element])
	},
}

func runShow[T word.Word[T]](cmd *cobra.Command, args []string, elems Elements[T]) {
	m := readMatrix(args[0], elems.parse)
	//
	fmt.Printf("%d x %d matrix of %s elements", m.Rows(), m.Columns(), elems.config.Name)
	//
	if m.IsSquare() {
		fmt.Print(" (square)")
	}
	//
	fmt.Println()
	printMatrix(os.Stdout, m, useColour(cmd))
}

func init() {
	rootCmd.AddCommand(showCmd)
}
