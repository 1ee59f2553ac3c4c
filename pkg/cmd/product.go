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

	"github.com/consensys/go-matteray/pkg/util"
	"github.com/consensys/go-matteray/pkg/util/field/bls12_377"
	"github.com/consensys/go-matteray/pkg/util/word"
	"github.com/spf13/cobra"
)

var multiplyCmd = &cobra.Command{
	Use:   "multiply [flags] lhs_file rhs_file",
	Short: "Multiply two matrices together.",
	Long: `Multiply two matrices together, where the number of columns
	in the first must match the number of rows in the second.`,
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, 2, runMultiply[word.Int], runMultiply[word.Uint256], runMultiply[bls12_377.Element])
	},
}

var dotCmd = &cobra.Command{
	Use:   "dot [flags] lhs_file rhs_file",
	Short: "Compute the dot product of two vectors.",
	Long: `Compute the dot product of two vectors, each of which is
	given as a matrix with a single row or column.`,
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, 2, runDot[word.Int], runDot[word.Uint256], runDot[bls12_377.Element])
	},
}

func runMultiply[T word.Word[T]](cmd *cobra.Command, args []string, elems Elements[T]) {
	var (
		lhs   = readMatrix(args[0], elems.parse)
		rhs   = readMatrix(args[1], elems.parse)
		stats = util.NewPerfStats()
	)
	//
	res, err := multiply(lhs, rhs)
	if err != nil {
		dataError(err)
	}
	//
	stats.Log("Multiplying matrices")
	printMatrix(os.Stdout, res, useColour(cmd))
}

func runDot[T word.Word[T]](cmd *cobra.Command, args []string, elems Elements[T]) {
	var (
		lhs = readMatrix(args[0], elems.parse)
		rhs = readMatrix(args[1], elems.parse)
	)
	//
	res, err := dotProduct(lhs, rhs)
	if err != nil {
		dataError(err)
	}
	//
	fmt.Println(res)
}

func init() {
	rootCmd.AddCommand(multiplyCmd)
	rootCmd.AddCommand(dotCmd)
}
