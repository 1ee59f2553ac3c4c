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
	"strings"

	"github.com/consensys/go-matteray/pkg/util/collection/matrix"
	"github.com/consensys/go-matteray/pkg/util/field/bls12_377"
	"github.com/consensys/go-matteray/pkg/util/word"
	"github.com/spf13/cobra"
)

var reduceCmd = &cobra.Command{
	Use:   "reduce [flags] matrix_file",
	Short: "Combine the elements of a matrix.",
	Long: `Combine the elements of a matrix into a single value
	using a given operation (sum, product, min or max).  When an
	axis is given, each row (or column) is instead combined
	separately.`,
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, 1, runReduce[word.Int], runReduce[word.Uint256], runReduce[bls12_377.Element])
	},
}

func runReduce[T word.Word[T]](cmd *cobra.Command, args []string, elems Elements[T]) {
	var axisName = GetString(cmd, "axis")
	//
	reducer, err := newReducer(GetString(cmd, "op"), elems)
	if err != nil {
		usageError("%s (expected one of %s)", err, strings.Join(REDUCERS, ", "))
	}
	//
	m := readMatrix(args[0], elems.parse)
	//
	if axisName == "" {
		if val, ok := reducer.ReduceAll(m); ok {
			fmt.Println(val)
		} else {
			fmt.Printf("no elements to %s\n", reducer.name)
		}
		//
		return
	}
	//
	axis, err := matrix.ParseAxis(axisName)
	if err != nil {
		usageError("%s", err)
	}
	//
	printArray(os.Stdout, reducer.ReduceAlong(m, axis), useColour(cmd))
}

func init() {
	rootCmd.AddCommand(reduceCmd)
	reduceCmd.Flags().String("op", "sum", "operation to combine elements with (sum, product, min or max)")
	reduceCmd.Flags().StringP("axis", "a", "", "combine each row (rows) or column (columns) separately")
}
