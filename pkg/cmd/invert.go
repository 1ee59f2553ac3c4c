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
	"github.com/spf13/cobra"
)

var invertCmd = &cobra.Command{
	Use:   "invert [flags] matrix_file",
	Short: "Invert each element of a matrix.",
	Long: `Replace each element of a matrix by its multiplicative
	inverse, which requires a prime field (e.g. --field bls12-377).
	Zero elements are left as they are.`,
	Run: func(cmd *cobra.Command, args []string) {
		dispatch(cmd, args, 1, nil, nil, runInvert)
	},
}

func runInvert(cmd *cobra.Command, args []string, elems Elements[bls12_377.Element]) {
	m := readMatrix(args[0], elems.parse)
	printMatrix(os.Stdout, invert(m), useColour(cmd))
}

func init() {
	rootCmd.AddCommand(invertCmd)
}
