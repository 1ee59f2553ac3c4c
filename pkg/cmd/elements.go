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

	"github.com/consensys/go-matteray/pkg/util/field"
	"github.com/consensys/go-matteray/pkg/util/field/bls12_377"
	"github.com/consensys/go-matteray/pkg/util/word"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Elements describes the kind of element held in the matrices being processed,
// as selected by the "--field" flag.
type Elements[T word.Word[T]] struct {
	config *field.Config
	// Parse an element from its textual representation.
	parse func(string) (T, error)
	// Additive identity
	zero T
	// Multiplicative identity
	one T
}

// INT_ELEMENTS are 64bit signed integers.
var INT_ELEMENTS = Elements[word.Int]{&field.INTEGER, word.ParseInt, 0, 1}

// UINT256_ELEMENTS are 256bit unsigned integers.
var UINT256_ELEMENTS = Elements[word.Uint256]{&field.UINT256, word.ParseUint256, word.NewUint256(0),
	word.NewUint256(1)}

// BLS12_377_ELEMENTS are elements of the BLS12-377 scalar field.
var BLS12_377_ELEMENTS = Elements[bls12_377.Element]{&field.BLS12_377, field.Parse[bls12_377.Element],
	bls12_377.New(0), bls12_377.New(1)}

// Runner is the body of a command, instantiated for a specific kind of element.
type Runner[T word.Word[T]] func(cmd *cobra.Command, args []string, elems Elements[T])

// Dispatch a command to the runner for the kind of element selected on the
// command line, after checking the expected number of arguments were given.  A
// nil runner indicates the command does not support that kind of element.
func dispatch(cmd *cobra.Command, args []string, nargs int, intRunner Runner[word.Int],
	u256Runner Runner[word.Uint256], fieldRunner Runner[bls12_377.Element]) {
	//
	if len(args) != nargs {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	name := GetString(cmd, "field")
	config := field.GetConfig(name)
	//
	if config == nil {
		usageError("unknown field \"%s\" (expected one of %s)", name, strings.Join(field.ConfigNames(), ", "))
	}
	//
	log.Debugf("using %s elements", config.Name)
	//
	switch {
	case config.Name == field.INTEGER.Name && intRunner != nil:
		intRunner(cmd, args, INT_ELEMENTS)
	case config.Name == field.UINT256.Name && u256Runner != nil:
		u256Runner(cmd, args, UINT256_ELEMENTS)
	case config.Name == field.BLS12_377.Name && fieldRunner != nil:
		fieldRunner(cmd, args, BLS12_377_ELEMENTS)
	default:
		usageError("command \"%s\" does not support %s elements", cmd.Name(), config.Name)
	}
}
