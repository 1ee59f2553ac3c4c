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
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected int, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Report a problem with how the command was invoked, and exit.
func usageError(format string, args ...any) {
	fmt.Printf(format, args...)
	fmt.Println()
	os.Exit(1)
}

// Report a problem arising from the data being processed, and exit.
func dataError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

// Parse a range of the form "from:to", where either end may be omitted (in
// which case it defaults to the respective end of [0,n)).  An empty string
// denotes the whole range.
func parseRange(text string, n int) (int, int, error) {
	var (
		from, to = 0, n
		err      error
	)
	//
	if text == "" {
		return from, to, nil
	}
	//
	split := strings.Split(text, ":")
	//
	if len(split) != 2 {
		return 0, 0, fmt.Errorf("invalid range \"%s\" (expected from:to)", text)
	} else if split[0] != "" {
		if from, err = strconv.Atoi(split[0]); err != nil {
			return 0, 0, fmt.Errorf("invalid range start \"%s\"", split[0])
		}
	}
	//
	if split[1] != "" {
		if to, err = strconv.Atoi(split[1]); err != nil {
			return 0, 0, fmt.Errorf("invalid range end \"%s\"", split[1])
		}
	}
	//
	if from < 0 || to > n || from > to {
		return 0, 0, fmt.Errorf("range %d:%d out of bounds for %d", from, to, n)
	}
	//
	return from, to, nil
}
