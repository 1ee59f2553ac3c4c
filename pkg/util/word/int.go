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
package word

import (
	"fmt"
	"strconv"
)

// Int is a signed 64bit machine integer.  Arithmetic wraps around on overflow,
// exactly as for int64.
type Int int64

// ParseInt parses an integer given in decimal, or in hex (i.e. prefixed with
// "0x").
func ParseInt(text string) (Int, error) {
	val, err := strconv.ParseInt(text, 0, 64)
	//
	if err != nil {
		return 0, fmt.Errorf("invalid integer \"%s\"", text)
	}
	//
	return Int(val), nil
}

// Add x + y
func (x Int) Add(y Int) Int {
	return x + y
}

// Sub x - y
func (x Int) Sub(y Int) Int {
	return x - y
}

// Mul x * y
func (x Int) Mul(y Int) Int {
	return x * y
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Int) Cmp(y Int) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// IsZero implementation for the Word interface.
func (x Int) IsZero() bool {
	return x == 0
}

// Equals implementation for the hash.Hasher interface.
func (x Int) Equals(y Int) bool {
	return x == y
}

// Hash implementation for the hash.Hasher interface.
func (x Int) Hash() uint64 {
	return uint64(x)
}

func (x Int) String() string {
	return strconv.FormatInt(int64(x), 10)
}
