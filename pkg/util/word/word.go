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

	"github.com/consensys/go-matteray/pkg/util/collection/hash"
)

// Word abstracts a numeric value supporting the arithmetic required of matrix
// elements.  Field elements are words, as are machine integers.
type Word[T any] interface {
	fmt.Stringer
	hash.Hasher[T]
	// Add x + y
	Add(y T) T
	// Sub x - y
	Sub(y T) T
	// Mul x * y
	Mul(y T) T
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y T) int
	// Check whether this value is zero (or not).
	IsZero() bool
}

// Min returns the smaller of two words.
func Min[T Word[T]](x T, y T) T {
	if x.Cmp(y) <= 0 {
		return x
	}
	//
	return y
}

// Max returns the larger of two words.
func Max[T Word[T]](x T, y T) T {
	if x.Cmp(y) >= 0 {
		return x
	}
	//
	return y
}

// Compare is a function value form of x.Cmp(y), suitable for sorting.
func Compare[T Word[T]](x T, y T) int {
	return x.Cmp(y)
}
