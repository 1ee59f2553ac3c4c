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
package array

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates an index outside the valid range of a container.
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrInvalidRange indicates a from / to pair with from > to, a negative
	// dimension, or (for matrices) rows of inconsistent length.
	ErrInvalidRange = errors.New("invalid range")
	// ErrAbsentElement indicates a nil element was supplied where none is
	// permitted.
	ErrAbsentElement = errors.New("absent element")
	// ErrSizeMismatch indicates two containers of differing sizes were given
	// where equal sizes are required.
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrEmptyVector indicates an empty container was given where at least one
	// element is required.
	ErrEmptyVector = errors.New("empty vector")
	// ErrBufferTooSmall indicates a caller supplied buffer cannot hold the
	// elements to be written into it.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// CheckIndex panics with ErrOutOfBounds unless 0 <= index < length.
func CheckIndex(index int, length int) {
	if index < 0 || index >= length {
		panic(fmt.Errorf("%w: index %d for length %d", ErrOutOfBounds, index, length))
	}
}

// CheckRange panics unless 0 <= from <= to <= length.  Endpoints outside
// [0, length] give ErrOutOfBounds, whilst from > to gives ErrInvalidRange.
func CheckRange(from int, to int, length int) {
	if from < 0 || from > length {
		panic(fmt.Errorf("%w: from index %d for length %d", ErrOutOfBounds, from, length))
	} else if to < 0 || to > length {
		panic(fmt.Errorf("%w: to index %d for length %d", ErrOutOfBounds, to, length))
	} else if from > to {
		panic(fmt.Errorf("%w: from index %d > to index %d", ErrInvalidRange, from, to))
	}
}

func absentElement(index int) error {
	return fmt.Errorf("%w at index %d", ErrAbsentElement, index)
}

func negativeLength(length int) error {
	return fmt.Errorf("%w: negative length %d", ErrInvalidRange, length)
}
