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
package matrix

import (
	"fmt"

	"github.com/consensys/go-matteray/pkg/util/collection/array"
)

// The errors reported by matrices are shared with arrays, such that a caller
// need only check against one set of values.
var (
	ErrOutOfBounds    = array.ErrOutOfBounds
	ErrInvalidRange   = array.ErrInvalidRange
	ErrAbsentElement  = array.ErrAbsentElement
	ErrSizeMismatch   = array.ErrSizeMismatch
	ErrEmptyVector    = array.ErrEmptyVector
	ErrBufferTooSmall = array.ErrBufferTooSmall
)

func checkPosition(row int, column int, rows int, columns int) {
	if row < 0 || row >= rows {
		panic(fmt.Errorf("%w: row %d for %d rows", ErrOutOfBounds, row, rows))
	} else if column < 0 || column >= columns {
		panic(fmt.Errorf("%w: column %d for %d columns", ErrOutOfBounds, column, columns))
	}
}

func absentElement(row int, column int) error {
	return fmt.Errorf("%w at row %d, column %d", ErrAbsentElement, row, column)
}

func invalidShape(rows int, columns int) error {
	return fmt.Errorf("%w: shape %d x %d", ErrInvalidRange, rows, columns)
}
