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
	"github.com/consensys/go-matteray/pkg/util/collection/iter"
)

// Matrix provides a generic interface to a fixed-size, two-dimensional grid of
// elements with random access.  A matrix is rectangular (every row has the same
// number of columns) and its canonical order is row-major: row 0 from left to
// right, then row 1, and so on.  Matrices are values: two matrices are equal
// when they have the same shape and pairwise equal elements, and equal matrices
// always have equal hashcodes.  Matrices offer no way to replace an element or
// to change shape; see MutMatrix for that capability.
type Matrix[E any] interface {
	fmt.Stringer
	// Get returns the element at the given row and column, panicking with
	// array.ErrOutOfBounds if either is outside its respective range.
	Get(row int, column int) E
	// Rows returns the number of rows in this matrix.
	Rows() int
	// Columns returns the number of columns in this matrix.
	Columns() int
	// Size returns the number of elements in this matrix (i.e. rows * columns).
	Size() int
	// IsSquare checks whether the number of rows equals the number of columns.
	IsSquare() bool
	// Row returns a view of the given row.
	Row(int) array.Array[E]
	// Column returns a view of the given column.
	Column(int) array.Array[E]
	// RowArray returns views of all rows, in order.
	RowArray() array.Array[array.Array[E]]
	// ColumnArray returns views of all columns, in order.
	ColumnArray() array.Array[array.Array[E]]
	// SubMatrix returns a view of the rows [fromRow, toRow) and columns
	// [fromColumn, toColumn) of this matrix.  Each axis is validated as for
	// array.Array.Slice.
	SubMatrix(fromRow int, toRow int, fromColumn int, toColumn int) Matrix[E]
	// Rotate returns a new matrix holding the elements of this matrix rotated
	// as given.
	Rotate(Rotation) Matrix[E]
	// Mirror returns a new matrix holding the elements of this matrix reflected
	// along the given axis.
	Mirror(Axis) Matrix[E]
	// ToSlice returns a fresh copy of all elements in row-major order.
	ToSlice() []E
	// ToSlice2D returns a fresh copy of all elements, as one slice per row.
	ToSlice2D() [][]E
	// CopyTo writes all elements in row-major order into the start of the
	// given buffer, failing with array.ErrBufferTooSmall if they do not fit.
	CopyTo([]E) (int, error)
	// Iter returns an iterator over all elements, in row-major order.
	Iter() iter.Iterator[E]
	// All returns a function suitable for ranging over the position / element
	// pairs of this matrix, in row-major order.
	All() func(yield func(Index, E) bool)
	// Equals checks whether another matrix has the same shape as this one, with
	// pairwise equal elements.
	Equals(Matrix[E]) bool
	// Hash returns a hashcode over the row-major elements consistent with
	// Equals.
	Hash() uint64
}

// Index identifies a position within a matrix.
type Index struct {
	Row    int
	Column int
}

// MutMatrix describes the capability of replacing the elements of a matrix.
// None of the matrices constructed by this package provide it.
type MutMatrix[E any] interface {
	Matrix[E]
	// Set the element at the given row and column, overwriting the original
	// value.
	Set(row int, column int, element E)
}
