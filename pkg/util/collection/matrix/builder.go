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
	"math"

	"github.com/consensys/go-matteray/pkg/util/collection/array"
	"github.com/consensys/go-matteray/pkg/util/collection/hash"
)

// Empty returns a matrix with no rows and no columns.
func Empty[E any]() Matrix[E] {
	return newImmutableMatrix[E](nil, 0, 0)
}

// Of constructs a matrix from the given rows, panicking if they are not all of
// the same length or contain any nil element.  See FromRows.
func Of[E any](rows ...array.Array[E]) Matrix[E] {
	return must(FromRows(rows...))
}

// FromSlice2D constructs a matrix holding a copy of the given rows.  This fails
// with ErrInvalidRange if the rows are jagged, and with ErrAbsentElement if a
// row or element is nil.  When every row is empty, the result is the empty
// matrix (i.e. it has no rows).
func FromSlice2D[E any](rows [][]E) (Matrix[E], error) {
	var columns = 0
	//
	for i, row := range rows {
		if row == nil {
			return nil, fmt.Errorf("%w: row %d", ErrAbsentElement, i)
		} else if i == 0 {
			columns = len(row)
		} else if len(row) != columns {
			return nil, jaggedRow(i, len(row), columns)
		}
	}
	//
	if columns == 0 {
		return Empty[E](), nil
	}
	//
	return Build(len(rows), columns, func(r, c int) E { return rows[r][c] })
}

// FromRows constructs a matrix from the given arrays, each of which becomes one
// row.  As for FromSlice2D, rows must be non-nil and of equal length.
func FromRows[E any](rows ...array.Array[E]) (Matrix[E], error) {
	var columns = 0
	//
	for i, row := range rows {
		if row == nil {
			return nil, fmt.Errorf("%w: row %d", ErrAbsentElement, i)
		} else if i == 0 {
			columns = row.Len()
		} else if row.Len() != columns {
			return nil, jaggedRow(i, row.Len(), columns)
		}
	}
	//
	if columns == 0 {
		return Empty[E](), nil
	}
	//
	return Build(len(rows), columns, func(r, c int) E { return rows[r].Get(c) })
}

// FromRow constructs a matrix with a single row holding the given elements.
func FromRow[E any](row array.Array[E]) Matrix[E] {
	return New(1, row.Len(), func(_, c int) E { return row.Get(c) })
}

// FromColumn constructs a matrix with a single column holding the given
// elements.
func FromColumn[E any](column array.Array[E]) Matrix[E] {
	return New(column.Len(), 1, func(r, _ int) E { return column.Get(r) })
}

// New constructs a matrix of the given shape whose element at (r, c) is
// fn(r, c).  This is the only constructor which admits a zero dimension
// alongside a non-zero one (e.g. 3 rows and 0 columns).  This panics with
// ErrInvalidRange for a negative dimension, and with ErrAbsentElement if fn
// returns nil.
func New[E any](rows int, columns int, fn func(int, int) E) Matrix[E] {
	return must(Build(rows, columns, fn))
}

// Build constructs a matrix of the given shape whose element at (r, c) is
// fn(r, c), invoking fn once per position in row-major order.  Construction
// stops at the first absent element.
func Build[E any](rows int, columns int, fn func(int, int) E) (Matrix[E], error) {
	if rows < 0 || columns < 0 {
		return nil, invalidShape(rows, columns)
	} else if columns > 0 && rows > math.MaxInt/columns {
		return nil, invalidShape(rows, columns)
	}
	//
	var (
		items   = make([]E, rows*columns)
		checked = hash.MayBeAbsent[E]()
	)
	// Columns cannot be zero when there are items
	for i := range items {
		var (
			r, c = i / columns, i % columns
			ith  = fn(r, c)
		)
		//
		if checked && hash.IsAbsent(ith) {
			return nil, absentElement(r, c)
		}
		//
		items[i] = ith
	}
	//
	return newImmutableMatrix(items, rows, columns), nil
}

// TryBuild is like Build, except that fn may itself fail.  Construction stops
// at the first error (or absent element).
func TryBuild[E any](rows int, columns int, fn func(int, int) (E, error)) (Matrix[E], error) {
	var err error
	//
	m, buildErr := Build(rows, columns, func(r, c int) E {
		var ith E
		//
		if err == nil {
			if ith, err = fn(r, c); err != nil {
				err = fmt.Errorf("row %d, column %d: %w", r, c, err)
			}
		}
		//
		return ith
	})
	//
	if err != nil {
		return nil, err
	}
	//
	return m, buildErr
}

// Square constructs an n x n matrix whose element at (r, c) is fn(r, c).
func Square[E any](n int, fn func(int, int) E) Matrix[E] {
	return New(n, n, fn)
}

// CopyOf returns an immutable matrix equal to the given one.  Matrices
// constructed by this package are returned as is, whilst other implementations
// are copied.
func CopyOf[E any](m Matrix[E]) Matrix[E] {
	if p, ok := m.(*immutableMatrix[E]); ok {
		return p
	}
	//
	return New(m.Rows(), m.Columns(), m.Get)
}

// generate constructs a matrix from elements already known to be present.
func generate[E any](rows int, columns int, fn func(int, int) E) Matrix[E] {
	var items = make([]E, rows*columns)
	//
	for i := range items {
		items[i] = fn(i/columns, i%columns)
	}
	//
	return newImmutableMatrix(items, rows, columns)
}

func jaggedRow(row int, length int, columns int) error {
	return fmt.Errorf("%w: row %d has %d columns (expected %d)", ErrInvalidRange, row, length, columns)
}

func must[E any](m Matrix[E], err error) Matrix[E] {
	if err != nil {
		panic(err)
	}
	//
	return m
}
