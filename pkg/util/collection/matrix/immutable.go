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
	"strings"

	"github.com/consensys/go-matteray/pkg/util/collection/array"
	"github.com/consensys/go-matteray/pkg/util/collection/hash"
	"github.com/consensys/go-matteray/pkg/util/collection/iter"
)

// immutableMatrix is a rectangular window onto a flat, row-major array.  The
// element at (row, column) is held at offset + row*stride + column in the
// underlying storage.  Submatrices share storage with their parent, which is
// safe since neither can be modified.
type immutableMatrix[E any] struct {
	// Backing storage (possibly shared)
	items []E
	// Backing storage as an array, from which row and column views are taken.
	data    array.Array[E]
	offset  int
	stride  int
	rows    int
	columns int
}

// newImmutableMatrix takes ownership of a freshly allocated row-major slice of
// rows*columns elements, none of which are absent.
func newImmutableMatrix[E any](items []E, rows int, columns int) *immutableMatrix[E] {
	data, err := array.Adopt(items)
	// Cannot happen, since elements were checked on construction
	if err != nil {
		panic(err)
	}
	//
	return &immutableMatrix[E]{items, data, 0, columns, rows, columns}
}

func (p *immutableMatrix[E]) Get(row int, column int) E {
	checkPosition(row, column, p.rows, p.columns)
	//
	return p.at(row, column)
}

func (p *immutableMatrix[E]) Rows() int {
	return p.rows
}

func (p *immutableMatrix[E]) Columns() int {
	return p.columns
}

func (p *immutableMatrix[E]) Size() int {
	return p.rows * p.columns
}

func (p *immutableMatrix[E]) IsSquare() bool {
	return p.rows == p.columns
}

func (p *immutableMatrix[E]) Row(row int) array.Array[E] {
	if row < 0 || row >= p.rows {
		panic(fmt.Errorf("%w: row %d for %d rows", ErrOutOfBounds, row, p.rows))
	} else if p.columns == 0 {
		return array.Empty[E]()
	}
	//
	return array.Strided(p.data, p.offset+row*p.stride, 1, p.columns)
}

func (p *immutableMatrix[E]) Column(column int) array.Array[E] {
	if column < 0 || column >= p.columns {
		panic(fmt.Errorf("%w: column %d for %d columns", ErrOutOfBounds, column, p.columns))
	} else if p.rows == 0 {
		return array.Empty[E]()
	}
	//
	return array.Strided(p.data, p.offset+column, p.stride, p.rows)
}

func (p *immutableMatrix[E]) RowArray() array.Array[array.Array[E]] {
	return array.New(p.rows, p.Row)
}

func (p *immutableMatrix[E]) ColumnArray() array.Array[array.Array[E]] {
	return array.New(p.columns, p.Column)
}

func (p *immutableMatrix[E]) SubMatrix(fromRow int, toRow int, fromColumn int, toColumn int) Matrix[E] {
	array.CheckRange(fromRow, toRow, p.rows)
	array.CheckRange(fromColumn, toColumn, p.columns)
	//
	return &immutableMatrix[E]{
		p.items, p.data, p.offset + fromRow*p.stride + fromColumn, p.stride, toRow - fromRow, toColumn - fromColumn,
	}
}

func (p *immutableMatrix[E]) Rotate(rotation Rotation) Matrix[E] {
	rows, columns := p.rows, p.columns
	//
	switch rotation {
	case None:
		return generate(rows, columns, p.at)
	case Left:
		return generate(columns, rows, func(r, c int) E { return p.at(c, columns-1-r) })
	case Half:
		return generate(rows, columns, func(r, c int) E { return p.at(rows-1-r, columns-1-c) })
	case Right:
		return generate(columns, rows, func(r, c int) E { return p.at(rows-1-c, r) })
	}
	//
	panic(fmt.Sprintf("unknown rotation %s", rotation))
}

func (p *immutableMatrix[E]) Mirror(axis Axis) Matrix[E] {
	rows, columns := p.rows, p.columns
	//
	switch axis {
	case Rows:
		return generate(rows, columns, func(r, c int) E { return p.at(r, columns-1-c) })
	case Columns:
		return generate(rows, columns, func(r, c int) E { return p.at(rows-1-r, c) })
	}
	//
	panic(fmt.Sprintf("unknown axis %s", axis))
}

func (p *immutableMatrix[E]) ToSlice() []E {
	var items = make([]E, p.Size())
	//
	p.copyInto(items)
	//
	return items
}

func (p *immutableMatrix[E]) ToSlice2D() [][]E {
	var items = make([][]E, p.rows)
	//
	for r := range p.rows {
		var start = p.offset + r*p.stride
		//
		items[r] = make([]E, p.columns)
		copy(items[r], p.items[start:start+p.columns])
	}
	//
	return items
}

func (p *immutableMatrix[E]) CopyTo(buffer []E) (int, error) {
	if len(buffer) < p.Size() {
		return 0, fmt.Errorf("%w: %d elements for buffer of %d", ErrBufferTooSmall, p.Size(), len(buffer))
	}
	//
	p.copyInto(buffer)
	//
	return p.Size(), nil
}

func (p *immutableMatrix[E]) Iter() iter.Iterator[E] {
	return iter.NewRowMajorIterator(p.rows, p.columns, p.at)
}

func (p *immutableMatrix[E]) All() func(yield func(Index, E) bool) {
	return func(yield func(Index, E) bool) {
		for r := range p.rows {
			for c := range p.columns {
				if !yield(Index{r, c}, p.at(r, c)) {
					return
				}
			}
		}
	}
}

func (p *immutableMatrix[E]) Equals(other Matrix[E]) bool {
	return Equal[E](p, other)
}

func (p *immutableMatrix[E]) Hash() uint64 {
	return HashOf[E](p)
}

func (p *immutableMatrix[E]) String() string {
	return Format[E](p)
}

// at returns the element at a given position without bounds checking.
func (p *immutableMatrix[E]) at(row int, column int) E {
	return p.items[p.offset+row*p.stride+column]
}

func (p *immutableMatrix[E]) copyInto(buffer []E) {
	for r := range p.rows {
		var start = p.offset + r*p.stride
		//
		copy(buffer[r*p.columns:(r+1)*p.columns], p.items[start:start+p.columns])
	}
}

// ============================================================================
// Helpers
// ============================================================================

// Equal checks whether two matrices have the same shape and pairwise equal
// elements.  A nil matrix equals only another nil matrix.
func Equal[E any](lhs Matrix[E], rhs Matrix[E]) bool {
	if hash.IsAbsent(lhs) || hash.IsAbsent(rhs) {
		return hash.IsAbsent(lhs) && hash.IsAbsent(rhs)
	} else if lhs.Rows() != rhs.Rows() || lhs.Columns() != rhs.Columns() {
		return false
	}
	//
	for r := range lhs.Rows() {
		for c := range lhs.Columns() {
			if !hash.Equal(lhs.Get(r, c), rhs.Get(r, c)) {
				return false
			}
		}
	}
	//
	return true
}

// HashOf computes the hashcode of a matrix by folding the hash of each element
// in row-major order, starting from hash.Seed.
func HashOf[E any](m Matrix[E]) uint64 {
	var code = hash.Seed
	//
	for r := range m.Rows() {
		for c := range m.Columns() {
			code = hash.Fold(code, hash.Of(m.Get(r, c)))
		}
	}
	//
	return code
}

// Format writes a matrix in the form "[[a,b],[c,d]]".
func Format[E any](m Matrix[E]) string {
	var sb strings.Builder

	sb.WriteString("[")

	for r := range m.Rows() {
		if r != 0 {
			sb.WriteString(",")
		}

		sb.WriteString(array.Format[E](m.Row(r)))
	}

	sb.WriteString("]")

	return sb.String()
}
