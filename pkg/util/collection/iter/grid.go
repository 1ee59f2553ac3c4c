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
package iter

// gridIterator visits the items of a two-dimensional source in row-major
// order.  A source without any columns has no items, regardless of how many
// rows it claims to have.
type gridIterator[T any] struct {
	rows    int
	columns int
	get     func(int, int) T
	// Cursor position
	row    int
	column int
}

// NewRowMajorIterator constructs an iterator over a two-dimensional source of
// the given shape, visiting row 0 left-to-right, then row 1, and so on.
func NewRowMajorIterator[T any](rows, columns int, get func(int, int) T) Iterator[T] {
	return &gridIterator[T]{rows, columns, get, 0, 0}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *gridIterator[T]) HasNext() bool {
	return p.row < p.rows && p.columns > 0
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *gridIterator[T]) Next() T {
	if !p.HasNext() {
		panic("iterator exhausted")
	}
	//
	next := p.get(p.row, p.column)
	// Advance cursor
	p.column++
	if p.column == p.columns {
		p.column = 0
		p.row++
	}
	//
	return next
}

// Append another iterator onto the end of this iterator.
//
//nolint:revive
func (p *gridIterator[T]) Append(iter Iterator[T]) Iterator[T] {
	return NewAppendIterator[T](p, iter)
}

// Clone creates a copy of this iterator at the given cursor position.
//
//nolint:revive
func (p *gridIterator[T]) Clone() Iterator[T] {
	return &gridIterator[T]{p.rows, p.columns, p.get, p.row, p.column}
}

// Collect allocates a new array containing all remaining items of this
// iterator.  This drains the iterator.
//
//nolint:revive
func (p *gridIterator[T]) Collect() []T {
	items := make([]T, 0, p.Count())
	//
	for p.HasNext() {
		items = append(items, p.Next())
	}
	//
	return items
}

// Count returns the number of items left in the iterator
//
//nolint:revive
func (p *gridIterator[T]) Count() int {
	if !p.HasNext() {
		return 0
	}
	//
	return (p.rows-p.row)*p.columns - p.column
}

// Find returns the index of the first match for a given predicate, or
// return false if no match is found.
//
//nolint:revive
func (p *gridIterator[T]) Find(predicate Predicate[T]) (int, bool) {
	return Find[T](p, predicate)
}

// Nth returns the nth item in this iterator
//
//nolint:revive
func (p *gridIterator[T]) Nth(n int) T {
	if n < 0 || n >= p.Count() {
		panic("iterator out-of-bounds")
	}
	// Jump directly to the right position
	offset := p.row*p.columns + p.column + n
	p.row, p.column = offset/p.columns, offset%p.columns
	//
	return p.Next()
}
