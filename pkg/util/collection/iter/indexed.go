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

// indexedIterator visits the items of some random-access source in index
// order, without ever copying them out.
type indexedIterator[T any] struct {
	// Number of items in the source
	length int
	// Accessor for the ith item
	get func(int) T
	// Cursor position
	index int
}

// NewIndexedIterator constructs an iterator over a random-access source of n
// items, where the ith item is obtained via the given accessor.
func NewIndexedIterator[T any](n int, get func(int) T) Iterator[T] {
	return &indexedIterator[T]{n, get, 0}
}

// NewSliceIterator constructs an iterator over a slice of items.
func NewSliceIterator[T any](items []T) Iterator[T] {
	return NewIndexedIterator(len(items), func(i int) T { return items[i] })
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *indexedIterator[T]) HasNext() bool {
	return p.index < p.length
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *indexedIterator[T]) Next() T {
	if p.index >= p.length {
		panic("iterator exhausted")
	}
	//
	next := p.get(p.index)
	p.index++

	return next
}

// Append another iterator onto the end of this iterator.
//
//nolint:revive
func (p *indexedIterator[T]) Append(iter Iterator[T]) Iterator[T] {
	return NewAppendIterator[T](p, iter)
}

// Clone creates a copy of this iterator at the given cursor position.
//
//nolint:revive
func (p *indexedIterator[T]) Clone() Iterator[T] {
	return &indexedIterator[T]{p.length, p.get, p.index}
}

// Collect allocates a new array containing all remaining items of this
// iterator.
//
//nolint:revive
func (p *indexedIterator[T]) Collect() []T {
	items := make([]T, p.length-p.index)
	//
	for i := range items {
		items[i] = p.get(p.index + i)
	}
	//
	p.index = p.length
	//
	return items
}

// Count returns the number of items left in the iterator
//
//nolint:revive
func (p *indexedIterator[T]) Count() int {
	return p.length - p.index
}

// Find returns the index of the first match for a given predicate, or
// return false if no match is found.
//
//nolint:revive
func (p *indexedIterator[T]) Find(predicate Predicate[T]) (int, bool) {
	return Find[T](p, predicate)
}

// Nth returns the nth item in this iterator, leaving the cursor just after it.
//
//nolint:revive
func (p *indexedIterator[T]) Nth(n int) T {
	if n < 0 || p.index+n >= p.length {
		panic("iterator out-of-bounds")
	}
	//
	p.index += n
	//
	return p.Next()
}
