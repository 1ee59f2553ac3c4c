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
	"fmt"
	"strings"

	"github.com/consensys/go-matteray/pkg/util/collection/hash"
	"github.com/consensys/go-matteray/pkg/util/collection/iter"
)

// immutableArray is a strided window onto a backing slice.  An array owning its
// storage has offset 0 and stride 1, whilst views (e.g. slices, or the rows and
// columns of a matrix) share the backing slice of the array they came from.
// Nothing ever writes to the backing slice after construction, hence views are
// as stable as their parent.
type immutableArray[E any] struct {
	// Backing storage (possibly shared)
	data []E
	// Position of the first element within data
	offset int
	// Distance within data between consecutive elements
	stride int
	// Number of elements
	length int
}

func newImmutableArray[E any](data []E) *immutableArray[E] {
	return &immutableArray[E]{data, 0, 1, len(data)}
}

// Len returns the number of elements in this array.
func (p *immutableArray[E]) Len() int {
	return p.length
}

// Get returns the element at the given index in this array.
func (p *immutableArray[E]) Get(index int) E {
	CheckIndex(index, p.length)
	//
	return p.data[p.offset+index*p.stride]
}

// Slice out a subregion of this array, sharing its storage.
func (p *immutableArray[E]) Slice(from int, to int) Array[E] {
	CheckRange(from, to, p.length)
	//
	return &immutableArray[E]{p.data, p.offset + from*p.stride, p.stride, to - from}
}

// ToSlice returns a fresh copy of the elements in this array.
func (p *immutableArray[E]) ToSlice() []E {
	var items = make([]E, p.length)
	// Fast path for contiguous storage
	if p.length == 0 {
		return items
	} else if p.stride == 1 {
		copy(items, p.data[p.offset:p.offset+p.length])
		return items
	}
	//
	for i := range items {
		items[i] = p.data[p.offset+i*p.stride]
	}
	//
	return items
}

// CopyTo writes the elements of this array into a caller supplied buffer.
func (p *immutableArray[E]) CopyTo(buffer []E) (int, error) {
	if len(buffer) < p.length {
		return 0, fmt.Errorf("%w: need %d elements, have %d", ErrBufferTooSmall, p.length, len(buffer))
	}
	//
	for i := range p.length {
		buffer[i] = p.data[p.offset+i*p.stride]
	}
	//
	return p.length, nil
}

// Iter returns an iterator over the elements of this array.
func (p *immutableArray[E]) Iter() iter.Iterator[E] {
	return iter.NewIndexedIterator(p.length, p.at)
}

// All returns a function for ranging over the index / element pairs of this
// array.
func (p *immutableArray[E]) All() func(yield func(int, E) bool) {
	return func(yield func(int, E) bool) {
		for i := range p.length {
			if !yield(i, p.at(i)) {
				return
			}
		}
	}
}

// Equals checks whether this array has the same length as another, with
// pairwise equal elements.
func (p *immutableArray[E]) Equals(other Array[E]) bool {
	return Equal[E](p, other)
}

// Hash returns an order-sensitive hashcode for this array.
func (p *immutableArray[E]) Hash() uint64 {
	return HashOf[E](p)
}

func (p *immutableArray[E]) String() string {
	return Format[E](p)
}

// at returns the ith element without bounds checking.
func (p *immutableArray[E]) at(index int) E {
	return p.data[p.offset+index*p.stride]
}

// ============================================================================
// Shared behaviour
// ============================================================================

// Equal determines whether two sequences have the same length and pairwise
// equal elements.  This is the equality used by all arrays in this package.
func Equal[E any](lhs Sequence[E], rhs Sequence[E]) bool {
	if hash.IsAbsent(lhs) || hash.IsAbsent(rhs) {
		return hash.IsAbsent(lhs) && hash.IsAbsent(rhs)
	} else if lhs.Len() != rhs.Len() {
		return false
	}
	//
	for i := range lhs.Len() {
		if !hash.Equal(lhs.Get(i), rhs.Get(i)) {
			return false
		}
	}
	//
	return true
}

// HashOf computes the hashcode of a sequence by folding the hash of each
// element (0 for absent elements) in order, starting from hash.Seed.
func HashOf[E any](items Sequence[E]) uint64 {
	var code = hash.Seed
	//
	for i := range items.Len() {
		code = hash.Fold(code, hash.Of(items.Get(i)))
	}
	//
	return code
}

// Format writes a sequence in the form "[e0,e1,...]".
func Format[E any](items Sequence[E]) string {
	var sb strings.Builder

	sb.WriteString("[")

	for i := range items.Len() {
		if i != 0 {
			sb.WriteString(",")
		}

		sb.WriteString(fmt.Sprintf("%v", any(items.Get(i))))
	}

	sb.WriteString("]")

	return sb.String()
}
