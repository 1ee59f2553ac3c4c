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

	"github.com/consensys/go-matteray/pkg/util/collection/iter"
)

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Sequence is the minimal read-only contract of a fixed-length, random-access
// sequence of elements.  The functional utilities in this package consume
// nothing more than this.
type Sequence[E any] interface {
	// Returns the number of elements in this sequence.  This is never negative.
	Len() int
	// Get returns the element at the given index, panicking with ErrOutOfBounds
	// if the index is outside [0, Len()).
	Get(int) E
}

// Array provides a generic interface to a fixed-length, ordered sequence of
// elements with random access.  Arrays are values: two arrays are equal when
// they have the same length and pairwise equal elements, and equal arrays
// always have equal hashcodes.  Arrays offer no way to change their length or
// to replace an element; see MutArray for that capability.
type Array[E any] interface {
	Sequence[E]
	fmt.Stringer
	// Equals checks whether another array has the same length as this one, with
	// pairwise equal elements.
	Equals(Array[E]) bool
	// Hash returns an order-sensitive hashcode consistent with Equals.  Hence,
	// every array is a hash.Hasher of arrays.
	Hash() uint64
	// Slice out the half-open subregion [from, to) of this array.  The result is
	// a view which shares storage with this array.  This panics with
	// ErrOutOfBounds if either endpoint is outside [0, Len()], or with
	// ErrInvalidRange if from > to.
	Slice(from int, to int) Array[E]
	// ToSlice returns a freshly allocated copy of the elements of this array,
	// in order.  Modifying the result never affects this array.
	ToSlice() []E
	// CopyTo writes the elements of this array into the start of the given
	// buffer, returning the number of elements written.  This fails with
	// ErrBufferTooSmall (and writes nothing) if the buffer cannot hold them all.
	CopyTo([]E) (int, error)
	// Iter returns an iterator over the elements of this array, in order.
	Iter() iter.Iterator[E]
	// All returns a function suitable for ranging over the index / element pairs
	// of this array.
	All() func(yield func(int, E) bool)
}

// MutArray describes the capability of replacing elements and of changing the
// length of an array.  None of the arrays constructed by this package provide
// it, and callers should check for it with a type assertion rather than assume
// it.
type MutArray[E any] interface {
	Array[E]
	// Set the element at the given index in this array, overwriting the
	// original value.
	Set(int, E)
	// Append an element onto the end of this array.
	Append(E)
	// Insert an element at the given index, shifting everything after it.
	Insert(int, E)
	// Remove the element at the given index, returning it.
	Remove(int) E
	// Clear removes all elements from this array.
	Clear()
}
