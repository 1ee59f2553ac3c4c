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
	"cmp"
	"fmt"
	"slices"

	"github.com/consensys/go-matteray/pkg/util/collection/hash"
)

// ApplyForEach applies a function to each element of a sequence, producing a
// new array of the results.  The result type may differ from the element type.
// This panics with ErrAbsentElement if fn returns nil.
func ApplyForEach[E any, R any](items Sequence[E], fn func(E) R) Array[R] {
	return New(items.Len(), func(i int) R { return fn(items.Get(i)) })
}

// ToMapped is an alias for ApplyForEach.
func ToMapped[E any, R any](items Sequence[E], fn func(E) R) Array[R] {
	return ApplyForEach(items, fn)
}

// TryApplyForEach is like ApplyForEach, except that fn may fail.  The first
// failure aborts the whole operation.
func TryApplyForEach[E any, R any](items Sequence[E], fn func(E) (R, error)) (Array[R], error) {
	return TryBuild(items.Len(), func(i int) (R, error) { return fn(items.Get(i)) })
}

// MergeForEach combines two sequences element-wise into a new array.  When the
// sequences differ in length, the result has the length of the shorter one.
func MergeForEach[E1 any, E2 any, R any](lhs Sequence[E1], rhs Sequence[E2], fn func(E1, E2) R) Array[R] {
	n := min(lhs.Len(), rhs.Len())
	//
	return New(n, func(i int) R { return fn(lhs.Get(i), rhs.Get(i)) })
}

// ToSorted returns a new array holding the elements of a sequence in their
// natural order.
func ToSorted[E cmp.Ordered](items Sequence[E]) Array[E] {
	return ToSortedFunc(items, cmp.Compare[E])
}

// ToSortedFunc returns a new array holding the elements of a sequence sorted
// according to a comparator.  The sort is stable, so elements which compare
// equal retain their relative order.
func ToSortedFunc[E any](items Sequence[E], compare func(E, E) int) Array[E] {
	var data = toSlice(items)
	//
	slices.SortStableFunc(data, compare)
	//
	return must(Adopt(data))
}

// ToReversed returns a new array holding the elements of a sequence in reverse
// order.  For example, [15,20,10] gives [10,20,15].
func ToReversed[E any](items Sequence[E]) Array[E] {
	var n = items.Len()
	//
	return New(n, func(i int) E { return items.Get(n - 1 - i) })
}

// Aggregate folds the elements of a sequence together using an accumulator
// function (e.g. to compute a min, max or sum).  Absent elements are skipped.
// If there is nothing to aggregate (i.e. the sequence is empty, or holds only
// absent elements) then false is returned.
func Aggregate[E any](items Sequence[E], accumulator func(E, E) E) (E, bool) {
	var (
		current E
		found   bool
	)
	//
	for i := range items.Len() {
		ith := items.Get(i)
		//
		if hash.IsAbsent(ith) {
			continue
		} else if !found {
			current, found = ith, true
		} else {
			current = accumulator(current, ith)
		}
	}
	//
	return current, found
}

// AggregateOr is like Aggregate, except that the given identity is returned
// when there is nothing to aggregate.
func AggregateOr[E any](items Sequence[E], accumulator func(E, E) E, identity E) E {
	if result, ok := Aggregate(items, accumulator); ok {
		return result
	}
	//
	return identity
}

// DotProduct computes the sum of the pairwise products of two vectors.  The
// vectors must have the same length (otherwise ErrSizeMismatch), and must not
// be empty (otherwise ErrEmptyVector) since there is no identity to return.
func DotProduct[E any](lhs Sequence[E], rhs Sequence[E], product func(E, E) E, sum func(E, E) E) (E, error) {
	var result E
	//
	if err := checkSameSize(lhs, rhs); err != nil {
		return result, err
	} else if lhs.Len() == 0 {
		return result, fmt.Errorf("%w: no identity provided", ErrEmptyVector)
	}
	//
	result = product(lhs.Get(0), rhs.Get(0))
	//
	for i := 1; i < lhs.Len(); i++ {
		result = sum(result, product(lhs.Get(i), rhs.Get(i)))
	}
	//
	return result, nil
}

// DotProductOr is like DotProduct, except that the sum starts from the given
// identity.  Hence, empty vectors are permitted and give the identity.
func DotProductOr[E any](lhs Sequence[E], rhs Sequence[E], product func(E, E) E, sum func(E, E) E,
	identity E) (E, error) {
	var result = identity
	//
	if err := checkSameSize(lhs, rhs); err != nil {
		return result, err
	}
	//
	for i := range lhs.Len() {
		result = sum(result, product(lhs.Get(i), rhs.Get(i)))
	}
	//
	return result, nil
}

func checkSameSize[E any](lhs Sequence[E], rhs Sequence[E]) error {
	if lhs.Len() != rhs.Len() {
		return fmt.Errorf("%w: vectors of size %d and %d", ErrSizeMismatch, lhs.Len(), rhs.Len())
	}
	//
	return nil
}

// toSlice copies out the elements of a sequence.
func toSlice[E any](items Sequence[E]) []E {
	if arr, ok := items.(Array[E]); ok {
		return arr.ToSlice()
	}
	//
	data := make([]E, items.Len())
	//
	for i := range data {
		data[i] = items.Get(i)
	}
	//
	return data
}
