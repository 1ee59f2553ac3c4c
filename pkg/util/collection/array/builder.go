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

	"github.com/consensys/go-matteray/pkg/util/collection/hash"
)

// Empty returns an array with no elements.
func Empty[E any]() Array[E] {
	return newImmutableArray[E](nil)
}

// Of constructs an array holding the given elements, in order.  The elements
// are copied, hence later changes to a slice passed with "..." are not seen by
// the array.  This panics with ErrAbsentElement if any element is nil.
func Of[E any](elements ...E) Array[E] {
	return must(FromSlice(elements))
}

// FromSlice constructs an array holding a copy of the given elements, failing
// with ErrAbsentElement at the first nil element.
func FromSlice[E any](elements []E) (Array[E], error) {
	return Build(len(elements), func(i int) E { return elements[i] })
}

// New constructs an array of length n whose ith element is fn(i), invoking fn
// once per index in increasing order.  This panics with ErrInvalidRange for a
// negative length, and with ErrAbsentElement if fn returns nil.
func New[E any](n int, fn func(int) E) Array[E] {
	return must(Build(n, fn))
}

// Build constructs an array of length n whose ith element is fn(i), invoking fn
// once per index in increasing order.  Construction stops at the first absent
// element, and no array is returned in that case.
func Build[E any](n int, fn func(int) E) (Array[E], error) {
	if n < 0 {
		return nil, negativeLength(n)
	}
	//
	var (
		data    = make([]E, n)
		checked = hash.MayBeAbsent[E]()
	)
	//
	for i := range n {
		ith := fn(i)
		//
		if checked && hash.IsAbsent(ith) {
			return nil, absentElement(i)
		}
		//
		data[i] = ith
	}
	//
	return newImmutableArray(data), nil
}

// TryBuild is like Build, except that fn may itself fail.  Construction stops
// at the first error (or absent element), and no array is returned in that
// case.
func TryBuild[E any](n int, fn func(int) (E, error)) (Array[E], error) {
	var err error
	//
	arr, buildErr := Build(n, func(i int) E {
		var ith E
		//
		if err == nil {
			if ith, err = fn(i); err != nil {
				err = fmt.Errorf("index %d: %w", i, err)
			}
		}
		//
		return ith
	})
	// A generator error takes priority, since it may have caused an absent
	// element to be reported.
	if err != nil {
		return nil, err
	}
	//
	return arr, buildErr
}

// CopyOf returns an immutable array equal to the given one.  Arrays constructed
// by this package are returned as is, whilst other implementations are copied
// (panicking with ErrAbsentElement if they hold any nil element).
func CopyOf[E any](array Array[E]) Array[E] {
	if arr, ok := array.(*immutableArray[E]); ok {
		return arr
	}
	//
	return New(array.Len(), array.Get)
}

// Strided returns a view of count elements of the given array, starting at
// index from and advancing by step (>= 1) each time.  For example, a step of 2
// selects every other element.  Arrays from other implementations are copied
// before the view is taken.
func Strided[E any](array Array[E], from int, step int, count int) Array[E] {
	var arr = CopyOf(array).(*immutableArray[E])
	//
	if step < 1 {
		panic(fmt.Errorf("%w: step %d", ErrInvalidRange, step))
	} else if count < 0 {
		panic(negativeLength(count))
	} else if count == 0 {
		CheckRange(from, from, arr.length)
	} else {
		CheckIndex(from, arr.length)
		CheckIndex(from+(count-1)*step, arr.length)
	}
	//
	return &immutableArray[E]{arr.data, arr.offset + from*arr.stride, arr.stride * step, count}
}

// Adopt takes ownership of a slice as the storage of a new array, after
// checking it holds no absent elements.  No copy is made, so the caller must
// not modify the slice afterwards.  This allows other containers to share
// their storage with the arrays they hand out.
func Adopt[E any](data []E) (Array[E], error) {
	if hash.MayBeAbsent[E]() {
		for i, ith := range data {
			if hash.IsAbsent(ith) {
				return nil, absentElement(i)
			}
		}
	}
	//
	return newImmutableArray(data), nil
}

func must[E any](array Array[E], err error) Array[E] {
	if err != nil {
		panic(err)
	}
	//
	return array
}
