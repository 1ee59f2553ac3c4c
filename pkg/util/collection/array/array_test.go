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
	"math"
	"testing"

	"github.com/consensys/go-matteray/pkg/util"
	"github.com/consensys/go-matteray/pkg/util/assert"
	"github.com/consensys/go-matteray/pkg/util/collection/hash"
	"github.com/google/go-cmp/cmp"
)

func Test_Array_01(t *testing.T) {
	arr := Of(1, 2, 3)
	//
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 1, arr.Get(0))
	assert.Equal(t, 3, arr.Get(2))
	assert.Equal(t, "[1,2,3]", arr.String())
}

func Test_Array_02(t *testing.T) {
	arr := Empty[string]()
	//
	assert.Equal(t, 0, arr.Len())
	assert.Equal(t, "[]", arr.String())
	assert.True(t, arr.Equals(Of[string]()))
	assert.False(t, arr.Iter().HasNext())
}

func Test_Array_03(t *testing.T) {
	arr := Of(1, 2, 3)
	//
	assert.PanicsWith(t, ErrOutOfBounds, func() { arr.Get(-1) })
	assert.PanicsWith(t, ErrOutOfBounds, func() { arr.Get(3) })
	assert.PanicsWith(t, ErrOutOfBounds, func() { Empty[int]().Get(0) })
}

func Test_Array_04(t *testing.T) {
	var (
		items = []int{1, 2, 3}
		arr   = Of(items...)
	)
	// Changing the source must not affect the array
	items[0] = 10
	assert.Equal(t, 1, arr.Get(0))
	// Changing an extracted copy must not affect the array either
	copied := arr.ToSlice()
	copied[1] = 20
	assert.Equal(t, 2, arr.Get(1))
	assert.True(t, arr.Equals(Of(1, 2, 3)))
}

func Test_Array_05(t *testing.T) {
	var (
		arr    = Of(1, 2, 3)
		small  = make([]int, 2)
		larger = []int{0, 0, 0, 9}
	)
	//
	n, err := arr.CopyTo(small)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	assert.Equal(t, 0, n)
	assert.Equal(t, []int{0, 0}, small)
	//
	n, err = arr.CopyTo(larger)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 2, 3, 9}, larger)
}

func Test_Array_06(t *testing.T) {
	var calls int
	//
	arr, err := Build(3, func(i int) *int {
		calls++
		//
		if i == 1 {
			return nil
		}
		//
		return &i
	})
	// Construction is aborted at the first absent element
	assert.ErrorIs(t, err, ErrAbsentElement)
	assert.True(t, arr == nil)
	assert.Equal(t, 2, calls)
}

func Test_Array_07(t *testing.T) {
	var (
		x   = 1
		ptr *int
	)
	//
	assert.PanicsWith(t, ErrAbsentElement, func() { Of(&x, ptr) })
	assert.PanicsWith(t, ErrAbsentElement, func() { Of[any](1, nil) })
	assert.PanicsWith(t, ErrAbsentElement, func() { New(2, func(int) []int { return nil }) })
	//
	_, err := FromSlice([]error{nil})
	assert.ErrorIs(t, err, ErrAbsentElement)
}

func Test_Array_08(t *testing.T) {
	_, err := Build(-1, func(i int) int { return i })
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.PanicsWith(t, ErrInvalidRange, func() { New(-2, func(i int) int { return i }) })
}

func Test_Array_09(t *testing.T) {
	arr := New(5, func(i int) int { return i * i })
	//
	assert.Equal(t, []int{0, 1, 4, 9, 16}, arr.ToSlice())
}

func Test_Array_10(t *testing.T) {
	arr := Of(1, 2, 3, 4, 5)
	//
	assert.True(t, arr.Slice(1, 3).Equals(Of(2, 3)))
	assert.True(t, arr.Slice(0, 5).Equals(arr))
	assert.Equal(t, 0, arr.Slice(2, 2).Len())
	assert.Equal(t, 0, arr.Slice(5, 5).Len())
	assert.True(t, arr.Slice(1, 4).Slice(1, 3).Equals(Of(3, 4)))
}

func Test_Array_11(t *testing.T) {
	arr := Of(1, 2, 3, 4, 5)
	//
	assert.PanicsWith(t, ErrOutOfBounds, func() { arr.Slice(-1, 2) })
	assert.PanicsWith(t, ErrOutOfBounds, func() { arr.Slice(0, 6) })
	assert.PanicsWith(t, ErrOutOfBounds, func() { arr.Slice(6, 6) })
	assert.PanicsWith(t, ErrInvalidRange, func() { arr.Slice(3, 1) })
	// Views are bounds checked relative to themselves
	assert.PanicsWith(t, ErrOutOfBounds, func() { arr.Slice(1, 3).Get(2) })
}

func Test_Array_12(t *testing.T) {
	arr := New(10, func(i int) int { return i })
	//
	assert.True(t, Strided(arr, 1, 3, 3).Equals(Of(1, 4, 7)))
	assert.True(t, Strided(arr, 0, 2, 5).Slice(1, 3).Equals(Of(2, 4)))
	assert.True(t, Strided(Strided(arr, 0, 2, 5), 1, 2, 2).Equals(Of(2, 6)))
	assert.Equal(t, 0, Strided(arr, 10, 1, 0).Len())
	assert.PanicsWith(t, ErrOutOfBounds, func() { Strided(arr, 1, 3, 4) })
	assert.PanicsWith(t, ErrInvalidRange, func() { Strided(arr, 0, 0, 1) })
}

func Test_Array_13(t *testing.T) {
	arr := Of(1, 2, 3)
	// Immutable arrays do not offer the mutation capability
	_, ok := arr.(MutArray[int])
	assert.False(t, ok)
	_, ok = arr.Slice(0, 2).(MutArray[int])
	assert.False(t, ok)
	// Copying an immutable array gives the same instance back
	assert.True(t, CopyOf(arr) == arr)
	assert.True(t, CopyOf(arr).Equals(arr))
}

func Test_Array_14(t *testing.T) {
	var (
		arr   = Of("a", "b", "c")
		items []string
	)
	//
	for i, s := range arr.All() {
		assert.Equal(t, arr.Get(i), s)
		//
		items = append(items, s)
	}
	//
	if diff := cmp.Diff([]string{"a", "b", "c"}, items); diff != "" {
		t.Errorf("unexpected elements (-want +got):\n%s", diff)
	}
	//
	if diff := cmp.Diff(items, arr.Iter().Collect()); diff != "" {
		t.Errorf("unexpected iteration (-want +got):\n%s", diff)
	}
}

func Test_Array_15(t *testing.T) {
	// Different lengths
	assert.False(t, Of(1, 2).Equals(Of(1, 2, 3)))
	// Different elements
	assert.False(t, Of(1, 2, 3).Equals(Of(1, 2, 4)))
	// Views and owned arrays are compared by content
	assert.True(t, Of(0, 1, 2, 3).Slice(1, 3).Equals(Of(1, 2)))
	assert.Equal(t, Of(0, 1, 2, 3).Slice(1, 3).Hash(), Of(1, 2).Hash())
	// Nil is never equal
	assert.False(t, Of(1).Equals(nil))
}

func Test_Array_16(t *testing.T) {
	for i := 0; i < 100; i++ {
		check_EqualsHash(t, util.GenerateRandomInts(5, 3), util.GenerateRandomInts(5, 3))
	}
}

func Test_Array_17(t *testing.T) {
	// Arrays of arrays are compared structurally
	lhs := Of(Of(1, 2), Of(3))
	rhs := Of(Of(0, 1, 2).Slice(1, 3), Of(3))
	//
	assert.True(t, lhs.Equals(rhs))
	assert.Equal(t, lhs.Hash(), rhs.Hash())
	assert.Equal(t, "[[1,2],[3]]", lhs.String())
}

func Test_Array_18(t *testing.T) {
	set := hash.NewSet[Array[int]](0)
	// Arrays can be used as keys, since they are values
	assert.False(t, set.Insert(Of(1, 2, 3)))
	assert.True(t, set.Insert(New(3, func(i int) int { return i + 1 })))
	assert.True(t, set.Contains(Of(0, 1, 2, 3, 4).Slice(1, 4)))
	assert.False(t, set.Contains(Of(1, 2)))
	assert.Equal(t, 1, set.Size())
}

func Test_Array_19(t *testing.T) {
	// Same element set, different order
	assert.True(t, Of(1, 2).Hash() != Of(2, 1).Hash())
	// Documented fold: seed 1, then h*31 + e
	assert.Equal(t, uint64((31+1)*31+2), Of(1, 2).Hash())
	assert.Equal(t, uint64(1), Empty[int]().Hash())
}

func Test_Array_20(t *testing.T) {
	// Signed zeros are equal, including for named float types
	check_Consistent(t, []float64{negZero, 1}, []float64{0, 1})
	check_Consistent(t, []celsius{celsius(negZero)}, []celsius{0})
	check_Consistent(t, [][2]float32{{float32(negZero), 1}}, [][2]float32{{0, 1}})
}

func Test_Array_21(t *testing.T) {
	var x, y = 7, 7
	// Slices are compared deeply, hence the pointers they hold are followed
	check_Consistent(t, [][]*int{{&x}}, [][]*int{{&y}})
	// Whereas pointers held directly are compared by identity
	assert.False(t, Of(&x).Equals(Of(&y)))
	check_Consistent(t, []*int{&x}, []*int{&x})
}

func Test_Array_22(t *testing.T) {
	// Interface fields holding incomparable values
	check_Consistent(t, []boxed{{[]int{1}}, {2}}, []boxed{{[]int{1}}, {2}})
	check_Consistent(t, []boxed{{celsius(negZero)}}, []boxed{{celsius(0)}})
	assert.False(t, Of(boxed{[]int{1}}).Equals(Of(boxed{[]int{2}})))
	assert.False(t, Of(boxed{1}).Equals(Of(boxed{[]int{1}})))
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_EqualsHash(t *testing.T, lhs []int, rhs []int) {
	var (
		l = Of(lhs...)
		r = Of(rhs...)
	)
	// Equality must agree with the underlying slices, and imply equal hashes.
	assert.Equal(t, cmp.Equal(lhs, rhs), l.Equals(r))
	assert.Equal(t, l.Equals(r), r.Equals(l))
	//
	if l.Equals(r) && l.Hash() != r.Hash() {
		t.Errorf("equal arrays %s and %s have different hashes", l, r)
	}
}

type celsius float64

type boxed struct {
	value any
}

// Constant expressions cannot produce a negative zero.
var negZero = math.Copysign(0, -1)

// Check two (equal) arrays agree on equality and hashing, and can be found in
// a hash set using either.
func check_Consistent[E any](t *testing.T, lhs []E, rhs []E) {
	t.Helper()
	//
	var (
		l   = Of(lhs...)
		r   = Of(rhs...)
		set = hash.NewSet[Array[E]](0)
	)
	//
	assert.True(t, l.Equals(r), "%s != %s", l, r)
	assert.True(t, r.Equals(l), "%s != %s", r, l)
	assert.Equal(t, l.Hash(), r.Hash())
	//
	set.Insert(l)
	assert.True(t, set.Contains(r))
}
