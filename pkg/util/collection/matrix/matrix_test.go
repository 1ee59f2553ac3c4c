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
	"math"
	"strings"
	"testing"

	"github.com/consensys/go-matteray/pkg/util/assert"
	"github.com/consensys/go-matteray/pkg/util/collection/array"
	"github.com/consensys/go-matteray/pkg/util/collection/hash"
	"github.com/google/go-cmp/cmp"
)

var grid3x3 = [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}

func Test_Matrix_01(t *testing.T) {
	m := square3x3()
	//
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 3, m.Columns())
	assert.Equal(t, 9, m.Size())
	assert.True(t, m.IsSquare())
	assert.Equal(t, 6, m.Get(1, 2))
	assert.Equal(t, "[[1,2,3],[4,5,6],[7,8,9]]", m.String())
}

func Test_Matrix_02(t *testing.T) {
	m := Of(array.Of(1, 2, 3), array.Of(4, 5, 6))
	//
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Columns())
	assert.False(t, m.IsSquare())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.ToSlice())
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m.ToSlice2D())
}

func Test_Matrix_03(t *testing.T) {
	m := square3x3()
	//
	assert.PanicsWith(t, ErrOutOfBounds, func() { m.Get(3, 0) })
	assert.PanicsWith(t, ErrOutOfBounds, func() { m.Get(0, -1) })
	assert.PanicsWith(t, ErrOutOfBounds, func() { m.Get(-1, 1) })
	assert.PanicsWith(t, ErrOutOfBounds, func() { m.Row(3) })
	assert.PanicsWith(t, ErrOutOfBounds, func() { m.Column(-1) })
	assert.PanicsWith(t, ErrOutOfBounds, func() { m.SubMatrix(0, 4, 0, 1) })
	assert.PanicsWith(t, ErrOutOfBounds, func() { m.SubMatrix(0, 1, -1, 1) })
	assert.PanicsWith(t, ErrInvalidRange, func() { m.SubMatrix(2, 1, 0, 1) })
	assert.PanicsWith(t, ErrInvalidRange, func() { m.SubMatrix(0, 1, 3, 2) })
}

func Test_Matrix_04(t *testing.T) {
	var (
		rows = [][]int{{1, 2}, {3, 4}}
		m    = must(FromSlice2D(rows))
	)
	// Changing the source must not affect the matrix
	rows[0][0] = 10
	assert.Equal(t, 1, m.Get(0, 0))
	// Nor must changing an extracted copy
	copied := m.ToSlice2D()
	copied[1][1] = 40
	flat := m.ToSlice()
	flat[0] = 11
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, m.ToSlice2D())
	// Mutation is not a capability of constructed matrices
	_, ok := m.(MutMatrix[int])
	assert.False(t, ok)
}

func Test_Matrix_05(t *testing.T) {
	_, err := FromSlice2D([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrInvalidRange)
	//
	_, err = FromRows(array.Of(1), array.Of(2, 3))
	assert.ErrorIs(t, err, ErrInvalidRange)
	//
	_, err = FromRows(array.Of(1), nil)
	assert.ErrorIs(t, err, ErrAbsentElement)
	//
	_, err = FromSlice2D([][]int{{1}, nil})
	assert.ErrorIs(t, err, ErrAbsentElement)
	//
	assert.PanicsWith(t, ErrInvalidRange, func() { Of(array.Of(1, 2), array.Of(3)) })
}

func Test_Matrix_06(t *testing.T) {
	var x = 1
	//
	m, err := Build(2, 2, func(r, c int) *int {
		if r == 1 && c == 0 {
			return nil
		}
		//
		return &x
	})
	//
	assert.ErrorIs(t, err, ErrAbsentElement)
	assert.True(t, m == nil)
	assert.True(t, strings.Contains(err.Error(), "row 1, column 0"), err.Error())
	//
	_, err = FromSlice2D([][]*int{{&x, nil}})
	assert.ErrorIs(t, err, ErrAbsentElement)
	assert.PanicsWith(t, ErrAbsentElement, func() { Square(1, func(int, int) any { return nil }) })
}

func Test_Matrix_07(t *testing.T) {
	_, err := Build(-1, 2, func(r, c int) int { return r })
	assert.ErrorIs(t, err, ErrInvalidRange)
	//
	_, err = Build(2, -1, func(r, c int) int { return r })
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func Test_Matrix_08(t *testing.T) {
	// Three rows, no columns
	m := New(3, 0, func(r, c int) int { return r + c })
	//
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 0, m.Columns())
	assert.Equal(t, 0, m.Size())
	assert.False(t, m.Iter().HasNext())
	assert.Equal(t, 0, m.Row(1).Len())
	assert.Equal(t, 3, m.RowArray().Len())
	assert.Equal(t, 0, m.ColumnArray().Len())
	assert.Equal(t, "[[],[],[]]", m.String())
	assert.PanicsWith(t, ErrOutOfBounds, func() { m.Column(0) })
	assert.PanicsWith(t, ErrOutOfBounds, func() { m.Get(0, 0) })
	// Shape matters, even without elements
	assert.False(t, m.Equals(Empty[int]()))
	assert.True(t, m.Equals(New(3, 0, func(r, c int) int { return 0 })))
}

func Test_Matrix_09(t *testing.T) {
	m := Empty[string]()
	//
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Columns())
	assert.True(t, m.IsSquare())
	assert.Equal(t, "[]", m.String())
	// All empty rows collapse to the empty matrix
	assert.True(t, m.Equals(Of(array.Empty[string](), array.Empty[string]())))
	assert.True(t, m.Equals(must(FromSlice2D([][]string{}))))
}

func Test_Matrix_10(t *testing.T) {
	m := square3x3()
	//
	assert.True(t, m.Row(1).Equals(array.Of(4, 5, 6)))
	assert.True(t, m.Column(1).Equals(array.Of(2, 5, 8)))
	assert.Equal(t, "[[1,2,3],[4,5,6],[7,8,9]]", array.Format[array.Array[int]](m.RowArray()))
	assert.Equal(t, "[[1,4,7],[2,5,8],[3,6,9]]", array.Format[array.Array[int]](m.ColumnArray()))
}

func Test_Matrix_11(t *testing.T) {
	var (
		m   = square3x3()
		sub = m.SubMatrix(1, 3, 1, 3)
	)
	//
	assert.True(t, sub.Equals(Of(array.Of(5, 6), array.Of(8, 9))))
	assert.True(t, sub.Row(1).Equals(array.Of(8, 9)))
	assert.True(t, sub.Column(0).Equals(array.Of(5, 8)))
	assert.Equal(t, []int{5, 6, 8, 9}, sub.ToSlice())
	// Views of views
	inner := sub.SubMatrix(1, 2, 0, 2)
	assert.Equal(t, [][]int{{8, 9}}, inner.ToSlice2D())
	assert.Equal(t, 9, inner.Get(0, 1))
	// Empty views
	assert.Equal(t, 0, m.SubMatrix(3, 3, 0, 3).Size())
	assert.Equal(t, 2, m.SubMatrix(0, 2, 3, 3).Rows())
	assert.Equal(t, 0, m.SubMatrix(0, 2, 3, 3).Row(1).Len())
}

func Test_Matrix_12(t *testing.T) {
	var (
		m      = square3x3()
		small  = make([]int, 8)
		larger = make([]int, 10)
	)
	//
	n, err := m.CopyTo(small)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	assert.Equal(t, 0, n)
	//
	n, err = m.SubMatrix(0, 2, 1, 3).CopyTo(larger)
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []int{2, 3, 5, 6, 0, 0, 0, 0, 0, 0}, larger)
}

func Test_Matrix_13(t *testing.T) {
	var (
		m     = square3x3()
		items []int
		index []Index
	)
	//
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Iter().Collect()); diff != "" {
		t.Errorf("unexpected iteration (-want +got):\n%s", diff)
	}
	//
	for i, e := range m.SubMatrix(1, 3, 0, 2).All() {
		index = append(index, i)
		items = append(items, e)
	}
	//
	if diff := cmp.Diff([]Index{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, index); diff != "" {
		t.Errorf("unexpected positions (-want +got):\n%s", diff)
	}
	//
	if diff := cmp.Diff([]int{4, 5, 7, 8}, items); diff != "" {
		t.Errorf("unexpected elements (-want +got):\n%s", diff)
	}
	// Early termination
	for i := range m.All() {
		if i.Row == 0 && i.Column == 1 {
			break
		}
	}
}

func Test_Matrix_14(t *testing.T) {
	check_EqualsHash(t, grid3x3, grid3x3)
	check_EqualsHash(t, [][]int{{1, 2}, {3, 4}}, [][]int{{1, 2}, {3, 4}})
	// A view is equal to a freshly constructed matrix
	var (
		sub   = square3x3().SubMatrix(0, 2, 0, 2)
		fresh = Of(array.Of(1, 2), array.Of(4, 5))
	)
	//
	assert.True(t, sub.Equals(fresh))
	assert.True(t, fresh.Equals(sub))
	assert.Equal(t, fresh.Hash(), sub.Hash())
}

func Test_Matrix_15(t *testing.T) {
	var (
		wide = Of(array.Of(1, 2, 3), array.Of(4, 5, 6))
		tall = Of(array.Of(1, 4), array.Of(2, 5), array.Of(3, 6))
		flat = FromRow(array.Of(1, 2, 3, 4, 5, 6))
	)
	// Shape is compared before elements
	assert.False(t, wide.Equals(tall))
	assert.False(t, wide.Equals(flat))
	assert.False(t, wide.Equals(Of(array.Of(1, 2, 3), array.Of(4, 5, 7))))
	assert.False(t, wide.Equals(nil))
	// The same row-major elements hash identically, regardless of shape.
	assert.Equal(t, wide.Hash(), flat.Hash())
}

func Test_Matrix_16(t *testing.T) {
	m := Of(array.Of(1, 2), array.Of(3, 4))
	// ((((1*31+1)*31+2)*31+3)*31+4)
	assert.Equal(t, uint64(955331), m.Hash())
	assert.Equal(t, uint64(1), Empty[int]().Hash())
}

func Test_Matrix_17(t *testing.T) {
	var (
		table = hash.NewMap[Matrix[int], string](4)
		set   = hash.NewSet[Matrix[int]](4)
	)
	//
	table.Insert(square3x3(), "full")
	table.Insert(square3x3().SubMatrix(1, 3, 1, 3), "corner")
	//
	v, ok := table.Get(Of(array.Of(5, 6), array.Of(8, 9)))
	assert.True(t, ok)
	assert.Equal(t, "corner", v)
	assert.False(t, table.ContainsKey(Of(array.Of(5, 8), array.Of(6, 9))))
	//
	assert.False(t, set.Insert(square3x3()))
	assert.True(t, set.Insert(must(FromSlice2D(grid3x3))))
	assert.Equal(t, 1, set.Size())
}

func Test_Matrix_18(t *testing.T) {
	var (
		row    = FromRow(array.Of("a", "b", "c"))
		column = FromColumn(array.Of("a", "b", "c"))
	)
	//
	assert.Equal(t, 1, row.Rows())
	assert.Equal(t, 3, row.Columns())
	assert.Equal(t, 3, column.Rows())
	assert.Equal(t, 1, column.Columns())
	assert.True(t, row.Row(0).Equals(column.Column(0)))
	assert.Equal(t, "[[a],[b],[c]]", column.String())
}

func Test_Matrix_19(t *testing.T) {
	m := square3x3()
	// Matrices of this package are returned as is
	assert.True(t, CopyOf(m) == m)
	// Whilst other implementations are copied
	other := CopyOf[int](transposed[int]{m})
	assert.True(t, other.Equals(Transpose(m)))
	_, ok := other.(*immutableMatrix[int])
	assert.True(t, ok)
}

func Test_Matrix_20(t *testing.T) {
	var x, y = 7, 7
	//
	check_Consistent(t, [][]float64{{negZero, 1}, {2, negZero}}, [][]float64{{0, 1}, {2, 0}})
	check_Consistent(t, [][]celsius{{celsius(negZero)}}, [][]celsius{{0}})
	check_Consistent(t, [][][]*int{{{&x}, {}}}, [][][]*int{{{&y}, {}}})
	check_Consistent(t, [][]boxed{{{[]int{1}}}, {{"a"}}}, [][]boxed{{{[]int{1}}}, {{"a"}}})
	//
	lhs := must(FromSlice2D([][]boxed{{{[]int{1}}}}))
	rhs := must(FromSlice2D([][]boxed{{{[]int{2}}}}))
	assert.False(t, lhs.Equals(rhs))
}

func Test_Matrix_21(t *testing.T) {
	// Views of equal values agree with their copies
	var data = [][]float64{{negZero, 1, 2}, {3, 4, negZero}}
	//
	m := must(FromSlice2D(data))
	v := m.SubMatrix(0, 2, 1, 3)
	c := New(2, 2, func(r, col int) float64 { return [][]float64{{1, 2}, {4, 0}}[r][col] })
	//
	assert.True(t, v.Equals(c))
	assert.Equal(t, v.Hash(), c.Hash())
	assert.Equal(t, m.Row(1).Hash(), array.Of(3.0, 4.0, 0.0).Hash())
}

func Test_Matrix_22(t *testing.T) {
	var (
		m      = square3x3()
		view   = m.SubMatrix(1, 3, 0, 2)
		buffer = make([]int, 5)
	)
	// Views copy out only their own region
	if diff := cmp.Diff([]int{4, 5, 7, 8}, view.ToSlice()); diff != "" {
		t.Errorf("unexpected elements (-want +got):\n%s", diff)
	}
	//
	if diff := cmp.Diff([][]int{{4, 5}, {7, 8}}, view.ToSlice2D()); diff != "" {
		t.Errorf("unexpected rows (-want +got):\n%s", diff)
	}
	//
	n, err := view.Rotate(Left).CopyTo(buffer)
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []int{5, 8, 4, 7, 0}, buffer)
	// Empty views at the edges of storage
	edge := m.SubMatrix(1, 3, 3, 3)
	assert.Equal(t, 0, len(edge.ToSlice()))
	assert.Equal(t, 2, len(edge.ToSlice2D()))
	assert.Equal(t, 0, edge.Row(1).Len())
	assert.Equal(t, 0, m.SubMatrix(3, 3, 0, 3).Size())
}

func square3x3() Matrix[int] {
	return must(FromSlice2D(grid3x3))
}

func check_EqualsHash(t *testing.T, lhs [][]int, rhs [][]int) {
	var (
		l = must(FromSlice2D(lhs))
		r = must(FromSlice2D(rhs))
	)
	//
	assert.True(t, l.Equals(r), "%s != %s", l, r)
	assert.True(t, r.Equals(l), "%s != %s", r, l)
	assert.Equal(t, l.Hash(), r.Hash())
}

// transposed is a foreign matrix implementation, presenting another matrix
// with rows and columns swapped.
type transposed[E any] struct {
	Matrix[E]
}

func (p transposed[E]) Get(row int, column int) E {
	return p.Matrix.Get(column, row)
}

func (p transposed[E]) Rows() int {
	return p.Matrix.Columns()
}

func (p transposed[E]) Columns() int {
	return p.Matrix.Rows()
}

type celsius float64

type boxed struct {
	value any
}

// Constant expressions cannot produce a negative zero.
var negZero = math.Copysign(0, -1)

// Check two (equal) matrices agree on equality and hashing, and can be found in
// a hash set using either.
func check_Consistent[E any](t *testing.T, lhs [][]E, rhs [][]E) {
	t.Helper()
	//
	var (
		l   = must(FromSlice2D(lhs))
		r   = must(FromSlice2D(rhs))
		set = hash.NewSet[Matrix[E]](0)
	)
	//
	assert.True(t, l.Equals(r), "%s != %s", l, r)
	assert.True(t, r.Equals(l), "%s != %s", r, l)
	assert.Equal(t, l.Hash(), r.Hash())
	//
	set.Insert(l)
	assert.True(t, set.Contains(r))
}
