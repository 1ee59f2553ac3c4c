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

	"github.com/consensys/go-matteray/pkg/util/collection/array"
)

// ApplyForEach constructs a new matrix of the same shape by applying a given
// function to each element of a matrix.
func ApplyForEach[E any, R any](m Matrix[E], fn func(E) R) Matrix[R] {
	return New(m.Rows(), m.Columns(), func(r, c int) R { return fn(m.Get(r, c)) })
}

// TryApplyForEach is like ApplyForEach, except that the given function may
// fail.  In such case, the first error encountered (in row-major order) is
// returned.
func TryApplyForEach[E any, R any](m Matrix[E], fn func(E) (R, error)) (Matrix[R], error) {
	return TryBuild(m.Rows(), m.Columns(), func(r, c int) (R, error) { return fn(m.Get(r, c)) })
}

// MergeForEach constructs a new matrix by combining the elements at the same
// position in two matrices.  The result has the smaller number of rows, and the
// smaller number of columns, of the two.
func MergeForEach[E1 any, E2 any, R any](lhs Matrix[E1], rhs Matrix[E2], fn func(E1, E2) R) Matrix[R] {
	var (
		rows    = min(lhs.Rows(), rhs.Rows())
		columns = min(lhs.Columns(), rhs.Columns())
	)
	//
	return New(rows, columns, func(r, c int) R { return fn(lhs.Get(r, c), rhs.Get(r, c)) })
}

// Aggregate combines all elements of a matrix in row-major order using a given
// accumulator.  This returns false when there was nothing to aggregate.
func Aggregate[E any](m Matrix[E], accumulator func(E, E) E) (E, bool) {
	return array.Aggregate[E](flattened[E]{m}, accumulator)
}

// AggregateOr is like Aggregate, but returns a given identity when there was
// nothing to aggregate.
func AggregateOr[E any](m Matrix[E], accumulator func(E, E) E, identity E) E {
	return array.AggregateOr[E](flattened[E]{m}, accumulator, identity)
}

// Transpose constructs a new matrix whose rows are the columns of the given
// matrix.
func Transpose[E any](m Matrix[E]) Matrix[E] {
	return New(m.Columns(), m.Rows(), func(r, c int) E { return m.Get(c, r) })
}

// Multiply computes the product of two matrices, where each entry (r, c) of the
// result is the dot product of row r of the left-hand side with column c of the
// right-hand side.  This fails with ErrSizeMismatch when the number of columns
// on the left differs from the number of rows on the right, and with
// ErrEmptyVector when that number is zero.
func Multiply[E any](lhs Matrix[E], rhs Matrix[E], product func(E, E) E, sum func(E, E) E) (Matrix[E], error) {
	if lhs.Columns() != rhs.Rows() {
		return nil, fmt.Errorf("%w: %d x %d matrix times %d x %d matrix", ErrSizeMismatch,
			lhs.Rows(), lhs.Columns(), rhs.Rows(), rhs.Columns())
	} else if lhs.Columns() == 0 {
		return nil, fmt.Errorf("%w: inner dimension is zero", ErrEmptyVector)
	}
	//
	return TryBuild(lhs.Rows(), rhs.Columns(), func(r, c int) (E, error) {
		return array.DotProduct(lhs.Row(r), rhs.Column(c), product, sum)
	})
}

// flattened presents the elements of a matrix as a sequence in row-major order.
type flattened[E any] struct {
	m Matrix[E]
}

func (p flattened[E]) Len() int {
	return p.m.Size()
}

func (p flattened[E]) Get(index int) E {
	var columns = p.m.Columns()
	//
	return p.m.Get(index/columns, index%columns)
}
