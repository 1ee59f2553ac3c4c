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
package cmd

import (
	"fmt"

	"github.com/consensys/go-matteray/pkg/util/collection/array"
	"github.com/consensys/go-matteray/pkg/util/collection/matrix"
	"github.com/consensys/go-matteray/pkg/util/field"
	"github.com/consensys/go-matteray/pkg/util/word"
)

// Reducer combines a sequence of elements into a single element.
type Reducer[T word.Word[T]] struct {
	// Name of this reducer, as used on the command line.
	name string
	// Combines two elements.
	accumulate func(T, T) T
	// Result when there is nothing to combine, or nil if there is no sensible
	// result in that case.
	identity *T
}

// REDUCERS identifies the supported reductions.
var REDUCERS = []string{"sum", "product", "min", "max"}

// Construct the reducer with a given name, for a given kind of element.
func newReducer[T word.Word[T]](name string, elems Elements[T]) (Reducer[T], error) {
	switch name {
	case "sum":
		return Reducer[T]{name, add[T], &elems.zero}, nil
	case "product":
		return Reducer[T]{name, mul[T], &elems.one}, nil
	case "min":
		return Reducer[T]{name, word.Min[T], nil}, nil
	case "max":
		return Reducer[T]{name, word.Max[T], nil}, nil
	}
	//
	return Reducer[T]{}, fmt.Errorf("unknown reduction \"%s\"", name)
}

// Reduce a sequence of elements, returning false if there was nothing to reduce
// and no identity exists.
func (p Reducer[T]) Reduce(items array.Sequence[T]) (T, bool) {
	if p.identity != nil {
		return array.AggregateOr(items, p.accumulate, *p.identity), true
	}
	//
	return array.Aggregate(items, p.accumulate)
}

// ReduceAll reduces all elements of a matrix, in row-major order.
func (p Reducer[T]) ReduceAll(m matrix.Matrix[T]) (T, bool) {
	if p.identity != nil {
		return matrix.AggregateOr(m, p.accumulate, *p.identity), true
	}
	//
	return matrix.Aggregate(m, p.accumulate)
}

// ReduceAlong reduces each row (or column) of a matrix separately, giving the
// textual form of each result (or "-" where there was nothing to reduce).
func (p Reducer[T]) ReduceAlong(m matrix.Matrix[T], axis matrix.Axis) array.Array[label] {
	var lines = m.RowArray()
	//
	if axis == matrix.Columns {
		lines = m.ColumnArray()
	}
	//
	return array.ApplyForEach(lines, func(line array.Array[T]) label {
		if val, ok := p.Reduce(line); ok {
			return label(val.String())
		}
		//
		return "-"
	})
}

// Sort the elements of each row in a matrix.
func sortRows[T word.Word[T]](m matrix.Matrix[T], descending bool) matrix.Matrix[T] {
	var compare = word.Compare[T]
	//
	if descending {
		compare = func(x, y T) int { return y.Cmp(x) }
	}
	//
	rows := array.ApplyForEach(m.RowArray(), func(row array.Array[T]) array.Array[T] {
		return array.ToSortedFunc(row, compare)
	})
	//
	return matrix.New(m.Rows(), m.Columns(), func(r, c int) T { return rows.Get(r).Get(c) })
}

// Extract the elements of a matrix which is a single row or column.
func asVector[T any](m matrix.Matrix[T]) (array.Array[T], error) {
	switch {
	case m.Size() == 0:
		return array.Empty[T](), nil
	case m.Rows() == 1:
		return m.Row(0), nil
	case m.Columns() == 1:
		return m.Column(0), nil
	}
	//
	return nil, fmt.Errorf("expected a single row or column, found %d x %d matrix", m.Rows(), m.Columns())
}

// Compute the dot product of two matrices, each of which must be a single row
// or column.
func dotProduct[T word.Word[T]](lhs matrix.Matrix[T], rhs matrix.Matrix[T]) (T, error) {
	var empty T
	//
	l, err := asVector(lhs)
	if err != nil {
		return empty, err
	}
	//
	r, err := asVector(rhs)
	if err != nil {
		return empty, err
	}
	//
	return array.DotProduct(l, r, mul[T], add[T])
}

// Multiply two matrices together.
func multiply[T word.Word[T]](lhs matrix.Matrix[T], rhs matrix.Matrix[T]) (matrix.Matrix[T], error) {
	return matrix.Multiply(lhs, rhs, mul[T], add[T])
}

// Invert every element of a matrix over a prime field, where zero is left as
// is.
func invert[F field.Element[F]](m matrix.Matrix[F]) matrix.Matrix[F] {
	var (
		columns  = m.Columns()
		inverses = field.BatchInvert(array.Of(m.ToSlice()...))
	)
	//
	return matrix.New(m.Rows(), columns, func(r, c int) F { return inverses.Get(r*columns + c) })
}

func add[T word.Word[T]](x T, y T) T {
	return x.Add(y)
}

func mul[T word.Word[T]](x T, y T) T {
	return x.Mul(y)
}
