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
package field

import (
	"github.com/consensys/go-matteray/pkg/util/collection/array"
	"github.com/consensys/go-matteray/pkg/util/collection/matrix"
)

// Pow takes a given value to the power n.
func Pow[F Element[F]](val F, n uint64) F {
	if n == 0 {
		val = val.SetUint64(1)
	} else if n > 1 {
		m := n / 2
		// Check for odd case
		if n%2 == 1 {
			tmp := val
			val = Pow(val, m)
			val = val.Mul(val).Mul(tmp)
		} else {
			// Even case is easy
			val = Pow(val, m)
			val = val.Mul(val)
		}
	}
	//
	return val
}

// Add is a function value form of x + y, suitable for use as an accumulator.
func Add[F Element[F]](x F, y F) F {
	return x.Add(y)
}

// Mul is a function value form of x * y, suitable for use as an accumulator.
func Mul[F Element[F]](x F, y F) F {
	return x.Mul(y)
}

// Sum adds together all elements of a given sequence, giving zero when there
// are none.
func Sum[F Element[F]](items array.Sequence[F]) F {
	return array.AggregateOr(items, Add[F], Zero[F]())
}

// Product multiplies together all elements of a given sequence, giving one when
// there are none.
func Product[F Element[F]](items array.Sequence[F]) F {
	return array.AggregateOr(items, Mul[F], One[F]())
}

// DotProduct computes the sum of pairwise products of two vectors, which must
// have the same (non-zero) length.
func DotProduct[F Element[F]](lhs array.Sequence[F], rhs array.Sequence[F]) (F, error) {
	return array.DotProduct(lhs, rhs, Mul[F], Add[F])
}

// MatrixProduct computes the product of two matrices over the field.
func MatrixProduct[F Element[F]](lhs matrix.Matrix[F], rhs matrix.Matrix[F]) (matrix.Matrix[F], error) {
	return matrix.Multiply(lhs, rhs, Mul[F], Add[F])
}
