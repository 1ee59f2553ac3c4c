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
)

// BatchInvert efficiently computes the inverse of every element in s, using
// a single field inversion.  Zero elements remain zero.
func BatchInvert[T Element[T]](s array.Sequence[T]) array.Array[T] {
	if s.Len() == 0 {
		return array.Empty[T]()
	}
	//
	var (
		n    = s.Len()
		zero = Zero[T]()
		one  = One[T]()
		// identifies entries which are zero
		isZero = make([]bool, n)
		// items with zeros replaced by one
		items = make([]T, n)
		// m[i] = s[i] * s[i+1] * ...
		m = make([]T, n)
	)
	//
	for i := range n {
		items[i] = s.Get(i)
		//
		if isZero[i] = items[i].IsZero(); isZero[i] {
			items[i] = one
		}
	}
	//
	m[n-1] = items[n-1]

	for i := n - 2; i >= 0; i-- {
		m[i] = m[i+1].Mul(items[i])
	}

	inv := m[0].Inverse() // inv = s[0]⁻¹ * s[1]⁻¹ * ...

	for i := range n - 1 {
		// inv = s[i]⁻¹ * s[i+1]⁻¹ * ...
		newInv := inv.Mul(items[i])
		items[i] = inv.Mul(m[i+1])
		inv = newInv
		// inv = s[i+1]⁻¹ * s[i+2]⁻¹ * ...
	}

	items[n-1] = inv
	//
	return array.New(n, func(i int) T {
		if isZero[i] {
			return zero
		}
		//
		return items[i]
	})
}
