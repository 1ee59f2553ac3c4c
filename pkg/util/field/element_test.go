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
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-matteray/pkg/util/assert"
	"github.com/consensys/go-matteray/pkg/util/collection/array"
	"github.com/consensys/go-matteray/pkg/util/collection/matrix"
	"github.com/consensys/go-matteray/pkg/util/field/bls12_377"
)

type felt = bls12_377.Element

func init() {
	// make sure the interface is adhered to.
	_ = Element[bls12_377.Element](bls12_377.Element{})
}

func TestBatchInvert(t *testing.T) {
	s := make([]felt, 400)

	for i := range s {
		// getting a zero with considerable probability
		s[i] = Uint64[felt](rand.Uint64N(16))
	}

	for i := range s {
		inverses := BatchInvert(array.Of(s[:i]...))

		assert.Equal(t, i, inverses.Len())

		for j := range i {
			assert.Equal(t, s[j].Inverse(), inverses.Get(j), "on slice %v, at index %d", s[:i], j)
		}
	}
}

func Test_Parse_01(t *testing.T) {
	check_Parse(t, "0", "0")
	check_Parse(t, "123", "123")
	check_Parse(t, "0x1f", "31")
	check_Parse(t, "-1", "-1")
	// p - 1 is printed as -1
	check_Parse(t, "0x12ab655e9a2ca55660b44d1e5c37b00159aa76fed00000010a11800000000000", "-1")
}

func Test_Parse_02(t *testing.T) {
	for _, text := range []string{"", "-", "abc", "1.5", "0xzz",
		"0x12ab655e9a2ca55660b44d1e5c37b00159aa76fed00000010a11800000000001"} {
		_, err := Parse[felt](text)
		assert.True(t, err != nil, "parsed \"%s\"", text)
	}
}

func Test_Parse_03(t *testing.T) {
	minusTwo, err := Parse[felt]("-2")
	assert.NoError(t, err)
	assert.True(t, minusTwo.Add(Uint64[felt](2)).IsZero())
}

func Test_Sum_01(t *testing.T) {
	var items = array.New(10, func(i int) felt { return Uint64[felt](uint64(i + 1)) })
	//
	assert.Equal(t, Uint64[felt](55), Sum(items))
	assert.Equal(t, Uint64[felt](3628800), Product(items))
	assert.True(t, Sum(array.Empty[felt]()).IsZero())
	assert.True(t, Product(array.Empty[felt]()).IsOne())
}

func Test_DotProduct_01(t *testing.T) {
	var (
		lhs = array.Of(Uint64[felt](1), Uint64[felt](2), Uint64[felt](3))
		rhs = array.Of(Uint64[felt](4), Uint64[felt](5), Uint64[felt](6))
	)
	//
	res, err := DotProduct(lhs, rhs)
	assert.NoError(t, err)
	assert.Equal(t, Uint64[felt](32), res)
	//
	_, err = DotProduct(lhs, rhs.Slice(0, 2))
	assert.ErrorIs(t, err, array.ErrSizeMismatch)
}

func Test_MatrixProduct_01(t *testing.T) {
	var (
		lhs = matrix.New(2, 3, func(r, c int) felt { return Uint64[felt](uint64(r*3 + c + 1)) })
		rhs = matrix.New(3, 2, func(r, c int) felt { return Uint64[felt](uint64(r*2 + c + 7)) })
	)
	//
	res, err := MatrixProduct(lhs, rhs)
	assert.NoError(t, err)
	assert.Equal(t, "[[58,64],[139,154]]", res.String())
}

func Test_TwoPowN_01(t *testing.T) {
	assert.Equal(t, Uint64[felt](1024), TwoPowN[felt](10))
	assert.Equal(t, Uint64[felt](1), TwoPowN[felt](0))
}

func check_Parse(t *testing.T, text string, expected string) {
	t.Helper()
	//
	actual, err := Parse[felt](text)
	//
	assert.NoError(t, err)
	assert.Equal(t, expected, actual.String())
}

func Test_GetConfig_01(t *testing.T) {
	assert.Equal(t, BLS12_377, *GetConfig("BLS12-377"))
	assert.Equal(t, INTEGER, *GetConfig("int"))
	assert.True(t, GetConfig("gf251") == nil)
	assert.Equal(t, []string{"int", "u256", "bls12-377"}, ConfigNames())
}
