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
package word

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Uint256 is an unsigned 256bit integer.  Arithmetic is modulo 2^256.
type Uint256 struct {
	val uint256.Int
}

// NewUint256 constructs a 256bit word from a uint64 value.
func NewUint256(val uint64) Uint256 {
	var w Uint256
	//
	w.val.SetUint64(val)
	//
	return w
}

// ParseUint256 parses an unsigned integer given in decimal, or in hex (i.e.
// prefixed with "0x").  Negative values, and those which do not fit in 256
// bits, are rejected.
func ParseUint256(text string) (Uint256, error) {
	var (
		w   Uint256
		val big.Int
	)
	//
	if _, ok := val.SetString(text, 0); !ok {
		return w, fmt.Errorf("invalid integer \"%s\"", text)
	} else if val.Sign() < 0 {
		return w, fmt.Errorf("negative integer \"%s\"", text)
	} else if overflow := w.val.SetFromBig(&val); overflow {
		return w, fmt.Errorf("integer \"%s\" exceeds 256 bits", text)
	}
	//
	return w, nil
}

// Add x + y
func (x Uint256) Add(y Uint256) Uint256 {
	var res Uint256
	//
	res.val.Add(&x.val, &y.val)
	//
	return res
}

// Sub x - y
func (x Uint256) Sub(y Uint256) Uint256 {
	var res Uint256
	//
	res.val.Sub(&x.val, &y.val)
	//
	return res
}

// Mul x * y
func (x Uint256) Mul(y Uint256) Uint256 {
	var res Uint256
	//
	res.val.Mul(&x.val, &y.val)
	//
	return res
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Uint256) Cmp(y Uint256) int {
	return x.val.Cmp(&y.val)
}

// IsZero implementation for the Word interface.
func (x Uint256) IsZero() bool {
	return x.val.IsZero()
}

// Equals implementation for the hash.Hasher interface.
func (x Uint256) Equals(y Uint256) bool {
	return x.val.Eq(&y.val)
}

// Hash implementation for the hash.Hasher interface.
func (x Uint256) Hash() uint64 {
	var h uint64
	//
	for _, limb := range x.val {
		h = h*31 + limb
	}
	//
	return h
}

func (x Uint256) String() string {
	return x.val.ToBig().String()
}
