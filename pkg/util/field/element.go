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
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/go-matteray/pkg/util/collection/hash"
)

// An Element of a prime-order field.
type Element[Operand any] interface {
	fmt.Stringer
	hash.Hasher[Operand]
	// Add x+y
	Add(y Operand) Operand
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y Operand) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// Compute x * y
	Mul(y Operand) Operand
	// Compute x⁻¹, or 0 if x = 0.
	Inverse() Operand
	// Compute x - y
	Sub(y Operand) Operand
	// Text returns the numerical value of x in the given base.
	Text(base int) string
	// Initialise this element from a set of big endian bytes.
	SetBytes([]byte) Operand
	// Initialise this element from a uint64 value.
	SetUint64(uint64) Operand
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// BigInt construct a field element from a given big.Int.  Negative values are
// mapped to their additive inverse.
func BigInt[F Element[F]](val big.Int) F {
	var element F
	//
	if val.Sign() < 0 {
		var abs big.Int
		//
		abs.Neg(&val)
		//
		return element.Sub(BigInt[F](abs))
	}
	//
	return element.SetBytes(val.Bytes())
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// FromBigEndianBytes constructs a field element from an array of bytes given in
// big endian order.
func FromBigEndianBytes[F Element[F]](bytes []byte) F {
	var element F
	//
	return element.SetBytes(bytes)
}

// TwoPowN constructs a field element representing 2^n
func TwoPowN[F Element[F]](n uint) F {
	var two F
	//
	return Pow(two.SetUint64(2), uint64(n))
}

// Parse a field element from a string holding either a decimal or a hex (i.e.
// prefixed with "0x") number, which may be negative.  Values which are not
// within the field are reported as errors, rather than being silently reduced.
func Parse[F Element[F]](text string) (F, error) {
	var (
		val      big.Int
		ok       bool
		element  F
		negative = strings.HasPrefix(text, "-")
		digits   = strings.TrimPrefix(text, "-")
	)
	//
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		_, ok = val.SetString(digits[2:], 16)
	} else {
		_, ok = val.SetString(digits, 10)
	}
	//
	if !ok {
		return element, fmt.Errorf("invalid number \"%s\"", text)
	} else if val.Cmp(element.Modulus()) >= 0 {
		return element, fmt.Errorf("number %s outside field (modulus %s)", text, element.Modulus())
	} else if negative {
		val.Neg(&val)
	}
	//
	return BigInt[F](val), nil
}
