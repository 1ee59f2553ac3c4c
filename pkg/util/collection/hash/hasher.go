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
package hash

import (
	"hash/fnv"
	"math"
	"reflect"
)

// Hasher provides a generic definition of a hashing function suitable for use
// within the hashset.  This is similar to the Hasher interface provided in
// go-set, except that it additionally includes equality.  Implementations must
// ensure that equal items always have equal hashcodes.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

// Seed is the initial value of an order-sensitive hash over a sequence of
// items.
const Seed uint64 = 1

// Fold combines the hash of the next item in a sequence into the hash
// accumulated so far.
func Fold(hash uint64, item uint64) uint64 {
	return hash*31 + item
}

// IsAbsent checks whether a given item is the nil value of a nilable kind (nil
// interface, pointer, map, slice, function or channel).  Value kinds are never
// absent.
func IsAbsent(item any) bool {
	if item == nil {
		return true
	}
	//
	switch v := reflect.ValueOf(item); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface,
		reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// MayBeAbsent checks whether items of a given type can be absent at all.  This
// allows containers to skip per-item checks for value kinds.
func MayBeAbsent[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface,
		reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// Equal determines whether two items are equal.  Items which implement Hasher
// decide for themselves, items whose dynamic values are comparable are compared
// with ==, and everything else is compared with reflect.DeepEqual.  Two absent
// items are considered equal.
func Equal[T any](lhs T, rhs T) bool {
	var (
		l = any(lhs)
		r = any(rhs)
	)
	// Absent items only equal each other
	if la, ra := IsAbsent(l), IsAbsent(r); la || ra {
		return la && ra
	}
	//
	if h, ok := l.(Hasher[T]); ok {
		return h.Equals(rhs)
	} else if reflect.ValueOf(l).Comparable() && reflect.ValueOf(r).Comparable() {
		return l == r
	}
	//
	return reflect.DeepEqual(l, r)
}

// Of computes a hashcode for a given item which is consistent with Equal.  An
// absent item hashes to 0, integers hash to their value and other items are
// hashed structurally.  Pointers are hashed by identity when the item is
// compared with ==, but by what they point to when it is compared deeply.
func Of[T any](item T) uint64 {
	var v = any(item)
	//
	if IsAbsent(v) {
		return 0
	} else if h, ok := v.(Hasher[T]); ok {
		return h.Hash()
	}
	//
	rv := reflect.ValueOf(v)
	//
	return valueHash(rv, !rv.Comparable(), 0)
}

// maxDepth bounds how far into nested values a hash looks.  Deeply equal values
// agree at every depth, so stopping early keeps hashes consistent whilst
// ensuring cyclic values terminate.
const maxDepth = 16

//nolint:revive
func valueHash(v reflect.Value, deep bool, depth int) uint64 {
	if depth > maxDepth {
		return 0
	}
	//
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return 1231
		}
		//
		return 1237
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return floatHash(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return Fold(floatHash(real(c)), floatHash(imag(c)))
	case reflect.String:
		return stringHash(v.String())
	case reflect.Slice:
		if v.IsNil() {
			return 0
		}
		//
		return sequenceHash(v, deep, depth)
	case reflect.Array:
		return sequenceHash(v, deep, depth)
	case reflect.Struct:
		var hash = Seed
		// Blank fields are ignored by ==
		for i := range v.NumField() {
			if v.Type().Field(i).Name != "_" {
				hash = Fold(hash, valueHash(v.Field(i), deep, depth+1))
			}
		}
		//
		return hash
	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		//
		return valueHash(v.Elem(), deep, depth+1)
	case reflect.Pointer:
		if v.IsNil() {
			return 0
		} else if deep {
			return valueHash(v.Elem(), deep, depth+1)
		}
		//
		return uint64(v.Pointer())
	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		// Entries are visited in no particular order, hence they are summed.
		var (
			hash    = uint64(v.Len())
			entries = v.MapRange()
		)
		//
		for entries.Next() {
			// Keys are looked up with ==
			key := valueHash(entries.Key(), false, depth+1)
			hash += Fold(key, valueHash(entries.Value(), deep, depth+1))
		}
		//
		return hash
	case reflect.Chan, reflect.UnsafePointer:
		return uint64(v.Pointer())
	}
	// Functions are only equal when both are nil
	return 0
}

func sequenceHash(v reflect.Value, deep bool, depth int) uint64 {
	var hash = Seed
	//
	for i := range v.Len() {
		hash = Fold(hash, valueHash(v.Index(i), deep, depth+1))
	}
	//
	return hash
}

func floatHash(x float64) uint64 {
	// Ensure +0 and -0 agree, since they are equal.
	if x == 0 {
		return 0
	}
	//
	return math.Float64bits(x)
}

func stringHash(s string) uint64 {
	hash := fnv.New64a()
	hash.Write([]byte(s))
	// Done
	return hash.Sum64()
}
