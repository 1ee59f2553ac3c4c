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
	"sort"
	"testing"

	"github.com/consensys/go-matteray/pkg/util"
)

func Test_HashSet_01(t *testing.T) {
	items := []int{1, 2, 3, 4, 3, 2, 1}
	check_HashSet(t, items)
}

func Test_HashSet_02(t *testing.T) {
	items := util.GenerateRandomInts(10, 32)
	check_HashSet(t, items)
}

func Test_HashSet_03(t *testing.T) {
	items := util.GenerateRandomInts(100, 32)
	check_HashSet(t, items)
}

func Test_HashSet_04(t *testing.T) {
	items := util.GenerateRandomInts(1000, 1024)
	check_HashSet(t, items)
}

func Test_HashSet_05(t *testing.T) {
	set := NewSet[testKey](0)
	//
	for _, item := range []int{1, 8, 15} {
		set.Insert(testKey{item})
	}
	// All three collide in the same bucket
	if set.MaxBucket() != 3 {
		t.Errorf("expected bucket of size 3, got %d", set.MaxBucket())
	}
	//
	if !set.Remove(testKey{8}) || set.Remove(testKey{8}) {
		t.Errorf("unexpected removal result")
	}
	//
	if set.Contains(testKey{8}) || !set.Contains(testKey{1}) || !set.Contains(testKey{15}) {
		t.Errorf("incorrect set contents %s", set.String())
	}
}

func Test_HashMap_01(t *testing.T) {
	items := []int{1, 2, 3, 4, 3, 2, 1}
	check_HashMap(t, items)
}

func Test_HashMap_02(t *testing.T) {
	items := util.GenerateRandomInts(100, 32)
	check_HashMap(t, items)
}

func Test_HashMap_03(t *testing.T) {
	items := util.GenerateRandomInts(1000, 1024)
	check_HashMap(t, items)
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_HashSet(t *testing.T, items []int) {
	set := NewSet[testKey](0)
	dups := 0
	// Insert items
	for _, item := range items {
		if set.Insert(testKey{item}) {
			dups++
		}
	}
	// Check size
	if set.Size() != len(items)-dups {
		t.Errorf("expected %d items, got %d", len(items)-dups, set.Size())
	}
	// Check containment
	for _, item := range items {
		if !set.Contains(testKey{item}) {
			t.Errorf("missing item %d", item)
		}
	}
	// Check iteration sees each unique item exactly once
	seen := set.Items().Collect()
	keys := make([]int, len(seen))
	//
	for i, k := range seen {
		keys[i] = k.value
	}
	//
	sort.Ints(keys)
	//
	for i := 1; i < len(keys); i++ {
		if keys[i-1] == keys[i] {
			t.Errorf("duplicate item %d", keys[i])
		}
	}
}

func check_HashMap(t *testing.T, items []int) {
	m := NewMap[testKey, int](0)
	// Insert items
	for i, item := range items {
		m.Insert(testKey{item}, i)
	}
	// Last insertion wins
	for i, item := range items {
		if v, ok := m.Get(testKey{item}); !ok {
			t.Errorf("missing key %d", item)
		} else if items[v] != item || v < i {
			t.Errorf("incorrect value %d for key %d", v, item)
		}
	}
	//
	if m.ContainsKey(testKey{-1}) {
		t.Errorf("unexpected key -1")
	}
	// Check pairs agree with size
	if n := m.KeyValues().Count(); n != m.Size() {
		t.Errorf("expected %d pairs, got %d", m.Size(), n)
	}
	// Keys and values are projections of the pairs
	if n := m.Keys().Count(); n != m.Size() {
		t.Errorf("expected %d keys, got %d", m.Size(), n)
	}
	//
	for keys := m.Keys(); keys.HasNext(); {
		if k := keys.Next(); !m.ContainsKey(k) {
			t.Errorf("unknown key %d", k.value)
		}
	}
	//
	for values := m.Values(); values.HasNext(); {
		if v := values.Next(); v < 0 || v >= len(items) {
			t.Errorf("unknown value %d", v)
		}
	}
}

// testKey deliberately collides often, in order to exercise bucketing.
type testKey struct {
	value int
}

func (p testKey) Equals(other testKey) bool {
	return p.value == other.value
}

func (p testKey) Hash() uint64 {
	return uint64(p.value % 7)
}
