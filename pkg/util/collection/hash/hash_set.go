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
	"fmt"
	"strings"

	"github.com/consensys/go-matteray/pkg/util/collection/iter"
)

// A reasonably simple hashset implementation which permits collisions.  Hash
// codes of structured values (such as arrays and matrices) are easy to collide,
// hence the hash is only ever used to locate a bucket and equality decides
// membership.

// Set defines a generic set implementation backed by a map.  This is a true
// hashtable in that collisions are handle gracefully using buckets, rather than
// simply discarding them.
type Set[T Hasher[T]] struct {
	// items maps hashcodes to *buckets* of items.
	items map[uint64]hashSetBucket[T]
}

// NewSet creates a new HashSet with a given underlying capacity.
func NewSet[T Hasher[T]](size int) *Set[T] {
	items := make(map[uint64]hashSetBucket[T], size)
	return &Set[T]{items}
}

// Size returns the number of unique items stored in this HashSet.
//
//nolint:revive
func (p *Set[T]) Size() int {
	count := 0
	for _, b := range p.items {
		count += len(b.items)
	}

	return count
}

// MaxBucket returns the size of the largest bucket.
//
//nolint:revive
func (p *Set[T]) MaxBucket() int {
	m := 0
	for _, b := range p.items {
		m = max(m, len(b.items))
	}

	return m
}

// Insert a new item into this map, returning true if it was already contained
// and false otherwise.
//
//nolint:revive
func (p *Set[T]) Insert(item T) bool {
	var b1 hashSetBucket[T]
	// Compute item's hashcode
	hash := item.Hash()
	// Lookup existing bucket
	b1 = p.items[hash]
	// Insert new item
	r := b1.insert(item)
	// Update map
	p.items[hash] = b1
	// Done
	return r
}

// Contains checks whether the given item is contained within this map, or not.
//
//nolint:revive
func (p *Set[T]) Contains(item T) bool {
	hash := item.Hash()

	if bucket, ok := p.items[hash]; ok {
		return bucket.contains(item)
	}

	return false
}

// Remove an item from this set, returning true if it was contained and false
// otherwise.
func (p *Set[T]) Remove(item T) bool {
	hash := item.Hash()
	//
	if bucket, ok := p.items[hash]; ok && bucket.remove(item) {
		if len(bucket.items) == 0 {
			delete(p.items, hash)
		} else {
			p.items[hash] = bucket
		}
		//
		return true
	}
	//
	return false
}

// Items returns an iterator over all items in this set.  Observe that the order
// in which items are seen is unspecified.
func (p *Set[T]) Items() iter.Iterator[T] {
	var items = make([]T, 0, len(p.items))
	//
	for _, b := range p.items {
		items = append(items, b.items...)
	}
	//
	return iter.NewSliceIterator(items)
}

//nolint:revive
func (p *Set[T]) String() string {
	var r strings.Builder
	//
	first := true
	// Write opening brace
	r.WriteString("{")
	// Iterate all buckets
	for _, b := range p.items {
		// Iterate all items in bucket
		for _, i := range b.items {
			if !first {
				r.WriteString(",")
			}

			first = false

			r.WriteString(fmt.Sprintf("%v", any(i)))
		}
	}
	// Write closing brace
	r.WriteString("}")
	// Done
	return r.String()
}

// ============================================================================
// Bucket
// ============================================================================

type hashSetBucket[T Hasher[T]] struct {
	items []T
}

// Insert a new item into this bucket
//
//nolint:revive
func (b *hashSetBucket[T]) insert(item T) bool {
	if b.contains(item) {
		// Item already present, so nothing to do.
		return true
	}
	// Append item
	b.items = append(b.items, item)
	// Item not present
	return false
}

// Check whether this bucket contains a given item, or not.
//
//nolint:revive
func (b *hashSetBucket[T]) contains(item T) bool {
	for _, i := range b.items {
		if item.Equals(i) {
			return true
		}
	}

	return false
}

// Remove a given item from this bucket (if present).
func (b *hashSetBucket[T]) remove(item T) bool {
	for i, ith := range b.items {
		if item.Equals(ith) {
			b.items = append(b.items[:i:i], b.items[i+1:]...)
			return true
		}
	}
	//
	return false
}
