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
	"iter"
	"strings"
)

// Hasher is implemented by keys which can be stored in a Map or Set.  Since
// distinct keys may share a 64-bit hash, equality is needed as well.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

// Map is a hash map for keys which are not comparable with "==", such as
// expression trees.  Keys sharing a hash are held together in a bucket, so
// collisions never lose data.
type Map[K Hasher[K], V any] struct {
	buckets map[uint64][]entry[K, V]
	// number of keys stored
	size uint
}

type entry[K any, V any] struct {
	key   K
	value V
}

// NewMap creates a new map with a given initial capacity.
func NewMap[K Hasher[K], V any](capacity uint) *Map[K, V] {
	return &Map[K, V]{make(map[uint64][]entry[K, V], capacity), 0}
}

// Size returns the number of distinct keys stored in this map.
func (p *Map[K, V]) Size() uint {
	return p.size
}

// MaxBucket returns the number of keys in the largest bucket.  Anything above
// one indicates hash collisions.
func (p *Map[K, V]) MaxBucket() uint {
	var n int
	//
	for _, bucket := range p.buckets {
		n = max(n, len(bucket))
	}
	//
	return uint(n)
}

// Get returns the value associated with a given key, if there is one.
func (p *Map[K, V]) Get(key K) (V, bool) {
	var empty V
	//
	if i, ok := p.find(key); ok {
		return p.buckets[key.Hash()][i].value, true
	}
	//
	return empty, false
}

// ContainsKey checks whether a given key is stored in this map.
func (p *Map[K, V]) ContainsKey(key K) bool {
	_, ok := p.find(key)
	return ok
}

// Insert associates a value with a given key, returning true if the key was
// already present (in which case its value is replaced).
func (p *Map[K, V]) Insert(key K, value V) bool {
	hash := key.Hash()
	//
	if i, ok := p.find(key); ok {
		p.buckets[hash][i].value = value
		return true
	}
	//
	p.buckets[hash] = append(p.buckets[hash], entry[K, V]{key, value})
	p.size++
	//
	return false
}

// Update the value associated with a given key, using a function which
// receives the current value (if any) and returns the new one.  The new value
// is returned.
func (p *Map[K, V]) Update(key K, fn func(V, bool) V) V {
	value := fn(p.Get(key))
	p.Insert(key, value)
	//
	return value
}

// All returns every key-value pair stored in this map, in no particular
// order.
func (p *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range p.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (p *Map[K, V]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	first := true
	//
	for k, v := range p.All() {
		if !first {
			builder.WriteString(",")
		}
		//
		first = false
		//
		fmt.Fprintf(&builder, "%v:=%v", k, v)
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// Locate a key within its bucket.
func (p *Map[K, V]) find(key K) (int, bool) {
	for i, e := range p.buckets[key.Hash()] {
		if key.Equals(e.key) {
			return i, true
		}
	}
	//
	return 0, false
}
