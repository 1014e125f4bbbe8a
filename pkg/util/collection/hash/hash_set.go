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

// Set is a hash set for items which are not comparable with "==", built on
// Map.
type Set[T Hasher[T]] struct {
	items *Map[T, struct{}]
}

// NewSet creates a new set with a given initial capacity.
func NewSet[T Hasher[T]](capacity uint) *Set[T] {
	return &Set[T]{NewMap[T, struct{}](capacity)}
}

// Size returns the number of distinct items stored in this set.
func (p *Set[T]) Size() uint {
	return p.items.Size()
}

// MaxBucket returns the number of items in the largest bucket.
func (p *Set[T]) MaxBucket() uint {
	return p.items.MaxBucket()
}

// Insert an item into this set, returning true if it was already present.
func (p *Set[T]) Insert(item T) bool {
	return p.items.Insert(item, struct{}{})
}

// Contains checks whether a given item is stored in this set.
func (p *Set[T]) Contains(item T) bool {
	return p.items.ContainsKey(item)
}

// All returns every item in this set, in no particular order.
func (p *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range p.items.All() {
			if !yield(item) {
				return
			}
		}
	}
}

func (p *Set[T]) String() string {
	var items []string
	//
	for item := range p.All() {
		items = append(items, fmt.Sprintf("%v", item))
	}
	//
	return "{" + strings.Join(items, ",") + "}"
}
