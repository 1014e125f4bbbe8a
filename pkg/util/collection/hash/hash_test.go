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
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Set_01(t *testing.T) {
	checkSet(t, []uint{1, 2, 3, 4, 3, 2, 1})
}

func Test_Set_02(t *testing.T) {
	checkSet(t, randomUints(1, 10, 32))
}

func Test_Set_03(t *testing.T) {
	checkSet(t, randomUints(2, 1000, 32))
}

func Test_Set_04(t *testing.T) {
	checkSet(t, randomUints(3, 100000, 128))
}

func Test_Set_05(t *testing.T) {
	set := NewSet[testKey](0)
	//
	for _, v := range []uint{4, 20, 36, 5} {
		set.Insert(testKey{v})
	}
	// 4, 20 and 36 collide
	assert.Equal(t, uint(3), set.MaxBucket())
	assert.False(t, set.Contains(testKey{52}))
	//
	var items []uint
	for item := range set.All() {
		items = append(items, item.value)
	}
	//
	slices.Sort(items)
	assert.Equal(t, []uint{4, 5, 20, 36}, items)
}

func Test_Map_01(t *testing.T) {
	checkMap(t, []uint{1, 2, 3, 4, 3, 2, 1})
}

func Test_Map_02(t *testing.T) {
	checkMap(t, randomUints(5, 10, 32))
}

func Test_Map_03(t *testing.T) {
	checkMap(t, randomUints(6, 1000, 32))
}

func Test_Map_04(t *testing.T) {
	checkMap(t, randomUints(7, 100000, 128))
}

func Test_Map_Overwrite(t *testing.T) {
	hmap := NewMap[testKey, uint](0)
	//
	assert.False(t, hmap.Insert(testKey{3}, 1))
	assert.True(t, hmap.Insert(testKey{3}, 2))
	assert.False(t, hmap.Insert(testKey{19}, 7)) // collides with 3
	//
	v, ok := hmap.Get(testKey{3})
	assert.True(t, ok)
	assert.Equal(t, uint(2), v)
	assert.Equal(t, uint(2), hmap.Size())
	//
	_, ok = hmap.Get(testKey{35})
	assert.False(t, ok)
}

func Test_Map_Update(t *testing.T) {
	hmap := NewMap[testKey, uint](0)
	increment := func(v uint, _ bool) uint { return v + 1 }
	//
	assert.Equal(t, uint(1), hmap.Update(testKey{3}, increment))
	assert.Equal(t, uint(2), hmap.Update(testKey{3}, increment))
	assert.Equal(t, uint(1), hmap.Update(testKey{19}, increment))
	assert.Equal(t, uint(2), hmap.Size())
}

// ===================================================================
// Framework
// ===================================================================

// Insert items into a set, and check it agrees with a Go map.
func checkSet(t *testing.T, items []uint) {
	var (
		set  = NewSet[testKey](0)
		gmap = make(map[uint]bool)
		dups uint
	)
	//
	for _, item := range items {
		if set.Insert(testKey{item}) {
			dups++
		}
		//
		gmap[item] = true
	}
	//
	require.Equal(t, uint(len(gmap)), set.Size(), set.String())
	assert.Equal(t, uint(len(items)), set.Size()+dups)
	//
	for _, item := range items {
		assert.True(t, set.Contains(testKey{item}))
	}
}

// Count occurrences of items using a hash map, and check it agrees with a Go
// map.
func checkMap(t *testing.T, items []uint) {
	var (
		hmap = NewMap[testKey, uint](0)
		gmap = make(map[uint]uint)
	)
	//
	for _, item := range items {
		count, _ := hmap.Get(testKey{item})
		hmap.Insert(testKey{item}, count+1)
		gmap[item]++
	}
	//
	require.Equal(t, uint(len(gmap)), hmap.Size(), hmap.String())
	//
	for k, v := range hmap.All() {
		assert.Equal(t, gmap[k.value], v)
	}
}

// randomUints generates n reproducible values in the range 0..m.
func randomUints(seed uint64, n, m uint) []uint {
	var (
		rng   = rand.New(rand.NewPCG(seed, seed))
		items = make([]uint, n)
	)
	//
	for i := range items {
		items[i] = rng.UintN(m)
	}
	//
	return items
}

// A key whose hash function is deliberately poor, such that collisions are
// common.
type testKey struct {
	value uint
}

func (p testKey) Equals(other testKey) bool {
	return p.value == other.value
}

func (p testKey) Hash() uint64 {
	return uint64(p.value % 16)
}
