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
package util

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// NewRandom constructs a reproducible random source from a given seed.  All
// randomness in a dataset run flows from one such source, consumed in a fixed
// order, so the same seed always yields the same dataset.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SymbolRange returns the symbols from..to (inclusive), or an error if the
// range is empty.
func SymbolRange(from rune, to rune) ([]rune, error) {
	if from > to {
		return nil, fmt.Errorf("invalid symbol range %c..%c", from, to)
	}
	//
	symbols := make([]rune, 0, to-from+1)
	//
	for c := from; c <= to; c++ {
		symbols = append(symbols, c)
	}
	//
	return symbols, nil
}

// SampleSubset draws n distinct items (without replacement) from a given
// array, using a partial Fisher-Yates shuffle over a copy.  The chosen items
// are returned in the order they were drawn.
func SampleSubset[T any](rng *rand.Rand, items []T, n uint) []T {
	if n > uint(len(items)) {
		panic(fmt.Sprintf("cannot sample %d items from %d", n, len(items)))
	}
	//
	pool := slices.Clone(items)
	//
	for i := uint(0); i < n; i++ {
		j := i + rng.UintN(uint(len(pool))-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	//
	return pool[:n]
}
