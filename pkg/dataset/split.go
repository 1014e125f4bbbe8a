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
package dataset

import "fmt"

// SplitSpec describes one of the disjoint partitions of a dataset, such as
// "train" or "valid".
type SplitSpec struct {
	// Name of the split
	Name string
	// Number of entries required
	Target uint
	// Alphabet overrides the builder's alphabet for this split (when non-empty).
	Alphabet []rune
}

// Split is a completed partition of a dataset.  Entries are held in the order
// they were accepted, which (for a given seed) is deterministic.
type Split struct {
	name   string
	target uint
	// entries accepted into this split
	entries []Entry
	// rarity of each entry at the moment it was accepted
	rarity []float64
	// truth value wanted for the next entry
	wanted bool
	// draws since the last acceptance
	stall uint
}

func newSplit(spec SplitSpec) *Split {
	// Alternation starts from true, except for an odd target where the
	// additional entry is a false one.
	wanted := spec.Target%2 == 0
	//
	return &Split{
		name:    spec.Name,
		target:  spec.Target,
		entries: make([]Entry, 0, spec.Target),
		rarity:  make([]float64, 0, spec.Target),
		wanted:  wanted,
	}
}

// Name returns the name of this split.
func (p *Split) Name() string {
	return p.name
}

// Target returns the number of entries this split was required to contain.
func (p *Split) Target() uint {
	return p.target
}

// Len returns the number of entries in this split.
func (p *Split) Len() uint {
	return uint(len(p.entries))
}

// Entries returns the entries of this split, in order of acceptance.
func (p *Split) Entries() []Entry {
	return p.entries
}

// RunningRarity returns the rarity of the ith entry, as it was when the entry
// was accepted.
func (p *Split) RunningRarity(i uint) float64 {
	return p.rarity[i]
}

// Counts returns the number of true and false entries in this split.
func (p *Split) Counts() (trues uint, falses uint) {
	for _, e := range p.entries {
		if e.Result() {
			trues++
		} else {
			falses++
		}
	}
	//
	return trues, falses
}

// Complete checks whether this split has reached its target.
func (p *Split) Complete() bool {
	return p.Len() >= p.target
}

// Remaining returns the number of entries still needed by this split.
func (p *Split) Remaining() uint {
	return p.target - min(p.target, p.Len())
}

func (p *Split) accept(entry Entry, rarity float64) {
	p.entries = append(p.entries, entry)
	p.rarity = append(p.rarity, rarity)
	p.wanted = !p.wanted
	p.stall = 0
}

func (p *Split) String() string {
	trues, falses := p.Counts()
	return fmt.Sprintf("%s(%d/%d, %d true, %d false)", p.name, p.Len(), p.target, trues, falses)
}
