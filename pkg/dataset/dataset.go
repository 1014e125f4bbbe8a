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

import (
	"cmp"
	"slices"

	"github.com/mlml/mlml/pkg/logic"
	"github.com/mlml/mlml/pkg/util/collection/hash"
)

// Dataset is the result of a successful build.  Its splits are pairwise
// disjoint and each is balanced between true and false entries.
type Dataset struct {
	splits []*Split
	// number of accepted entries for each shape
	histogram *hash.Map[logic.Shape, uint]
	// total number of accepted entries
	total uint
}

// ShapeCount pairs a shape with the number of entries having it.
type ShapeCount struct {
	Shape logic.Shape
	Count uint
}

// Splits returns the splits of this dataset in build order.
func (p *Dataset) Splits() []*Split {
	return p.splits
}

// Split returns the split with the given name, if it exists.
func (p *Dataset) Split(name string) (*Split, bool) {
	for _, s := range p.splits {
		if s.Name() == name {
			return s, true
		}
	}
	//
	return nil, false
}

// Total returns the number of entries across all splits.
func (p *Dataset) Total() uint {
	return p.total
}

// ShapeCount returns the number of entries across all splits with the given
// shape.
func (p *Dataset) ShapeCount(shape logic.Shape) uint {
	count, _ := p.histogram.Get(shape)
	return count
}

// Shapes returns the shape histogram, most frequent first.
func (p *Dataset) Shapes() []ShapeCount {
	return sortShapes(p.histogram)
}

// CountShapes builds the shape histogram of a set of rows, most frequent
// first.
func CountShapes(rows []Row) ([]ShapeCount, error) {
	histogram := hash.NewMap[logic.Shape, uint](0)
	//
	for _, row := range rows {
		expr, _, err := logic.Decode(row.Expression)
		if err != nil {
			return nil, err
		}
		//
		histogram.Update(logic.ToShape(expr), func(n uint, _ bool) uint { return n + 1 })
	}
	//
	return sortShapes(histogram), nil
}

// Ties are broken on the printed shape so the order is deterministic.
func sortShapes(histogram *hash.Map[logic.Shape, uint]) []ShapeCount {
	var shapes []ShapeCount
	//
	for shape, count := range histogram.All() {
		shapes = append(shapes, ShapeCount{shape, count})
	}
	//
	slices.SortFunc(shapes, func(l, r ShapeCount) int {
		if c := cmp.Compare(r.Count, l.Count); c != 0 {
			return c
		}
		//
		return cmp.Compare(l.Shape.String(), r.Shape.String())
	})
	//
	return shapes
}

// Rows converts a split into rows, using the given rarity mode.
func (p *Dataset) Rows(split *Split, mode RarityMode) []Row {
	rows := make([]Row, split.Len())
	//
	for i, entry := range split.Entries() {
		var rarity float64
		//
		switch mode {
		case RarityRunning:
			rarity = split.RunningRarity(uint(i))
		case RarityFinal:
			rarity = float64(p.ShapeCount(entry.Shape())) / float64(p.total)
		default:
			panic("unknown rarity mode")
		}
		//
		rows[i] = NewRow(entry, rarity)
	}
	//
	return rows
}
