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
	"fmt"

	"github.com/mlml/mlml/pkg/logic"
	"github.com/mlml/mlml/pkg/util/collection/hash"
)

// Bounds on the expressions of a dataset.  A zero bound is not checked.
type Bounds struct {
	MaxDepth     uint
	MaxVariables uint
}

// Verifier checks rows read back from a sink.  Rows of every split are checked
// against the same verifier, so duplicates across splits are caught.
type Verifier struct {
	bounds Bounds
	seen   *hash.Set[Entry]
}

// NewVerifier constructs a verifier for a given set of bounds.
func NewVerifier(bounds Bounds) *Verifier {
	return &Verifier{bounds, hash.NewSet[Entry](0)}
}

// Check the rows of a given split, returning every problem found.  A row is
// valid when its expression decodes, its result and complexity agree with the
// decoded entry, its rarity lies in (0,1], and it has not been seen before.
// Additionally, the split as a whole must be balanced.
func (p *Verifier) Check(split string, rows []Row) []error {
	var (
		errs   []error
		trues  uint
		falses uint
	)
	//
	for i, row := range rows {
		entry, err := p.checkRow(row)
		//
		if err != nil {
			errs = append(errs, fmt.Errorf("%s row %d: %w", split, i, err))
		} else if entry.Result() {
			trues++
		} else {
			falses++
		}
	}
	//
	if n := uint(len(rows)); len(errs) == 0 && (trues != n/2 || falses != n-n/2) {
		errs = append(errs, fmt.Errorf("%s is unbalanced (%d true, %d false)", split, trues, falses))
	}
	//
	return errs
}

func (p *Verifier) checkRow(row Row) (Entry, error) {
	expr, state, err := logic.Decode(row.Expression)
	if err != nil {
		return Entry{}, err
	}
	//
	entry := NewEntry(expr, state)
	//
	switch {
	case row.Result != fmt.Sprintf("%t", entry.Result()):
		return entry, fmt.Errorf("result %s should be %t", row.Result, entry.Result())
	case row.Complexity != entry.Complexity():
		return entry, fmt.Errorf("complexity %d should be %d", row.Complexity, entry.Complexity())
	case row.Rarity <= 0 || row.Rarity > 1:
		return entry, fmt.Errorf("rarity %g out of range", row.Rarity)
	case p.bounds.MaxDepth > 0 && logic.Depth(expr) > p.bounds.MaxDepth:
		return entry, fmt.Errorf("depth %d exceeds %d", logic.Depth(expr), p.bounds.MaxDepth)
	case p.bounds.MaxVariables > 0 && uint(state.Len()) > p.bounds.MaxVariables:
		return entry, fmt.Errorf("%d variables exceeds %d", state.Len(), p.bounds.MaxVariables)
	case p.seen.Insert(entry):
		return entry, fmt.Errorf("duplicate entry %s", row.Expression)
	}
	//
	return entry, nil
}
