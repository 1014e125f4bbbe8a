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

// RarityMode determines how the rarity column of a row is computed.
type RarityMode uint

const (
	// RarityRunning records the frequency of an entry's shape amongst the
	// entries accepted so far, at the moment it was accepted.  Early entries
	// therefore tend to look rarer than later ones.
	RarityRunning RarityMode = iota
	// RarityFinal records the frequency of an entry's shape amongst all
	// entries of the completed dataset.
	RarityFinal
)

func (m RarityMode) String() string {
	switch m {
	case RarityRunning:
		return "running"
	case RarityFinal:
		return "final"
	}
	//
	return "unknown"
}

// ParseRarityMode parses the name of a rarity mode.
func ParseRarityMode(name string) (RarityMode, error) {
	switch name {
	case "", "running":
		return RarityRunning, nil
	case "final":
		return RarityFinal, nil
	}
	//
	return 0, fmt.Errorf("unknown rarity mode \"%s\"", name)
}

// Row is the tabular form of an entry handed over to a sink.
type Row struct {
	// Expression holds the canonical encoding of the entry.
	Expression string  `json:"expression"`
	Result     string  `json:"result"`
	Complexity uint    `json:"complexity"`
	Rarity     float64 `json:"rarity"`
}

// NewRow constructs the row for a given entry.
func NewRow(entry Entry, rarity float64) Row {
	return Row{
		Expression: entry.Encoding(),
		Result:     fmt.Sprintf("%t", entry.Result()),
		Complexity: entry.Complexity(),
		Rarity:     rarity,
	}
}
