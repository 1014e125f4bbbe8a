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

// Sink is a destination for the rows of a dataset.  Each split is written
// exactly once.
type Sink interface {
	// WriteSplit writes all rows of a given split.
	WriteSplit(name string, rows []Row) error
	// Close flushes and releases the sink.
	Close() error
}

// Export writes every split of a dataset into a sink, in build order.
func Export(dataset *Dataset, sink Sink, mode RarityMode) error {
	for _, split := range dataset.Splits() {
		if err := sink.WriteSplit(split.Name(), dataset.Rows(split, mode)); err != nil {
			return fmt.Errorf("writing split %s: %w", split.Name(), err)
		}
	}
	//
	return nil
}

// MemorySink retains rows in memory.
type MemorySink struct {
	names  []string
	splits map[string][]Row
	closed bool
}

// NewMemorySink constructs an empty memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{nil, make(map[string][]Row), false}
}

// WriteSplit implementation for the Sink interface.
func (p *MemorySink) WriteSplit(name string, rows []Row) error {
	if p.closed {
		return fmt.Errorf("sink closed")
	} else if _, ok := p.splits[name]; ok {
		return fmt.Errorf("split %s already written", name)
	}
	//
	p.names = append(p.names, name)
	p.splits[name] = rows
	//
	return nil
}

// Close implementation for the Sink interface.
func (p *MemorySink) Close() error {
	p.closed = true
	return nil
}

// Names returns the names of the splits written, in order.
func (p *MemorySink) Names() []string {
	return p.names
}

// Rows returns the rows written for a given split.
func (p *MemorySink) Rows(name string) []Row {
	return p.splits[name]
}
