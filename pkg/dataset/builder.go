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
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/mlml/mlml/pkg/gen"
	"github.com/mlml/mlml/pkg/logic"
	"github.com/mlml/mlml/pkg/util"
	"github.com/mlml/mlml/pkg/util/collection/hash"
	log "github.com/sirupsen/logrus"
)

// DEFAULT_PROGRESS_INTERVAL determines how many acceptances pass between two
// progress reports.
const DEFAULT_PROGRESS_INTERVAL = 10_000

// Options configures a dataset builder.
type Options struct {
	// Splits to be built, in the order in which they receive draws.
	Splits []SplitSpec
	// Alphabet used for splits which do not override it.
	Alphabet []rune
	// Resample determines whether a fresh subset of the alphabet (with as many
	// symbols as the generator's variable budget) is drawn for every
	// candidate, rather than drawing from the whole alphabet.
	Resample bool
	// MaxStall is the number of consecutive rejected draws after which a
	// split is considered exhausted.
	MaxStall uint
	// ProgressInterval is the number of acceptances between progress logs.
	// Zero selects DEFAULT_PROGRESS_INTERVAL.
	ProgressInterval uint
}

// ExhaustedError reports that a split could not be filled, because too many
// consecutive candidates were rejected.  This typically means the space of
// expressions (as bounded by the alphabet, depth and variable budgets) is too
// small for the requested targets.
type ExhaustedError struct {
	// Split which stalled
	Split string
	// Remaining number of entries needed
	Remaining uint
	// Attempts made since the last acceptance
	Attempts uint
}

func (p *ExhaustedError) Error() string {
	return fmt.Sprintf("split \"%s\" exhausted after %d attempts (%d entries still needed)",
		p.Split, p.Attempts, p.Remaining)
}

// Builder assembles datasets of disjoint, balanced, deduplicated splits from a
// stream of randomly generated entries.
type Builder struct {
	generator *gen.Generator
	options   Options
}

// NewBuilder constructs a new builder, checking the given options are
// consistent with the generator.
func NewBuilder(generator *gen.Generator, options Options) (*Builder, error) {
	var names []string
	//
	if len(options.Splits) == 0 {
		return nil, errors.New("at least one split is required")
	} else if options.MaxStall == 0 {
		return nil, errors.New("attempt ceiling must be positive")
	}
	//
	for _, s := range options.Splits {
		alphabet := options.Alphabet
		//
		if len(s.Alphabet) > 0 {
			alphabet = s.Alphabet
		}
		//
		switch {
		case s.Name == "":
			return nil, errors.New("split name cannot be empty")
		case slices.Contains(names, s.Name):
			return nil, fmt.Errorf("duplicate split \"%s\"", s.Name)
		case s.Target == 0:
			return nil, fmt.Errorf("split \"%s\" has no target", s.Name)
		}
		//
		if err := generator.CheckAlphabet(alphabet); err != nil {
			return nil, fmt.Errorf("split \"%s\": %w", s.Name, err)
		}
		//
		names = append(names, s.Name)
	}
	//
	if options.ProgressInterval == 0 {
		options.ProgressInterval = DEFAULT_PROGRESS_INTERVAL
	}
	//
	return &Builder{generator, options}, nil
}

// Build a dataset using a given source of randomness.  Splits take turns, each
// receiving one candidate per round.  A candidate is accepted into a split only
// if its result is the truth value the split currently wants, and it has not
// been seen before in any split.  The wanted value flips on every acceptance,
// which balances each split.  Either every split is filled, or an
// *ExhaustedError is returned and no dataset is produced.
func (b *Builder) Build(rng *rand.Rand) (*Dataset, error) {
	var (
		stats = util.NewPerfStats()
		run   = newBuildRun(b, rng)
		// number of splits not yet complete
		remaining = len(run.splits)
	)
	//
	for remaining > 0 {
		for i, split := range run.splits {
			if split.Complete() {
				continue
			}
			//
			accepted, err := run.draw(i)
			if err != nil {
				return nil, err
			} else if !accepted && split.stall >= b.options.MaxStall {
				return nil, &ExhaustedError{split.Name(), split.Remaining(), split.stall}
			} else if accepted && split.Complete() {
				remaining--
				//
				log.Debugf("split %s complete", split)
			}
		}
	}
	//
	stats.LogWith("Building dataset", log.Fields{"count": run.draws})
	log.Debugf("largest seen bucket %d, largest shape bucket %d", run.seen.MaxBucket(), run.histogram.MaxBucket())
	log.WithFields(log.Fields{
		"entries": run.seen.Size(),
		"shapes":  run.histogram.Size(),
		"draws":   run.draws,
	}).Info("dataset built")
	//
	return &Dataset{run.splits, run.histogram, run.seen.Size()}, nil
}

// buildRun holds the state of a single call to Build.
type buildRun struct {
	*Builder
	rng *rand.Rand
	// every entry accepted into any split
	seen *hash.Set[Entry]
	// number of accepted entries for each shape
	histogram *hash.Map[logic.Shape, uint]
	splits    []*Split
	// alphabet of each split
	alphabets [][]rune
	// total number of draws made
	draws uint
}

func newBuildRun(b *Builder, rng *rand.Rand) *buildRun {
	var (
		splits    = make([]*Split, len(b.options.Splits))
		alphabets = make([][]rune, len(b.options.Splits))
	)
	//
	for i, s := range b.options.Splits {
		splits[i] = newSplit(s)
		alphabets[i] = b.options.Alphabet
		//
		if len(s.Alphabet) > 0 {
			alphabets[i] = s.Alphabet
		}
	}
	//
	return &buildRun{b, rng, hash.NewSet[Entry](0), hash.NewMap[logic.Shape, uint](0), splits, alphabets, 0}
}

// Draw a single candidate for a given split, returning true if it was
// accepted.
func (p *buildRun) draw(index int) (bool, error) {
	var (
		split    = p.splits[index]
		alphabet = p.alphabets[index]
	)
	//
	if p.options.Resample {
		alphabet = util.SampleSubset(p.rng, alphabet, p.generator.MaxVariables())
	}
	//
	expr, err := p.generator.Generate(alphabet, p.rng)
	if err != nil {
		return false, err
	} else if err := checkRoundTrip(expr); err != nil {
		return false, err
	}
	//
	entry := NewEntry(expr, logic.SampleState(expr, p.rng))
	p.draws++
	//
	if entry.Result() != split.wanted || p.seen.Contains(entry) {
		split.stall++
		return false, nil
	}
	//
	p.seen.Insert(entry)
	//
	count := p.histogram.Update(entry.Shape(), func(n uint, _ bool) uint { return n + 1 })
	//
	split.accept(entry, float64(count)/float64(p.seen.Size()))
	//
	if p.seen.Size()%p.options.ProgressInterval == 0 {
		log.Debugf("accepted %d entries from %d draws", p.seen.Size(), p.draws)
	}
	//
	return true, nil
}

// Every generated expression must read back as itself.  A failure here is an
// internal error in either the printer or the parser.
func checkRoundTrip(expr logic.Expr) error {
	text := expr.String()
	parsed, err := logic.Parse(text)
	//
	if err != nil {
		return fmt.Errorf("generated expression %s does not parse: %w", text, err)
	} else if !logic.Equal(expr, parsed) {
		return fmt.Errorf("generated expression %s reads back as %s", text, parsed)
	}
	//
	return nil
}
