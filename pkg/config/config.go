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
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/mlml/mlml/pkg/dataset"
	"github.com/mlml/mlml/pkg/gen"
	"github.com/mlml/mlml/pkg/util"
	"gopkg.in/yaml.v3"
)

// Split configures a single split of the dataset.
type Split struct {
	Name   string `yaml:"name" validate:"required,excludesall=/,ne=meta"`
	Target uint   `yaml:"target" validate:"gt=0"`
	// Alphabet overrides the dataset alphabet for this split.
	Alphabet string `yaml:"alphabet,omitempty"`
}

// Config holds every parameter of a dataset run.
type Config struct {
	// Alphabet is either a list of symbols (e.g. "abcde") or an inclusive
	// range (e.g. "a-e").
	Alphabet     string      `yaml:"alphabet" validate:"required"`
	MaxDepth     uint        `yaml:"max_depth"`
	MaxVariables uint        `yaml:"max_variables" validate:"gt=0"`
	Splits       []Split     `yaml:"splits" validate:"required,min=1,dive"`
	Weights      gen.Weights `yaml:"weights"`
	// Resample a subset of the alphabet for every candidate.
	Resample bool   `yaml:"resample_alphabet"`
	MaxStall uint   `yaml:"max_stall" validate:"gt=0"`
	Seed     uint64 `yaml:"seed"`
	Rarity   string `yaml:"rarity" validate:"omitempty,oneof=running final"`
	DbPath   string `yaml:"db_path"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no file is given: three splits
// over the alphabet a-e.
func Default() Config {
	return Config{
		Alphabet:     "a-e",
		MaxDepth:     4,
		MaxVariables: 5,
		Splits: []Split{
			{Name: "train", Target: 15_000},
			{Name: "valid", Target: 1_500},
			{Name: "test", Target: 1_500},
		},
		Weights:  gen.Uniform(),
		MaxStall: 1_000_000,
		Rarity:   "running",
		DbPath:   "dataset.db",
	}
}

// Load a configuration file.  Fields missing from the file keep their default
// values, except for splits which are replaced as a whole.
func Load(filename string) (Config, error) {
	config := Default()
	//
	contents, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	//
	decoder := yaml.NewDecoder(bytes.NewReader(contents))
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("reading %s: %w", filename, err)
	} else if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid configuration %s: %w", filename, err)
	}
	//
	return config, nil
}

// Validate checks a configuration for consistency.
func (c *Config) Validate() error {
	var names []string
	//
	if err := validate.Struct(c); err != nil {
		return err
	}
	//
	alphabet, err := ParseAlphabet(c.Alphabet)
	if err != nil {
		return err
	} else if uint(len(alphabet)) < c.MaxVariables {
		return fmt.Errorf("alphabet %s has fewer than %d symbols", c.Alphabet, c.MaxVariables)
	}
	//
	for _, s := range c.Splits {
		if slices.Contains(names, s.Name) {
			return fmt.Errorf("duplicate split %s", s.Name)
		} else if s.Alphabet != "" {
			if symbols, err := ParseAlphabet(s.Alphabet); err != nil {
				return fmt.Errorf("split %s: %w", s.Name, err)
			} else if uint(len(symbols)) < c.MaxVariables {
				return fmt.Errorf("split %s: alphabet %s has fewer than %d symbols", s.Name, s.Alphabet, c.MaxVariables)
			}
		}
		//
		names = append(names, s.Name)
	}
	//
	if _, err := gen.NewDistribution(c.Weights); err != nil {
		return err
	}
	//
	return nil
}

// Generator constructs the expression generator described by this
// configuration.
func (c *Config) Generator() (*gen.Generator, error) {
	return gen.NewGenerator(c.MaxDepth, c.MaxVariables, c.Weights)
}

// Options constructs the dataset builder options described by this
// configuration.
func (c *Config) Options() (dataset.Options, error) {
	alphabet, err := ParseAlphabet(c.Alphabet)
	if err != nil {
		return dataset.Options{}, err
	}
	//
	splits := make([]dataset.SplitSpec, len(c.Splits))
	//
	for i, s := range c.Splits {
		var symbols []rune
		//
		if s.Alphabet != "" {
			if symbols, err = ParseAlphabet(s.Alphabet); err != nil {
				return dataset.Options{}, err
			}
		}
		//
		splits[i] = dataset.SplitSpec{Name: s.Name, Target: s.Target, Alphabet: symbols}
	}
	//
	return dataset.Options{
		Splits:   splits,
		Alphabet: alphabet,
		Resample: c.Resample,
		MaxStall: c.MaxStall,
	}, nil
}

// RarityMode returns the rarity mode described by this configuration.
func (c *Config) RarityMode() (dataset.RarityMode, error) {
	return dataset.ParseRarityMode(c.Rarity)
}

// ParseAlphabet parses an alphabet, given either as a list of letters or as an
// inclusive range "x-y".
func ParseAlphabet(text string) ([]rune, error) {
	var (
		symbols = []rune(strings.TrimSpace(text))
		err     error
	)
	//
	if len(symbols) == 3 && symbols[1] == '-' {
		if symbols, err = util.SymbolRange(symbols[0], symbols[2]); err != nil {
			return nil, err
		}
	}
	//
	return symbols, checkSymbols(symbols)
}

func checkSymbols(symbols []rune) error {
	if len(symbols) == 0 {
		return errors.New("empty alphabet")
	}
	//
	for i, c := range symbols {
		if !unicode.IsLetter(c) {
			return fmt.Errorf("invalid symbol '%c' in alphabet", c)
		} else if slices.Contains(symbols[:i], c) {
			return fmt.Errorf("duplicate symbol '%c' in alphabet", c)
		}
	}
	//
	return nil
}
