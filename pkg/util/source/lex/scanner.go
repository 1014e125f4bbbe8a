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
package lex

// Scanner determines how many characters at the start of some text it
// accepts, where zero signals no match.
type Scanner func(text []rune) int

// Word accepts an exact sequence of characters.
func Word(word string) Scanner {
	chars := []rune(word)
	//
	return func(text []rune) int {
		if len(text) < len(chars) {
			return 0
		}
		//
		for i, c := range chars {
			if text[i] != c {
				return 0
			}
		}
		//
		return len(chars)
	}
}

// Char accepts exactly one character from a given set.
func Char(chars ...rune) Scanner {
	return Satisfies(func(c rune) bool {
		for _, d := range chars {
			if c == d {
				return true
			}
		}
		//
		return false
	})
}

// Satisfies accepts exactly one character for which the given predicate holds.
func Satisfies(predicate func(rune) bool) Scanner {
	return func(text []rune) int {
		if len(text) > 0 && predicate(text[0]) {
			return 1
		}
		//
		return 0
	}
}

// While accepts the longest non-empty run of characters satisfying a given
// predicate.
func While(predicate func(rune) bool) Scanner {
	return func(text []rune) int {
		n := 0
		//
		for n < len(text) && predicate(text[n]) {
			n++
		}
		//
		return n
	}
}

// First tries each scanner in turn, returning the result of the first to
// match.
func First(scanners ...Scanner) Scanner {
	return func(text []rune) int {
		for _, scanner := range scanners {
			if n := scanner(text); n > 0 {
				return n
			}
		}
		//
		return 0
	}
}
