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
	"bufio"
	"compress/bzip2"
	"errors"
	"io"
	"os"
	"path"
	"strings"
)

// ReadLines reads the non-empty lines of a text file, decompressing it first
// when it has a ".bz2" extension.  Surrounding whitespace is trimmed from each
// line.
func ReadLines(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	//
	defer file.Close() //nolint:errcheck
	//
	var reader io.Reader = file
	//
	if path.Ext(filename) == ".bz2" {
		reader = bzip2.NewReader(file)
	}
	//
	return readLines(bufio.NewReaderSize(reader, 1024*128))
}

func readLines(reader *bufio.Reader) ([]string, error) {
	var lines []string
	//
	for {
		line, err := reader.ReadString('\n')
		//
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
		//
		if errors.Is(err, io.EOF) {
			return lines, nil
		} else if err != nil {
			return nil, err
		}
	}
}
