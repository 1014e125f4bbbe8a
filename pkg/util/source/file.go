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
package source

import (
	"fmt"
	"slices"
	"strings"
)

// File is a named piece of text being parsed, such as an expression given on
// the command line or a line of an input file.  Contents are held as runes, so
// that spans count characters rather than bytes.
type File struct {
	filename string
	contents []rune
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename, []rune(string(bytes))}
}

// Filename returns the name of this file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this file.
func (s *File) Contents() []rune {
	return s.contents
}

// SyntaxError constructs a syntax error over a given span of this file.  The
// kind classifies the error so that callers can use errors.Is on it.
func (s *File) SyntaxError(span Span, kind error, msg string) *SyntaxError {
	return &SyntaxError{s, span, kind, msg}
}

// EnclosingLine returns the line containing the start of a given span.  A span
// starting beyond the end of the file belongs to the last line.
func (s *File) EnclosingLine(span Span) Line {
	var (
		start  = 0
		number = 1
		index  = min(span.start, len(s.contents))
	)
	//
	for i, c := range s.contents[:index] {
		if c == '\n' {
			start = i + 1
			number++
		}
	}
	//
	end := len(s.contents)
	//
	if i := slices.Index(s.contents[start:], '\n'); i >= 0 {
		end = start + i
	}
	//
	return Line{string(s.contents[start:end]), start, number}
}

// Line is a single line of a file.
type Line struct {
	text   string
	start  int
	number int
}

// String returns the text of this line, without its terminator.
func (p Line) String() string {
	return p.text
}

// Number returns the number of this line, counting from 1.
func (p Line) Number() int {
	return p.number
}

// Start returns the index of the first rune of this line within its file.
func (p Line) Start() int {
	return p.start
}

// SyntaxError reports a problem with some span of a file.
type SyntaxError struct {
	srcfile *File
	span    Span
	// classification (e.g. unexpected end of input)
	kind error
	msg  string
}

// SourceFile returns the file this error concerns.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the part of the file this error concerns.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.msg)
}

// Unwrap exposes the kind of this error.
func (p *SyntaxError) Unwrap() error {
	return p.kind
}

// FirstEnclosingLine returns the line on which this error starts.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.EnclosingLine(p.span)
}

// Highlight renders the enclosing line of this error followed by a line of
// carets underneath the offending span.  An empty span (e.g. at the end of
// input) still gets one caret.
func (p *SyntaxError) Highlight() string {
	var (
		line   = p.FirstEnclosingLine()
		indent = max(0, p.span.start-line.Start())
		width  = max(1, p.span.Length())
	)
	//
	return line.String() + "\n" + strings.Repeat(" ", indent) + strings.Repeat("^", width)
}
