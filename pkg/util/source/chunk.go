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
	"strings"

	"github.com/consensys/go-forms/pkg/util"
)

// Chunk is a single character of source text, along with its location.
type Chunk struct {
	Loc     Loc
	Content rune
}

// StringChunk is a fragment of source text made up from one or more
// consecutive chunks.  Its location is that of the first chunk.
type StringChunk struct {
	Loc     Loc
	Content string
}

// NewChunks splits a given string into chunks, one per character.
func NewChunks(text string) []Chunk {
	return newChunks(util.None[string](), []rune(text))
}

// NewFileChunks splits the contents of a given source file into chunks, one per
// character.  Each chunk records the name of the file.
func NewFileChunks(file *File) []Chunk {
	return newChunks(util.Some(file.Filename()), file.Contents())
}

func newChunks(file util.Option[string], text []rune) []Chunk {
	var (
		chunks = make([]Chunk, len(text))
		line   uint
	)
	//
	for i, c := range text {
		chunks[i] = Chunk{Loc{file, line, uint(i)}, c}
		// Next character starts a new line
		if c == '\n' {
			line++
		}
	}
	//
	return chunks
}

// NewStringChunk fuses a non-empty sequence of chunks into a single string
// chunk.
func NewStringChunk(chunks ...Chunk) StringChunk {
	var builder strings.Builder
	//
	if len(chunks) == 0 {
		panic("empty string chunk")
	}
	//
	for _, c := range chunks {
		builder.WriteRune(c.Content)
	}
	//
	return StringChunk{chunks[0].Loc, builder.String()}
}

// Len returns the number of characters in this string chunk.
func (p StringChunk) Len() uint {
	return uint(len([]rune(p.Content)))
}

func (p StringChunk) String() string {
	return p.Content
}
