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
	"errors"
	"testing"

	"github.com/consensys/go-forms/pkg/util"
	"github.com/consensys/go-forms/pkg/util/assert"
)

func Test_Chunks_01(t *testing.T) {
	chunks := NewChunks("(include std.io)\n\n(printf \"hello world\\n\")")
	//
	assert.Equal(t, '\n', chunks[17].Content)
	assert.Equal(t, uint(1), chunks[17].Loc.Line)
	assert.Equal(t, uint(17), chunks[17].Loc.Offset)
	assert.True(t, chunks[17].Loc.File.IsEmpty())
}

func Test_Chunks_02(t *testing.T) {
	chunks := NewChunks("a\nb\n\nc")
	lines := []uint{0, 0, 1, 1, 2, 3}
	//
	assert.Equal(t, len(lines), len(chunks))
	//
	for i, c := range chunks {
		assert.Equal(t, lines[i], c.Loc.Line)
		assert.Equal(t, uint(i), c.Loc.Offset)
	}
}

func Test_Chunks_03(t *testing.T) {
	// offsets count characters, not bytes
	chunks := NewChunks("λx y")
	//
	assert.Equal(t, 4, len(chunks))
	assert.Equal(t, 'x', chunks[1].Content)
	assert.Equal(t, uint(1), chunks[1].Loc.Offset)
}

func Test_Chunks_04(t *testing.T) {
	file := NewSourceFile("hello.sp", []byte("(val x 1)"))
	chunks := file.Chunks()
	//
	assert.Equal(t, "hello.sp", chunks[3].Loc.Filename())
	assert.Equal(t, "hello.sp:0:3", chunks[3].Loc.String())
}

func Test_StringChunk_01(t *testing.T) {
	chunks := NewChunks("  #! doc")
	chunk := NewStringChunk(chunks[2:4]...)
	//
	assert.Equal(t, "#!", chunk.Content)
	assert.Equal(t, uint(2), chunk.Loc.Offset)
	assert.Equal(t, uint(2), chunk.Len())
}

// ============================================================================
// Errors
// ============================================================================

func Test_Error_01(t *testing.T) {
	var (
		err    error = NewSyntaxError(util.Some(NewLoc(0, 2)), "closing a form never opened")
		srcErr *Error
	)
	//
	assert.True(t, errors.As(err, &srcErr))
	assert.Equal(t, SYNTAX_ERROR, srcErr.Kind())
	assert.Equal(t, uint(2), srcErr.Loc().Unwrap().Offset)
	assert.Equal(t, "syntax error at 0:2: closing a form never opened", err.Error())
}

func Test_Error_02(t *testing.T) {
	err := NewSemanticError(util.None[Loc](), "non-linear use of parameters: unused parameters")
	//
	assert.Equal(t, SEMANTIC_ERROR, err.Kind())
	assert.Equal(t, "semantic error: non-linear use of parameters: unused parameters", err.Error())
}

// ============================================================================
// Source Files
// ============================================================================

func Test_File_01(t *testing.T) {
	file := NewSourceFile("test.sp", []byte("(val x 1)\n(val y (f x))\n"))
	err := NewSyntacticError(util.Some(NewLoc(1, 18)), "expected a function application")
	span := file.SpanOf(err)
	line := file.FindFirstEnclosingLine(span)
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "(val y (f x))", line.String())
	assert.Equal(t, 18, span.Start())
	assert.Equal(t, 19, span.End())
}

func Test_File_02(t *testing.T) {
	file := NewSourceFile("test.sp", []byte("(val x 1)"))
	span := file.SpanOf(NewSyntaxError(util.None[Loc](), "form not closed"))
	//
	assert.Equal(t, 9, span.Start())
	assert.Equal(t, 0, span.Length())
}
