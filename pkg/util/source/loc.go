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

	"github.com/consensys/go-forms/pkg/util"
)

// Loc identifies a position within some source text.  The line number counts
// from zero, whilst the offset is the index of the character (not byte) from
// the start of the text.
type Loc struct {
	// File from which the text was read, if any.
	File util.Option[string] `yaml:"file"`
	// Line on which the position occurs.
	Line uint `yaml:"line"`
	// Offset of the position from the start of the text.
	Offset uint `yaml:"offset"`
}

// NewLoc constructs a location which is not associated with any file.
func NewLoc(line uint, offset uint) Loc {
	return Loc{util.None[string](), line, offset}
}

// Filename returns the file name of this location, or the empty string if
// there is none.
func (p Loc) Filename() string {
	if p.File.HasValue() {
		return p.File.Unwrap()
	}
	//
	return ""
}

func (p Loc) String() string {
	if p.File.HasValue() {
		return fmt.Sprintf("%s:%d:%d", p.File.Unwrap(), p.Line, p.Offset)
	}
	//
	return fmt.Sprintf("%d:%d", p.Line, p.Offset)
}
