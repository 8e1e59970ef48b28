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
package termio

import (
	"fmt"
	"strings"
)

// TERM_RED represents red
const TERM_RED = uint(1)

// TERM_GREEN represents green
const TERM_GREEN = uint(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_BLUE represents blue
const TERM_BLUE = uint(4)

// TERM_MAGENTA represents magenta
const TERM_MAGENTA = uint(5)

// TERM_CYAN represents cyan
const TERM_CYAN = uint(6)

// AnsiEscape is a sequence of select graphic rendition codes, such as those for
// setting a foreground colour or bold text.
type AnsiEscape struct {
	codes []uint
}

// NewAnsiEscape constructs an escape with no codes.
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{nil}
}

// ResetAnsiEscape constructs an escape which resets all attributes.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{0}}
}

// Bold adds the bold attribute to this escape.
func (p AnsiEscape) Bold() AnsiEscape {
	return p.with(1)
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return p.with(30 + col)
}

// IsEmpty determines whether this escape has any codes.
func (p AnsiEscape) IsEmpty() bool {
	return len(p.codes) == 0
}

// Build constructs the final escape, or the empty string if there are no codes.
func (p AnsiEscape) Build() string {
	if p.IsEmpty() {
		return ""
	}
	//
	codes := make([]string, len(p.codes))
	//
	for i, c := range p.codes {
		codes[i] = fmt.Sprintf("%d", c)
	}
	//
	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";"))
}

// Wrap surrounds some text with this escape, followed by a reset.  When
// disabled, or when there are no codes, the text is returned unchanged.
func (p AnsiEscape) Wrap(text string, enable bool) string {
	if !enable || p.IsEmpty() || text == "" {
		return text
	}
	//
	return p.Build() + text + ResetAnsiEscape().Build()
}

func (p AnsiEscape) with(code uint) AnsiEscape {
	codes := make([]uint, len(p.codes), len(p.codes)+1)
	copy(codes, p.codes)
	//
	return AnsiEscape{append(codes, code)}
}
