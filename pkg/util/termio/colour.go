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
	"os"

	"golang.org/x/term"
)

// ColourMode determines when ANSI escapes are used for output.
type ColourMode uint

// COLOUR_AUTO enables escapes only when writing to a terminal.
const COLOUR_AUTO ColourMode = 0

// COLOUR_ALWAYS enables escapes unconditionally.
const COLOUR_ALWAYS ColourMode = 1

// COLOUR_NEVER disables escapes unconditionally.
const COLOUR_NEVER ColourMode = 2

// ParseColourMode parses a colour mode from its name ("auto", "always" or
// "never").
func ParseColourMode(name string) (ColourMode, error) {
	switch name {
	case "", "auto":
		return COLOUR_AUTO, nil
	case "always":
		return COLOUR_ALWAYS, nil
	case "never":
		return COLOUR_NEVER, nil
	}
	//
	return COLOUR_AUTO, fmt.Errorf("unknown colour mode \"%s\"", name)
}

// Enabled determines whether escapes should be used when writing to a given
// file.
func (m ColourMode) Enabled(f *os.File) bool {
	switch m {
	case COLOUR_ALWAYS:
		return true
	case COLOUR_NEVER:
		return false
	default:
		return f != nil && term.IsTerminal(int(f.Fd()))
	}
}

func (m ColourMode) String() string {
	switch m {
	case COLOUR_ALWAYS:
		return "always"
	case COLOUR_NEVER:
		return "never"
	default:
		return "auto"
	}
}
