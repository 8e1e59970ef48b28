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
package syntax

import "slices"

// KEYWORDS lists every reserved word of the language.  Keywords starting with
// a lowercase letter (or punctuation) are value-level, whilst those starting
// with an uppercase letter are type-level.
var KEYWORDS = []string{
	"module", "block", "_", "builtin", "import", "export", "val", "type", "atomic", "pair", "list",
	"arr", "vec", "map", "sig", "fun", "attrs", "app", "case", "id", "default", "match", "others",
	"size", "load", "store", "ref", "deref", "cast", "dup", "drop", "panic", "Builtin", "Empty",
	"Atomic", "UInt", "Int", "Float", "Size", "Pointer", "Ref", "Char", "String", "Mem", "Path",
	"IO", "Ctx", "Enum", "Pair", "List", "Arr", "Vec", "Map", "Fun", "Type",
}

// IGNORE is the keyword used to discard a value.
const IGNORE = "_"

// PANIC is the keyword used to abort evaluation.
const PANIC = "panic"

// IsKeyword checks whether a given string is a reserved word.
func IsKeyword(s string) bool {
	return slices.Contains(KEYWORDS, s)
}

// IsValueKeyword checks whether a given string is a value-level keyword.
func IsValueKeyword(s string) bool {
	return IsKeyword(s) && IsValueSymbolStartChar(firstChar(s))
}

// IsTypeKeyword checks whether a given string is a type-level keyword.
func IsTypeKeyword(s string) bool {
	return IsKeyword(s) && IsTypeSymbolStartChar(firstChar(s))
}

// IsIgnoreKeyword checks whether a given string is the ignore keyword.
func IsIgnoreKeyword(s string) bool {
	return s == IGNORE
}

// IsPanicKeyword checks whether a given string is the panic keyword.
func IsPanicKeyword(s string) bool {
	return s == PANIC
}

func firstChar(s string) rune {
	for _, c := range s {
		return c
	}
	//
	return 0
}
