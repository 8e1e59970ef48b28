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

import (
	"strings"
	"unicode"
)

// COMMENT_MARK starts a line comment.
const COMMENT_MARK = '#'

// COMMENT_MARK_POSTFIX follows the comment mark in a doc comment.
const COMMENT_MARK_POSTFIX = '!'

// ESCAPE_CHAR escapes a quote (or itself) within char and string literals.
const ESCAPE_CHAR = '\\'

// SINGLE_QUOTE delimits char literals.
const SINGLE_QUOTE = '\''

// DOUBLE_QUOTE delimits string literals.
const DOUBLE_QUOTE = '"'

// FORM_START opens a form.
const FORM_START = '('

// FORM_END closes a form.
const FORM_END = ')'

// EMPTY_LITERAL is the literal for the empty value (and the empty type).
const EMPTY_LITERAL = "()"

// SYMBOL_PATH_SEPARATOR separates the segments of a qualified symbol.
const SYMBOL_PATH_SEPARATOR = '.'

// SYMBOL_PUNCTUATION lists the punctuation characters which may appear in
// symbols.
const SYMBOL_PUNCTUATION = "!$%&*+,-./:;<=>?@\\^_`|~"

// IsSymbolPunctuation checks whether a character is symbol punctuation.
func IsSymbolPunctuation(c rune) bool {
	return strings.ContainsRune(SYMBOL_PUNCTUATION, c)
}

// IsSymbolChar checks whether a character can appear within a run of symbol
// characters, i.e. a keyword, a symbol or a numeric literal.
func IsSymbolChar(c rune) bool {
	switch c {
	case COMMENT_MARK, FORM_START, FORM_END, SINGLE_QUOTE, DOUBLE_QUOTE:
		return false
	}
	//
	return !unicode.IsSpace(c)
}

// IsSymbolStartChar checks whether a character can start a symbol.
func IsSymbolStartChar(c rune) bool {
	return isAsciiLetter(c) || IsSymbolPunctuation(c)
}

// IsValueSymbolStartChar checks whether a character can start a value-level
// symbol or keyword.
func IsValueSymbolStartChar(c rune) bool {
	return isLowerLetter(c) || (IsSymbolPunctuation(c) && c != SYMBOL_PATH_SEPARATOR)
}

// IsTypeSymbolStartChar checks whether a character can start a type-level
// symbol or keyword.
func IsTypeSymbolStartChar(c rune) bool {
	return isUpperLetter(c)
}

// IsPathSymbolStartChar checks whether a character can start a path symbol.
func IsPathSymbolStartChar(c rune) bool {
	return isLowerLetter(c)
}

// IsPathSymbolChar checks whether a character can appear in a path symbol.
func IsPathSymbolChar(c rune) bool {
	return isAsciiLetter(c) || IsSymbolPunctuation(c)
}

// IsSymbol checks whether a given string is a (possibly qualified) symbol.
// Punctuation-led symbols are operators of at most three characters.  Qualified
// symbols must start with a module segment, and cannot contain digits or
// keyword segments.  Otherwise, punctuation may only end a symbol (e.g. "empty?").
func IsSymbol(s string) bool {
	if s == "" || IsKeyword(s) || !IsSymbolStartChar(firstChar(s)) {
		return false
	}
	//
	for _, c := range s {
		if !isDigit(c) && !IsPathSymbolChar(c) {
			return false
		}
	}
	//
	switch {
	case IsSymbolPunctuation(firstChar(s)):
		return len(s) <= 3 && allOf(s, IsSymbolPunctuation)
	case IsQualified(s):
		for _, segment := range strings.Split(s, string(SYMBOL_PATH_SEPARATOR)) {
			if segment == "" || IsKeyword(segment) {
				return false
			}
		}
		//
		// Digits are only permitted in unqualified symbols
		return IsPathSymbolStartChar(firstChar(s)) && allOf(s, IsPathSymbolChar)
	default:
		index := strings.IndexFunc(s, IsSymbolPunctuation)
		return index < 0 || index == len(s)-1
	}
}

// IsValueSymbol checks whether a given string is an unqualified value-level
// symbol.
func IsValueSymbol(s string) bool {
	return IsSymbol(s) && IsValueSymbolStartChar(firstChar(s)) && !IsQualified(s)
}

// IsTypeSymbol checks whether a given string is an unqualified type-level
// symbol.
func IsTypeSymbol(s string) bool {
	return IsSymbol(s) && IsTypeSymbolStartChar(firstChar(s)) && strings.IndexFunc(s, IsSymbolPunctuation) < 0
}

// IsPathSymbol checks whether a given string is a qualified symbol.
func IsPathSymbol(s string) bool {
	return IsSymbol(s) && IsQualified(s) && IsPathSymbolStartChar(firstChar(s))
}

// IsValuePathSymbol checks whether a given string is a qualified symbol whose
// final segment is a value-level symbol.
func IsValuePathSymbol(s string) bool {
	return IsPathSymbol(s) && IsValueSymbol(SymbolName(s))
}

// IsTypePathSymbol checks whether a given string is a qualified symbol whose
// final segment is a type-level symbol.
func IsTypePathSymbol(s string) bool {
	return IsPathSymbol(s) && IsTypeSymbol(SymbolName(s))
}

// IsQualified checks whether a given string contains a path separator.
func IsQualified(s string) bool {
	return strings.ContainsRune(s, SYMBOL_PATH_SEPARATOR)
}

// SymbolName returns the final segment of a (possibly qualified) symbol.
func SymbolName(s string) string {
	return s[strings.LastIndexByte(s, SYMBOL_PATH_SEPARATOR)+1:]
}

// SymbolQualifier returns everything but the final segment of a qualified
// symbol, or the empty string for an unqualified symbol.
func SymbolQualifier(s string) string {
	if i := strings.LastIndexByte(s, SYMBOL_PATH_SEPARATOR); i >= 0 {
		return s[:i]
	}
	//
	return ""
}

// ============================================================================
// Literals
// ============================================================================

// IsUInt checks whether a given string is an unsigned integer literal.  This
// can be binary (b101), octal (o17), lowercase hex (xff), uppercase hex (XFF)
// or decimal.
func IsUInt(s string) bool {
	if s == "" {
		return false
	}
	//
	switch s[0] {
	case 'b':
		return len(s) > 1 && allOf(s[1:], func(c rune) bool { return c == '0' || c == '1' })
	case 'o':
		return len(s) > 1 && allOf(s[1:], func(c rune) bool { return '0' <= c && c <= '7' })
	case 'x':
		return len(s) > 1 && allOf(s[1:], func(c rune) bool { return isDigit(c) || ('a' <= c && c <= 'f') })
	case 'X':
		return len(s) > 1 && allOf(s[1:], func(c rune) bool { return isDigit(c) || ('A' <= c && c <= 'F') })
	default:
		return allOf(s, isDigit)
	}
}

// IsInt checks whether a given string is a signed integer literal, i.e. an
// unsigned integer literal preceded by a sign.
func IsInt(s string) bool {
	if s == "" || (s[0] != '+' && s[0] != '-') {
		return false
	}
	//
	return IsUInt(s[1:])
}

// IsFloat checks whether a given string is a floating point literal.  This has
// an optional sign, a decimal point with at least one digit either side, and an
// optional exponent (e.g. -0.1E-10).  An exponent may only follow a digit after
// the point, and a sign within the literal may only follow the exponent mark.
func IsFloat(s string) bool {
	var (
		runes = []rune(s)
		point = -1
		exp   = -1
	)
	//
	if len(runes) == 0 || !(runes[0] == '+' || runes[0] == '-' || isDigit(runes[0])) {
		return false
	}
	//
	for i := 1; i < len(runes); i++ {
		switch c := runes[i]; {
		case isDigit(c):
			continue
		case c == '.':
			if point >= 0 || exp >= 0 || !isDigit(runes[i-1]) {
				return false
			}
			//
			point = i
		case c == 'E':
			if point < 0 || exp >= 0 || i == point+1 {
				return false
			}
			//
			exp = i
		case c == '+' || c == '-':
			if exp < 0 || i != exp+1 {
				return false
			}
		default:
			return false
		}
	}
	// Must have a point, and must not end part way through
	return point >= 0 && isDigit(runes[len(runes)-1])
}

// IsChar checks whether a given string is a (quoted) char literal.
func IsChar(s string) bool {
	runes := []rune(s)
	//
	switch {
	case len(runes) == 3:
		return runes[0] == SINGLE_QUOTE && runes[2] == SINGLE_QUOTE
	case len(runes) == 4:
		return runes[0] == SINGLE_QUOTE && runes[1] == ESCAPE_CHAR && runes[3] == SINGLE_QUOTE &&
			(runes[2] == SINGLE_QUOTE || runes[2] == ESCAPE_CHAR)
	default:
		return false
	}
}

// IsString checks whether a given string is a (quoted) string literal.
func IsString(s string) bool {
	runes := []rune(s)
	//
	if len(runes) < 2 || runes[0] != DOUBLE_QUOTE || runes[len(runes)-1] != DOUBLE_QUOTE {
		return false
	}
	// Check the final quote is not escaped
	for i := 1; i < len(runes)-1; i++ {
		if runes[i] == ESCAPE_CHAR && i+1 < len(runes)-1 {
			i++
		} else if runes[i] == DOUBLE_QUOTE || runes[i] == ESCAPE_CHAR {
			return false
		}
	}
	//
	return true
}

// Unescape removes the surrounding quotes from a char or string literal, and
// resolves escaped quotes (of the same kind) and escaped escape characters.
func Unescape(s string) string {
	var (
		runes   = []rune(s)
		builder strings.Builder
	)
	//
	if len(runes) < 2 {
		return s
	}
	//
	quote := runes[0]
	runes = runes[1 : len(runes)-1]
	//
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		//
		if c == ESCAPE_CHAR && i+1 < len(runes) {
			if next := runes[i+1]; next == quote || next == ESCAPE_CHAR {
				c = next
				i++
			}
		}
		//
		builder.WriteRune(c)
	}
	//
	return builder.String()
}

func allOf(s string, predicate func(rune) bool) bool {
	for _, c := range s {
		if !predicate(c) {
			return false
		}
	}
	//
	return true
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isLowerLetter(c rune) bool {
	return 'a' <= c && c <= 'z'
}

func isUpperLetter(c rune) bool {
	return 'A' <= c && c <= 'Z'
}

func isAsciiLetter(c rune) bool {
	return isLowerLetter(c) || isUpperLetter(c)
}
