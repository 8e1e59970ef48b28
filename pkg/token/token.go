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
package token

import (
	"strings"

	"github.com/consensys/go-forms/pkg/syntax"
	"github.com/consensys/go-forms/pkg/util"
	"github.com/consensys/go-forms/pkg/util/source"
)

// Kind identifies the lexical class of a token.
type Kind uint

// COMMENT signals "# ... \n"
const COMMENT Kind = 0

// DOC_COMMENT signals "#! ... \n"
const DOC_COMMENT Kind = 1

// KEYWORD signals a reserved word, e.g. "fun"
const KEYWORD Kind = 2

// EMPTY_LITERAL signals "()"
const EMPTY_LITERAL Kind = 3

// UINT_LITERAL signals an unsigned integer, e.g. "xff"
const UINT_LITERAL Kind = 4

// INT_LITERAL signals a signed integer, e.g. "-10"
const INT_LITERAL Kind = 5

// FLOAT_LITERAL signals a floating point number, e.g. "-0.1E-10"
const FLOAT_LITERAL Kind = 6

// CHAR_LITERAL signals a quoted character, e.g. "'a'"
const CHAR_LITERAL Kind = 7

// STRING_LITERAL signals a quoted string
const STRING_LITERAL Kind = 8

// VALUE_SYMBOL signals an unqualified value-level symbol, e.g. "unwrap"
const VALUE_SYMBOL Kind = 9

// TYPE_SYMBOL signals an unqualified type-level symbol, e.g. "Result"
const TYPE_SYMBOL Kind = 10

// PATH_SYMBOL signals a qualified symbol, e.g. "std.io"
const PATH_SYMBOL Kind = 11

// FORM_START signals "("
const FORM_START Kind = 12

// FORM_END signals ")"
const FORM_END Kind = 13

var kindNames = []string{
	"comment", "doc-comment", "keyword", "empty", "uint", "int", "float", "char", "string",
	"value-symbol", "type-symbol", "path-symbol", "form-start", "form-end",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	//
	return "unknown"
}

// MarshalText renders a kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsComment checks whether this kind is a (doc) comment.
func (k Kind) IsComment() bool {
	return k == COMMENT || k == DOC_COMMENT
}

// IsLiteral checks whether this kind is a literal (other than the empty
// literal).
func (k Kind) IsLiteral() bool {
	return UINT_LITERAL <= k && k <= STRING_LITERAL
}

// IsSymbol checks whether this kind is a symbol of some sort.
func (k Kind) IsSymbol() bool {
	return VALUE_SYMBOL <= k && k <= PATH_SYMBOL
}

// Token is a classified fragment of source text.  The text is kept exactly as
// it appears in the source (e.g. including quotes), so that rendering a token
// reproduces it.
type Token struct {
	Kind Kind       `yaml:"kind"`
	Text string     `yaml:"text"`
	Loc  source.Loc `yaml:"loc"`
}

// Value returns the payload of this token.  For char and string literals, this
// strips the quotes and resolves any escapes.  Otherwise, it is just the text.
func (p Token) Value() string {
	switch p.Kind {
	case CHAR_LITERAL, STRING_LITERAL:
		return syntax.Unescape(p.Text)
	default:
		return p.Text
	}
}

// File returns the name of the file this token was read from, or the empty
// string if there is none.
func (p Token) File() string {
	return p.Loc.Filename()
}

func (p Token) String() string {
	return p.Text
}

// Tokens is a sequence of tokens.  This is the unit of provenance carried by
// every form, such that any form can report the location of its first token.
type Tokens []Token

// Loc returns the location of the first token, if there is one.
func (p Tokens) Loc() util.Option[source.Loc] {
	if len(p) == 0 {
		return util.None[source.Loc]()
	}
	//
	return util.Some(p[0].Loc)
}

// File returns the name of the file from which the first token was read, or
// the empty string if there is none.
func (p Tokens) File() string {
	if len(p) == 0 {
		return ""
	}
	//
	return p[0].File()
}

// String renders these tokens separated by single spaces.  Comment tokens are
// omitted.
func (p Tokens) String() string {
	var (
		builder strings.Builder
		first   = true
	)
	//
	for _, t := range p {
		if t.Kind.IsComment() {
			continue
		} else if !first {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(t.Text)
		first = false
	}
	//
	return builder.String()
}
