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
package form

import (
	"fmt"

	"github.com/consensys/go-forms/pkg/syntax"
	"github.com/consensys/go-forms/pkg/token"
	"github.com/consensys/go-forms/pkg/util"
	"github.com/consensys/go-forms/pkg/util/source"
)

// SimpleValueKind identifies the category of an atom.
type SimpleValueKind uint

// IGNORE signals the "_" keyword
const IGNORE SimpleValueKind = 0

// EMPTY signals the "()" literal
const EMPTY SimpleValueKind = 1

// PANIC signals the "panic" keyword
const PANIC SimpleValueKind = 2

// VALUE_KEYWORD signals any other keyword starting with a lowercase letter (or
// punctuation)
const VALUE_KEYWORD SimpleValueKind = 3

// TYPE_KEYWORD signals a keyword starting with an uppercase letter
const TYPE_KEYWORD SimpleValueKind = 4

// PRIM signals a numeric, char or string literal
const PRIM SimpleValueKind = 5

// VALUE_SYMBOL signals an unqualified value symbol
const VALUE_SYMBOL SimpleValueKind = 6

// TYPE_SYMBOL signals an unqualified type symbol
const TYPE_SYMBOL SimpleValueKind = 7

// VALUE_PATH_SYMBOL signals a qualified symbol whose name is value-level
const VALUE_PATH_SYMBOL SimpleValueKind = 8

// TYPE_PATH_SYMBOL signals a qualified symbol whose name is type-level
const TYPE_PATH_SYMBOL SimpleValueKind = 9

var simpleValueKindNames = []string{
	"ignore", "empty", "panic", "value-keyword", "type-keyword", "prim", "value-symbol", "type-symbol",
	"value-path-symbol", "type-path-symbol",
}

func (k SimpleValueKind) String() string {
	if int(k) < len(simpleValueKindNames) {
		return simpleValueKindNames[k]
	}
	//
	return "unknown"
}

// MarshalText renders a kind by name.
func (k SimpleValueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// SimpleValue is an atom derived from exactly one token.
type SimpleValue struct {
	Kind  SimpleValueKind `yaml:"kind"`
	Token token.Token     `yaml:"token"`
}

// NewSimpleValue classifies a given token.  This is a pure function of the
// token's kind and text.  Comments and form delimiters are not atoms.
func NewSimpleValue(tok token.Token) (SimpleValue, error) {
	var kind SimpleValueKind
	//
	switch tok.Kind {
	case token.EMPTY_LITERAL:
		kind = EMPTY
	case token.KEYWORD:
		switch {
		case syntax.IsIgnoreKeyword(tok.Text):
			kind = IGNORE
		case syntax.IsPanicKeyword(tok.Text):
			kind = PANIC
		case syntax.IsTypeKeyword(tok.Text):
			kind = TYPE_KEYWORD
		default:
			kind = VALUE_KEYWORD
		}
	case token.UINT_LITERAL, token.INT_LITERAL, token.FLOAT_LITERAL, token.CHAR_LITERAL, token.STRING_LITERAL:
		kind = PRIM
	case token.VALUE_SYMBOL:
		kind = VALUE_SYMBOL
	case token.TYPE_SYMBOL:
		kind = TYPE_SYMBOL
	case token.PATH_SYMBOL:
		if syntax.IsTypePathSymbol(tok.Text) {
			kind = TYPE_PATH_SYMBOL
		} else {
			kind = VALUE_PATH_SYMBOL
		}
	default:
		msg := fmt.Sprintf("unexpected token %s", tok.Kind.String())
		return SimpleValue{}, source.NewSyntacticError(util.Some(tok.Loc), msg)
	}
	//
	return SimpleValue{kind, tok}, nil
}

// IsKeyword checks whether this value is a keyword of any sort.
func (p SimpleValue) IsKeyword() bool {
	switch p.Kind {
	case IGNORE, PANIC, VALUE_KEYWORD, TYPE_KEYWORD:
		return true
	default:
		return false
	}
}

// IsSymbol checks whether this value is a (possibly qualified) symbol.
func (p SimpleValue) IsSymbol() bool {
	return VALUE_SYMBOL <= p.Kind && p.Kind <= TYPE_PATH_SYMBOL
}

// IsValueSymbol checks whether this value is a (possibly qualified) value
// symbol.
func (p SimpleValue) IsValueSymbol() bool {
	return p.Kind == VALUE_SYMBOL || p.Kind == VALUE_PATH_SYMBOL
}

// IsTypeSymbol checks whether this value is a (possibly qualified) type
// symbol.
func (p SimpleValue) IsTypeSymbol() bool {
	return p.Kind == TYPE_SYMBOL || p.Kind == TYPE_PATH_SYMBOL
}

// IsType checks whether this value lives at the type level.
func (p SimpleValue) IsType() bool {
	return p.Kind == TYPE_KEYWORD || p.IsTypeSymbol()
}

// IsValue checks whether this value lives at the value level.
func (p SimpleValue) IsValue() bool {
	return !p.IsType()
}

// IsAtomic checks whether this value is the empty literal or a primitive.
func (p SimpleValue) IsAtomic() bool {
	return p.Kind == EMPTY || p.Kind == PRIM
}

func (p SimpleValue) String() string {
	return p.Token.Text
}

// Tokens returns the single token making up this value.
func (p SimpleValue) Tokens() token.Tokens {
	return token.Tokens{p.Token}
}

// Loc returns the location of the token making up this value.
func (p SimpleValue) Loc() util.Option[source.Loc] {
	return util.Some(p.Token.Loc)
}

// File returns the name of the file this value was read from, or the empty
// string.
func (p SimpleValue) File() string {
	return p.Token.File()
}

// AllParameters is always empty, since an atom on its own binds nothing.
func (p SimpleValue) AllParameters() []SimpleValue {
	return nil
}

// AllVariables returns this value when it is a value symbol.
func (p SimpleValue) AllVariables() []SimpleValue {
	if p.IsValueSymbol() {
		return []SimpleValue{p}
	}
	//
	return nil
}

// Children is always empty.
func (p SimpleValue) Children() []Node {
	return nil
}

func (p SimpleValue) isNode()        {}
func (p SimpleValue) isTailElement() {}
