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

	"github.com/consensys/go-forms/pkg/token"
)

// TYPE is the head of a type definition.
const TYPE = "type"

// SIG is the head of a signature.
const SIG = "sig"

// TypeForm defines a type name, e.g. "(type Result (Sum T E))".
type TypeForm struct {
	typing
}

// SigForm declares the type of a value name, e.g. "(sig unwrap (Fun A B))".
type SigForm struct {
	typing
}

// typing is shared by type definitions and signatures, which differ only in
// their head and the level of the name being typed.
type typing struct {
	base
	keyword string
	Name    SimpleValue
	Value   Node
}

// TypeFormFromForm recognises a type definition.
func TypeFormFromForm(form *Form) (*TypeForm, error) {
	t, err := parseTyping(form, TYPE, TYPE_SYMBOL, "expected an unqualified type symbol")
	if err != nil {
		return nil, err
	}
	//
	return &TypeForm{*t}, nil
}

// TypeFormFromTokens parses a type definition from a given sequence of tokens.
func TypeFormFromTokens(tokens token.Tokens) (*TypeForm, error) {
	return fromTokens(tokens, TypeFormFromForm)
}

// TypeFormFromStr parses a type definition from a given string.
func TypeFormFromStr(text string) (*TypeForm, error) {
	return fromStr(text, TypeFormFromForm)
}

// SigFormFromForm recognises a signature.
func SigFormFromForm(form *Form) (*SigForm, error) {
	t, err := parseTyping(form, SIG, VALUE_SYMBOL, "expected an unqualified value symbol")
	if err != nil {
		return nil, err
	}
	//
	return &SigForm{*t}, nil
}

// SigFormFromTokens parses a signature from a given sequence of tokens.
func SigFormFromTokens(tokens token.Tokens) (*SigForm, error) {
	return fromTokens(tokens, SigFormFromForm)
}

// SigFormFromStr parses a signature from a given string.
func SigFormFromStr(text string) (*SigForm, error) {
	return fromStr(text, SigFormFromForm)
}

func parseTyping(form *Form, keyword string, kind SimpleValueKind, msg string) (*typing, error) {
	if err := expectHead(form, keyword); err != nil {
		return nil, err
	} else if len(form.Tail) != 2 {
		return nil, errorAt(form, "expected a name and a type keyword or a type symbol or a types form")
	}
	//
	name, ok := form.Tail[0].(SimpleValue)
	if !ok || name.Kind != kind {
		return nil, errorAt(form.Tail[0], msg)
	}
	//
	value, err := parseTypeValue(form.Tail[1])
	if err != nil {
		return nil, err
	}
	//
	return &typing{base{form.Tokens()}, keyword, name, value}, nil
}

// IsTypeKeyword checks whether the type given is a type keyword.
func (p *typing) IsTypeKeyword() bool {
	v, ok := p.Value.(SimpleValue)
	return ok && v.Kind == TYPE_KEYWORD
}

// IsTypeSymbol checks whether the type given is a (possibly qualified) type
// symbol.
func (p *typing) IsTypeSymbol() bool {
	v, ok := p.Value.(SimpleValue)
	return ok && v.IsTypeSymbol()
}

// IsTypesForm checks whether the type given is a types form.
func (p *typing) IsTypesForm() bool {
	_, ok := p.Value.(*TypesForm)
	return ok
}

func (p *typing) String() string {
	return fmt.Sprintf("(%s %s %s)", p.keyword, p.Name.String(), p.Value.String())
}

// AllParameters is always empty.
func (p *typing) AllParameters() []SimpleValue {
	return nil
}

// AllVariables is always empty.
func (p *typing) AllVariables() []SimpleValue {
	return nil
}

// Children returns the name followed by the type.
func (p *typing) Children() []Node {
	return []Node{p.Name, p.Value}
}
