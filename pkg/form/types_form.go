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
	"github.com/consensys/go-forms/pkg/token"
)

// TypesForm is a form living entirely at the type level, e.g. "(Fun A B)" or
// "(Result T E)".
type TypesForm struct {
	base
	Name   SimpleValue
	Params []Node
}

// TypesFormFromForm recognises a types form.  Any form whose head is not a type
// keyword or type symbol is rejected outright.
func TypesFormFromForm(form *Form) (*TypesForm, error) {
	if !form.Head.IsType() {
		msg := "expected a type keyword, a type symbol or a type path symbol"
		return nil, mismatch{errorAt(form.Head, msg), form}
	}
	//
	types := &TypesForm{base: base{form.Tokens()}, Name: form.Head}
	//
	for _, e := range form.Tail {
		switch e := e.(type) {
		case SimpleValue:
			if !e.IsType() {
				return nil, errorAt(e, "unexpected type value")
			}
			//
			types.Params = append(types.Params, e)
		case *Form:
			if !e.IsTypesForm() {
				return nil, errorAt(e, "expected a form of types")
			}
			//
			nested, err := TypesFormFromForm(e)
			if err != nil {
				return nil, err
			}
			//
			types.Params = append(types.Params, nested)
		}
	}
	//
	return types, nil
}

// TypesFormFromTokens parses a types form from a given sequence of tokens.
func TypesFormFromTokens(tokens token.Tokens) (*TypesForm, error) {
	return fromTokens(tokens, TypesFormFromForm)
}

// TypesFormFromStr parses a types form from a given string.
func TypesFormFromStr(text string) (*TypesForm, error) {
	return fromStr(text, TypesFormFromForm)
}

// ParamsString renders the parameters of this types form.
func (p *TypesForm) ParamsString() string {
	return Join(p.Params, " ")
}

func (p *TypesForm) String() string {
	return "(" + spaced(p.Name.String(), p.ParamsString()) + ")"
}

// AllParameters is always empty, since types bind no values.
func (p *TypesForm) AllParameters() []SimpleValue {
	return nil
}

// AllVariables is always empty, since types reference no values.
func (p *TypesForm) AllVariables() []SimpleValue {
	return nil
}

// Children returns the name followed by the parameters.
func (p *TypesForm) Children() []Node {
	return append([]Node{p.Name}, p.Params...)
}

// A type-level slot holds either a type atom or a types form.
func parseTypeValue(e TailElement) (Node, error) {
	switch e := e.(type) {
	case SimpleValue:
		if !e.IsType() {
			return nil, errorAt(e, "expected a type keyword or a type symbol")
		}
		//
		return e, nil
	case *Form:
		types, err := TypesFormFromForm(e)
		if err != nil {
			return nil, err
		}
		//
		return types, nil
	}
	//
	panic("unreachable")
}
