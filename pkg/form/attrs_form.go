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

// ATTRS is the head of an attributes form.
const ATTRS = "attrs"

// AttrsForm attaches attributes to a name, e.g. "(attrs unwrap inline)".
type AttrsForm struct {
	base
	Name       SimpleValue
	Attributes Node
}

// AttrsFormFromForm recognises an attributes form.
func AttrsFormFromForm(form *Form) (*AttrsForm, error) {
	if err := expectHead(form, ATTRS); err != nil {
		return nil, err
	} else if len(form.Tail) != 2 {
		return nil, errorAt(form, "expected a name and some attributes")
	}
	//
	name, ok := form.Tail[0].(SimpleValue)
	if !ok || (name.Kind != VALUE_SYMBOL && name.Kind != TYPE_SYMBOL) {
		return nil, errorAt(form.Tail[0], "expected an unqualified symbol")
	}
	//
	attrs := &AttrsForm{base: base{form.Tokens()}, Name: name}
	//
	switch e := form.Tail[1].(type) {
	case SimpleValue:
		if e.Kind == IGNORE {
			return nil, errorAt(e, "unexpected attribute")
		}
		//
		attrs.Attributes = e
	case *Form:
		if n, ok, err := attempt(e, MapFormFromForm); ok {
			if err != nil {
				return nil, err
			}
			//
			attrs.Attributes = n
		} else if n, ok, err := attempt(e, ProdFormFromForm); ok {
			if err != nil {
				return nil, err
			}
			//
			attrs.Attributes = n
		} else {
			return nil, errorAt(e, "expected a map form or a product form")
		}
	}
	//
	return attrs, nil
}

// AttrsFormFromTokens parses an attributes form from a given sequence of
// tokens.
func AttrsFormFromTokens(tokens token.Tokens) (*AttrsForm, error) {
	return fromTokens(tokens, AttrsFormFromForm)
}

// AttrsFormFromStr parses an attributes form from a given string.
func AttrsFormFromStr(text string) (*AttrsForm, error) {
	return fromStr(text, AttrsFormFromForm)
}

// IsTypeAttributes checks whether the attributes are attached to a type.
func (p *AttrsForm) IsTypeAttributes() bool {
	return p.Name.Kind == TYPE_SYMBOL
}

// IsValueAttributes checks whether the attributes are attached to a value.
func (p *AttrsForm) IsValueAttributes() bool {
	return p.Name.Kind == VALUE_SYMBOL
}

func (p *AttrsForm) String() string {
	return fmt.Sprintf("(%s %s %s)", ATTRS, p.Name.String(), p.Attributes.String())
}

// AllParameters is always empty.
func (p *AttrsForm) AllParameters() []SimpleValue {
	return nil
}

// AllVariables is always empty, since attributes are not evaluated.
func (p *AttrsForm) AllVariables() []SimpleValue {
	return nil
}

// Children returns the name followed by the attributes.
func (p *AttrsForm) Children() []Node {
	return []Node{p.Name, p.Attributes}
}
