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

// VAL is the head of a value definition.
const VAL = "val"

// ValForm binds a name to a value, e.g. "(val x (fun a a))".
type ValForm struct {
	base
	Name  SimpleValue
	Value Node
}

// ValFormFromForm recognises a value definition.
func ValFormFromForm(form *Form) (*ValForm, error) {
	if err := expectHead(form, VAL); err != nil {
		return nil, err
	} else if len(form.Tail) != 2 {
		return nil, errorAt(form, "expected a name and a value")
	}
	//
	name, ok := form.Tail[0].(SimpleValue)
	if !ok || (name.Kind != VALUE_SYMBOL && name.Kind != TYPE_SYMBOL) {
		return nil, errorAt(form.Tail[0], "expected an unqualified symbol")
	}
	//
	value, err := parseValValue(form.Tail[1])
	if err != nil {
		return nil, err
	}
	//
	return &ValForm{base{form.Tokens()}, name, value}, nil
}

// ValFormFromTokens parses a value definition from a given sequence of tokens.
func ValFormFromTokens(tokens token.Tokens) (*ValForm, error) {
	return fromTokens(tokens, ValFormFromForm)
}

// ValFormFromStr parses a value definition from a given string.
func ValFormFromStr(text string) (*ValForm, error) {
	return fromStr(text, ValFormFromForm)
}

func parseValValue(e TailElement) (Node, error) {
	switch e := e.(type) {
	case SimpleValue:
		switch e.Kind {
		case EMPTY, PANIC, PRIM, VALUE_SYMBOL, VALUE_PATH_SYMBOL:
			return e, nil
		default:
			return nil, errorAt(e, "unexpected value")
		}
	case *Form:
		if n, ok, err := attempt(e, PairFormFromForm); ok {
			return n, err
		} else if n, ok, err := attempt(e, ListFormFromForm); ok {
			return n, err
		} else if n, ok, err := attempt(e, ArrFormFromForm); ok {
			return n, err
		} else if n, ok, err := attempt(e, VecFormFromForm); ok {
			return n, err
		} else if n, ok, err := attempt(e, MapFormFromForm); ok {
			return n, err
		} else if n, ok, err := attempt(e, FunFormFromForm); ok {
			return n, err
		} else if n, ok, err := attempt(e, LetFormFromForm); ok {
			return n, err
		} else if n, ok, err := attempt(e, CaseFormFromForm); ok {
			return n, err
		} else if app, err := AppFormFromForm(e); err == nil {
			return app, nil
		} else if n, ok, err := attempt(e, ProdFormFromForm); ok {
			return n, err
		}
		//
		return nil, errorAt(e, "unexpected form")
	}
	//
	panic("unreachable")
}

// IsValue checks whether the name defined is at the value level.
func (p *ValForm) IsValue() bool {
	return p.Name.Kind == VALUE_SYMBOL
}

// IsFunForm checks whether the value defined is a function.
func (p *ValForm) IsFunForm() bool {
	_, ok := p.Value.(*FunForm)
	return ok
}

// IsAppForm checks whether the value defined is an application.
func (p *ValForm) IsAppForm() bool {
	_, ok := p.Value.(*AppForm)
	return ok
}

// IsLetForm checks whether the value defined is a let form.
func (p *ValForm) IsLetForm() bool {
	_, ok := p.Value.(*LetForm)
	return ok
}

// IsCaseForm checks whether the value defined is a case form.
func (p *ValForm) IsCaseForm() bool {
	_, ok := p.Value.(*CaseForm)
	return ok
}

// IsProdForm checks whether the value defined is a product.
func (p *ValForm) IsProdForm() bool {
	_, ok := p.Value.(*ProdForm)
	return ok
}

func (p *ValForm) String() string {
	return fmt.Sprintf("(%s %s %s)", VAL, p.Name.String(), p.Value.String())
}

// AllParameters returns the parameters of any binder in the value.  The name
// defined is not itself a parameter.
func (p *ValForm) AllParameters() []SimpleValue {
	return p.Value.AllParameters()
}

// AllVariables returns the variables of the value.
func (p *ValForm) AllVariables() []SimpleValue {
	return p.Value.AllVariables()
}

// Children returns the name followed by the value.
func (p *ValForm) Children() []Node {
	return []Node{p.Name, p.Value}
}
