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

// AppForm applies a value (named by a value symbol or keyword) to a single
// argument, or to a product of arguments, e.g. "(math.+ (prod a b))".  This is
// the only production without a head keyword of its own, hence it is only
// tried after the keyword-led candidates at any given position.
type AppForm struct {
	base
	Name SimpleValue
	// Arguments of this application.  When given as a product, its values are
	// held here directly.
	Args []Node
}

// AppFormFromForm recognises an application form.
func AppFormFromForm(form *Form) (*AppForm, error) {
	if len(form.Tail) != 1 {
		return nil, errorAt(form, "expected a single argument or a product of arguments")
	}
	//
	switch form.Head.Kind {
	case PANIC, VALUE_KEYWORD, VALUE_SYMBOL, VALUE_PATH_SYMBOL:
	default:
		return nil, errorAt(form, "expected a value keyword, a value symbol or a value path symbol")
	}
	//
	app := &AppForm{base: base{form.Tokens()}, Name: form.Head}
	//
	switch arg := form.Tail[0].(type) {
	case SimpleValue:
		if arg.Kind == VALUE_KEYWORD {
			return nil, errorAt(arg, fmt.Sprintf("unexpected argument: %s", arg.String()))
		}
		//
		app.Args = []Node{arg}
	case *Form:
		args, err := parseAppArgs(arg)
		if err != nil {
			return nil, err
		}
		//
		app.Args = args
	}
	//
	return app, nil
}

// AppFormFromTokens parses an application form from a given sequence of
// tokens.
func AppFormFromTokens(tokens token.Tokens) (*AppForm, error) {
	return fromTokens(tokens, AppFormFromForm)
}

// AppFormFromStr parses an application form from a given string.
func AppFormFromStr(text string) (*AppForm, error) {
	return fromStr(text, AppFormFromForm)
}

func parseAppArgs(form *Form) ([]Node, error) {
	if n, ok, err := attempt(form, ProdFormFromForm); ok {
		if err != nil {
			return nil, err
		}
		//
		for _, v := range n.(*ProdForm).Values {
			switch v.(type) {
			case SimpleValue, *TypesForm, *FunForm, *LetForm, *CaseForm, *AppForm:
			default:
				return nil, errorAt(v, "expected a product of keywords or symbols")
			}
		}
		//
		return n.(*ProdForm).Values, nil
	} else if n, ok, err := attempt(form, TypesFormFromForm); ok {
		return []Node{n}, err
	} else if n, ok, err := attempt(form, FunFormFromForm); ok {
		return []Node{n}, err
	} else if n, ok, err := attempt(form, LetFormFromForm); ok {
		return []Node{n}, err
	} else if n, ok, err := attempt(form, CaseFormFromForm); ok {
		return []Node{n}, err
	} else if app, err := AppFormFromForm(form); err == nil {
		return []Node{app}, nil
	}
	//
	return nil, errorAt(form, "expected a product of keywords or symbols")
}

// ArgsString renders the arguments of this application, such that more than one
// argument is rendered as a product.
func (p *AppForm) ArgsString() string {
	switch len(p.Args) {
	case 0:
		return "()"
	case 1:
		return p.Args[0].String()
	default:
		return fmt.Sprintf("(%s %s)", PROD, Join(p.Args, " "))
	}
}

func (p *AppForm) String() string {
	return fmt.Sprintf("(%s %s)", p.Name.String(), p.ArgsString())
}

// AllParameters returns the parameters of any binders amongst the arguments.
func (p *AppForm) AllParameters() []SimpleValue {
	return allParameters(p.Args...)
}

// AllVariables returns the name of this application (when it is a symbol)
// followed by the variables of its arguments.
func (p *AppForm) AllVariables() []SimpleValue {
	return append(p.Name.AllVariables(), allVariables(p.Args...)...)
}

// Children returns the name followed by the arguments.
func (p *AppForm) Children() []Node {
	return append([]Node{p.Name}, p.Args...)
}
