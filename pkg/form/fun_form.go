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

// FUN is the head of a function form.
const FUN = "fun"

// FunForm is an anonymous function, e.g. "(fun a b (math.+ (prod a b)))".  The
// tail consists of one or more parameters followed by a body.
type FunForm struct {
	base
	Parameters []Node
	Body       Node
}

// FunFormFromForm recognises a function form.
func FunFormFromForm(form *Form) (*FunForm, error) {
	if err := expectHead(form, FUN); err != nil {
		return nil, err
	} else if len(form.Tail) < 2 {
		return nil, errorAt(form, "expected at least a parameter and a function body")
	}
	//
	var (
		n   = len(form.Tail)
		fun = &FunForm{base: base{form.Tokens()}}
	)
	//
	for _, e := range form.Tail[:n-1] {
		param, err := parseFunParameter(e, n == 2)
		if err != nil {
			return nil, err
		}
		//
		fun.Parameters = append(fun.Parameters, param)
	}
	//
	body, err := parseFunBody(form.Tail[n-1])
	if err != nil {
		return nil, err
	}
	//
	fun.Body = body
	//
	return fun, nil
}

// FunFormFromTokens parses a function form from a given sequence of tokens.
func FunFormFromTokens(tokens token.Tokens) (*FunForm, error) {
	return fromTokens(tokens, FunFormFromForm)
}

// FunFormFromStr parses a function form from a given string.
func FunFormFromStr(text string) (*FunForm, error) {
	return fromStr(text, FunFormFromForm)
}

// A parameter is an unqualified value symbol, "_", or a product (or other
// collection) of those.  The empty literal is only permitted as the sole
// parameter.
func parseFunParameter(e TailElement, sole bool) (Node, error) {
	switch e := e.(type) {
	case SimpleValue:
		if e.Kind == VALUE_SYMBOL || e.Kind == IGNORE || (sole && e.Kind == EMPTY) {
			return e, nil
		}
		//
		return nil, errorAt(e, "expected an unqualified value symbol or an empty literal")
	case *Form:
		if n, ok, err := attempt(e, ProdFormFromForm); ok {
			return symbolicCollection(n, err, PROD)
		} else if n, ok, err := attempt(e, MapFormFromForm); ok {
			return symbolicCollection(n, err, MAP)
		} else if n, ok, err := attempt(e, VecFormFromForm); ok {
			return symbolicCollection(n, err, VEC)
		} else if n, ok, err := attempt(e, ArrFormFromForm); ok {
			return symbolicCollection(n, err, ARR)
		} else if n, ok, err := attempt(e, ListFormFromForm); ok {
			return symbolicCollection(n, err, LIST)
		} else if n, ok, err := attempt(e, PairFormFromForm); ok {
			return symbolicCollection(n, err, PAIR)
		}
		//
		return nil, errorAt(e, "unexpected form")
	}
	//
	panic("unreachable")
}

func symbolicCollection(n Node, err error, keyword string) (Node, error) {
	if err != nil {
		return nil, err
	} else if c, ok := n.(symbolic); ok && !c.IsSymbolic() {
		return nil, errorAt(n, fmt.Sprintf("expected a symbolic %s form", keyword))
	}
	//
	return n, nil
}

func parseFunBody(e TailElement) (Node, error) {
	switch e := e.(type) {
	case SimpleValue:
		if e.IsAtomic() || e.IsValueSymbol() || e.Kind == PANIC {
			return e, nil
		}
		//
		return nil, errorAt(e, "unexpected function body")
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
		} else if n, ok, err := attempt(e, LetFormFromForm); ok {
			return n, err
		} else if n, ok, err := attempt(e, CaseFormFromForm); ok {
			return n, err
		} else if n, ok, err := attempt(e, FunFormFromForm); ok {
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

// ParametersString renders the parameters of this function.
func (p *FunForm) ParametersString() string {
	return Join(p.Parameters, " ")
}

func (p *FunForm) String() string {
	return fmt.Sprintf("(%s %s %s)", FUN, p.ParametersString(), p.Body.String())
}

// AllParameters returns the declared parameters of this function, followed by
// those of any binder in its body.
func (p *FunForm) AllParameters() []SimpleValue {
	var params []SimpleValue
	//
	for _, param := range p.Parameters {
		// Every symbol of a product or collection parameter is bound
		params = append(params, param.AllVariables()...)
	}
	//
	return append(params, p.Body.AllParameters()...)
}

// AllVariables returns the variables referenced in the body of this function.
func (p *FunForm) AllVariables() []SimpleValue {
	return p.Body.AllVariables()
}

// Children returns the parameters followed by the body.
func (p *FunForm) Children() []Node {
	return append(append([]Node{}, p.Parameters...), p.Body)
}

func (p *FunForm) isBinder() {}
