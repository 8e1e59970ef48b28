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

// PROD is the head of a product form.  Observe that this is not a keyword, but
// a value symbol recognised by text alone.
const PROD = "prod"

// ProdForm is a tuple of two or more values, e.g. "(prod a b 1)".
type ProdForm struct {
	base
	Values []Node
}

// ProdFormFromForm recognises a product form.
func ProdFormFromForm(form *Form) (*ProdForm, error) {
	if err := expectHead(form, PROD); err != nil {
		return nil, err
	} else if len(form.Tail) < 2 {
		return nil, errorAt(form, "expected at least two values")
	}
	//
	prod := &ProdForm{base: base{form.Tokens()}}
	//
	for _, e := range form.Tail {
		switch e := e.(type) {
		case SimpleValue:
			prod.Values = append(prod.Values, e)
		case *Form:
			value, err := parseProdValue(e)
			if err != nil {
				return nil, err
			}
			//
			prod.Values = append(prod.Values, value)
		}
	}
	//
	return prod, nil
}

// ProdFormFromTokens parses a product form from a given sequence of tokens.
func ProdFormFromTokens(tokens token.Tokens) (*ProdForm, error) {
	return fromTokens(tokens, ProdFormFromForm)
}

// ProdFormFromStr parses a product form from a given string.
func ProdFormFromStr(text string) (*ProdForm, error) {
	return fromStr(text, ProdFormFromForm)
}

// Nested forms within a product are tried in a fixed order.  In particular,
// application forms are tried before definitions.
func parseProdValue(form *Form) (Node, error) {
	if n, ok, err := attempt(form, TypesFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ProdFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, FunFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, CaseFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, LetFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, PairFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ListFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ArrFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, VecFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, MapFormFromForm); ok {
		return n, err
	} else if app, err := AppFormFromForm(form); err == nil {
		return app, nil
	} else if n, ok, err := attempt(form, TypeFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, SigFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ValFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ImportFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ExportFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, AttrsFormFromForm); ok {
		return n, err
	}
	//
	return nil, errorAt(form, "unexpected form")
}

// Len returns the number of values in this product.
func (p *ProdForm) Len() int {
	return len(p.Values)
}

// IsSymbolic checks whether every value of this product is an unqualified
// value symbol or "_", such that it can appear in a binding position.
func (p *ProdForm) IsSymbolic() bool {
	for _, v := range p.Values {
		if !isBindingSymbol(v) {
			return false
		}
	}
	//
	return true
}

// ValuesString renders the values of this product.
func (p *ProdForm) ValuesString() string {
	return Join(p.Values, " ")
}

func (p *ProdForm) String() string {
	return fmt.Sprintf("(%s %s)", PROD, p.ValuesString())
}

// AllParameters returns the parameters of any binders in this product.
func (p *ProdForm) AllParameters() []SimpleValue {
	return allParameters(p.Values...)
}

// AllVariables returns the variables in this product.
func (p *ProdForm) AllVariables() []SimpleValue {
	return allVariables(p.Values...)
}

// Children returns the values of this product.
func (p *ProdForm) Children() []Node {
	return p.Values
}

// Check whether a node is an unqualified value symbol or "_".
func isBindingSymbol(n Node) bool {
	if v, ok := n.(SimpleValue); ok {
		return v.Kind == VALUE_SYMBOL || v.Kind == IGNORE
	}
	//
	return false
}
