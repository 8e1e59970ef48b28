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

// PAIR is the head of a pair literal.
const PAIR = "pair"

// LIST is the head of a list literal.
const LIST = "list"

// ARR is the head of an array literal.
const ARR = "arr"

// VEC is the head of a vector literal.
const VEC = "vec"

// symbolic is implemented by forms which may occupy a binding position when
// they contain only symbols.
type symbolic interface {
	IsSymbolic() bool
}

// collection captures the shape shared by pair, list, array and vector
// literals: a keyword followed by one or more values.
type collection struct {
	base
	keyword string
	Values  []Node
}

// PairForm is a pair literal, e.g. "(pair a 1)".
type PairForm struct {
	collection
}

// ListForm is a list literal, e.g. "(list 1 2 3)".
type ListForm struct {
	collection
}

// ArrForm is an array literal, e.g. "(arr 1 2 3)".
type ArrForm struct {
	collection
}

// VecForm is a vector literal, e.g. "(vec 1 2 3)".
type VecForm struct {
	collection
}

// PairFormFromForm recognises a pair literal, which holds exactly two values.
func PairFormFromForm(form *Form) (*PairForm, error) {
	c, err := parseCollection(form, PAIR)
	if err != nil {
		return nil, err
	} else if len(c.Values) != 2 {
		return nil, errorAt(form, "expected two values")
	}
	//
	return &PairForm{*c}, nil
}

// PairFormFromStr parses a pair literal from a given string.
func PairFormFromStr(text string) (*PairForm, error) {
	return fromStr(text, PairFormFromForm)
}

// ListFormFromForm recognises a list literal.
func ListFormFromForm(form *Form) (*ListForm, error) {
	c, err := parseCollection(form, LIST)
	if err != nil {
		return nil, err
	}
	//
	return &ListForm{*c}, nil
}

// ListFormFromStr parses a list literal from a given string.
func ListFormFromStr(text string) (*ListForm, error) {
	return fromStr(text, ListFormFromForm)
}

// ArrFormFromForm recognises an array literal.
func ArrFormFromForm(form *Form) (*ArrForm, error) {
	c, err := parseCollection(form, ARR)
	if err != nil {
		return nil, err
	}
	//
	return &ArrForm{*c}, nil
}

// ArrFormFromStr parses an array literal from a given string.
func ArrFormFromStr(text string) (*ArrForm, error) {
	return fromStr(text, ArrFormFromForm)
}

// VecFormFromForm recognises a vector literal.
func VecFormFromForm(form *Form) (*VecForm, error) {
	c, err := parseCollection(form, VEC)
	if err != nil {
		return nil, err
	}
	//
	return &VecForm{*c}, nil
}

// VecFormFromStr parses a vector literal from a given string.
func VecFormFromStr(text string) (*VecForm, error) {
	return fromStr(text, VecFormFromForm)
}

// CollectionFromTokens parses any collection literal (pair, list, array or
// vector) from a given sequence of tokens.
func CollectionFromTokens(tokens token.Tokens) (Node, error) {
	return fromTokens(tokens, parseAnyCollection)
}

func parseAnyCollection(form *Form) (Node, error) {
	if n, ok, err := attempt(form, PairFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ListFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ArrFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, VecFormFromForm); ok {
		return n, err
	}
	//
	return nil, errorAt(form, "expected a collection")
}

func parseCollection(form *Form, keyword string) (*collection, error) {
	if err := expectHead(form, keyword); err != nil {
		return nil, err
	} else if len(form.Tail) == 0 {
		return nil, errorAt(form, "expected at least a value")
	}
	//
	c := &collection{base: base{form.Tokens()}, keyword: keyword}
	//
	for _, e := range form.Tail {
		switch e := e.(type) {
		case SimpleValue:
			c.Values = append(c.Values, e)
		case *Form:
			value, err := parseCollectionValue(e)
			if err != nil {
				return nil, err
			}
			//
			c.Values = append(c.Values, value)
		}
	}
	//
	return c, nil
}

func parseCollectionValue(form *Form) (Node, error) {
	if n, ok, err := attempt(form, TypesFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ProdFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, MapFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, VecFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ArrFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ListFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, PairFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, FunFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, CaseFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, LetFormFromForm); ok {
		return n, err
	} else if app, err := AppFormFromForm(form); err == nil {
		return app, nil
	}
	//
	return nil, errorAt(form, "unexpected form")
}

// Len returns the number of values in this collection.
func (p *collection) Len() int {
	return len(p.Values)
}

// IsSymbolic checks whether every value of this collection is an unqualified
// value symbol, "_" or itself a symbolic collection.
func (p *collection) IsSymbolic() bool {
	for _, v := range p.Values {
		if s, ok := v.(symbolic); ok {
			if !s.IsSymbolic() {
				return false
			}
		} else if !isBindingSymbol(v) {
			return false
		}
	}
	//
	return true
}

// ValuesString renders the values of this collection.
func (p *collection) ValuesString() string {
	return Join(p.Values, " ")
}

func (p *collection) String() string {
	return fmt.Sprintf("(%s %s)", p.keyword, p.ValuesString())
}

// AllParameters returns the parameters of any binders in this collection.
func (p *collection) AllParameters() []SimpleValue {
	return allParameters(p.Values...)
}

// AllVariables returns the variables of this collection.
func (p *collection) AllVariables() []SimpleValue {
	return allVariables(p.Values...)
}

// Children returns the values of this collection.
func (p *collection) Children() []Node {
	return p.Values
}
