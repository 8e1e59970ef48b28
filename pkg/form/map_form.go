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

// MAP is the head of a map literal.
const MAP = "map"

// MapForm is a map literal, e.g. "(map (pair a 1) (pair b 2))".  Its entries
// are pairs or products, whilst "(map ())" is the empty map.
type MapForm struct {
	base
	Entries []Node
}

// MapFormFromForm recognises a map literal.
func MapFormFromForm(form *Form) (*MapForm, error) {
	if err := expectHead(form, MAP); err != nil {
		return nil, err
	} else if len(form.Tail) == 0 {
		return nil, errorAt(form, "expected at least a value")
	}
	//
	m := &MapForm{base: base{form.Tokens()}}
	//
	for _, e := range form.Tail {
		switch e := e.(type) {
		case SimpleValue:
			if e.Kind != EMPTY || len(form.Tail) != 1 {
				return nil, errorAt(e, "expected a pair or a product form")
			}
			//
			m.Entries = append(m.Entries, e)
		case *Form:
			entry, err := parseMapEntry(e)
			if err != nil {
				return nil, err
			}
			//
			m.Entries = append(m.Entries, entry)
		}
	}
	//
	return m, nil
}

// MapFormFromTokens parses a map literal from a given sequence of tokens.
func MapFormFromTokens(tokens token.Tokens) (*MapForm, error) {
	return fromTokens(tokens, MapFormFromForm)
}

// MapFormFromStr parses a map literal from a given string.
func MapFormFromStr(text string) (*MapForm, error) {
	return fromStr(text, MapFormFromForm)
}

func parseMapEntry(form *Form) (Node, error) {
	if n, ok, err := attempt(form, PairFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ProdFormFromForm); ok {
		return n, err
	}
	//
	return nil, errorAt(form, "expected a pair or a product form")
}

// IsEmpty checks whether this is the empty map.
func (p *MapForm) IsEmpty() bool {
	_, ok := p.Entries[0].(SimpleValue)
	return ok
}

// IsSymbolic checks whether every entry of this map is symbolic.
func (p *MapForm) IsSymbolic() bool {
	if p.IsEmpty() {
		return false
	}
	//
	for _, e := range p.Entries {
		if !e.(symbolic).IsSymbolic() {
			return false
		}
	}
	//
	return true
}

func (p *MapForm) String() string {
	return fmt.Sprintf("(%s %s)", MAP, Join(p.Entries, " "))
}

// AllParameters returns the parameters of any binders in this map.
func (p *MapForm) AllParameters() []SimpleValue {
	return allParameters(p.Entries...)
}

// AllVariables returns the variables of this map.
func (p *MapForm) AllVariables() []SimpleValue {
	return allVariables(p.Entries...)
}

// Children returns the entries of this map.
func (p *MapForm) Children() []Node {
	return p.Entries
}
