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

// CASE is the head of a case form.
const CASE = "case"

// MATCH is the head of a match clause within a case form.
const MATCH = "match"

// CaseForm dispatches on a scrutinee through one or more match clauses, e.g.
// "(case res (match T id) (match E panic))".
type CaseForm struct {
	base
	Param   Node
	Matches []*CaseMatch
}

// CaseFormFromForm recognises a case form.
func CaseFormFromForm(form *Form) (*CaseForm, error) {
	if err := expectHead(form, CASE); err != nil {
		return nil, err
	} else if len(form.Tail) < 2 {
		return nil, errorAt(form, "expected a case form parameter and at least one match branch")
	}
	//
	c := &CaseForm{base: base{form.Tokens()}}
	//
	param, err := parseCaseParam(form.Tail[0])
	if err != nil {
		return nil, err
	}
	//
	c.Param = param
	//
	for _, e := range form.Tail[1:] {
		nested, ok := e.(*Form)
		if !ok {
			return nil, errorAt(e, "expected a case match form")
		}
		//
		m, err := CaseMatchFromForm(nested)
		if err != nil {
			return nil, err
		}
		//
		c.Matches = append(c.Matches, m)
	}
	//
	return c, nil
}

// CaseFormFromTokens parses a case form from a given sequence of tokens.
func CaseFormFromTokens(tokens token.Tokens) (*CaseForm, error) {
	return fromTokens(tokens, CaseFormFromForm)
}

// CaseFormFromStr parses a case form from a given string.
func CaseFormFromStr(text string) (*CaseForm, error) {
	return fromStr(text, CaseFormFromForm)
}

func parseCaseParam(e TailElement) (Node, error) {
	switch e := e.(type) {
	case SimpleValue:
		if e.Kind == IGNORE || e.Kind == PANIC {
			return nil, errorAt(e, "unexpected case parameter")
		}
		//
		return e, nil
	case *Form:
		if n, ok, err := attempt(e, LetFormFromForm); ok {
			return n, err
		} else if app, err := AppFormFromForm(e); err == nil {
			return app, nil
		}
		//
		return nil, errorAt(e, "expected a let form or an application form")
	}
	//
	panic("unreachable")
}

// MatchesString renders the match clauses of this case form.
func (p *CaseForm) MatchesString() string {
	return Join(p.Matches, " ")
}

func (p *CaseForm) String() string {
	return fmt.Sprintf("(%s %s %s)", CASE, p.Param.String(), p.MatchesString())
}

// AllParameters returns the parameters of any binders within the scrutinee and
// the match clauses.
func (p *CaseForm) AllParameters() []SimpleValue {
	return append(p.Param.AllParameters(), allParameters(p.Matches...)...)
}

// AllVariables returns the variables of the scrutinee followed by those of the
// match clauses.
func (p *CaseForm) AllVariables() []SimpleValue {
	return append(p.Param.AllVariables(), allVariables(p.Matches...)...)
}

// Children returns the scrutinee followed by the match clauses.
func (p *CaseForm) Children() []Node {
	return append([]Node{p.Param}, toNodes(p.Matches)...)
}

func (p *CaseForm) isBinder() {}

// CaseMatch pairs a pattern with an action, e.g. "(match T (fun t t))".
type CaseMatch struct {
	base
	Pattern Node
	Action  Node
}

// CaseMatchFromForm recognises a match clause.
func CaseMatchFromForm(form *Form) (*CaseMatch, error) {
	if err := expectHead(form, MATCH); err != nil {
		return nil, err
	} else if len(form.Tail) != 2 {
		return nil, errorAt(form, "expected a pattern followed by an action")
	}
	//
	pattern, err := parseMatchPattern(form.Tail[0])
	if err != nil {
		return nil, err
	}
	//
	action, err := parseMatchAction(form.Tail[1])
	if err != nil {
		return nil, err
	}
	//
	return &CaseMatch{base{form.Tokens()}, pattern, action}, nil
}

// CaseMatchFromTokens parses a match clause from a given sequence of tokens.
func CaseMatchFromTokens(tokens token.Tokens) (*CaseMatch, error) {
	return fromTokens(tokens, CaseMatchFromForm)
}

// CaseMatchFromStr parses a match clause from a given string.
func CaseMatchFromStr(text string) (*CaseMatch, error) {
	return fromStr(text, CaseMatchFromForm)
}

func parseMatchPattern(e TailElement) (Node, error) {
	switch e := e.(type) {
	case SimpleValue:
		if e.Kind == PANIC {
			return nil, errorAt(e, "unexpected pattern")
		}
		//
		return e, nil
	case *Form:
		if n, ok, err := attempt(e, TypesFormFromForm); ok {
			return n, err
		} else if n, ok, err := attempt(e, ProdFormFromForm); ok {
			return n, err
		}
		//
		return nil, errorAt(e, "expected a types form or a product form")
	}
	//
	panic("unreachable")
}

func parseMatchAction(e TailElement) (Node, error) {
	switch e := e.(type) {
	case SimpleValue:
		return e, nil
	case *Form:
		if n, ok, err := attempt(e, ProdFormFromForm); ok {
			return n, err
		} else if n, ok, err := attempt(e, FunFormFromForm); ok {
			return n, err
		} else if n, ok, err := attempt(e, CaseFormFromForm); ok {
			return n, err
		} else if n, ok, err := attempt(e, LetFormFromForm); ok {
			return n, err
		} else if app, err := AppFormFromForm(e); err == nil {
			return app, nil
		}
		//
		return nil, errorAt(e, "unexpected form")
	}
	//
	panic("unreachable")
}

// IsFunForm checks whether the action of this clause is a function.
func (p *CaseMatch) IsFunForm() bool {
	_, ok := p.Action.(*FunForm)
	return ok
}

func (p *CaseMatch) String() string {
	return fmt.Sprintf("(%s %s %s)", MATCH, p.Pattern.String(), p.Action.String())
}

// AllParameters returns the parameters of the action.  Symbols within a pattern
// are matched against, rather than bound.
func (p *CaseMatch) AllParameters() []SimpleValue {
	return p.Action.AllParameters()
}

// AllVariables returns the variables of the action.
func (p *CaseMatch) AllVariables() []SimpleValue {
	return p.Action.AllVariables()
}

// Children returns the pattern followed by the action.
func (p *CaseMatch) Children() []Node {
	return []Node{p.Pattern, p.Action}
}
