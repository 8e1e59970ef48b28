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

// LET is the head of a let form.  As for PROD, this is recognised by text
// rather than being a keyword.
const LET = "let"

// LetForm introduces zero or more local entries (imports, attributes and
// definitions) scoped over a final application, e.g.
// "(let (val x 1) (f x))".
type LetForm struct {
	base
	Entries []Node
	Value   *AppForm
}

// LetFormFromForm recognises a let form.
func LetFormFromForm(form *Form) (*LetForm, error) {
	if err := expectHead(form, LET); err != nil {
		return nil, err
	} else if len(form.Tail) < 1 {
		return nil, errorAt(form, "expected at least an application form")
	}
	//
	var (
		n   = len(form.Tail)
		let = &LetForm{base: base{form.Tokens()}}
	)
	//
	for _, e := range form.Tail[:n-1] {
		nested, ok := e.(*Form)
		if !ok {
			return nil, errorAt(e, "expected a form")
		}
		//
		entry, err := parseLetEntry(nested)
		if err != nil {
			return nil, err
		}
		//
		let.Entries = append(let.Entries, entry)
	}
	//
	last, ok := form.Tail[n-1].(*Form)
	if !ok {
		return nil, errorAt(form.Tail[n-1], "expected an application form")
	}
	//
	app, err := AppFormFromForm(last)
	if err != nil {
		return nil, err
	}
	//
	let.Value = app
	//
	return let, nil
}

// LetFormFromTokens parses a let form from a given sequence of tokens.
func LetFormFromTokens(tokens token.Tokens) (*LetForm, error) {
	return fromTokens(tokens, LetFormFromForm)
}

// LetFormFromStr parses a let form from a given string.
func LetFormFromStr(text string) (*LetForm, error) {
	return fromStr(text, LetFormFromForm)
}

func parseLetEntry(form *Form) (Node, error) {
	if n, ok, err := attempt(form, ImportFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, AttrsFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ValFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, SigFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, TypeFormFromForm); ok {
		return n, err
	}
	//
	return nil, errorAt(form, "unexpected form")
}

// EntryAsImport returns the ith entry if it is an import form, or nil.
func (p *LetForm) EntryAsImport(i int) *ImportForm {
	return entryAs[*ImportForm](p.Entries, i)
}

// EntryAsAttrs returns the ith entry if it is an attributes form, or nil.
func (p *LetForm) EntryAsAttrs(i int) *AttrsForm {
	return entryAs[*AttrsForm](p.Entries, i)
}

// EntryAsVal returns the ith entry if it is a value definition, or nil.
func (p *LetForm) EntryAsVal(i int) *ValForm {
	return entryAs[*ValForm](p.Entries, i)
}

// EntryAsSig returns the ith entry if it is a signature, or nil.
func (p *LetForm) EntryAsSig(i int) *SigForm {
	return entryAs[*SigForm](p.Entries, i)
}

// EntryAsType returns the ith entry if it is a type definition, or nil.
func (p *LetForm) EntryAsType(i int) *TypeForm {
	return entryAs[*TypeForm](p.Entries, i)
}

// EntriesString renders the entries of this let form.
func (p *LetForm) EntriesString() string {
	return Join(p.Entries, " ")
}

func (p *LetForm) String() string {
	return fmt.Sprintf("(%s %s)", LET, spaced(p.EntriesString(), p.Value.String()))
}

// AllParameters returns, for each entry in turn, the parameters of its binders
// followed by the name it defines (if it is a value definition).  These are
// followed by the parameters of the final application.
func (p *LetForm) AllParameters() []SimpleValue {
	var params []SimpleValue
	//
	for _, e := range p.Entries {
		params = append(params, e.AllParameters()...)
		//
		if val, ok := e.(*ValForm); ok {
			params = append(params, val.Name)
		}
	}
	//
	return append(params, p.Value.AllParameters()...)
}

// AllVariables returns the variables of each entry followed by those of the
// final application.
func (p *LetForm) AllVariables() []SimpleValue {
	return append(allVariables(p.Entries...), p.Value.AllVariables()...)
}

// Children returns the entries followed by the final application.
func (p *LetForm) Children() []Node {
	return append(append([]Node{}, p.Entries...), p.Value)
}

func entryAs[T Node](entries []Node, i int) T {
	var empty T
	//
	if i < 0 || i >= len(entries) {
		return empty
	} else if entry, ok := entries[i].(T); ok {
		return entry
	}
	//
	return empty
}
