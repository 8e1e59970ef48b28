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

// IMPORT is the head of an import form.
const IMPORT = "import"

// EXPORT is the head of an export form.
const EXPORT = "export"

// ImportForm brings the definitions of some module into scope, e.g.
// "(import std.io _ println)".  The module path is followed by at most two
// slots.  When there is one slot it lists the names imported (at either level).
// When there are two, the first lists types and the second values.  Each slot
// is "()", "_", a single symbol or a product of symbols.
type ImportForm struct {
	base
	Module SimpleValue
	Defs   []Node
}

// ImportFormFromForm recognises an import form.
func ImportFormFromForm(form *Form) (*ImportForm, error) {
	if err := expectHead(form, IMPORT); err != nil {
		return nil, err
	} else if len(form.Tail) == 0 {
		return nil, errorAt(form, "expected at least a module name")
	} else if len(form.Tail) > 3 {
		return nil, errorAt(form, "expected at most a module, a product of types and a product of values")
	}
	//
	module, ok := form.Tail[0].(SimpleValue)
	if !ok || !module.IsValueSymbol() {
		return nil, errorAt(form.Tail[0], "expected a module path")
	}
	//
	imp := &ImportForm{base: base{form.Tokens()}, Module: module}
	//
	for _, e := range form.Tail[1:] {
		defs, err := parseDefs(e, true)
		if err != nil {
			return nil, err
		}
		//
		imp.Defs = append(imp.Defs, defs)
	}
	//
	return imp, nil
}

// ImportFormFromTokens parses an import form from a given sequence of tokens.
func ImportFormFromTokens(tokens token.Tokens) (*ImportForm, error) {
	return fromTokens(tokens, ImportFormFromForm)
}

// ImportFormFromStr parses an import form from a given string.
func ImportFormFromStr(text string) (*ImportForm, error) {
	return fromStr(text, ImportFormFromForm)
}

// Names returns every symbol explicitly imported.
func (p *ImportForm) Names() []SimpleValue {
	return defNames(p.Defs...)
}

func (p *ImportForm) String() string {
	return "(" + spaced(IMPORT, p.Module.String(), Join(p.Defs, " ")) + ")"
}

// AllParameters is always empty.
func (p *ImportForm) AllParameters() []SimpleValue {
	return nil
}

// AllVariables is always empty.
func (p *ImportForm) AllVariables() []SimpleValue {
	return nil
}

// Children returns the module followed by the imported definitions.
func (p *ImportForm) Children() []Node {
	return append([]Node{p.Module}, p.Defs...)
}

// ExportForm makes some definitions of the enclosing module visible, e.g.
// "(export (prod b C))".
type ExportForm struct {
	base
	Defs Node
}

// ExportFormFromForm recognises an export form.
func ExportFormFromForm(form *Form) (*ExportForm, error) {
	if err := expectHead(form, EXPORT); err != nil {
		return nil, err
	} else if len(form.Tail) != 1 {
		return nil, errorAt(form, "expected a symbol or a product of symbols")
	}
	//
	defs, err := parseDefs(form.Tail[0], false)
	if err != nil {
		return nil, err
	}
	//
	return &ExportForm{base{form.Tokens()}, defs}, nil
}

// ExportFormFromTokens parses an export form from a given sequence of tokens.
func ExportFormFromTokens(tokens token.Tokens) (*ExportForm, error) {
	return fromTokens(tokens, ExportFormFromForm)
}

// ExportFormFromStr parses an export form from a given string.
func ExportFormFromStr(text string) (*ExportForm, error) {
	return fromStr(text, ExportFormFromForm)
}

// Names returns every symbol exported.
func (p *ExportForm) Names() []SimpleValue {
	return defNames(p.Defs)
}

func (p *ExportForm) String() string {
	return "(" + EXPORT + " " + p.Defs.String() + ")"
}

// AllParameters is always empty.
func (p *ExportForm) AllParameters() []SimpleValue {
	return nil
}

// AllVariables is always empty.
func (p *ExportForm) AllVariables() []SimpleValue {
	return nil
}

// Children returns the exported definitions.
func (p *ExportForm) Children() []Node {
	return []Node{p.Defs}
}

// Parse a slot listing definitions.  The ignore keyword is only meaningful in
// an import, where it skips a slot.
func parseDefs(e TailElement, ignorable bool) (Node, error) {
	switch e := e.(type) {
	case SimpleValue:
		if e.Kind == EMPTY || (ignorable && e.Kind == IGNORE) || isDefName(e) {
			return e, nil
		}
		//
		return nil, errorAt(e, "expected a symbol or a product of symbols")
	case *Form:
		prod, err := ProdFormFromForm(e)
		if err != nil {
			return nil, err
		}
		//
		for _, v := range prod.Values {
			if s, ok := v.(SimpleValue); !ok || !isDefName(s) {
				return nil, errorAt(v, "expected a product of symbols")
			}
		}
		//
		return prod, nil
	}
	//
	panic("unreachable")
}

func isDefName(v SimpleValue) bool {
	return v.Kind == VALUE_SYMBOL || v.Kind == TYPE_SYMBOL || v.Kind == TYPE_KEYWORD
}

func defNames(defs ...Node) []SimpleValue {
	var names []SimpleValue
	//
	for _, d := range defs {
		switch d := d.(type) {
		case SimpleValue:
			if isDefName(d) {
				names = append(names, d)
			}
		case *ProdForm:
			for _, v := range d.Values {
				names = append(names, v.(SimpleValue))
			}
		}
	}
	//
	return names
}
