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

// MODULE is the head of a module form.
const MODULE = "module"

// ModuleForm is the top-level unit of a source file, e.g.
// "(module main () (block ...))".  It consists of a name, optional type
// parameters and a body.  The body is "()", a block form or a product of
// entries.
type ModuleForm struct {
	base
	Name SimpleValue
	// Either nil, "()" or a product of type symbols.
	TypeParams Node
	// Either "()" or a block.
	Body Node
}

// ModuleFormFromForm recognises a module form.
func ModuleFormFromForm(form *Form) (*ModuleForm, error) {
	if err := expectHead(form, MODULE); err != nil {
		return nil, err
	} else if len(form.Tail) != 2 && len(form.Tail) != 3 {
		return nil, errorAt(form, "expected a name, optional type parameters and a body")
	}
	//
	var (
		n      = len(form.Tail)
		module = &ModuleForm{base: base{form.Tokens()}}
	)
	//
	name, ok := form.Tail[0].(SimpleValue)
	if !ok || !name.IsValueSymbol() {
		return nil, errorAt(form.Tail[0], "expected a module name")
	}
	//
	module.Name = name
	//
	if n == 3 {
		params, err := parseModuleTypeParams(form.Tail[1])
		if err != nil {
			return nil, err
		}
		//
		module.TypeParams = params
	}
	//
	body, err := parseModuleBody(form.Tail[n-1])
	if err != nil {
		return nil, err
	}
	//
	module.Body = body
	//
	return module, nil
}

// ModuleFormFromTokens parses a module form from a given sequence of tokens.
func ModuleFormFromTokens(tokens token.Tokens) (*ModuleForm, error) {
	return fromTokens(tokens, ModuleFormFromForm)
}

// ModuleFormFromStr parses a module form from a given string.
func ModuleFormFromStr(text string) (*ModuleForm, error) {
	return fromStr(text, ModuleFormFromForm)
}

func parseModuleTypeParams(e TailElement) (Node, error) {
	switch e := e.(type) {
	case SimpleValue:
		if e.Kind == EMPTY {
			return e, nil
		}
	case *Form:
		prod, err := ProdFormFromForm(e)
		if err != nil {
			return nil, err
		}
		//
		for _, v := range prod.Values {
			if s, ok := v.(SimpleValue); !ok || s.Kind != TYPE_SYMBOL {
				return nil, errorAt(v, "expected a type symbol")
			}
		}
		//
		return prod, nil
	}
	//
	return nil, errorAt(e, "expected an empty literal or a product of type symbols")
}

func parseModuleBody(e TailElement) (Node, error) {
	switch e := e.(type) {
	case SimpleValue:
		if e.Kind == EMPTY {
			return e, nil
		}
	case *Form:
		if n, ok, err := attempt(e, BlockFormFromForm); ok {
			return n, err
		} else if e.Head.String() == PROD {
			block, err := parseBlock(e, PROD)
			if err != nil {
				return nil, err
			}
			//
			return block, nil
		}
	}
	//
	return nil, errorAt(e, "expected an empty literal, a block form or a product of entries")
}

// Entries returns the entries of this module's body, if any.
func (p *ModuleForm) Entries() []Node {
	if block, ok := p.Body.(*BlockForm); ok {
		return block.Entries
	}
	//
	return nil
}

// EntryAsImport returns the ith entry if it is an import form, or nil.
func (p *ModuleForm) EntryAsImport(i int) *ImportForm {
	return entryAs[*ImportForm](p.Entries(), i)
}

// EntryAsExport returns the ith entry if it is an export form, or nil.
func (p *ModuleForm) EntryAsExport(i int) *ExportForm {
	return entryAs[*ExportForm](p.Entries(), i)
}

// EntryAsAttrs returns the ith entry if it is an attributes form, or nil.
func (p *ModuleForm) EntryAsAttrs(i int) *AttrsForm {
	return entryAs[*AttrsForm](p.Entries(), i)
}

// EntryAsType returns the ith entry if it is a type definition, or nil.
func (p *ModuleForm) EntryAsType(i int) *TypeForm {
	return entryAs[*TypeForm](p.Entries(), i)
}

// EntryAsSig returns the ith entry if it is a signature, or nil.
func (p *ModuleForm) EntryAsSig(i int) *SigForm {
	return entryAs[*SigForm](p.Entries(), i)
}

// EntryAsVal returns the ith entry if it is a value definition, or nil.
func (p *ModuleForm) EntryAsVal(i int) *ValForm {
	return entryAs[*ValForm](p.Entries(), i)
}

// TypeParamsString renders the type parameters of this module, or the empty
// string if there are none.
func (p *ModuleForm) TypeParamsString() string {
	if p.TypeParams == nil {
		return ""
	}
	//
	return p.TypeParams.String()
}

func (p *ModuleForm) String() string {
	return "(" + spaced(MODULE, p.Name.String(), p.TypeParamsString(), p.Body.String()) + ")"
}

// AllParameters returns the parameters of every entry.
func (p *ModuleForm) AllParameters() []SimpleValue {
	return allParameters(p.Entries()...)
}

// AllVariables returns the variables of every entry.
func (p *ModuleForm) AllVariables() []SimpleValue {
	return allVariables(p.Entries()...)
}

// Children returns the name, the type parameters (if any) and the body.
func (p *ModuleForm) Children() []Node {
	if p.TypeParams == nil {
		return []Node{p.Name, p.Body}
	}
	//
	return []Node{p.Name, p.TypeParams, p.Body}
}
