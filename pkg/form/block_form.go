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

// BLOCK is the head of a block form.
const BLOCK = "block"

// BlockForm is a sequence of module-level entries: imports, exports,
// attributes and definitions.
type BlockForm struct {
	base
	// Head of this block, which is "prod" when a product of entries is given as
	// the body of a module.
	head    string
	Entries []Node
}

// BlockFormFromForm recognises a block form.
func BlockFormFromForm(form *Form) (*BlockForm, error) {
	return parseBlock(form, BLOCK)
}

// BlockFormFromTokens parses a block form from a given sequence of tokens.
func BlockFormFromTokens(tokens token.Tokens) (*BlockForm, error) {
	return fromTokens(tokens, BlockFormFromForm)
}

// BlockFormFromStr parses a block form from a given string.
func BlockFormFromStr(text string) (*BlockForm, error) {
	return fromStr(text, BlockFormFromForm)
}

func parseBlock(form *Form, keyword string) (*BlockForm, error) {
	if err := expectHead(form, keyword); err != nil {
		return nil, err
	} else if len(form.Tail) == 0 {
		return nil, errorAt(form, "expected at least an entry")
	}
	//
	block := &BlockForm{base: base{form.Tokens()}, head: keyword}
	//
	for _, e := range form.Tail {
		nested, ok := e.(*Form)
		if !ok {
			return nil, errorAt(e, "expected a form")
		}
		//
		entry, err := ParseEntry(nested)
		if err != nil {
			return nil, err
		}
		//
		block.Entries = append(block.Entries, entry)
	}
	//
	return block, nil
}

// ParseEntry recognises a module-level entry: an import, export, attributes,
// type definition, signature or value definition.
func ParseEntry(form *Form) (Node, error) {
	if n, ok, err := attempt(form, ImportFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ExportFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, AttrsFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, TypeFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, SigFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, ValFormFromForm); ok {
		return n, err
	}
	//
	return nil, errorAt(form, "unexpected form")
}

// EntryAsImport returns the ith entry if it is an import form, or nil.
func (p *BlockForm) EntryAsImport(i int) *ImportForm {
	return entryAs[*ImportForm](p.Entries, i)
}

// EntryAsExport returns the ith entry if it is an export form, or nil.
func (p *BlockForm) EntryAsExport(i int) *ExportForm {
	return entryAs[*ExportForm](p.Entries, i)
}

// EntryAsAttrs returns the ith entry if it is an attributes form, or nil.
func (p *BlockForm) EntryAsAttrs(i int) *AttrsForm {
	return entryAs[*AttrsForm](p.Entries, i)
}

// EntryAsType returns the ith entry if it is a type definition, or nil.
func (p *BlockForm) EntryAsType(i int) *TypeForm {
	return entryAs[*TypeForm](p.Entries, i)
}

// EntryAsSig returns the ith entry if it is a signature, or nil.
func (p *BlockForm) EntryAsSig(i int) *SigForm {
	return entryAs[*SigForm](p.Entries, i)
}

// EntryAsVal returns the ith entry if it is a value definition, or nil.
func (p *BlockForm) EntryAsVal(i int) *ValForm {
	return entryAs[*ValForm](p.Entries, i)
}

// EntriesString renders the entries of this block.
func (p *BlockForm) EntriesString() string {
	return Join(p.Entries, " ")
}

func (p *BlockForm) String() string {
	return "(" + p.head + " " + p.EntriesString() + ")"
}

// AllParameters returns the parameters of every entry.
func (p *BlockForm) AllParameters() []SimpleValue {
	return allParameters(p.Entries...)
}

// AllVariables returns the variables of every entry.
func (p *BlockForm) AllVariables() []SimpleValue {
	return allVariables(p.Entries...)
}

// Children returns the entries of this block.
func (p *BlockForm) Children() []Node {
	return p.Entries
}
