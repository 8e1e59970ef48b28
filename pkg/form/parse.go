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

// ParseAll parses every top-level form in a given token stream, such as that
// obtained from a source file.  Parsing stops at the first error.
func ParseAll(tokens token.Tokens) ([]Node, error) {
	var nodes []Node
	//
	for _, run := range SplitTopLevel(tokens) {
		form, err := ParseForm(run)
		if err != nil {
			return nil, err
		}
		//
		node, err := ParseTopLevel(form)
		if err != nil {
			return nil, err
		}
		//
		nodes = append(nodes, node)
	}
	//
	return nodes, nil
}

// ParseTopLevel recognises a form appearing at the top level of a source file.
// Modules, blocks, module-level entries and standalone expressions are
// recognised.  An application is the last candidate, so a form which no
// candidate matches is reported by the error from parsing it as such.
func ParseTopLevel(form *Form) (Node, error) {
	if n, ok, err := attempt(form, ModuleFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, BlockFormFromForm); ok {
		return n, err
	} else if isEntryHead(form) {
		return ParseEntry(form)
	} else if n, ok, err := attempt(form, FunFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, LetFormFromForm); ok {
		return n, err
	} else if n, ok, err := attempt(form, CaseFormFromForm); ok {
		return n, err
	}
	//
	app, err := AppFormFromForm(form)
	if err != nil {
		return nil, err
	}
	//
	return app, nil
}

func isEntryHead(form *Form) bool {
	switch form.Head.String() {
	case IMPORT, EXPORT, ATTRS, TYPE, SIG, VAL:
		return true
	default:
		return false
	}
}
