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
	"strings"

	"github.com/consensys/go-forms/pkg/token"
	"github.com/consensys/go-forms/pkg/util"
	"github.com/consensys/go-forms/pkg/util/source"
)

// TailElement is an element of a generic form's tail: either a SimpleValue or
// a nested *Form.
type TailElement interface {
	Node
	isTailElement()
}

// Form is an untyped parenthesised expression consisting of a head atom
// (always a keyword or symbol) followed by a tail of atoms and nested forms.
type Form struct {
	base
	Head SimpleValue
	Tail []TailElement
}

// FormFromStr tokenizes and parses a given string as a single generic form.
func FormFromStr(text string) (*Form, error) {
	tokens, err := token.Tokenize(text)
	if err != nil {
		return nil, err
	}
	//
	return ParseForm(tokens)
}

// ParseForm parses a balanced sequence of tokens into a generic form.  Any
// leading or trailing comments are ignored, whilst the remainder must start
// with a form start and end with the matching form end.  Tokens following
// that end are reported as unexpected.
func ParseForm(tokens token.Tokens) (*Form, error) {
	tokens = trimComments(tokens)
	//
	if len(tokens) == 0 {
		return nil, source.NewSyntacticError(util.None[source.Loc](), "expected a form")
	} else if tokens[0].Kind != token.FORM_START {
		return nil, syntacticError(tokens[0], "expected a form")
	} else if end := matchingEnd(tokens, 0); end >= 0 && end+1 < len(tokens) {
		// Trailing comments are trimmed, so some token here is unexpected
		return nil, checkRemainder(tokens[end+1:])
	} else if len(tokens) < 3 {
		return nil, syntacticError(tokens[len(tokens)-1], "expected a symbol or a keyword")
	} else if tokens[len(tokens)-1].Kind != token.FORM_END {
		return nil, syntacticError(tokens[len(tokens)-1], "expected a form end")
	}
	// Parse the head
	head := tokens[1]
	if head.Kind != token.KEYWORD && !head.Kind.IsSymbol() {
		return nil, syntacticError(head, "expected a symbol or a keyword")
	}
	//
	value, err := NewSimpleValue(head)
	if err != nil {
		return nil, err
	}
	//
	form := &Form{base{nil}, value, nil}
	// Parse the tail
	for i := 2; i < len(tokens); i++ {
		tok := tokens[i]
		//
		switch tok.Kind {
		case token.COMMENT, token.DOC_COMMENT:
			continue
		case token.FORM_END:
			if err := checkRemainder(tokens[i+1:]); err != nil {
				return nil, err
			}
			//
			form.tokens = tokens[:i+1]
			//
			return form, nil
		case token.FORM_START:
			end := matchingEnd(tokens, i)
			if end < 0 {
				return nil, syntacticError(tok, "form not closed")
			}
			//
			nested, err := ParseForm(tokens[i : end+1])
			if err != nil {
				return nil, err
			}
			//
			form.Tail = append(form.Tail, nested)
			i = end
		default:
			value, err := NewSimpleValue(tok)
			if err != nil {
				return nil, err
			}
			//
			form.Tail = append(form.Tail, value)
		}
	}
	// Unreachable, since the last token is a form end.
	return nil, syntacticError(tokens[len(tokens)-1], "expected a form end")
}

// SplitTopLevel splits a token stream into its balanced top-level runs, such
// that each run can be passed to ParseForm.  Comments between runs are
// dropped.  Tokens outside of any form (e.g. a stray symbol) form a run of
// their own, which ParseForm then rejects.
func SplitTopLevel(tokens token.Tokens) []token.Tokens {
	var runs []token.Tokens
	//
	for i := 0; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case token.COMMENT, token.DOC_COMMENT:
			continue
		case token.FORM_START:
			end := matchingEnd(tokens, i)
			if end < 0 {
				return append(runs, tokens[i:])
			}
			//
			runs = append(runs, tokens[i:end+1])
			i = end
		default:
			runs = append(runs, tokens[i:i+1])
		}
	}
	//
	return runs
}

// IsValueForm checks whether this form lives entirely at the value level.  That
// is, its head is a value symbol and no atom of its tail (recursively) is at
// the type level.
func (p *Form) IsValueForm() bool {
	if !p.Head.IsValueSymbol() {
		return false
	}
	//
	for _, e := range p.Tail {
		switch e := e.(type) {
		case SimpleValue:
			if e.IsType() {
				return false
			}
		case *Form:
			if !e.IsValueForm() {
				return false
			}
		}
	}
	//
	return true
}

// IsTypesForm checks whether this form lives entirely at the type level.  That
// is, its head is a type keyword or type symbol and every element of its tail
// (recursively) is at the type level.
func (p *Form) IsTypesForm() bool {
	if !p.Head.IsType() {
		return false
	}
	//
	for _, e := range p.Tail {
		switch e := e.(type) {
		case SimpleValue:
			if !e.IsType() {
				return false
			}
		case *Form:
			if !e.IsTypesForm() {
				return false
			}
		}
	}
	//
	return true
}

// IsMixedForm checks whether this form is neither a value form nor a types
// form.
func (p *Form) IsMixedForm() bool {
	return !p.IsValueForm() && !p.IsTypesForm()
}

// TailString renders the tail of this form.
func (p *Form) TailString() string {
	return Join(p.Tail, " ")
}

func (p *Form) String() string {
	if len(p.Tail) == 0 {
		return fmt.Sprintf("(%s)", p.Head.String())
	}
	//
	return fmt.Sprintf("(%s %s)", p.Head.String(), p.TailString())
}

// AllParameters is always empty for a generic form, since binding positions
// are only known once a form has been typed.
func (p *Form) AllParameters() []SimpleValue {
	return nil
}

// AllVariables returns every value symbol within this form.
func (p *Form) AllVariables() []SimpleValue {
	return append(p.Head.AllVariables(), allVariables(p.Tail...)...)
}

// Children returns the head followed by the tail.
func (p *Form) Children() []Node {
	return append([]Node{p.Head}, toNodes(p.Tail)...)
}

func (p *Form) isTailElement() {}

// Determine the index of the form end matching a form start at a given index,
// or -1 if there is none.
func matchingEnd(tokens token.Tokens, start int) int {
	depth := 0
	//
	for i := start; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case token.FORM_START:
			depth++
		case token.FORM_END:
			depth--
			//
			if depth == 0 {
				return i
			}
		}
	}
	//
	return -1
}

func checkRemainder(tokens token.Tokens) error {
	for _, t := range tokens {
		if !t.Kind.IsComment() {
			return syntacticError(t, "unexpected token")
		}
	}
	//
	return nil
}

func trimComments(tokens token.Tokens) token.Tokens {
	start, end := 0, len(tokens)
	//
	for start < end && tokens[start].Kind.IsComment() {
		start++
	}
	//
	for end > start && tokens[end-1].Kind.IsComment() {
		end--
	}
	//
	return tokens[start:end]
}

func syntacticError(tok token.Token, msg string) error {
	return source.NewSyntacticError(util.Some(tok.Loc), msg)
}

// Render a sequence of strings separated by spaces, skipping empty ones.
func spaced(items ...string) string {
	var parts []string
	//
	for _, s := range items {
		if s != "" {
			parts = append(parts, s)
		}
	}
	//
	return strings.Join(parts, " ")
}
