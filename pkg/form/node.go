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
	"errors"
	"fmt"
	"strings"

	"github.com/consensys/go-forms/pkg/token"
	"github.com/consensys/go-forms/pkg/util"
	"github.com/consensys/go-forms/pkg/util/source"
)

// Node is implemented by every element of a parsed tree: simple values,
// generic forms and typed forms.  The set of implementations is closed.
type Node interface {
	fmt.Stringer
	// Tokens from which this node was parsed.
	Tokens() token.Tokens
	// Loc returns the location of the first token of this node (if any).
	Loc() util.Option[source.Loc]
	// AllParameters returns every symbol occupying a binding position in this
	// node, including those of nested binders, in declaration order.
	AllParameters() []SimpleValue
	// AllVariables returns every variable reference occurring in this node, in
	// order of occurrence.
	AllVariables() []SimpleValue
	// Children returns the immediate subnodes of this node.
	Children() []Node
	//
	isNode()
}

// Binder is a node which introduces parameters whose use is subject to the
// linearity discipline.
type Binder interface {
	Node
	isBinder()
}

// base captures functionality common to all typed forms.
type base struct {
	tokens token.Tokens
}

func (p *base) Tokens() token.Tokens {
	return p.tokens
}

func (p *base) Loc() util.Option[source.Loc] {
	return p.tokens.Loc()
}

// File returns the name of the file this form was parsed from, or the empty
// string.
func (p *base) File() string {
	return p.tokens.File()
}

func (p *base) isNode() {}

// Walk visits a node and then (recursively) its children in order.  Visiting
// stops descending below any node for which fn returns false.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	//
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}

// BoundVariables returns those variables of a node whose names match some
// parameter of that node, in order of occurrence.
func BoundVariables(n Node) []SimpleValue {
	return filterVariables(n, true)
}

// UnboundVariables returns those variables of a node whose names match no
// parameter of that node, in order of occurrence.
func UnboundVariables(n Node) []SimpleValue {
	return filterVariables(n, false)
}

func filterVariables(n Node, bound bool) []SimpleValue {
	var (
		names = make(map[string]bool)
		vars  []SimpleValue
	)
	//
	for _, p := range n.AllParameters() {
		names[p.String()] = true
	}
	//
	for _, v := range n.AllVariables() {
		if names[v.String()] == bound {
			vars = append(vars, v)
		}
	}
	//
	return vars
}

// Join renders a sequence of nodes separated by a given string.
func Join[T fmt.Stringer](items []T, sep string) string {
	var builder strings.Builder
	//
	for i, item := range items {
		if i != 0 {
			builder.WriteString(sep)
		}
		//
		builder.WriteString(item.String())
	}
	//
	return builder.String()
}

func allParameters[T Node](nodes ...T) []SimpleValue {
	var params []SimpleValue
	//
	for _, n := range nodes {
		params = append(params, n.AllParameters()...)
	}
	//
	return params
}

func allVariables[T Node](nodes ...T) []SimpleValue {
	var vars []SimpleValue
	//
	for _, n := range nodes {
		vars = append(vars, n.AllVariables()...)
	}
	//
	return vars
}

func toNodes[T Node](items []T) []Node {
	nodes := make([]Node, len(items))
	//
	for i, item := range items {
		nodes[i] = item
	}
	//
	return nodes
}

// Construct a syntactic error located at a given node.
func errorAt(n Node, msg string) error {
	return source.NewSyntacticError(n.Loc(), msg)
}

// mismatch is returned by a production which rejects a form outright (e.g. on
// its head keyword), as opposed to failing part way through a parse it has
// committed to.  It wraps the underlying *source.Error.
type mismatch struct {
	error
	// Form which was rejected
	form *Form
}

func (p mismatch) Unwrap() error {
	return p.error
}

// Check whether an error signals the outright rejection of a given form.  A
// rejection of some nested form does not count, since it arose within a
// committed parse.
func isMismatch(err error, form *Form) bool {
	var m mismatch
	return errors.As(err, &m) && m.form == form
}

// Check whether the head of a form matches a given keyword.  This is the O(1)
// rejection applied by every keyword-led production.
func expectHead(form *Form, keyword string) error {
	if form.Head.String() != keyword {
		return mismatch{errorAt(form.Head, fmt.Sprintf("expected a %s keyword", keyword)), form}
	}
	//
	return nil
}

// Attempt a candidate production for a given form.  This reports whether the
// candidate claimed the form, in which case its result (or error) is final.  A
// candidate claims a form unless it rejected it outright.
func attempt[T Node](form *Form, fn func(*Form) (T, error)) (Node, bool, error) {
	n, err := fn(form)
	//
	if err == nil {
		return n, true, nil
	} else if isMismatch(err, form) {
		return nil, false, nil
	}
	//
	return nil, true, err
}

// fromStr tokenises and parses a string before handing the generic form to a
// given production.
func fromStr[T any](text string, fn func(*Form) (T, error)) (T, error) {
	var empty T
	//
	tokens, err := token.Tokenize(text)
	if err != nil {
		return empty, err
	}
	//
	return fromTokens(tokens, fn)
}

func fromTokens[T any](tokens token.Tokens, fn func(*Form) (T, error)) (T, error) {
	var empty T
	//
	form, err := ParseForm(tokens)
	if err != nil {
		return empty, err
	}
	//
	return fn(form)
}
