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
package cmd

import (
	"fmt"
	"strings"

	"github.com/consensys/go-forms/pkg/form"
	"github.com/consensys/go-forms/pkg/linear"
	"github.com/consensys/go-forms/pkg/token"
	"github.com/consensys/go-forms/pkg/util"
	"github.com/consensys/go-forms/pkg/util/source"
)

// Tokenize a given source file, reporting the cost when debugging.
func tokenizeFile(file *source.File) (token.Tokens, error) {
	stats := util.NewPerfStats()
	tokens, err := token.TokenizeFile(file)
	//
	stats.Log(fmt.Sprintf("tokenizing %s", file.Filename()), len(tokens))
	//
	return tokens, err
}

// Tokenize and then parse a given source file, reporting the cost of parsing
// when debugging.
func parseFile(file *source.File) ([]form.Node, error) {
	tokens, err := tokenizeFile(file)
	if err != nil {
		return nil, err
	}
	//
	stats := util.NewPerfStats()
	nodes, err := form.ParseAll(tokens)
	//
	stats.Log(fmt.Sprintf("parsing %s", file.Filename()), len(nodes))
	//
	return nodes, err
}

// Check the use of parameters in a given set of nodes, reporting the cost when
// debugging.
func checkNodes(filename string, nodes []form.Node) []error {
	stats := util.NewPerfStats()
	errs := linear.CheckAll(nodes)
	//
	stats.Log(fmt.Sprintf("checking %s", filename), len(errs))
	//
	return errs
}

// Outline is a structured summary of a parsed node, suitable for serialising.
type Outline struct {
	Kind     string    `yaml:"kind"`
	Loc      string    `yaml:"loc,omitempty"`
	Text     string    `yaml:"text,omitempty"`
	Params   []string  `yaml:"params,omitempty"`
	Children []Outline `yaml:"children,omitempty"`
}

// NewOutline constructs the outline of a given node.  Simple values are
// summarised by their text, whilst the parameters of top-level binders and
// entries are listed.
func NewOutline(n form.Node) Outline {
	outline := newOutline(n)
	outline.Params = names(n.AllParameters())
	//
	return outline
}

func newOutline(n form.Node) Outline {
	outline := Outline{Kind: nodeKind(n)}
	//
	if loc := n.Loc(); loc.HasValue() {
		outline.Loc = loc.Unwrap().String()
	}
	//
	if _, ok := n.(form.SimpleValue); ok {
		outline.Text = n.String()
	}
	//
	for _, child := range n.Children() {
		outline.Children = append(outline.Children, newOutline(child))
	}
	//
	return outline
}

// Determine a short name for the kind of a given node, such as "fun" for a
// function form.
func nodeKind(n form.Node) string {
	name := fmt.Sprintf("%T", n)
	name = strings.TrimPrefix(strings.TrimPrefix(name, "*"), "form.")
	//
	switch name {
	case "SimpleValue":
		return "value"
	case "CaseMatch":
		return "match"
	default:
		return strings.ToLower(strings.TrimSuffix(name, "Form"))
	}
}

func names(values []form.SimpleValue) []string {
	var result []string
	//
	for _, v := range values {
		result = append(result, v.String())
	}
	//
	return result
}
