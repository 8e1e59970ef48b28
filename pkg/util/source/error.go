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
package source

import (
	"fmt"

	"github.com/consensys/go-forms/pkg/util"
)

// ErrorKind identifies the stage of the front end at which an error arose.
type ErrorKind uint

// SYNTAX_ERROR is a lexical error (e.g. malformed literal, unbalanced brackets)
// reported by the tokenizer.
const SYNTAX_ERROR ErrorKind = 0

// SYNTACTIC_ERROR is a structural error (e.g. wrong keyword, wrong arity)
// reported when parsing forms.
const SYNTACTIC_ERROR ErrorKind = 1

// SEMANTIC_ERROR is reported when a well-formed construct violates the rules
// of parameter use.
const SEMANTIC_ERROR ErrorKind = 2

func (k ErrorKind) String() string {
	switch k {
	case SYNTAX_ERROR:
		return "syntax"
	case SYNTACTIC_ERROR:
		return "syntactic"
	case SEMANTIC_ERROR:
		return "semantic"
	default:
		return "unknown"
	}
}

// Error is a structured error which records the stage at which it arose, the
// (optional) location in the source text and a message.
type Error struct {
	kind ErrorKind
	loc  util.Option[Loc]
	msg  string
}

// NewSyntaxError constructs a new lexical error.
func NewSyntaxError(loc util.Option[Loc], msg string) *Error {
	return &Error{SYNTAX_ERROR, loc, msg}
}

// NewSyntacticError constructs a new structural error.
func NewSyntacticError(loc util.Option[Loc], msg string) *Error {
	return &Error{SYNTACTIC_ERROR, loc, msg}
}

// NewSemanticError constructs a new semantic error.
func NewSemanticError(loc util.Option[Loc], msg string) *Error {
	return &Error{SEMANTIC_ERROR, loc, msg}
}

// Kind returns the kind of this error.
func (p *Error) Kind() ErrorKind {
	return p.kind
}

// Loc returns the location of this error, if known.
func (p *Error) Loc() util.Option[Loc] {
	return p.loc
}

// Message returns the message to be reported.
func (p *Error) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *Error) Error() string {
	if p.loc.HasValue() {
		return fmt.Sprintf("%s error at %s: %s", p.kind, p.loc.Unwrap(), p.msg)
	}
	//
	return fmt.Sprintf("%s error: %s", p.kind, p.msg)
}
