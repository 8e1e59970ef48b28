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
package lex

import (
	"slices"

	"github.com/consensys/go-forms/pkg/util/source"
)

// Token associates a piece of information with a given range of characters in
// the string being scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule is simply a rule for associating groups of characters with a given
// tag.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer splits a sequence of items into tokens, by repeatedly applying the
// first rule which accepts a non-empty prefix of the remaining items.  Lexing
// stops at the first position where no rule applies.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
	// Tags which are matched, but never reported.
	ignored []uint
	// Set once no rule applies.
	stuck bool
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules, nil, false}
}

// Ignore ensures tokens with any of the given tags (e.g. whitespace) are
// consumed without being reported.
func (p *Lexer[T]) Ignore(tags ...uint) *Lexer[T] {
	p.ignored = append(p.ignored, tags...)
	return p
}

// Index returns the current index within the items array.
func (p *Lexer[T]) Index() uint {
	return uint(min(p.index, len(p.items)))
}

// Remaining determines how many items from the original sequence were left.
func (p *Lexer[T]) Remaining() uint {
	return uint(len(p.items)) - p.Index()
}

// Next returns the next reported token and advances the lexer, or returns false
// if no further tokens can be matched.
func (p *Lexer[T]) Next() (Token, bool) {
	for !p.stuck {
		token, ok := p.match()
		//
		if !ok {
			p.stuck = true
		} else if !slices.Contains(p.ignored, token.Kind) {
			return token, true
		}
	}
	//
	return Token{}, false
}

// Collect is a convenience function which parses all remaining tokens in one
// go, producing an array of tokens.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for token, ok := p.Next(); ok; token, ok = p.Next() {
		tokens = append(tokens, token)
	}
	//
	return tokens
}

// Apply the first matching rule at the current position.  A rule may match at
// the very end of the input (e.g. to signal end-of-file), in which case the
// position moves beyond the end so that it cannot match again.
func (p *Lexer[T]) match() (Token, bool) {
	if p.index > len(p.items) {
		return Token{}, false
	}
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			start := p.index
			end := min(len(p.items), start+int(n))
			//
			if start == len(p.items) {
				p.index++
			} else {
				p.index = end
			}
			//
			return Token{r.tag, source.NewSpan(start, end)}, true
		}
	}
	//
	return Token{}, false
}
