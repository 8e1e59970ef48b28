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
package token

import (
	"unicode"

	"github.com/consensys/go-forms/pkg/syntax"
	"github.com/consensys/go-forms/pkg/util"
	"github.com/consensys/go-forms/pkg/util/source"
	"github.com/consensys/go-forms/pkg/util/source/lex"
)

// Lexer tags which never become tokens.  These follow on from the token kinds,
// which are used directly as tags for the remaining rules.
const (
	lexEndOf      uint = 100
	lexWhitespace uint = 101
	lexSymbolic   uint = 102
)

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Satisfies(unicode.IsSpace))

// Comments continue through the next newline (or until EOF).
var (
	docComment = lex.SequenceNullableLast(lex.Unit(syntax.COMMENT_MARK, syntax.COMMENT_MARK_POSTFIX),
		lex.Through('\n'))
	comment = lex.SequenceNullableLast(lex.Unit(syntax.COMMENT_MARK), lex.Through('\n'))
)

// Char and string literals, where an escape followed by the delimiting quote
// (or another escape) counts as one character.
var (
	charEscape = lex.Sequence(lex.Unit(syntax.ESCAPE_CHAR),
		lex.Or(lex.Unit(syntax.SINGLE_QUOTE), lex.Unit(syntax.ESCAPE_CHAR)))
	charLiteral = lex.Sequence(lex.Unit(syntax.SINGLE_QUOTE), lex.Or(charEscape, lex.Any[rune]()),
		lex.Unit(syntax.SINGLE_QUOTE))
	stringEscape = lex.Sequence(lex.Unit(syntax.ESCAPE_CHAR),
		lex.Or(lex.Unit(syntax.DOUBLE_QUOTE), lex.Unit(syntax.ESCAPE_CHAR)))
	stringLiteral = lex.Or(
		lex.Unit(syntax.DOUBLE_QUOTE, syntax.DOUBLE_QUOTE),
		lex.Sequence(lex.Unit(syntax.DOUBLE_QUOTE), lex.Many(lex.Or(stringEscape, lex.Not(syntax.DOUBLE_QUOTE))),
			lex.Unit(syntax.DOUBLE_QUOTE)))
)

// Keywords, symbols and numeric literals are all maximal runs of symbol
// characters, which are classified afterwards.
var symbolRun lex.Scanner[rune] = lex.Many(lex.Satisfies(syntax.IsSymbolChar))

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(docComment, uint(DOC_COMMENT)),
	lex.Rule(comment, uint(COMMENT)),
	lex.Rule(lex.String(syntax.EMPTY_LITERAL), uint(EMPTY_LITERAL)),
	lex.Rule(lex.Unit(syntax.FORM_START), uint(FORM_START)),
	lex.Rule(lex.Unit(syntax.FORM_END), uint(FORM_END)),
	lex.Rule(charLiteral, uint(CHAR_LITERAL)),
	lex.Rule(stringLiteral, uint(STRING_LITERAL)),
	lex.Rule(whitespace, lexWhitespace),
	lex.Rule(symbolRun, lexSymbolic),
	lex.Rule(lex.Eof[rune](), lexEndOf),
}

// Tokenize a given string into a sequence of tokens, or produce a syntax error.
func Tokenize(text string) (Tokens, error) {
	return TokenizeChunks(source.NewChunks(text))
}

// TokenizeFile tokenizes the contents of a given source file.  Every token
// records the name of the file.
func TokenizeFile(file *source.File) (Tokens, error) {
	return TokenizeChunks(file.Chunks())
}

// TokenizeChunks tokenizes a given sequence of located characters.  This fails
// on the first malformed literal, unrecognised run of characters or unbalanced
// bracket encountered (scanning left-to-right).
func TokenizeChunks(chunks []source.Chunk) (Tokens, error) {
	var (
		items = make([]rune, len(chunks))
		// Tokens produced so far
		tokens Tokens
		// Indices of form starts not yet closed
		opened []int
	)
	//
	for i, c := range chunks {
		items[i] = c.Content
	}
	//
	lexer := lex.NewLexer(items, rules...).Ignore(lexEndOf, lexWhitespace)
	//
	for _, t := range lexer.Collect() {
		fragment := source.NewStringChunk(chunks[t.Span.Start():t.Span.End()]...)
		kind := Kind(t.Kind)
		//
		switch t.Kind {
		case lexSymbolic:
			var ok bool
			//
			if kind, ok = classify(fragment.Content); !ok {
				return nil, syntaxError(fragment.Loc, "unrecognized syntax")
			}
		case uint(FORM_START):
			opened = append(opened, len(tokens))
		case uint(FORM_END):
			if len(opened) == 0 {
				return nil, syntaxError(fragment.Loc, "closing a form never opened")
			}
			//
			opened = opened[:len(opened)-1]
		}
		//
		tokens = append(tokens, Token{kind, fragment.Content, fragment.Loc})
	}
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		chunk := chunks[lexer.Index()]
		//
		switch chunk.Content {
		case syntax.SINGLE_QUOTE:
			return nil, syntaxError(chunk.Loc, "expected a char")
		case syntax.DOUBLE_QUOTE:
			return nil, syntaxError(chunk.Loc, "expected a string")
		default:
			return nil, syntaxError(chunk.Loc, "unrecognized syntax")
		}
	}
	// Report the outermost form left open
	if len(opened) != 0 {
		return nil, syntaxError(tokens[opened[0]].Loc, "form not closed")
	}
	//
	return tokens, nil
}

// Classify a run of symbol characters.  Observe that the order matters here,
// since (for example) "b1" is both a valid uint and a valid symbol.
func classify(text string) (Kind, bool) {
	switch {
	case syntax.IsKeyword(text):
		return KEYWORD, true
	case syntax.IsUInt(text):
		return UINT_LITERAL, true
	case syntax.IsInt(text):
		return INT_LITERAL, true
	case syntax.IsFloat(text):
		return FLOAT_LITERAL, true
	case syntax.IsPathSymbol(text):
		return PATH_SYMBOL, true
	case syntax.IsValueSymbol(text):
		return VALUE_SYMBOL, true
	case syntax.IsTypeSymbol(text):
		return TYPE_SYMBOL, true
	default:
		return 0, false
	}
}

func syntaxError(loc source.Loc, msg string) error {
	return source.NewSyntaxError(util.Some(loc), msg)
}
