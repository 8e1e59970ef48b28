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
	"testing"

	"github.com/consensys/go-forms/pkg/token"
	"github.com/consensys/go-forms/pkg/util/assert"
	"github.com/consensys/go-forms/pkg/util/source"
)

func Test_SimpleValue_01(t *testing.T) {
	tokens, err := token.Tokenize("_ () panic fun Fun 1 'a' \"s\" x T x.f x.T")
	kinds := []SimpleValueKind{IGNORE, EMPTY, PANIC, VALUE_KEYWORD, TYPE_KEYWORD, PRIM, PRIM, PRIM,
		VALUE_SYMBOL, TYPE_SYMBOL, VALUE_PATH_SYMBOL, TYPE_PATH_SYMBOL}
	//
	assert.NoError(t, err)
	assert.Equal(t, len(kinds), len(tokens))
	//
	for i, tok := range tokens {
		value, err := NewSimpleValue(tok)
		//
		assert.NoError(t, err)
		assert.Equal(t, kinds[i], value.Kind, "token %s", tok.Text)
		assert.Equal(t, tok.Text, value.String())
	}
}

func Test_SimpleValue_02(t *testing.T) {
	tokens, _ := token.Tokenize("(f) # comment")
	//
	for _, i := range []int{0, 2, 3} {
		_, err := NewSimpleValue(tokens[i])
		assert.ErrorContains(t, err, "unexpected token")
	}
}

func Test_SimpleValue_03(t *testing.T) {
	tokens, _ := token.Tokenize("x x.f T panic")
	x, _ := NewSimpleValue(tokens[0])
	xf, _ := NewSimpleValue(tokens[1])
	T, _ := NewSimpleValue(tokens[2])
	p, _ := NewSimpleValue(tokens[3])
	//
	assert.Equal(t, 1, len(x.AllVariables()))
	assert.Equal(t, 1, len(xf.AllVariables()))
	assert.Equal(t, 0, len(T.AllVariables()))
	assert.Equal(t, 0, len(p.AllVariables()))
	assert.True(t, T.IsType())
	assert.True(t, p.IsKeyword())
	assert.True(t, p.IsValue())
}

// ============================================================================
// Generic forms
// ============================================================================

func Test_Form_01(t *testing.T) {
	form := checkForm(t, "(x.f -1 T)")
	//
	assert.Equal(t, "x.f", form.Head.String())
	assert.Equal(t, "-1 T", form.TailString())
	assert.True(t, form.IsMixedForm())
}

func Test_Form_02(t *testing.T) {
	form := checkForm(t, "(x.f a 'b' 0)")
	//
	assert.Equal(t, "a 'b' 0", form.TailString())
	assert.True(t, form.IsValueForm())
}

func Test_Form_03(t *testing.T) {
	form := checkForm(t, "(Fun (Prod T Q) (Fun (Prod moduleA.A T Q) B))")
	//
	assert.Equal(t, "Fun", form.Head.String())
	assert.Equal(t, 2, len(form.Tail))
	assert.Equal(t, "(Prod T Q)", form.Tail[0].String())
	assert.Equal(t, "(Fun (Prod moduleA.A T Q) B)", form.Tail[1].String())
	assert.True(t, form.IsTypesForm())
}

func Test_Form_04(t *testing.T) {
	form := checkForm(t, "(Sum A B c.C Char)")
	//
	assert.Equal(t, "A B c.C Char", form.TailString())
	assert.True(t, form.IsTypesForm())
}

func Test_Form_05(t *testing.T) {
	form, err := FormFromStr("# leading\n(f # inner\n x) # trailing")
	//
	assert.NoError(t, err)
	assert.Equal(t, "(f x)", form.String())
	assert.Equal(t, 1, len(form.Tail))
	assert.Equal(t, uint(10), form.Loc().Unwrap().Offset)
}

func Test_Form_06(t *testing.T) {
	form := checkForm(t, "(f (g (h a)) b)")
	nested := form.Tail[0].(*Form)
	//
	assert.Equal(t, "g", nested.Head.String())
	assert.Equal(t, "(h a)", nested.Tail[0].String())
	assert.Equal(t, 6, len(nested.Tokens()))
	assert.Equal(t, "f, g, h, a, b", names(form.AllVariables()))
	assert.Equal(t, 0, len(form.AllParameters()))
}

func Test_Form_07(t *testing.T) {
	// Exclusivity of value and type forms
	corpus := []string{
		"(x.f -1 T)", "(x.f a 'b' 0)", "(Fun (Prod T Q) (Fun (Prod moduleA.A T Q) B))", "(Sum A B c.C Char)",
		"(fun a (case a (match T id) (match F (fun bool (printBool bool)))))", "(f (g x) (H y))",
		"(Result T E)", "(math.+ (prod a b))", "(type T (Fun A B))", "(f)", "(F)",
	}
	//
	for _, s := range corpus {
		Walk(checkForm(t, s), func(n Node) bool {
			if f, ok := n.(*Form); ok {
				count := 0
				//
				for _, b := range []bool{f.IsValueForm(), f.IsTypesForm(), f.IsMixedForm()} {
					if b {
						count++
					}
				}
				//
				assert.Equal(t, 1, count, "form %s", f.String())
			}
			//
			return true
		})
	}
}

func Test_Form_Invalid_01(t *testing.T) {
	_, err := FormFromStr("(1 a)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a symbol or a keyword")
	//
	_, err = FormFromStr("((f) a)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a symbol or a keyword")
	//
	_, err = FormFromStr("()")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a form")
	//
	_, err = FormFromStr("x")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a form")
}

func Test_Form_Invalid_02(t *testing.T) {
	_, err := FormFromStr("(f x) (g y)")
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "unexpected token", 6)
}

func Test_Form_Invalid_04(t *testing.T) {
	_, err := FormFromStr("(a b) c")
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "unexpected token", 6)
	//
	_, err = FormFromStr("(a b)\n# trailing\n1")
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "unexpected token", 17)
}

func Test_Form_Invalid_03(t *testing.T) {
	// Tokenizer errors are passed through unchanged
	_, err := FormFromStr("(f x")
	checkErr(t, err, source.SYNTAX_ERROR, "form not closed")
}

func Test_SplitTopLevel_01(t *testing.T) {
	tokens, err := token.Tokenize("# c\n(f x)\n#! doc\n(g (h y))\n")
	runs := SplitTopLevel(tokens)
	//
	assert.NoError(t, err)
	assert.Equal(t, 2, len(runs))
	assert.Equal(t, "(f x)", runs[0].String())
	assert.Equal(t, "(g (h y))", runs[1].String())
}

func Test_SplitTopLevel_02(t *testing.T) {
	tokens, _ := token.Tokenize("(f x) y")
	runs := SplitTopLevel(tokens)
	//
	assert.Equal(t, 2, len(runs))
	//
	_, err := ParseForm(runs[1])
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a form")
}

// ============================================================================
// Helpers
// ============================================================================

func checkForm(t *testing.T, input string) *Form {
	form, err := FormFromStr(input)
	//
	assert.NoError(t, err)
	assert.Equal(t, input, form.String())
	//
	return form
}

// Check a given node renders exactly as the input it was parsed from.
func checkRoundTrip[T Node](t *testing.T, input string, fn func(string) (T, error)) T {
	node, err := fn(input)
	//
	assert.NoError(t, err)
	assert.Equal(t, input, node.String())
	//
	return node
}

func checkErr(t *testing.T, err error, kind source.ErrorKind, msg string) {
	var srcErr *source.Error
	//
	assert.True(t, errors.As(err, &srcErr), "expected error \"%s\"", msg)
	assert.Equal(t, kind, srcErr.Kind())
	assert.Equal(t, msg, srcErr.Message())
}

func checkErrAt(t *testing.T, err error, kind source.ErrorKind, msg string, offset uint) {
	var srcErr *source.Error
	//
	checkErr(t, err, kind, msg)
	errors.As(err, &srcErr)
	assert.Equal(t, offset, srcErr.Loc().Unwrap().Offset)
}

// Render the names of a sequence of values, separated by commas.
func names(values []SimpleValue) string {
	return Join(values, ", ")
}
