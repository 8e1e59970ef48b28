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
package linear

import (
	"errors"
	"fmt"
	"testing"

	"github.com/consensys/go-forms/pkg/form"
	"github.com/consensys/go-forms/pkg/token"
	"github.com/consensys/go-forms/pkg/util/assert"
	"github.com/consensys/go-forms/pkg/util/source"
)

// ============================================================================
// Functions
// ============================================================================

func Test_Linear_Fun_01(t *testing.T) {
	checkFunOk(t, "(fun (prod a b c d) (+ (prod a b c d 1)))")
}

func Test_Linear_Fun_02(t *testing.T) {
	checkFunOk(t, "(fun a b c d (+ (prod a b c d 1)))")
}

func Test_Linear_Fun_03(t *testing.T) {
	// A single ignored parameter is permitted
	checkFunOk(t, "(fun a ())")
	checkFunOk(t, "(fun () x)")
	checkFunOk(t, "(fun () ())")
}

func Test_Linear_Fun_04(t *testing.T) {
	checkFunOk(t, "(fun a b c d (fun e (math.+ (prod a b 10 (math.* (prod c d e))))))")
	checkFunOk(t, "(fun a (pair b c) (math.+ (prod a b c)))")
	checkFunOk(t, "(fun (map (pair a b) (pair c d)) (math.+ (prod a b c d)))")
}

func Test_Linear_Fun_05(t *testing.T) {
	// Unbound variables are not subject to the discipline
	checkFunOk(t, "(fun a (f (prod g a g)))")
}

func Test_Linear_Fun_Invalid_01(t *testing.T) {
	checkFunErr(t, "(fun (prod a b d c) (+ (prod a b c d 1)))", fmt.Sprintf(NON_ORDERED_PARAMETERS, "d"), 33)
	checkFunErr(t, "(fun a b (f (prod b a)))", fmt.Sprintf(NON_ORDERED_PARAMETERS, "a"), 18)
}

func Test_Linear_Fun_Invalid_02(t *testing.T) {
	checkFunErr(t, "(fun (prod a b c d e) (+ (prod a b c d 1)))", UNUSED_PARAMETERS, 0)
	checkFunErr(t, "(fun a b ())", UNUSED_PARAMETERS, 0)
}

func Test_Linear_Fun_Invalid_03(t *testing.T) {
	checkFunErr(t, "(fun a (f (prod a a)))", REUSED_PARAMETERS, 0)
	checkFunErr(t, "(fun () (fun a (f (prod a a))))", REUSED_PARAMETERS, 0)
}

// ============================================================================
// Case forms
// ============================================================================

func Test_Linear_Case_01(t *testing.T) {
	checkCaseOk(t, "(case t (match True (fun t \"True\")) (match False (fun f \"False\")))")
	checkCaseOk(t, "(case res (match T id) (match E panic))")
	checkCaseOk(t, "(case x (match T (fun a b (f (prod a b)))) (match E (fun e (g e))))")
}

func Test_Linear_Case_Invalid_01(t *testing.T) {
	checkCaseErr(t, "(case x (match T (fun a b (f (prod b a)))) (match E id))", fmt.Sprintf(NON_ORDERED_PARAMETERS, "a"), 35)
	checkCaseErr(t, "(case x (match T id) (match E (fun a b (g a))))", UNUSED_PARAMETERS, 30)
	checkCaseErr(t, "(case (let (val f (fun a (h (prod a a)))) (f x)) (match T id))", REUSED_PARAMETERS, 18)
}

// ============================================================================
// Nested binders
// ============================================================================

func Test_Linear_Node_01(t *testing.T) {
	checkNodeOk(t, "(val x (fun a (case a (match T id) (match F (fun bool (printBool bool))))))")
	checkNodeOk(t, "(val x (fun a (case a (match T id) (match F (fun bool (let (val f (fun () (printBool bool))) (f ())))))))")
}

func Test_Linear_Node_02(t *testing.T) {
	checkNodeErr(t, "(val x (fun a b (case a (match T id) (match F (fun bool (let (val f (fun () (printBool bool))) (f ())))))))",
		UNUSED_PARAMETERS, 7)
}

func Test_Linear_Node_03(t *testing.T) {
	// The outer function sees the parameters of the inner one
	checkNodeErr(t, "(module m () (block (val x (fun a (f (prod a (fun b c (g (prod c b)))))))))",
		fmt.Sprintf(NON_ORDERED_PARAMETERS, "b"), 63)
}

func Test_Linear_Node_04(t *testing.T) {
	// The outer function passes, but the inner one does not
	input := "(fun a b (f (prod (fun b a (g (prod a b))) b a)))"
	//
	checkFunErr(t, input, fmt.Sprintf(NON_ORDERED_PARAMETERS, "b"), 36)
	checkNodeErr(t, input, fmt.Sprintf(NON_ORDERED_PARAMETERS, "b"), 36)
}

func Test_Linear_Node_05(t *testing.T) {
	// The inner function leaves a parameter unused
	input := "(fun a (f (prod a (fun b c (g b)) c)))"
	//
	checkFunErr(t, input, UNUSED_PARAMETERS, 18)
	checkNodeErr(t, input, UNUSED_PARAMETERS, 18)
}

func Test_Linear_Node_06(t *testing.T) {
	// Arguments given without a product are rejected before any check
	tokens, err := token.Tokenize("(f (fun a b (g (prod b a))) x)")
	assert.NoError(t, err)
	//
	_, err = form.ParseAll(tokens)
	assert.ErrorContains(t, err, "expected a single argument or a product of arguments")
	// Whereas a single function argument is checked
	checkNodeErr(t, "(f (fun a b (g (prod b a))))", fmt.Sprintf(NON_ORDERED_PARAMETERS, "a"), 21)
}

func Test_Linear_All_01(t *testing.T) {
	tokens, err := token.Tokenize("(val x (fun a b (f a)))\n(val y (fun a a))\n(val z (fun a b (f (prod b a))))")
	assert.NoError(t, err)
	//
	nodes, err := form.ParseAll(tokens)
	assert.NoError(t, err)
	//
	errs := CheckAll(nodes)
	assert.Equal(t, 2, len(errs))
	assert.ErrorContains(t, errs[0], UNUSED_PARAMETERS)
	assert.ErrorContains(t, errs[1], "expected variable a")
}

// ============================================================================
// Helpers
// ============================================================================

func checkFunOk(t *testing.T, input string) {
	fun, err := form.FunFormFromStr(input)
	assert.NoError(t, err)
	assert.NoError(t, CheckParameterUse(fun))
}

func checkFunErr(t *testing.T, input string, msg string, offset uint) {
	fun, err := form.FunFormFromStr(input)
	assert.NoError(t, err)
	checkErr(t, CheckParameterUse(fun), msg, offset)
}

func checkCaseOk(t *testing.T, input string) {
	c, err := form.CaseFormFromStr(input)
	assert.NoError(t, err)
	assert.NoError(t, CheckParameterUse(c))
}

func checkCaseErr(t *testing.T, input string, msg string, offset uint) {
	c, err := form.CaseFormFromStr(input)
	assert.NoError(t, err)
	checkErr(t, CheckParameterUse(c), msg, offset)
}

func checkNodeOk(t *testing.T, input string) {
	assert.NoError(t, CheckNode(parseTopLevel(t, input)))
}

func checkNodeErr(t *testing.T, input string, msg string, offset uint) {
	checkErr(t, CheckNode(parseTopLevel(t, input)), msg, offset)
}

func parseTopLevel(t *testing.T, input string) form.Node {
	generic, err := form.FormFromStr(input)
	assert.NoError(t, err)
	//
	node, err := form.ParseTopLevel(generic)
	assert.NoError(t, err)
	//
	return node
}

func checkErr(t *testing.T, err error, msg string, offset uint) {
	var srcErr *source.Error
	//
	assert.True(t, errors.As(err, &srcErr), "expected error \"%s\"", msg)
	assert.Equal(t, source.SEMANTIC_ERROR, srcErr.Kind())
	assert.Equal(t, msg, srcErr.Message())
	assert.Equal(t, offset, srcErr.Loc().Unwrap().Offset)
}
