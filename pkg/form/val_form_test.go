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
	"testing"

	"github.com/consensys/go-forms/pkg/util/assert"
	"github.com/consensys/go-forms/pkg/util/source"
)

// ============================================================================
// Types
// ============================================================================

func Test_Types_01(t *testing.T) {
	types := checkRoundTrip(t, "(Fun Empty Empty)", TypesFormFromStr)
	//
	assert.Equal(t, "Empty Empty", types.ParamsString())
	assert.Equal(t, 0, len(types.AllVariables()))
}

func Test_Types_02(t *testing.T) {
	types := checkRoundTrip(t, "(Fun (Prod moduleX.X Char) (Prod A B C))", TypesFormFromStr)
	//
	_, ok := types.Params[1].(*TypesForm)
	assert.True(t, ok)
}

func Test_Types_Invalid_01(t *testing.T) {
	_, err := TypesFormFromStr("(Fun a B)")
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "unexpected type value", 5)
	//
	_, err = TypesFormFromStr("(Fun (f B) B)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a form of types")
	//
	_, err = TypesFormFromStr("(f B)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a type keyword, a type symbol or a type path symbol")
}

func Test_Type_01(t *testing.T) {
	assert.True(t, checkRoundTrip(t, "(type T Empty)", TypeFormFromStr).IsTypeKeyword())
	assert.True(t, checkRoundTrip(t, "(type T Char)", TypeFormFromStr).IsTypeKeyword())
	assert.True(t, checkRoundTrip(t, "(type T X)", TypeFormFromStr).IsTypeSymbol())
	assert.True(t, checkRoundTrip(t, "(type T moduleX.X)", TypeFormFromStr).IsTypeSymbol())
	assert.True(t, checkRoundTrip(t, "(type T (Fun (Prod moduleX.X Char) (Prod A B C)))", TypeFormFromStr).IsTypesForm())
}

func Test_Sig_01(t *testing.T) {
	assert.True(t, checkRoundTrip(t, "(sig t Empty)", SigFormFromStr).IsTypeKeyword())
	assert.True(t, checkRoundTrip(t, "(sig t X)", SigFormFromStr).IsTypeSymbol())
	//
	sig := checkRoundTrip(t, "(sig t (Fun (Prod moduleX.X Char) (Prod A B C)))", SigFormFromStr)
	assert.True(t, sig.IsTypesForm())
	assert.Equal(t, "t", sig.Name.String())
	assert.Equal(t, 0, len(sig.AllParameters()))
}

func Test_Type_Invalid_01(t *testing.T) {
	_, err := TypeFormFromStr("(type t Empty)")
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "expected an unqualified type symbol", 6)
	//
	_, err = SigFormFromStr("(sig T Empty)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected an unqualified value symbol")
	//
	_, err = TypeFormFromStr("(type T x)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a type keyword or a type symbol")
	//
	_, err = TypeFormFromStr("(type T)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a name and a type keyword or a type symbol or a types form")
	//
	_, err = SigFormFromStr("(type t X)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a sig keyword")
}

// ============================================================================
// Values
// ============================================================================

func Test_Val_01(t *testing.T) {
	assert.True(t, checkRoundTrip(t, "(val empty ())", ValFormFromStr).IsValue())
	assert.True(t, checkRoundTrip(t, "(val x 10)", ValFormFromStr).IsValue())
	assert.True(t, checkRoundTrip(t, "(val w x)", ValFormFromStr).IsValue())
	assert.False(t, checkRoundTrip(t, "(val T 'c')", ValFormFromStr).IsValue())
}

func Test_Val_02(t *testing.T) {
	assert.True(t, checkRoundTrip(t, "(val x (f y))", ValFormFromStr).IsAppForm())
	assert.True(t, checkRoundTrip(t, "(val x (let (f y)))", ValFormFromStr).IsLetForm())
	assert.True(t, checkRoundTrip(t, "(val x (case y (match T id)))", ValFormFromStr).IsCaseForm())
	assert.True(t, checkRoundTrip(t, "(val x (prod y 1))", ValFormFromStr).IsProdForm())
	assert.True(t, checkRoundTrip(t, "(val x (fun y y))", ValFormFromStr).IsFunForm())
}

func Test_Val_03(t *testing.T) {
	val := checkRoundTrip(t, "(val x (fun a (case a (match T id) (match F (fun bool (printBool bool))))))", ValFormFromStr)
	//
	assert.True(t, val.IsFunForm())
	assert.Equal(t, "a, bool", names(val.AllParameters()))
	assert.Equal(t, "a, printBool, bool", names(val.AllVariables()))
	assert.Equal(t, "a, bool", names(BoundVariables(val)))
	assert.Equal(t, "printBool", names(UnboundVariables(val)))
}

func Test_Val_04(t *testing.T) {
	val := checkRoundTrip(t,
		"(val x (fun a (case a (match T id) (match F (fun bool (let (val f (fun () (printBool bool))) (f ())))))))",
		ValFormFromStr)
	//
	assert.Equal(t, "a, bool, f", names(val.AllParameters()))
	assert.Equal(t, "a, printBool, bool, f", names(val.AllVariables()))
	assert.Equal(t, "a, bool, f", names(BoundVariables(val)))
}

func Test_Val_05(t *testing.T) {
	val := checkRoundTrip(t,
		"(val x (fun a b (case a (match T id) (match F (fun bool (let (val f (fun () (printBool bool))) (f ())))))))",
		ValFormFromStr)
	//
	assert.Equal(t, "a, b, bool, f", names(val.AllParameters()))
	assert.Equal(t, "a, printBool, bool, f", names(val.AllVariables()))
	assert.Equal(t, "a, bool, f", names(BoundVariables(val)))
}

func Test_Val_Invalid_01(t *testing.T) {
	_, err := ValFormFromStr("(val x)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a name and a value")
	//
	_, err = ValFormFromStr("(val 1 x)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected an unqualified symbol")
	//
	_, err = ValFormFromStr("(val x.y x)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected an unqualified symbol")
	//
	_, err = ValFormFromStr("(val x Int)")
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "unexpected value", 7)
	//
	_, err = ValFormFromStr("(val x (Fun A B))")
	checkErr(t, err, source.SYNTACTIC_ERROR, "unexpected form")
}

// ============================================================================
// Imports and exports
// ============================================================================

func Test_Import_01(t *testing.T) {
	imp := checkRoundTrip(t, "(import std.x)", ImportFormFromStr)
	//
	assert.Equal(t, "std.x", imp.Module.String())
	assert.Equal(t, 0, len(imp.Defs))
	assert.Equal(t, 0, len(imp.Names()))
}

func Test_Import_02(t *testing.T) {
	assert.Equal(t, "X", names(checkRoundTrip(t, "(import std.x X)", ImportFormFromStr).Names()))
	assert.Equal(t, "a, B, c, D", names(checkRoundTrip(t, "(import std.x (prod a B c D))", ImportFormFromStr).Names()))
	assert.Equal(t, "println", names(checkRoundTrip(t, "(import std.io _ println)", ImportFormFromStr).Names()))
	assert.Equal(t, "Result", names(checkRoundTrip(t, "(import res () Result)", ImportFormFromStr).Names()))
}

func Test_Import_03(t *testing.T) {
	imp := checkRoundTrip(t, "(import x (prod String StringErr) (prod Result unwrap))", ImportFormFromStr)
	//
	assert.Equal(t, 2, len(imp.Defs))
	assert.Equal(t, "String, StringErr, Result, unwrap", names(imp.Names()))
}

func Test_Import_Invalid_01(t *testing.T) {
	_, err := ImportFormFromStr("(import)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected at least a module name")
	//
	_, err = ImportFormFromStr("(import std.x a b c)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected at most a module, a product of types and a product of values")
	//
	_, err = ImportFormFromStr("(import X)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a module path")
	//
	_, err = ImportFormFromStr("(import std.x (prod a 1))")
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "expected a product of symbols", 22)
	//
	_, err = ImportFormFromStr("(import std.x 1)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a symbol or a product of symbols")
}

func Test_Export_01(t *testing.T) {
	assert.Equal(t, "A", names(checkRoundTrip(t, "(export A)", ExportFormFromStr).Names()))
	assert.Equal(t, "b, C, d, E", names(checkRoundTrip(t, "(export (prod b C d E))", ExportFormFromStr).Names()))
	assert.Equal(t, 0, len(checkRoundTrip(t, "(export ())", ExportFormFromStr).Names()))
}

func Test_Export_Invalid_01(t *testing.T) {
	_, err := ExportFormFromStr("(export _)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a symbol or a product of symbols")
	//
	_, err = ExportFormFromStr("(export a b)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a symbol or a product of symbols")
	//
	_, err = ExportFormFromStr("(export (f a))")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a prod keyword")
}
