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
	"sync"
	"testing"

	"github.com/consensys/go-forms/pkg/token"
	"github.com/consensys/go-forms/pkg/util/assert"
	"github.com/consensys/go-forms/pkg/util/source"
)

const resultBlock = `(block
    (import res () Result)
    (attrs Result union)
    (type Result (Sum T E))
    (attrs unwrap inline)
    (sig unwrap (Fun (Result T E) T))
    (val unwrap (fun res (case res (match T id) (match E panic))))
    (type StringError String)
    (type StringResult (Result String StringResult))
    (sig res String)
    (val res (unwrap "res"))
    (sig x StringError)
    (val x "res2")
    (sig res2 String)
    (val res2 (unwrap x)) # will panic
)`

func Test_Block_01(t *testing.T) {
	block := checkRoundTrip(t, "(block (val e10 (math.exp (prod math.e 10))))", BlockFormFromStr)
	//
	assert.Equal(t, 1, len(block.Entries))
	assert.True(t, block.EntryAsVal(0).IsAppForm())
}

func Test_Block_02(t *testing.T) {
	block, err := BlockFormFromStr(resultBlock)
	//
	assert.NoError(t, err)
	assert.Equal(t, 14, len(block.Entries))
	assert.True(t, block.EntryAsImport(0) != nil)
	assert.True(t, block.EntryAsAttrs(1).IsTypeAttributes())
	assert.True(t, block.EntryAsAttrs(3).IsValueAttributes())
	assert.True(t, block.EntryAsType(2).IsTypesForm())
	assert.True(t, block.EntryAsSig(4).IsTypesForm())
	assert.True(t, block.EntryAsVal(5).IsFunForm())
	assert.True(t, block.EntryAsVal(9).IsAppForm())
	assert.True(t, block.EntryAsVal(4) == nil)
	assert.Equal(t, "(val res2 (unwrap x))", block.Entries[13].String())
}

func Test_Block_03(t *testing.T) {
	block := checkRoundTrip(t, "(block (export (prod unwrap Result)) (val x 1))", BlockFormFromStr)
	//
	assert.Equal(t, "unwrap, Result", names(block.EntryAsExport(0).Names()))
}

func Test_Block_Invalid_01(t *testing.T) {
	_, err := BlockFormFromStr("(block)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected at least an entry")
	//
	_, err = BlockFormFromStr("(block x)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a form")
	//
	_, err = BlockFormFromStr("(block (val x 1) (f x))")
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "unexpected form", 17)
}

// ============================================================================
// Modules
// ============================================================================

func Test_Module_01(t *testing.T) {
	module := checkRoundTrip(t, "(module x () ())", ModuleFormFromStr)
	//
	assert.Equal(t, "()", module.TypeParamsString())
	assert.Equal(t, 0, len(module.Entries()))
}

func Test_Module_02(t *testing.T) {
	module := checkRoundTrip(t, "(module x ())", ModuleFormFromStr)
	//
	assert.True(t, module.TypeParams == nil)
	assert.Equal(t, "", module.TypeParamsString())
	assert.Equal(t, 2, len(module.Children()))
}

func Test_Module_03(t *testing.T) {
	module := checkRoundTrip(t, "(module main () (block (import std.io _ println) (sig main (Fun IO IO)) "+
		"(val main (fun io (let (sig text String) (val text \"Hello, World!\") (println (prod io (unwrap text))))))))",
		ModuleFormFromStr)
	//
	assert.Equal(t, "main", module.Name.String())
	assert.Equal(t, 3, len(module.Entries()))
	assert.Equal(t, "println", names(module.EntryAsImport(0).Names()))
	assert.True(t, module.EntryAsSig(1).IsTypesForm())
	assert.True(t, module.EntryAsVal(2).IsFunForm())
	assert.Equal(t, "io, text", names(module.AllParameters()))
}

func Test_Module_04(t *testing.T) {
	module := checkRoundTrip(t, "(module x (prod T E) (prod (type Result (Sum T E)) (sig unwrap (Fun (Result T E) T)) "+
		"(val unwrap (fun res (case res (match t id) (match e panic))))))", ModuleFormFromStr)
	//
	assert.Equal(t, "(prod T E)", module.TypeParamsString())
	assert.Equal(t, 3, len(module.Entries()))
	assert.True(t, module.EntryAsType(0).IsTypesForm())
	assert.True(t, module.EntryAsSig(1).IsTypesForm())
	assert.True(t, module.EntryAsVal(2).IsFunForm())
	assert.True(t, module.EntryAsExport(0) == nil)
}

func Test_Module_05(t *testing.T) {
	module, err := ModuleFormFromStr("(module results " + resultBlock + ")")
	//
	assert.NoError(t, err)
	assert.Equal(t, 14, len(module.Entries()))
	assert.True(t, module.EntryAsAttrs(1) != nil)
}

func Test_Module_Invalid_01(t *testing.T) {
	_, err := ModuleFormFromStr("(module x)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a name, optional type parameters and a body")
	//
	_, err = ModuleFormFromStr("(module X ())")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a module name")
	//
	_, err = ModuleFormFromStr("(module x (prod T e) ())")
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "expected a type symbol", 18)
	//
	_, err = ModuleFormFromStr("(module x T ())")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected an empty literal or a product of type symbols")
	//
	_, err = ModuleFormFromStr("(module x () (f x))")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected an empty literal, a block form or a product of entries")
}

// ============================================================================
// Source files
// ============================================================================

func Test_ParseAll_01(t *testing.T) {
	tokens, err := token.Tokenize(`#! A small program
(module main () (block (val x 1)))
# unrelated
(val y (f x))
(f (prod a b))`)
	//
	assert.NoError(t, err)
	//
	nodes, err := ParseAll(tokens)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(nodes))
	//
	_, ok0 := nodes[0].(*ModuleForm)
	_, ok1 := nodes[1].(*ValForm)
	_, ok2 := nodes[2].(*AppForm)
	//
	assert.True(t, ok0 && ok1 && ok2)
	assert.Equal(t, uint(3), nodes[1].Loc().Unwrap().Line)
}

func Test_ParseAll_02(t *testing.T) {
	tokens, _ := token.Tokenize("(val x 1)\n(val 1 x)")
	_, err := ParseAll(tokens)
	//
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "expected an unqualified symbol", 15)
}

func Test_ParseAll_03(t *testing.T) {
	tokens, _ := token.Tokenize("(fun a a) x")
	_, err := ParseAll(tokens)
	//
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "expected a form", 10)
}

func Test_ParseAll_04(t *testing.T) {
	// A product needs at least two values
	tokens, _ := token.Tokenize("(f (prod a))")
	_, err := ParseAll(tokens)
	//
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "expected at least two values", 3)
}

func Test_ParseAll_05(t *testing.T) {
	tokens, _ := token.Tokenize("(val x 1)\n(g a b)")
	_, err := ParseAll(tokens)
	//
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "expected a single argument or a product of arguments", 10)
}

func Test_ParseAll_06(t *testing.T) {
	// Arguments must be given as a product
	tokens, _ := token.Tokenize("(f (fun a b (g (prod b a))) x)")
	_, err := ParseAll(tokens)
	//
	checkErrAt(t, err, source.SYNTACTIC_ERROR, "expected a single argument or a product of arguments", 0)
}

func Test_ParseTopLevel_01(t *testing.T) {
	for _, s := range []string{"(fun a a)", "(let (f x))", "(case x (match T id))", "(block (val x 1))"} {
		form, err := FormFromStr(s)
		assert.NoError(t, err)
		//
		node, err := ParseTopLevel(form)
		assert.NoError(t, err)
		assert.Equal(t, s, node.String())
		//
		_, generic := node.(*Form)
		assert.False(t, generic)
	}
}

func Test_ParseTopLevel_02(t *testing.T) {
	// Failures within a committed candidate are not swallowed
	inputs := []string{"(fun a)", "(f (prod a))", "(g)"}
	msgs := []string{
		"expected at least a parameter and a function body",
		"expected at least two values",
		"expected a single argument or a product of arguments",
	}
	//
	for i, s := range inputs {
		form, err := FormFromStr(s)
		assert.NoError(t, err)
		//
		_, err = ParseTopLevel(form)
		checkErr(t, err, source.SYNTACTIC_ERROR, msgs[i])
	}
}

func Test_ParseAll_Concurrent_01(t *testing.T) {
	// Parses share no state, so can proceed in parallel
	var (
		wg      sync.WaitGroup
		results = make([]string, 8)
		errs    = make([]error, 8)
	)
	//
	for i := range results {
		wg.Add(1)
		//
		go func(i int) {
			defer wg.Done()
			//
			module, err := ModuleFormFromStr("(module results " + resultBlock + ")")
			if err == nil {
				results[i] = module.String()
			}
			//
			errs[i] = err
		}(i)
	}
	//
	wg.Wait()
	//
	for i := range results {
		assert.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
}
