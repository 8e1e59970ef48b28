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

	"github.com/consensys/go-forms/pkg/token"
	"github.com/consensys/go-forms/pkg/util/assert"
	"github.com/consensys/go-forms/pkg/util/source"
)

func Test_Pair_01(t *testing.T) {
	pair := checkRoundTrip(t, "(pair a A)", PairFormFromStr)
	//
	assert.Equal(t, 2, pair.Len())
	assert.False(t, pair.IsSymbolic())
	//
	checkRoundTrip(t, "(pair moduleX.X y)", PairFormFromStr)
	checkRoundTrip(t, "(pair 0 (Fun A B))", PairFormFromStr)
	assert.True(t, checkRoundTrip(t, "(pair a b)", PairFormFromStr).IsSymbolic())
}

func Test_Pair_Invalid_01(t *testing.T) {
	_, err := PairFormFromStr("(pair a)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected two values")
	//
	_, err = PairFormFromStr("(pair a b c)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected two values")
	//
	_, err = PairFormFromStr("(list a b)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a pair keyword")
}

func Test_List_01(t *testing.T) {
	list := checkRoundTrip(t, "(list 0 (Fun A B))", ListFormFromStr)
	//
	assert.Equal(t, "0 (Fun A B)", list.ValuesString())
	//
	checkRoundTrip(t, "(list a)", ListFormFromStr)
	checkRoundTrip(t, "(list moduleX.X y (pair a 1) (f x))", ListFormFromStr)
}

func Test_Arr_01(t *testing.T) {
	arr := checkRoundTrip(t, "(arr a (prod b c) (fun d d))", ArrFormFromStr)
	//
	assert.Equal(t, "d", names(arr.AllParameters()))
	assert.Equal(t, "a, b, c, d", names(arr.AllVariables()))
}

func Test_Vec_01(t *testing.T) {
	vec := checkRoundTrip(t, "(vec a (pair b _) (list c))", VecFormFromStr)
	//
	assert.Equal(t, 3, vec.Len())
	assert.True(t, vec.IsSymbolic())
}

func Test_Collection_01(t *testing.T) {
	for _, s := range []string{"(pair a 1)", "(list a)", "(arr a b)", "(vec a b c)"} {
		tokens, _ := token.Tokenize(s)
		n, err := CollectionFromTokens(tokens)
		//
		assert.NoError(t, err)
		assert.Equal(t, s, n.String())
	}
	//
	tokens, _ := token.Tokenize("(map (pair a 1))")
	_, err := CollectionFromTokens(tokens)
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a collection")
}

func Test_Collection_Invalid_01(t *testing.T) {
	_, err := ListFormFromStr("(list)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected at least a value")
	//
	_, err = VecFormFromStr("(vec a (g b c))")
	checkErr(t, err, source.SYNTACTIC_ERROR, "unexpected form")
}

// ============================================================================
// Maps
// ============================================================================

func Test_Map_01(t *testing.T) {
	m := checkRoundTrip(t, "(map ())", MapFormFromStr)
	//
	assert.True(t, m.IsEmpty())
	assert.False(t, m.IsSymbolic())
}

func Test_Map_02(t *testing.T) {
	checkRoundTrip(t, "(map (prod a A))", MapFormFromStr)
	checkRoundTrip(t, "(map (prod moduleX.X y))", MapFormFromStr)
	//
	m := checkRoundTrip(t, "(map (prod moduleX.X y) (prod math.+ default))", MapFormFromStr)
	assert.Equal(t, 2, len(m.Entries))
	assert.False(t, m.IsEmpty())
}

func Test_Map_03(t *testing.T) {
	m := checkRoundTrip(t, "(map (pair a b) (pair c d))", MapFormFromStr)
	//
	assert.True(t, m.IsSymbolic())
	assert.Equal(t, "a, b, c, d", names(m.AllVariables()))
}

func Test_Map_Invalid_01(t *testing.T) {
	_, err := MapFormFromStr("(map () ())")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a pair or a product form")
	//
	_, err = MapFormFromStr("(map a)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a pair or a product form")
	//
	_, err = MapFormFromStr("(map (f x))")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a pair or a product form")
	//
	_, err = MapFormFromStr("(map)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected at least a value")
}

// ============================================================================
// Attributes
// ============================================================================

func Test_Attrs_01(t *testing.T) {
	checkRoundTrip(t, "(attrs x ())", AttrsFormFromStr)
	checkRoundTrip(t, "(attrs T x)", AttrsFormFromStr)
	checkRoundTrip(t, "(attrs T moduleX.X)", AttrsFormFromStr)
	checkRoundTrip(t, "(attrs x (prod inline pure))", AttrsFormFromStr)
}

func Test_Attrs_02(t *testing.T) {
	attrs := checkRoundTrip(t, "(attrs x (map (pair union a) (pair moduleA.A Type)))", AttrsFormFromStr)
	//
	_, ok := attrs.Attributes.(*MapForm)
	assert.True(t, ok)
	assert.True(t, attrs.IsValueAttributes())
	assert.False(t, attrs.IsTypeAttributes())
	assert.Equal(t, 0, len(attrs.AllVariables()))
	//
	attrs = checkRoundTrip(t, "(attrs Result union)", AttrsFormFromStr)
	assert.True(t, attrs.IsTypeAttributes())
}

func Test_Attrs_Invalid_01(t *testing.T) {
	_, err := AttrsFormFromStr("(attrs x)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a name and some attributes")
	//
	_, err = AttrsFormFromStr("(attrs x.y z)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected an unqualified symbol")
	//
	_, err = AttrsFormFromStr("(attrs x _)")
	checkErr(t, err, source.SYNTACTIC_ERROR, "unexpected attribute")
	//
	_, err = AttrsFormFromStr("(attrs x (f y))")
	checkErr(t, err, source.SYNTACTIC_ERROR, "expected a map form or a product form")
}
