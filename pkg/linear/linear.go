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
	"fmt"

	"github.com/consensys/go-forms/pkg/form"
	"github.com/consensys/go-forms/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// UNUSED_PARAMETERS is reported when some parameter of a binder is never
// referenced.
const UNUSED_PARAMETERS = "non-linear use of parameters: unused parameters"

// REUSED_PARAMETERS is reported when some parameter of a binder is referenced
// more than once.
const REUSED_PARAMETERS = "non-linear use of parameters: reused parameters"

// NON_ORDERED_PARAMETERS is reported when the parameters of a binder are not
// referenced in the order they are declared.
const NON_ORDERED_PARAMETERS = "non-ordered use of parameters: expected variable %s"

// CheckParameterUse checks that every parameter of a given binder is referenced
// exactly once, and that references occur in declaration order.  Any function
// nested within the binder is checked against its own parameters as well.
func CheckParameterUse(binder form.Binder) error {
	switch b := binder.(type) {
	case *form.FunForm, *form.CaseForm:
		return CheckNode(b)
	default:
		panic(fmt.Sprintf("unknown binder %T", binder))
	}
}

// CheckNode checks every function occurring within a given node (including the
// node itself), such that each nested function is checked against its own
// parameters.  Functions are checked in the order they are encountered, and
// the first failure is returned.
func CheckNode(n form.Node) error {
	var err error
	//
	form.Walk(n, func(n form.Node) bool {
		if fun, ok := n.(*form.FunForm); ok && err == nil {
			err = checkParameters(fun)
		}
		//
		return err == nil
	})
	//
	return err
}

// CheckAll checks every node in a given sequence, such as those parsed from a
// source file.  Every failure is returned.
func CheckAll(nodes []form.Node) []error {
	var errs []error
	//
	for _, n := range nodes {
		if err := CheckNode(n); err != nil {
			errs = append(errs, err)
		}
	}
	//
	return errs
}

func checkParameters(fun *form.FunForm) error {
	var (
		params = fun.AllParameters()
		bound  = form.BoundVariables(fun)
	)
	//
	log.Debugf("checking %s (%d parameters, %d bound variables)", fun.String(), len(params), len(bound))
	//
	switch {
	case len(params) == 0 && len(bound) == 0:
		return nil
	case len(params) > len(bound):
		// A single parameter may be ignored altogether, as in "(fun a ())".
		if len(params) == 1 && len(bound) == 0 {
			return nil
		}
		//
		return source.NewSemanticError(fun.Loc(), UNUSED_PARAMETERS)
	case len(params) < len(bound):
		return source.NewSemanticError(fun.Loc(), REUSED_PARAMETERS)
	}
	//
	for i, param := range params {
		if param.String() != bound[i].String() {
			msg := fmt.Sprintf(NON_ORDERED_PARAMETERS, param.String())
			return source.NewSemanticError(bound[i].Loc(), msg)
		}
	}
	//
	return nil
}
