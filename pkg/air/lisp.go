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

package air

import "fmt"

// Lisp renders the expression rooted at idx as a parenthesised
// S-expression-like string, useful for debugging and for golden-file tests.
// Column names are not resolved here (the graph has no symbol table of its
// own); column leaves print as "#<index>[<segment>]", with a trailing "'"
// for a next-row access, following go-corset's pkg/mir/lisp.go convention of
// falling back to "#<index>" when no schema is available for name resolution.
func (g *Graph) Lisp(idx NodeIndex) string {
	op := g.Node(idx).Op

	switch op.Kind {
	case OpValue:
		return op.Leaf.String()
	case OpAdd:
		return g.lispOfBinary("+", op.LHS, op.RHS)
	case OpSub:
		return g.lispOfBinary("-", op.LHS, op.RHS)
	case OpMul:
		return g.lispOfBinary("*", op.LHS, op.RHS)
	case OpExp:
		return fmt.Sprintf("(^ %s %d)", g.Lisp(op.Base), op.Exponent)
	default:
		panic("air: unknown operation kind in Lisp")
	}
}

func (g *Graph) lispOfBinary(sym string, l, r NodeIndex) string {
	return fmt.Sprintf("(%s %s %s)", sym, g.Lisp(l), g.Lisp(r))
}
