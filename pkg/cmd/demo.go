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

package cmd

import "github.com/0xPolygonMiden/air-dsl/pkg/ast"

// demoModule builds a small hard-coded AST standing in for a parsed
// surface module. Lexing and grammar parsing are out of this
// specification's scope (spec.md §1's Non-goals), so the CLI demonstrates
// the rest of the pipeline -- lowering, passes, backend codegen -- over one
// fixed example instead, modelled on the original project's own
// SimpleArithmetic fixture (original_source/codegen/masm/tests/test_basic_arithmetic.rs).
func demoModule() *ast.Module {
	enf := func(lhs, rhs ast.Expression) ast.Statement {
		return ast.EnforceStatement(lhs, rhs, nil)
	}

	return &ast.Module{
		Name: "SimpleArithmetic",
		TraceColumns: ast.TraceColumnsDecl{
			Main: []ast.TraceColumnGroup{
				{Members: []ast.Identifier{"a"}},
				{Members: []ast.Identifier{"b"}},
			},
		},
		PublicInputs: []ast.PublicInputDecl{
			{Name: "stack_inputs", Length: 16},
		},
		BoundaryConstraints: []ast.Statement{
			enf(ast.BoundaryAccess("a", ast.First), ast.Literal(0)),
		},
		IntegrityConstraints: []ast.Statement{
			enf(ast.Binary(ast.OpAdd, ast.Elem("a"), ast.Elem("a")), ast.Literal(0)),
			enf(ast.Binary(ast.OpSub, ast.Elem("a"), ast.Elem("a")), ast.Literal(0)),
			enf(ast.Binary(ast.OpMul, ast.Elem("a"), ast.Elem("a")), ast.Literal(0)),
			enf(ast.Binary(ast.OpAdd, ast.Elem("b"), ast.Elem("a")), ast.Literal(0)),
			enf(ast.Binary(ast.OpSub, ast.Elem("b"), ast.Elem("a")), ast.Literal(0)),
			enf(ast.Binary(ast.OpMul, ast.Elem("b"), ast.Elem("a")), ast.Literal(0)),
		},
	}
}
