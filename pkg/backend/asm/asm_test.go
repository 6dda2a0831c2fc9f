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

package asm_test

import (
	"strings"
	"testing"

	"github.com/0xPolygonMiden/air-dsl/pkg/ast"
	"github.com/0xPolygonMiden/air-dsl/pkg/backend/asm"
	"github.com/0xPolygonMiden/air-dsl/pkg/lower"
)

func mainColumns(names ...string) ast.TraceColumnsDecl {
	groups := make([]ast.TraceColumnGroup, len(names))
	for i, n := range names {
		groups[i] = ast.TraceColumnGroup{Members: []string{n}}
	}

	return ast.TraceColumnsDecl{Main: groups}
}

func TestGenerateProcedureShapeAndArgLayout(t *testing.T) {
	enf := func(lhs, rhs ast.Expression) ast.Statement { return ast.EnforceStatement(lhs, rhs, nil) }

	m := &ast.Module{
		Name:         "SimpleArithmetic",
		TraceColumns: mainColumns("a", "b"),
		BoundaryConstraints: []ast.Statement{
			enf(ast.BoundaryAccess("a", ast.First), ast.Literal(0)),
		},
		IntegrityConstraints: []ast.Statement{
			enf(ast.Binary(ast.OpAdd, ast.Elem("a"), ast.Elem("a")), ast.Literal(0)),
			enf(ast.Binary(ast.OpMul, ast.Elem("b"), ast.Elem("a")), ast.Literal(0)),
		},
	}

	ir, err := lower.LowerModule(m, lower.DEFAULT_OPTIMISATION_LEVEL)
	if err != nil {
		t.Fatalf("LowerModule: %v", err)
	}

	out, err := asm.New().Generate(ir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	code := string(out)

	if !strings.HasPrefix(code, "proc.compute_evaluate_transitions\n") {
		t.Fatalf("expected procedure header, got:\n%s", code)
	}

	if !strings.HasSuffix(code, "end\n") {
		t.Fatalf("expected procedure to end with \"end\", got:\n%s", code)
	}

	mainIdx := strings.Index(code, "arg main.0, main.0'")
	auxIdx := strings.Index(code, "arg main.1, main.1'")

	if mainIdx < 0 || auxIdx < 0 || auxIdx < mainIdx {
		t.Fatalf("expected main frame columns listed in order, got:\n%s", code)
	}

	// The last-declared constraint (b*a) is emitted first, since output
	// stack order is the reverse of constraint declaration order.
	first := strings.Index(code, "# constraint 2")
	second := strings.Index(code, "# constraint 1")
	third := strings.Index(code, "# constraint 0")

	if !(first < second && second < third) {
		t.Fatalf("expected constraints emitted in reverse declaration order, got:\n%s", code)
	}
}
