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

package lower

import (
	"errors"
	"testing"

	"github.com/0xPolygonMiden/air-dsl/pkg/air"
	"github.com/0xPolygonMiden/air-dsl/pkg/ast"
	"github.com/0xPolygonMiden/air-dsl/pkg/symtab"
)

func oneMainColumn(names ...string) ast.TraceColumnsDecl {
	groups := make([]ast.TraceColumnGroup, len(names))
	for i, n := range names {
		groups[i] = ast.TraceColumnGroup{Members: []string{n}}
	}

	return ast.TraceColumnsDecl{Main: groups}
}

func TestLowerIntegrityConstraintDegreeLocality(t *testing.T) {
	// enf a + a = 0
	m := &ast.Module{
		Name:         "m",
		TraceColumns: oneMainColumn("a"),
		IntegrityConstraints: []ast.Statement{
			ast.EnforceStatement(ast.Binary(ast.OpAdd, ast.Elem("a"), ast.Elem("a")), ast.Literal(0), nil),
		},
	}

	ir, err := LowerModule(m, DEFAULT_OPTIMISATION_LEVEL)
	if err != nil {
		t.Fatalf("LowerModule: %v", err)
	}

	roots := ir.Roots.AllIntegrity()
	if len(roots) != 1 {
		t.Fatalf("expected 1 integrity root, got %d", len(roots))
	}

	deg := ir.Graph.Degree(roots[0].Node)
	if deg.Base != 1 || len(deg.Cycles) != 0 {
		t.Fatalf("expected degree (1, []), got %+v", deg)
	}
}

func TestLowerExpDegreeMultiplies(t *testing.T) {
	// enf b^5 = 0
	m := &ast.Module{
		Name:         "m",
		TraceColumns: oneMainColumn("b"),
		IntegrityConstraints: []ast.Statement{
			ast.EnforceStatement(ast.Exp(ast.Elem("b"), 5), ast.Literal(0), nil),
		},
	}

	ir, err := LowerModule(m, DEFAULT_OPTIMISATION_LEVEL)
	if err != nil {
		t.Fatalf("LowerModule: %v", err)
	}

	roots := ir.Roots.AllIntegrity()
	deg := ir.Graph.Degree(roots[0].Node)

	if deg.Base != 5 {
		t.Fatalf("expected degree base 5, got %d", deg.Base)
	}

	found := false

	for _, c := range ir.Constants {
		if c == 5 {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected constant set to include exponent 5, got %v", ir.Constants)
	}
}

func TestLowerNamedConstantsFlattenInDeclarationOrder(t *testing.T) {
	// const A=1; const B=[0,1]; const C=[[1,2],[2,0]]; enf a.first=5
	m := &ast.Module{
		Name: "m",
		Constants: []ast.ConstantDecl{
			{Name: "A", Value: ast.ConstantValue{Kind: ast.ConstScalar, Scalar: 1}},
			{Name: "B", Value: ast.ConstantValue{Kind: ast.ConstVector, Vector: []uint64{0, 1}}},
			{Name: "C", Value: ast.ConstantValue{Kind: ast.ConstMatrix, Matrix: [][]uint64{{1, 2}, {2, 0}}}},
		},
		TraceColumns: oneMainColumn("a"),
		BoundaryConstraints: []ast.Statement{
			ast.EnforceStatement(ast.BoundaryAccess("a", ast.First), ast.Literal(5), nil),
		},
	}

	ir, err := LowerModule(m, DEFAULT_OPTIMISATION_LEVEL)
	if err != nil {
		t.Fatalf("LowerModule: %v", err)
	}

	want := []uint64{1, 0, 2, 5}
	if len(ir.Constants) != len(want) {
		t.Fatalf("expected constants %v, got %v", want, ir.Constants)
	}

	for i := range want {
		if ir.Constants[i] != want[i] {
			t.Fatalf("expected constants %v, got %v", want, ir.Constants)
		}
	}
}

func TestLowerDefaultIntegrityDomainIsEveryRow(t *testing.T) {
	m := &ast.Module{
		Name:         "m",
		TraceColumns: oneMainColumn("a", "b"),
		IntegrityConstraints: []ast.Statement{
			ast.EnforceStatement(ast.Elem("a"), ast.Literal(0), nil),
			ast.EnforceStatement(ast.Elem("b"), ast.Literal(0), nil),
		},
	}

	ir, err := LowerModule(m, DEFAULT_OPTIMISATION_LEVEL)
	if err != nil {
		t.Fatalf("LowerModule: %v", err)
	}

	roots := ir.Roots.AllIntegrity()
	if len(roots) != 2 {
		t.Fatalf("expected 2 integrity roots, got %d", len(roots))
	}

	for _, r := range roots {
		if r.Domain.Kind != air.EveryRow {
			t.Fatalf("expected EveryRow domain, got %v", r.Domain)
		}
	}
}

func TestLowerBooleanSugarStructure(t *testing.T) {
	// let flag = n1 & !n2; enf clk' = clk + 1 when flag
	// flag must desugar to n1 * (1 - n2), and the selector must multiply
	// the whole difference.
	m := &ast.Module{
		Name:         "m",
		TraceColumns: oneMainColumn("clk", "n1", "n2"),
		IntegrityConstraints: []ast.Statement{
			ast.LetStatement(ast.Variable{
				Name: "flag",
				Value: ast.VariableType{
					Kind:   ast.VarScalar,
					Scalar: ast.Binary(ast.OpAnd, ast.Elem("n1"), ast.Not(ast.Elem("n2"))),
				},
			}),
			func() ast.Statement {
				flag := ast.Elem("flag")
				return ast.EnforceStatement(
					ast.NextElem("clk"),
					ast.Binary(ast.OpAdd, ast.Elem("clk"), ast.Literal(1)),
					&flag,
				)
			}(),
		},
	}

	ir, err := LowerModule(m, DEFAULT_OPTIMISATION_LEVEL)
	if err != nil {
		t.Fatalf("LowerModule: %v", err)
	}

	roots := ir.Roots.AllIntegrity()
	if len(roots) != 1 {
		t.Fatalf("expected 1 integrity root, got %d", len(roots))
	}

	want := "(* (- #0[main]' (+ #0[main] 1)) (* #1[main] (- 1 #2[main])))"
	if got := ir.Graph.Lisp(roots[0].Node); got != want {
		t.Fatalf("expected root %s, got %s", want, got)
	}
}

func TestLowerShiftedConstraintsGetEveryFrameDomain(t *testing.T) {
	// enf a' = a * 2; enf b' = a + b
	m := &ast.Module{
		Name:         "m",
		TraceColumns: oneMainColumn("a", "b"),
		IntegrityConstraints: []ast.Statement{
			ast.EnforceStatement(
				ast.NextElem("a"), ast.Binary(ast.OpMul, ast.Elem("a"), ast.Literal(2)), nil,
			),
			ast.EnforceStatement(
				ast.NextElem("b"), ast.Binary(ast.OpAdd, ast.Elem("a"), ast.Elem("b")), nil,
			),
		},
	}

	ir, err := LowerModule(m, DEFAULT_OPTIMISATION_LEVEL)
	if err != nil {
		t.Fatalf("LowerModule: %v", err)
	}

	roots := ir.Roots.AllIntegrity()
	if len(roots) != 2 {
		t.Fatalf("expected 2 integrity roots in declaration order, got %d", len(roots))
	}

	for i, r := range roots {
		if r.Domain.Kind != air.EveryFrame || r.Domain.K != 1 {
			t.Fatalf("root %d: expected EveryFrame(1), got %v", i, r.Domain)
		}
	}

	// Declaration order: the a' root precedes the b' root.
	if !sameLisp(ir.Graph, roots[0].Node, "(- #0[main]' (* #0[main] 2))") {
		t.Fatalf("unexpected first root %s", ir.Graph.Lisp(roots[0].Node))
	}
}

func sameLisp(g *air.Graph, idx air.NodeIndex, want string) bool {
	return g.Lisp(idx) == want
}

func TestLowerDeterministicArena(t *testing.T) {
	build := func() *air.IR {
		m := &ast.Module{
			Name: "m",
			Constants: []ast.ConstantDecl{
				{Name: "A", Value: ast.ConstantValue{Kind: ast.ConstVector, Vector: []uint64{3, 7}}},
			},
			TraceColumns: oneMainColumn("a", "b"),
			PublicInputs: []ast.PublicInputDecl{{Name: "inputs", Length: 4}},
			BoundaryConstraints: []ast.Statement{
				ast.EnforceStatement(ast.BoundaryAccess("a", ast.First), ast.Indexed("inputs", 0), nil),
			},
			IntegrityConstraints: []ast.Statement{
				ast.EnforceStatement(
					ast.NextElem("a"),
					ast.Binary(ast.OpAdd, ast.Elem("a"), ast.Indexed("A", 1)),
					nil,
				),
				ast.EnforceStatement(ast.Exp(ast.Elem("b"), 3), ast.Elem("b"), nil),
			},
		}

		ir, err := LowerModule(m, DEFAULT_OPTIMISATION_LEVEL)
		if err != nil {
			t.Fatalf("LowerModule: %v", err)
		}

		return ir
	}

	ir1 := build()
	ir2 := build()

	if ir1.Graph.Len() != ir2.Graph.Len() {
		t.Fatalf("arena sizes differ across identical compilations: %d vs %d", ir1.Graph.Len(), ir2.Graph.Len())
	}

	r1 := ir1.Roots.All()
	r2 := ir2.Roots.All()

	if len(r1) != len(r2) {
		t.Fatalf("root counts differ: %d vs %d", len(r1), len(r2))
	}

	for i := range r1 {
		if r1[i] != r2[i] {
			t.Fatalf("root %d differs: %+v vs %+v", i, r1[i], r2[i])
		}

		if ir1.Graph.Lisp(r1[i].Node) != ir2.Graph.Lisp(r2[i].Node) {
			t.Fatalf("root %d expression differs across identical compilations", i)
		}
	}

	for i := range ir1.Constants {
		if ir1.Constants[i] != ir2.Constants[i] {
			t.Fatalf("constant pools differ: %v vs %v", ir1.Constants, ir2.Constants)
		}
	}
}

func TestLowerRejectsNextRowInBoundary(t *testing.T) {
	m := &ast.Module{
		Name:         "m",
		TraceColumns: oneMainColumn("a"),
		BoundaryConstraints: []ast.Statement{
			ast.EnforceStatement(ast.BoundaryAccess("a", ast.First), ast.NextElem("a"), nil),
		},
	}

	_, err := LowerModule(m, DEFAULT_OPTIMISATION_LEVEL)
	if !errors.Is(err, air.ErrInvalidTraceAccess) {
		t.Fatalf("expected ErrInvalidTraceAccess, got %v", err)
	}
}

func TestLowerRejectsPeriodicColumnInBoundary(t *testing.T) {
	m := &ast.Module{
		Name: "m",
		PeriodicColumns: []ast.PeriodicColumnDecl{
			{Name: "k0", Values: []uint64{1, 0}},
		},
		TraceColumns: oneMainColumn("a"),
		BoundaryConstraints: []ast.Statement{
			ast.EnforceStatement(ast.BoundaryAccess("a", ast.First), ast.Elem("k0"), nil),
		},
	}

	_, err := LowerModule(m, DEFAULT_OPTIMISATION_LEVEL)
	if !errors.Is(err, air.ErrPeriodicColumnInBoundary) {
		t.Fatalf("expected ErrPeriodicColumnInBoundary, got %v", err)
	}
}

func TestLowerRejectsPublicInputInIntegrity(t *testing.T) {
	m := &ast.Module{
		Name:         "m",
		PublicInputs: []ast.PublicInputDecl{{Name: "inputs", Length: 4}},
		TraceColumns: oneMainColumn("a"),
		IntegrityConstraints: []ast.Statement{
			ast.EnforceStatement(ast.Elem("a"), ast.Indexed("inputs", 0), nil),
		},
	}

	_, err := LowerModule(m, DEFAULT_OPTIMISATION_LEVEL)
	if !errors.Is(err, air.ErrPublicInputInIntegrity) {
		t.Fatalf("expected ErrPublicInputInIntegrity, got %v", err)
	}
}

func TestLowerComprehensionOverSlice(t *testing.T) {
	// let sums = [z + 1 for z in regs[1..3]]; enf sums[0] = 0
	m := &ast.Module{
		Name: "m",
		TraceColumns: ast.TraceColumnsDecl{
			Main: []ast.TraceColumnGroup{
				{Name: "regs", Members: []ast.Identifier{"r0", "r1", "r2"}},
			},
		},
		IntegrityConstraints: []ast.Statement{
			ast.LetStatement(ast.Variable{
				Name: "sums",
				Value: ast.VariableType{
					Kind: ast.VarListComprehension,
					Comprehension: &ast.ListComprehension{
						Expression: exprPtr(ast.Binary(ast.OpAdd, ast.Elem("z"), ast.Literal(1))),
						Context: []ast.ComprehensionBinding{
							{Name: "z", Iterable: ast.IterableSlice("regs", ast.Range{Start: 1, End: 3})},
						},
					},
				},
			}),
			ast.EnforceStatement(ast.Indexed("sums", 0), ast.Literal(0), nil),
			ast.EnforceStatement(ast.Indexed("sums", 1), ast.Literal(0), nil),
		},
	}

	ir, err := LowerModule(m, DEFAULT_OPTIMISATION_LEVEL)
	if err != nil {
		t.Fatalf("LowerModule: %v", err)
	}

	roots := ir.Roots.AllIntegrity()
	if len(roots) != 2 {
		t.Fatalf("expected 2 integrity roots, got %d", len(roots))
	}

	// sums[0] ranges over regs starting at column offset 1.
	if !sameLisp(ir.Graph, roots[0].Node, "(- (+ #1[main] 1) 0)") {
		t.Fatalf("unexpected first root %s", ir.Graph.Lisp(roots[0].Node))
	}

	if !sameLisp(ir.Graph, roots[1].Node, "(- (+ #2[main] 1) 0)") {
		t.Fatalf("unexpected second root %s", ir.Graph.Lisp(roots[1].Node))
	}
}

func TestLowerComprehensionLengthMismatchLeavesNoPartialGraph(t *testing.T) {
	m := &ast.Module{
		Name:         "m",
		TraceColumns: oneMainColumn("a", "b"),
		IntegrityConstraints: []ast.Statement{
			ast.LetStatement(ast.Variable{
				Name: "xs",
				Value: ast.VariableType{
					Kind: ast.VarListComprehension,
					Comprehension: &ast.ListComprehension{
						Expression: exprPtr(ast.Binary(ast.OpAdd, ast.Elem("i"), ast.Elem("j"))),
						Context: []ast.ComprehensionBinding{
							{Name: "i", Iterable: ast.IterableRange(ast.Range{Start: 0, End: 2})},
							{Name: "j", Iterable: ast.IterableRange(ast.Range{Start: 0, End: 3})},
						},
					},
				},
			}),
			ast.EnforceStatement(ast.Indexed("xs", 0), ast.Literal(0), nil),
		},
	}

	table := symtab.NewTable()
	if err := table.DeclareModule(m); err != nil {
		t.Fatalf("DeclareModule: %v", err)
	}

	g := air.NewGraph()
	lenBefore := g.Len()

	var roots air.RootSet

	err := lowerBlock(g, symtab.NewScope(table), m.IntegrityConstraints, false, DEFAULT_OPTIMISATION_LEVEL, &roots)
	if !errors.Is(err, ErrComprehensionLengthMismatch) {
		t.Fatalf("expected ErrComprehensionLengthMismatch, got %v", err)
	}

	if g.Len() != lenBefore {
		t.Fatalf("expected no nodes inserted on length mismatch, arena grew from %d to %d", lenBefore, g.Len())
	}
}

func exprPtr(e ast.Expression) *ast.Expression { return &e }
