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
	"fmt"

	"github.com/0xPolygonMiden/air-dsl/pkg/air"
	"github.com/0xPolygonMiden/air-dsl/pkg/ast"
	"github.com/0xPolygonMiden/air-dsl/pkg/symtab"
)

// lowerExpr is the post-order walk described in spec.md §4.4: one graph
// insertion per interior expression, identifiers resolved through scope,
// list comprehensions expanded at the point they're indexed, and the
// boolean-sugar operators desugared to their arithmetic equivalents.
func lowerExpr(g *air.Graph, scope *symtab.Scope, e *ast.Expression, c ctx) (air.NodeIndex, error) {
	switch e.Kind {
	case ast.ExprLiteral:
		return g.InsertValue(air.NewConstant(e.Literal)), nil

	case ast.ExprElem:
		return lowerIdentifier(g, scope, e.Name, 0, c)

	case ast.ExprNextElem:
		return lowerIdentifier(g, scope, e.Name, 1, c)

	case ast.ExprBoundary:
		return lowerIdentifier(g, scope, e.Name, 0, c)

	case ast.ExprIndexed:
		return lowerIndexed(g, scope, e.Name, e.Index, c)

	case ast.ExprSlice:
		return 0, symtab.TypeMismatch(e.Name, "a scalar (a slice is only valid as a comprehension iterable)")

	case ast.ExprBinary:
		return lowerBinary(g, scope, e, c)

	case ast.ExprNot:
		arg, err := lowerExpr(g, scope, e.Arg, c)
		if err != nil {
			return 0, err
		}

		one := g.InsertValue(air.NewConstant(1))

		return foldableSub(g, c.cfg, one, arg), nil

	case ast.ExprExp:
		base, err := lowerExpr(g, scope, e.Arg, c)
		if err != nil {
			return 0, err
		}

		return foldableExp(g, c.cfg, base, e.Power), nil

	case ast.ExprListComprehension:
		return 0, fmt.Errorf("%w: a list comprehension is not a scalar expression; index into it", symtab.ErrTypeMismatch)

	default:
		panic("lower: unknown expression kind")
	}
}

func lowerBinary(g *air.Graph, scope *symtab.Scope, e *ast.Expression, c ctx) (air.NodeIndex, error) {
	lhs, err := lowerExpr(g, scope, e.LHS, c)
	if err != nil {
		return 0, err
	}

	rhs, err := lowerExpr(g, scope, e.RHS, c)
	if err != nil {
		return 0, err
	}

	switch e.Op {
	case ast.OpAdd:
		return foldableAdd(g, c.cfg, lhs, rhs), nil
	case ast.OpSub:
		return foldableSub(g, c.cfg, lhs, rhs), nil
	case ast.OpMul:
		return foldableMul(g, c.cfg, lhs, rhs), nil
	case ast.OpAnd:
		// a & b => a * b
		return foldableMul(g, c.cfg, lhs, rhs), nil
	case ast.OpOr:
		// a | b => (a + b) - (a * b)
		sum := foldableAdd(g, c.cfg, lhs, rhs)
		prod := foldableMul(g, c.cfg, lhs, rhs)

		return foldableSub(g, c.cfg, sum, prod), nil
	default:
		panic("lower: unknown binary operator")
	}
}

// lowerIdentifier lowers a bare (optionally next-row) identifier reference:
// "x" or "x'". Variable bindings are macros -- resolving one substitutes its
// bound expression and recurses, rather than inserting a node of its own.
func lowerIdentifier(g *air.Graph, scope *symtab.Scope, name string, rowOffset int, c ctx) (air.NodeIndex, error) {
	b, err := scope.Resolve(name)
	if err != nil {
		return 0, err
	}

	switch b.Kind {
	case symtab.KindVariable:
		if rowOffset != 0 {
			return 0, symtab.TypeMismatch(name, "shiftable (only trace columns support ')")
		}

		if b.Variable.Kind != ast.VarScalar {
			return 0, symtab.TypeMismatch(name, "a scalar")
		}

		return lowerExpr(g, scope, &b.Variable.Scalar, c)

	case symtab.KindConstant:
		if rowOffset != 0 {
			return 0, symtab.TypeMismatch(name, "shiftable")
		}

		if b.Constant.Kind != ast.ConstScalar {
			return 0, symtab.TypeMismatch(name, "a scalar constant")
		}

		return g.InsertValue(air.NewConstant(b.Constant.Scalar)), nil

	case symtab.KindTraceColumn:
		if b.TraceColumn.Len != 1 {
			return 0, symtab.TypeMismatch(name, "a single column (index it)")
		}

		if rowOffset != 0 && !c.allowNextRow {
			return 0, fmt.Errorf("%w: next-row access to %q in a boundary constraint", air.ErrInvalidTraceAccess, name)
		}

		return g.InsertValue(air.NewTraceElement(b.TraceColumn.Segment, b.TraceColumn.Start, rowOffset)), nil

	case symtab.KindPeriodicColumn:
		if rowOffset != 0 {
			return 0, symtab.TypeMismatch(name, "shiftable")
		}

		if c.boundary {
			return 0, fmt.Errorf("%w: %q", air.ErrPeriodicColumnInBoundary, name)
		}

		return g.InsertValue(air.NewPeriodicColumn(b.PeriodicColumn.TableIndex, b.PeriodicColumn.CycleLen)), nil

	case symtab.KindPublicInput:
		return 0, symtab.TypeMismatch(name, "indexed (public inputs require an index)")

	case symtab.KindRandomValue:
		if rowOffset != 0 {
			return 0, symtab.TypeMismatch(name, "shiftable")
		}

		if b.RandomValue.Count != 1 {
			return 0, symtab.TypeMismatch(name, "a single random value (index it)")
		}

		return g.InsertValue(air.NewRandomValue(b.RandomValue.BaseIndex)), nil

	default:
		panic("lower: unknown binding kind")
	}
}

// lowerIndexed lowers "name[index]": a single element of a vector-shaped
// binding.
func lowerIndexed(g *air.Graph, scope *symtab.Scope, name string, index uint, c ctx) (air.NodeIndex, error) {
	b, err := scope.Resolve(name)
	if err != nil {
		return 0, err
	}

	switch b.Kind {
	case symtab.KindVariable:
		return lowerIndexedVariable(g, scope, name, b.Variable, index, c)

	case symtab.KindConstant:
		flat := b.Constant.Flatten()
		if index >= uint(len(flat)) {
			return 0, symtab.TypeMismatch(name, fmt.Sprintf("a constant with an element at index %d", index))
		}

		return g.InsertValue(air.NewConstant(flat[index])), nil

	case symtab.KindTraceColumn:
		if index >= b.TraceColumn.Len {
			return 0, fmt.Errorf("%w: %q has no column at index %d", air.ErrInvalidTraceAccess, name, index)
		}

		return g.InsertValue(air.NewTraceElement(b.TraceColumn.Segment, b.TraceColumn.Start+index, 0)), nil

	case symtab.KindPublicInput:
		if c.boundary {
			// Public inputs are only ever meaningful at a boundary; nothing
			// in this specification disallows referencing them there.
		} else {
			return 0, fmt.Errorf("%w: %q", air.ErrPublicInputInIntegrity, name)
		}

		if index >= b.PublicInput.Length {
			return 0, symtab.TypeMismatch(name, fmt.Sprintf("a public input with an element at index %d", index))
		}

		return g.InsertValue(air.NewPublicInput(name, index)), nil

	case symtab.KindRandomValue:
		if index >= b.RandomValue.Count {
			return 0, symtab.TypeMismatch(name, fmt.Sprintf("a random value block with an element at index %d", index))
		}

		return g.InsertValue(air.NewRandomValue(b.RandomValue.BaseIndex + index)), nil

	case symtab.KindPeriodicColumn:
		return 0, symtab.TypeMismatch(name, "indexable (periodic columns are referenced whole)")

	default:
		panic("lower: unknown binding kind")
	}
}

func lowerIndexedVariable(
	g *air.Graph, scope *symtab.Scope, name string, v ast.VariableType, index uint, c ctx,
) (air.NodeIndex, error) {
	switch v.Kind {
	case ast.VarVector:
		if index >= uint(len(v.Vector)) {
			return 0, symtab.TypeMismatch(name, fmt.Sprintf("a vector with an element at index %d", index))
		}

		return lowerExpr(g, scope, &v.Vector[index], c)

	case ast.VarTuple:
		if index >= uint(len(v.Tuple)) {
			return 0, symtab.TypeMismatch(name, fmt.Sprintf("a tuple with an element at index %d", index))
		}

		return lowerExpr(g, scope, &v.Tuple[index], c)

	case ast.VarMatrix:
		flat := flattenExprMatrix(v.Matrix)
		if index >= uint(len(flat)) {
			return 0, symtab.TypeMismatch(name, fmt.Sprintf("a matrix with an element at index %d", index))
		}

		return lowerExpr(g, scope, flat[index], c)

	case ast.VarListComprehension:
		nodes, err := lowerComprehension(g, scope, v.Comprehension, c)
		if err != nil {
			return 0, err
		}

		if index >= uint(len(nodes)) {
			return 0, symtab.TypeMismatch(name, fmt.Sprintf("a comprehension with an element at index %d", index))
		}

		return nodes[index], nil

	default:
		return 0, symtab.TypeMismatch(name, "indexable")
	}
}

func flattenExprMatrix(m [][]ast.Expression) []*ast.Expression {
	var out []*ast.Expression

	for row := range m {
		for col := range m[row] {
			out = append(out, &m[row][col])
		}
	}

	return out
}
