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
	"github.com/0xPolygonMiden/air-dsl/pkg/air"
	"github.com/0xPolygonMiden/air-dsl/pkg/ast"
	"github.com/0xPolygonMiden/air-dsl/pkg/symtab"
)

// lowerComprehension expands a list comprehension into one graph node per
// position. Every iterable's length is computed up front, before any node is
// inserted: a length mismatch must leave the graph exactly as it was found,
// per spec.md §8's comprehension-length-mismatch scenario.
func lowerComprehension(
	g *air.Graph, scope *symtab.Scope, comp *ast.ListComprehension, c ctx,
) ([]air.NodeIndex, error) {
	length, err := comprehensionLength(scope, comp.Context)
	if err != nil {
		return nil, err
	}

	nodes := make([]air.NodeIndex, length)

	for i := uint(0); i < length; i++ {
		bindings := make(map[ast.Identifier]ast.VariableType, len(comp.Context))

		for _, b := range comp.Context {
			slot := iterableSlot(b.Iterable, i)
			bindings[b.Name] = ast.VariableType{Kind: ast.VarScalar, Scalar: slot}
		}

		iterScope, err := scope.ChildWithBindings(bindings)
		if err != nil {
			return nil, err
		}

		node, err := lowerExpr(g, iterScope, comp.Expression, c)
		if err != nil {
			return nil, err
		}

		nodes[i] = node
	}

	return nodes, nil
}

// comprehensionLength resolves the shared length every binding's iterable
// must agree on.
func comprehensionLength(scope *symtab.Scope, bindings []ast.ComprehensionBinding) (uint, error) {
	names := make([]string, len(bindings))
	lengths := make([]uint, len(bindings))

	for i, b := range bindings {
		l, err := iterableLength(scope, b.Iterable)
		if err != nil {
			return 0, err
		}

		names[i] = b.Name
		lengths[i] = l
	}

	for i := 1; i < len(lengths); i++ {
		if lengths[i] != lengths[0] {
			return 0, comprehensionLengthMismatch(names, lengths)
		}
	}

	if len(lengths) == 0 {
		return 0, nil
	}

	return lengths[0], nil
}

// iterableLength resolves the number of elements an iterable produces,
// consulting the symbol table for the IterIdentifier case.
func iterableLength(scope *symtab.Scope, it ast.Iterable) (uint, error) {
	if l, ok := it.Len(); ok {
		return l, nil
	}

	b, err := scope.Resolve(it.Identifier)
	if err != nil {
		return 0, err
	}

	switch b.Kind {
	case symtab.KindVariable:
		switch b.Variable.Kind {
		case ast.VarVector:
			return uint(len(b.Variable.Vector)), nil
		case ast.VarTuple:
			return uint(len(b.Variable.Tuple)), nil
		default:
			return 0, symtab.TypeMismatch(it.Identifier, "vector-shaped")
		}

	case symtab.KindConstant:
		if b.Constant.Kind != ast.ConstVector {
			return 0, symtab.TypeMismatch(it.Identifier, "a vector constant")
		}

		return uint(len(b.Constant.Vector)), nil

	case symtab.KindTraceColumn:
		return b.TraceColumn.Len, nil

	case symtab.KindPublicInput:
		return b.PublicInput.Length, nil

	default:
		return 0, symtab.TypeMismatch(it.Identifier, "vector-shaped")
	}
}

// iterableSlot produces the scalar expression standing in for the i'th
// element of an iterable, reusing ExprIndexed's uniform dispatch across
// every vector-shaped binding kind.
func iterableSlot(it ast.Iterable, i uint) ast.Expression {
	switch it.Kind {
	case ast.IterIdentifier:
		return ast.Indexed(it.Identifier, i)
	case ast.IterRange:
		return ast.Literal(uint64(it.Range.Start + i))
	case ast.IterSlice:
		return ast.Indexed(it.SliceName, it.SliceRange.Start+i)
	default:
		panic("lower: unknown iterable kind")
	}
}
