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

// LowerModule compiles a parsed surface module into an air.IR: a graph plus
// the ordered constraint roots and trace metadata a backend needs. Each of
// the two constraint blocks gets its own fresh Scope, matching the surface
// language's rule that a `let` binding's scope is the block it appears in.
func LowerModule(m *ast.Module, cfg Config) (*air.IR, error) {
	table := symtab.NewTable()
	if err := table.DeclareModule(m); err != nil {
		return nil, err
	}

	g := air.NewGraph()

	var roots air.RootSet

	if err := lowerBlock(g, symtab.NewScope(table), m.BoundaryConstraints, true, cfg, &roots); err != nil {
		return nil, err
	}

	if err := lowerBlock(g, symtab.NewScope(table), m.IntegrityConstraints, false, cfg, &roots); err != nil {
		return nil, err
	}

	var namedConstants []uint64
	for _, c := range m.Constants {
		namedConstants = append(namedConstants, c.Value.Flatten()...)
	}

	all := roots.All()
	rootNodes := make([]air.NodeIndex, len(all))

	for i, r := range all {
		rootNodes[i] = r.Node
	}

	constants := air.ConstantSet(g, namedConstants, rootNodes)

	publicInputNames := table.PublicInputNames()
	publicInputs := make([]air.PublicInputInfo, len(publicInputNames))

	for i, name := range publicInputNames {
		b, err := table.Lookup(name)
		if err != nil {
			return nil, err
		}

		publicInputs[i] = air.PublicInputInfo{Name: name, Length: b.PublicInput.Length}
	}

	return &air.IR{
		Graph:           g,
		Roots:           roots,
		MainWidth:       uint16(table.MainWidth()),
		AuxWidth:        uint16(table.AuxWidth()),
		PublicInputs:    publicInputs,
		NumRandomValues: uint16(table.NumRandomValues()),
		Constants:       constants,
	}, nil
}

// lowerBlock lowers every statement of one constraint block in order,
// threading a single Scope through successive `let` bindings.
func lowerBlock(
	g *air.Graph, scope *symtab.Scope, stmts []ast.Statement, boundary bool, cfg Config, roots *air.RootSet,
) error {
	for _, st := range stmts {
		switch st.Kind {
		case ast.StmtLet:
			if err := scope.Bind(st.Let); err != nil {
				return err
			}

		case ast.StmtEnforce:
			if err := lowerEnforce(g, scope, st, boundary, cfg, roots); err != nil {
				return err
			}

		default:
			panic("lower: unknown statement kind")
		}
	}

	return nil
}

// lowerEnforce lowers a single `enf lhs = rhs [when cond]` statement into a
// constraint root: the equation becomes lhs-rhs, optionally gated by
// multiplying in the selector, and the root's segment/domain are read back
// off the folded difference node via Graph.NodeDetails.
func lowerEnforce(
	g *air.Graph, scope *symtab.Scope, st ast.Statement, boundary bool, cfg Config, roots *air.RootSet,
) error {
	var (
		domain air.ConstraintDomain
		c      ctx
	)

	if boundary {
		d, ok := findBoundaryDomain(&st.LHS)
		if !ok {
			d, ok = findBoundaryDomain(&st.RHS)
		}

		if !ok {
			return ErrMissingBoundaryDomain
		}

		domain = d
		c = boundaryCtx(cfg, domain)
	} else {
		domain = cfg.DefaultDomain
		c = integrityCtx(cfg, domain)
	}

	lhs, err := lowerExpr(g, scope, &st.LHS, c)
	if err != nil {
		return err
	}

	rhs, err := lowerExpr(g, scope, &st.RHS, c)
	if err != nil {
		return err
	}

	diff := foldableSub(g, cfg, lhs, rhs)

	if st.When != nil {
		cond, err := lowerExpr(g, scope, st.When, c)
		if err != nil {
			return err
		}

		diff = foldableMul(g, cfg, diff, cond)
	}

	segment, finalDomain, err := g.NodeDetails(diff, domain)
	if err != nil {
		return err
	}

	root := air.Root{Segment: segment, Node: diff, Domain: finalDomain}

	if boundary {
		roots.AddBoundary(root)
	} else {
		roots.AddIntegrity(root)
	}

	return nil
}

// findBoundaryDomain searches an expression tree for the first `.first`/
// `.last` access that anchors a boundary constraint to a domain.
func findBoundaryDomain(e *ast.Expression) (air.ConstraintDomain, bool) {
	switch e.Kind {
	case ast.ExprBoundary:
		if e.Boundary == ast.First {
			return air.ConstraintDomain{Kind: air.FirstRow}, true
		}

		return air.ConstraintDomain{Kind: air.LastRow}, true

	case ast.ExprBinary:
		if d, ok := findBoundaryDomain(e.LHS); ok {
			return d, true
		}

		return findBoundaryDomain(e.RHS)

	case ast.ExprNot, ast.ExprExp:
		return findBoundaryDomain(e.Arg)

	default:
		return air.ConstraintDomain{}, false
	}
}
