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

// Package backend defines the narrow contract an IR exposes to code
// generators (spec.md §9's Backend Interface) and a shared preprocessing
// step every concrete backend (pkg/backend/json, pkg/backend/asm) needs
// before it can walk the graph: expanding Exp nodes away, since several
// backend wire formats have no exponentiation primitive of their own.
package backend

import (
	"github.com/0xPolygonMiden/air-dsl/pkg/air"
	"github.com/0xPolygonMiden/air-dsl/pkg/pass"
)

// Backend turns a finished IR into a target-specific artifact.
type Backend interface {
	Generate(ir *air.IR) ([]byte, error)
}

// ExpandExp rebuilds ir's graph with every Exp node replaced by a
// left-folded chain of Mul nodes (base*base*...*base, k times), grounded in
// the teacher's own lowerExpTo helper in pkg/mir/lower.go, which lowers an
// MIR Exp the same way when the target AIR representation has no exponent
// primitive. Graph.InsertExp already canonicalises k==0 and k==1 away during
// lowering, so every surviving Exp node here has k >= 2.
func ExpandExp(ir *air.IR) *air.IR {
	out := air.NewGraph()
	v := &expExpandVisitor{out: out, remap: make(map[air.NodeIndex]air.NodeIndex)}

	all := ir.Roots.All()
	rootIdx := make([]air.NodeIndex, len(all))

	for i, r := range all {
		rootIdx[i] = r.Node
	}

	pass.Run(pass.PostOrder, v, ir.Graph, rootIdx)

	var newRoots air.RootSet

	for _, r := range ir.Roots.AllBoundary() {
		newRoots.AddBoundary(air.Root{Segment: r.Segment, Node: v.remap[r.Node], Domain: r.Domain})
	}

	for _, r := range ir.Roots.AllIntegrity() {
		newRoots.AddIntegrity(air.Root{Segment: r.Segment, Node: v.remap[r.Node], Domain: r.Domain})
	}

	return &air.IR{
		Graph:           out,
		Roots:           newRoots,
		MainWidth:       ir.MainWidth,
		AuxWidth:        ir.AuxWidth,
		PublicInputs:    ir.PublicInputs,
		NumRandomValues: ir.NumRandomValues,
		Constants:       ir.Constants,
	}
}

type expExpandVisitor struct {
	out   *air.Graph
	remap map[air.NodeIndex]air.NodeIndex
}

func (v *expExpandVisitor) Visit(g *air.Graph, idx air.NodeIndex) {
	if _, done := v.remap[idx]; done {
		return
	}

	op := g.Node(idx).Op

	switch op.Kind {
	case air.OpValue:
		v.remap[idx] = v.out.InsertValue(op.Leaf)
	case air.OpAdd:
		v.remap[idx] = v.out.InsertAdd(v.remap[op.LHS], v.remap[op.RHS])
	case air.OpSub:
		v.remap[idx] = v.out.InsertSub(v.remap[op.LHS], v.remap[op.RHS])
	case air.OpMul:
		v.remap[idx] = v.out.InsertMul(v.remap[op.LHS], v.remap[op.RHS])
	case air.OpExp:
		base := v.remap[op.Base]
		acc := base

		for i := uint64(1); i < op.Exponent; i++ {
			acc = v.out.InsertMul(acc, base)
		}

		v.remap[idx] = acc
	default:
		panic("backend: unknown operation kind in ExpandExp")
	}
}
