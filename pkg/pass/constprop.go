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

package pass

import (
	"github.com/0xPolygonMiden/air-dsl/pkg/air"
	"github.com/0xPolygonMiden/air-dsl/pkg/field"
)

// ConstantPropagation is a standalone rewrite pass, distinct from lowering's
// inline constant folding (pkg/lower/fold.go), which only folds what is
// constant as written. This pass folds whatever the graph makes constant
// after every other pass has had a chance to run. It works in two phases:
// a post-order evaluation over the input graph marks every node whose value
// is a compile-time constant, then a rebuild from the roots collapses each
// marked node to a single Constant leaf. The rebuild never descends beneath
// a folded node, so the operands of a folded subexpression are not copied
// into the output arena -- which is what makes the pass a fixed point: a
// second run finds nothing left to fold and reproduces its input exactly.
type ConstantPropagation struct {
	Field field.Field
}

// Name identifies this pass.
func (ConstantPropagation) Name() string { return "constant-propagation" }

// Run rebuilds ir's graph with every foldable constant subexpression
// collapsed, preserving root order, segment and domain.
func (p ConstantPropagation) Run(ir *air.IR) (*air.IR, error) {
	f := p.Field
	if f == nil {
		f = field.Native
	}

	all := ir.Roots.All()
	rootIdx := make([]air.NodeIndex, len(all))

	for i, r := range all {
		rootIdx[i] = r.Node
	}

	eval := &constEvalVisitor{vals: make(map[air.NodeIndex]uint64), field: f}
	Run(PostOrder, eval, ir.Graph, rootIdx)

	rb := &constRebuildVisitor{
		out:   air.NewGraph(),
		remap: make(map[air.NodeIndex]air.NodeIndex),
		vals:  eval.vals,
	}
	Run(Manual, rb, ir.Graph, rootIdx)

	var newRoots air.RootSet

	for _, r := range ir.Roots.AllBoundary() {
		newRoots.AddBoundary(air.Root{Segment: r.Segment, Node: rb.remap[r.Node], Domain: r.Domain})
	}

	for _, r := range ir.Roots.AllIntegrity() {
		newRoots.AddIntegrity(air.Root{Segment: r.Segment, Node: rb.remap[r.Node], Domain: r.Domain})
	}

	// Folding invents Constant leaves whose values need not appear in the
	// input pool (lowering may have run with folding disabled), so the pool
	// is recomputed over the rebuilt graph: existing entries keep their
	// indices, newly-folded values are appended in first-sighting order.
	newRootIdx := make([]air.NodeIndex, 0, len(rootIdx))
	for _, r := range newRoots.All() {
		newRootIdx = append(newRootIdx, r.Node)
	}

	return &air.IR{
		Graph:           rb.out,
		Roots:           newRoots,
		MainWidth:       ir.MainWidth,
		AuxWidth:        ir.AuxWidth,
		PublicInputs:    ir.PublicInputs,
		NumRandomValues: ir.NumRandomValues,
		Constants:       air.ConstantSet(rb.out, ir.Constants, newRootIdx),
	}, nil
}

// constEvalVisitor records, bottom-up, the value of every node that is a
// compile-time constant. It never mutates the graph it walks. The presence
// of an entry in vals is the constancy predicate; a node whose operands are
// not all constant simply gets no entry.
type constEvalVisitor struct {
	vals  map[air.NodeIndex]uint64
	field field.Field
}

func (v *constEvalVisitor) Visit(g *air.Graph, idx air.NodeIndex) {
	if _, done := v.vals[idx]; done {
		return
	}

	op := g.Node(idx).Op

	switch op.Kind {
	case air.OpValue:
		if op.Leaf.Kind == air.ConstantKind {
			v.vals[idx] = op.Leaf.Constant
		}

	case air.OpAdd:
		v.evalBinary(idx, op.LHS, op.RHS, v.field.Add)

	case air.OpSub:
		v.evalBinary(idx, op.LHS, op.RHS, v.field.Sub)

	case air.OpMul:
		v.evalBinary(idx, op.LHS, op.RHS, v.field.Mul)

	case air.OpExp:
		if bc, ok := v.vals[op.Base]; ok {
			v.vals[idx] = v.field.Exp(bc, op.Exponent)
		}

	default:
		panic("pass: unknown operation kind in constant propagation")
	}
}

func (v *constEvalVisitor) evalBinary(idx, l, r air.NodeIndex, apply func(uint64, uint64) uint64) {
	lc, lok := v.vals[l]
	rc, rok := v.vals[r]

	if lok && rok {
		v.vals[idx] = apply(lc, rc)
	}
}

// constRebuildVisitor rebuilds the graph from each root in Manual order,
// recursing on its own terms: a node proved constant by the evaluation
// phase becomes a single Constant leaf and its operands are skipped
// entirely.
type constRebuildVisitor struct {
	out   *air.Graph
	remap map[air.NodeIndex]air.NodeIndex
	vals  map[air.NodeIndex]uint64
}

func (v *constRebuildVisitor) Visit(g *air.Graph, idx air.NodeIndex) {
	v.rebuild(g, idx)
}

func (v *constRebuildVisitor) rebuild(g *air.Graph, idx air.NodeIndex) air.NodeIndex {
	if n, done := v.remap[idx]; done {
		return n
	}

	var n air.NodeIndex

	if c, ok := v.vals[idx]; ok {
		n = v.out.InsertValue(air.NewConstant(c))
	} else {
		op := g.Node(idx).Op

		switch op.Kind {
		case air.OpValue:
			n = v.out.InsertValue(op.Leaf)
		case air.OpAdd:
			n = v.out.InsertAdd(v.rebuild(g, op.LHS), v.rebuild(g, op.RHS))
		case air.OpSub:
			n = v.out.InsertSub(v.rebuild(g, op.LHS), v.rebuild(g, op.RHS))
		case air.OpMul:
			n = v.out.InsertMul(v.rebuild(g, op.LHS), v.rebuild(g, op.RHS))
		case air.OpExp:
			n = v.out.InsertExp(v.rebuild(g, op.Base), op.Exponent)
		default:
			panic("pass: unknown operation kind in constant propagation")
		}
	}

	v.remap[idx] = n

	return n
}
