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
	"reflect"
	"testing"

	"github.com/0xPolygonMiden/air-dsl/pkg/air"
	"github.com/0xPolygonMiden/air-dsl/pkg/field"
)

type recordingVisitor struct {
	visited []air.NodeIndex
}

func (r *recordingVisitor) Visit(_ *air.Graph, idx air.NodeIndex) {
	r.visited = append(r.visited, idx)
}

func buildSumGraph(t *testing.T) (*air.Graph, air.NodeIndex, air.NodeIndex, air.NodeIndex) {
	t.Helper()

	g := air.NewGraph()
	a := g.InsertValue(air.NewTraceElement(air.MainSegment, 0, 0))
	b := g.InsertValue(air.NewTraceElement(air.MainSegment, 1, 0))
	sum := g.InsertAdd(a, b)

	return g, a, b, sum
}

func TestDepthFirstVisitsParentBeforeChildren(t *testing.T) {
	g, a, b, sum := buildSumGraph(t)

	v := &recordingVisitor{}
	Run(DepthFirst, v, g, []air.NodeIndex{sum})

	want := []air.NodeIndex{sum, a, b}
	if !reflect.DeepEqual(v.visited, want) {
		t.Fatalf("expected visit order %v, got %v", want, v.visited)
	}
}

func TestPostOrderVisitsChildrenBeforeParent(t *testing.T) {
	g, a, b, sum := buildSumGraph(t)

	v := &recordingVisitor{}
	Run(PostOrder, v, g, []air.NodeIndex{sum})

	want := []air.NodeIndex{a, b, sum}
	if !reflect.DeepEqual(v.visited, want) {
		t.Fatalf("expected visit order %v, got %v", want, v.visited)
	}
}

func TestManualVisitsOnlyRoots(t *testing.T) {
	g, _, _, sum := buildSumGraph(t)

	v := &recordingVisitor{}
	Run(Manual, v, g, []air.NodeIndex{sum})

	want := []air.NodeIndex{sum}
	if !reflect.DeepEqual(v.visited, want) {
		t.Fatalf("expected visit order %v, got %v", want, v.visited)
	}
}

func TestConstantPropagationFoldsConstantSubexpression(t *testing.T) {
	g := air.NewGraph()
	two := g.InsertValue(air.NewConstant(2))
	three := g.InsertValue(air.NewConstant(3))
	sum := g.InsertAdd(two, three)

	var roots air.RootSet
	roots.AddIntegrity(air.Root{Segment: air.MainSegment, Node: sum, Domain: air.ConstraintDomain{Kind: air.EveryRow}})

	ir := &air.IR{Graph: g, Roots: roots}

	out, err := (ConstantPropagation{Field: field.Native}).Run(ir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	newRoots := out.Roots.AllIntegrity()
	if len(newRoots) != 1 {
		t.Fatalf("expected 1 integrity root, got %d", len(newRoots))
	}

	node := out.Graph.Node(newRoots[0].Node)
	if node.Op.Kind != air.OpValue || node.Op.Leaf.Kind != air.ConstantKind || node.Op.Leaf.Constant != 5 {
		t.Fatalf("expected folded constant 5, got %+v", node.Op)
	}

	// The folded value is new to the graph; the pass must surface it in
	// the constant pool for the backends to reference.
	if !reflect.DeepEqual(out.Constants, []uint64{5}) {
		t.Fatalf("expected constant pool [5], got %v", out.Constants)
	}
}

func TestConstantPropagationIsIdempotent(t *testing.T) {
	// (a + (2*3))^2 folds to (a + 6)^2 on the first run; a second run must
	// reproduce that graph exactly -- constant folding is a fixed point.
	g := air.NewGraph()
	a := g.InsertValue(air.NewTraceElement(air.MainSegment, 0, 0))
	two := g.InsertValue(air.NewConstant(2))
	three := g.InsertValue(air.NewConstant(3))
	prod := g.InsertMul(two, three)
	sum := g.InsertAdd(a, prod)
	root := g.InsertExp(sum, 2)

	var roots air.RootSet
	roots.AddIntegrity(air.Root{Segment: air.MainSegment, Node: root, Domain: air.ConstraintDomain{Kind: air.EveryRow}})

	ir := &air.IR{Graph: g, Roots: roots}
	p := ConstantPropagation{Field: field.Native}

	once, err := p.Run(ir)
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}

	twice, err := p.Run(once)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}

	if once.Graph.Len() != twice.Graph.Len() {
		t.Fatalf("arena sizes differ after second run: %d vs %d", once.Graph.Len(), twice.Graph.Len())
	}

	r1 := once.Roots.All()
	r2 := twice.Roots.All()

	for i := range r1 {
		if r1[i] != r2[i] {
			t.Fatalf("root %d differs after second run: %+v vs %+v", i, r1[i], r2[i])
		}

		if once.Graph.Lisp(r1[i].Node) != twice.Graph.Lisp(r2[i].Node) {
			t.Fatalf("root %d expression changed after second run: %s vs %s",
				i, once.Graph.Lisp(r1[i].Node), twice.Graph.Lisp(r2[i].Node))
		}
	}

	if got := once.Graph.Lisp(r1[0].Node); got != "(^ (+ #0[main] 6) 2)" {
		t.Fatalf("expected (^ (+ #0[main] 6) 2), got %s", got)
	}

	if !reflect.DeepEqual(once.Constants, twice.Constants) {
		t.Fatalf("constant pools differ after second run: %v vs %v", once.Constants, twice.Constants)
	}
}

func TestConstantPropagationPreservesNonConstantStructure(t *testing.T) {
	g, _, _, sum := buildSumGraph(t)

	var roots air.RootSet
	roots.AddIntegrity(air.Root{Segment: air.MainSegment, Node: sum, Domain: air.ConstraintDomain{Kind: air.EveryRow}})

	ir := &air.IR{Graph: g, Roots: roots}

	out, err := (ConstantPropagation{}).Run(ir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	newRoots := out.Roots.AllIntegrity()
	node := out.Graph.Node(newRoots[0].Node)

	if node.Op.Kind != air.OpAdd {
		t.Fatalf("expected the Add node to survive unfolded, got %+v", node.Op)
	}
}
