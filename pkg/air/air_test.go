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

import "testing"

func TestHashConsingStructuralUniqueness(t *testing.T) {
	g := NewGraph()
	a := g.InsertValue(NewTraceElement(MainSegment, 0, 0))
	i1 := g.InsertAdd(a, a)
	i2 := g.InsertAdd(a, a)

	if i1 != i2 {
		t.Fatalf("expected insert(Add(a,a)) to be idempotent, got %d and %d", i1, i2)
	}

	if g.Len() != 2 {
		t.Fatalf("expected 2 nodes in arena, got %d", g.Len())
	}

	// distinct operations must get distinct indices
	b := g.InsertValue(NewTraceElement(MainSegment, 1, 0))
	i3 := g.InsertAdd(a, b)

	if i3 == i1 {
		t.Fatalf("expected Add(a,b) to differ from Add(a,a)")
	}
}

func TestAcyclicityByIndex(t *testing.T) {
	g := NewGraph()
	a := g.InsertValue(NewTraceElement(MainSegment, 0, 0))
	b := g.InsertValue(NewTraceElement(MainSegment, 1, 0))
	add := g.InsertAdd(a, b)

	for _, child := range g.Children(add) {
		if child >= add {
			t.Fatalf("child %d does not precede parent %d", child, add)
		}
	}
}

func TestDegreeLocality(t *testing.T) {
	g := NewGraph()
	a := g.InsertValue(NewTraceElement(MainSegment, 0, 0))
	b := g.InsertValue(NewTraceElement(MainSegment, 1, 0))
	add := g.InsertAdd(a, b)

	dA := g.Degree(a)
	dB := g.Degree(b)
	dAdd := g.Degree(add)

	want := dA.Base
	if dB.Base > want {
		want = dB.Base
	}

	if dAdd.Base != want {
		t.Fatalf("expected degree(Add(a,b)).base == max(%d,%d), got %d", dA.Base, dB.Base, dAdd.Base)
	}
}

func TestMultiplicationDegreeAdds(t *testing.T) {
	g := NewGraph()
	a := g.InsertValue(NewTraceElement(MainSegment, 0, 0))
	b := g.InsertValue(NewTraceElement(MainSegment, 1, 0))
	mul := g.InsertMul(a, b)

	dA := g.Degree(a)
	dB := g.Degree(b)
	dMul := g.Degree(mul)

	if dMul.Base != dA.Base+dB.Base {
		t.Fatalf("expected degree(Mul(a,b)).base == %d+%d, got %d", dA.Base, dB.Base, dMul.Base)
	}
}

func TestDegreeOfPeriodicColumnCyclesUnion(t *testing.T) {
	g := NewGraph()
	p1 := g.InsertValue(NewPeriodicColumn(0, 4))
	p2 := g.InsertValue(NewPeriodicColumn(1, 8))
	add := g.InsertAdd(p1, p2)

	d := g.Degree(add)
	if len(d.Cycles) != 2 || d.Cycles[0] != 4 || d.Cycles[1] != 8 {
		t.Fatalf("expected cycles {0:4,1:8}, got %v", d.Cycles)
	}

	// effective degree = base(0) + (4-1) + (8-1)
	if d.Effective() != 10 {
		t.Fatalf("expected effective degree 10, got %d", d.Effective())
	}
}

func TestDegreeSharedPeriodicColumnRecordedOnce(t *testing.T) {
	g := NewGraph()
	p := g.InsertValue(NewPeriodicColumn(0, 4))
	mul := g.InsertMul(p, p)

	d := g.Degree(mul)
	if len(d.Cycles) != 1 || d.Cycles[0] != 4 {
		t.Fatalf("expected a single cycle entry, got %v", d.Cycles)
	}
}

func TestExpDegreeMultipliesByExponent(t *testing.T) {
	g := NewGraph()
	b := g.InsertValue(NewTraceElement(MainSegment, 0, 0))
	exp := g.InsertExp(b, 5)

	d := g.Degree(exp)
	if d.Base != 5 {
		t.Fatalf("expected degree 5, got %d", d.Base)
	}
}

func TestExpCanonicalisation(t *testing.T) {
	g := NewGraph()
	b := g.InsertValue(NewTraceElement(MainSegment, 0, 0))

	zero := g.InsertExp(b, 0)
	one := g.InsertValue(NewConstant(1))

	if zero != one {
		t.Fatalf("expected Exp(b,0) to canonicalise to Constant(1), got node %d vs %d", zero, one)
	}

	identity := g.InsertExp(b, 1)
	if identity != b {
		t.Fatalf("expected Exp(b,1) to canonicalise to b itself, got node %d vs %d", identity, b)
	}
}

func TestDomainMergeConflicts(t *testing.T) {
	first := ConstraintDomain{Kind: FirstRow}
	last := ConstraintDomain{Kind: LastRow}

	if _, err := first.Merge(last); err == nil {
		t.Fatalf("expected FirstRow/LastRow merge to fail")
	}

	every := ConstraintDomain{Kind: EveryRow}
	if _, err := first.Merge(every); err == nil {
		t.Fatalf("expected boundary/integrity merge to fail")
	}

	frame1 := NewEveryFrame(1)
	merged, err := every.Merge(frame1)
	if err != nil {
		t.Fatalf("expected EveryRow/EveryFrame(1) to merge, got error %v", err)
	}

	if merged.Kind != EveryFrame || merged.K != 1 {
		t.Fatalf("expected merged domain EveryFrame(1), got %v", merged)
	}
}

func TestNodeDetailsSegmentInference(t *testing.T) {
	g := NewGraph()
	main := g.InsertValue(NewTraceElement(MainSegment, 0, 0))
	aux := g.InsertValue(NewRandomValue(0))
	add := g.InsertAdd(main, aux)

	seg, _, err := g.NodeDetails(add, ConstraintDomain{Kind: EveryRow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if seg != AuxSegment {
		t.Fatalf("expected segment to widen to aux, got %v", seg)
	}
}

func TestConstantSetFirstSightingOrder(t *testing.T) {
	g := NewGraph()
	// const A = 1; const B = [0, 1]; const C = [[1, 2], [2, 0]]
	named := []uint64{1, 0, 1, 1, 2, 2, 0}
	five := g.InsertValue(NewConstant(5))

	got := ConstantSet(g, named, []NodeIndex{five})
	want := []uint64{1, 0, 2, 5}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestConstantSetIncludesExpExponent(t *testing.T) {
	g := NewGraph()
	b := g.InsertValue(NewTraceElement(MainSegment, 0, 0))
	exp := g.InsertExp(b, 5)

	got := ConstantSet(g, nil, []NodeIndex{exp})
	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("expected constant set {5}, got %v", got)
	}
}
