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

// ConstantSet computes the distinct set of 64-bit constants referenced
// anywhere beneath the given roots: the union of named-constant values
// (already flattened across vectors/matrices by the caller, in declaration
// order) with inline-constant leaf values and Exp exponents encountered
// while walking the roots (in root declaration order), preserving insertion
// order on first sighting.
func ConstantSet(g *Graph, namedConstants []uint64, roots []NodeIndex) []uint64 {
	seen := make(map[uint64]bool)
	ordered := make([]uint64, 0, len(namedConstants))

	record := func(c uint64) {
		if !seen[c] {
			seen[c] = true
			ordered = append(ordered, c)
		}
	}

	for _, c := range namedConstants {
		record(c)
	}

	for _, root := range roots {
		g.walkConstants(root, record)
	}

	return ordered
}

func (g *Graph) walkConstants(idx NodeIndex, record func(uint64)) {
	op := g.Node(idx).Op

	switch op.Kind {
	case OpValue:
		if op.Leaf.Kind == ConstantKind {
			record(op.Leaf.Constant)
		}
	case OpAdd, OpSub, OpMul:
		g.walkConstants(op.LHS, record)
		g.walkConstants(op.RHS, record)
	case OpExp:
		record(op.Exponent)
		g.walkConstants(op.Base, record)
	default:
		panic("air: unknown operation kind in walkConstants")
	}
}
