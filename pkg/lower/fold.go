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

import "github.com/0xPolygonMiden/air-dsl/pkg/air"

// constOf reports whether idx names a constant leaf, and its value.
func constOf(g *air.Graph, idx air.NodeIndex) (uint64, bool) {
	op := g.Node(idx).Op
	if op.Kind == air.OpValue && op.Leaf.Kind == air.ConstantKind {
		return op.Leaf.Constant, true
	}

	return 0, false
}

// foldableAdd inserts l+r, replacing it with a single Constant leaf when
// cfg.ConstantFold is set and both operands are already constants (spec.md
// §4.4's constant folding during lowering).
func foldableAdd(g *air.Graph, cfg Config, l, r air.NodeIndex) air.NodeIndex {
	if cfg.ConstantFold {
		if lc, ok := constOf(g, l); ok {
			if rc, ok := constOf(g, r); ok {
				return g.InsertValue(air.NewConstant(cfg.resolveField().Add(lc, rc)))
			}
		}
	}

	return g.InsertAdd(l, r)
}

// foldableSub inserts l-r, with the same constant-folding behaviour as
// foldableAdd.
func foldableSub(g *air.Graph, cfg Config, l, r air.NodeIndex) air.NodeIndex {
	if cfg.ConstantFold {
		if lc, ok := constOf(g, l); ok {
			if rc, ok := constOf(g, r); ok {
				return g.InsertValue(air.NewConstant(cfg.resolveField().Sub(lc, rc)))
			}
		}
	}

	return g.InsertSub(l, r)
}

// foldableMul inserts l*r, with the same constant-folding behaviour as
// foldableAdd.
func foldableMul(g *air.Graph, cfg Config, l, r air.NodeIndex) air.NodeIndex {
	if cfg.ConstantFold {
		if lc, ok := constOf(g, l); ok {
			if rc, ok := constOf(g, r); ok {
				return g.InsertValue(air.NewConstant(cfg.resolveField().Mul(lc, rc)))
			}
		}
	}

	return g.InsertMul(l, r)
}

// foldableExp inserts base^k. Graph.InsertExp already canonicalises the two
// degenerate exponents (k == 0 to Constant(1), k == 1 to the base) per
// spec.md §9 unconditionally; beyond that, a constant base is folded to a
// single Constant leaf whenever cfg.ConstantFold is set.
func foldableExp(g *air.Graph, cfg Config, base air.NodeIndex, k uint64) air.NodeIndex {
	if cfg.ConstantFold && k >= 2 {
		if bc, ok := constOf(g, base); ok {
			return g.InsertValue(air.NewConstant(cfg.resolveField().Exp(bc, k)))
		}
	}

	return g.InsertExp(base, k)
}
