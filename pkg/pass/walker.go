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

// Package pass implements the traversal engine and rewrite passes that run
// over a finished air.Graph: the three visit orders the specification names
// (manual, depth-first, post-order), ported from the original project's
// visitor trait, plus a standalone constant-propagation rewrite built on top of it.
package pass

import "github.com/0xPolygonMiden/air-dsl/pkg/air"

// Order selects how Run walks from a set of roots down to their leaves.
type Order uint8

const (
	// Manual visits each root directly, with no traversal into children --
	// for passes that recurse (or don't) on their own terms.
	Manual Order = iota
	// DepthFirst visits each node before its children, left-to-right.
	DepthFirst
	// PostOrder visits each node only after every node beneath it has been
	// visited.
	PostOrder
)

// Visitor is called once per node Run decides to visit.
type Visitor interface {
	Visit(g *air.Graph, idx air.NodeIndex)
}

// Run walks from roots in the given Order, calling v.Visit for each node
// encountered. Ported from the original project's visitor.rs Visit trait: a LIFO
// stack of pending nodes, with next_node/peek/visit_later corresponding to
// pop/peek/push here.
func Run(order Order, v Visitor, g *air.Graph, roots []air.NodeIndex) {
	switch order {
	case Manual:
		runManual(v, g, roots)
	case DepthFirst:
		runDepthFirst(v, g, roots)
	case PostOrder:
		runPostOrder(v, g, roots)
	default:
		panic("pass: unknown visit order")
	}
}

func runManual(v Visitor, g *air.Graph, roots []air.NodeIndex) {
	for _, root := range roots {
		v.Visit(g, root)
	}
}

// runDepthFirst visits a node immediately after popping it, having already
// pushed its children (reversed, so the left-most child is popped first).
func runDepthFirst(v Visitor, g *air.Graph, roots []air.NodeIndex) {
	for _, root := range roots {
		stack := []air.NodeIndex{root}

		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			children := g.Children(idx)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}

			v.Visit(g, idx)
		}
	}
}

// runPostOrder defers a node until every child beneath it has been visited:
// a peeked node with an unvisited child stays on the stack and pushes its
// children above it (reversed, so the left-most child is handled first);
// once every child has been visited, the next peek visits the node itself.
func runPostOrder(v Visitor, g *air.Graph, roots []air.NodeIndex) {
	for _, root := range roots {
		stack := []air.NodeIndex{root}
		visited := make(map[air.NodeIndex]bool)

		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			children := g.Children(idx)

			ready := true

			for _, child := range children {
				if !visited[child] {
					ready = false

					break
				}
			}

			if ready {
				v.Visit(g, idx)
				stack = stack[:len(stack)-1]
				visited[idx] = true
			} else {
				for i := len(children) - 1; i >= 0; i-- {
					stack = append(stack, children[i])
				}
			}
		}
	}
}
