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

// Root is a single constraint root: a node designated as the tip of a
// constraint expression, together with the segment it belongs to and the
// domain on which it must vanish.
type Root struct {
	Segment Segment
	Node    NodeIndex
	Domain  ConstraintDomain
}

// RootSet is the ordered collection of constraint roots produced by
// lowering a module, partitioned into boundary and integrity roots. Within
// each partition, roots are kept in declaration order; AddBoundary and
// AddIntegrity are the only mutators, so that order.
type RootSet struct {
	boundary  []Root
	integrity []Root
}

// AddBoundary appends a new boundary root, in declaration order.
func (r *RootSet) AddBoundary(root Root) {
	r.boundary = append(r.boundary, root)
}

// AddIntegrity appends a new integrity root, in declaration order.
func (r *RootSet) AddIntegrity(root Root) {
	r.integrity = append(r.integrity, root)
}

// Boundary returns the boundary roots belonging to the given segment, in
// declaration order.
func (r *RootSet) Boundary(segment Segment) []Root {
	return filterBySegment(r.boundary, segment)
}

// Integrity returns the integrity roots belonging to the given segment, in
// declaration order.
func (r *RootSet) Integrity(segment Segment) []Root {
	return filterBySegment(r.integrity, segment)
}

// AllBoundary returns every boundary root across all segments, in
// declaration order.
func (r *RootSet) AllBoundary() []Root {
	return r.boundary
}

// AllIntegrity returns every integrity root across all segments, in
// declaration order.
func (r *RootSet) AllIntegrity() []Root {
	return r.integrity
}

// All returns the concatenation of boundary roots and integrity roots, in
// declaration order -- the traversal order the pass framework uses to seed
// its root set.
func (r *RootSet) All() []Root {
	all := make([]Root, 0, len(r.boundary)+len(r.integrity))
	all = append(all, r.boundary...)
	all = append(all, r.integrity...)

	return all
}

func filterBySegment(roots []Root, segment Segment) []Root {
	var out []Root

	for _, root := range roots {
		if root.Segment == segment {
			out = append(out, root)
		}
	}

	return out
}
