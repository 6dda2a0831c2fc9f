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

// PublicInputInfo records a public input's declared name and length, in the
// order the backend contract reports them.
type PublicInputInfo struct {
	Name   string
	Length uint
}

// IR is the finished compilation product that package lower hands to a
// backend: the algebraic graph, its constraint roots, and the module-level
// metadata (segment widths, public inputs, random value count, constant
// pool) a code generator needs without having to re-derive any of it from
// the graph itself. An IR is owned exclusively by its constructor until
// consumed by a backend -- see the specification's concurrency model; there
// is no synchronisation here because none is needed.
type IR struct {
	Graph *Graph
	Roots RootSet

	MainWidth uint16
	AuxWidth  uint16

	PublicInputs    []PublicInputInfo
	NumRandomValues uint16

	// Constants is the backend's flat constant pool, in first-sighting
	// order (see ConstantSet).
	Constants []uint64
}

// SegmentWidths returns the main width at index 0 and the aux width at
// index 1, per the backend contract.
func (ir *IR) SegmentWidths() [2]uint16 {
	return [2]uint16{ir.MainWidth, ir.AuxWidth}
}

// BoundaryConstraints returns the boundary roots belonging to segment, in
// declaration order.
func (ir *IR) BoundaryConstraints(segment Segment) []Root {
	return ir.Roots.Boundary(segment)
}

// IntegrityConstraints returns the integrity roots belonging to segment, in
// declaration order.
func (ir *IR) IntegrityConstraints(segment Segment) []Root {
	return ir.Roots.Integrity(segment)
}

// NumPublicInputValues returns the total number of scalar public input
// values across every declared public input, in declaration order -- the
// first term of the JSON backend's num_variables.
func (ir *IR) NumPublicInputValues() uint {
	var total uint
	for _, p := range ir.PublicInputs {
		total += p.Length
	}

	return total
}
