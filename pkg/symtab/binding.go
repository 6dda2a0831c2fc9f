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

package symtab

import (
	"github.com/0xPolygonMiden/air-dsl/pkg/air"
	"github.com/0xPolygonMiden/air-dsl/pkg/ast"
)

// Kind identifies which of the six binding kinds a name resolves to.
type Kind uint8

const (
	// KindConstant is a `const` declaration.
	KindConstant Kind = iota
	// KindVariable is a transient `let` binding, only ever held in a Scope.
	KindVariable
	// KindTraceColumn is a single column, a contiguous run of columns, or
	// a whole named group of columns in the main or auxiliary segment.
	KindTraceColumn
	// KindPublicInput is a `public_inputs` entry.
	KindPublicInput
	// KindPeriodicColumn is a `periodic_columns` entry.
	KindPeriodicColumn
	// KindRandomValue is a `random_values` entry (or block member).
	KindRandomValue
)

// TraceColumnBinding locates a trace column group within its segment: Start
// is the first column index, Len is the number of contiguous columns it
// spans (1 for a single column).
type TraceColumnBinding struct {
	Segment air.Segment
	Start   uint
	Len     uint
}

// PublicInputBinding records a public input's declared length and its
// position among the declared public inputs (0 for the first declared).
type PublicInputBinding struct {
	Length uint
	Index  uint
}

// PeriodicColumnBinding records a periodic column's table index (used as
// air.Value.Column for PeriodicColumnKind leaves) and its cycle length.
type PeriodicColumnBinding struct {
	TableIndex uint
	CycleLen   uint
	Values     []uint64
}

// RandomValueBinding records a random-value name's base index and how many
// consecutive indices it occupies (1 for a scalar declaration, Count for a
// block declaration).
type RandomValueBinding struct {
	BaseIndex uint
	Count     uint
}

// Binding is the tagged union of everything a declared name can mean. Only
// the field selected by Kind is meaningful.
type Binding struct {
	Kind Kind

	Constant       ast.ConstantValue
	Variable       ast.VariableType
	TraceColumn    TraceColumnBinding
	PublicInput    PublicInputBinding
	PeriodicColumn PeriodicColumnBinding
	RandomValue    RandomValueBinding
}
