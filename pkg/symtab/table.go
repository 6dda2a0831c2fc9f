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
	"fmt"

	"github.com/0xPolygonMiden/air-dsl/pkg/air"
	"github.com/0xPolygonMiden/air-dsl/pkg/ast"
)

// Table is the global symbol table for one module: every constant, public
// input, periodic column, random value, and trace column declaration, keyed
// by name. Names are unique across all binding kinds - a periodic column
// and a constant may not share a name, matching the surface language's one
// flat namespace. Table never holds Variable bindings directly; those live
// in a transient Scope layered on top (see scope.go).
type Table struct {
	bindings map[ast.Identifier]Binding

	publicInputOrder    []ast.Identifier
	periodicColumnOrder []ast.Identifier

	numRandomValues uint
	mainWidth       uint
	auxWidth        uint
}

// NewTable returns an empty symbol table.
func NewTable() *Table {
	return &Table{bindings: make(map[ast.Identifier]Binding)}
}

func (t *Table) declare(name ast.Identifier, b Binding) error {
	if _, exists := t.bindings[name]; exists {
		return DuplicateIdentifier(name)
	}

	t.bindings[name] = b

	return nil
}

// Lookup resolves a name declared directly in the table (constants, public
// inputs, periodic columns, random values, trace columns). It does not see
// Scope-local Variable bindings; callers resolving an expression inside a
// let-block should consult the Scope first and fall back to the Table.
func (t *Table) Lookup(name ast.Identifier) (Binding, error) {
	b, ok := t.bindings[name]
	if !ok {
		return Binding{}, UndeclaredIdentifier(name)
	}

	return b, nil
}

// DeclareConstant registers a `const` declaration.
func (t *Table) DeclareConstant(decl ast.ConstantDecl) error {
	return t.declare(decl.Name, Binding{Kind: KindConstant, Constant: decl.Value})
}

// DeclarePublicInput registers a `public_inputs` entry and assigns it the
// next position in public-input declaration order.
func (t *Table) DeclarePublicInput(decl ast.PublicInputDecl) error {
	b := Binding{
		Kind: KindPublicInput,
		PublicInput: PublicInputBinding{
			Length: decl.Length,
			Index:  uint(len(t.publicInputOrder)),
		},
	}

	if err := t.declare(decl.Name, b); err != nil {
		return err
	}

	t.publicInputOrder = append(t.publicInputOrder, decl.Name)

	return nil
}

// DeclarePeriodicColumn registers a `periodic_columns` entry, assigning it
// the next table index and validating that its cycle length is a power of
// two no smaller than two.
func (t *Table) DeclarePeriodicColumn(decl ast.PeriodicColumnDecl) error {
	cycleLen := uint(len(decl.Values))
	if cycleLen < 2 || cycleLen&(cycleLen-1) != 0 {
		return fmt.Errorf("%w: %q has length %d", air.ErrInvalidPeriodicColumnLength, decl.Name, cycleLen)
	}

	b := Binding{
		Kind: KindPeriodicColumn,
		PeriodicColumn: PeriodicColumnBinding{
			TableIndex: uint(len(t.periodicColumnOrder)),
			CycleLen:   cycleLen,
			Values:     decl.Values,
		},
	}

	if err := t.declare(decl.Name, b); err != nil {
		return err
	}

	t.periodicColumnOrder = append(t.periodicColumnOrder, decl.Name)

	return nil
}

// DeclareRandomValues registers a `random_values` block, assigning it the
// next Count consecutive indices.
func (t *Table) DeclareRandomValues(decl ast.RandomValuesDecl) error {
	base := t.numRandomValues

	b := Binding{
		Kind: KindRandomValue,
		RandomValue: RandomValueBinding{
			BaseIndex: base,
			Count:     decl.Count,
		},
	}

	if err := t.declare(decl.Name, b); err != nil {
		return err
	}

	t.numRandomValues += decl.Count

	return nil
}

// DeclareTraceColumns registers every group and member name in a
// `trace_columns` block, across both the main and auxiliary segments.
// Within a group, the group's own name (when non-empty) is bound to the
// whole contiguous run; each member name is additionally bound to its own
// single-column slot.
func (t *Table) DeclareTraceColumns(decl ast.TraceColumnsDecl) error {
	if err := t.declareTraceGroups(air.MainSegment, decl.Main, &t.mainWidth); err != nil {
		return err
	}

	return t.declareTraceGroups(air.AuxSegment, decl.Aux, &t.auxWidth)
}

func (t *Table) declareTraceGroups(segment air.Segment, groups []ast.TraceColumnGroup, width *uint) error {
	for _, group := range groups {
		start := *width
		length := uint(len(group.Members))

		if group.Name != "" {
			b := Binding{
				Kind:        KindTraceColumn,
				TraceColumn: TraceColumnBinding{Segment: segment, Start: start, Len: length},
			}
			if err := t.declare(group.Name, b); err != nil {
				return err
			}
		}

		for i, member := range group.Members {
			b := Binding{
				Kind:        KindTraceColumn,
				TraceColumn: TraceColumnBinding{Segment: segment, Start: start + uint(i), Len: 1},
			}
			if err := t.declare(member, b); err != nil {
				return err
			}
		}

		*width += length
	}

	return nil
}

// MainWidth returns the number of columns declared in the main segment.
func (t *Table) MainWidth() uint { return t.mainWidth }

// AuxWidth returns the number of columns declared in the auxiliary segment.
func (t *Table) AuxWidth() uint { return t.auxWidth }

// NumRandomValues returns the total count of random values declared across
// every `random_values` block.
func (t *Table) NumRandomValues() uint { return t.numRandomValues }

// PublicInputNames returns public input names in declaration order.
func (t *Table) PublicInputNames() []ast.Identifier {
	return t.publicInputOrder
}

// PeriodicColumnNames returns periodic column names in declaration order,
// which is also table-index order.
func (t *Table) PeriodicColumnNames() []ast.Identifier {
	return t.periodicColumnOrder
}

// DeclareModule registers every declaration in a module's header sections,
// in the order the spec requires them to appear: constants, public inputs,
// periodic columns, random values, then trace columns.
func (t *Table) DeclareModule(m *ast.Module) error {
	for _, c := range m.Constants {
		if err := t.DeclareConstant(c); err != nil {
			return err
		}
	}

	for _, p := range m.PublicInputs {
		if err := t.DeclarePublicInput(p); err != nil {
			return err
		}
	}

	for _, p := range m.PeriodicColumns {
		if err := t.DeclarePeriodicColumn(p); err != nil {
			return err
		}
	}

	for _, r := range m.RandomValues {
		if err := t.DeclareRandomValues(r); err != nil {
			return err
		}
	}

	return t.DeclareTraceColumns(m.TraceColumns)
}
