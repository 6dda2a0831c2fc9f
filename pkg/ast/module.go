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

package ast

// ConstantValueKind identifies the shape of a declared constant.
type ConstantValueKind uint8

const (
	// ConstScalar is a single 64-bit value.
	ConstScalar ConstantValueKind = iota
	// ConstVector is a flat sequence of 64-bit values.
	ConstVector
	// ConstMatrix is a sequence of rows of 64-bit values.
	ConstMatrix
)

// ConstantValue is the value side of a `const` declaration.
type ConstantValue struct {
	Kind   ConstantValueKind
	Scalar uint64
	Vector []uint64
	Matrix [][]uint64
}

// Flatten returns every 64-bit value contained in this constant, in
// row-major order for a matrix.
func (v ConstantValue) Flatten() []uint64 {
	switch v.Kind {
	case ConstScalar:
		return []uint64{v.Scalar}
	case ConstVector:
		return v.Vector
	case ConstMatrix:
		var out []uint64
		for _, row := range v.Matrix {
			out = append(out, row...)
		}

		return out
	default:
		panic("ast: unknown constant value kind")
	}
}

// ConstantDecl declares a named immediate value.
type ConstantDecl struct {
	Name  Identifier
	Value ConstantValue
}

// PublicInputDecl declares a named vector of public values of a fixed
// length.
type PublicInputDecl struct {
	Name   Identifier
	Length uint
}

// PeriodicColumnDecl declares a named column whose values repeat with a
// fixed power-of-two cycle length (the length of Values).
type PeriodicColumnDecl struct {
	Name   Identifier
	Values []uint64
}

// RandomValuesDecl declares a block of values drawn from verifier
// randomness, addressable by index.
type RandomValuesDecl struct {
	Name  Identifier
	Count uint
}

// TraceColumnGroup declares a contiguous run of one or more trace columns
// within one segment. Members are individually addressable by name; when
// Name is non-empty the whole run is additionally addressable as a single
// group binding (spec's "a binding may be a single column, a contiguous
// range, or a whole group"). A standalone column is simply a group with one
// Member and an empty Name.
type TraceColumnGroup struct {
	Name    Identifier
	Members []Identifier
}

// TraceColumnsDecl declares the main and auxiliary trace segments.
type TraceColumnsDecl struct {
	Main []TraceColumnGroup
	Aux  []TraceColumnGroup
}

// StmtKind identifies which kind of statement appears in a constraint
// block.
type StmtKind uint8

const (
	// StmtLet is a `let name = expr` local binding.
	StmtLet StmtKind = iota
	// StmtEnforce is an `enf lhs = rhs [when cond]` constraint.
	StmtEnforce
)

// Statement is a single statement within a boundary or integrity
// constraints block.
type Statement struct {
	Kind StmtKind

	// Let holds the binding when Kind == StmtLet.
	Let Variable

	// Enforce holds the equation (and optional selector) when
	// Kind == StmtEnforce.
	LHS, RHS Expression
	When     *Expression
}

// LetStatement constructs a `let` statement.
func LetStatement(v Variable) Statement {
	return Statement{Kind: StmtLet, Let: v}
}

// EnforceStatement constructs an `enf lhs = rhs [when cond]` statement.
func EnforceStatement(lhs, rhs Expression, when *Expression) Statement {
	return Statement{Kind: StmtEnforce, LHS: lhs, RHS: rhs, When: when}
}

// Module is a single `def Name` surface module: its declared bindings and
// its boundary / integrity constraint blocks.
type Module struct {
	Name string

	Constants       []ConstantDecl
	PublicInputs    []PublicInputDecl
	PeriodicColumns []PeriodicColumnDecl
	RandomValues    []RandomValuesDecl
	TraceColumns    TraceColumnsDecl

	BoundaryConstraints  []Statement
	IntegrityConstraints []Statement
}
