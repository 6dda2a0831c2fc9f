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

// ExprKind identifies which variant of Expression a node represents.
type ExprKind uint8

const (
	// ExprLiteral is an inline constant.
	ExprLiteral ExprKind = iota
	// ExprElem references an identifier at the current row ("x").
	ExprElem
	// ExprNextElem references an identifier at the next row ("x'").
	ExprNextElem
	// ExprIndexed references a single element of a vector-shaped
	// identifier ("x[i]").
	ExprIndexed
	// ExprBoundary references the first or last row of a column
	// ("x.first" / "x.last").
	ExprBoundary
	// ExprSlice references a contiguous sub-range of a vector-shaped
	// identifier ("x[a..b]").
	ExprSlice
	// ExprBinary is a binary arithmetic or boolean-sugar operation.
	ExprBinary
	// ExprNot is boolean negation ("!a").
	ExprNot
	// ExprExp is exponentiation by a compile-time constant ("x^k").
	ExprExp
	// ExprListComprehension is a list comprehension.
	ExprListComprehension
)

// BinaryOp identifies which binary operator an ExprBinary node applies.
type BinaryOp uint8

const (
	// OpAdd is arithmetic addition.
	OpAdd BinaryOp = iota
	// OpSub is arithmetic subtraction.
	OpSub
	// OpMul is arithmetic multiplication.
	OpMul
	// OpAnd is the boolean-sugar "&" operator.
	OpAnd
	// OpOr is the boolean-sugar "|" operator.
	OpOr
)

// Boundary identifies which end of the trace a boundary access refers to.
type Boundary uint8

const (
	// First is the first row of the trace.
	First Boundary = iota
	// Last is the last row of the trace.
	Last
)

// Expression is a node of the surface expression tree. Only one of the
// kind-specific fields is meaningful, selected by Kind.
type Expression struct {
	Kind Kind

	Literal  uint64
	Name     Identifier
	Index    uint
	Boundary Boundary
	Slice    Range

	Op       BinaryOp
	LHS, RHS *Expression

	Arg *Expression

	Power uint64

	Comprehension *ListComprehension
}

// Kind is an alias retained for readability at call sites (ast.Kind reads
// better than ast.ExprKind in switch statements).
type Kind = ExprKind

// Literal constructs an inline-constant expression.
func Literal(v uint64) Expression { return Expression{Kind: ExprLiteral, Literal: v} }

// Elem constructs a current-row identifier reference.
func Elem(name Identifier) Expression { return Expression{Kind: ExprElem, Name: name} }

// NextElem constructs a next-row identifier reference.
func NextElem(name Identifier) Expression { return Expression{Kind: ExprNextElem, Name: name} }

// Indexed constructs a single-element index into a vector-shaped identifier.
func Indexed(name Identifier, index uint) Expression {
	return Expression{Kind: ExprIndexed, Name: name, Index: index}
}

// BoundaryAccess constructs a first/last row access.
func BoundaryAccess(name Identifier, b Boundary) Expression {
	return Expression{Kind: ExprBoundary, Name: name, Boundary: b}
}

// SliceExpr constructs a contiguous-range access into a vector-shaped
// identifier.
func SliceExpr(name Identifier, r Range) Expression {
	return Expression{Kind: ExprSlice, Name: name, Slice: r}
}

// Binary constructs a binary operation.
func Binary(op BinaryOp, lhs, rhs Expression) Expression {
	return Expression{Kind: ExprBinary, Op: op, LHS: &lhs, RHS: &rhs}
}

// Not constructs a boolean negation.
func Not(arg Expression) Expression {
	return Expression{Kind: ExprNot, Arg: &arg}
}

// Exp constructs an exponentiation by a compile-time constant.
func Exp(base Expression, power uint64) Expression {
	return Expression{Kind: ExprExp, Arg: &base, Power: power}
}

// ListComprehensionExpr constructs a list-comprehension expression.
func ListComprehensionExpr(lc ListComprehension) Expression {
	return Expression{Kind: ExprListComprehension, Comprehension: &lc}
}

// Iterable is one of the three forms a list-comprehension range may take:
// an identifier bound to a vector-shaped entity, a numeric range, or a
// slice of a named vector-shaped identifier.
type Iterable struct {
	Kind       IterableKind
	Identifier Identifier
	Range      Range
	SliceName  Identifier
	SliceRange Range
}

// IterableKind identifies which variant of Iterable a value holds.
type IterableKind uint8

const (
	// IterIdentifier iterates over a vector-shaped identifier.
	IterIdentifier IterableKind = iota
	// IterRange iterates over a numeric range.
	IterRange
	// IterSlice iterates over a sub-range of a named vector-shaped
	// identifier.
	IterSlice
)

// IterableIdent constructs an identifier iterable.
func IterableIdent(name Identifier) Iterable {
	return Iterable{Kind: IterIdentifier, Identifier: name}
}

// IterableRange constructs a numeric-range iterable.
func IterableRange(r Range) Iterable {
	return Iterable{Kind: IterRange, Range: r}
}

// IterableSlice constructs a sliced-identifier iterable.
func IterableSlice(name Identifier, r Range) Iterable {
	return Iterable{Kind: IterSlice, SliceName: name, SliceRange: r}
}

// Len returns the number of elements this iterable is declared to produce,
// when that can be determined without consulting the symbol table (Range
// and Slice); IterIdentifier's length depends on the bound entity's shape
// and is resolved by the caller.
func (it Iterable) Len() (uint, bool) {
	switch it.Kind {
	case IterRange:
		return it.Range.Len(), true
	case IterSlice:
		return it.SliceRange.Len(), true
	default:
		return 0, false
	}
}

// ComprehensionBinding pairs one comprehension-bound variable with the
// iterable it ranges over. Binding order within a comprehension is
// positional: ListComprehension.Context[i] binds its Name to the i'th
// iterable.
type ComprehensionBinding struct {
	Name     Identifier
	Iterable Iterable
}

// ListComprehension is "[expr for (x1, ..., xn) in (it1, ..., itn)]".
type ListComprehension struct {
	Expression *Expression
	Context    []ComprehensionBinding
}
