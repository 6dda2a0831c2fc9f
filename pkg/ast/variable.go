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

// VariableTypeKind identifies which shape a let-bound Variable has. The
// five variants mirror air-script-core's VariableType exactly (Scalar,
// Vector, Matrix, Tuple, ListComprehension).
type VariableTypeKind uint8

const (
	// VarScalar is a single expression.
	VarScalar VariableTypeKind = iota
	// VarVector is a flat sequence of expressions.
	VarVector
	// VarMatrix is a sequence of rows of expressions.
	VarMatrix
	// VarTuple is a fixed-arity sequence of expressions.
	VarTuple
	// VarListComprehension is a list comprehension.
	VarListComprehension
)

// VariableType is the value side of a let-binding.
type VariableType struct {
	Kind          VariableTypeKind
	Scalar        Expression
	Vector        []Expression
	Matrix        [][]Expression
	Tuple         []Expression
	Comprehension *ListComprehension
}

// Variable is a let-bound name together with its value.
type Variable struct {
	Name  Identifier
	Value VariableType
}
