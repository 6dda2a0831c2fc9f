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

// Package lower translates parsed surface modules (package ast) into the
// algebraic graph (package air): it resolves identifiers through a symbol
// table, expands list comprehensions, desugars the boolean operators, folds
// constant subexpressions and assembles the ordered constraint roots a
// backend consumes.
package lower

import (
	"github.com/0xPolygonMiden/air-dsl/pkg/air"
	"github.com/0xPolygonMiden/air-dsl/pkg/field"
)

// Config controls the one real lowering-time decision point this
// specification exposes, following the shape of the teacher's own
// OptimisationConfig almost verbatim: a small struct of knobs, a set of
// precanned levels, and a default.
type Config struct {
	// ConstantFold enables inline constant folding of Add/Sub/Mul/Exp nodes
	// whose operands are both compile-time constants (spec.md §4.4). This is
	// independent of, and strictly weaker than, the standalone constant
	// propagation pass in package pass: lowering only folds what is
	// constant *as written*, while the pass folds whatever the graph makes
	// constant after lowering has finished.
	ConstantFold bool
	// DefaultDomain is the domain assigned to integrity constraints that
	// carry no explicit frame annotation: EveryRow, per spec.md §4.4.
	DefaultDomain air.ConstraintDomain
	// Field performs the constant arithmetic ConstantFold delegates to.
	// Defaults to field.Native when left unset (see resolveField).
	Field field.Field
}

func (c Config) resolveField() field.Field {
	if c.Field == nil {
		return field.Native
	}

	return c.Field
}

// OPTIMISATION_LEVELS provides a set of precanned lowering configurations.
// Level 0 disables inline constant folding (useful for inspecting the
// as-written graph); level 1 enables it.
//
//nolint:revive,stylecheck // naming matches the teacher's own
// OPTIMISATION_LEVELS / DEFAULT_OPTIMISATION_LEVEL convention verbatim.
var OPTIMISATION_LEVELS = []Config{
	{ConstantFold: false, DefaultDomain: air.ConstraintDomain{Kind: air.EveryRow}, Field: field.Native},
	{ConstantFold: true, DefaultDomain: air.ConstraintDomain{Kind: air.EveryRow}, Field: field.Native},
}

// DEFAULT_OPTIMISATION_LEVEL is the configuration used when a caller has no
// specific reason to choose otherwise.
//
//nolint:revive,stylecheck
var DEFAULT_OPTIMISATION_LEVEL = OPTIMISATION_LEVELS[1]
