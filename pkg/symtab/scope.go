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

import "github.com/0xPolygonMiden/air-dsl/pkg/ast"

// Scope holds the `let`-bound Variable names introduced within one
// constraint block, layered over the module's persistent Table. Unlike
// Table bindings, Scope bindings are transient: a Scope is built while
// lowering one boundary/integrity constraints block and discarded
// afterwards. Shadowing is rejected in both directions - a let name may not
// repeat an outer let name, nor any name already declared in the Table.
type Scope struct {
	table *Table
	vars  map[ast.Identifier]ast.VariableType
}

// NewScope returns a scope layered over table.
func NewScope(table *Table) *Scope {
	return &Scope{table: table, vars: make(map[ast.Identifier]ast.VariableType)}
}

// Bind introduces a new let-bound variable. It fails if name already names
// a variable in this scope or any binding in the underlying table.
func (s *Scope) Bind(v ast.Variable) error {
	if _, exists := s.vars[v.Name]; exists {
		return DuplicateIdentifier(v.Name)
	}

	if _, exists := s.table.bindings[v.Name]; exists {
		return DuplicateIdentifier(v.Name)
	}

	s.vars[v.Name] = v.Value

	return nil
}

// Resolve looks up name, preferring a Scope-local variable binding and
// falling back to the underlying Table.
func (s *Scope) Resolve(name ast.Identifier) (Binding, error) {
	if v, ok := s.vars[name]; ok {
		return Binding{Kind: KindVariable, Variable: v}, nil
	}

	return s.table.Lookup(name)
}

// ChildWithBindings returns a new Scope layered on s, additionally binding
// the given names (as transient scalar variables) without mutating s. It is
// used to give each element of a list comprehension its own positionally
// bound names, one Scope per iteration, so that the same comprehension
// variable name can be reused across iterations without tripping the
// shadowing check: each call starts from s's bindings afresh rather than
// accumulating into a single shared Scope.
func (s *Scope) ChildWithBindings(bindings map[ast.Identifier]ast.VariableType) (*Scope, error) {
	merged := make(map[ast.Identifier]ast.VariableType, len(s.vars)+len(bindings))
	for k, v := range s.vars {
		merged[k] = v
	}

	for k, v := range bindings {
		if _, exists := s.vars[k]; exists {
			return nil, DuplicateIdentifier(k)
		}

		if _, exists := s.table.bindings[k]; exists {
			return nil, DuplicateIdentifier(k)
		}

		merged[k] = v
	}

	return &Scope{table: s.table, vars: merged}, nil
}
