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
	"errors"
	"fmt"
)

// ErrDuplicateIdentifier is returned when a name is declared a second time,
// either at the global table level or by a let-binding that shadows an
// outer name. The surface language has no shadowing: every identifier, of
// whatever kind, is unique within its reach.
var ErrDuplicateIdentifier = errors.New("symtab: duplicate identifier")

// ErrUndeclaredIdentifier is returned when an expression references a name
// that was never declared.
var ErrUndeclaredIdentifier = errors.New("symtab: undeclared identifier")

// ErrTypeMismatch is returned when a name resolves to a binding kind that
// cannot satisfy the context it was used in (e.g. indexing a scalar
// constant, or taking the next-row `'` of a constant).
var ErrTypeMismatch = errors.New("symtab: type mismatch")

// DuplicateIdentifier wraps ErrDuplicateIdentifier with the offending name.
func DuplicateIdentifier(name string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateIdentifier, name)
}

// UndeclaredIdentifier wraps ErrUndeclaredIdentifier with the offending name.
func UndeclaredIdentifier(name string) error {
	return fmt.Errorf("%w: %q", ErrUndeclaredIdentifier, name)
}

// TypeMismatch wraps ErrTypeMismatch with the offending name and a short
// description of what was expected.
func TypeMismatch(name, want string) error {
	return fmt.Errorf("%w: %q is not %s", ErrTypeMismatch, name, want)
}
