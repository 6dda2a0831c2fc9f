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

// Package ast defines the surface syntax tree that lexing and grammar
// parsing (external collaborators, out of scope for this module) are
// expected to produce, and which package lower consumes. It carries no
// behaviour of its own beyond the occasional structural validity check.
package ast

// Identifier is a non-empty surface-language name.
type Identifier = string

// Range is a half-open numeric range [Start, End), as used both by a
// standalone range iterable (e.g. "0..5") and by a column slice (e.g.
// "z[1..6]"). Its Len is End-Start.
type Range struct {
	Start uint
	End   uint
}

// Len returns the number of elements in the range.
func (r Range) Len() uint {
	return r.End - r.Start
}
