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

import "errors"

// Sentinel error kinds surfaced by the core.  Callers distinguish them with
// errors.Is; the concrete error returned also carries the offending
// identifier or domain pair in its message.
var (
	// ErrIncompatibleConstraintDomains is returned when merging two
	// constraint domains that cannot coexist in one expression (e.g.
	// FirstRow with LastRow, or a boundary domain with an integrity one).
	ErrIncompatibleConstraintDomains = errors.New("incompatible constraint domains")
	// ErrPublicInputInIntegrity is returned by lowering when an integrity
	// constraint references a public input (Graph.NodeDetails panics on
	// such a leaf instead).
	ErrPublicInputInIntegrity = errors.New("public input referenced in integrity constraint")
	// ErrPeriodicColumnInBoundary is returned by lowering when a boundary
	// constraint references a periodic column (Graph.NodeDetails panics on
	// such a leaf instead).
	ErrPeriodicColumnInBoundary = errors.New("periodic column referenced in boundary constraint")
	// ErrInvalidTraceAccess is returned for a next-row trace reference
	// inside a boundary constraint, or an out-of-range column/row access.
	ErrInvalidTraceAccess = errors.New("invalid trace access")
	// ErrInvalidPeriodicColumnLength is returned when a periodic column's
	// cycle length is not a power of two >= 2.
	ErrInvalidPeriodicColumnLength = errors.New("periodic column cycle length must be a power of two >= 2")
)
