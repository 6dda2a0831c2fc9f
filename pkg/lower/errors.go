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

package lower

import (
	"errors"
	"fmt"
)

// ErrComprehensionLengthMismatch is returned when a list comprehension's
// iterables do not share a common length.
var ErrComprehensionLengthMismatch = errors.New("lower: list comprehension iterables disagree in length")

// ErrMissingBoundaryDomain is returned when a boundary constraint's equation
// contains no `.first`/`.last` access to anchor it to a domain.
var ErrMissingBoundaryDomain = errors.New("lower: boundary constraint has no .first/.last access")

func comprehensionLengthMismatch(names []string, lengths []uint) error {
	return fmt.Errorf("%w: %v have lengths %v", ErrComprehensionLengthMismatch, names, lengths)
}
