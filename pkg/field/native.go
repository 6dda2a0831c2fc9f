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

package field

// Native is a trivial Field performing unreduced 64-bit wraparound
// arithmetic.  It exists for tests and tooling that need a Field but do not
// care about matching any particular backend's prime; production
// compilations should use BLS12377 (or another curve-specific Field) so that
// fold results match what the generated code will actually compute.
var Native Field = native{}

type native struct{}

func (native) Add(x, y uint64) uint64 { return x + y }
func (native) Sub(x, y uint64) uint64 { return x - y }
func (native) Mul(x, y uint64) uint64 { return x * y }

func (native) Exp(x uint64, k uint64) uint64 {
	result := uint64(1)
	for i := uint64(0); i < k; i++ {
		result *= x
	}

	return result
}

func (native) Zero() uint64 { return 0 }
func (native) One() uint64  { return 1 }
