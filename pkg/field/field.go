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

// Package field supplies the backend arithmetic used to fold constant
// subexpressions during lowering and constant propagation.
//
// The core graph (package air) never performs field arithmetic itself: it
// treats constants as opaque 64-bit identifiers, exactly as specified.  A
// Field is the narrow interface through which a compilation delegates
// Add/Sub/Mul/Exp to whatever prime field its target backend actually uses.
package field

// Field performs modular arithmetic over 64-bit constant identifiers on
// behalf of a compilation.  Implementations are free to reduce modulo any
// prime; the core only requires that Zero and One behave as additive and
// multiplicative identities.
type Field interface {
	// Add returns x+y reduced in this field.
	Add(x, y uint64) uint64
	// Sub returns x-y reduced in this field.
	Sub(x, y uint64) uint64
	// Mul returns x*y reduced in this field.
	Mul(x, y uint64) uint64
	// Exp returns x^k reduced in this field.
	Exp(x uint64, k uint64) uint64
	// Zero returns the additive identity.
	Zero() uint64
	// One returns the multiplicative identity.
	One() uint64
}
