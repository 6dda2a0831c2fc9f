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

package pass

import "github.com/0xPolygonMiden/air-dsl/pkg/air"

// Pass is a single IR-to-IR rewrite. A Pass owns its own traversal (typically
// by building a Visitor and calling Run) and returns a fresh *air.IR rather
// than mutating its input in place: the arena has no deletion, so any pass
// that drops nodes must rebuild a new Graph with remapped indices.
type Pass interface {
	Name() string
	Run(ir *air.IR) (*air.IR, error)
}

// RunAll applies passes in order, threading each pass's output into the
// next.
func RunAll(passes []Pass, ir *air.IR) (*air.IR, error) {
	cur := ir

	for _, p := range passes {
		next, err := p.Run(cur)
		if err != nil {
			return nil, err
		}

		cur = next
	}

	return cur, nil
}
