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

import "github.com/0xPolygonMiden/air-dsl/pkg/air"

// ctx carries the handful of facts lowerExpr needs about the constraint
// block it is currently walking, threaded down through recursive calls
// instead of being recovered after the fact: whether this is a boundary or
// integrity statement (which leaves are legal), whether a next-row access
// is legal, and the lowering Config.
//
// Per the design note in spec.md §9, validating leaf-in-context rules here
// -- at the point each leaf is actually constructed -- is what keeps
// Graph.NodeDetails a pure, infallible fold later: by the time a node
// reaches the arena it has already been proven to belong in the constraint
// that references it.
type ctx struct {
	boundary     bool
	allowNextRow bool
	domain       air.ConstraintDomain
	cfg          Config
}

func integrityCtx(cfg Config, domain air.ConstraintDomain) ctx {
	return ctx{boundary: false, allowNextRow: true, domain: domain, cfg: cfg}
}

func boundaryCtx(cfg Config, domain air.ConstraintDomain) ctx {
	return ctx{boundary: true, allowNextRow: false, domain: domain, cfg: cfg}
}
