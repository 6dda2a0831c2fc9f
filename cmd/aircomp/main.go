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

// Command aircomp is a thin demonstration binary over the AIR compiler
// core: lexing and parsing are outside this specification's scope, so it
// lowers one hard-coded constraint module, runs the pass pipeline, and
// dispatches to whichever backend was requested.
package main

import "github.com/0xPolygonMiden/air-dsl/pkg/cmd"

func main() {
	cmd.Execute()
}
