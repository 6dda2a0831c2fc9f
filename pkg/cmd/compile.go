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

package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/0xPolygonMiden/air-dsl/pkg/backend"
	"github.com/0xPolygonMiden/air-dsl/pkg/backend/asm"
	bjson "github.com/0xPolygonMiden/air-dsl/pkg/backend/json"
	"github.com/0xPolygonMiden/air-dsl/pkg/field"
	"github.com/0xPolygonMiden/air-dsl/pkg/lower"
	"github.com/0xPolygonMiden/air-dsl/pkg/pass"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags]",
	Short: "lower the demonstration module and emit a backend artifact.",
	Long: `Lowers the built-in demonstration constraint module to the algebraic graph,
runs the constant-propagation pass, and emits either the JSON or the
assembly backend's output.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		cfg := lower.DEFAULT_OPTIMISATION_LEVEL
		if !GetFlag(cmd, "fold") {
			cfg = lower.OPTIMISATION_LEVELS[0]
		}

		cfg.Field = field.Native

		log.Debug("lowering demonstration module")

		ir, err := lower.LowerModule(demoModule(), cfg)
		if err != nil {
			fmt.Println("error lowering module:", err)
			os.Exit(1)
		}

		log.Debug("running constant-propagation pass")

		ir, err = pass.RunAll([]pass.Pass{pass.ConstantPropagation{Field: field.Native}}, ir)
		if err != nil {
			fmt.Println("error running passes:", err)
			os.Exit(1)
		}

		var be backend.Backend

		switch GetString(cmd, "backend") {
		case "json":
			be = bjson.New(1)
		case "asm":
			be = asm.New()
		default:
			fmt.Println("unknown backend:", GetString(cmd, "backend"))
			os.Exit(2)
		}

		out, err := be.Generate(ir)
		if err != nil {
			fmt.Println("error generating output:", err)
			os.Exit(1)
		}

		output := GetString(cmd, "output")
		if output == "" {
			fmt.Println(string(out))
			return
		}

		if err := os.WriteFile(output, out, 0o644); err != nil {
			fmt.Println("error writing output:", err)
			os.Exit(1)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().Bool("verbose", false, "enable debug logging")
	compileCmd.Flags().Bool("fold", true, "enable constant folding during lowering")
	compileCmd.Flags().StringP("backend", "b", "json", "backend to emit: json or asm")
	compileCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
}
