/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/gofvm/gofv/equation"
	"github.com/gofvm/gofv/itsol"
	"github.com/gofvm/gofv/model"
)

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the Poisson model problem with the configured linear solver",
	Long: `Run the Poisson model problem with the configured linear solver.
The system is assembled with a manufactured sine solution, solved with
the settings of the named equation block (or the built-in defaults),
and the discretization error is reported.`,
	Run: func(cmd *cobra.Command, args []string) {
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		var (
			K, _      = cmd.Flags().GetInt("K")
			eqName, _ = cmd.Flags().GetString("equation")
			icFile, _ = cmd.Flags().GetString("inputParametersFile")
			cap       = buildCapabilities(cmd)
			eq        *equation.Param
		)
		if len(icFile) != 0 {
			ip := processCaseFile(icFile)
			eqs, err := ip.Apply(cap)
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			for _, candidate := range eqs {
				if candidate.Name == eqName {
					eq = candidate
				}
			}
			if eq == nil {
				fmt.Printf("error: case file has no equation named %q\n", eqName)
				os.Exit(1)
			}
		} else {
			eq = equation.New(eqName, 0)
			eq.Lock()
		}

		c := model.NewPoisson1D(0, 1, 1, K)
		f, exact := c.ManufacturedSine()
		A, b := c.Assemble(f)

		fmt.Print(eq.Report())
		x := make([]float64, K)
		st, err := itsol.Solve(eq.SLES, A, b, x)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		var errMax float64
		for i, xc := range c.Centers() {
			errMax = math.Max(errMax, math.Abs(x[i]-exact(xc)))
		}
		fmt.Printf("\nConverged: %v after %d iterations, residual % -10.6e\n",
			st.Converged, st.Iterations, st.Residual)
		fmt.Printf("Max error vs exact solution: % -10.6e\n", errMax)
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().StringP("inputParametersFile", "I", "", "YAML case file holding the per-equation solver settings")
	SolveCmd.Flags().StringP("equation", "e", "pressure", "equation block to use from the case file")
	SolveCmd.Flags().IntP("K", "K", 128, "number of cells in the model problem")
	SolveCmd.Flags().BoolP("profile", "p", false, "write a CPU profile for the solve")
}
