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
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/gofvm/gofv/InputParameters"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Resolve the linear-solver settings of a case file and print them",
	Long: `Resolve the linear-solver settings of a case file and print them.
Every equation block is routed against the available library families;
substitutions are reported as warnings and conflicts abort the check.`,
	Run: func(cmd *cobra.Command, args []string) {
		icFile, err := cmd.Flags().GetString("inputParametersFile")
		if err != nil {
			panic(err)
		}
		ip := processCaseFile(icFile)
		cap := buildCapabilities(cmd)

		eqs, err := ip.Apply(cap)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Case: %s\n\n", ip.Title)
		for _, eq := range eqs {
			fmt.Print(eq.Report())
			fmt.Println()
		}
		for _, w := range cap.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
	},
}

func processCaseFile(icFile string) (ip *InputParameters.InputParameters) {
	if len(icFile) == 0 {
		err := fmt.Errorf("must supply a case file (-I, --inputParametersFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Case"
Equations:
  pressure:
    Solver: cg
    Precond: amg
    Rtol: 1.0e-8
  velocity:
    Solver: gcr
    Restart: 25
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	data, err := ioutil.ReadFile(icFile)
	if err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(CheckCmd)
	CheckCmd.Flags().StringP("inputParametersFile", "I", "", "YAML case file holding the per-equation solver settings")
}
