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
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gofvm/gofv/sles"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gofv",
	Short: "Finite volume solver with a configurable linear algebra layer",
	Long: `Finite volume solver with a configurable linear algebra layer.
Each equation selects its iterative solver, preconditioner and hosting
library family through a YAML case file; the check command resolves and
prints the resulting settings, the solve command runs a model problem.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gofv.yaml)")
	rootCmd.PersistentFlags().Bool("petsc", false, "treat the PETSc library as linked in")
	rootCmd.PersistentFlags().Bool("hypre", false, "treat the HYPRE library as linked in")
	rootCmd.PersistentFlags().Bool("mumps", false, "treat the MUMPS library as linked in")
	rootCmd.PersistentFlags().Bool("hypre-via-petsc", false, "treat HYPRE as reachable through the PETSc build")
	rootCmd.PersistentFlags().Bool("mumps-via-petsc", false, "treat MUMPS as reachable through the PETSc build")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print capability warnings as they occur")
}

// buildCapabilities starts from the detected installation and applies the
// command-line overrides, so that routing can be exercised without the
// external libraries present.
func buildCapabilities(cmd *cobra.Command) *sles.Capabilities {
	cap := sles.Detect()
	if on, _ := cmd.Flags().GetBool("petsc"); on {
		cap.PETSc = true
	}
	if on, _ := cmd.Flags().GetBool("hypre"); on {
		cap.HYPRE = true
	}
	if on, _ := cmd.Flags().GetBool("mumps"); on {
		cap.MUMPS = true
	}
	if on, _ := cmd.Flags().GetBool("hypre-via-petsc"); on {
		cap.HypreInPETSc = true
	}
	if on, _ := cmd.Flags().GetBool("mumps-via-petsc"); on {
		cap.MumpsInPETSc = true
	}
	cap.Verbose, _ = cmd.Flags().GetBool("verbose")
	return cap
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".gofv" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gofv")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
