// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command constgen generates the coefficient tables of package constmath.
//
// Usage:
//
//	constgen --output ./constmath --pkg constmath --terms 171
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/constgen --output . --pkg constmath
//
// Table entries are computed exactly with math/big and rounded once to
// float64, so the emitted literals are the correctly rounded values.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	gen := &Generator{}
	cmd := &cobra.Command{
		Use:           "constgen",
		Short:         "Generate the coefficient tables of package constmath",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen.Out = cmd.OutOrStdout()
			path, err := gen.Run()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated %s\n", path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&gen.OutputDir, "output", "o", ".", "Output directory")
	flags.StringVar(&gen.Package, "pkg", "constmath", "Output package name")
	flags.IntVar(&gen.Terms, "terms", MaxTerms, "Number of factorial entries, 0! first")
	flags.BoolVarP(&gen.Verbose, "verbose", "v", false, "Report each generated table")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
