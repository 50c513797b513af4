// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wdamron/valueset/internal/selfcheck"
)

func newCheckCmd() *cobra.Command {
	var (
		configPath string
		seed       int64
		iterations int
		size       int
		kinds      []string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the value-set algebra of every kind against seeded random samples",
		Long: `Draws random value-sets and literals for each kind and verifies the algebraic
properties of the value-set factories: set identities, complement involution,
widening of bad constants, agreement between set construction and constant
relations, and the out-of-range flags of native-sized kinds.

Flags override values read from --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := selfcheck.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = selfcheck.LoadConfig(configPath); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("iterations") {
				cfg.Iterations = iterations
			}
			if flags.Changed("size") {
				cfg.ExpectedSize = size
			}
			if flags.Changed("kind") {
				cfg.Kinds = kinds
			}

			res, err := selfcheck.Run(cfg, logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, fail := range res.Failures {
				fmt.Fprintln(out, fail)
			}
			if !res.OK() {
				logger.Error("self-check failed", zap.Int("failures", len(res.Failures)), zap.Int64("seed", cfg.Seed))
				return errors.New("self-check failed")
			}
			fmt.Fprintf(out, "ok: %d samples\n", res.Checked)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.Int64Var(&seed, "seed", 1, "random seed")
	flags.IntVar(&iterations, "iterations", 1000, "samples per kind")
	flags.IntVar(&size, "size", 4, "expected number of intervals per random value-set")
	flags.StringSliceVar(&kinds, "kind", nil, "kinds to check (default all)")
	return cmd
}
