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

// Command soagen generates the structure-of-vectors form of record types
// together with the Shape and VisitMembers hooks soa needs to load, store
// and mask them.
//
// Usage:
//
//	soagen -p ./physics Particle Spring
//	soagen -c physics/soagen.yaml
//
// Or via go:generate:
//
//	//go:generate go run github.com/ajroetker/go-simdize/cmd/soagen Particle
//
// For every type T it writes a TVec struct whose numeric fields become
// hwy.Vec, whose record fields (from the same package) become their own
// vectorized form, and whose other fields become soa.UniversalVec. Arrays
// map element-wise.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

type options struct {
	pkg     string
	output  string
	suffix  string
	config  string
	stdout  bool
	verbose bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "soagen [flags] [type...]",
		Short: "Generate structure-of-vectors hooks for record types",
		Long: `soagen writes, for each named struct type T, a TVec type holding one
vector per field together with the Shape and VisitMembers methods that let
the soa package load, store and mask N records at once.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.pkg, "pkg", "p", ".", "package pattern containing the types")
	f.StringVarP(&opts.output, "output", "o", "soa_gen.go", "generated file name, written in the package directory")
	f.StringVar(&opts.suffix, "suffix", "Vec", "suffix naming the vectorized type")
	f.StringVarP(&opts.config, "config", "c", "", "soagen.yaml config (default: "+DefaultConfigName+" in the package directory, if present)")
	f.BoolVar(&opts.stdout, "stdout", false, "write the generated code to stdout")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log resolved records")
	return cmd
}

func run(cmd *cobra.Command, opts options, args []string) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := resolveConfig(cmd, opts, args)
	if err != nil {
		return err
	}
	logger.Debug("config", "package", cfg.Package, "output", cfg.Output, "types", len(cfg.Types))

	gen := &Generator{Config: cfg, Logger: logger}
	if opts.stdout {
		gen.Stdout = cmd.OutOrStdout()
	}
	return gen.Run(cmd.Context())
}

// resolveConfig merges the config file, flags and positional type names.
// Flags given explicitly win over the file.
func resolveConfig(cmd *cobra.Command, opts options, args []string) (*Config, error) {
	path := opts.config
	if path == "" {
		candidate := filepath.Join(opts.pkg, DefaultConfigName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}

	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg.setDefaults()
	}

	flags := cmd.Flags()
	if flags.Changed("pkg") || path == "" {
		cfg.Package = opts.pkg
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("suffix") {
		cfg.Suffix = normalizeSuffix(opts.suffix)
	}
	for _, name := range args {
		cfg.Types = append(cfg.Types, TypeSpec{Name: name})
	}
	if err := cfg.validate("command line"); err != nil {
		return nil, err
	}
	if len(cfg.Types) == 0 {
		return nil, fmt.Errorf("%w: pass type names or a config with types", ErrNoTypes)
	}
	return cfg, nil
}
