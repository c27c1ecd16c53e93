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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the config file soagen looks for in the package
// directory when --config is not given.
const DefaultConfigName = "soagen.yaml"

// Config is the content of a soagen.yaml file:
//
//	package: ./physics
//	output: particle_soa.go
//	suffix: Vec
//	types:
//	  - name: Particle
//	  - name: vec3
//	    vec: vec3Lanes
type Config struct {
	// Package is the package pattern to load, relative to the config file.
	Package string `yaml:"package,omitempty"`

	// Output is the generated file name, written in the package directory.
	Output string `yaml:"output,omitempty"`

	// Suffix is appended to a type name to name its vectorized form.
	Suffix string `yaml:"suffix,omitempty"`

	// Types lists the record types to generate.
	Types []TypeSpec `yaml:"types"`
}

// TypeSpec names one record type.
type TypeSpec struct {
	Name string `yaml:"name"`

	// Vec overrides the name of the vectorized form.
	Vec string `yaml:"vec,omitempty"`
}

// LoadConfig reads and parses a soagen.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data, path)
	if err != nil {
		return nil, err
	}
	if cfg.Package != "" && !filepath.IsAbs(cfg.Package) {
		cfg.Package = filepath.Join(filepath.Dir(path), cfg.Package)
	}
	return cfg, nil
}

// ParseConfig parses soagen.yaml content. path is used only in errors.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) validate(path string) error {
	seen := make(map[string]bool)
	for i, t := range c.Types {
		if t.Name == "" {
			return fmt.Errorf("%s: types[%d]: name is required", path, i)
		}
		if seen[t.Name] {
			return fmt.Errorf("%s: types[%d]: duplicate type %s", path, i, t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Package == "" {
		c.Package = "."
	}
	if c.Output == "" {
		c.Output = "soa_gen.go"
	}
	c.Suffix = normalizeSuffix(c.Suffix)
}

// normalizeSuffix title-cases the suffix so "vec" and "Vec" both produce
// PointVec.
func normalizeSuffix(s string) string {
	if s == "" {
		return "Vec"
	}
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// VecName returns the vectorized type name for spec.
func (c *Config) VecName(spec TypeSpec) string {
	if spec.Vec != "" {
		return spec.Vec
	}
	return spec.Name + c.Suffix
}
