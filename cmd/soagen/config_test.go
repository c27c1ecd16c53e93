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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
package: ./physics
suffix: lanes
types:
  - name: Particle
  - name: vec3
    vec: vec3x
`)
	cfg, err := ParseConfig(data, "soagen.yaml")
	require.NoError(t, err)

	assert.Equal(t, "./physics", cfg.Package)
	assert.Equal(t, "soa_gen.go", cfg.Output)
	assert.Equal(t, "Lanes", cfg.Suffix)
	require.Len(t, cfg.Types, 2)
	assert.Equal(t, "ParticleLanes", cfg.VecName(cfg.Types[0]))
	assert.Equal(t, "vec3x", cfg.VecName(cfg.Types[1]))
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("types: [{name: Point}]"), "soagen.yaml")
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Package)
	assert.Equal(t, "Vec", cfg.Suffix)
	assert.Equal(t, "PointVec", cfg.VecName(cfg.Types[0]))
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad_yaml", "types: [unterminated"},
		{"missing_name", "types: [{vec: X}]"},
		{"duplicate", "types: [{name: A}, {name: A}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), "soagen.yaml")
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigRelativePackage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigName)
	require.NoError(t, os.WriteFile(path, []byte("package: ./sub\ntypes: [{name: A}]\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sub"), cfg.Package)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
