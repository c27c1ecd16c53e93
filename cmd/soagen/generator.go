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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Generator orchestrates loading, inspection and emission.
type Generator struct {
	Config *Config
	Dir    string    // working directory for package loading
	Stdout io.Writer // if non-nil, the file is written here instead of to disk
	Logger *slog.Logger
}

// Run executes the generation pipeline.
func (g *Generator) Run(ctx context.Context) error {
	if len(g.Config.Types) == 0 {
		return ErrNoTypes
	}

	ins := &Inspector{Dir: g.Dir, Logger: g.Logger}
	model, err := ins.Inspect(ctx, g.Config)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", g.Config.Package, err)
	}

	src, err := Emit(ctx, model)
	if err != nil {
		return fmt.Errorf("emit: %w", err)
	}

	if g.Stdout != nil {
		_, err := g.Stdout.Write(src)
		return err
	}

	filename := filepath.Join(model.Dir, g.Config.Output)
	if err := os.WriteFile(filename, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	g.Logger.Info("generated", "file", filename, "records", len(model.Records))
	return nil
}
