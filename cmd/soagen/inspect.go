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
	"go/types"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/samber/lo"
	"golang.org/x/tools/go/packages"
)

// FieldKind says which soa visitor a field maps to.
type FieldKind int

const (
	FieldLeaf        FieldKind = iota // numeric scalar: soa.Leaf
	FieldNested                       // record in the same package: soa.Nested
	FieldLeafArray                    // array of numbers: soa.LeafArray
	FieldNestedArray                  // array of records: soa.NestedArray
	FieldUniversal                    // anything else: soa.UniversalLeaf
)

func (k FieldKind) String() string {
	switch k {
	case FieldLeaf:
		return "leaf"
	case FieldNested:
		return "nested"
	case FieldLeafArray:
		return "leaf-array"
	case FieldNestedArray:
		return "nested-array"
	case FieldUniversal:
		return "universal"
	default:
		return "unknown"
	}
}

// Field is one member of a record.
type Field struct {
	Name string
	Kind FieldKind
	Type string // field type, or element type for arrays
	Len  int64  // array length
	Vec  string // vectorized type of a nested record
}

// Record is one struct type to generate hooks for.
type Record struct {
	Name   string
	Vec    string
	Fields []Field
}

// Import is a package the generated file refers to.
type Import struct {
	Name string
	Path string
}

// Model is everything the emitter needs.
type Model struct {
	Package string
	PkgPath string
	Dir     string
	Records []Record
	Imports []Import
}

// Inspector loads a package and builds the Model for the configured types.
type Inspector struct {
	Dir    string
	Logger *slog.Logger
}

// Inspect loads cfg.Package and resolves cfg.Types in it.
func (ins *Inspector) Inspect(ctx context.Context, cfg *Config) (*Model, error) {
	pcfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedTypes,
		Dir:     ins.Dir,
	}
	pkgs, err := packages.Load(pcfg, cfg.Package)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want 1", cfg.Package, len(pkgs))
	}

	pkg := pkgs[0]
	for _, e := range pkg.Errors {
		// A stale generated file must not stop regeneration, so type errors
		// are reported but not fatal as long as the types resolve.
		ins.Logger.Warn("package error", "pkg", pkg.PkgPath, "err", e.Msg)
	}
	if pkg.Types == nil || len(pkg.GoFiles) == 0 {
		return nil, fmt.Errorf("package %s has no Go files", cfg.Package)
	}

	model, err := buildModel(pkg.Types, cfg, ins.Logger)
	if err != nil {
		return nil, err
	}
	model.Dir = filepath.Dir(pkg.GoFiles[0])
	return model, nil
}

// buildModel resolves the configured types in pkg. Records referenced by a
// configured record from the same package are added with the default name.
func buildModel(pkg *types.Package, cfg *Config, logger *slog.Logger) (*Model, error) {
	if len(cfg.Types) == 0 {
		return nil, ErrNoTypes
	}

	b := &modelBuilder{
		pkg:     pkg,
		cfg:     cfg,
		logger:  logger,
		vecs:    make(map[string]string),
		imports: make(map[string]Import),
	}
	for _, spec := range cfg.Types {
		b.enqueue(spec)
	}

	model := &Model{Package: pkg.Name(), PkgPath: pkg.Path()}
	for i := 0; i < len(b.queue); i++ {
		rec, err := b.record(b.queue[i])
		if err != nil {
			return nil, err
		}
		logger.Debug("resolved record",
			"type", rec.Name,
			"vec", rec.Vec,
			"fields", lo.Map(rec.Fields, func(f Field, _ int) string { return f.Name + ":" + f.Kind.String() }))
		model.Records = append(model.Records, rec)
	}
	model.Imports = lo.Values(b.imports)
	return model, nil
}

type modelBuilder struct {
	pkg     *types.Package
	cfg     *Config
	logger  *slog.Logger
	queue   []TypeSpec
	vecs    map[string]string
	imports map[string]Import
}

func (b *modelBuilder) enqueue(spec TypeSpec) string {
	if vec, ok := b.vecs[spec.Name]; ok {
		return vec
	}
	vec := b.cfg.VecName(spec)
	b.vecs[spec.Name] = vec
	b.queue = append(b.queue, spec)
	return vec
}

func (b *modelBuilder) record(spec TypeSpec) (Record, error) {
	obj, ok := b.pkg.Scope().Lookup(spec.Name).(*types.TypeName)
	if !ok {
		return Record{}, &TypeNotFoundError{Package: b.pkg.Path(), Name: spec.Name}
	}
	named, ok := types.Unalias(obj.Type()).(*types.Named)
	if !ok {
		return Record{}, &UnsupportedTypeError{Name: spec.Name, Reason: "not a defined type"}
	}
	if named.TypeParams().Len() > 0 {
		return Record{}, &UnsupportedTypeError{Name: spec.Name, Reason: "generic types are not supported"}
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return Record{}, &UnsupportedTypeError{Name: spec.Name, Reason: "not a struct type"}
	}

	rec := Record{Name: spec.Name, Vec: b.vecs[spec.Name]}
	for f := range st.Fields() {
		if f.Name() == "_" {
			continue
		}
		rec.Fields = append(rec.Fields, b.field(f))
	}
	if len(rec.Fields) == 0 {
		return Record{}, &UnsupportedTypeError{Name: spec.Name, Reason: "struct has no fields"}
	}
	return rec, nil
}

func (b *modelBuilder) field(v *types.Var) Field {
	f := Field{Name: v.Name()}
	t := types.Unalias(v.Type())

	switch {
	case isLane(t):
		f.Kind, f.Type = FieldLeaf, b.typeString(t)
	case b.isLocalRecord(t):
		f.Kind, f.Type = FieldNested, b.typeString(t)
		f.Vec = b.enqueue(TypeSpec{Name: t.(*types.Named).Obj().Name()})
	default:
		arr, ok := t.(*types.Array)
		if !ok {
			f.Kind, f.Type = FieldUniversal, b.typeString(t)
			break
		}
		elem := types.Unalias(arr.Elem())
		f.Len, f.Type = arr.Len(), b.typeString(elem)
		switch {
		case isLane(elem):
			f.Kind = FieldLeafArray
		case b.isLocalRecord(elem):
			f.Kind = FieldNestedArray
			f.Vec = b.enqueue(TypeSpec{Name: elem.(*types.Named).Obj().Name()})
		default:
			f.Kind, f.Type, f.Len = FieldUniversal, b.typeString(t), 0
		}
	}
	return f
}

// isLocalRecord reports whether t is a non-generic struct type declared in
// the package being generated.
func (b *modelBuilder) isLocalRecord(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() != b.pkg || named.TypeParams().Len() > 0 {
		return false
	}
	_, ok = named.Underlying().(*types.Struct)
	return ok
}

// typeString renders t as seen from the generated file, recording imports.
func (b *modelBuilder) typeString(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string {
		if p == b.pkg {
			return ""
		}
		imp := Import{Name: p.Name(), Path: p.Path()}
		if path.Base(p.Path()) == p.Name() {
			imp.Name = ""
		}
		b.imports[p.Path()] = imp
		return p.Name()
	})
}

// isLane reports whether t satisfies hwy.Lanes.
func isLane(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false
	}
	switch basic.Kind() {
	case types.Int, types.Int8, types.Int16, types.Int32, types.Int64,
		types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64,
		types.Float32, types.Float64:
		return true
	}
	return false
}
