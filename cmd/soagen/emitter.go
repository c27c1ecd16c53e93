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
	"bytes"
	"context"
	"fmt"
	"go/format"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	hwyImport = "github.com/ajroetker/go-simdize/hwy"
	soaImport = "github.com/ajroetker/go-simdize/hwy/contrib/soa"
)

// Emit renders the generated file for model. Records are rendered
// concurrently and joined in model order.
func Emit(ctx context.Context, model *Model) ([]byte, error) {
	bodies := make([][]byte, len(model.Records))
	g, ctx := errgroup.WithContext(ctx)
	for i, rec := range model.Records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			bodies[i] = emitRecord(rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by soagen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", model.Package)
	emitImports(&buf, model)
	for _, body := range bodies {
		buf.Write(body)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return formatted, nil
}

func emitImports(buf *bytes.Buffer, model *Model) {
	imports := []Import{{Path: soaImport}}
	if needsHwy(model) {
		imports = append(imports, Import{Path: hwyImport})
	}
	imports = lo.UniqBy(append(imports, model.Imports...), func(imp Import) string { return imp.Path })
	slices.SortFunc(imports, func(a, b Import) int { return strings.Compare(a.Path, b.Path) })

	fmt.Fprintf(buf, "import (\n")
	for _, imp := range imports {
		if imp.Name != "" {
			fmt.Fprintf(buf, "\t%s %q\n", imp.Name, imp.Path)
		} else {
			fmt.Fprintf(buf, "\t%q\n", imp.Path)
		}
	}
	fmt.Fprintf(buf, ")\n\n")
}

func needsHwy(model *Model) bool {
	return lo.SomeBy(model.Records, func(rec Record) bool {
		return lo.SomeBy(rec.Fields, func(f Field) bool {
			return f.Kind == FieldLeaf || f.Kind == FieldLeafArray
		})
	})
}

func emitRecord(rec Record) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// %s is the structure-of-vectors form of %s.\n", rec.Vec, rec.Name)
	fmt.Fprintf(&buf, "type %s struct {\n", rec.Vec)
	for _, f := range rec.Fields {
		fmt.Fprintf(&buf, "\t%s %s\n", f.Name, vecFieldType(f))
	}
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "// Shape sizes every leaf of v to lanes zero lanes.\n")
	fmt.Fprintf(&buf, "func (v *%s) Shape(lanes int) { soa.DefaultShape[%s](v, lanes) }\n\n", rec.Vec, rec.Name)

	fmt.Fprintf(&buf, "// VisitMembers pairs every leaf of v with its field in %s.\n", rec.Name)
	fmt.Fprintf(&buf, "func (v *%s) VisitMembers(m *soa.Members[%s]) {\n", rec.Vec, rec.Name)
	for _, f := range rec.Fields {
		fmt.Fprintf(&buf, "\t%s\n", visitCall(rec.Name, f))
	}
	fmt.Fprintf(&buf, "}\n\n")

	return buf.Bytes()
}

func vecFieldType(f Field) string {
	switch f.Kind {
	case FieldLeaf:
		return fmt.Sprintf("hwy.Vec[%s]", f.Type)
	case FieldNested:
		return f.Vec
	case FieldLeafArray:
		return fmt.Sprintf("[%d]hwy.Vec[%s]", f.Len, f.Type)
	case FieldNestedArray:
		return fmt.Sprintf("[%d]%s", f.Len, f.Vec)
	default:
		return fmt.Sprintf("soa.UniversalVec[%s]", f.Type)
	}
}

func visitCall(rec string, f Field) string {
	switch f.Kind {
	case FieldLeaf:
		return fmt.Sprintf("soa.Leaf(m, &v.%[1]s, func(p *%[2]s) *%[3]s { return &p.%[1]s })", f.Name, rec, f.Type)
	case FieldNested:
		return fmt.Sprintf("soa.Nested(m, &v.%[1]s, func(p *%[2]s) *%[3]s { return &p.%[1]s })", f.Name, rec, f.Type)
	case FieldLeafArray:
		return fmt.Sprintf("soa.LeafArray(m, v.%[1]s[:], func(p *%[2]s) []%[3]s { return p.%[1]s[:] })", f.Name, rec, f.Type)
	case FieldNestedArray:
		return fmt.Sprintf("soa.NestedArray(m, v.%[1]s[:], func(p *%[2]s) []%[3]s { return p.%[1]s[:] })", f.Name, rec, f.Type)
	default:
		return fmt.Sprintf("soa.UniversalLeaf(m, &v.%[1]s, func(p *%[2]s) *%[3]s { return &p.%[1]s })", f.Name, rec, f.Type)
	}
}
