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

// Package contrib holds the record-level layer built on hwy.
//
// # Subpackages
//
//   - soa: vectorized views of arrays of structs. A Proxy addresses the same
//     field of N records (contiguous, gathered or scattered) and loads or
//     stores them as a structure of vectors.
//   - loop: drivers that walk an index range or an index list in vector
//     steps and hand each step to a body as a soa.Index.
//   - workerpool: a persistent pool that splits a range into lane-aligned
//     chunks.
//
// A typical kernel is written once against soa.Index and runs unchanged on
// vector and scalar steps:
//
//	import (
//	    "github.com/ajroetker/go-simdize/hwy/contrib/loop"
//	    "github.com/ajroetker/go-simdize/hwy/contrib/soa"
//	)
//
//	loop.Simple(0, len(xs), 8, loop.ScalarResidual, func(i soa.Index) {
//	    soa.AccessNumeric(xs, i).MulAssign(hwy.SetN[float32](2, i.Size()))
//	})
//
// Record types get their vectorized form from cmd/soagen.
package contrib
