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
	"errors"
	"fmt"
)

var (
	// ErrNoTypes is returned when neither flags nor config name a type.
	ErrNoTypes = errors.New("no types to generate")
)

// TypeNotFoundError reports a requested type missing from the package.
type TypeNotFoundError struct {
	Package string
	Name    string
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("type %s not found in package %s", e.Name, e.Package)
}

// UnsupportedTypeError reports a requested type that cannot be vectorized.
type UnsupportedTypeError struct {
	Name   string
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("type %s: %s", e.Name, e.Reason)
}
