// Copyright 2025 The Rivaas Authors
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
// Package codec decodes route files into their top-level entries, keeping
// the order in which the entries appear in the document.
package codec

// Type represents a codec type identifier.
type Type string

// Entry is one top-level key of a document with its decoded value.
// Nested mappings decode to map[string]any.
type Entry struct {
	Name  string
	Value any
}

// Decoder converts an encoded document into its top-level entries, in
// document order. Implementations must be safe for concurrent use.
type Decoder interface {
	Decode(data []byte) ([]Entry, error)
}
