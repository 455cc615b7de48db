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
package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat indicates a route file whose extension has no decoder.
	ErrUnsupportedFormat = errors.New("unsupported route file format")

	// ErrImportCycle indicates a file that imports itself, directly or not.
	ErrImportCycle = errors.New("route import cycle")

	// ErrInvalidEntry indicates a malformed route, alias or import entry.
	ErrInvalidEntry = errors.New("invalid route entry")
)

// Error describes a failure while loading a route file.
type Error struct {
	File      string // Absolute path of the file being loaded
	Entry     string // Top-level entry name (optional)
	Operation string // The operation being performed (e.g., "read", "decode", "route", "import")
	Err       error  // The underlying error
}

// Error returns a formatted error message with context information.
func (e *Error) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("routes error in %s[%s] during %s: %v", e.File, e.Entry, e.Operation, e.Err)
	}
	return fmt.Sprintf("routes error in %s during %s: %v", e.File, e.Operation, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(file, operation string, err error) *Error {
	return &Error{File: file, Operation: operation, Err: err}
}

func newEntryError(file, entry, operation string, err error) *Error {
	return &Error{File: file, Entry: entry, Operation: operation, Err: err}
}
