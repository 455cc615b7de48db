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

package route

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParameter indicates a path parameter had no value during URL building.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrInvalidRequirement indicates a requirement could not be compiled.
	ErrInvalidRequirement = errors.New("invalid requirement")

	// ErrEmptyRequirement indicates a requirement pattern is empty.
	ErrEmptyRequirement = errors.New("requirement cannot be empty")

	// ErrParameterMismatch indicates a parameter value does not satisfy its requirement.
	ErrParameterMismatch = errors.New("parameter does not match requirement")
)

// RequirementError reports a requirement that failed to compile.
// It matches [ErrInvalidRequirement] with errors.Is.
type RequirementError struct {
	Param   string
	Pattern string
	Err     error
}

func (e *RequirementError) Error() string {
	return fmt.Sprintf("invalid requirement for parameter %q (%q): %v", e.Param, e.Pattern, e.Err)
}

func (e *RequirementError) Unwrap() error {
	return e.Err
}

func (e *RequirementError) Is(target error) bool {
	return target == ErrInvalidRequirement
}

// ParameterError reports a parameter value rejected by its requirement.
// It matches [ErrParameterMismatch] with errors.Is.
type ParameterError struct {
	Param   string
	Value   string
	Pattern string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter %q must match %q, got %q", e.Param, e.Pattern, e.Value)
}

func (e *ParameterError) Is(target error) bool {
	return target == ErrParameterMismatch
}
