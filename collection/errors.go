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

package collection

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCircularAlias indicates alias resolution revisited a name.
	// Returned errors are [*CircularAliasError] values carrying the cyclic path.
	ErrCircularAlias = errors.New("circular route alias")

	// ErrInvalidArgument indicates a rejected argument, such as an alias
	// pointing to itself.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidDeprecation indicates an alias deprecation without package or
	// version, or with a malformed message template.
	ErrInvalidDeprecation = errors.New("invalid alias deprecation")

	// ErrRouteNotFound indicates a URL was requested for an unknown route name.
	ErrRouteNotFound = errors.New("route not found")
)

// CircularAliasError reports an alias chain that loops back on itself.
// Path runs from the first occurrence of the repeated name to its re-encounter,
// both inclusive.
type CircularAliasError struct {
	Name string
	Path []string
}

func (e *CircularAliasError) Error() string {
	return fmt.Sprintf("circular reference detected for route %q, path: %q", e.Name, strings.Join(e.Path, " -> "))
}

// Is reports whether target is [ErrCircularAlias].
func (e *CircularAliasError) Is(target error) bool {
	return target == ErrCircularAlias
}
