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
	"maps"
	"slices"
)

// DiagnosticEvent represents an advisory event raised by a collection.
// Diagnostics never change the outcome of the operation that raised them.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagAliasDeprecated is raised when a deprecated alias is traversed.
	// Fields: "alias", "package", "version".
	DiagAliasDeprecated DiagnosticKind = "route_alias_deprecated"
)

// DiagnosticHandler receives diagnostic events from a collection.
//
// If no handler is configured, events are logged at WARN level through the
// collection's logger.
//
// Example:
//
//	handler := collection.DiagnosticHandlerFunc(func(e collection.DiagnosticEvent) {
//	    metrics.Increment("routing.diagnostics", "kind", string(e.Kind))
//	})
//	c := collection.New(collection.WithDiagnostics(handler))
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}

// emit delivers a diagnostic to the handler, falling back to the logger.
func (c *Collection) emit(kind DiagnosticKind, message string, fields map[string]any) {
	if c.diagnostics != nil {
		c.diagnostics.OnDiagnostic(DiagnosticEvent{
			Kind:    kind,
			Message: message,
			Fields:  fields,
		})
		return
	}

	args := make([]any, 0, 2+2*len(fields))
	args = append(args, "kind", string(kind))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		args = append(args, k, fields[k])
	}
	c.log().Warn(message, args...)
}
