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

// Package route provides the route definition used by route collections.
//
// This package contains:
//   - Route: path, host, condition, defaults, requirements, options, schemes and methods
//   - Typed requirements: WhereInt, WhereUUID, WhereEnum, etc.
//   - Compile: requirement validation producing anchored constraints
//   - ReversePattern: URL building from ":param" path patterns
//
// # Route Definition
//
//	rt := route.New("/users/:id",
//	    route.WithMethods("GET"),
//	    route.WithDefaults(map[string]any{"_controller": "users.show"}),
//	).WhereInt("id")
//
// # Requirements
//
// Requirements are regular expressions matched against the whole parameter
// value. Anchors supplied by callers are stripped on assignment and re-applied
// by Compile:
//
//	rt.SetRequirement("slug", "^[a-z-]+$") // stored as "[a-z-]+"
//
// # Reverse Routing
//
//	compiled, err := rt.Compile()
//	url, err := compiled.Reverse.BuildURL(map[string]string{"id": "42"}, nil)
//
// Routes are plain values; they are not safe for concurrent mutation.
package route
