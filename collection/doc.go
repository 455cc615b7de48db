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

// Package collection provides an ordered registry of named routes.
//
// A Collection maps route names to [route.Route] values and supports:
//   - Priorities: reorder iteration without changing the stored order
//   - Aliases: names resolving to other names, optionally deprecated
//   - Bulk operations: path and name prefixes, defaults, requirements, hosts
//   - Merging: combining collections loaded from different files
//   - Resources: tracking the files a collection was built from
//
// # Building a Collection
//
//	c := collection.New()
//	c.Add("users.list", route.New("/users", route.WithMethods("GET")), 0)
//	c.Add("users.show", route.New("/users/:id").WhereInt("id"), 0)
//	c.Add("users.me", route.New("/users/me"), 10) // listed before users.show
//
// # Aliases
//
//	alias, err := c.AddAlias("user", "users.show")
//	err = alias.Deprecate("acme/users", "2.0", "")
//
//	rt, err := c.Get("user") // resolves to users.show, emits a deprecation diagnostic
//
// # Sub-collections
//
//	admin := collection.New()
//	admin.Add("list", route.New("/users"), 0)
//	admin.AddPrefix("/admin", nil, nil)
//	admin.AddNamePrefix("admin.")
//	c.Merge(admin) // adds "admin.list" at "/admin/users"
//
// A Collection is built once by a single goroutine and then read. It is not
// safe for concurrent mutation.
package collection
