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
// Package loader builds route collections from YAML, TOML and JSON files.
//
// A route file is a mapping of names to entries. The order of the entries is
// the insertion order of the resulting collection.
//
//	users.list:
//	  path: /users
//	  methods: [GET]
//	  controller: users.list
//
//	users.show:
//	  path: /users/:id
//	  requirements: { id: '\d+' }
//	  priority: 1
//
//	user:
//	  alias: users.show
//	  deprecated: { package: acme/users, version: "2.0" }
//
//	admin:
//	  resource: admin/routes.yaml
//	  prefix: /admin
//	  name_prefix: admin.
//
// An entry is a route when it has a "path", an import when it has a
// "resource" and an alias when it has an "alias". Import paths are relative
// to the importing file and may be glob patterns.
//
// # Loading
//
//	l := loader.New(loader.WithLogger(logger))
//	routes, err := l.Load(ctx, "config/routes.yaml")
//
// [Cache] keeps loaded collections until one of their files changes, and
// [Watcher] reloads a collection whenever its files are written.
package loader
