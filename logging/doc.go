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

// Package logging configures the [log/slog] logger shared by the route
// loader, the watcher and the routes command.
//
// # Basic Usage
//
//	logger := logging.MustNew(logging.WithConsoleHandler())
//	logger.Info("routes loaded", "file", "routes.yaml", "count", 12)
//
// Components that accept a *slog.Logger take [Logger.Slog]:
//
//	c := collection.New(collection.WithLogger(logger.Slog()))
//
// # Handlers
//
// JSON (the default), slog text and a colored console format are available.
// Values under keys such as "password" or "token" are always redacted.
//
// # Testing
//
//	th := logging.NewTestHelper(t)
//	c := collection.New(collection.WithLogger(th.Logger.Slog()))
//	...
//	entry, err := th.LastLog()
package logging
