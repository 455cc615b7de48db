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
	"strings"

	"github.com/spf13/cast"

	"rivaas.dev/routing/route"
)

// AddPrefix prepends prefix to the path of every route and merges defaults
// and requirements into each of them, new values winning.
//
// Slashes around prefix are ignored; a prefix that is empty after trimming
// leaves the collection unchanged.
//
// Example:
//
//	c.AddPrefix("/api/", nil, nil) // "/users" becomes "/api/users"
func (c *Collection) AddPrefix(prefix string, defaults map[string]any, requirements map[string]string) {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return
	}

	for _, rec := range c.routes.all() {
		rec.route.SetPath("/" + prefix + rec.route.Path())
		rec.route.AddDefaults(defaults)
		rec.route.AddRequirements(requirements)
	}
}

// AddNamePrefix prefixes every route and alias name, keeping their order.
//
// Alias targets are prefixed too, as are "_canonical_route" defaults, since both
// refer to names inside this collection.
func (c *Collection) AddNamePrefix(prefix string) {
	if prefix == "" {
		return
	}

	c.routes = c.routes.mapped(func(name string, rec *record) (string, *record) {
		if canonical, ok := rec.route.Default(route.CanonicalRouteDefault); ok && canonical != nil {
			rec.route.SetDefault(route.CanonicalRouteDefault, prefix+cast.ToString(canonical))
		}
		return prefix + name, rec
	})

	c.aliases = c.aliases.mapped(func(name string, a *Alias) (string, *Alias) {
		return prefix + name, a.WithTarget(prefix + a.Target())
	})
}

// SetHost sets the host pattern on every route.
func (c *Collection) SetHost(host string) {
	for _, rec := range c.routes.all() {
		rec.route.SetHost(host)
	}
}

// SetCondition sets the condition on every route.
func (c *Collection) SetCondition(condition string) {
	for _, rec := range c.routes.all() {
		rec.route.SetCondition(condition)
	}
}

// AddDefaults merges defaults into every route.
func (c *Collection) AddDefaults(defaults map[string]any) {
	if len(defaults) == 0 {
		return
	}
	for _, rec := range c.routes.all() {
		rec.route.AddDefaults(defaults)
	}
}

// AddRequirements merges requirements into every route.
func (c *Collection) AddRequirements(requirements map[string]string) {
	if len(requirements) == 0 {
		return
	}
	for _, rec := range c.routes.all() {
		rec.route.AddRequirements(requirements)
	}
}

// AddOptions merges options into every route.
func (c *Collection) AddOptions(options map[string]any) {
	if len(options) == 0 {
		return
	}
	for _, rec := range c.routes.all() {
		rec.route.AddOptions(options)
	}
}

// SetSchemes replaces the schemes of every route.
func (c *Collection) SetSchemes(schemes ...string) {
	for _, rec := range c.routes.all() {
		rec.route.SetSchemes(schemes...)
	}
}

// SetMethods replaces the methods of every route.
func (c *Collection) SetMethods(methods ...string) {
	for _, rec := range c.routes.all() {
		rec.route.SetMethods(methods...)
	}
}
