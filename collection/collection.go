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
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"net/url"
	"slices"

	"github.com/spf13/cast"

	"rivaas.dev/routing/resource"
	"rivaas.dev/routing/route"
)

// Collection is an ordered set of named routes with aliases, per-route
// priorities and the resources the routes were loaded from.
//
// A name is held either by a route or by an alias, never both. Priorities only
// affect the order produced by [Collection.All]; the stored order is always the
// order in which names were last added.
//
// Collection is not safe for concurrent mutation. Build it once, then share it
// read-only or hand out [Collection.Clone] copies.
type Collection struct {
	routes    orderedMap[*record]
	aliases   orderedMap[*Alias]
	resources orderedMap[resource.Resource]

	diagnostics DiagnosticHandler
	logger      *slog.Logger
}

type record struct {
	route    *route.Route
	priority int
}

// Entry is a named route as produced by [Collection.All].
type Entry struct {
	Name     string
	Route    *route.Route
	Priority int
}

// Option configures a Collection.
type Option func(*Collection)

// WithDiagnostics sets the handler receiving diagnostic events such as
// deprecated alias usage.
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(c *Collection) {
		c.diagnostics = handler
	}
}

// WithLogger sets the logger used for diagnostics when no handler is configured.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collection) {
		c.logger = logger
	}
}

// New creates an empty collection.
func New(opts ...Option) *Collection {
	c := &Collection{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collection) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// Add stores r under name with the given priority.
//
// Any route or alias already registered under name is removed first, so the
// name moves to the end of the insertion order. Add panics if r is nil.
func (c *Collection) Add(name string, r *route.Route, priority int) {
	if r == nil {
		panic(fmt.Sprintf("collection: nil route for name %q", name))
	}
	c.evict(name)
	c.routes.set(name, &record{route: r, priority: priority})
}

// All returns every route in materialized order.
//
// Without priorities this is insertion order. Otherwise routes are sorted by
// descending priority, and routes with equal priority keep their insertion order.
func (c *Collection) All() []Entry {
	entries := make([]Entry, 0, c.routes.len())
	prioritized := false
	for name, rec := range c.routes.all() {
		entries = append(entries, Entry{Name: name, Route: rec.route, Priority: rec.priority})
		if rec.priority != 0 {
			prioritized = true
		}
	}

	if prioritized {
		slices.SortStableFunc(entries, func(a, b Entry) int {
			return cmp.Compare(b.Priority, a.Priority)
		})
	}

	return entries
}

// Routes iterates over routes in materialized order.
func (c *Collection) Routes() iter.Seq2[string, *route.Route] {
	return func(yield func(string, *route.Route) bool) {
		for _, e := range c.All() {
			if !yield(e.Name, e.Route) {
				return
			}
		}
	}
}

// Count returns the number of routes, excluding aliases.
func (c *Collection) Count() int {
	return c.routes.len()
}

// Priority returns the priority stored for name, or 0.
func (c *Collection) Priority(name string) int {
	if rec, ok := c.routes.get(name); ok {
		return rec.priority
	}
	return 0
}

// Get returns the route registered under name, following aliases.
//
// Get returns (nil, nil) when name, or the end of its alias chain, holds no
// route. A chain that revisits a name returns a [*CircularAliasError].
// Traversing a deprecated alias raises a [DiagAliasDeprecated] diagnostic and
// resolution continues.
func (c *Collection) Get(name string) (*route.Route, error) {
	var visited []string
	for {
		alias, ok := c.aliases.get(name)
		if !ok {
			break
		}

		if i := slices.Index(visited, name); i >= 0 {
			path := append(slices.Clone(visited[i:]), name)
			return nil, &CircularAliasError{Name: name, Path: path}
		}

		if d, deprecated := alias.Deprecation(name); deprecated {
			c.emit(DiagAliasDeprecated, d.Message, map[string]any{
				"alias":   name,
				"package": d.Package,
				"version": d.Version,
			})
		}

		visited = append(visited, name)
		name = alias.Target()
	}

	if rec, ok := c.routes.get(name); ok {
		return rec.route, nil
	}
	return nil, nil
}

// Lookup is like [Collection.Get] but reports resolution failures, including
// circular aliases, as not found.
func (c *Collection) Lookup(name string) (*route.Route, bool) {
	r, err := c.Get(name)
	if err != nil || r == nil {
		return nil, false
	}
	return r, true
}

// Remove deletes the routes and aliases registered under names.
// Unknown names are ignored.
func (c *Collection) Remove(names ...string) {
	for _, name := range names {
		c.evict(name)
	}
}

func (c *Collection) evict(name string) {
	c.routes.delete(name)
	c.aliases.delete(name)
}

// Merge moves every route, alias and resource of other into c.
//
// Routes are taken in other's insertion order (not its priority order) and
// keep their priority. Each incoming name replaces whatever c held under it and
// moves to the end. Routes are shared with other, not copied.
func (c *Collection) Merge(other *Collection) {
	if other == nil || other == c {
		return
	}

	for name, rec := range other.routes.all() {
		c.evict(name)
		c.routes.set(name, &record{route: rec.route, priority: rec.priority})
	}

	for name, alias := range other.aliases.all() {
		c.evict(name)
		c.aliases.set(name, alias)
	}

	for _, res := range other.resources.all() {
		c.AddResource(res)
	}
}

// AddAlias registers name as an alias of target and returns it, so it can be
// deprecated. Any route registered under name is removed.
//
// An alias pointing to itself is rejected with [ErrInvalidArgument] and the
// collection is left unchanged.
func (c *Collection) AddAlias(name, target string) (*Alias, error) {
	if name == target {
		return nil, fmt.Errorf("%w: route alias %q can not reference itself", ErrInvalidArgument, name)
	}

	alias := NewAlias(target)
	c.routes.delete(name)
	c.aliases.set(name, alias)

	return alias, nil
}

// Alias returns the alias registered under name.
func (c *Collection) Alias(name string) (*Alias, bool) {
	return c.aliases.get(name)
}

// Aliases returns all aliases in insertion order.
func (c *Collection) Aliases() []NamedAlias {
	out := make([]NamedAlias, 0, c.aliases.len())
	for name, alias := range c.aliases.all() {
		out = append(out, NamedAlias{Name: name, Alias: alias})
	}
	return out
}

// AddResource records a resource. Resources with the same String() are
// stored once. A nil resource is ignored.
func (c *Collection) AddResource(r resource.Resource) {
	if r == nil {
		return
	}
	key := r.String()
	if c.resources.has(key) {
		return
	}
	c.resources.set(key, r)
}

// Resources returns the recorded resources in insertion order.
func (c *Collection) Resources() []resource.Resource {
	out := make([]resource.Resource, 0, c.resources.len())
	for _, r := range c.resources.all() {
		out = append(out, r)
	}
	return out
}

// Clone returns a copy of the collection whose routes and aliases are
// independent of the original. Resources are shared.
func (c *Collection) Clone() *Collection {
	return &Collection{
		routes: c.routes.mapped(func(name string, rec *record) (string, *record) {
			return name, &record{route: rec.route.Clone(), priority: rec.priority}
		}),
		aliases: c.aliases.mapped(func(name string, a *Alias) (string, *Alias) {
			return name, a.Clone()
		}),
		resources:   c.resources.mapped(func(k string, r resource.Resource) (string, resource.Resource) { return k, r }),
		diagnostics: c.diagnostics,
		logger:      c.logger,
	}
}

// URL generates a URL for the named route.
//
// Missing path parameters are filled from the route defaults. Parameters that
// are not part of the path are appended to the query string. Path parameters
// must satisfy the route requirements.
//
// Example:
//
//	u, err := c.URL("users.show", map[string]string{"id": "42"}, nil) // "/users/42"
func (c *Collection) URL(name string, params map[string]string, query url.Values) (string, error) {
	r, err := c.Get(name)
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", fmt.Errorf("%w: %s", ErrRouteNotFound, name)
	}

	compiled, err := r.Compile()
	if err != nil {
		return "", fmt.Errorf("route %q: %w", name, err)
	}

	pathParams := make(map[string]string, len(compiled.Params))
	for _, p := range compiled.Params {
		if v, ok := params[p]; ok {
			pathParams[p] = v
		} else if v, ok := r.Default(p); ok {
			pathParams[p] = cast.ToString(v)
		}
	}

	if err := compiled.Check(pathParams); err != nil {
		return "", fmt.Errorf("route %q: %w", name, err)
	}

	q := url.Values{}
	maps.Copy(q, query)
	for k, v := range params {
		if !slices.Contains(compiled.Params, k) {
			q.Set(k, v)
		}
	}

	u, err := compiled.Reverse.BuildURL(pathParams, q)
	if err != nil {
		return "", fmt.Errorf("route %q: %w", name, err)
	}
	return u, nil
}
