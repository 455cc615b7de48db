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
	"maps"
	"slices"
	"strings"
)

const (
	// CanonicalRouteDefault is the default key holding the name a route was
	// originally registered under. Collections keep it in sync when names are prefixed.
	CanonicalRouteDefault = "_canonical_route"

	// ControllerDefault is the default key holding the controller reference of a route.
	ControllerDefault = "_controller"
)

// Route is a matchable path/host/method/scheme rule with its default values
// and parameter requirements.
//
// A Route is a plain value owned by the collection entry holding it. It is not
// safe for concurrent mutation; use [Route.Clone] to hand an independent copy
// to another owner.
type Route struct {
	path         string
	host         string
	condition    string
	schemes      []string
	methods      []string
	defaults     map[string]any
	requirements map[string]string
	options      map[string]any
}

// Option configures a Route at construction time.
type Option func(*Route)

// WithHost sets the host pattern.
func WithHost(host string) Option {
	return func(r *Route) { r.SetHost(host) }
}

// WithCondition sets the matching condition expression.
func WithCondition(condition string) Option {
	return func(r *Route) { r.SetCondition(condition) }
}

// WithMethods restricts the route to the given HTTP methods.
func WithMethods(methods ...string) Option {
	return func(r *Route) { r.SetMethods(methods...) }
}

// WithSchemes restricts the route to the given URI schemes.
func WithSchemes(schemes ...string) Option {
	return func(r *Route) { r.SetSchemes(schemes...) }
}

// WithDefaults merges default parameter values into the route.
func WithDefaults(defaults map[string]any) Option {
	return func(r *Route) { r.AddDefaults(defaults) }
}

// WithRequirements merges parameter requirements into the route.
func WithRequirements(requirements map[string]string) Option {
	return func(r *Route) { r.AddRequirements(requirements) }
}

// WithOptions merges route options.
func WithOptions(options map[string]any) Option {
	return func(r *Route) { r.AddOptions(options) }
}

// New creates a Route for the given path.
//
// Example:
//
//	rt := route.New("/users/:id",
//	    route.WithMethods("GET", "HEAD"),
//	    route.WithDefaults(map[string]any{"_controller": "users.show"}),
//	).WhereInt("id")
func New(path string, opts ...Option) *Route {
	r := &Route{
		defaults:     make(map[string]any),
		requirements: make(map[string]string),
		options:      make(map[string]any),
	}
	r.SetPath(path)
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Path returns the route path pattern.
func (r *Route) Path() string {
	return r.path
}

// SetPath sets the path pattern. The pattern is normalized to exactly one
// leading slash.
func (r *Route) SetPath(path string) *Route {
	r.path = "/" + strings.TrimLeft(strings.TrimSpace(path), "/")
	return r
}

// Host returns the host pattern (empty when any host matches).
func (r *Route) Host() string {
	return r.host
}

// SetHost sets the host pattern.
func (r *Route) SetHost(host string) *Route {
	r.host = host
	return r
}

// Condition returns the matching condition expression.
func (r *Route) Condition() string {
	return r.condition
}

// SetCondition sets the matching condition expression.
func (r *Route) SetCondition(condition string) *Route {
	r.condition = condition
	return r
}

// Schemes returns the allowed schemes. An empty result means any scheme.
func (r *Route) Schemes() []string {
	return slices.Clone(r.schemes)
}

// SetSchemes replaces the allowed schemes. Schemes are lower-cased and
// deduplicated.
func (r *Route) SetSchemes(schemes ...string) *Route {
	r.schemes = normalizeSet(schemes, strings.ToLower)
	return r
}

// HasScheme reports whether the scheme is explicitly allowed.
func (r *Route) HasScheme(scheme string) bool {
	return slices.Contains(r.schemes, strings.ToLower(scheme))
}

// Methods returns the allowed HTTP methods. An empty result means any method.
func (r *Route) Methods() []string {
	return slices.Clone(r.methods)
}

// SetMethods replaces the allowed HTTP methods. Methods are upper-cased and
// deduplicated.
func (r *Route) SetMethods(methods ...string) *Route {
	r.methods = normalizeSet(methods, strings.ToUpper)
	return r
}

// HasMethod reports whether the method is explicitly allowed.
func (r *Route) HasMethod(method string) bool {
	return slices.Contains(r.methods, strings.ToUpper(method))
}

// Defaults returns a copy of the default parameter values.
func (r *Route) Defaults() map[string]any {
	return maps.Clone(r.defaults)
}

// SetDefaults replaces all default values.
func (r *Route) SetDefaults(defaults map[string]any) *Route {
	r.defaults = make(map[string]any, len(defaults))
	return r.AddDefaults(defaults)
}

// AddDefaults merges default values; new values win on conflict.
func (r *Route) AddDefaults(defaults map[string]any) *Route {
	if len(defaults) == 0 {
		return r
	}
	r.defaults = ensure(r.defaults)
	maps.Copy(r.defaults, defaults)
	return r
}

// Default returns the default value for name.
func (r *Route) Default(name string) (any, bool) {
	v, ok := r.defaults[name]
	return v, ok
}

// HasDefault reports whether a default value exists for name.
func (r *Route) HasDefault(name string) bool {
	_, ok := r.defaults[name]
	return ok
}

// SetDefault sets a single default value.
func (r *Route) SetDefault(name string, value any) *Route {
	r.defaults = ensure(r.defaults)
	r.defaults[name] = value
	return r
}

// Requirements returns a copy of the parameter requirements.
func (r *Route) Requirements() map[string]string {
	return maps.Clone(r.requirements)
}

// SetRequirements replaces all requirements.
func (r *Route) SetRequirements(requirements map[string]string) *Route {
	r.requirements = make(map[string]string, len(requirements))
	return r.AddRequirements(requirements)
}

// AddRequirements merges requirements; new values win on conflict.
// Leading "^" and trailing "$" anchors are stripped, since requirements are
// always matched against the whole parameter value.
func (r *Route) AddRequirements(requirements map[string]string) *Route {
	if len(requirements) == 0 {
		return r
	}
	r.requirements = ensure(r.requirements)
	for name, pattern := range requirements {
		r.requirements[name] = sanitizeRequirement(pattern)
	}
	return r
}

// Requirement returns the requirement pattern for name.
func (r *Route) Requirement(name string) (string, bool) {
	p, ok := r.requirements[name]
	return p, ok
}

// SetRequirement sets a single requirement pattern.
func (r *Route) SetRequirement(name, pattern string) *Route {
	r.requirements = ensure(r.requirements)
	r.requirements[name] = sanitizeRequirement(pattern)
	return r
}

// Options returns a copy of the route options.
func (r *Route) Options() map[string]any {
	return maps.Clone(r.options)
}

// AddOptions merges options; new values win on conflict.
func (r *Route) AddOptions(options map[string]any) *Route {
	if len(options) == 0 {
		return r
	}
	r.options = ensure(r.options)
	maps.Copy(r.options, options)
	return r
}

// Option returns the option value for name.
func (r *Route) Option(name string) (any, bool) {
	v, ok := r.options[name]
	return v, ok
}

// Clone returns a deep copy of the route. Maps and slices are copied; values
// stored inside defaults and options are copied by assignment.
func (r *Route) Clone() *Route {
	return &Route{
		path:         r.path,
		host:         r.host,
		condition:    r.condition,
		schemes:      slices.Clone(r.schemes),
		methods:      slices.Clone(r.methods),
		defaults:     cloneMap(r.defaults),
		requirements: cloneMap(r.requirements),
		options:      cloneMap(r.options),
	}
}

// WhereInt requires the parameter to be an integer.
//
// Example:
//
//	route.New("/users/:id").WhereInt("id")
func (r *Route) WhereInt(name string) *Route {
	return r.where(name, ParamConstraint{Kind: ConstraintInt})
}

// WhereFloat requires the parameter to be a floating-point number.
func (r *Route) WhereFloat(name string) *Route {
	return r.where(name, ParamConstraint{Kind: ConstraintFloat})
}

// WhereUUID requires the parameter to be a UUID.
func (r *Route) WhereUUID(name string) *Route {
	return r.where(name, ParamConstraint{Kind: ConstraintUUID})
}

// WhereRegex requires the parameter to match pattern.
//
// Example:
//
//	route.New("/files/:name").WhereRegex("name", `[a-zA-Z0-9._-]+`)
func (r *Route) WhereRegex(name, pattern string) *Route {
	return r.where(name, ParamConstraint{Kind: ConstraintRegex, Pattern: pattern})
}

// WhereEnum requires the parameter to be one of values.
//
// Example:
//
//	route.New("/status/:state").WhereEnum("state", "active", "pending", "deleted")
func (r *Route) WhereEnum(name string, values ...string) *Route {
	return r.where(name, ParamConstraint{Kind: ConstraintEnum, Enum: append([]string(nil), values...)})
}

// WhereDate requires the parameter to be an RFC3339 full-date.
func (r *Route) WhereDate(name string) *Route {
	return r.where(name, ParamConstraint{Kind: ConstraintDate})
}

// WhereDateTime requires the parameter to be an RFC3339 date-time.
func (r *Route) WhereDateTime(name string) *Route {
	return r.where(name, ParamConstraint{Kind: ConstraintDateTime})
}

func (r *Route) where(name string, pc ParamConstraint) *Route {
	if pattern := pc.Requirement(); pattern != "" {
		r.requirements = ensure(r.requirements)
		r.requirements[name] = pattern
	}
	return r
}

// sanitizeRequirement strips the anchors a requirement may carry.
// An escaped trailing dollar ("\$") is a literal and is kept.
func sanitizeRequirement(pattern string) string {
	pattern = strings.TrimPrefix(pattern, "^")
	if strings.HasSuffix(pattern, "$") && !strings.HasSuffix(pattern, `\$`) {
		pattern = pattern[:len(pattern)-1]
	}
	return pattern
}

// normalizeSet applies fn to every value and drops empty and duplicate results,
// keeping first-seen order.
func normalizeSet(values []string, fn func(string) string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = fn(strings.TrimSpace(v))
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// ensure returns m, allocating it first when the route is a zero value.
func ensure[V any](m map[string]V) map[string]V {
	if m == nil {
		return make(map[string]V)
	}
	return m
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	maps.Copy(out, m)
	return out
}
