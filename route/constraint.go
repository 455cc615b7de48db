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
	"regexp"
	"slices"
	"strings"
)

// Constraint is a compiled requirement for a route parameter.
type Constraint struct {
	Param   string         // Parameter name
	Pattern *regexp.Regexp // Anchored, compiled requirement
}

// ConstraintKind represents the type of constraint applied to a route parameter.
type ConstraintKind uint8

const (
	ConstraintNone ConstraintKind = iota
	ConstraintInt
	ConstraintFloat
	ConstraintUUID
	ConstraintRegex
	ConstraintEnum
	ConstraintDate     // RFC3339 full-date
	ConstraintDateTime // RFC3339 date-time
)

// ParamConstraint is a typed constraint that expands to a requirement pattern.
type ParamConstraint struct {
	Kind    ConstraintKind
	Pattern string   // for ConstraintRegex
	Enum    []string // for ConstraintEnum
}

// Requirement returns the unanchored requirement pattern for the constraint,
// or an empty string for kinds without one.
func (pc ParamConstraint) Requirement() string {
	switch pc.Kind {
	case ConstraintInt:
		return `\d+`
	case ConstraintFloat:
		return `-?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`
	case ConstraintUUID:
		return `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}`
	case ConstraintRegex:
		return sanitizeRequirement(pc.Pattern)
	case ConstraintEnum:
		if len(pc.Enum) == 0 {
			return ""
		}
		escaped := make([]string, 0, len(pc.Enum))
		for _, v := range pc.Enum {
			escaped = append(escaped, regexp.QuoteMeta(v))
		}
		return "(" + strings.Join(escaped, "|") + ")"
	case ConstraintDate:
		return `\d{4}-\d{2}-\d{2}`
	case ConstraintDateTime:
		return `\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})`
	default:
		return ""
	}
}

// Compiled is the validated form of a route, produced by [Route.Compile].
type Compiled struct {
	Params      []string        // Path parameter names in order of appearance
	Static      bool            // True if the path has no parameters
	Constraints []Constraint    // Compiled requirements, sorted by parameter name
	Reverse     *ReversePattern // Pattern used for URL generation
}

// Compile validates every requirement of the route and returns its compiled form.
// An empty or syntactically invalid requirement returns a [*RequirementError].
func (r *Route) Compile() (*Compiled, error) {
	reverse := ParseReversePattern(r.path)

	names := make([]string, 0, len(r.requirements))
	for name := range r.requirements {
		names = append(names, name)
	}
	slices.Sort(names)

	constraints := make([]Constraint, 0, len(names))
	for _, name := range names {
		pattern := r.requirements[name]
		if pattern == "" {
			return nil, &RequirementError{Param: name, Pattern: pattern, Err: ErrEmptyRequirement}
		}
		re, err := regexp.Compile("^(?:" + pattern + ")$")
		if err != nil {
			return nil, &RequirementError{Param: name, Pattern: pattern, Err: err}
		}
		constraints = append(constraints, Constraint{Param: name, Pattern: re})
	}

	params := reverse.Params()

	return &Compiled{
		Params:      params,
		Static:      len(params) == 0,
		Constraints: constraints,
		Reverse:     reverse,
	}, nil
}

// Check verifies that every supplied parameter satisfies its requirement.
// Parameters without a requirement are accepted as is.
func (c *Compiled) Check(params map[string]string) error {
	for _, constraint := range c.Constraints {
		v, ok := params[constraint.Param]
		if !ok {
			continue
		}
		if !constraint.Pattern.MatchString(v) {
			return &ParameterError{Param: constraint.Param, Value: v, Pattern: constraint.Pattern.String()}
		}
	}
	return nil
}
