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
	"fmt"
	"net/url"
	"strings"
)

// ReversePattern is a route path split into static and parameter segments,
// used to generate URLs for a route.
type ReversePattern struct {
	Segments []Segment

	// TrailingSlash is set when the path ends in "/" after at least one segment,
	// as prefixed root routes do ("/api/").
	TrailingSlash bool
}

// Segment is one "/"-separated element of a route path.
type Segment struct {
	Static bool   // Literal text when true, parameter name otherwise
	Value  string // Literal text or parameter name without ":"
}

// ParseReversePattern splits path into segments. Empty segments are dropped.
//
//	ParseReversePattern("/users/:id/") // users, :id, trailing slash
func ParseReversePattern(path string) *ReversePattern {
	p := &ReversePattern{}
	for part := range strings.SplitSeq(path, "/") {
		if part == "" {
			continue
		}
		name, isParam := strings.CutPrefix(part, ":")
		p.Segments = append(p.Segments, Segment{Static: !isParam, Value: name})
	}
	p.TrailingSlash = len(p.Segments) > 0 && strings.HasSuffix(path, "/")

	return p
}

// Params returns the parameter names in order of appearance.
func (p *ReversePattern) Params() []string {
	var params []string
	for _, seg := range p.Segments {
		if !seg.Static {
			params = append(params, seg.Value)
		}
	}
	return params
}

// BuildURL substitutes params into the pattern and appends the encoded query.
// Parameter values are path-escaped. A parameter without a value returns
// an error wrapping [ErrMissingParameter].
func (p *ReversePattern) BuildURL(params map[string]string, query url.Values) (string, error) {
	var b strings.Builder
	for _, seg := range p.Segments {
		b.WriteByte('/')
		if seg.Static {
			b.WriteString(seg.Value)
			continue
		}
		v, ok := params[seg.Value]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingParameter, seg.Value)
		}
		b.WriteString(url.PathEscape(v))
	}
	if b.Len() == 0 || p.TrailingSlash {
		b.WriteByte('/')
	}
	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(query.Encode())
	}

	return b.String(), nil
}
