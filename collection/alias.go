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
	"fmt"
	"strings"
)

// AliasPlaceholder is replaced by the alias name in deprecation messages.
const AliasPlaceholder = "%alias_id%"

// DefaultDeprecationTemplate is used when an alias is deprecated without a message.
const DefaultDeprecationTemplate = `The "` + AliasPlaceholder + `" route alias is deprecated. You should stop using it, as it will be removed in the future.`

// Alias is a name that resolves to another route or alias name.
type Alias struct {
	target      string
	deprecation *Deprecation
}

// Deprecation describes why and since when an alias is deprecated.
type Deprecation struct {
	Package string
	Version string
	Message string
}

// NamedAlias pairs an alias with the name it is registered under.
type NamedAlias struct {
	Name  string
	Alias *Alias
}

// NewAlias creates an alias pointing to target.
func NewAlias(target string) *Alias {
	return &Alias{target: target}
}

// Target returns the name the alias points to.
func (a *Alias) Target() string {
	return a.target
}

// WithTarget returns a copy of the alias pointing to target.
func (a *Alias) WithTarget(target string) *Alias {
	c := a.Clone()
	c.target = target
	return c
}

// Clone returns an independent copy of the alias.
func (a *Alias) Clone() *Alias {
	c := &Alias{target: a.target}
	if a.deprecation != nil {
		d := *a.deprecation
		c.deprecation = &d
	}
	return c
}

// Deprecate marks the alias as deprecated since version of pkg. Both pkg and
// version are required. An empty message selects [DefaultDeprecationTemplate].
// A custom message must contain [AliasPlaceholder] and must be a single line.
func (a *Alias) Deprecate(pkg, version, message string) error {
	if strings.TrimSpace(pkg) == "" || strings.TrimSpace(version) == "" {
		return fmt.Errorf("%w: package and version are required", ErrInvalidDeprecation)
	}
	if message == "" {
		message = DefaultDeprecationTemplate
	}
	if strings.ContainsAny(message, "\r\n") || strings.Contains(message, "*/") {
		return fmt.Errorf("%w: message cannot contain line breaks or \"*/\"", ErrInvalidDeprecation)
	}
	if !strings.Contains(message, AliasPlaceholder) {
		return fmt.Errorf("%w: message must contain the %q placeholder", ErrInvalidDeprecation, AliasPlaceholder)
	}

	a.deprecation = &Deprecation{Package: pkg, Version: version, Message: message}
	return nil
}

// IsDeprecated reports whether the alias is deprecated.
func (a *Alias) IsDeprecated() bool {
	return a.deprecation != nil
}

// Deprecation returns the deprecation of the alias registered as name, with
// the placeholder in its message replaced by name.
func (a *Alias) Deprecation(name string) (Deprecation, bool) {
	if a.deprecation == nil {
		return Deprecation{}, false
	}
	d := *a.deprecation
	d.Message = strings.ReplaceAll(d.Message, AliasPlaceholder, name)
	return d, true
}
