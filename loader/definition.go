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
package loader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

type entryKind int

const (
	kindRoute entryKind = iota
	kindImport
	kindAlias
)

func (k entryKind) String() string {
	switch k {
	case kindImport:
		return "import"
	case kindAlias:
		return "alias"
	default:
		return "route"
	}
}

// sharedKeys apply to both routes and imports.
var sharedKeys = []string{"defaults", "requirements", "options", "host", "schemes", "methods", "condition"}

var allowedKeys = map[entryKind][]string{
	kindRoute:  append([]string{"path", "controller", "priority"}, sharedKeys...),
	kindImport: append([]string{"resource", "prefix", "name_prefix", "optional"}, sharedKeys...),
	kindAlias:  {"alias", "deprecated"},
}

type deprecation struct {
	Package string `mapstructure:"package"`
	Version string `mapstructure:"version"`
	Message string `mapstructure:"message"`
}

// definition is the decoded form of one top-level entry.
type definition struct {
	Path     *string `mapstructure:"path"`
	Resource *string `mapstructure:"resource"`
	Alias    *string `mapstructure:"alias"`

	Controller   string            `mapstructure:"controller"`
	Defaults     map[string]any    `mapstructure:"defaults"`
	Requirements map[string]string `mapstructure:"requirements"`
	Options      map[string]any    `mapstructure:"options"`
	Host         string            `mapstructure:"host"`
	Schemes      []string          `mapstructure:"schemes"`
	Methods      []string          `mapstructure:"methods"`
	Condition    string            `mapstructure:"condition"`
	Priority     int               `mapstructure:"priority"`

	Deprecated *deprecation `mapstructure:"deprecated"`

	Prefix     string `mapstructure:"prefix"`
	NamePrefix string `mapstructure:"name_prefix"`
	Optional   bool   `mapstructure:"optional"`
}

// classify determines the entry kind from its keys and rejects keys that do
// not belong to that kind.
func classify(raw map[string]any) (entryKind, error) {
	_, hasPath := raw["path"]
	_, hasResource := raw["resource"]
	_, hasAlias := raw["alias"]

	var kind entryKind
	switch {
	case hasAlias:
		kind = kindAlias
	case hasPath && hasResource:
		return 0, fmt.Errorf("%w: \"path\" and \"resource\" can not be combined", ErrInvalidEntry)
	case hasPath:
		kind = kindRoute
	case hasResource:
		kind = kindImport
	default:
		return 0, fmt.Errorf("%w: one of \"path\", \"resource\" or \"alias\" is required", ErrInvalidEntry)
	}

	var unknown []string
	for key := range raw {
		if !slices.Contains(allowedKeys[kind], key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return 0, fmt.Errorf("%w: %s entry does not support key(s) %s; allowed: %s",
			ErrInvalidEntry, kind, strings.Join(unknown, ", "), strings.Join(allowedKeys[kind], ", "))
	}

	return kind, nil
}

func decodeDefinition(raw map[string]any) (*definition, error) {
	var def definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}
	return &def, nil
}
