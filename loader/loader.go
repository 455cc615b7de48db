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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"dario.cat/mergo"
	"github.com/spf13/cast"

	"rivaas.dev/routing/codec"
	"rivaas.dev/routing/collection"
	"rivaas.dev/routing/resource"
	"rivaas.dev/routing/route"
)

// Loader reads route files into collections. A Loader holds no state between
// calls and is safe for concurrent use.
type Loader struct {
	logger         *slog.Logger
	collectionOpts []collection.Option
	defaults       map[string]any
	options        map[string]any
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used by the loader and by the collections it
// builds. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithCollectionOptions sets options applied to every collection the loader
// creates, such as [collection.WithDiagnostics].
func WithCollectionOptions(opts ...collection.Option) Option {
	return func(l *Loader) {
		l.collectionOpts = append(l.collectionOpts, opts...)
	}
}

// WithDefaults sets default values given to every loaded route. Values a
// route defines itself win; nested maps are merged.
func WithDefaults(defaults map[string]any) Option {
	return func(l *Loader) {
		l.defaults = defaults
	}
}

// WithOptions sets options given to every loaded route, merged like
// [WithDefaults].
func WithOptions(options map[string]any) Option {
	return func(l *Loader) {
		l.options = options
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger != nil {
		l.collectionOpts = append([]collection.Option{collection.WithLogger(l.logger)}, l.collectionOpts...)
	}
	return l
}

func (l *Loader) log() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return slog.Default()
}

// Load reads the route file at path, following its imports.
//
// Every file read is recorded as a resource of the returned collection.
// Failures are reported as [*Error].
func (l *Loader) Load(ctx context.Context, path string) (*collection.Collection, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, newError(path, "resolve", err)
	}

	c, err := l.load(ctx, abs, nil)
	if err != nil {
		return nil, err
	}

	l.log().Debug("routes loaded",
		"file", abs,
		"routes", c.Count(),
		"aliases", len(c.Aliases()),
		"resources", len(c.Resources()),
	)
	return c, nil
}

// load reads one file. stack holds the files currently being imported.
func (l *Loader) load(ctx context.Context, file string, stack []string) (*collection.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, newError(file, "load", err)
	}

	if slices.Contains(stack, file) {
		chain := strings.Join(append(slices.Clone(stack), file), " -> ")
		return nil, newError(file, "import", fmt.Errorf("%w: %s", ErrImportCycle, chain))
	}

	decoder, err := codec.ForFile(file)
	if err != nil {
		return nil, newError(file, "detect", fmt.Errorf("%w: %w", ErrUnsupportedFormat, err))
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, newError(file, "read", err)
	}

	entries, err := decoder.Decode(data)
	if err != nil {
		return nil, newError(file, "decode", err)
	}

	res, err := resource.NewFile(file)
	if err != nil {
		return nil, newError(file, "read", err)
	}

	c := collection.New(l.collectionOpts...)
	c.AddResource(res)

	stack = append(slices.Clip(stack), file)
	for _, entry := range entries {
		if err := l.parseEntry(ctx, c, file, entry, stack); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (l *Loader) parseEntry(ctx context.Context, c *collection.Collection, file string, entry codec.Entry, stack []string) error {
	raw, err := cast.ToStringMapE(entry.Value)
	if err != nil || len(raw) == 0 {
		return newEntryError(file, entry.Name, "parse", fmt.Errorf("%w: entry must be a non-empty mapping", ErrInvalidEntry))
	}

	kind, err := classify(raw)
	if err != nil {
		return newEntryError(file, entry.Name, "parse", err)
	}

	def, err := decodeDefinition(raw)
	if err != nil {
		return newEntryError(file, entry.Name, "parse", err)
	}

	switch kind {
	case kindAlias:
		return l.addAlias(c, file, entry.Name, def)
	case kindImport:
		return l.importResource(ctx, c, file, entry.Name, def, stack)
	default:
		return l.addRoute(c, file, entry.Name, def)
	}
}

func (l *Loader) addRoute(c *collection.Collection, file, name string, def *definition) error {
	defaults := maps.Clone(def.Defaults)
	if defaults == nil {
		defaults = make(map[string]any)
	}

	if def.Controller != "" {
		if _, ok := defaults[route.ControllerDefault]; ok {
			return newEntryError(file, name, "route", fmt.Errorf(
				"%w: \"controller\" key and \"%s\" default can not both be set", ErrInvalidEntry, route.ControllerDefault))
		}
		defaults[route.ControllerDefault] = def.Controller
	}

	options := maps.Clone(def.Options)
	if options == nil {
		options = make(map[string]any)
	}

	if len(l.defaults) > 0 {
		if err := mergo.Merge(&defaults, l.defaults); err != nil {
			return newEntryError(file, name, "merge", err)
		}
	}
	if len(l.options) > 0 {
		if err := mergo.Merge(&options, l.options); err != nil {
			return newEntryError(file, name, "merge", err)
		}
	}

	r := route.New(*def.Path,
		route.WithHost(def.Host),
		route.WithCondition(def.Condition),
		route.WithSchemes(def.Schemes...),
		route.WithMethods(def.Methods...),
		route.WithDefaults(defaults),
		route.WithRequirements(def.Requirements),
		route.WithOptions(options),
	)
	c.Add(name, r, def.Priority)
	return nil
}

func (l *Loader) addAlias(c *collection.Collection, file, name string, def *definition) error {
	alias, err := c.AddAlias(name, *def.Alias)
	if err != nil {
		return newEntryError(file, name, "alias", err)
	}

	d := def.Deprecated
	if d == nil {
		return nil
	}
	if err := alias.Deprecate(d.Package, d.Version, d.Message); err != nil {
		c.Remove(name)
		return newEntryError(file, name, "alias", err)
	}
	return nil
}

// importResource loads the files named by an import entry and merges them
// into c at the position of the entry.
func (l *Loader) importResource(ctx context.Context, c *collection.Collection, file, name string, def *definition, stack []string) error {
	target := *def.Resource
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(file), target)
	}

	files := []string{target}
	switch {
	case isGlob(target):
		matches, err := filepath.Glob(target)
		if err != nil {
			return newEntryError(file, name, "import", err)
		}
		dir, pattern := filepath.Split(target)
		dirRes, err := resource.NewDirectory(dir, pattern)
		if err != nil {
			if !def.Optional {
				return newEntryError(file, name, "import", err)
			}
			c.AddResource(resource.NewFileExistence(dir))
		} else {
			c.AddResource(dirRes)
		}
		files = slices.DeleteFunc(matches, func(m string) bool { return m == file })

	case def.Optional:
		if _, err := os.Stat(target); errors.Is(err, fs.ErrNotExist) {
			c.AddResource(resource.NewFileExistence(target))
			l.log().Debug("optional route import not found", "file", file, "entry", name, "resource", target)
			return nil
		}
	}

	for _, f := range files {
		sub, err := l.load(ctx, f, stack)
		if err != nil {
			return err
		}
		applyImport(sub, def)
		c.Merge(sub)
	}
	return nil
}

// applyImport applies the settings of an import entry to the imported routes.
func applyImport(sub *collection.Collection, def *definition) {
	sub.AddPrefix(def.Prefix, nil, nil)
	sub.AddDefaults(def.Defaults)
	sub.AddRequirements(def.Requirements)
	sub.AddOptions(def.Options)

	if def.Host != "" {
		sub.SetHost(def.Host)
	}
	if def.Condition != "" {
		sub.SetCondition(def.Condition)
	}
	if len(def.Schemes) > 0 {
		sub.SetSchemes(def.Schemes...)
	}
	if len(def.Methods) > 0 {
		sub.SetMethods(def.Methods...)
	}

	sub.AddNamePrefix(def.NamePrefix)
}

func isGlob(path string) bool {
	return strings.ContainsAny(filepath.Base(path), "*?[")
}
