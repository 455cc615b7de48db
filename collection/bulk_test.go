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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/routing/route"
)

func newUsers() *Collection {
	c := New()
	c.Add("users", route.New("/users"), 0)
	c.Add("user", route.New("/users/:id", route.WithDefaults(map[string]any{"format": "html"})), 1)
	return c
}

func paths(c *Collection) []string {
	var out []string
	for _, e := range c.All() {
		out = append(out, e.Route.Path())
	}
	return out
}

func TestAddPrefix(t *testing.T) {
	t.Parallel()

	c := newUsers()
	c.AddPrefix("api", map[string]any{"format": "json", "v": 1}, map[string]string{"id": `\d+`})

	assert.Equal(t, []string{"/api/users/:id", "/api/users"}, paths(c))

	rt, err := c.Get("user")
	require.NoError(t, err)
	format, _ := rt.Default("format")
	assert.Equal(t, "json", format, "prefix defaults override existing ones")
	req, _ := rt.Requirement("id")
	assert.Equal(t, `\d+`, req)
}

func TestAddPrefix_TrimsSlashes(t *testing.T) {
	t.Parallel()

	c := newUsers()
	c.AddPrefix(" /v1/admin/ ", nil, nil)

	assert.Equal(t, []string{"/v1/admin/users/:id", "/v1/admin/users"}, paths(c))
}

func TestAddPrefix_EmptyIsNoop(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{"", "/", "//", " "} {
		c := newUsers()
		c.AddPrefix(prefix, map[string]any{"x": 1}, nil)

		assert.Equal(t, []string{"/users/:id", "/users"}, paths(c), "prefix %q", prefix)
		rt, _ := c.Get("users")
		assert.False(t, rt.HasDefault("x"), "defaults are not merged on a no-op prefix")
	}
}

func TestAddPrefix_RootPath(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add("home", route.New("/"), 0)
	c.AddPrefix("en", nil, nil)

	assert.Equal(t, []string{"/en/"}, paths(c))
}

func TestAddNamePrefix(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add("b", route.New("/b", route.WithDefaults(map[string]any{route.CanonicalRouteDefault: "b"})), 0)
	c.Add("a", route.New("/a"), 7)
	_, _ = c.AddAlias("z", "a")
	alias, _ := c.AddAlias("y", "b")
	require.NoError(t, alias.Deprecate("pkg", "1.0", ""))

	c.AddNamePrefix("admin_")

	assert.Equal(t, []string{"admin_a", "admin_b"}, names(c))
	assert.Equal(t, 7, c.Priority("admin_a"))
	assert.Equal(t, 0, c.Priority("a"))

	rt, err := c.Get("admin_b")
	require.NoError(t, err)
	canonical, _ := rt.Default(route.CanonicalRouteDefault)
	assert.Equal(t, "admin_b", canonical)

	aliases := c.Aliases()
	require.Len(t, aliases, 2)
	assert.Equal(t, "admin_z", aliases[0].Name)
	assert.Equal(t, "admin_a", aliases[0].Alias.Target())
	assert.Equal(t, "admin_y", aliases[1].Name)
	assert.True(t, aliases[1].Alias.IsDeprecated(), "deprecation survives renaming")

	rt, err = c.Get("admin_z")
	require.NoError(t, err)
	assert.Equal(t, "/a", rt.Path())

	rt, err = c.Get("a")
	require.NoError(t, err)
	assert.Nil(t, rt)
}

func TestAddNamePrefix_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	c := New()
	for _, n := range []string{"c", "a", "b"} {
		c.Add(n, route.New("/"+n), 0)
	}
	c.AddNamePrefix("p.")

	assert.Equal(t, []string{"p.c", "p.a", "p.b"}, names(c))
}

func TestBulkSetters(t *testing.T) {
	t.Parallel()

	c := newUsers()

	c.SetHost("{tenant}.example.com")
	c.SetCondition("request.secure")
	c.AddDefaults(map[string]any{"format": "xml"})
	c.AddRequirements(map[string]string{"id": "^[0-9]+$"})
	c.AddOptions(map[string]any{"utf8": true})
	c.SetSchemes("HTTPS")
	c.SetMethods("get", "post")

	for name, rt := range c.Routes() {
		assert.Equal(t, "{tenant}.example.com", rt.Host(), name)
		assert.Equal(t, "request.secure", rt.Condition(), name)
		format, _ := rt.Default("format")
		assert.Equal(t, "xml", format, name)
		req, _ := rt.Requirement("id")
		assert.Equal(t, "[0-9]+", req, name)
		opt, _ := rt.Option("utf8")
		assert.Equal(t, true, opt, name)
		assert.Equal(t, []string{"https"}, rt.Schemes(), name)
		assert.Equal(t, []string{"GET", "POST"}, rt.Methods(), name)
	}
}

func TestBulkSetters_ZeroValueRoute(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add("bare", &route.Route{}, 0)
	c.Add("users", route.New("/users/:id"), 0)

	require.NotPanics(t, func() {
		c.AddDefaults(map[string]any{"_format": "json"})
		c.AddRequirements(map[string]string{"id": `\d+`})
		c.AddOptions(map[string]any{"compiler": "default"})
		c.AddNamePrefix("api.")
	})

	r, err := c.Get("api.bare")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, map[string]any{"_format": "json"}, r.Defaults())
	assert.Equal(t, map[string]string{"id": `\d+`}, r.Requirements())
	assert.Equal(t, map[string]any{"compiler": "default"}, r.Options())
}

func TestBulkAdders_EmptyInputIsNoop(t *testing.T) {
	t.Parallel()

	c := newUsers()
	c.AddDefaults(nil)
	c.AddRequirements(map[string]string{})
	c.AddOptions(nil)

	rt, _ := c.Get("user")
	assert.Equal(t, map[string]any{"format": "html"}, rt.Defaults())
	assert.Empty(t, rt.Requirements())
	assert.Empty(t, rt.Options())
}

func TestBulkSetters_EmptySetClears(t *testing.T) {
	t.Parallel()

	c := newUsers()
	c.SetMethods("GET")
	c.SetMethods()

	for _, rt := range c.Routes() {
		assert.Empty(t, rt.Methods())
	}
}
