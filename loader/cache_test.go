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
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/routing/route"
)

func TestCache_ReturnsIndependentClones(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "routes.yaml", "a: { path: /a }\n")
	cache := NewCache(New(), time.Minute)

	first, err := cache.Load(context.Background(), path)
	require.NoError(t, err)
	first.Add("extra", route.New("/extra"), 0)
	first.AddPrefix("mutated", nil, nil)

	second, err := cache.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names(second))
	a, _ := second.Lookup("a")
	assert.Equal(t, "/a", a.Path())
	assert.Equal(t, 1, cache.Len())
}

func TestCache_ReloadsStaleEntries(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "routes.yaml", "a: { path: /a }\n")
	cache := NewCache(New(), time.Minute)

	c, err := cache.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, names(c))

	require.NoError(t, os.WriteFile(path, []byte("b: { path: /b }\n"), 0o644))
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	c, err = cache.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names(c))
}

func TestCache_InvalidateAndFlush(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "a: { path: /a }\n")
	b := writeFile(t, dir, "b.yaml", "b: { path: /b }\n")
	cache := NewCache(New(), 0)

	for _, p := range []string{a, b} {
		_, err := cache.Load(context.Background(), p)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, cache.Len())

	cache.Invalidate(a)
	assert.Equal(t, 1, cache.Len())

	cache.Flush()
	assert.Equal(t, 0, cache.Len())
}

func TestCache_DoesNotStoreFailures(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "routes.yaml", "a: { alias: a }\n")
	cache := NewCache(New(), time.Minute)

	_, err := cache.Load(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Expires(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "routes.yaml", "a: { path: /a }\n")
	cache := NewCache(New(), 20*time.Millisecond)

	_, err := cache.Load(context.Background(), path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("b: { path: /b }\n"), 0o644))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))

	assert.Eventually(t, func() bool {
		c, err := cache.Load(context.Background(), path)
		if err != nil {
			return false
		}
		_, ok := c.Lookup("b")
		return ok
	}, time.Second, 10*time.Millisecond)
}
