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
	"path/filepath"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"rivaas.dev/routing/collection"
	"rivaas.dev/routing/resource"
)

// DefaultCacheTTL is the lifetime of a cached collection when [NewCache] is
// given a non-positive TTL.
const DefaultCacheTTL = 10 * time.Minute

type cacheEntry struct {
	routes   *collection.Collection
	loadedAt time.Time
}

// Cache memoizes [Loader.Load] per file.
//
// A cached collection is served until its TTL expires or one of its resources
// changes. Every call returns an independent clone, so callers may modify the
// result. Cache is safe for concurrent use.
type Cache struct {
	loader *Loader
	store  *gocache.Cache
	mu     sync.Mutex
}

// NewCache creates a cache in front of l.
func NewCache(l *Loader, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		loader: l,
		store:  gocache.New(ttl, 2*ttl),
	}
}

// Load returns the collection for path, loading it on a miss.
func (c *Cache) Load(ctx context.Context, path string) (*collection.Collection, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		return nil, newError(path, "resolve", err)
	}

	if e, ok := c.fresh(key); ok {
		return e.routes.Clone(), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.fresh(key); ok {
		return e.routes.Clone(), nil
	}

	loadedAt := time.Now()
	routes, err := c.loader.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	c.store.Set(key, &cacheEntry{routes: routes, loadedAt: loadedAt}, gocache.DefaultExpiration)
	c.loader.log().Debug("route cache filled", "file", key)

	return routes.Clone(), nil
}

func (c *Cache) fresh(key string) (*cacheEntry, bool) {
	v, found := c.store.Get(key)
	if !found {
		return nil, false
	}

	e, ok := v.(*cacheEntry)
	if !ok {
		c.loader.log().Error("wrong type in route cache", "file", key)
		return nil, false
	}

	if !resource.IsFresh(e.routes.Resources(), e.loadedAt) {
		c.store.Delete(key)
		c.loader.log().Debug("route cache stale", "file", key)
		return nil, false
	}

	return e, true
}

// Invalidate drops the cached collection for path.
func (c *Cache) Invalidate(path string) {
	if key, err := filepath.Abs(path); err == nil {
		c.store.Delete(key)
	}
}

// Flush drops every cached collection.
func (c *Cache) Flush() {
	c.store.Flush()
}

// Len returns the number of cached collections, including expired ones not
// yet cleaned up.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}
