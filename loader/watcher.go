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
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"rivaas.dev/routing/codec"
	"rivaas.dev/routing/collection"
	"rivaas.dev/routing/resource"
)

// DefaultDebounce is the quiet period after the last file event before a
// [Watcher] reloads.
const DefaultDebounce = 100 * time.Millisecond

// Watcher keeps a collection up to date with its route files.
//
// The current collection is published as an immutable snapshot: callers of
// [Watcher.Current] must not modify it. A failed reload keeps the previous
// snapshot.
type Watcher struct {
	loader   *Loader
	path     string
	debounce time.Duration
	onReload func(*collection.Collection)
	onError  func(error)

	current   atomic.Pointer[collection.Collection]
	fsw       *fsnotify.Watcher
	dirs      map[string]struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before reloading. Defaults to [DefaultDebounce].
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// OnReload sets a callback invoked with every successfully reloaded collection.
func OnReload(fn func(*collection.Collection)) WatcherOption {
	return func(w *Watcher) { w.onReload = fn }
}

// OnError sets a callback invoked when a reload fails.
func OnError(fn func(error)) WatcherOption {
	return func(w *Watcher) { w.onError = fn }
}

// NewWatcher loads path and starts watching the directories of every resource
// it was built from. Call [Watcher.Run] to process changes.
func NewWatcher(ctx context.Context, l *Loader, path string, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, newError(path, "resolve", err)
	}

	routes, err := l.Load(ctx, abs)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	w := &Watcher{
		loader:   l,
		path:     abs,
		debounce: DefaultDebounce,
		fsw:      fsw,
		dirs:     make(map[string]struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.current.Store(routes)
	if err := w.watch(routes); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) log() *slog.Logger {
	return w.loader.log()
}

// Current returns the latest successfully loaded collection.
func (w *Watcher) Current() *collection.Collection {
	return w.current.Load()
}

// Run processes file events until ctx is done or the watcher is closed.
// It returns ctx.Err() when ctx ends and nil after [Watcher.Close].
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-w.done:
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !isRelevantEvent(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.reload(ctx)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log().Warn("route watcher error", "file", w.path, "error", err)
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) reload(ctx context.Context) {
	routes, err := w.loader.Load(ctx, w.path)
	if err != nil {
		w.log().Error("route reload failed", "file", w.path, "error", err)
		if w.onError != nil {
			w.onError(err)
		}
		return
	}

	w.current.Store(routes)
	if err := w.watch(routes); err != nil {
		w.log().Warn("route watcher could not follow new resources", "file", w.path, "error", err)
	}

	w.log().Info("routes reloaded", "file", w.path, "routes", routes.Count())
	if w.onReload != nil {
		w.onReload(routes)
	}
}

// watch adds the directory of every resource of routes that is not watched yet.
func (w *Watcher) watch(routes *collection.Collection) error {
	var errs []error
	for _, res := range routes.Resources() {
		var dir string
		switch r := res.(type) {
		case *resource.FileResource:
			dir = filepath.Dir(r.Path())
		case *resource.DirectoryResource:
			dir = r.Path()
		case *resource.FileExistenceResource:
			dir = filepath.Dir(r.Path())
		default:
			continue
		}

		if _, ok := w.dirs[dir]; ok {
			continue
		}
		if err := w.fsw.Add(dir); err != nil {
			errs = append(errs, fmt.Errorf("watching directory %s: %w", dir, err))
			continue
		}
		w.dirs[dir] = struct{}{}
	}
	return errors.Join(errs...)
}

// isRelevantEvent reports whether event touches a route file.
func isRelevantEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	_, err := codec.DetectFormat(event.Name)
	return err == nil
}
