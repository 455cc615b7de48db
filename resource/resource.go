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

// Package resource describes the configuration sources that contributed
// routes to a collection. Resources are identified by their string form and
// can report whether they changed since a point in time.
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Resource is a marker for a configuration source. Two resources with the
// same String() are the same resource.
type Resource interface {
	String() string
}

// SelfChecking is a Resource that can tell whether it is still fresh.
type SelfChecking interface {
	Resource

	// IsFresh reports whether the resource is unchanged since t.
	IsFresh(t time.Time) bool
}

// IsFresh reports whether every self-checking resource in rs is fresh since t.
// Resources that cannot check themselves are assumed fresh.
func IsFresh(rs []Resource, t time.Time) bool {
	for _, r := range rs {
		if sc, ok := r.(SelfChecking); ok && !sc.IsFresh(t) {
			return false
		}
	}
	return true
}

// FileResource represents a single file.
type FileResource struct {
	path string
}

// NewFile creates a FileResource for an existing file. The path is made absolute
// so that equal files share one identity.
func NewFile(path string) (*FileResource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("file resource %q: %w", path, err)
	}
	return &FileResource{path: abs}, nil
}

// Path returns the absolute file path.
func (r *FileResource) Path() string {
	return r.path
}

func (r *FileResource) String() string {
	return r.path
}

// IsFresh reports whether the file still exists and was not modified after t.
func (r *FileResource) IsFresh(t time.Time) bool {
	info, err := os.Stat(r.path)
	if err != nil {
		return false
	}
	return !info.ModTime().After(t)
}

// DirectoryResource represents a directory and, optionally, the files in it
// matching a glob pattern.
type DirectoryResource struct {
	path    string
	pattern string
}

// NewDirectory creates a DirectoryResource. An empty pattern tracks every file.
func NewDirectory(path, pattern string) (*DirectoryResource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("directory resource %q: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("directory resource %q: %w", path, ErrNotDirectory)
	}
	if pattern != "" {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("directory resource pattern %q: %w", pattern, err)
		}
	}
	return &DirectoryResource{path: abs, pattern: pattern}, nil
}

// Path returns the absolute directory path.
func (r *DirectoryResource) Path() string {
	return r.path
}

func (r *DirectoryResource) String() string {
	return r.path + "|" + r.pattern
}

// IsFresh reports whether neither the directory nor any matching file below it
// was modified after t.
func (r *DirectoryResource) IsFresh(t time.Time) bool {
	info, err := os.Stat(r.path)
	if err != nil || info.ModTime().After(t) {
		return false
	}

	stale := errors.New("stale")
	err = filepath.WalkDir(r.path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			fi, err := d.Info()
			if err != nil {
				return err
			}
			if fi.ModTime().After(t) {
				return stale
			}
			return nil
		}
		if r.pattern != "" {
			if ok, _ := filepath.Match(r.pattern, d.Name()); !ok {
				return nil
			}
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		if fi.ModTime().After(t) {
			return stale
		}
		return nil
	})

	return err == nil
}

// FileExistenceResource tracks whether a path exists, regardless of its content.
type FileExistenceResource struct {
	path   string
	exists bool
}

// NewFileExistence records the current existence of path.
func NewFileExistence(path string) *FileExistenceResource {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	_, err = os.Stat(abs)
	return &FileExistenceResource{path: abs, exists: err == nil}
}

// Path returns the absolute tracked path.
func (r *FileExistenceResource) Path() string {
	return r.path
}

// Exists reports whether the path existed when the resource was created.
func (r *FileExistenceResource) Exists() bool {
	return r.exists
}

func (r *FileExistenceResource) String() string {
	return "existence:" + r.path
}

// IsFresh reports whether the existence of the path is unchanged.
func (r *FileExistenceResource) IsFresh(time.Time) bool {
	_, err := os.Stat(r.path)
	return (err == nil) == r.exists
}

// ErrNotDirectory indicates a directory resource was created for a non-directory path.
var ErrNotDirectory = errors.New("not a directory")
