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

package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestFileResource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "routes.yaml")
	past := time.Now().Add(-time.Hour)
	writeFile(t, path, past)

	r, err := NewFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, r.String())
	assert.True(t, r.IsFresh(time.Now()))
	assert.False(t, r.IsFresh(past.Add(-time.Minute)))

	require.NoError(t, os.Remove(path))
	assert.False(t, r.IsFresh(time.Now()), "deleted file is never fresh")
}

func TestFileResource_Missing(t *testing.T) {
	t.Parallel()

	_, err := NewFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileResource_RelativePathSharesIdentity(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"), time.Now())

	t.Chdir(dir)

	rel, err := NewFile("a.yaml")
	require.NoError(t, err)
	abs, err := NewFile(filepath.Join(dir, "a.yaml"))
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(abs.String())
	require.NoError(t, err)
	relResolved, err := filepath.EvalSymlinks(rel.String())
	require.NoError(t, err)
	assert.Equal(t, resolved, relResolved)
}

func TestDirectoryResource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	past := time.Now().Add(-time.Hour)
	writeFile(t, filepath.Join(dir, "a.yaml"), past)
	writeFile(t, filepath.Join(dir, "notes.txt"), past)
	require.NoError(t, os.Chtimes(dir, past, past))

	r, err := NewDirectory(dir, "*.yaml")
	require.NoError(t, err)
	assert.Equal(t, dir+"|*.yaml", r.String())

	checkpoint := past.Add(time.Minute)
	assert.True(t, r.IsFresh(checkpoint))

	// Non-matching file changes are ignored.
	require.NoError(t, os.Chtimes(filepath.Join(dir, "notes.txt"), time.Now(), time.Now()))
	assert.True(t, r.IsFresh(checkpoint))

	require.NoError(t, os.Chtimes(filepath.Join(dir, "a.yaml"), time.Now(), time.Now()))
	assert.False(t, r.IsFresh(checkpoint))
}

func TestDirectoryResource_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	writeFile(t, file, time.Now())

	_, err := NewDirectory(file, "")
	require.ErrorIs(t, err, ErrNotDirectory)

	_, err = NewDirectory(dir, "[")
	require.Error(t, err)
}

func TestFileExistenceResource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "optional.yaml")

	r := NewFileExistence(path)
	assert.False(t, r.Exists())
	assert.True(t, r.IsFresh(time.Now()))
	assert.Equal(t, "existence:"+path, r.String())

	writeFile(t, path, time.Now())
	assert.False(t, r.IsFresh(time.Now()))
}

type marker string

func (m marker) String() string { return string(m) }

func TestIsFresh(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.yaml")
	past := time.Now().Add(-time.Hour)
	writeFile(t, path, past)

	file, err := NewFile(path)
	require.NoError(t, err)

	rs := []Resource{marker("opaque"), file}
	assert.True(t, IsFresh(rs, time.Now()))
	assert.False(t, IsFresh(rs, past.Add(-time.Second)))
	assert.True(t, IsFresh(nil, time.Now()))
}
