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
	"iter"
	"slices"
)

// orderedMap is a string-keyed map that remembers insertion order.
// The zero value is ready to use.
//
// Deletion is O(n) in the number of keys; collections are built once at
// startup and deletions are rare.
type orderedMap[V any] struct {
	keys  []string
	items map[string]V
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	v, ok := m.items[key]
	return v, ok
}

func (m *orderedMap[V]) has(key string) bool {
	_, ok := m.items[key]
	return ok
}

// set stores v under key. A new key is appended; an existing key keeps its position.
func (m *orderedMap[V]) set(key string, v V) {
	if m.items == nil {
		m.items = make(map[string]V)
	}
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = v
}

func (m *orderedMap[V]) delete(key string) bool {
	if _, ok := m.items[key]; !ok {
		return false
	}
	delete(m.items, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

func (m *orderedMap[V]) len() int {
	return len(m.keys)
}

// all yields entries in insertion order.
func (m *orderedMap[V]) all() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.items[k]) {
				return
			}
		}
	}
}

// mapped returns a new map with every entry passed through fn, preserving order.
func (m *orderedMap[V]) mapped(fn func(key string, v V) (string, V)) orderedMap[V] {
	out := orderedMap[V]{
		keys:  make([]string, 0, len(m.keys)),
		items: make(map[string]V, len(m.keys)),
	}
	for k, v := range m.all() {
		out.set(fn(k, v))
	}
	return out
}
