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
package codec

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TypeTOML is the codec type for TOML documents.
const TypeTOML Type = "toml"

func init() {
	RegisterDecoder(TypeTOML, TOMLCodec{}, ".toml")
}

// TOMLCodec decodes TOML documents. Top-level keys keep the order in which
// they are first defined, whether as a table header or a dotted key.
type TOMLCodec struct{}

// Decode implements [Decoder].
func (TOMLCodec) Decode(data []byte) ([]Entry, error) {
	var root map[string]any
	md, err := toml.Decode(string(data), &root)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}

	var entries []Entry
	seen := make(map[string]bool, len(root))
	for _, key := range md.Keys() {
		name := key[0]
		if seen[name] {
			continue
		}
		seen[name] = true
		entries = append(entries, Entry{Name: name, Value: root[name]})
	}
	return entries, nil
}
