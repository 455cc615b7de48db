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

	"github.com/goccy/go-yaml"
	"github.com/spf13/cast"
)

// TypeYAML is the codec type for YAML documents.
const TypeYAML Type = "yaml"

func init() {
	RegisterDecoder(TypeYAML, YAMLCodec{}, ".yaml", ".yml")
}

// YAMLCodec decodes YAML documents whose root is a mapping.
type YAMLCodec struct{}

// Decode implements [Decoder].
func (YAMLCodec) Decode(data []byte) ([]Entry, error) {
	var root yaml.MapSlice
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	entries := make([]Entry, 0, len(root))
	for _, item := range root {
		entries = append(entries, Entry{Name: cast.ToString(item.Key), Value: item.Value})
	}
	return entries, nil
}
