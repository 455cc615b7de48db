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
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// ErrDecoderNotFound is returned when no decoder is registered for a type or
// file extension.
var ErrDecoderNotFound = errors.New("decoder not found")

var (
	mu         sync.RWMutex
	decoders   = make(map[Type]Decoder)
	extensions = make(map[string]Type)
)

// RegisterDecoder registers a decoder for the given type and the file
// extensions (with leading dot) that select it.
func RegisterDecoder(name Type, decoder Decoder, exts ...string) {
	mu.Lock()
	defer mu.Unlock()

	decoders[name] = decoder
	for _, ext := range exts {
		extensions[strings.ToLower(ext)] = name
	}
}

// GetDecoder retrieves the registered decoder for the given type.
func GetDecoder(name Type) (Decoder, error) {
	mu.RLock()
	defer mu.RUnlock()

	decoder, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("%w: type %q", ErrDecoderNotFound, name)
	}
	return decoder, nil
}

// DetectFormat returns the codec type registered for the extension of path.
func DetectFormat(path string) (Type, error) {
	ext := strings.ToLower(filepath.Ext(path))

	mu.RLock()
	defer mu.RUnlock()

	if t, ok := extensions[ext]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: cannot detect format from extension %q", ErrDecoderNotFound, ext)
}

// ForFile returns the decoder for the extension of path.
func ForFile(path string) (Decoder, error) {
	t, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	return GetDecoder(t)
}
