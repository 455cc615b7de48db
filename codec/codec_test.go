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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

// DecoderTestSuite runs the same documents through every registered format.
type DecoderTestSuite struct {
	suite.Suite
}

func TestDecoderTestSuite(t *testing.T) {
	suite.Run(t, new(DecoderTestSuite))
}

func (s *DecoderTestSuite) TestRegistration() {
	for _, tc := range []struct {
		typ  Type
		want Decoder
	}{
		{TypeYAML, YAMLCodec{}},
		{TypeTOML, TOMLCodec{}},
		{TypeJSON, JSONCodec{}},
	} {
		decoder, err := GetDecoder(tc.typ)
		s.Require().NoError(err)
		s.Assert().IsType(tc.want, decoder)
	}
}

func (s *DecoderTestSuite) TestKeepsDocumentOrder() {
	docs := map[Type]string{
		TypeYAML: `
zeta:
  path: /z
alpha:
  path: /a
  methods: [GET, POST]
mid:
  alias: alpha
`,
		TypeTOML: `
[zeta]
path = "/z"

[alpha]
path = "/a"
methods = ["GET", "POST"]

[mid]
alias = "alpha"
`,
		TypeJSON: `{
  "zeta": {"path": "/z"},
  "alpha": {"path": "/a", "methods": ["GET", "POST"]},
  "mid": {"alias": "alpha"}
}`,
	}

	for typ, doc := range docs {
		decoder, err := GetDecoder(typ)
		s.Require().NoError(err)

		entries, err := decoder.Decode([]byte(doc))
		s.Require().NoError(err, typ)
		s.Assert().Equal([]string{"zeta", "alpha", "mid"}, names(entries), typ)

		alpha, ok := entries[1].Value.(map[string]any)
		s.Require().True(ok, "%s: nested mapping decodes to map[string]any, got %T", typ, entries[1].Value)
		s.Assert().Equal("/a", alpha["path"], typ)
		s.Assert().Len(alpha["methods"], 2, typ)
	}
}

func (s *DecoderTestSuite) TestEmptyDocument() {
	for _, typ := range []Type{TypeYAML, TypeTOML, TypeJSON} {
		decoder, err := GetDecoder(typ)
		s.Require().NoError(err)

		entries, err := decoder.Decode(nil)
		s.Require().NoError(err, typ)
		s.Assert().Empty(entries, typ)
	}
}

func (s *DecoderTestSuite) TestMalformed() {
	docs := map[Type]string{
		TypeYAML: "users: [unclosed",
		TypeTOML: "[users\npath = 1",
		TypeJSON: `{"users": }`,
	}
	for typ, doc := range docs {
		decoder, err := GetDecoder(typ)
		s.Require().NoError(err)

		_, err = decoder.Decode([]byte(doc))
		s.Assert().Error(err, typ)
	}
}

func TestJSONCodec_RootMustBeObject(t *testing.T) {
	t.Parallel()

	_, err := JSONCodec{}.Decode([]byte(`["a", "b"]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root must be an object")
}

func TestTOMLCodec_InlineTables(t *testing.T) {
	t.Parallel()

	entries, err := TOMLCodec{}.Decode([]byte(`
b = { path = "/b" }
a = { path = "/a", priority = 3 }
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, names(entries))
	assert.Equal(t, int64(3), entries[1].Value.(map[string]any)["priority"])
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Type
		wantErr bool
	}{
		{"routes.yaml", TypeYAML, false},
		{"config/ROUTES.YML", TypeYAML, false},
		{"routes.toml", TypeTOML, false},
		{"/etc/app/routes.json", TypeJSON, false},
		{"routes.xml", "", true},
		{"routes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrDecoderNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetDecoder_Unknown(t *testing.T) {
	t.Parallel()

	_, err := GetDecoder("ini")
	require.ErrorIs(t, err, ErrDecoderNotFound)

	_, err = ForFile("routes.ini")
	require.ErrorIs(t, err, ErrDecoderNotFound)
}
