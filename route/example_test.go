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

package route_test

import (
	"fmt"
	"net/url"

	"rivaas.dev/routing/route"
)

// ExampleNew demonstrates defining a route with methods and a typed requirement.
func ExampleNew() {
	rt := route.New("users/:id", route.WithMethods("get", "head")).WhereInt("id")

	req, _ := rt.Requirement("id")
	fmt.Println(rt.Path())
	fmt.Println(rt.Methods())
	fmt.Println(req)
	// Output:
	// /users/:id
	// [GET HEAD]
	// \d+
}

// ExampleRoute_Compile demonstrates checking parameters against requirements.
func ExampleRoute_Compile() {
	compiled, err := route.New("/status/:state").
		WhereEnum("state", "active", "pending").
		Compile()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(compiled.Check(map[string]string{"state": "active"}))
	fmt.Println(compiled.Check(map[string]string{"state": "deleted"}))
	// Output:
	// <nil>
	// parameter "state" must match "^(?:(active|pending))$", got "deleted"
}

// ExampleParseReversePattern demonstrates parsing a route path into segments
// for URL building (reverse routing).
func ExampleParseReversePattern() {
	pattern := route.ParseReversePattern("/users/:id/posts/:postId")

	for _, seg := range pattern.Segments {
		if seg.Static {
			fmt.Printf("Static: %s\n", seg.Value)
		} else {
			fmt.Printf("Param: %s\n", seg.Value)
		}
	}
	// Output:
	// Static: users
	// Param: id
	// Static: posts
	// Param: postId
}

// ExampleReversePattern_BuildURL_withQuery demonstrates building URLs with query parameters.
func ExampleReversePattern_BuildURL_withQuery() {
	pattern := route.ParseReversePattern("/users/:id/posts")

	query := url.Values{}
	query.Set("page", "1")
	query.Set("limit", "10")

	result, err := pattern.BuildURL(map[string]string{"id": "42"}, query)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(result)
	// Output:
	// /users/42/posts?limit=10&page=1
}
