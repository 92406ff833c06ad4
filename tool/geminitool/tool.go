// Copyright 2025 Google LLC
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

// Package geminitool builds descriptors for the native tools Gemini models
// execute themselves. A native tool descriptor is a [genai.Tool] with exactly
// one capability field set, carrying no payload; the genai SDK serializes it
// into the tagged google_search / url_context wire objects the API expects.
package geminitool

import (
	"google.golang.org/genai"
)

// Well-known native tool names.
const (
	GoogleSearchName = "google_search"
	URLContextName   = "url_context"
)

// GoogleSearch returns the descriptor for the Google Search native tool,
// which retrieves search results from Google Search to ground responses.
func GoogleSearch() *genai.Tool {
	return &genai.Tool{
		GoogleSearch: &genai.GoogleSearch{},
	}
}

// URLContext returns the descriptor for the URL Context native tool, which
// retrieves content from URLs referenced in the prompt.
func URLContext() *genai.Tool {
	return &genai.Tool{
		URLContext: &genai.URLContext{},
	}
}

// Name reports which native capability the descriptor carries, or "" if the
// descriptor is nil or carries none of the capabilities built by this package.
func Name(t *genai.Tool) string {
	switch {
	case t == nil:
		return ""
	case t.GoogleSearch != nil:
		return GoogleSearchName
	case t.URLContext != nil:
		return URLContextName
	default:
		return ""
	}
}
