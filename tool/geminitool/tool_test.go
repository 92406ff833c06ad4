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

package geminitool_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"

	"github.com/sjzsdu/gemini-toolconfig/tool/geminitool"
)

func TestDescriptors(t *testing.T) {
	testCases := []struct {
		name     string
		tool     *genai.Tool
		wantTool *genai.Tool
		wantJSON string
	}{
		{
			name:     "google search",
			tool:     geminitool.GoogleSearch(),
			wantTool: &genai.Tool{GoogleSearch: &genai.GoogleSearch{}},
			wantJSON: `{"googleSearch":{}}`,
		},
		{
			name:     "url context",
			tool:     geminitool.URLContext(),
			wantTool: &genai.Tool{URLContext: &genai.URLContext{}},
			wantJSON: `{"urlContext":{}}`,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.wantTool, tt.tool); diff != "" {
				t.Errorf("descriptor mismatch (-want +got):\n%s", diff)
			}
			got, err := json.Marshal(tt.tool)
			if err != nil {
				t.Fatalf("json.Marshal() failed: %v", err)
			}
			if string(got) != tt.wantJSON {
				t.Errorf("json.Marshal() = %s, want %s", got, tt.wantJSON)
			}
		})
	}
}

func TestName(t *testing.T) {
	testCases := []struct {
		name string
		tool *genai.Tool
		want string
	}{
		{name: "google search", tool: geminitool.GoogleSearch(), want: "google_search"},
		{name: "url context", tool: geminitool.URLContext(), want: "url_context"},
		{name: "nil tool", tool: nil, want: ""},
		{name: "function tool", tool: &genai.Tool{FunctionDeclarations: []*genai.FunctionDeclaration{{Name: "f"}}}, want: ""},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := geminitool.Name(tt.tool); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}
