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

package grounding_test

import (
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/sjzsdu/gemini-toolconfig/grounding"
)

func webChunk(title, uri, domain string) *genai.GroundingChunk {
	return &genai.GroundingChunk{
		Web: &genai.GroundingChunkWeb{Title: title, URI: uri, Domain: domain},
	}
}

func support(end int32, chunkIndices ...int32) *genai.GroundingSupport {
	return &genai.GroundingSupport{
		GroundingChunkIndices: chunkIndices,
		Segment:               &genai.Segment{EndIndex: end},
	}
}

func TestRewrite_NilMetadata(t *testing.T) {
	r := grounding.NewRewriter(grounding.Options{InlineCitations: true, IncludeSources: true})
	if got := r.Rewrite("unchanged", nil); got != "unchanged" {
		t.Errorf("Rewrite() = %q, want %q", got, "unchanged")
	}
}

func TestRewrite_Disabled(t *testing.T) {
	r := grounding.NewRewriter(grounding.Options{})
	md := &genai.GroundingMetadata{
		GroundingChunks:   []*genai.GroundingChunk{webChunk("Doc", "https://example.com", "example.com")},
		GroundingSupports: []*genai.GroundingSupport{support(4, 0)},
	}
	if got := r.Rewrite("text", md); got != "text" {
		t.Errorf("Rewrite() = %q, want %q", got, "text")
	}
}

func TestRewrite_InlineCitations(t *testing.T) {
	testCases := []struct {
		name string
		text string
		md   *genai.GroundingMetadata
		want string
	}{
		{
			name: "single support at segment end",
			text: "Go is fast. It compiles quickly.",
			md: &genai.GroundingMetadata{
				GroundingChunks:   []*genai.GroundingChunk{webChunk("Go", "https://go.dev", "go.dev")},
				GroundingSupports: []*genai.GroundingSupport{support(11, 0)},
			},
			want: "Go is fast.[1](https://go.dev) It compiles quickly.",
		},
		{
			name: "multiple supports keep offsets valid",
			text: "First. Second.",
			md: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					webChunk("A", "https://a.test", "a.test"),
					webChunk("B", "https://b.test", "b.test"),
				},
				GroundingSupports: []*genai.GroundingSupport{
					support(6, 0),
					support(14, 1),
				},
			},
			want: "First.[1](https://a.test) Second.[2](https://b.test)",
		},
		{
			name: "support with several chunks",
			text: "Claim.",
			md: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					webChunk("A", "https://a.test", "a.test"),
					webChunk("B", "https://b.test", "b.test"),
				},
				GroundingSupports: []*genai.GroundingSupport{support(6, 0, 1)},
			},
			want: "Claim.[1](https://a.test)[2](https://b.test)",
		},
		{
			name: "out of range offsets and chunk indices skipped",
			text: "Short.",
			md: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{webChunk("A", "https://a.test", "a.test")},
				GroundingSupports: []*genai.GroundingSupport{
					support(100, 0),
					support(6, 7),
				},
			},
			want: "Short.",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			r := grounding.NewRewriter(grounding.Options{InlineCitations: true})
			if got := r.Rewrite(tt.text, tt.md); got != tt.want {
				t.Errorf("Rewrite() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRewrite_Sources(t *testing.T) {
	r := grounding.NewRewriter(grounding.Options{IncludeSources: true, MaxSources: 2})
	md := &genai.GroundingMetadata{
		GroundingChunks: []*genai.GroundingChunk{
			webChunk("A", "https://a.test", "a.test"),
			webChunk("B", "https://b.test", ""),
			webChunk("C", "https://c.test", "c.test"),
		},
	}

	got := r.Rewrite("answer", md)
	if !strings.HasPrefix(got, "answer\n\n**Sources:**\n") {
		t.Fatalf("Rewrite() = %q, want sources section", got)
	}
	if !strings.Contains(got, "- [A](https://a.test) (a.test)\n") {
		t.Errorf("Rewrite() = %q, missing first source", got)
	}
	if !strings.Contains(got, "- [B](https://b.test)\n") {
		t.Errorf("Rewrite() = %q, missing second source", got)
	}
	if strings.Contains(got, "c.test") {
		t.Errorf("Rewrite() = %q, source over cap should be elided", got)
	}
	if !strings.Contains(got, "... and 1 more sources\n") {
		t.Errorf("Rewrite() = %q, missing overflow line", got)
	}
}

func TestRewrite_SearchEntryPoint(t *testing.T) {
	r := grounding.NewRewriter(grounding.Options{IncludeSearchEntryPoint: true})
	md := &genai.GroundingMetadata{
		SearchEntryPoint: &genai.SearchEntryPoint{RenderedContent: "<div>search</div>"},
	}
	want := "answer\n\n<div>search</div>"
	if got := r.Rewrite("answer", md); got != want {
		t.Errorf("Rewrite() = %q, want %q", got, want)
	}
}
