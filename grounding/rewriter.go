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

// Package grounding rewrites response text using the grounding metadata the
// Google Search native tool returns. It inserts inline citation markers at
// the grounded segments and can append the source list and the rendered
// search entry point.
package grounding

import (
	"fmt"
	"sort"
	"strings"

	"google.golang.org/genai"
)

const (
	sourcesHeader     = "\n\n**Sources:**\n"
	moreSourcesFormat = "... and %d more sources\n"

	// DefaultMaxSources caps the appended source list.
	DefaultMaxSources = 10
)

// Options configure the rewriter. The zero value performs no rewrite.
type Options struct {
	// InlineCitations inserts [n](uri) markers at grounded segments.
	InlineCitations bool
	// IncludeSources appends a source list built from the grounding chunks.
	IncludeSources bool
	// IncludeSearchEntryPoint appends the rendered search entry point.
	IncludeSearchEntryPoint bool
	// MaxSources caps the appended source list. Zero means DefaultMaxSources.
	MaxSources int
}

// Rewriter rewrites citation markers into response text. It is stateless
// and safe for concurrent use.
type Rewriter struct {
	opts Options
}

// NewRewriter returns a Rewriter with the given options.
func NewRewriter(opts Options) *Rewriter {
	if opts.MaxSources <= 0 {
		opts.MaxSources = DefaultMaxSources
	}
	return &Rewriter{opts: opts}
}

// Rewrite returns text with citation markers resolved against metadata.
// With nil metadata, or options that request no rewrite, the text is
// returned unchanged. Rewrite never fails; malformed segment offsets are
// skipped.
func (r *Rewriter) Rewrite(text string, metadata *genai.GroundingMetadata) string {
	if metadata == nil {
		return text
	}

	rewritten := text
	if r.opts.InlineCitations {
		rewritten = insertMarkers(rewritten, metadata)
	}
	if r.opts.IncludeSources {
		rewritten += formatSources(metadata.GroundingChunks, r.opts.MaxSources)
	}
	if r.opts.IncludeSearchEntryPoint && metadata.SearchEntryPoint != nil {
		if rendered := metadata.SearchEntryPoint.RenderedContent; rendered != "" {
			rewritten += "\n\n" + rendered
		}
	}
	return rewritten
}

// insertMarkers inserts [n](uri) markers at the end of each grounded
// segment. Supports are applied in descending end-offset order so earlier
// insertions do not shift the pending offsets.
func insertMarkers(text string, metadata *genai.GroundingMetadata) string {
	supports := make([]*genai.GroundingSupport, 0, len(metadata.GroundingSupports))
	for _, s := range metadata.GroundingSupports {
		if s != nil && s.Segment != nil && len(s.GroundingChunkIndices) > 0 {
			supports = append(supports, s)
		}
	}
	sort.SliceStable(supports, func(i, j int) bool {
		return supports[i].Segment.EndIndex > supports[j].Segment.EndIndex
	})

	for _, s := range supports {
		end := int(s.Segment.EndIndex)
		if end < 0 || end > len(text) {
			continue
		}
		marker := markersFor(s.GroundingChunkIndices, metadata.GroundingChunks)
		if marker == "" {
			continue
		}
		text = text[:end] + marker + text[end:]
	}
	return text
}

// markersFor builds the marker string for one support, e.g. "[1](uri)[3](uri)".
// Chunk indices are 0-based in the metadata and rendered 1-based.
func markersFor(indices []int32, chunks []*genai.GroundingChunk) string {
	var markers strings.Builder
	for _, idx := range indices {
		i := int(idx)
		if i < 0 || i >= len(chunks) {
			continue
		}
		chunk := chunks[i]
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		fmt.Fprintf(&markers, "[%d](%s)", i+1, chunk.Web.URI)
	}
	return markers.String()
}

// formatSources formats grounding chunks as a source list.
func formatSources(chunks []*genai.GroundingChunk, maxSources int) string {
	var web []*genai.GroundingChunkWeb
	for _, chunk := range chunks {
		if chunk != nil && chunk.Web != nil && chunk.Web.URI != "" {
			web = append(web, chunk.Web)
		}
	}
	if len(web) == 0 {
		return ""
	}

	shown := len(web)
	if shown > maxSources {
		shown = maxSources
	}

	var sources strings.Builder
	sources.WriteString(sourcesHeader)
	for _, w := range web[:shown] {
		title := w.Title
		if title == "" {
			title = w.Domain
		}
		if title == "" {
			title = w.URI
		}
		fmt.Fprintf(&sources, "- [%s](%s)", title, w.URI)
		if w.Domain != "" {
			fmt.Fprintf(&sources, " (%s)", w.Domain)
		}
		sources.WriteString("\n")
	}
	if len(web) > shown {
		fmt.Fprintf(&sources, moreSourcesFormat, len(web)-shown)
	}
	return sources.String()
}
