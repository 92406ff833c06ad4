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

// Package toolconfig decides which tools to attach to an outbound Gemini
// request. The API rejects requests mixing native tools (Google Search, URL
// Context) with custom function declarations, so the resolver combines
// environment defaults, per-request overrides, and the target model into a
// single configuration that carries exactly one tool family.
package toolconfig

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/sjzsdu/gemini-toolconfig/internal/telemetry"
	"github.com/sjzsdu/gemini-toolconfig/tool"
	"github.com/sjzsdu/gemini-toolconfig/tool/geminitool"
)

// legacyModelMarker identifies the model family that predates the Google
// Search native tool. Models matching it never receive a search descriptor.
const legacyModelMarker = "gemini-1.5"

// CitationRewriter rewrites citation markers in response text using the
// grounding metadata the search tool returned. Implementations must return
// the text unchanged when they perform no rewrite.
type CitationRewriter interface {
	Rewrite(text string, metadata *genai.GroundingMetadata) string
}

// Resolver resolves the tool configuration for outbound requests. It is
// immutable after construction and safe for concurrent use.
type Resolver struct {
	settings Settings
	rewriter CitationRewriter
}

// NewResolver returns a Resolver over frozen settings. The rewriter handles
// RewriteCitations and may be nil, in which case citation rewriting is a
// no-op.
func NewResolver(settings Settings, rewriter CitationRewriter) *Resolver {
	return &Resolver{
		settings: settings,
		rewriter: rewriter,
	}
}

// Settings returns the frozen environment settings.
func (r *Resolver) Settings() Settings {
	return r.settings
}

// Resolve decides the tool configuration for one request. customTools are
// the caller's function tools in declaration order, opts the per-request
// overrides, and modelID the target model. Resolve never fails: unknown
// inputs fall back to the documented defaults.
//
// Precedence, first match wins:
//
//  1. Native tools disabled globally: custom-only.
//  2. Request control allowed and the request disables native tools:
//     custom-only.
//  3. Native tools are considered when the environment enables at least one
//     of them AND either the request explicitly asks for them (request
//     control allowed) or the environment defaults to native for a request
//     without custom tools. Otherwise: custom-only.
//  4. Among considered tools, native wins unless a custom-first priority
//     (environment or request) applies and the custom tool set is
//     non-empty.
//
// Custom tools never mix with native tools: when the caller supplies custom
// tools, native tools are not silently auto-enabled, and an explicit request
// override switches the whole request to native.
func (r *Resolver) Resolve(ctx context.Context, customTools []tool.Tool, opts RequestOptions, modelID string) Configuration {
	ctx, span := telemetry.StartResolveSpan(ctx, modelID)
	defer span.End()

	cfg := r.resolve(customTools, opts, modelID)

	telemetry.TraceResolveResult(span, telemetry.ResolveResult{
		UseNativeTools: cfg.UseNativeTools,
		NativeTools:    nativeToolNames(cfg.NativeTools),
		CustomTools:    len(cfg.CustomTools),
		ToolType:       string(cfg.ToolType),
	})
	telemetry.LogResolution(ctx, modelID, string(cfg.Priority), nativeToolNames(cfg.NativeTools), toolNames(cfg.CustomTools))
	return cfg
}

func (r *Resolver) resolve(customTools []tool.Tool, opts RequestOptions, modelID string) Configuration {
	if !r.settings.NativeToolsEnabled {
		return customOnlyConfiguration(customTools)
	}
	if r.settings.AllowRequestControl && isFalse(opts.EnableNativeTools) {
		return customOnlyConfiguration(customTools)
	}

	nativeToolsAvailable := r.settings.GoogleSearchEnabled || r.settings.URLContextEnabled
	explicitlyRequested := r.settings.AllowRequestControl &&
		(isTrue(opts.EnableNativeTools) || isTrue(opts.EnableSearch) || isTrue(opts.EnableURLContext))
	defaultedOn := r.settings.DefaultToNative && len(customTools) == 0

	if !nativeToolsAvailable || !(explicitlyRequested || defaultedOn) {
		return customOnlyConfiguration(customTools)
	}

	nativeTools := r.NativeTools(opts, modelID)

	if r.settings.Priority == NativeFirst || opts.ToolsPriority == RequestPriorityNative {
		return nativeConfiguration(nativeTools)
	}
	if (r.settings.Priority == CustomFirst || opts.ToolsPriority == RequestPriorityCustom) && len(customTools) > 0 {
		return customOnlyConfiguration(customTools)
	}
	// Custom-first with no custom tools present: native wins by default.
	return nativeConfiguration(nativeTools)
}

// NativeTools builds the native descriptor list for a request. Search and
// URL Context resolve independently against the request overrides and the
// environment defaults, but at most one descriptor is emitted: Search takes
// priority, and a Search that resolved enabled suppresses URL Context even
// when the legacy model check withholds the search descriptor itself.
func (r *Resolver) NativeTools(opts RequestOptions, modelID string) []*genai.Tool {
	searchEnabled := orDefault(opts.EnableSearch, r.settings.GoogleSearchEnabled)
	urlContextEnabled := orDefault(opts.EnableURLContext, r.settings.URLContextEnabled)

	var nativeTools []*genai.Tool
	if searchEnabled && !IsLegacyModel(modelID) {
		nativeTools = append(nativeTools, geminitool.GoogleSearch())
	}
	if urlContextEnabled && !searchEnabled {
		nativeTools = append(nativeTools, geminitool.URLContext())
	}
	return nativeTools
}

// RewriteCitations rewrites citation markers in text using the grounding
// metadata returned by the search tool. The rewrite itself is owned by the
// configured CitationRewriter; without one, or when the rewriter declines,
// the text is returned unchanged.
func (r *Resolver) RewriteCitations(text string, metadata *genai.GroundingMetadata) string {
	if r.rewriter == nil {
		return text
	}
	return r.rewriter.Rewrite(text, metadata)
}

// IsLegacyModel reports whether the model belongs to the model family that
// does not support the Google Search native tool.
func IsLegacyModel(modelID string) bool {
	return strings.Contains(modelID, legacyModelMarker)
}

func nativeToolNames(nativeTools []*genai.Tool) []string {
	var names []string
	for _, t := range nativeTools {
		if name := geminitool.Name(t); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func toolNames(tools []tool.Tool) []string {
	var names []string
	for _, t := range tools {
		names = append(names, t.Name())
	}
	return names
}
