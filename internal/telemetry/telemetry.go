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

// Package telemetry implements tracing and logging for tool resolution.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.36.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/sjzsdu/gemini-toolconfig/internal/version"
)

const systemName = "gemini.toolconfig"

var (
	attrUseNativeTools  = attribute.Key("gemini.toolconfig.use_native_tools")
	attrNativeTools     = attribute.Key("gemini.toolconfig.native_tools")
	attrCustomToolCount = attribute.Key("gemini.toolconfig.custom_tool_count")
	attrToolType        = attribute.Key("gemini.toolconfig.tool_type")
)

// tracer is the tracer instance for the library.
var tracer trace.Tracer = otel.GetTracerProvider().Tracer(
	systemName,
	trace.WithInstrumentationVersion(version.Version),
	trace.WithSchemaURL(semconv.SchemaURL),
)

// StartResolveSpan starts a span covering one tool resolution.
// It returns a new context with the span and the span itself.
func StartResolveSpan(ctx context.Context, modelID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, fmt.Sprintf("resolve_tools %s", modelID), trace.WithAttributes(
		semconv.GenAIRequestModel(modelID),
	))
}

// ResolveResult describes the outcome of a resolution for tracing.
type ResolveResult struct {
	UseNativeTools bool
	NativeTools    []string
	CustomTools    int
	ToolType       string
}

// TraceResolveResult records the resolution outcome on the span.
func TraceResolveResult(span trace.Span, result ResolveResult) {
	span.SetAttributes(
		attrUseNativeTools.Bool(result.UseNativeTools),
		attrNativeTools.StringSlice(result.NativeTools),
		attrCustomToolCount.Int(result.CustomTools),
		attrToolType.String(result.ToolType),
	)
}
