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

package toolconfig

import (
	"google.golang.org/genai"

	"github.com/sjzsdu/gemini-toolconfig/tool"
)

// Priority labels which tool family a configuration carries.
type Priority string

const (
	// PriorityNative marks a configuration carrying native tools.
	PriorityNative Priority = "native"
	// PriorityCustom marks a configuration carrying custom tools.
	PriorityCustom Priority = "custom"
)

// ToolType labels the shape of the tool payload.
type ToolType string

const (
	// ToolTypeSearchAndURL marks a native configuration. The label covers
	// both native capabilities even though at most one descriptor is
	// emitted per request.
	ToolTypeSearchAndURL ToolType = "search_and_url"
	// ToolTypeCustomOnly marks a custom-only configuration.
	ToolTypeCustomOnly ToolType = "custom_only"
)

// Configuration is the per-request tool decision. The API rejects requests
// mixing native and custom tools, so UseNativeTools and UseCustomTools are
// never both true: a native configuration carries no custom tools and a
// custom-only configuration carries no native descriptors.
type Configuration struct {
	// UseNativeTools is true when the request should attach native tools.
	UseNativeTools bool
	// UseCustomTools is true when the request should attach the
	// caller-supplied custom tools.
	UseCustomTools bool
	// NativeTools are the native descriptors to attach, in wire order.
	// Empty unless UseNativeTools is true.
	NativeTools []*genai.Tool
	// CustomTools are the caller's tools, passed through verbatim.
	// Nil unless UseCustomTools is true.
	CustomTools []tool.Tool
	// Priority labels the winning tool family.
	Priority Priority
	// ToolType labels the payload shape.
	ToolType ToolType
}

// Apply attaches the decided tool payload to an outbound request config.
// Native descriptors are appended verbatim; custom tool declarations are
// consolidated into a single genai.Tool, since the API expects all function
// declarations in one entry.
func (c Configuration) Apply(cfg *genai.GenerateContentConfig) {
	if cfg == nil {
		return
	}
	if c.UseNativeTools {
		cfg.Tools = append(cfg.Tools, c.NativeTools...)
		return
	}
	decls := tool.Declarations(c.CustomTools)
	if len(decls) == 0 {
		return
	}
	for _, t := range cfg.Tools {
		if t != nil && t.FunctionDeclarations != nil {
			t.FunctionDeclarations = append(t.FunctionDeclarations, decls...)
			return
		}
	}
	cfg.Tools = append(cfg.Tools, &genai.Tool{FunctionDeclarations: decls})
}

func nativeConfiguration(nativeTools []*genai.Tool) Configuration {
	return Configuration{
		UseNativeTools: true,
		NativeTools:    nativeTools,
		Priority:       PriorityNative,
		ToolType:       ToolTypeSearchAndURL,
	}
}

func customOnlyConfiguration(customTools []tool.Tool) Configuration {
	return Configuration{
		UseCustomTools: true,
		CustomTools:    customTools,
		Priority:       PriorityCustom,
		ToolType:       ToolTypeCustomOnly,
	}
}
