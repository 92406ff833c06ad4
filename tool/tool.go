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

// Package tool defines the interface for caller-supplied function tools.
// A function tool is declared to the model as a function it may call, as
// opposed to native tools such as Google Search that the model executes
// itself. Use the functiontool subpackage to wrap a Go function, or
// implement Tool directly when the declaration comes from elsewhere.
package tool

import (
	"google.golang.org/genai"
)

// Tool describes a caller-defined function tool forwarded to the model.
type Tool interface {
	// Name returns the function name of the tool.
	Name() string
	// Description returns a description of the tool.
	Description() string
	// Declaration returns the function declaration sent to the model.
	Declaration() *genai.FunctionDeclaration
}

// Predicate is a function which decides whether a tool should be exposed to the model.
type Predicate func(tool Tool) bool

// AllowList is a helper that creates a Predicate from a slice of tool names.
func AllowList(allowedTools []string) Predicate {
	m := make(map[string]bool)
	for _, t := range allowedTools {
		m[t] = true
	}

	return func(tool Tool) bool {
		return m[tool.Name()]
	}
}

// Filter returns the tools matching the given predicate, preserving order.
func Filter(tools []Tool, predicate Predicate) []Tool {
	if predicate == nil {
		panic("predicate must not be nil")
	}

	var filtered []Tool
	for _, t := range tools {
		if predicate(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Declarations collects the function declarations of the given tools,
// preserving order. Tools with a nil declaration are skipped.
func Declarations(tools []Tool) []*genai.FunctionDeclaration {
	var decls []*genai.FunctionDeclaration
	for _, t := range tools {
		if decl := t.Declaration(); decl != nil {
			decls = append(decls, decl)
		}
	}
	return decls
}
