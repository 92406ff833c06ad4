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

// Command toolcfg resolves the tool configuration for one request and
// prints it as JSON. Environment defaults are read from the same variables
// the library documents (ENABLE_NATIVE_TOOLS and friends); per-request
// overrides come from flags.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/sjzsdu/gemini-toolconfig/tool"
	"github.com/sjzsdu/gemini-toolconfig/toolconfig"
)

var (
	modelID          = flag.String("model", "gemini-2.5-flash", "target model id")
	enableNative     = flag.String("enable-native-tools", "", "request override for native tools (true|false, empty leaves the environment default)")
	enableSearch     = flag.String("enable-search", "", "request override for Google Search (true|false, empty leaves the environment default)")
	enableURLContext = flag.String("enable-url-context", "", "request override for URL Context (true|false, empty leaves the environment default)")
	priority         = flag.String("priority", "", "request tie-break override (native|custom)")
	toolsFile        = flag.String("tools-file", "", "JSON file with custom tool declarations: [{\"name\": ..., \"description\": ...}]")
)

// output is the printable form of a resolved configuration.
type output struct {
	UseNativeTools bool          `json:"useNativeTools"`
	UseCustomTools bool          `json:"useCustomTools"`
	NativeTools    []*genai.Tool `json:"nativeTools,omitempty"`
	CustomTools    []string      `json:"customTools,omitempty"`
	Priority       string        `json:"priority"`
	ToolType       string        `json:"toolType"`
}

// declTool is a custom tool known only by its declaration.
type declTool struct {
	decl genai.FunctionDeclaration
}

func (d declTool) Name() string        { return d.decl.Name }
func (d declTool) Description() string { return d.decl.Description }
func (d declTool) Declaration() *genai.FunctionDeclaration {
	decl := d.decl
	return &decl
}

func main() {
	flag.Parse()

	customTools, err := loadCustomTools(*toolsFile)
	if err != nil {
		log.Fatalf("Failed to load custom tools: %v", err)
	}

	opts := toolconfig.RequestOptions{
		EnableNativeTools: triState(*enableNative),
		EnableSearch:      triState(*enableSearch),
		EnableURLContext:  triState(*enableURLContext),
		ToolsPriority:     toolconfig.RequestPriority(*priority),
	}

	resolver := toolconfig.NewResolver(toolconfig.SettingsFromEnv(), nil)
	cfg := resolver.Resolve(context.Background(), customTools, opts, *modelID)

	out := output{
		UseNativeTools: cfg.UseNativeTools,
		UseCustomTools: cfg.UseCustomTools,
		NativeTools:    cfg.NativeTools,
		Priority:       string(cfg.Priority),
		ToolType:       string(cfg.ToolType),
	}
	for _, t := range cfg.CustomTools {
		out.CustomTools = append(out.CustomTools, t.Name())
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to encode configuration: %v", err)
	}
}

func loadCustomTools(path string) ([]tool.Tool, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var decls []genai.FunctionDeclaration
	if err := json.Unmarshal(data, &decls); err != nil {
		return nil, fmt.Errorf("invalid tool declarations in %s: %w", path, err)
	}
	tools := make([]tool.Tool, 0, len(decls))
	for _, decl := range decls {
		tools = append(tools, declTool{decl: decl})
	}
	return tools, nil
}

// triState maps a flag value onto the tri-state request fields: an empty
// flag leaves the environment default in effect.
func triState(v string) *bool {
	switch strings.ToLower(v) {
	case "true":
		return toolconfig.Bool(true)
	case "false":
		return toolconfig.Bool(false)
	default:
		return nil
	}
}
