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

// Package functiontool provides a tool that wraps a Go function.
package functiontool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"

	"github.com/google/jsonschema-go/jsonschema"
	"google.golang.org/genai"

	"github.com/sjzsdu/gemini-toolconfig/tool"
)

// Config is the input to the New function.
type Config struct {
	// The name of this tool.
	Name string
	// A human-readable description of the tool.
	Description string
	// An optional JSON schema object defining the expected parameters for the tool.
	// If it is nil, the schema is inferred from the handler's argument type.
	InputSchema *jsonschema.Schema
	// An optional JSON schema object defining the structure of the tool's output.
	// If it is nil, the schema is inferred from the handler's result type.
	OutputSchema *jsonschema.Schema
}

// Func represents a Go function that can be wrapped in a tool.
type Func[TArgs, TResults any] func(ctx context.Context, args TArgs) (TResults, error)

// ErrInvalidArgument indicates the input parameter type is invalid.
var ErrInvalidArgument = errors.New("invalid argument")

// New creates a new tool with a name, description, and the provided handler.
// Input and output schemas are inferred from the handler's types unless
// overridden in cfg.
func New[TArgs, TResults any](cfg Config, handler Func[TArgs, TResults]) (tool.Tool, error) {
	var zeroArgs TArgs
	argsType := reflect.TypeOf(zeroArgs)
	for argsType != nil && argsType.Kind() == reflect.Ptr {
		argsType = argsType.Elem()
	}
	if argsType == nil || (argsType.Kind() != reflect.Struct && argsType.Kind() != reflect.Map) {
		return nil, fmt.Errorf("input must be a struct or a map or a pointer to those types, but received: %v: %w", argsType, ErrInvalidArgument)
	}

	ischema, err := resolvedSchema[TArgs](cfg.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to infer input schema: %w", err)
	}
	oschema, err := resolvedSchema[TResults](cfg.OutputSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to infer output schema: %w", err)
	}

	return &functionTool[TArgs, TResults]{
		cfg:          cfg,
		inputSchema:  ischema,
		outputSchema: oschema,
		handler:      handler,
	}, nil
}

// functionTool wraps a Go function.
type functionTool[TArgs, TResults any] struct {
	cfg Config

	// A JSON Schema object defining the expected parameters for the tool.
	inputSchema *jsonschema.Resolved
	// A JSON Schema object defining the result of the tool.
	outputSchema *jsonschema.Resolved

	// handler is the Go function.
	handler Func[TArgs, TResults]
}

// Name implements tool.Tool.
func (f *functionTool[TArgs, TResults]) Name() string {
	return f.cfg.Name
}

// Description implements tool.Tool.
func (f *functionTool[TArgs, TResults]) Description() string {
	return f.cfg.Description
}

// Declaration implements tool.Tool.
func (f *functionTool[TArgs, TResults]) Declaration() *genai.FunctionDeclaration {
	decl := &genai.FunctionDeclaration{
		Name:        f.Name(),
		Description: f.Description(),
	}
	if f.inputSchema != nil {
		decl.ParametersJsonSchema = f.inputSchema.Schema()
	}
	if f.outputSchema != nil {
		decl.ResponseJsonSchema = f.outputSchema.Schema()
	}
	return decl
}

// Call executes the wrapped function with arguments decoded from a function
// call payload. The result is always a map; a handler result that is not a
// map is wrapped as {"result": value}.
func (f *functionTool[TArgs, TResults]) Call(ctx context.Context, args map[string]any) (result map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in tool %q: %v\nstack: %s", f.Name(), r, debug.Stack())
		}
	}()

	if f.inputSchema != nil {
		if err := f.inputSchema.Validate(args); err != nil {
			return nil, fmt.Errorf("invalid arguments for tool %q: %w", f.Name(), err)
		}
	}
	input, err := convert[map[string]any, TArgs](args)
	if err != nil {
		return nil, err
	}

	output, err := f.handler(ctx, input)
	if err != nil {
		return nil, err
	}

	resp, err := convert[TResults, map[string]any](output)
	if err == nil {
		return resp, nil
	}
	return map[string]any{"result": output}, nil
}

// convert round-trips a value through JSON to change its Go representation.
func convert[From, To any](v From) (To, error) {
	var out To
	data, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("failed to encode value: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode value: %w", err)
	}
	return out, nil
}

func resolvedSchema[T any](override *jsonschema.Schema) (*jsonschema.Resolved, error) {
	if override != nil {
		return override.Resolve(nil)
	}
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, err
	}
	return schema.Resolve(nil)
}
