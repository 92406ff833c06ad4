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

// RequestPriority is the per-request native/custom tie-break override.
type RequestPriority string

const (
	// RequestPriorityUnset defers to the environment-level priority.
	RequestPriorityUnset RequestPriority = ""
	// RequestPriorityNative asks for native tools to win the tie-break.
	RequestPriorityNative RequestPriority = "native"
	// RequestPriorityCustom asks for custom tools to win the tie-break.
	RequestPriorityCustom RequestPriority = "custom"
)

// RequestOptions carry the per-request tool parameters. Every boolean is
// tri-state: nil leaves the environment default in effect, while an explicit
// true or false overrides it. Overrides are honored only when the
// environment allows request-level control.
type RequestOptions struct {
	// EnableNativeTools switches native tools on or off for this request.
	EnableNativeTools *bool
	// EnableSearch switches the Google Search native tool for this request.
	EnableSearch *bool
	// EnableURLContext switches the URL Context native tool for this request.
	EnableURLContext *bool
	// ToolsPriority overrides the environment-level tie-break.
	ToolsPriority RequestPriority
}

// Bool returns a pointer to b, for populating tri-state request fields.
func Bool(b bool) *bool {
	return &b
}

// isTrue reports whether a tri-state value is an explicit true.
func isTrue(v *bool) bool {
	return v != nil && *v
}

// isFalse reports whether a tri-state value is an explicit false.
func isFalse(v *bool) bool {
	return v != nil && !*v
}

// orDefault resolves a tri-state value against an environment default.
func orDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
