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

package toolconfig_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sjzsdu/gemini-toolconfig/toolconfig"
)

func lookupMap(m map[string]string) toolconfig.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadSettings(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		want toolconfig.Settings
	}{
		{
			name: "empty environment applies defaults",
			env:  map[string]string{},
			want: toolconfig.Settings{
				DefaultToNative:          true,
				AllowRequestControl:      true,
				IncludeGroundingMetadata: true,
				Priority:                 toolconfig.NativeFirst,
			},
		},
		{
			name: "explicit true enables default-false flags",
			env: map[string]string{
				"ENABLE_NATIVE_TOOLS":        "true",
				"ENABLE_GOOGLE_SEARCH":       "true",
				"ENABLE_URL_CONTEXT":         "true",
				"ENABLE_INLINE_CITATIONS":    "true",
				"INCLUDE_SEARCH_ENTRY_POINT": "true",
			},
			want: toolconfig.Settings{
				NativeToolsEnabled:       true,
				GoogleSearchEnabled:      true,
				URLContextEnabled:        true,
				InlineCitations:          true,
				IncludeSearchEntryPoint:  true,
				DefaultToNative:          true,
				AllowRequestControl:      true,
				IncludeGroundingMetadata: true,
				Priority:                 toolconfig.NativeFirst,
			},
		},
		{
			name: "explicit false disables default-true flags",
			env: map[string]string{
				"DEFAULT_TO_NATIVE_TOOLS":    "false",
				"ALLOW_REQUEST_TOOL_CONTROL": "false",
				"INCLUDE_GROUNDING_METADATA": "false",
			},
			want: toolconfig.Settings{
				Priority: toolconfig.NativeFirst,
			},
		},
		{
			name: "malformed values fall back to defaults",
			env: map[string]string{
				"ENABLE_NATIVE_TOOLS":     "yes",
				"DEFAULT_TO_NATIVE_TOOLS": "0",
				"TOOLS_PRIORITY":          "whatever",
			},
			want: toolconfig.Settings{
				DefaultToNative:          true,
				AllowRequestControl:      true,
				IncludeGroundingMetadata: true,
				Priority:                 toolconfig.NativeFirst,
			},
		},
		{
			name: "custom first priority",
			env: map[string]string{
				"TOOLS_PRIORITY": "custom_first",
			},
			want: toolconfig.Settings{
				DefaultToNative:          true,
				AllowRequestControl:      true,
				IncludeGroundingMetadata: true,
				Priority:                 toolconfig.CustomFirst,
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := toolconfig.LoadSettings(lookupMap(tt.env))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LoadSettings() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("ENABLE_NATIVE_TOOLS", "true")
	t.Setenv("DEFAULT_TO_NATIVE_TOOLS", "false")

	got := toolconfig.SettingsFromEnv()
	if !got.NativeToolsEnabled {
		t.Error("SettingsFromEnv().NativeToolsEnabled = false, want true")
	}
	if got.DefaultToNative {
		t.Error("SettingsFromEnv().DefaultToNative = true, want false")
	}
}
