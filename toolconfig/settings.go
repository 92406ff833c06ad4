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

import "os"

// Environment variable names understood by LoadSettings.
const (
	EnvEnableNativeTools       = "ENABLE_NATIVE_TOOLS"
	EnvEnableGoogleSearch      = "ENABLE_GOOGLE_SEARCH"
	EnvEnableURLContext        = "ENABLE_URL_CONTEXT"
	EnvToolsPriority           = "TOOLS_PRIORITY"
	EnvDefaultToNativeTools    = "DEFAULT_TO_NATIVE_TOOLS"
	EnvAllowRequestToolControl = "ALLOW_REQUEST_TOOL_CONTROL"
	EnvEnableInlineCitations   = "ENABLE_INLINE_CITATIONS"
	EnvIncludeGroundingMeta    = "INCLUDE_GROUNDING_METADATA"
	EnvIncludeSearchEntryPoint = "INCLUDE_SEARCH_ENTRY_POINT"
)

// SettingsPriority decides which tool family wins when both native and
// custom tools are candidates for a request.
type SettingsPriority string

const (
	// NativeFirst prefers native tools over custom function tools.
	NativeFirst SettingsPriority = "native_first"
	// CustomFirst prefers custom function tools when the caller supplied any.
	CustomFirst SettingsPriority = "custom_first"
)

// Settings are the environment-wide tool defaults, parsed once and frozen.
// The zero value disables native tools entirely; use LoadSettings or
// SettingsFromEnv to apply the documented per-flag defaults.
type Settings struct {
	// NativeToolsEnabled is the global switch for native tools. When false,
	// every request resolves to a custom-only configuration.
	NativeToolsEnabled bool
	// GoogleSearchEnabled enables the Google Search native tool by default.
	GoogleSearchEnabled bool
	// URLContextEnabled enables the URL Context native tool by default.
	URLContextEnabled bool
	// DefaultToNative turns native tools on for requests that carry no
	// custom tools and no explicit override.
	DefaultToNative bool
	// AllowRequestControl lets per-request parameters override the
	// environment defaults.
	AllowRequestControl bool
	// InlineCitations enables rewriting citation markers into response text.
	InlineCitations bool
	// IncludeGroundingMetadata appends grounding source information to
	// rewritten responses.
	IncludeGroundingMetadata bool
	// IncludeSearchEntryPoint appends the rendered search entry point to
	// rewritten responses.
	IncludeSearchEntryPoint bool
	// Priority is the environment-level native/custom tie-break.
	Priority SettingsPriority
}

// LookupFunc reports the string value of a named setting and whether it was
// present. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// LoadSettings parses settings from the given source. Flags documented as
// default-true parse as enabled unless the value is exactly "false"; all
// other boolean flags parse as enabled only when the value is exactly
// "true". An unrecognized TOOLS_PRIORITY falls back to native_first.
// LoadSettings never fails; malformed values resolve to defaults.
func LoadSettings(lookup LookupFunc) Settings {
	return Settings{
		NativeToolsEnabled:       flagTrue(lookup, EnvEnableNativeTools),
		GoogleSearchEnabled:      flagTrue(lookup, EnvEnableGoogleSearch),
		URLContextEnabled:        flagTrue(lookup, EnvEnableURLContext),
		DefaultToNative:          flagNotFalse(lookup, EnvDefaultToNativeTools),
		AllowRequestControl:      flagNotFalse(lookup, EnvAllowRequestToolControl),
		InlineCitations:          flagTrue(lookup, EnvEnableInlineCitations),
		IncludeGroundingMetadata: flagNotFalse(lookup, EnvIncludeGroundingMeta),
		IncludeSearchEntryPoint:  flagTrue(lookup, EnvIncludeSearchEntryPoint),
		Priority:                 priority(lookup),
	}
}

// SettingsFromEnv parses settings from the process environment.
func SettingsFromEnv() Settings {
	return LoadSettings(os.LookupEnv)
}

// flagTrue parses a default-false flag: enabled only on an explicit "true".
func flagTrue(lookup LookupFunc, key string) bool {
	v, _ := lookup(key)
	return v == "true"
}

// flagNotFalse parses a default-true flag: enabled unless an explicit "false".
func flagNotFalse(lookup LookupFunc, key string) bool {
	v, ok := lookup(key)
	return !ok || v != "false"
}

func priority(lookup LookupFunc) SettingsPriority {
	if v, _ := lookup(EnvToolsPriority); v == string(CustomFirst) {
		return CustomFirst
	}
	return NativeFirst
}
