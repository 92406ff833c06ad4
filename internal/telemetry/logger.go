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

package telemetry

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	semconv "go.opentelemetry.io/otel/semconv/v1.36.0"

	"github.com/sjzsdu/gemini-toolconfig/internal/version"
)

var otelLogger = global.GetLoggerProvider().Logger(
	systemName,
	log.WithSchemaURL(semconv.SchemaURL),
	log.WithInstrumentationVersion(version.Version),
)

// LogResolution emits one event per tool resolution, recording the decision
// and the tool names it produced. Each event carries a generated id so
// decision events can be correlated with downstream request logs.
func LogResolution(ctx context.Context, modelID, priority string, nativeTools, customTools []string) {
	record := log.Record{}
	record.SetEventName("gen_ai.tool.resolution")
	record.SetBody(log.MapValue(
		log.String("id", uuid.NewString()),
		log.String("model", modelID),
		log.String("priority", priority),
		log.KeyValue{Key: "native_tools", Value: stringsToLogValue(nativeTools)},
		log.KeyValue{Key: "custom_tools", Value: stringsToLogValue(customTools)},
	))
	otelLogger.Emit(ctx, record)
}

func stringsToLogValue(values []string) log.Value {
	logValues := make([]log.Value, 0, len(values))
	for _, v := range values {
		logValues = append(logValues, log.StringValue(v))
	}
	return log.SliceValue(logValues...)
}
