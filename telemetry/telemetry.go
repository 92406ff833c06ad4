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

// Package telemetry contains OpenTelemetry related functionality for the
// tool-configuration library. The library itself only emits through the
// global OTel providers; this package configures providers that export over
// OTLP/HTTP and registers them globally.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	logglobal "go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.36.0"

	"github.com/sjzsdu/gemini-toolconfig/internal/version"
)

const serviceName = "gemini-toolconfig"

// Providers wraps the configured telemetry providers and provides a
// Shutdown function.
type Providers struct {
	// TracerProvider is the configured TracerProvider or nil.
	TracerProvider *sdktrace.TracerProvider
	// LoggerProvider is the configured LoggerProvider or nil.
	LoggerProvider *sdklog.LoggerProvider
}

// Shutdown shuts down the underlying OTel providers.
func (t *Providers) Shutdown(ctx context.Context) error {
	var err error
	if t.TracerProvider != nil {
		if tpErr := t.TracerProvider.Shutdown(ctx); tpErr != nil {
			err = errors.Join(err, tpErr)
		}
	}
	if t.LoggerProvider != nil {
		if lpErr := t.LoggerProvider.Shutdown(ctx); lpErr != nil {
			err = errors.Join(err, lpErr)
		}
	}
	return err
}

// SetGlobalOtelProviders registers the configured providers as the global
// OTel providers, which the library's instrumentation reads from.
func (t *Providers) SetGlobalOtelProviders() {
	if t.TracerProvider != nil {
		otel.SetTracerProvider(t.TracerProvider)
	}
	if t.LoggerProvider != nil {
		logglobal.SetLoggerProvider(t.LoggerProvider)
	}
}

type config struct {
	res *resource.Resource
}

// Option customizes the providers built by New.
type Option func(*config)

// WithResource sets a custom OTel resource describing the service.
func WithResource(res *resource.Resource) Option {
	return func(c *config) {
		c.res = res
	}
}

// New initializes a TracerProvider and a LoggerProvider exporting over
// OTLP/HTTP, using the standard OTEL_EXPORTER_OTLP_* environment variables
// for endpoint and headers. The providers are not registered globally;
// call [Providers.SetGlobalOtelProviders] or register them manually. The
// caller must call [Providers.Shutdown] to flush and release resources.
func New(ctx context.Context, opts ...Option) (*Providers, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.res == nil {
		res, err := resource.New(ctx, resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(version.Version),
		))
		if err != nil {
			return nil, err
		}
		cfg.res = res
	}

	traceExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(cfg.res),
	)

	logExporter, err := otlploghttp.New(ctx)
	if err != nil {
		shutdownErr := tracerProvider.Shutdown(ctx)
		return nil, errors.Join(err, shutdownErr)
	}
	loggerProvider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(cfg.res),
	)

	return &Providers{
		TracerProvider: tracerProvider,
		LoggerProvider: loggerProvider,
	}, nil
}
