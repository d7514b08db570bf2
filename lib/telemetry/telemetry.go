package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/trace"
)

type OtlpConnConfig struct {
	GrpcEndpoint string            `json:"grpc_endpoint"`
	HttpEndpoint string            `json:"http_endpoint"`
	Headers      map[string]string `json:"headers"`
}

func (c OtlpConnConfig) configured() bool {
	return c.GrpcEndpoint != "" || c.HttpEndpoint != ""
}

type OtlpConfig struct {
	Traces  OtlpConnConfig `json:"traces"`
	Metrics OtlpConnConfig `json:"metrics"`
}

type Config struct {
	Otlp OtlpConfig `json:"otlp"`
}

// Telemetry holds the providers installed by Setup, either may be nil when
// its exporter is not configured.
type Telemetry struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
}

func (t Telemetry) Shutdown(ctx context.Context) error {
	var errlist []error
	if t.TracerProvider != nil {
		errlist = append(errlist, t.TracerProvider.Shutdown(ctx))
	}
	if t.MeterProvider != nil {
		errlist = append(errlist, t.MeterProvider.Shutdown(ctx))
	}
	return errors.Join(errlist...)
}

// Setup installs OTLP trace and metric exporters as the global providers.
// Signals without an endpoint stay on the otel no-op defaults.
func Setup(ctx context.Context, serviceName string, config Config) (Telemetry, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*15)
	defer cancel()

	var t Telemetry
	if !config.Otlp.Traces.configured() && !config.Otlp.Metrics.configured() {
		return t, nil
	}

	r, err := newResource(serviceName)
	if err != nil {
		return t, err
	}

	if config.Otlp.Traces.configured() {
		t.TracerProvider, err = newTraceProvider(ctx, r, config)
		if err != nil {
			return t, err
		}
		otel.SetTracerProvider(t.TracerProvider)
	}

	if config.Otlp.Metrics.configured() {
		t.MeterProvider, err = newMetricProvider(ctx, r, config)
		if err != nil {
			return t, errors.Join(err, t.Shutdown(context.Background()))
		}
		otel.SetMeterProvider(t.MeterProvider)
	}

	return t, nil
}
