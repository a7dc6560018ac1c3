package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
)

// Init installs a global tracer provider exporting over OTLP/gRPC. The
// collector address comes from OTEL_EXPORTER_OTLP_ENDPOINT. The returned
// func flushes and stops the exporter.
func Init(ctx context.Context, service, version string) (func(context.Context) error, error) {
	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP trace exporter: %w", err)
	}

	tp := NewProvider(service, version, trace.WithBatcher(
		exporter,
		trace.WithBatchTimeout(5*time.Second),
	))

	otel.SetTracerProvider(tp)

	// by default propagate spans!
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// NewProvider builds a tracer provider tagged with the service resource.
func NewProvider(service, version string, opts ...trace.TracerProviderOption) *trace.TracerProvider {
	opts = append([]trace.TracerProviderOption{
		trace.WithSampler(trace.ParentBased(trace.AlwaysSample())),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
			semconv.ServiceVersion(version),
		)),
	}, opts...)
	return trace.NewTracerProvider(opts...)
}
