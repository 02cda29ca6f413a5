// Package telemetry provides OpenTelemetry tracing and the diagnostic log.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "embercrypt"
	serviceVersion = "0.1.0"
)

// Options tune the trace pipeline.
type Options struct {
	// SampleRatio is the fraction of root spans kept. Values outside
	// (0, 1) keep every span.
	SampleRatio float64
	// Seed is recorded on the resource so traces can be matched to a dungeon.
	Seed uint64
}

// Setup installs an OTLP HTTP trace exporter configured from the standard
// OTEL_EXPORTER_OTLP_* environment variables. The returned function flushes
// and stops the pipeline, after which tracers are no-ops again.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Standalone resource; merging with Default() clashes on schema URL
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
			attribute.Int64("game.seed", int64(opts.Seed)),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(opts.SampleRatio)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func(ctx context.Context) error {
		Disable()
		return tp.Shutdown(ctx)
	}, nil
}

// sampler keeps child spans with their parent so a sampled turn is complete.
func sampler(ratio float64) sdktrace.Sampler {
	if ratio <= 0 || ratio >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// Tracer returns a named tracer for the given component. Until Setup runs
// the global provider is a no-op, so spans cost nothing when disabled.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// Disable installs a no-op provider, discarding any previous one.
func Disable() {
	otel.SetTracerProvider(noop.NewTracerProvider())
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
